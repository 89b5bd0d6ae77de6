package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Sables/config"
)

var (
	// ErrMalformed is returned when the token structure or signature is invalid.
	ErrMalformed = errors.New("token is malformed or has an invalid signature")
	// ErrExpired is returned for a well-signed token past its expiry.
	ErrExpired = errors.New("token has expired")
	// ErrMissingSubject is returned when the subject claim is absent.
	ErrMissingSubject = errors.New("token has no subject claim")
)

// Service issues and validates signed bearer tokens. Tokens are stateless:
// nothing is persisted, validity is reconstructible from the token alone.
type Service interface {
	Issue(subject string) (string, error)
	Decode(tokenString string) (string, error)
}

type service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(cfg *config.Config) Service {
	return &service{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
	}
}

func (s *service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies signature then expiry, and returns the subject claim.
// Errors are one of ErrMalformed, ErrExpired, ErrMissingSubject.
func (s *service) Decode(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !tok.Valid {
		return "", ErrMalformed
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrMalformed
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrMissingSubject
	}
	return subject, nil
}
