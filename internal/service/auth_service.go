package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Sables/internal/model"
	"github.com/lshigami/Sables/internal/repository"
	"github.com/lshigami/Sables/internal/security"
	"github.com/lshigami/Sables/internal/token"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(username, password string) error
	Login(username, password string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   token.Service
}

func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, tokens token.Service) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Signup creates a user with a hashed password. Usernames are matched
// case-sensitively; a taken username yields ErrDuplicateUser.
func (s *authService) Signup(username, password string) error {
	_, err := s.userRepo.FindByUsername(username)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("username", username).Msg("Signup: user lookup failed")
		return fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error().Err(err).Msg("Signup: password hashing failed")
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := model.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Signup: failed to create user")
		return fmt.Errorf("error creating user: %w", err)
	}
	log.Info().Str("username", username).Uint("userID", user.ID).Msg("User created")
	return nil
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password both return ErrInvalidCredentials so the response
// never reveals whether the account exists.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error().Err(err).Str("username", username).Msg("Login: user lookup failed")
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("Login: token issuance failed")
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return signed, nil
}
