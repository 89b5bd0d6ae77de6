package token_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Sables/config"
	"github.com/lshigami/Sables/internal/token"
)

func newTestService(ttl time.Duration) token.Service {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-signing-secret"
	cfg.Auth.TokenTTL = ttl
	return token.NewService(cfg)
}

func TestIssueAndDecode(t *testing.T) {
	svc := newTestService(time.Minute)

	signed, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	subject, err := svc.Decode(signed)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("decoded subject = %q, want %q", subject, "alice")
	}
}

func TestDecodeExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	signed, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Decode(signed); !errors.Is(err, token.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	svc := newTestService(time.Minute)

	signed, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Token signed with a different secret.
	otherCfg := &config.Config{}
	otherCfg.Auth.JWTSecret = "another-secret"
	otherCfg.Auth.TokenTTL = time.Minute
	foreign, err := token.NewService(otherCfg).Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "tampered payload", token: tamper(signed)},
		{name: "wrong secret", token: foreign},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Decode(tt.token); !errors.Is(err, token.ErrMalformed) {
				t.Errorf("Decode(%s) error = %v, want ErrMalformed", tt.name, err)
			}
		})
	}
}

func TestDecodeMissingSubject(t *testing.T) {
	svc := newTestService(time.Minute)

	// Well-signed token without a sub claim.
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}
	if _, err := svc.Decode(signed); !errors.Is(err, token.ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

// tamper flips the payload segment of a JWT while keeping its structure.
func tamper(signed string) string {
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		return signed + "x"
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	return parts[0] + "." + string(payload) + "." + parts[2]
}
