package security_test

import (
	"testing"

	"github.com/lshigami/Sables/internal/security"
)

func TestHashAndVerify(t *testing.T) {
	hasher := security.NewPasswordHasher()

	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !hasher.Verify("s3cret", hash) {
		t.Fatal("expected password to verify against its own hash")
	}
	if hasher.Verify("not-the-password", hash) {
		t.Fatal("expected a different password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	hasher := security.NewPasswordHasher()

	first, err := hasher.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash("same-input")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password should differ (salt)")
	}
	if !hasher.Verify("same-input", first) || !hasher.Verify("same-input", second) {
		t.Fatal("both salted hashes must verify the original password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := security.NewPasswordHasher()

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "garbage", hash: "not-a-bcrypt-hash"},
		{name: "truncated", hash: "$2a$10$short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hasher.Verify("anything", tt.hash) {
				t.Errorf("Verify(%q) = true, want false", tt.hash)
			}
		})
	}
}
