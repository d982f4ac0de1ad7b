package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "" || hash == "admin123" {
		t.Errorf("HashPassword() returned %q", hash)
	}

	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	hash1, _ := HashPassword("admin123")
	hash2, _ := HashPassword("admin123")

	if hash1 == hash2 {
		t.Error("same password should produce different hashes")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, _ := HashPassword("admin123")

	tests := []struct {
		name     string
		password string
		hash     string
		expected bool
	}{
		{"correct password", "admin123", hash, true},
		{"wrong password", "admin", hash, false},
		{"empty password", "", hash, false},
		{"case sensitive", "ADMIN123", hash, false},
		{"invalid hash", "admin123", "not-a-hash", false},
		{"empty hash", "admin123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.expected {
				t.Errorf("CheckPassword(%q) = %v, expected %v", tt.password, got, tt.expected)
			}
		})
	}
}
