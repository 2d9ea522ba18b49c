package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminCodeVerifier checks administrator registration codes against a bcrypt hash.
// A verifier without a hash rejects every code.
type AdminCodeVerifier struct {
	hash []byte
}

// NewAdminCodeVerifier prefers a pre-computed hash and otherwise hashes the
// plain code once at startup.
func NewAdminCodeVerifier(plainCode, hash string) (*AdminCodeVerifier, error) {
	if hash = strings.TrimSpace(hash); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid admin code hash: %w", err)
		}
		return &AdminCodeVerifier{hash: []byte(hash)}, nil
	}

	if plainCode == "" {
		return &AdminCodeVerifier{}, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin code: %w", err)
	}
	return &AdminCodeVerifier{hash: hashed}, nil
}

// Enabled reports whether administrator registration is possible at all.
func (v *AdminCodeVerifier) Enabled() bool {
	return v != nil && len(v.hash) > 0
}

// Verify reports whether code matches the configured administrator code.
func (v *AdminCodeVerifier) Verify(code string) bool {
	if !v.Enabled() || code == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(code)) == nil
}
