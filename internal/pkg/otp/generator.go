package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

// Length is the number of digits in every OTP
const Length = 6

// Hasher hashes an OTP for storage
type Hasher interface {
	Hash(ctx context.Context, secret string) (string, error)
}

// Generator produces random numeric OTPs
type Generator struct {
	hasher Hasher
	rand   io.Reader
}

// NewGenerator creates an OTP generator backed by crypto/rand
func NewGenerator(hasher Hasher) *Generator {
	return &Generator{hasher: hasher, rand: rand.Reader}
}

// Generate returns a zero-padded code of Length digits, each drawn
// uniformly from 0-9.
func (g *Generator) Generate() (string, error) {
	ten := big.NewInt(10)
	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(g.rand, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate otp digit: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

// GenerateWithHash returns a fresh OTP together with its hash.
func (g *Generator) GenerateWithHash(ctx context.Context) (*models.OtpEnvelope, error) {
	code, err := g.Generate()
	if err != nil {
		return nil, err
	}
	hashed, err := g.hasher.Hash(ctx, code)
	if err != nil {
		return nil, err
	}
	return &models.OtpEnvelope{Otp: code, HashedOtp: hashed}, nil
}

// IsWellFormed reports whether candidate looks like an OTP.
func IsWellFormed(candidate string) bool {
	if len(candidate) != Length {
		return false
	}
	for _, c := range candidate {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
