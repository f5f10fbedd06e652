package hashing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used for OTP hashes
	DefaultCost = 10
	// DefaultConcurrency caps simultaneous hash computations
	DefaultConcurrency = 8
)

// ErrHashing is returned when a hash cannot be computed or compared.
var ErrHashing = errors.New("hashing failed")

// Hasher hashes and compares OTPs with bcrypt. Computations run on at most
// concurrency goroutines at a time; callers beyond that wait for a slot.
type Hasher struct {
	cost  int
	slots chan struct{}
}

// NewHasher creates a bcrypt hasher. Non-positive arguments fall back to the
// defaults.
func NewHasher(cost, concurrency int) *Hasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Hasher{
		cost:  cost,
		slots: make(chan struct{}, concurrency),
	}
}

// Hash returns the salted bcrypt hash of secret.
func (h *Hasher) Hash(ctx context.Context, secret string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hashed), nil
}

// Compare reports whether secret matches hashed. A mismatch is not an error.
func (h *Hasher) Compare(ctx context.Context, secret, hashed string) (bool, error) {
	if err := h.acquire(ctx); err != nil {
		return false, err
	}
	defer h.release()

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashing, err)
	}
}

func (h *Hasher) acquire(ctx context.Context) error {
	select {
	case h.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrHashing, ctx.Err())
	}
}

func (h *Hasher) release() {
	<-h.slots
}
