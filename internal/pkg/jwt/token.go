package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid verification token")

// VerificationClaims binds a verified answer to its transaction and field
type VerificationClaims struct {
	TransactionID string `json:"transactionId"`
	FormID        string `json:"formId"`
	FieldID       string `json:"fieldId"`
	Answer        string `json:"answer"`
	jwt.RegisteredClaims
}

// Signer issues and checks signed verification tokens
type Signer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewSigner creates an HS256 signer from cfg
func NewSigner(cfg models.SigningConfig) (*Signer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("signing secret is required")
	}
	return &Signer{secret: []byte(cfg.Secret), issuer: cfg.Issuer, now: time.Now}, nil
}

// Sign returns a token for payload
func (s *Signer) Sign(payload models.SignaturePayload) (string, error) {
	claims := VerificationClaims{
		TransactionID: payload.TransactionID,
		FormID:        payload.FormID,
		FieldID:       payload.FieldID,
		Answer:        payload.Answer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   s.issuer,
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign verification token: %w", err)
	}
	return signed, nil
}

// Verify checks a token's signature and issuer and returns its payload.
// It is the check the submission pipeline runs on signedData before
// accepting a verified answer; the engine itself only signs.
func (s *Signer) Verify(tokenString string) (*models.SignaturePayload, error) {
	claims := &VerificationClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return &models.SignaturePayload{
		TransactionID: claims.TransactionID,
		FormID:        claims.FormID,
		FieldID:       claims.FieldID,
		Answer:        claims.Answer,
	}, nil
}
