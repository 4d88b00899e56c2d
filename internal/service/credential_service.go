package service

import (
	"errors"
	"fmt"
	"time"

	"dicefit-api/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenTTL is the fixed lifetime of an issued bearer token.
	TokenTTL = time.Hour

	tokenIssuer = "dicefit-api"
	minCost     = 10
)

// claims is the token payload: the account id under "id".
type claims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

type CredentialService struct {
	secret []byte
	cost   int
	now    func() time.Time
}

type CredentialOption func(*CredentialService)

// WithClock replaces time.Now for token issuance and verification.
func WithClock(now func() time.Time) CredentialOption {
	return func(s *CredentialService) { s.now = now }
}

// WithCost sets the bcrypt cost; values below 10 are raised to 10.
func WithCost(cost int) CredentialOption {
	return func(s *CredentialService) { s.cost = cost }
}

func NewCredentialService(secret string, opts ...CredentialOption) *CredentialService {
	s := &CredentialService{secret: []byte(secret), cost: minCost, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.cost < minCost {
		s.cost = minCost
	}
	return s
}

var _ core.CredentialService = (*CredentialService)(nil)

func (s *CredentialService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *CredentialService) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *CredentialService) IssueToken(accountID int64) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(TokenTTL)
	c := &claims{
		ID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    tokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// VerifyToken returns the account id carried by token. Any malformed,
// expired or mis-signed token yields core.ErrInvalidToken.
func (s *CredentialService) VerifyToken(token string) (int64, error) {
	if token == "" {
		return 0, core.ErrInvalidToken
	}

	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: token has expired", core.ErrInvalidToken)
		}
		return 0, fmt.Errorf("%w: %v", core.ErrInvalidToken, err)
	}
	if !parsed.Valid || c.ID <= 0 {
		return 0, core.ErrInvalidToken
	}
	return c.ID, nil
}
