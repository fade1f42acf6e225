package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are reported as one of two kinds so callers can
// tell a well-signed but stale token from garbage.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

const (
	tokenTypeAccess = "access"
	tokenTypeVerify = "verify"
)

// AccessClaims assert an authenticated subject. The subject ID rides in
// the registered "sub" claim.
type AccessClaims struct {
	Verified bool   `json:"verified"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

// VerificationClaims assert ownership of an email address during account
// verification. They carry no subject on purpose so a verification token
// can never pass as an access token.
type VerificationClaims struct {
	Email string `json:"email"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies the stateless HS256 tokens. Verification
// is a pure function of (token, current time, secret).
type TokenManager struct {
	secret    []byte
	accessTTL time.Duration
	verifyTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, verifyTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		verifyTTL: verifyTTL,
	}
}

// IssueAccess creates a signed access token for the given subject.
func (m *TokenManager) IssueAccess(userID string, verified bool) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		Verified: verified,
		Type:     tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	})

	return t.SignedString(m.secret)
}

// IssueVerification creates a signed account-verification token for the
// given email address.
func (m *TokenManager) IssueVerification(email string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, VerificationClaims{
		Email: email,
		Type:  tokenTypeVerify,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.verifyTTL)),
		},
	})

	return t.SignedString(m.secret)
}

// VerifyAccess checks the signature and expiry of an access token and
// returns its claims. Failures are ErrTokenExpired or ErrTokenInvalid.
func (m *TokenManager) VerifyAccess(token string) (*AccessClaims, error) {
	var claims AccessClaims

	if err := m.parse(token, &claims); err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeAccess || claims.Subject == "" {
		return nil, fmt.Errorf("%w: not an access token", ErrTokenInvalid)
	}

	return &claims, nil
}

// VerifyVerification checks the signature and expiry of an account
// verification token and returns its claims.
func (m *TokenManager) VerifyVerification(token string) (*VerificationClaims, error) {
	var claims VerificationClaims

	if err := m.parse(token, &claims); err != nil {
		return nil, err
	}

	if claims.Type != tokenTypeVerify || claims.Email == "" {
		return nil, fmt.Errorf("%w: not a verification token", ErrTokenInvalid)
	}

	return &claims, nil
}

func (m *TokenManager) parse(token string, claims jwt.Claims) error {
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %s", ErrTokenExpired, err)
		}

		return fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}

	if !t.Valid {
		return ErrTokenInvalid
	}

	return nil
}
