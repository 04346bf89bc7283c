package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is surfaced separately so the UI can tell the user
	// to log in again, distinct from every other failure kind.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken covers malformed, unsigned or tampered tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload carried by a session token.
type Claims struct {
	UserID   uint  `json:"user_id"`
	GithubID int64 `json:"github_id"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 session tokens.
type TokenIssuer struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenIssuer builds an issuer with the signing secret and token
// lifetime from configuration.
func NewTokenIssuer(secret string, expiration time.Duration) *TokenIssuer {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiration: expiration}
}

// CreateToken signs a token identifying the user.
func (t *TokenIssuer) CreateToken(userID uint, githubID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		GithubID: githubID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token, distinguishing expiry from
// every other failure.
func (t *TokenIssuer) VerifyToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
