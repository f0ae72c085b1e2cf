package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Payload is the authenticated identity carried by an access token.
type Payload struct {
	UserID   string
	Username string
}

// Manager signs and verifies access tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) Manager {
	return Manager{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Username string `json:"username,omitempty"`
	jwt.StandardClaims
}

// Generate issues a signed token for the given user.
func (m Manager) Generate(userID, username string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns its payload.
func (m Manager) Verify(tokenString string) (Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" {
		return Payload{}, ErrInvalidToken
	}
	return Payload{UserID: claims.Subject, Username: claims.Username}, nil
}
