package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the identity minted into a session token after an OAuth callback.
type User struct {
	ID          string
	Email       string
	Name        string
	Provider    Provider
	AccessToken string
}

// Claims carries the user identity plus the provider access token, so
// mailbox and calendar requests need no server-side session store.
type Claims struct {
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Provider    Provider `json:"provider"`
	AccessToken string   `json:"accessToken"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(user User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:       user.Email,
		Name:        user.Name,
		Provider:    user.Provider,
		AccessToken: user.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return &claims, nil
}
