package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	errTokenExpired      = errors.New("token has expired")
	errTokenMalformed    = errors.New("invalid token")
	errTokenMissingClaim = errors.New("invalid token payload")
)

// Claims is the self-contained session payload. Nothing is persisted:
// validity comes from the HS256 signature plus the exp timestamp.
type Claims struct {
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
	jwt.RegisteredClaims
}

// generateToken signs a 7-day (by default) session token for user.
// The secret is process-wide configuration, fixed at startup.
func generateToken(secret string, user User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: user.Username,
		UserID:   user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken verifies signature and expiry and returns the claims.
// Failures collapse into three cases: expired, malformed (bad encoding
// or signature), and a structurally valid token without a user_id.
func parseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errTokenExpired
		}
		return nil, errTokenMalformed
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errTokenMalformed
	}
	if claims.UserID == 0 {
		return nil, errTokenMissingClaim
	}
	return claims, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
