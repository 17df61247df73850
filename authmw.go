package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// bearerToken pulls the credential out of an Authorization header.
// Older clients send the raw token without the "Bearer " prefix, so
// both forms are accepted.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return strings.TrimSpace(header)
}

// lookupUser resolves the request's token to a user, or nil when the
// token is absent, invalid, expired, or points at a deleted user. It
// never surfaces why: callers that allow anonymous access just carry on.
func lookupUser(db *gorm.DB, secret string, r *http.Request) *User {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return nil
	}
	claims, err := parseToken(secret, token)
	if err != nil {
		return nil
	}
	var u User
	if err := db.First(&u, "id = ?", claims.UserID).Error; err != nil {
		return nil
	}
	return &u
}

// RequireAuth guards endpoints that need a logged-in user. Unlike
// lookupUser it reports the specific failure as a 401 reason.
func RequireAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required"})
			return
		}

		claims, err := parseToken(secret, token)
		if err != nil {
			reason := "Invalid token"
			switch {
			case errors.Is(err, errTokenExpired):
				reason = "Token has expired"
			case errors.Is(err, errTokenMissingClaim):
				reason = "Invalid token payload"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": reason})
			return
		}

		var u User
		if err := db.First(&u, "id = ?", claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
			return
		}

		c.Set("user", u)
		c.Set("userID", u.ID)
		c.Next()
	}
}

// currentUser reads the user RequireAuth stashed in the gin context.
func currentUser(c *gin.Context) (User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return User{}, false
	}
	u, ok := v.(User)
	return u, ok
}
