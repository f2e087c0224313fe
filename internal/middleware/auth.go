package middleware

import (
	"context"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/CAPTxTreeckle/Treeckle-3.0/internal/domain"
)

// RequesterKey is the context key under which the authenticated user is
// stored for downstream handlers.
const RequesterKey = "requester"

type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// UserLoader resolves the authenticated user record by id.
type UserLoader func(ctx context.Context, id int64) (*domain.User, error)

// JWTAuth validates the bearer token and loads the requester into the
// request context. Requests with a missing or invalid token are rejected
// with 401.
func JWTAuth(secret string, loadUser UserLoader) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		user, err := loadUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unknown user"})
			return
		}

		c.Set(RequesterKey, user)
		c.Next()
	}
}

// Requester returns the authenticated user placed by JWTAuth.
func Requester(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(RequesterKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
