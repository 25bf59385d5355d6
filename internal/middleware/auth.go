package middleware

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// callerIDKey is the gin context key holding the resolved caller uid.
const callerIDKey = "callerID"

// Auth resolves the caller identity from a bearer token and stores the uid
// in the request context. A missing or invalid token leaves the caller
// unresolved; the role authorizer then fails the operation with
// Unauthenticated, keeping the error taxonomy in one place.
func Auth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		if uid, ok := resolveCaller(c, secret); ok {
			c.Set(callerIDKey, uid)
		}
		c.Next()
	}
}

// CallerID returns the resolved caller uid, or "" when the request carried
// no usable identity.
func CallerID(c *gin.Context) string {
	if v, ok := c.Get(callerIDKey); ok {
		if uid, ok := v.(string); ok {
			return uid
		}
	}
	return ""
}

func resolveCaller(c *gin.Context, secret []byte) (string, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		slog.Debug("rejected caller token", "error", err)
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
