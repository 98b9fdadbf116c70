package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"waste-service/internal/auth"
	"waste-service/internal/model"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"

	// AccessTokenCookie carries the session for browser clients; API
	// clients use the Authorization header instead.
	AccessTokenCookie = "access_token"

	principalContextKey = "principal"
)

// Auth verifies the session token from the bearer header or the
// access_token cookie and attaches the resolved Principal to the
// request context.
func Auth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortUnauthorized(c, "Authentication token missing")
			return
		}
		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		principal := model.Principal{
			UserID: claims.UserID,
			Role:   claims.Role,
		}
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if raw := c.GetHeader(authorizationHeader); raw != "" {
		parts := strings.SplitN(raw, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], bearerPrefix) {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"statusCode": http.StatusUnauthorized,
		"message":    msg,
	})
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalContextKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	if !ok {
		return model.Principal{}, false
	}
	return principal, true
}
