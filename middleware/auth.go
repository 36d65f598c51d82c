// middleware/auth.go
package middleware

import (
	"strings"

	"drmike/models"
	"drmike/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authStatusKey = "authStatus"

// AuthStatusMiddleware resolves the visitor's authentication status from a
// bearer token (Authorization header first, then the auth cookie). It never
// aborts: an absent or invalid token simply means "not signed in".
func AuthStatusMiddleware(secret []byte, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.AuthStatus{}

		if tokenString := bearerToken(c, cookieName); tokenString != "" {
			claims, err := utils.ParseToken(secret, tokenString)
			if err != nil {
				loggerFrom(c).Debug("ignoring invalid auth token", zap.Error(err))
			} else {
				status = models.AuthStatus{
					IsAuthenticated: true,
					User:            &models.AuthUser{ID: claims.Subject, Name: claims.Name},
				}
			}
		}

		c.Set(authStatusKey, status)
		c.Next()
	}
}

// AuthStatusFrom returns the status stored by AuthStatusMiddleware.
func AuthStatusFrom(c *gin.Context) models.AuthStatus {
	if v, ok := c.Get(authStatusKey); ok {
		if status, ok := v.(models.AuthStatus); ok {
			return status
		}
	}
	return models.AuthStatus{}
}

func bearerToken(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookieName == "" {
		return ""
	}
	if v, err := c.Cookie(cookieName); err == nil {
		return v
	}
	return ""
}
