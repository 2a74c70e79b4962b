package middleware

import (
	"net/http"
	"strings"

	"github.com/SaideLeon/nativespeak-api/internal/config"
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/internal/util"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores the
// parsed claims on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.Error(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			util.Error(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(token, cfg.JWT.Secret)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware allows only the listed roles past.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Error(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		util.Error(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// LastSeenUpdater marks a user as recently active.
type LastSeenUpdater interface {
	UpdateLastSeen(userID uint) error
}

// ActivityMiddleware stamps last-seen off the request path; failures are
// swallowed.
func ActivityMiddleware(users LastSeenUpdater) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			go func(id uint) {
				_ = users.UpdateLastSeen(id)
			}(claims.UserID)
		}
		c.Next()
	}
}
