package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/migration-tracker/internal/errors"
	"github.com/yukikurage/migration-tracker/internal/models"
)

// RequireAccessLevel rejects users below the given level. It must run
// after RequireAuth.
func RequireAccessLevel(level models.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.AccessLevel < level {
			apierrors.InsufficientAccess(c, level)
			c.Abort()
			return
		}

		c.Next()
	}
}
