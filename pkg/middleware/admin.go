package middleware

import (
	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"

	"github.com/gin-gonic/gin"
)

// RequireAdmin restricts a route to admin accounts. It expects
// NewAuthMiddleware to have run first
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortErr(c, apierr.Unauthorized(apierr.MsgUnauthorized))
			return
		}

		if user.Role != model.RoleAdmin {
			abortErr(c, apierr.Forbidden(apierr.MsgAdminRequired))
			return
		}

		c.Next()
	}
}
