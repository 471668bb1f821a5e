package middleware

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// NewErrorResponder turns errors attached by handlers into the envelope
// every endpoint speaks. Anything that isn't a known kind becomes a 500
// with a fixed message, the real error only goes to the log
func NewErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		message := apierr.MsgInternalError

		var apiErr *apierr.Error

		switch {
		case errors.As(last.Err, &apiErr):
			status = apiErr.Status
			message = apiErr.Message
		case errors.Is(last.Err, jwt.ErrTokenExpired):
			status = http.StatusUnauthorized
			message = apierr.MsgTokenExpired
		case errors.Is(last.Err, jwt.ErrTokenMalformed),
			errors.Is(last.Err, jwt.ErrTokenSignatureInvalid),
			// Unverifiable covers keyfunc failures, like a header naming
			// an algorithm the signer never uses
			errors.Is(last.Err, jwt.ErrTokenUnverifiable),
			errors.Is(last.Err, security.ErrInvalidToken):
			status = http.StatusUnauthorized
			message = apierr.MsgInvalidToken
		}

		if status == http.StatusInternalServerError {
			zap.L().Error("Unhandled request error",
				zap.Error(last.Err),
				zap.String("requestID", c.GetString("requestID")),
			)
		}

		c.JSON(status, gin.H{
			"success": false,
			"message": message,
			"payload": nil,
		})
	}
}

func abortErr(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
