package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/internal/service"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "user"

// NewAuthMiddleware authenticates a request from its access token
// header. The order matters: blacklist first, then signature and
// expiry, then the user lookup. A valid token whose user is gone tells
// the client to drop both tokens
func NewAuthMiddleware(db *gorm.DB, signer *security.TokenSigner, tokens *service.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := BearerToken(c, HeaderAccessToken)
		if accessToken == "" {
			abortErr(c, apierr.Unauthorized(apierr.MsgAccessTokenMissing))
			return
		}

		revoked, err := tokens.IsBlacklisted(accessToken)
		if err != nil {
			abortErr(c, fmt.Errorf("failed to check token blacklist, %w", err))
			return
		}
		if revoked {
			abortErr(c, apierr.Forbidden(apierr.MsgTokenRevoked))
			return
		}

		userID, err := signer.VerifyAccess(accessToken)
		if err != nil {
			// The responder knows expired from malformed
			abortErr(c, err)
			return
		}

		var user model.User

		err = db.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ClearTokenHeaders(c)
				abortErr(c, apierr.New(http.StatusConflict, apierr.MsgUserNotFound))
				return
			}

			abortErr(c, fmt.Errorf("failed to load user for token, %w", err))
			return
		}

		c.Set(userKey, &user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user attached by NewAuthMiddleware
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}

	user, ok := v.(*model.User)
	return user, ok
}
