package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthLogout revokes the presented token pair. Calling it without a
// refresh token is not an error, the caller is simply already logged
// out. The response headers come back cleared on every path
func (a *API) AuthLogout(c *gin.Context) {
	accessToken := middleware.BearerToken(c, middleware.HeaderAccessToken)
	refreshToken := middleware.BearerToken(c, middleware.HeaderRefreshToken)

	if refreshToken == "" {
		middleware.ClearTokenHeaders(c)
		respond(c, http.StatusOK, apierr.MsgLogoutSuccess, nil)
		return
	}

	userID, err := a.Signer.VerifyRefresh(refreshToken)
	if err != nil {
		middleware.ClearTokenHeaders(c)
		fail(c, err)
		return
	}

	var user model.User

	err = a.DB.Where("id = ?", userID).First(&user).Error
	if err != nil {
		middleware.ClearTokenHeaders(c)

		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.New(http.StatusConflict, apierr.MsgUserNotFound))
			return
		}

		fail(c, err)
		return
	}

	// The access token is stateless and stays cryptographically valid
	// until its own expiry, blacklisting its hash is what makes the
	// logout stick
	if accessToken != "" {
		if err := a.Tokens.Blacklist(accessToken); err != nil {
			middleware.ClearTokenHeaders(c)
			fail(c, err)
			return
		}
	}

	if _, err := a.Tokens.ConsumeRefresh(refreshToken); err != nil {
		middleware.ClearTokenHeaders(c)
		fail(c, err)
		return
	}

	middleware.ClearTokenHeaders(c)

	zap.L().Info("User logged out", zap.String("userID", user.ID))

	respond(c, http.StatusOK, apierr.MsgLogoutSuccess, nil)
}
