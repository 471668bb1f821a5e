package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthRefresh redeems a refresh token for a brand-new pair. A token can
// win this exchange exactly once: its hash record is deleted atomically
// before the new pair is issued, so a replay (or the loser of two
// racing calls) gets rejected as invalid
func (a *API) AuthRefresh(c *gin.Context) {
	refreshToken := middleware.BearerToken(c, middleware.HeaderRefreshToken)
	if refreshToken == "" {
		middleware.ClearTokenHeaders(c)
		fail(c, apierr.Unauthorized(apierr.MsgRefreshTokenMissing))
		return
	}

	found, err := a.Tokens.FindRefresh(refreshToken)
	if err != nil {
		middleware.ClearTokenHeaders(c)
		fail(c, err)
		return
	}
	if !found {
		middleware.ClearTokenHeaders(c)
		fail(c, apierr.Forbidden(apierr.MsgInvalidRefreshToken))
		return
	}

	userID, err := a.Signer.VerifyRefresh(refreshToken)
	if err != nil {
		middleware.ClearTokenHeaders(c)

		if errors.Is(err, jwt.ErrTokenExpired) {
			fail(c, apierr.Unauthorized(apierr.MsgSessionExpired))
			return
		}

		fail(c, err)
		return
	}

	// Consumed unconditionally, even if the user turns out to be gone
	won, err := a.Tokens.ConsumeRefresh(refreshToken)
	if err != nil {
		middleware.ClearTokenHeaders(c)
		fail(c, err)
		return
	}
	if !won {
		middleware.ClearTokenHeaders(c)
		fail(c, apierr.Forbidden(apierr.MsgInvalidRefreshToken))
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

	if err := a.issueTokenPair(c, user.ID); err != nil {
		middleware.ClearTokenHeaders(c)
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, apierr.MsgTokenRefresh, nil)
}
