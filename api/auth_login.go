package api

import (
	"errors"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *API) AuthLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		fail(c, apierr.BadRequest("Email and password are required"))
		return
	}

	if data.Email == "" || data.Password == "" {
		fail(c, apierr.BadRequest("Email and password are required"))
		return
	}

	var user model.User

	err := a.DB.Where("email = ?", validators.NormalizeEmail(data.Email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password so the endpoint doesn't
			// leak which emails are registered
			fail(c, apierr.Unauthorized(apierr.MsgInvalidCredentials))
			return
		}

		fail(c, err)
		return
	}

	ok, err := a.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgInvalidCredentials))
		return
	}

	if data.Role != "" && model.Role(data.Role) != user.Role {
		fail(c, apierr.Unauthorized("Invalid Role"))
		return
	}

	if err := a.issueTokenPair(c, user.ID); err != nil {
		fail(c, err)
		return
	}

	zap.L().Info("User logged in", zap.String("userID", user.ID), zap.String("requestID", requestID))

	respond(c, 200, apierr.MsgLoginSuccess, user)
}
