package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"
	"bitwise74/gallery-api/validators"

	"github.com/gin-gonic/gin"
)

type passwordBody struct {
	Password string `json:"password"`
}

func (a *API) UserPassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	var data passwordBody
	if err := c.ShouldBindJSON(&data); err != nil {
		fail(c, apierr.BadRequest("Password is required"))
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		fail(c, apierr.BadRequest(err.Error()))
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		fail(c, err)
		return
	}

	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Update("password_hash", hash).
		Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Password updated successfully", nil)
}
