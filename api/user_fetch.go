package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (a *API) UserFetch(c *gin.Context) {
	var user model.User

	err := a.DB.Where("id = ?", c.Param("id")).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound(apierr.MsgUserNotFound))
			return
		}

		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "User retrieved successfully", user)
}
