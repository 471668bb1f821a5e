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

func (a *API) AdminUserDelete(c *gin.Context) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	id := c.Param("id")

	var user model.User

	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound(apierr.MsgUserNotFound))
			return
		}

		fail(c, err)
		return
	}

	if user.ID == admin.ID {
		fail(c, apierr.BadRequest("You cannot delete your own account"))
		return
	}

	if err := a.DB.Delete(&user).Error; err != nil {
		fail(c, err)
		return
	}

	zap.L().Info("User deleted", zap.String("userID", user.ID), zap.String("by", admin.ID))

	respond(c, http.StatusOK, "User deleted successfully", nil)
}
