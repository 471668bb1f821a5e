package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusBody struct {
	Status string `json:"status"`
}

func (a *API) AdminUserStatus(c *gin.Context) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	id := c.Param("id")

	var data statusBody
	if err := c.ShouldBindJSON(&data); err != nil {
		fail(c, apierr.BadRequest("Invalid status. Must be active, pending, or blocked"))
		return
	}

	status := model.Status(data.Status)
	if !status.Valid() {
		fail(c, apierr.BadRequest("Invalid status. Must be active, pending, or blocked"))
		return
	}

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

	if user.ID == admin.ID && status != model.StatusActive {
		fail(c, apierr.BadRequest("You cannot block or pending your own account"))
		return
	}

	updates := map[string]any{"status": status}

	// ActivatedAt marks the first activation only, later round trips
	// through blocked and back don't move it
	if status == model.StatusActive && user.ActivatedAt == nil {
		updates["activated_at"] = time.Now()
	}

	err = a.DB.Model(model.User{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		fail(c, err)
		return
	}

	if err := a.DB.Where("id = ?", id).First(&user).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, fmt.Sprintf("User status updated to %s", status), user)
}
