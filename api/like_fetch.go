package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) LikeFetch(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	page, limit, offset := parsePage(c, 20)

	var total int64

	err := a.DB.Model(model.Like{}).Where("user_id = ?", user.ID).Count(&total).Error
	if err != nil {
		fail(c, err)
		return
	}

	var likes []model.Like

	err = a.DB.
		Preload("Image").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).
		Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Likes retrieved successfully", gin.H{
		"likes":      likes,
		"pagination": makePagination(total, page, limit),
	})
}
