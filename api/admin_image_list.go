package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (a *API) AdminImageList(c *gin.Context) {
	page, limit, offset := parsePage(c, 20)

	var total int64

	if err := a.DB.Model(model.Image{}).Count(&total).Error; err != nil {
		fail(c, err)
		return
	}

	var images []model.Image

	err := a.DB.
		Preload("Uploader", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "email") }).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&images).
		Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Images retrieved successfully", gin.H{
		"images":     images,
		"pagination": makePagination(total, page, limit),
	})
}
