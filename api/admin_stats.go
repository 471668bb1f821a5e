package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"

	"github.com/gin-gonic/gin"
)

func (a *API) AdminStats(c *gin.Context) {
	var totalUsers, activeUsers, totalImages int64

	if err := a.DB.Model(model.User{}).Count(&totalUsers).Error; err != nil {
		fail(c, err)
		return
	}

	if err := a.DB.Model(model.User{}).Where("status = ?", model.StatusActive).Count(&activeUsers).Error; err != nil {
		fail(c, err)
		return
	}

	if err := a.DB.Model(model.Image{}).Count(&totalImages).Error; err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Dashboard stats retrieved successfully", gin.H{
		"totalUsers":  totalUsers,
		"activeUsers": activeUsers,
		"totalImages": totalImages,
	})
}
