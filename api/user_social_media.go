package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"

	"github.com/gin-gonic/gin"
)

// SocialMediaFetch is public. The four platform rows are seeded on
// first call so the dashboard always has something to render
func (a *API) SocialMediaFetch(c *gin.Context) {
	var links []model.SocialMediaLink

	err := a.DB.Order("platform").Find(&links).Error
	if err != nil {
		fail(c, err)
		return
	}

	if len(links) == 0 {
		for _, p := range model.Platforms {
			links = append(links, model.SocialMediaLink{Platform: p, IsActive: true})
		}

		if err := a.DB.Create(&links).Error; err != nil {
			fail(c, err)
			return
		}
	}

	respond(c, http.StatusOK, "Social media links retrieved successfully", links)
}
