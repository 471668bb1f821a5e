package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (a *API) AdminImageFetch(c *gin.Context) {
	var image model.Image

	err := a.DB.
		Preload("Uploader", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "email") }).
		Where("id = ?", c.Param("id")).
		First(&image).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound("Image not found"))
			return
		}

		fail(c, err)
		return
	}

	respond(c, http.StatusOK, "Image retrieved successfully", image)
}
