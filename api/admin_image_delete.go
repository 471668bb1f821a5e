package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminImageDelete removes the S3 object first, then the record and
// any likes pointing at it. If the record delete fails after the
// object is gone the dangling row is harmless, its URL just 404s
func (a *API) AdminImageDelete(c *gin.Context) {
	id := c.Param("id")

	var image model.Image

	err := a.DB.Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound("Image not found"))
			return
		}

		fail(c, err)
		return
	}

	if err := a.Storage.Delete(c.Request.Context(), image.S3Key); err != nil {
		fail(c, err)
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}

		return tx.Delete(&image).Error
	})
	if err != nil {
		fail(c, err)
		return
	}

	zap.L().Info("Image deleted", zap.String("imageID", id), zap.String("key", image.S3Key))

	respond(c, http.StatusOK, "Image deleted successfully", nil)
}
