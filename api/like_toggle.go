package api

import (
	"errors"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type likeToggleBody struct {
	// "like" and "unlike" are idempotent, anything else toggles
	Status string `json:"status"`
}

func (a *API) LikeToggle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	imageID := c.Param("imageID")

	var data likeToggleBody
	c.ShouldBindJSON(&data)

	var image model.Image

	err := a.DB.Where("id = ?", imageID).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound("Image not found"))
			return
		}

		fail(c, err)
		return
	}

	var existing model.Like

	exists := true
	err = a.DB.Where("user_id = ? AND image_id = ?", user.ID, imageID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, err)
			return
		}
		// Not found is the expected miss here. The error must not
		// survive into the check below the switch, an unlike of a
		// not-liked image takes neither branch
		exists = false
		err = nil
	}

	wantLike := data.Status == "like" || (data.Status != "unlike" && !exists)

	switch {
	case wantLike && !exists:
		err = a.DB.Create(&model.Like{UserID: user.ID, ImageID: imageID}).Error
	case !wantLike && exists:
		err = a.DB.Where("user_id = ? AND image_id = ?", user.ID, imageID).Delete(&model.Like{}).Error
	}
	if err != nil {
		fail(c, err)
		return
	}

	message := "Image unliked"
	if wantLike {
		message = "Image liked"
	}

	respond(c, http.StatusOK, message, gin.H{"isLiked": wantLike})
}
