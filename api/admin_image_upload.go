package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"
	"bitwise74/gallery-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) AdminImageUpload(c *gin.Context) {
	admin, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, apierr.BadRequest("No file uploaded"))
		return
	}

	if err := validators.ImageValidator(fh, viper.GetInt64("upload.max_size")); err != nil {
		fail(c, apierr.BadRequest(err.Error()))
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	key := fmt.Sprintf("images/%d-%s", time.Now().UnixMilli(), sanitizeFilename(fh.Filename))

	url, err := a.Storage.Put(c.Request.Context(), key, f, fh.Size, contentType)
	if err != nil {
		fail(c, err)
		return
	}

	imageID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		fail(c, err)
		return
	}

	image := model.Image{
		ID:           imageID,
		OriginalName: fh.Filename,
		S3Key:        key,
		S3URL:        url,
		Size:         fh.Size,
		Mimetype:     contentType,
		UploadedBy:   admin.ID,
	}

	if err := a.DB.Create(&image).Error; err != nil {
		// The object is already in the bucket, try not to leak it
		if delErr := a.Storage.Delete(c.Request.Context(), key); delErr != nil {
			zap.L().Error("Failed to cleanup after failed upload", zap.Error(delErr), zap.String("key", key))
		}

		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, "Image uploaded successfully", image)
}

// sanitizeFilename collapses whitespace so the S3 key stays URL-friendly
func sanitizeFilename(name string) string {
	return strings.Join(strings.Fields(name), "-")
}
