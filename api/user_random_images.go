package api

import (
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type randomImagesBody struct {
	SeenIDs []string `json:"seenIds"`
}

type randomImage struct {
	model.Image
	IsLiked bool `json:"isLiked"`
}

// RandomImages serves the public feed. A valid access token upgrades
// the response with per-image like state, anything wrong with the
// token just demotes the caller to guest instead of failing
func (a *API) RandomImages(c *gin.Context) {
	var data randomImagesBody
	// An empty body is fine, the feed just starts from scratch
	c.ShouldBindJSON(&data)

	userID := a.optionalUserID(c)

	q := a.DB.Model(model.Image{})
	if len(data.SeenIDs) > 0 {
		q = q.Where("id NOT IN ?", data.SeenIDs)
	}

	var images []model.Image

	err := q.Order("RANDOM()").Limit(10).Find(&images).Error
	if err != nil {
		fail(c, err)
		return
	}

	liked := map[string]bool{}

	if userID != "" && len(images) > 0 {
		ids := make([]string, len(images))
		for i, img := range images {
			ids[i] = img.ID
		}

		var likes []model.Like

		err := a.DB.Where("user_id = ? AND image_id IN ?", userID, ids).Find(&likes).Error
		if err != nil {
			fail(c, err)
			return
		}

		for _, l := range likes {
			liked[l.ImageID] = true
		}
	}

	out := make([]randomImage, len(images))
	for i, img := range images {
		out[i] = randomImage{Image: img, IsLiked: liked[img.ID]}
	}

	respond(c, http.StatusOK, "Random images retrieved successfully", out)
}

// optionalUserID resolves the access token header to a user ID when
// present, valid and not blacklisted. Any failure means guest
func (a *API) optionalUserID(c *gin.Context) string {
	token := middleware.BearerToken(c, middleware.HeaderAccessToken)
	if token == "" {
		return ""
	}

	revoked, err := a.Tokens.IsBlacklisted(token)
	if err != nil || revoked {
		return ""
	}

	userID, err := a.Signer.VerifyAccess(token)
	if err != nil {
		return ""
	}

	return userID
}
