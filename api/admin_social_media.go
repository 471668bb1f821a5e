package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/apierr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type socialLinkData struct {
	URL      string `json:"url"`
	IsActive *bool  `json:"isActive"`
}

// UnmarshalJSON accepts both the object form and the legacy bare-string
// form the old dashboard sent
func (d *socialLinkData) UnmarshalJSON(b []byte) error {
	var url string
	if err := json.Unmarshal(b, &url); err == nil {
		d.URL = url
		return nil
	}

	type alias socialLinkData
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}

	*d = socialLinkData(a)
	return nil
}

type socialMediaBody struct {
	Links map[string]socialLinkData `json:"links"`
}

func (a *API) AdminSocialMediaUpdate(c *gin.Context) {
	var data socialMediaBody
	if err := c.ShouldBindJSON(&data); err != nil || data.Links == nil {
		fail(c, apierr.BadRequest("Invalid request body. Expected { links: { platform: { url, isActive } } }"))
		return
	}

	for p := range data.Links {
		if !model.Platform(p).Valid() {
			fail(c, apierr.BadRequest(fmt.Sprintf("Invalid platform: %s", p)))
			return
		}
	}

	updated := make([]model.SocialMediaLink, 0, len(data.Links))

	for p, d := range data.Links {
		isActive := true
		if d.IsActive != nil {
			isActive = *d.IsActive
		}

		link := model.SocialMediaLink{
			Platform: model.Platform(p),
			URL:      d.URL,
			IsActive: isActive,
		}

		// The column carries default:true, so is_active has to be named
		// explicitly or a false value would be dropped from the insert
		err := a.DB.
			Select("Platform", "URL", "IsActive", "CreatedAt", "UpdatedAt").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "platform"}},
				DoUpdates: clause.AssignmentColumns([]string{"url", "is_active"}),
			}).
			Create(&link).Error
		if err != nil {
			fail(c, err)
			return
		}

		if err := a.DB.Where("platform = ?", p).First(&link).Error; err != nil {
			fail(c, err)
			return
		}

		updated = append(updated, link)
	}

	respond(c, http.StatusOK, "All social media links updated successfully", updated)
}

func (a *API) AdminSocialMediaToggle(c *gin.Context) {
	platform := model.Platform(c.Param("platform"))
	if !platform.Valid() {
		fail(c, apierr.BadRequest("Invalid platform"))
		return
	}

	var link model.SocialMediaLink

	err := a.DB.Where("platform = ?", platform).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apierr.NotFound(fmt.Sprintf("Social media link for %s not found", platform)))
			return
		}

		fail(c, err)
		return
	}

	link.IsActive = !link.IsActive

	if err := a.DB.Model(&link).Update("is_active", link.IsActive).Error; err != nil {
		fail(c, err)
		return
	}

	state := "deactivated"
	if link.IsActive {
		state = "activated"
	}

	respond(c, http.StatusOK, fmt.Sprintf("%s status %s successfully", platform, state), link)
}
