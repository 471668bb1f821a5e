package model

import "time"

type Platform string

const (
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformThreads   Platform = "threads"
)

// Platforms lists every supported platform, in the order links are seeded
var Platforms = []Platform{PlatformYoutube, PlatformInstagram, PlatformFacebook, PlatformThreads}

func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

type SocialMediaLink struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Platform Platform `gorm:"unique;not null" json:"platform"`
	URL      string   `json:"url"`
	IsActive bool     `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
