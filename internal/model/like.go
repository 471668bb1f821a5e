package model

import "time"

// Like marks an image as liked by a user. A user can like an image
// at most once, enforced by the composite unique index
type Like struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string `gorm:"uniqueIndex:idx_user_image;not null" json:"userId"`
	ImageID string `gorm:"uniqueIndex:idx_user_image;not null" json:"imageId"`

	Image *Image `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE" json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
