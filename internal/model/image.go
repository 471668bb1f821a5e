package model

import "time"

type Image struct {
	ID string `gorm:"primaryKey" json:"id"`

	// Original file name before turning it into an S3 key. Different
	// admins may upload files with the same name, so the S3 key is
	// generated separately and kept unique
	OriginalName string `gorm:"not null" json:"originalName"`
	S3Key        string `gorm:"unique;not null" json:"s3Key"`
	S3URL        string `gorm:"not null" json:"s3Url"`

	Size     int64  `gorm:"not null" json:"size"`
	Mimetype string `gorm:"not null" json:"mimetype"`

	UploadedBy string `gorm:"index;not null" json:"uploadedBy"`
	Uploader   *User  `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
