// Package model defines database models
package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusActive || s == StatusBlocked
}

type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `gorm:"unique;not null" json:"email"`

	// Contact handle shown to admins, not used for auth
	Whatsapp  string `json:"whatsapp"`
	Watermark string `json:"watermark"`

	PasswordHash string `gorm:"not null" json:"-"`

	Status Status `gorm:"default:pending" json:"status"`
	Role   Role   `gorm:"default:user" json:"role"`

	// Set once, on the first transition to active
	ActivatedAt *time.Time `json:"activatedAt"`
	Remarks     string     `json:"remarks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Images []Image `gorm:"foreignKey:UploadedBy" json:"-"`
	Likes  []Like  `gorm:"foreignKey:UserID" json:"-"`
}
