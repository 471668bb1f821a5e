package model

import "time"

// RefreshToken holds the HMAC hash of an issued refresh token. The raw
// token is never stored. A row exists exactly while the token is
// redeemable: it is deleted when the token is consumed by a refresh or
// invalidated by a logout
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TokenHash string    `gorm:"unique;not null"`
	UserID    string    `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// BlacklistedToken holds the HMAC hash of an access token revoked by
// logout before its signed expiry. Rows past ExpiresAt are ignored by
// lookups and purged by the cleanup job
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TokenHash string    `gorm:"unique;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
