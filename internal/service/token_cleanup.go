package service

import (
	"bitwise74/gallery-api/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup periodically purges token records that can no longer
// matter: blacklist entries past their TTL and refresh hashes whose
// token has outlived its own signed expiry
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			now := time.Now()

			err := db.
				Where("expires_at < ?", now).
				Delete(&model.BlacklistedToken{}).
				Error
			if err != nil {
				zap.L().Error("Failed to cleanup blacklisted tokens", zap.Error(err))
			}

			err = db.
				Where("expires_at < ?", now).
				Delete(&model.RefreshToken{}).
				Error
			if err != nil {
				zap.L().Error("Failed to cleanup stale refresh tokens", zap.Error(err))
			}
		}
	}()
}
