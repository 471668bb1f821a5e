// Package service contains background jobs and storage helpers that sit
// between the handlers and the database
package service

import (
	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/security"
	"errors"
	"time"

	"gorm.io/gorm"
)

// TokenStore is the hashed token index. Raw tokens go in, only their
// HMAC hashes touch the database. Refresh hashes live until consumed,
// blacklist entries until their TTL runs out
type TokenStore struct {
	DB           *gorm.DB
	HashKey      []byte
	RefreshTTL   time.Duration
	BlacklistTTL time.Duration
}

func NewTokenStore(db *gorm.DB, hashKey []byte, refreshTTL, blacklistTTL time.Duration) *TokenStore {
	return &TokenStore{
		DB:           db,
		HashKey:      hashKey,
		RefreshTTL:   refreshTTL,
		BlacklistTTL: blacklistTTL,
	}
}

// RecordRefresh persists the hash of a freshly issued refresh token.
// The unique index on token_hash makes a double insert fail loudly
// instead of silently duplicating a credential
func (s *TokenStore) RecordRefresh(token, userID string) error {
	return s.DB.Create(&model.RefreshToken{
		TokenHash: security.SecureHash(token, s.HashKey),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.RefreshTTL),
	}).Error
}

// FindRefresh reports whether the token's hash is currently redeemable
func (s *TokenStore) FindRefresh(token string) (bool, error) {
	var rec model.RefreshToken

	err := s.DB.
		Where("token_hash = ?", security.SecureHash(token, s.HashKey)).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ConsumeRefresh deletes the token's hash record and reports whether
// this call was the one that removed it. The single DELETE keeps the
// find-and-delete atomic, so two racing refresh calls can't both win
func (s *TokenStore) ConsumeRefresh(token string) (bool, error) {
	res := s.DB.
		Where("token_hash = ?", security.SecureHash(token, s.HashKey)).
		Delete(&model.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// Blacklist records an access token's hash so it stops authenticating
// before its signed expiry. The entry only has to outlive the token
func (s *TokenStore) Blacklist(token string) error {
	return s.DB.Create(&model.BlacklistedToken{
		TokenHash: security.SecureHash(token, s.HashKey),
		ExpiresAt: time.Now().Add(s.BlacklistTTL),
	}).Error
}

func (s *TokenStore) IsBlacklisted(token string) (bool, error) {
	var rec model.BlacklistedToken

	err := s.DB.
		Where("token_hash = ? AND expires_at > ?", security.SecureHash(token, s.HashKey), time.Now()).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
