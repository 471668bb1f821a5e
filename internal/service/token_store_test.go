package service

import (
	"fmt"
	"testing"
	"time"

	"bitwise74/gallery-api/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testStore(t *testing.T) *TokenStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.RefreshToken{}, model.BlacklistedToken{}))

	return NewTokenStore(db, []byte("hash-key"), time.Hour, time.Hour)
}

func TestRecordAndFindRefresh(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	require.NoError(t, s.RecordRefresh("tok-1", "user-1"))

	found, err := s.FindRefresh("tok-1")
	require.NoError(t, err)
	require.True(t, found)

	found, err = s.FindRefresh("tok-2")
	require.NoError(t, err)
	require.False(t, found)

	// Only the hash may hit the database
	var rec model.RefreshToken
	require.NoError(t, s.DB.First(&rec).Error)
	require.NotEqual(t, "tok-1", rec.TokenHash)
	require.Equal(t, "user-1", rec.UserID)
}

func TestRecordRefreshDuplicate(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	require.NoError(t, s.RecordRefresh("tok-1", "user-1"))
	require.Error(t, s.RecordRefresh("tok-1", "user-1"))
}

func TestConsumeRefreshExactlyOnce(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	require.NoError(t, s.RecordRefresh("tok-1", "user-1"))

	won, err := s.ConsumeRefresh("tok-1")
	require.NoError(t, err)
	require.True(t, won)

	won, err = s.ConsumeRefresh("tok-1")
	require.NoError(t, err)
	require.False(t, won)

	found, err := s.FindRefresh("tok-1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestBlacklist(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	revoked, err := s.IsBlacklisted("tok-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, s.Blacklist("tok-1"))

	revoked, err = s.IsBlacklisted("tok-1")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestBlacklistEntryExpires(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	s.BlacklistTTL = -time.Minute

	require.NoError(t, s.Blacklist("tok-1"))

	// Entry is already past its TTL, lookups ignore it
	revoked, err := s.IsBlacklisted("tok-1")
	require.NoError(t, err)
	require.False(t, revoked)
}
