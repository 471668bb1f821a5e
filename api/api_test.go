package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/internal/service"
	"bitwise74/gallery-api/pkg/middleware"
	"bitwise74/gallery-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data

	return "https://bucket.s3.test.amazonaws.com/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

func newTestAPI(t *testing.T) (*API, *fakeStorage) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("upload.max_size", int64(5<<20))
	viper.Set("host.cors_origins", []string{"http://localhost:5173"})

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Image{},
		model.Like{},
		model.SocialMediaLink{},
		model.RefreshToken{},
		model.BlacklistedToken{},
	))

	storage := newFakeStorage()

	a := &API{
		DB:    db,
		Argon: security.NewArgon(),
		Signer: &security.TokenSigner{
			AccessSecret:  []byte("test-access-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
			AccessExpiry:  time.Hour,
			RefreshExpiry: 2 * time.Hour,
		},
		Tokens:  service.NewTokenStore(db, []byte("test-hash-secret"), 2*time.Hour, time.Hour),
		Storage: storage,
	}
	a.Router = a.buildRouter()

	return a, storage
}

func doJSON(t *testing.T, a *API, method, path string, body any, access, refresh string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if access != "" {
		req.Header.Set(middleware.HeaderAccessToken, "Bearer "+access)
	}
	if refresh != "" {
		req.Header.Set(middleware.HeaderRefreshToken, "Bearer "+refresh)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))

	return e
}

func responseTokens(w *httptest.ResponseRecorder) (access, refresh string) {
	access = strings.TrimPrefix(w.Header().Get(middleware.HeaderAccessToken), "Bearer ")
	refresh = strings.TrimPrefix(w.Header().Get(middleware.HeaderRefreshToken), "Bearer ")
	return access, refresh
}

// registerUser registers through the real endpoint and returns the
// created user's ID plus the issued token pair
func registerUser(t *testing.T, a *API, email, password, role string) (id, access, refresh string) {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", gin.H{
		"name":      "Test User",
		"email":     email,
		"whatsapp":  "+100000000",
		"watermark": "bottom-right",
		"password":  password,
		"role":      role,
	}, "", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user model.User
	e := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(e.Payload, &user))

	access, refresh = responseTokens(w)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	return user.ID, access, refresh
}

func createImage(t *testing.T, a *API, uploadedBy string) model.Image {
	t.Helper()

	img := model.Image{
		ID:           "img-" + fmt.Sprint(time.Now().UnixNano()),
		OriginalName: "photo.png",
		S3Key:        fmt.Sprintf("images/%d-photo.png", time.Now().UnixNano()),
		S3URL:        "https://bucket.s3.test.amazonaws.com/photo.png",
		Size:         1024,
		Mimetype:     "image/png",
		UploadedBy:   uploadedBy,
	}
	require.NoError(t, a.DB.Create(&img).Error)

	return img
}
