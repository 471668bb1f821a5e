package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"bitwise74/gallery-api/internal/model"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/stretchr/testify/require"
)

// uploadImage posts a multipart body whose file part carries a real
// image content type. CreateFormFile would stamp octet-stream, which
// the validator rejects
func uploadImage(t *testing.T, a *API, access, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/images/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.HeaderAccessToken, "Bearer "+access)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func TestImageUpload(t *testing.T) {
	a, storage := newTestAPI(t)

	_, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")

	w := uploadImage(t, a, access, "my holiday photo.png", "image/png", []byte("pngbytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var image model.Image
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &image))
	require.Equal(t, "my holiday photo.png", image.OriginalName)
	require.Equal(t, "image/png", image.Mimetype)
	// Whitespace in the key is collapsed
	require.Contains(t, image.S3Key, "my-holiday-photo.png")
	require.True(t, storage.has(image.S3Key))

	var count int64
	require.NoError(t, a.DB.Model(model.Image{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestImageUploadRejectsNonImage(t *testing.T) {
	a, storage := newTestAPI(t)

	_, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")

	w := uploadImage(t, a, access, "notes.txt", "text/plain", []byte("hello"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, storage.objects)
}

func TestImageUploadMissingFile(t *testing.T) {
	a, _ := newTestAPI(t)

	_, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("unrelated", "field"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/images/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.HeaderAccessToken, "Bearer "+access)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No file uploaded", decodeEnvelope(t, w).Message)
}

func TestImageList(t *testing.T) {
	a, _ := newTestAPI(t)

	adminID, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")

	for range 3 {
		createImage(t, a, adminID)
	}

	w := doJSON(t, a, http.MethodGet, "/api/admin/images?limit=2", nil, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Images     []model.Image `json:"images"`
		Pagination pagination    `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &payload))
	require.Len(t, payload.Images, 2)
	require.EqualValues(t, 3, payload.Pagination.Total)
	require.EqualValues(t, 2, payload.Pagination.TotalPages)

	// Uploader comes back trimmed to id, name, email
	require.NotNil(t, payload.Images[0].Uploader)
	require.Equal(t, adminID, payload.Images[0].Uploader.ID)
	require.Empty(t, payload.Images[0].Uploader.Whatsapp)
}

func TestImageFetch(t *testing.T) {
	a, _ := newTestAPI(t)

	adminID, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")
	img := createImage(t, a, adminID)

	w := doJSON(t, a, http.MethodGet, "/api/admin/images/"+img.ID, nil, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Image
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &got))
	require.Equal(t, img.ID, got.ID)
	require.Equal(t, img.S3Key, got.S3Key)

	w = doJSON(t, a, http.MethodGet, "/api/admin/images/ghost", nil, access, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageDelete(t *testing.T) {
	a, storage := newTestAPI(t)

	_, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")
	userID, userAccess, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	w := uploadImage(t, a, access, "gone.png", "image/png", []byte("pngbytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var img model.Image
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &img))

	doJSON(t, a, http.MethodPost, "/api/likes/"+img.ID+"/toggle", nil, userAccess, "")
	require.EqualValues(t, 1, likeCount(t, a, userID, img.ID))

	w = doJSON(t, a, http.MethodDelete, "/api/admin/images/"+img.ID, nil, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Object, record and likes are all gone
	require.False(t, storage.has(img.S3Key))

	var count int64
	require.NoError(t, a.DB.Model(model.Image{}).Where("id = ?", img.ID).Count(&count).Error)
	require.Zero(t, count)
	require.EqualValues(t, 0, likeCount(t, a, userID, img.ID))
}

func TestImageDeleteNotFound(t *testing.T) {
	a, _ := newTestAPI(t)

	_, access, _ := registerUser(t, a, "admin@x.com", "secret1", "admin")

	w := doJSON(t, a, http.MethodDelete, "/api/admin/images/ghost", nil, access, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
