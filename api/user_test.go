package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"bitwise74/gallery-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestUserFetch(t *testing.T) {
	a, _ := newTestAPI(t)

	userID, access, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	w := doJSON(t, a, http.MethodGet, "/api/user/"+userID, nil, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &user))
	require.Equal(t, userID, user.ID)
	require.Equal(t, "user@x.com", user.Email)

	// The password hash never leaves the server
	require.NotContains(t, w.Body.String(), "password")
}

func TestUserFetchNotFound(t *testing.T) {
	a, _ := newTestAPI(t)

	_, access, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	w := doJSON(t, a, http.MethodGet, "/api/user/ghost", nil, access, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserPasswordChange(t *testing.T) {
	a, _ := newTestAPI(t)

	_, access, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	w := doJSON(t, a, http.MethodPatch, "/api/user/password", gin.H{"password": "newsecret"}, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Old password stops working, the new one logs in
	w = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "user@x.com",
		"password": "secret1",
	}, "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "user@x.com",
		"password": "newsecret",
	}, "", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserPasswordTooShort(t *testing.T) {
	a, _ := newTestAPI(t)

	_, access, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	w := doJSON(t, a, http.MethodPatch, "/api/user/password", gin.H{"password": "abc"}, access, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRandomImagesGuest(t *testing.T) {
	a, _ := newTestAPI(t)

	userID, _, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	for range 12 {
		createImage(t, a, userID)
	}

	w := doJSON(t, a, http.MethodPost, "/api/user/random-images", nil, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var images []randomImage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &images))
	require.Len(t, images, 10)
	for _, img := range images {
		require.False(t, img.IsLiked)
	}
}

func TestRandomImagesExcludesSeen(t *testing.T) {
	a, _ := newTestAPI(t)

	userID, _, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	first := createImage(t, a, userID).ID
	second := createImage(t, a, userID).ID

	w := doJSON(t, a, http.MethodPost, "/api/user/random-images", gin.H{
		"seenIds": []string{first},
	}, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var images []randomImage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &images))
	require.Len(t, images, 1)
	require.Equal(t, second, images[0].ID)
}

func TestRandomImagesLikeState(t *testing.T) {
	a, _ := newTestAPI(t)

	userID, access, _ := registerUser(t, a, "user@x.com", "secret1", "user")

	liked := createImage(t, a, userID).ID
	createImage(t, a, userID)

	doJSON(t, a, http.MethodPost, "/api/likes/"+liked+"/toggle", nil, access, "")

	w := doJSON(t, a, http.MethodPost, "/api/user/random-images", nil, access, "")
	require.Equal(t, http.StatusOK, w.Code)

	var images []randomImage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &images))
	require.Len(t, images, 2)

	for _, img := range images {
		require.Equal(t, img.ID == liked, img.IsLiked)
	}
}

func TestRandomImagesBadTokenDegradesToGuest(t *testing.T) {
	a, _ := newTestAPI(t)

	userID, _, _ := registerUser(t, a, "user@x.com", "secret1", "user")
	createImage(t, a, userID)

	w := doJSON(t, a, http.MethodPost, "/api/user/random-images", nil, "not-a-token", "")
	require.Equal(t, http.StatusOK, w.Code)

	var images []randomImage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Payload, &images))
	require.Len(t, images, 1)
	require.False(t, images[0].IsLiked)
}
