package api

import (
	"net/http"

	"bitwise74/gallery-api/pkg/apierr"
	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (a *API) AuthStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, apierr.Unauthorized(apierr.MsgUnauthorized))
		return
	}

	respond(c, http.StatusOK, apierr.MsgAuthorized, user)
}
