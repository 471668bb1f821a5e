package api

import (
	"fmt"

	"bitwise74/gallery-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// issueTokenPair signs a fresh access+refresh pair for a user, persists
// the refresh token's hash and puts both tokens into the response
// headers. Tokens never appear in a response body
func (a *API) issueTokenPair(c *gin.Context, userID string) error {
	access, err := a.Signer.IssueAccess(userID)
	if err != nil {
		return fmt.Errorf("failed to sign access token, %w", err)
	}

	refresh, err := a.Signer.IssueRefresh(userID)
	if err != nil {
		return fmt.Errorf("failed to sign refresh token, %w", err)
	}

	if err := a.Tokens.RecordRefresh(refresh, userID); err != nil {
		return fmt.Errorf("failed to persist refresh token hash, %w", err)
	}

	middleware.SetTokenHeaders(c, access, refresh)
	return nil
}
