package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Tokens travel in these two headers on both requests and responses,
// never in cookies or the body. CORS must expose both
const (
	HeaderAccessToken  = "X-Access-Token"
	HeaderRefreshToken = "X-Refresh-Token"
)

// BearerToken extracts the raw token from a request header, stripping
// the Bearer prefix. The literal "undefined" is what a browser client
// sends when its stored token is gone, treat it the same as absent
func BearerToken(c *gin.Context, header string) string {
	raw := strings.TrimPrefix(c.GetHeader(header), "Bearer ")
	if raw == "undefined" {
		return ""
	}

	return raw
}

func SetTokenHeaders(c *gin.Context, access, refresh string) {
	c.Header(HeaderAccessToken, "Bearer "+access)
	c.Header(HeaderRefreshToken, "Bearer "+refresh)
}

// ClearTokenHeaders drops both token headers from the response so a
// client never keeps a half-valid pair after a failed auth step
func ClearTokenHeaders(c *gin.Context) {
	c.Writer.Header().Del(HeaderAccessToken)
	c.Writer.Header().Del(HeaderRefreshToken)
}
