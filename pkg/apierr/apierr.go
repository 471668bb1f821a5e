// Package apierr defines the error type handlers attach to a request
// and the fixed set of user-facing messages. One responder middleware
// turns these into the JSON envelope, so handlers never write error
// bodies themselves
package apierr

import "net/http"

// User-facing messages. Clients match on these strings, keep them stable
const (
	MsgBadRequest          = "Bad Request"
	MsgUserNotFound        = "User Not Found"
	MsgLoginSuccess        = "Login Success"
	MsgRegisterSuccess     = "Register Success"
	MsgLogoutSuccess       = "Logout Success"
	MsgUserExists          = "User Already Exists"
	MsgUnauthorized        = "Unauthorized"
	MsgAuthorized          = "Authorized"
	MsgInvalidCredentials  = "Invalid Email or Password"
	MsgInternalError       = "Internal Server Error"
	MsgTokenRefresh        = "Tokens Refreshed Successfully"
	MsgAccessTokenMissing  = "Access Token Missing"
	MsgRefreshTokenMissing = "Refresh Token Missing"
	MsgInvalidRefreshToken = "Invalid Refresh Token"
	MsgSessionExpired      = "Session Expired, Please Login Again"
	MsgTokenRevoked        = "Token Has Been Revoked"
	MsgInvalidToken        = "Invalid Token"
	MsgTokenExpired        = "Token Expired Please Login Again"
	MsgAdminRequired       = "Access denied. Admin privileges required."
)

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func Internal() *Error {
	return New(http.StatusInternalServerError, MsgInternalError)
}
