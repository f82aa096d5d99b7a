package domain

import "errors"

const (
	RoleAdmin       = "admin"
	RoleSalesperson = "salesperson"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"

	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrUserNotAllowed  = errors.New("user not allowed")
	ErrBusinessMissing = errors.New("business id missing in token")
)
