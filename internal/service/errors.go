package service

import "errors"

// Sentinel errors of the service layer. Handlers translate these to HTTP
// statuses; everything else surfaces as an internal error.
var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("already exists")
	ErrValidation           = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("incorrect email or password")
	ErrForbidden            = errors.New("not authorized")
)
