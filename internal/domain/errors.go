package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidNonce       = errors.New("invalid nonce verification")
	ErrArchiveDisabled    = errors.New("register archive storage is not configured")
	ErrEmailDisabled      = errors.New("register email delivery is not configured")
	ErrUnknownFormat      = errors.New("unknown export format")
)
