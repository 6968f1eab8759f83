package services

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrNoCredential       = errors.New("server returned no credential")
	ErrAPIKeyRequired     = errors.New("API key & secret required")
	ErrUnknownExchange    = errors.New("unsupported exchange")
	ErrDemoReadOnly       = errors.New("demo data cannot be changed")
)
