package shared

import "errors"

var (

	// common errors
	ErrorNotFound = errors.New("not found")

	// auth-specific errors
	ErrorInvalidToken            = errors.New("invalid token")
	ErrorTokenExpired            = errors.New("token expired")
	ErrorInvalidAuthheaderFormat = errors.New("invalid auth header format")

	ErrorAlreadyExists         = errors.New("already exists")
	ErrorValidation            = errors.New("validation error")
	ErrorInvalidLoginFormat    = errors.New("invalid login format")
	ErrorInvalidPasswordFormat = errors.New("invalid password format")
	ErrorInvalidLoginPassword  = errors.New("invalid login/password")
)
