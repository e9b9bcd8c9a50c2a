package common

import "errors"

// Sentinel errors shared by repositories, services and handlers.
// Handlers map these to HTTP statuses with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("this author already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken = errors.New("no token found")
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrCodeNotFound    = errors.New("secret code not found")
	ErrCodeAlreadyUsed = errors.New("secret code already used")

	ErrAuthorNotFound = errors.New("author not found")
	ErrBlogNotFound   = errors.New("blog not found")
	ErrForbidden      = errors.New("forbidden")

	ErrPasswordMismatch     = errors.New("passwords must match")
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrImageRequired        = errors.New("image required")

	ErrTimeout = errors.New("store operation timed out")
)
