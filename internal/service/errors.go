package service

import "errors"

// Business-rule failures the handlers surface as distinct outcomes. Token
// verification failures propagate as security.ErrTokenExpired and
// security.ErrTokenInvalid, everything else unexpected stays an opaque
// internal error.
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotVerified    = errors.New("account not verified")
	ErrUserNotFound       = errors.New("user not found")

	ErrResetTokenNotFound = errors.New("reset token invalid or expired")

	ErrPostNotFound  = errors.New("post not found")
	ErrPostForbidden = errors.New("post belongs to another user")
)
