package model

import "errors"

var (
	// Credential errors. Both collapse to one generic 401 externally so
	// login responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors. Distinguished internally for diagnostics only.
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")

	// Identity resolution errors.
	ErrAuthMissing  = errors.New("missing or malformed bearer credential")
	ErrUserNotFound = errors.New("user not found")

	// Store conflicts.
	ErrUserAlreadyExists = errors.New("user already exists")

	// Content errors.
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidInput    = errors.New("invalid input")
)
