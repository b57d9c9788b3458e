package domain

import (
	"context"
	"errors"
	"os"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	// ErrStoreUnavailable marks timeouts and connection failures against the
	// database. Callers may retry; other internal errors should not be
	// retried blindly.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// WrapStoreError maps timeouts and cancellations onto the retriable
// ErrStoreUnavailable; everything else passes through untouched.
func WrapStoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrStoreUnavailable
	}
	return err
}
