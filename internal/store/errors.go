package store

import (
	"errors"
	"fmt"
)

// identity errors
var (
	ErrUnknownIdentity   = errors.New("userid unknown")
	ErrDuplicateIdentity = errors.New("userid is already used")
	ErrBadCredentials    = errors.New("bad credentials")
)

// appointment errors
var (
	ErrAppointmentNotFound = errors.New("appointment does not exist")
	// ErrUnknownParticipant also matches ErrUnknownIdentity.
	ErrUnknownParticipant = fmt.Errorf("participant %w", ErrUnknownIdentity)
	ErrInvalidRange       = errors.New("incorrect date interval")
	ErrNotImplemented     = errors.New("not yet implemented")
)

// session errors
var (
	ErrTokenNotFound = errors.New("refresh token not found")
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
)
