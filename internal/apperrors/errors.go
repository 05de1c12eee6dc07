package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to touch the resource.
var ErrForbidden = errors.New("access denied")

// Specialised duplicates so handlers can map to email_taken / username_taken
// while errors.Is(err, ErrDuplicate) still holds for the generic conflict case.
var (
	ErrEmailTaken    = fmt.Errorf("email already registered: %w", ErrDuplicate)
	ErrUsernameTaken = fmt.Errorf("username already registered: %w", ErrDuplicate)
)

// ErrSessionCreation indicates that authentication succeeded but the session
// row could not be created. Kept distinct from a generic store failure so the
// login handler reports session_creation_failed instead of server_error.
var ErrSessionCreation = errors.New("session creation failed")
