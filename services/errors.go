package services

import "errors"

// Error taxonomy of the core. Every one of these is recoverable by the
// caller: the operation that raised it left all store state unchanged.
var (
	// ErrInvalidCredentials is returned by login when no user matches
	// the email/secret pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned by register when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidFormat is returned by import when the document is not a
	// complete backup.
	ErrInvalidFormat = errors.New("invalid backup format")

	// ErrCollaboratorFailure is returned when the image-generation
	// collaborator fails or returns no usable image.
	ErrCollaboratorFailure = errors.New("image generation failed")

	// ErrConstraintViolation is returned when an operation would break a
	// workflow invariant, e.g. advancing the wizard without the required
	// selections or walking the status machine out of order.
	ErrConstraintViolation = errors.New("constraint violation")
)
