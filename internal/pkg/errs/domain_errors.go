package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotUnknown     = errors.New("slot not offered on that date")
	ErrSlotFull        = errors.New("slot capacity exhausted")

	// Status errors
	ErrTransitionDenied = errors.New("status transition not allowed")
	ErrUnknownStatus    = errors.New("unknown status")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Store errors
	ErrStoreFailure = errors.New("record store operation failed")
)
