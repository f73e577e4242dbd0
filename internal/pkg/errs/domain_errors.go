package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map each one to a
// distinct HTTP failure class so clients can tell retryable faults apart
// from rejected requests.
var (
	// Vehicle inventory errors
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidDate       = errors.New("invalid booking dates")
	ErrDateConflict      = errors.New("booking date conflict")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrNotOwner          = errors.New("booking belongs to another customer")

	// Infrastructure faults
	ErrUpstreamUnavailable = errors.New("vehicle service unavailable")
	ErrStorageFailure      = errors.New("storage operation failed")
)
