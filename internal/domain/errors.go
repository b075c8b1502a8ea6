package domain

import "errors"

// Error taxonomy. Callers wrap these with fmt.Errorf("...: %w") and test with errors.Is.
var (
	// ErrFetch is returned when the catalog cannot be read or parsed.
	ErrFetch = errors.New("catalog fetch failed")
	// ErrCorruptState is returned when persisted favorites cannot be decoded.
	ErrCorruptState = errors.New("persisted favorites are corrupt")
	// ErrPersistence is returned when favorites cannot be written.
	ErrPersistence = errors.New("favorites could not be saved")
	// ErrAuthUnavailable is returned when no authentication hardware or enrollment exists.
	ErrAuthUnavailable = errors.New("authentication is not available on this device")
	// ErrAuthRejected is returned when the user failed or cancelled the challenge.
	ErrAuthRejected = errors.New("authentication failed")
	// ErrToggleInFlight is returned when a toggle for the same item is still running.
	ErrToggleInFlight = errors.New("toggle already in progress for item")
	// ErrNotEnrolled is returned when an operation needs an enrolled credential.
	ErrNotEnrolled = errors.New("no credential enrolled")
	// ErrPermissionDenied is returned when the user refused location access.
	ErrPermissionDenied = errors.New("permission to access location was denied")
)
