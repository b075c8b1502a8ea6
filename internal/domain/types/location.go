package types

import "time"

// Position is a single device location reading.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PermissionStatus is the user's answer to the location permission request.
type PermissionStatus string

const (
	PermissionUndetermined PermissionStatus = ""
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
)

// String returns the string form of the status.
func (p PermissionStatus) String() string { return string(p) }
