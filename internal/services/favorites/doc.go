// Package favorites implements the authenticated favorite toggle.
//
// Each toggle runs the state machine
//
//	idle -> checking -> challenging -> committing -> committed
//	           |             |              |
//	           v             v              v
//	        rejected      rejected        failed
//
// The in-memory set changes only after the store has accepted the new
// mapping, so what the user sees never runs ahead of what is on disk.
// Toggles of the same item are serialized: a second request while one is in
// flight is refused with domain.ErrToggleInFlight. Commits are serialized
// across items so concurrent toggles of different items cannot overwrite
// each other's whole-mapping save.
package favorites
