// Package location reads the device position once the user has allowed it.
//
// The permission answer is remembered in the permission store, the way a
// mobile OS remembers a foreground-location grant. Positions are never
// persisted.
package location
