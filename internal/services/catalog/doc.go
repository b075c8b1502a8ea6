// Package catalog turns the remote art catalog into the list of item ids
// shown to the user.
package catalog
