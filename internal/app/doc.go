// Package app wires application dependencies for the CLI.
//
// Config is layered: built-in defaults, then an optional YAML file
// (<home>/config.yaml), then ARTPIECE_* environment variables, then command
// line flags applied by the caller. NewWire builds the concrete stores,
// platform adapters and high-level services from Config, exposing them via
// the Wire struct for commands to use. One Wire is one session: the
// favorites workflow it holds is the only owner of the in-memory set.
package app
