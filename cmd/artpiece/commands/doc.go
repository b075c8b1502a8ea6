// Package commands defines the artpiece CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list          Print catalog titles with their favorite marker
//   - favorite      Toggle a title's favorite flag (requires authentication)
//   - favorites     Print the saved favorites
//   - view          Print a map link for a title
//   - location      Print the current position (asks for permission once)
//   - enroll        Create the local credential used to authenticate
//   - unenroll      Remove the local credential
//   - fingerprint   Print the credential fingerprint
//
// # Implementation
//
// The root command loads the layered config, builds a logger and the
// dependency graph (stores, gate, services) before any subcommand runs, and
// closes backend connections afterwards. User-facing output and
// notifications go to stdout; logs go to stderr.
package commands
