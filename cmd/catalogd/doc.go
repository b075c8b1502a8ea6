// Package main runs the development catalog server used by artpiece during
// development and tests. It serves the art-piece records the CLI lists, so the
// client can be exercised without the remote endpoint.
//
// HTTP API
//
//	GET /data.json
//	    Return the catalog: a JSON array of records with at least "title".
//
//	GET /healthz
//	    Return "ok".
//
// Behaviour
//
//   - The catalog is read from --file on every request, so edits show up
//     without a restart. Without --file a built-in sample catalog is served.
//   - A file that is not a JSON array is answered with 500, which the CLI
//     reports as a fetch failure.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - The default listen address is :8080.
package main
