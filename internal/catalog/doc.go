// Package catalog provides an HTTP implementation of domain.CatalogClient.
//
// The catalog is an external JSON document: an array of objects that carry at
// least a "title" field. The client issues exactly one GET per call with
// "Accept: application/json"; it does not paginate, retry or cache. Non-2xx
// statuses and undecodable bodies come back wrapped in domain.ErrFetch with
// the method, URL and status text to aid diagnostics.
package catalog
