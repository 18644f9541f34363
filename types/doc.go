// Package types holds the stored documents and their public response shapes.
//
// Fields the API serves verbatim are kept as raw JSON, so a stored value of
// any kind, null included, is served exactly as stored.
package types
