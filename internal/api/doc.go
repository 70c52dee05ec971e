package api

// Package api implements the HTTP client for the remote creator backend. It
// covers the six operations of the service surface (list, create, update,
// delete, image upload, image fetch) and normalizes non-2xx responses into
// errors carrying the server's "detail" message when one is present.
