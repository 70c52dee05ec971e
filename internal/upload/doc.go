package upload

// Package upload implements the two-phase image attachment flow: raw file
// bytes go to the upload endpoint first, then the resulting image id is
// attached to the owning creator. There is no atomicity across the phases —
// an attach failure after a successful upload leaves an orphaned blob
// server-side, and the error message says so instead of hiding it.
