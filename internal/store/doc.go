package store

// Package store owns the authoritative local copy of the creator collection.
// It exposes create/read/update/delete operations against the remote API,
// reconciles local state after each, and raises user-facing notifications.
// The snapshot is replaced wholesale on every successful fetch; entry-level
// changes go through the store operations only.
