package model

// Package model defines domain data structures used across the app: creator
// records, collection snapshots, notifications, and upload phase enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
