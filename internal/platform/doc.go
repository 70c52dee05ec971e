package platform

// Package platform provides host-side helpers for the image workflow:
// sniffing picked files, building preview thumbnails, and the preview
// handle's release lifecycle.
