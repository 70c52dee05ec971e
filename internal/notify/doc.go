package notify

// Package notify implements the transient notification queue. Every entry
// carries its own auto-dismiss timer; the queue preserves insertion order for
// display and pushes the updated list to the UI through a single callback.
// The queue is constructed once in main and injected into the services that
// raise feedback; it is not ambient global state.
