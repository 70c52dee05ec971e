package model

import "time"

// Severity classifies a notification for display and default lifetime.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Default auto-dismiss durations per severity.
const (
	DefaultInfoDuration    = 3 * time.Second
	DefaultSuccessDuration = 3 * time.Second
	DefaultWarningDuration = 4 * time.Second
	DefaultErrorDuration   = 5 * time.Second
)

// String returns the string representation of Severity.
func (s Severity) String() string {
	return string(s)
}

// DefaultDuration returns how long a notification of this severity stays
// visible before it is dismissed automatically.
func (s Severity) DefaultDuration() time.Duration {
	switch s {
	case SeverityWarning:
		return DefaultWarningDuration
	case SeverityError:
		return DefaultErrorDuration
	default:
		return DefaultInfoDuration
	}
}

// Notification is a transient user-facing message. Each carries its own
// auto-dismiss timer; removal order is independent of display order, which is
// always insertion order.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	CreatedAt time.Time
}
