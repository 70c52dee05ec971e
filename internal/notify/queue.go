package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/model"
)

// Queue holds transient user-facing messages with independent auto-dismiss
// timers. All methods are safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	entries  []model.Notification
	timers   map[string]*time.Timer
	onUpdate func([]model.Notification) // callback for UI updates
	closed   bool
	log      zerolog.Logger
}

// New creates an empty notification queue.
func New(logger zerolog.Logger) *Queue {
	return &Queue{
		timers: make(map[string]*time.Timer),
		log:    logger.With().Str("component", "notify").Logger(),
	}
}

// SetUpdateCallback sets the callback invoked with the current ordered
// notification list after every change. The callback runs outside the queue
// lock, so it may call back into the queue.
func (q *Queue) SetUpdateCallback(callback func([]model.Notification)) {
	q.mu.Lock()
	q.onUpdate = callback
	q.mu.Unlock()
}

// Push appends a notification with the default duration for its severity and
// returns its id. It never blocks.
func (q *Queue) Push(message string, severity model.Severity) string {
	return q.PushWithDuration(message, severity, severity.DefaultDuration())
}

// PushWithDuration appends a notification that auto-dismisses after the given
// duration. Ids come from uuid, so rapid-fire pushes within the same
// millisecond never collide.
func (q *Queue) PushWithDuration(message string, severity model.Severity, duration time.Duration) string {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
	q.entries = append(q.entries, n)
	q.timers[n.ID] = time.AfterFunc(duration, func() {
		q.Dismiss(n.ID)
	})

	callback, snapshot := q.snapshotLocked()
	q.mu.Unlock()

	q.log.Debug().Str("id", n.ID).Str("severity", severity.String()).Msg(message)
	if callback != nil {
		callback(snapshot)
	}
	return n.ID
}

// Dismiss removes the notification immediately and cancels its pending timer.
// It is a no-op when the id is absent, so expiry and manual dismissal can
// race freely.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}

	removed := false
	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			removed = true
			break
		}
	}

	if !removed {
		q.mu.Unlock()
		return
	}

	callback, snapshot := q.snapshotLocked()
	q.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Notifications returns the current entries in insertion order.
func (q *Queue) Notifications() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, snapshot := q.snapshotLocked()
	return snapshot
}

// Close cancels all pending timers and drops the entries. Pushes after Close
// are ignored. Called once at application shutdown.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.entries = nil
	q.closed = true
}

// snapshotLocked returns the callback and a copy of the entries. Callers must
// hold q.mu.
func (q *Queue) snapshotLocked() (func([]model.Notification), []model.Notification) {
	out := make([]model.Notification, len(q.entries))
	copy(out, q.entries)
	return q.onUpdate, out
}
