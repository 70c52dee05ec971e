package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/model"
)

// Service is the creator store. All methods are safe for concurrent use; the
// UI runs each user action on its own goroutine and re-renders from the
// update callback.
type Service struct {
	mu       sync.RWMutex
	snapshot model.CollectionSnapshot
	backend  Backend
	notifier Notifier
	onUpdate func(model.CollectionSnapshot) // callback for UI updates
	log      zerolog.Logger
}

// NewService creates a store backed by the given API client.
func NewService(backend Backend, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{
		snapshot: model.CollectionSnapshot{Status: model.StatusIdle},
		backend:  backend,
		notifier: notifier,
		log:      logger.With().Str("component", "store").Logger(),
	}
}

// SetUpdateCallback sets the callback invoked with the new snapshot after
// every change.
func (s *Service) SetUpdateCallback(callback func(model.CollectionSnapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Snapshot returns a copy of the current collection snapshot.
func (s *Service) Snapshot() model.CollectionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Find returns the creator with the given id from the current snapshot.
func (s *Service) Find(id string) (model.Creator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Find(id)
}

// List fetches the full collection and replaces the snapshot wholesale.
// Overlapping calls are allowed; no request is cancelled, and the last
// response to arrive wins.
func (s *Service) List(ctx context.Context) error {
	s.setStatus(model.StatusLoading, "")

	creators, err := s.backend.ListCreators(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list failed")
		s.setStatus(model.StatusError, err.Error())
		s.notifier.Push(err.Error(), model.SeverityError)
		return err
	}

	s.mu.Lock()
	s.snapshot = model.CollectionSnapshot{Creators: creators, Status: model.StatusIdle}
	callback, snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Debug().Int("count", len(creators)).Msg("snapshot replaced")
	if callback != nil {
		callback(snapshot)
	}
	return nil
}

// Create validates the draft, registers it with the backend, and re-fetches
// the full list as the source of truth. The new record is deliberately not
// appended locally: the server assigns the id, and a full refresh guarantees
// the UI never diverges from server state after a mutation.
func (s *Service) Create(ctx context.Context, draft model.CreatorDraft) (model.Creator, error) {
	if err := draft.Validate(); err != nil {
		s.notifier.Push(err.Error(), model.SeverityError)
		return model.Creator{}, err
	}

	created, err := s.backend.CreateCreator(ctx, draft)
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		s.notifier.Push(err.Error(), model.SeverityError)
		return model.Creator{}, err
	}

	s.notifier.Push(fmt.Sprintf("Creator created! ID: %s", created.ID), model.SeveritySuccess)

	if err := s.List(ctx); err != nil {
		// The record exists server-side; the refresh failure already
		// surfaced through List.
		return created, nil
	}
	return created, nil
}

// Update sends the full edited record and, on success, replaces the matching
// in-memory entry with the echoed record. This is an optimistic local merge,
// not a re-fetch; a later List call reconfirms it. On failure the prior
// entry stays untouched.
func (s *Service) Update(ctx context.Context, id string, creator model.Creator) (model.Creator, error) {
	updated, err := s.backend.UpdateCreator(ctx, id, creator)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("update failed")
		s.notifier.Push(err.Error(), model.SeverityError)
		return model.Creator{}, err
	}

	s.replaceEntry(id, func(model.Creator) model.Creator { return updated })
	s.notifier.Push("Creator updated successfully!", model.SeveritySuccess)
	return updated, nil
}

// AttachImage patches only the image reference of a creator and mirrors the
// change into the snapshot. Feedback is the caller's responsibility: the
// attachment pipeline raises phase-specific notifications of its own.
func (s *Service) AttachImage(ctx context.Context, id, imageID string) error {
	if err := s.backend.AttachImage(ctx, id, imageID); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("attach failed")
		return err
	}

	s.replaceEntry(id, func(c model.Creator) model.Creator {
		c.ImageID = imageID
		return c
	})
	return nil
}

// Remove deletes the creator and, on success, drops it from the snapshot.
// Confirmation is owned by the view controller; the store performs none.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.backend.DeleteCreator(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete failed")
		s.notifier.Push(err.Error(), model.SeverityError)
		return err
	}

	s.mu.Lock()
	for i, c := range s.snapshot.Creators {
		if c.ID == id {
			s.snapshot.Creators = append(s.snapshot.Creators[:i], s.snapshot.Creators[i+1:]...)
			break
		}
	}
	callback, snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.Push("Creator deleted successfully!", model.SeveritySuccess)
	if callback != nil {
		callback(snapshot)
	}
	return nil
}

// Filter returns the creators whose name or description contains the term as
// a case-insensitive substring. An empty term yields the full collection.
// The snapshot is never mutated.
func (s *Service) Filter(term string) []model.Creator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterCreators(s.snapshot.Creators, term)
}

// FilterCreators is the pure derivation behind Service.Filter.
func FilterCreators(creators []model.Creator, term string) []model.Creator {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]model.Creator, 0, len(creators))
	for _, c := range creators {
		if needle == "" ||
			strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			out = append(out, c)
		}
	}
	return out
}

// replaceEntry swaps the entry with the given id using fn and notifies. A
// miss leaves the snapshot unchanged; the entry may have been removed by a
// racing List.
func (s *Service) replaceEntry(id string, fn func(model.Creator) model.Creator) {
	s.mu.Lock()
	replaced := false
	for i, c := range s.snapshot.Creators {
		if c.ID == id {
			s.snapshot.Creators[i] = fn(c)
			replaced = true
			break
		}
	}
	callback, snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if replaced && callback != nil {
		callback(snapshot)
	}
}

// setStatus updates the status tag without touching the creator list and
// notifies the UI.
func (s *Service) setStatus(status model.StoreStatus, errMsg string) {
	s.mu.Lock()
	s.snapshot.Status = status
	s.snapshot.Err = errMsg
	callback, snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// copyLocked returns a copy of the snapshot. Callers must hold s.mu.
func (s *Service) copyLocked() model.CollectionSnapshot {
	out := s.snapshot
	out.Creators = make([]model.Creator, len(s.snapshot.Creators))
	copy(out.Creators, s.snapshot.Creators)
	return out
}

// snapshotLocked returns the callback and a snapshot copy. Callers must hold
// s.mu.
func (s *Service) snapshotLocked() (func(model.CollectionSnapshot), model.CollectionSnapshot) {
	return s.onUpdate, s.copyLocked()
}
