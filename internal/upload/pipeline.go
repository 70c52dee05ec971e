package upload

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/model"
	"github.com/desirely/creator-desk/internal/platform"
)

// Session is the transient upload state for one creator's edit screen. It
// exists only while that screen is open and is destroyed when the screen
// closes or the creator selection changes.
type Session struct {
	mu        sync.Mutex
	id        string
	creatorID string
	fileName  string
	data      []byte
	preview   *platform.Preview
	phase     model.UploadPhase
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// CreatorID returns the owning creator's id.
func (s *Session) CreatorID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creatorID
}

// FileName returns the selected file's name, or "" without a selection.
func (s *Session) FileName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName
}

// Phase returns the current upload phase.
func (s *Session) Phase() model.UploadPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// HasSelection reports whether a file is currently selected.
func (s *Session) HasSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data) > 0
}

// Preview returns the current preview handle, or nil without a selection.
func (s *Session) Preview() *platform.Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// releaseLocked frees the preview and drops the selection. Callers must hold
// s.mu.
func (s *Session) releaseLocked() {
	if s.preview != nil {
		s.preview.Release()
		s.preview = nil
	}
	s.fileName = ""
	s.data = nil
}

// Pipeline sequences the upload-then-attach workflow and owns the session
// lifecycle.
type Pipeline struct {
	uploader Uploader
	patcher  Patcher
	notifier Notifier
	log      zerolog.Logger

	mu       sync.Mutex
	session  *Session
	onUpdate func(*Session) // callback for UI updates
}

// NewPipeline creates an attachment pipeline.
func NewPipeline(uploader Uploader, patcher Patcher, notifier Notifier, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		uploader: uploader,
		patcher:  patcher,
		notifier: notifier,
		log:      logger.With().Str("component", "upload").Logger(),
	}
}

// SetUpdateCallback sets the callback invoked after every session change.
func (p *Pipeline) SetUpdateCallback(callback func(*Session)) {
	p.mu.Lock()
	p.onUpdate = callback
	p.mu.Unlock()
}

// Open starts a session for the given creator, destroying any previous one.
func (p *Pipeline) Open(creatorID string) *Session {
	p.mu.Lock()
	if p.session != nil {
		p.session.mu.Lock()
		p.session.releaseLocked()
		p.session.mu.Unlock()
	}
	p.session = &Session{id: uuid.NewString(), creatorID: creatorID, phase: model.PhaseIdle}
	session := p.session
	p.mu.Unlock()

	p.notifyUpdate(session)
	return session
}

// Session returns the current session, or nil when no edit screen is open.
func (p *Pipeline) Session() *Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

// Select records the picked file and builds its preview handle. A previous
// selection is released first.
func (p *Pipeline) Select(fileName string, data []byte) error {
	session := p.Session()
	if session == nil {
		return fmt.Errorf("no upload session open")
	}

	preview, err := platform.NewPreview(fileName, data)
	if err != nil {
		p.notifier.Push(err.Error(), model.SeverityError)
		return err
	}

	session.mu.Lock()
	session.releaseLocked()
	session.fileName = fileName
	session.data = data
	session.preview = preview
	session.phase = model.PhaseIdle
	session.mu.Unlock()

	p.log.Debug().Str("file", fileName).Int("bytes", len(data)).Msg("file selected")
	p.notifyUpdate(session)
	return nil
}

// ClearSelection drops the selected file and releases its preview.
func (p *Pipeline) ClearSelection() {
	session := p.Session()
	if session == nil {
		return
	}

	session.mu.Lock()
	session.releaseLocked()
	session.phase = model.PhaseIdle
	session.mu.Unlock()

	p.notifyUpdate(session)
}

// Close ends the session, releasing the preview. Called when the edit screen
// closes or the creator selection changes.
func (p *Pipeline) Close() {
	p.mu.Lock()
	session := p.session
	p.session = nil
	p.mu.Unlock()

	if session == nil {
		return
	}
	session.mu.Lock()
	session.releaseLocked()
	session.mu.Unlock()
}

// Run executes both phases for the current selection. The preview is
// released on every exit path, success or failure.
func (p *Pipeline) Run(ctx context.Context) error {
	session := p.Session()
	if session == nil {
		return fmt.Errorf("no upload session open")
	}

	session.mu.Lock()
	if len(session.data) == 0 {
		session.mu.Unlock()
		err := fmt.Errorf("please select an image to upload")
		p.notifier.Push(err.Error(), model.SeverityWarning)
		return err
	}
	creatorID := session.creatorID
	fileName := session.fileName
	data := session.data
	session.phase = model.PhaseUploading
	session.mu.Unlock()
	p.notifyUpdate(session)

	// Phase 1: upload the bytes.
	imageID, err := p.uploader.UploadImage(ctx, fileName, data)
	if err != nil {
		p.log.Error().Err(err).Str("file", fileName).Msg("upload phase failed")
		p.fail(session)
		p.notifier.Push(fmt.Sprintf("Image upload failed: %s", err.Error()), model.SeverityError)
		return err
	}

	session.mu.Lock()
	session.phase = model.PhaseAttaching
	session.mu.Unlock()
	p.notifyUpdate(session)

	// Phase 2: attach the id to the creator. A failure here leaves the
	// uploaded blob orphaned server-side; the message says so.
	if err := p.patcher.AttachImage(ctx, creatorID, imageID); err != nil {
		p.log.Error().Err(err).Str("image_id", imageID).Msg("attach phase failed")
		p.fail(session)
		p.notifier.Push(fmt.Sprintf(
			"Image uploaded but not attached: %s. The uploaded image id %s is now orphaned.",
			err.Error(), imageID), model.SeverityError)
		return err
	}

	session.mu.Lock()
	session.releaseLocked()
	session.phase = model.PhaseDone
	session.mu.Unlock()

	p.log.Debug().Str("creator", creatorID).Str("image_id", imageID).Msg("image attached")
	p.notifier.Push("Image uploaded and creator updated successfully!", model.SeveritySuccess)
	p.notifyUpdate(session)
	return nil
}

// fail marks the session failed and releases the preview.
func (p *Pipeline) fail(session *Session) {
	session.mu.Lock()
	session.releaseLocked()
	session.phase = model.PhaseFailed
	session.mu.Unlock()
	p.notifyUpdate(session)
}

// notifyUpdate calls the update callback if set.
func (p *Pipeline) notifyUpdate(session *Session) {
	p.mu.Lock()
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback(session)
	}
}
