package ui

import (
	"context"
	"sync"

	"github.com/desirely/creator-desk/internal/model"
)

// Screen identifies the visible page.
type Screen string

const (
	ScreenList     Screen = "List"
	ScreenCreate   Screen = "Create"
	ScreenEdit     Screen = "Edit"
	ScreenNotFound Screen = "NotFound"
)

// Directory is the slice of the creator store the controller needs: a local
// lookup plus the ability to refresh from the backend.
type Directory interface {
	Find(id string) (model.Creator, bool)
	List(ctx context.Context) error
}

// Controller routes between screens and runs the delete confirmation
// handshake. It holds no widgets, so every transition is testable without a
// window. The shell reads its state after each call and renders accordingly.
type Controller struct {
	mu        sync.Mutex
	directory Directory

	screen  Screen
	editID  string
	pending string // creator id awaiting delete confirmation
}

// NewController creates a controller showing the list screen.
func NewController(directory Directory) *Controller {
	return &Controller{directory: directory, screen: ScreenList}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// EditingID returns the id of the creator being edited, or "" off the edit
// screen.
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenEdit {
		return ""
	}
	return c.editID
}

// OpenRegister switches to the create form.
func (c *Controller) OpenRegister() {
	c.mu.Lock()
	c.screen = ScreenCreate
	c.editID = ""
	c.mu.Unlock()
}

// OpenEditor navigates to the edit form for the given creator. An id absent
// from the local collection triggers one refresh before giving up; a creator
// that is still missing lands on the not-found screen.
func (c *Controller) OpenEditor(ctx context.Context, id string) (model.Creator, bool) {
	creator, ok := c.directory.Find(id)
	if !ok {
		if err := c.directory.List(ctx); err == nil {
			creator, ok = c.directory.Find(id)
		}
	}

	c.mu.Lock()
	if ok {
		c.screen = ScreenEdit
		c.editID = id
	} else {
		c.screen = ScreenNotFound
		c.editID = ""
	}
	c.mu.Unlock()

	return creator, ok
}

// SubmitSucceeded returns to the list after a create or update completed.
func (c *Controller) SubmitSucceeded() {
	c.backToList()
}

// GoBack abandons the current form or not-found screen.
func (c *Controller) GoBack() {
	c.backToList()
}

func (c *Controller) backToList() {
	c.mu.Lock()
	c.screen = ScreenList
	c.editID = ""
	c.pending = ""
	c.mu.Unlock()
}

// RequestDelete arms the confirmation dialog for the given creator. Nothing
// is deleted until ConfirmDelete.
func (c *Controller) RequestDelete(id string) {
	c.mu.Lock()
	c.pending = id
	c.mu.Unlock()
}

// PendingDelete returns the creator id awaiting confirmation, or "" when no
// dialog is armed.
func (c *Controller) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// ConfirmDelete disarms the dialog and returns the id to delete. The second
// return is false when no request was pending.
func (c *Controller) ConfirmDelete() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == "" {
		return "", false
	}
	id := c.pending
	c.pending = ""
	return id, true
}

// CancelDelete disarms the dialog without deleting.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	c.pending = ""
	c.mu.Unlock()
}

// DeleteSucceeded leaves the edit screen if the deleted creator was open
// there.
func (c *Controller) DeleteSucceeded(id string) {
	c.mu.Lock()
	if c.screen == ScreenEdit && c.editID == id {
		c.screen = ScreenList
		c.editID = ""
	}
	c.mu.Unlock()
}
