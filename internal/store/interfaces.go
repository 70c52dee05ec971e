package store

import (
	"context"

	"github.com/desirely/creator-desk/internal/model"
)

// Backend is the subset of the API client the store depends on.
type Backend interface {
	ListCreators(ctx context.Context) ([]model.Creator, error)
	CreateCreator(ctx context.Context, draft model.CreatorDraft) (model.Creator, error)
	UpdateCreator(ctx context.Context, id string, creator model.Creator) (model.Creator, error)
	AttachImage(ctx context.Context, creatorID, imageID string) error
	DeleteCreator(ctx context.Context, id string) error
}

// Notifier receives user-facing feedback raised by store operations.
type Notifier interface {
	Push(message string, severity model.Severity) string
}
