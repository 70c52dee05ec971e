package upload

import (
	"context"

	"github.com/desirely/creator-desk/internal/model"
)

// Uploader sends file bytes to the backend and returns the image id.
type Uploader interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
}

// Patcher attaches an uploaded image id to a creator record and mirrors the
// change into the local collection.
type Patcher interface {
	AttachImage(ctx context.Context, creatorID, imageID string) error
}

// Notifier receives the phase-specific feedback raised by the pipeline.
type Notifier interface {
	Push(message string, severity model.Severity) string
}
