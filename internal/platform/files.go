package platform

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	// Register decoders for the formats the backend accepts.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/nfnt/resize"
)

// Image type names returned by DetectImageType.
const (
	TypePNG  = "png"
	TypeJPEG = "jpeg"
	TypeGIF  = "gif"
)

// ThumbnailMaxSize bounds the preview thumbnail edge length in pixels.
const ThumbnailMaxSize = 192

// Magic byte prefixes for supported image formats.
var (
	magicPNG  = []byte{0x89, 'P', 'N', 'G'}
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}
	magicGIF  = []byte("GIF8")
)

// DetectImageType sniffs the leading bytes of a picked file and returns the
// image type name, or an error for anything that is not a supported image.
func DetectImageType(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, magicPNG):
		return TypePNG, nil
	case bytes.HasPrefix(data, magicJPEG):
		return TypeJPEG, nil
	case bytes.HasPrefix(data, magicGIF):
		return TypeGIF, nil
	default:
		return "", fmt.Errorf("unsupported file type: not a png, jpeg, or gif image")
	}
}

// MakeThumbnail decodes an image and returns a PNG downscaled to fit within
// ThumbnailMaxSize on both edges. Images already small enough are only
// re-encoded.
func MakeThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	thumb := resize.Thumbnail(ThumbnailMaxSize, ThumbnailMaxSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// Preview is the transient handle behind the "new image" pane on the edit
// screen. It is created the instant a file is selected and must be released
// when the selection is cleared, replaced, or the session ends.
type Preview struct {
	mu        sync.Mutex
	name      string
	thumbnail []byte
	released  bool
}

// NewPreview sniffs the picked file and builds its preview thumbnail.
func NewPreview(name string, data []byte) (*Preview, error) {
	if _, err := DetectImageType(data); err != nil {
		return nil, err
	}

	thumb, err := MakeThumbnail(data)
	if err != nil {
		return nil, err
	}

	return &Preview{name: name, thumbnail: thumb}, nil
}

// Name returns the picked file's name.
func (p *Preview) Name() string {
	return p.name
}

// Thumbnail returns the PNG thumbnail bytes, or nil after release.
func (p *Preview) Thumbnail() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.thumbnail
}

// Release frees the underlying transient resource. Releasing twice is safe.
func (p *Preview) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.thumbnail = nil
	p.released = true
}

// Released reports whether the handle has been released.
func (p *Preview) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}
