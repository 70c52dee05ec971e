package platform

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// pngBytes encodes a solid-color test image of the given size.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDetectImageType(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
		ok   bool
	}{
		{"png", pngBytes(t, 4, 4), TypePNG, true},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, TypeJPEG, true},
		{"gif", []byte("GIF89a...."), TypeGIF, true},
		{"text", []byte("hello world"), "", false},
		{"empty", nil, "", false},
	}

	for _, tc := range cases {
		got, err := DetectImageType(tc.data)
		if tc.ok && err != nil {
			t.Errorf("%s: expected no error, got %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected error, got type %s", tc.name, got)
		}
		if got != tc.want {
			t.Errorf("%s: expected type '%s', got '%s'", tc.name, tc.want, got)
		}
	}
}

func TestMakeThumbnailDownscales(t *testing.T) {
	data := pngBytes(t, 800, 600)

	thumb, err := MakeThumbnail(data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("Thumbnail should decode as an image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > ThumbnailMaxSize || bounds.Dy() > ThumbnailMaxSize {
		t.Errorf("Expected thumbnail within %dpx, got %dx%d",
			ThumbnailMaxSize, bounds.Dx(), bounds.Dy())
	}
}

func TestMakeThumbnailRejectsGarbage(t *testing.T) {
	if _, err := MakeThumbnail([]byte("not an image")); err == nil {
		t.Error("Expected error for undecodable input")
	}
}

func TestPreviewLifecycle(t *testing.T) {
	preview, err := NewPreview("avatar.png", pngBytes(t, 64, 64))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if preview.Name() != "avatar.png" {
		t.Errorf("Expected name 'avatar.png', got '%s'", preview.Name())
	}
	if len(preview.Thumbnail()) == 0 {
		t.Error("Expected thumbnail bytes before release")
	}
	if preview.Released() {
		t.Error("Preview should not start released")
	}

	preview.Release()
	if !preview.Released() {
		t.Error("Expected Released true after Release")
	}
	if preview.Thumbnail() != nil {
		t.Error("Expected thumbnail freed after Release")
	}

	// Double release is safe.
	preview.Release()
}

func TestNewPreviewRejectsNonImage(t *testing.T) {
	if _, err := NewPreview("notes.txt", []byte("plain text")); err == nil {
		t.Error("Expected error for non-image file")
	}
}
