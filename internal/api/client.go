package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/desirely/creator-desk/internal/model"
)

// Endpoint paths relative to the base URL.
const (
	PathCreators    = "/api/creators"
	PathCreator     = "/api/creator"
	PathDelete      = "/api/creator/delete/"
	PathImageUpload = "/api/image/upload/"
	PathImageGet    = "/api/image/get/"
)

// Upload form field name expected by the backend.
const UploadFieldName = "file"

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 15 * time.Second

// Generic fallback messages used when the server response carries no
// parsable detail.
const (
	fallbackList   = "failed to load creators"
	fallbackCreate = "failed to create creator"
	fallbackUpdate = "creator update failed"
	fallbackDelete = "failed to delete creator"
	fallbackUpload = "image upload failed"
	fallbackFetch  = "failed to fetch image"
)

// Error is a server rejection: a non-2xx response, with the backend's
// "detail" message when one could be parsed.
type Error struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Detail
}

// Client talks to the creator backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     logger.With().Str("component", "api").Logger(),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListCreators fetches the full creator collection.
func (c *Client) ListCreators(ctx context.Context) ([]model.Creator, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathCreators, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallbackList); err != nil {
		return nil, err
	}

	var creators []model.Creator
	if err := json.NewDecoder(resp.Body).Decode(&creators); err != nil {
		return nil, fmt.Errorf("list creators: decode response: %w", err)
	}

	c.log.Debug().Int("count", len(creators)).Msg("creators listed")
	return creators, nil
}

// CreateCreator registers a new creator and returns the record with its
// server-assigned id.
func (c *Client) CreateCreator(ctx context.Context, draft model.CreatorDraft) (model.Creator, error) {
	var created model.Creator

	body, err := json.Marshal(draft)
	if err != nil {
		return created, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathCreator, bytes.NewReader(body))
	if err != nil {
		return created, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return created, fmt.Errorf("create creator: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallbackCreate); err != nil {
		return created, err
	}

	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return created, fmt.Errorf("create creator: decode response: %w", err)
	}

	c.log.Debug().Str("id", created.ID).Msg("creator created")
	return created, nil
}

// UpdateCreator sends the full edited record keyed by id. The backend echoes
// the updated record; when the echo cannot be decoded the submitted record is
// returned so callers always get a usable merge candidate.
func (c *Client) UpdateCreator(ctx context.Context, id string, creator model.Creator) (model.Creator, error) {
	body, err := json.Marshal(creator)
	if err != nil {
		return creator, err
	}

	if err := c.put(ctx, id, body, fallbackUpdate, &creator); err != nil {
		return creator, err
	}

	creator.ID = id
	c.log.Debug().Str("id", id).Msg("creator updated")
	return creator, nil
}

// AttachImage sends a partial update containing only the image id.
func (c *Client) AttachImage(ctx context.Context, creatorID, imageID string) error {
	body, err := json.Marshal(map[string]string{"image_id": imageID})
	if err != nil {
		return err
	}

	if err := c.put(ctx, creatorID, body, fallbackUpdate, nil); err != nil {
		return err
	}

	c.log.Debug().Str("id", creatorID).Str("image_id", imageID).Msg("image attached")
	return nil
}

// put issues a PUT to the creator update endpoint. When out is non-nil the
// response body is decoded into it; a decode failure on a 2xx response is
// ignored since some backends echo only the submitted patch.
func (c *Client) put(ctx context.Context, id string, body []byte, fallback string, out *model.Creator) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+PathCreator+"/"+id, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update creator: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallback); err != nil {
		return err
	}

	if out != nil {
		var echoed model.Creator
		if err := json.NewDecoder(resp.Body).Decode(&echoed); err == nil && echoed.Name != "" {
			*out = echoed
		}
	}
	return nil
}

// DeleteCreator removes the creator with the given id.
func (c *Client) DeleteCreator(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+PathDelete+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete creator: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallbackDelete); err != nil {
		return err
	}

	c.log.Debug().Str("id", id).Msg("creator deleted")
	return nil
}

// UploadImage sends raw file bytes as a multipart form and returns the
// server-assigned image id.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(UploadFieldName, filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathImageUpload, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallbackUpload); err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("upload image: decode response: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("upload image: response carried no id")
	}

	c.log.Debug().Str("image_id", result.ID).Int("bytes", len(data)).Msg("image uploaded")
	return result.ID, nil
}

// FetchImage downloads the binary image with the given id.
func (c *Client) FetchImage(ctx context.Context, imageID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(imageID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fallbackFetch); err != nil {
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

// ImageURL returns the fetch URL for an image id.
func (c *Client) ImageURL(imageID string) string {
	return c.baseURL + PathImageGet + imageID
}

// checkStatus turns a non-2xx response into an *Error, preferring the JSON
// "detail" field over the per-operation fallback message.
func checkStatus(resp *http.Response, fallback string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail := fallback
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	return &Error{StatusCode: resp.StatusCode, Detail: detail}
}
