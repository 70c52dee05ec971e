package model

import (
	"fmt"
	"strings"
)

// Creator represents a single creator record as stored by the backend.
// ID is server-assigned and immutable once created.
type Creator struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	ImageID     string `json:"image_id,omitempty"`
}

// HasImage reports whether the creator has an attached image.
func (c *Creator) HasImage() bool {
	return c.ImageID != ""
}

// DisplayName returns the name, or a placeholder for records that somehow
// arrived without one.
func (c *Creator) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return "(unnamed)"
	}
	return c.Name
}

// CreatorDraft is the client-side payload for registering a new creator.
// The server assigns the id.
type CreatorDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Gender      string `json:"gender"`
	ImageID     string `json:"image_id,omitempty"`
}

// Validate checks the required fields before any network call is made.
// The server remains the final authority; this only avoids wasted round-trips.
func (d CreatorDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(d.Gender) == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required fields missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
