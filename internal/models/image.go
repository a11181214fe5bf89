package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a single generated-image record. URL and Prompt never change
// after creation; IsFavorite and Deleted are the only mutable fields.
// Deleted rows stay in the table and are filtered out of listings.
type Image struct {
	ID         uuid.UUID `json:"id" db:"id"`
	URL        string    `json:"url" db:"url"`
	Prompt     string    `json:"prompt" db:"prompt"`
	Width      int       `json:"width" db:"width"`
	Height     int       `json:"height" db:"height"`
	Latency    int64     `json:"latency" db:"latency"`
	IsFavorite bool      `json:"isFavorite" db:"is_favorite"`
	Deleted    bool      `json:"deleted" db:"deleted"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ImageParams carries the fields written once by the generation pipeline.
type ImageParams struct {
	URL     string
	Prompt  string
	Width   int
	Height  int
	Latency int64
}
