package gallery

import (
	"strings"

	"promptGallery/internal/models"
)

// Filter is the presentation-side view filter: an optional favorites gate
// plus a case-insensitive substring search over the prompt. The zero value
// matches every record. Filters are never persisted.
type Filter struct {
	Query         string
	FavoritesOnly bool
}

// Matches reports whether the record passes the current view.
func (f Filter) Matches(img models.Image) bool {
	if f.FavoritesOnly && !img.IsFavorite {
		return false
	}

	if f.Query != "" && !strings.Contains(strings.ToLower(img.Prompt), strings.ToLower(f.Query)) {
		return false
	}

	return true
}

// Apply keeps the records matching the filter, preserving order.
func (f Filter) Apply(images []models.Image) []models.Image {
	filtered := make([]models.Image, 0, len(images))

	for _, img := range images {
		if f.Matches(img) {
			filtered = append(filtered, img)
		}
	}

	return filtered
}
