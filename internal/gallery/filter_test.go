package gallery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"promptGallery/internal/gallery"
	"promptGallery/internal/models"
)

func TestFilterMatches(t *testing.T) {
	sunset := models.Image{Prompt: "A Sunset over mountains", IsFavorite: false}
	favoriteCat := models.Image{Prompt: "a cat in a hat", IsFavorite: true}

	tests := []struct {
		name     string
		filter   gallery.Filter
		image    models.Image
		expected bool
	}{
		{
			name:     "Zero Filter Matches Everything",
			filter:   gallery.Filter{},
			image:    sunset,
			expected: true,
		},
		{
			name:     "Case Insensitive Substring",
			filter:   gallery.Filter{Query: "sUnSeT"},
			image:    sunset,
			expected: true,
		},
		{
			name:     "Query Not In Prompt",
			filter:   gallery.Filter{Query: "ocean"},
			image:    sunset,
			expected: false,
		},
		{
			name:     "Favorites Only Excludes Non-Favorite",
			filter:   gallery.Filter{FavoritesOnly: true},
			image:    sunset,
			expected: false,
		},
		{
			name:     "Favorites Only Keeps Favorite",
			filter:   gallery.Filter{FavoritesOnly: true},
			image:    favoriteCat,
			expected: true,
		},
		{
			name:     "Both Conditions Must Hold",
			filter:   gallery.Filter{Query: "cat", FavoritesOnly: true},
			image:    favoriteCat,
			expected: true,
		},
		{
			name:     "Favorite With Non-Matching Query",
			filter:   gallery.Filter{Query: "dog", FavoritesOnly: true},
			image:    favoriteCat,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.filter.Matches(tt.image))
		})
	}
}

func TestFilterApply(t *testing.T) {
	images := []models.Image{
		{Prompt: "a sunset", IsFavorite: true},
		{Prompt: "a sunrise", IsFavorite: false},
		{Prompt: "a cat", IsFavorite: true},
	}

	filtered := gallery.Filter{Query: "sun"}.Apply(images)
	require.Len(t, filtered, 2)
	require.Equal(t, "a sunset", filtered[0].Prompt)
	require.Equal(t, "a sunrise", filtered[1].Prompt)

	filtered = gallery.Filter{Query: "sun", FavoritesOnly: true}.Apply(images)
	require.Len(t, filtered, 1)
	require.Equal(t, "a sunset", filtered[0].Prompt)

	filtered = gallery.Filter{}.Apply(nil)
	require.NotNil(t, filtered)
	require.Empty(t, filtered)
}
