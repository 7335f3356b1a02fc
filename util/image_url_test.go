package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotels-server/models"
)

func hotelWithImages(prefix, suffix string, count, defaultIndex int) *models.Hotel {
	return &models.Hotel{
		ID:                "jOZC",
		ImageDetails:      models.ImageDetails{Prefix: prefix, Suffix: suffix, Count: count},
		DefaultImageIndex: defaultIndex,
	}
}

func TestBuildImageURL_UsesDefaultImageIndex(t *testing.T) {
	h := hotelWithImages("https://cdn.example.com/jOZC/i", ".jpg", 10, 3)

	assert.Equal(t, "https://cdn.example.com/jOZC/i3.jpg", BuildImageURL(h))
}

func TestBuildImageURL_FallsBackToIndexZeroWhenOutOfRange(t *testing.T) {
	h := hotelWithImages("https://cdn.example.com/jOZC/i", ".jpg", 3, 7)

	assert.Equal(t, "https://cdn.example.com/jOZC/i0.jpg", BuildImageURL(h))
}

func TestBuildImageURL_MissingPrefixReturnsPlaceholder(t *testing.T) {
	h := hotelWithImages("", ".jpg", 10, 1)

	assert.Equal(t, PlaceholderImageURL, BuildImageURL(h))
}

func TestBuildImageURL_MissingSuffixReturnsPlaceholder(t *testing.T) {
	h := hotelWithImages("https://cdn.example.com/jOZC/i", "", 10, 1)

	assert.Equal(t, PlaceholderImageURL, BuildImageURL(h))
}
