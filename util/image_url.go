package util

import (
	"strconv"

	"hotels-server/models"
)

// PlaceholderImageURL is returned whenever a hotel's image descriptor is
// incomplete. Image absence must never abort listing construction.
const PlaceholderImageURL = "https://d2799avl0w3tde.cloudfront.net/placeholder-hotel.jpg"

// BuildImageURL derives the display image URL for a hotel from its image
// descriptor: prefix + selected index + suffix. The hotel's default image
// index is used when it is within the descriptor's count, index 0 otherwise.
func BuildImageURL(h *models.Hotel) string {
	d := h.ImageDetails
	if d.Prefix == "" || d.Suffix == "" {
		return PlaceholderImageURL
	}

	index := 0
	if h.DefaultImageIndex > 0 && h.DefaultImageIndex < d.Count {
		index = h.DefaultImageIndex
	}

	return d.Prefix + strconv.Itoa(index) + d.Suffix
}
