package models

// Hotel is the static metadata record the hotel API returns for a single
// property. IDs are upstream-assigned and stable; the same key space is used
// by the price search.
type Hotel struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	Address1          string          `json:"address1,omitempty"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	Rating            int             `json:"rating"`
	Distance          float64         `json:"distance,omitempty"`
	Description       string          `json:"description,omitempty"`
	Amenities         map[string]bool `json:"amenities,omitempty"`
	TrustYou          TrustYouScore   `json:"trustyou"`
	ImageDetails      ImageDetails    `json:"image_details"`
	ImageCount        int             `json:"number_of_images"`
	DefaultImageIndex int             `json:"default_image_index"`
	ImgixURL          string          `json:"imgix_url,omitempty"`
	CloudflareImageURL string         `json:"cloudflare_image_url,omitempty"`
}

// TrustYouScore carries the upstream guest-review sub-scores. The endpoints
// disagree on scales: Overall is a 0-5 string while KaligoOverall is 0-100.
type TrustYouScore struct {
	ID    string `json:"id"`
	Score struct {
		Overall       string  `json:"overall"`
		KaligoOverall float64 `json:"kaligo_overall"`
		Solo          string  `json:"solo,omitempty"`
		Couple        string  `json:"couple,omitempty"`
		Family        string  `json:"family,omitempty"`
		Business      string  `json:"business,omitempty"`
	} `json:"score"`
}

// ImageDetails describes how display image URLs are derived for a hotel.
type ImageDetails struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	Count  int    `json:"count"`
}

// GuestRating converts KaligoOverall (0-100) to the canonical 0-5 scale used
// by every listing projection in this server.
func (h *Hotel) GuestRating() float64 {
	r := h.TrustYou.Score.KaligoOverall / 20.0
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// AmenityNames returns the enabled amenities as a sorted-free name list.
func (h *Hotel) AmenityNames() []string {
	names := make([]string, 0, len(h.Amenities))
	for name, present := range h.Amenities {
		if present {
			names = append(names, name)
		}
	}
	return names
}
