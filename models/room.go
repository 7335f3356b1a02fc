package models

// Room is a bookable room offer for a single hotel.
type Room struct {
	Key                       string       `json:"key"`
	RoomDescription           string       `json:"roomDescription"`
	RoomNormalizedDescription string       `json:"roomNormalizedDescription,omitempty"`
	Type                      string       `json:"type,omitempty"`
	FreeCancellation          bool         `json:"free_cancellation"`
	LongDescription           string       `json:"long_description,omitempty"`
	Images                    []RoomImage  `json:"images,omitempty"`
	Amenities                 []string     `json:"amenities,omitempty"`
	Price                     float64      `json:"price"`
	ConvertedPrice            float64      `json:"converted_price,omitempty"`
	MarketRates               []MarketRate `json:"market_rates,omitempty"`
}

// RoomImage points at a room photo.
type RoomImage struct {
	URL               string `json:"url"`
	HighResolutionURL string `json:"high_resolution_url,omitempty"`
	HeroImage         bool   `json:"hero_image,omitempty"`
}

// RoomsResponse is one iteration of the asynchronous per-hotel room price
// search, polled the same way as PricesResponse.
type RoomsResponse struct {
	Completed bool   `json:"completed"`
	Currency  string `json:"currency,omitempty"`
	Rooms     []Room `json:"rooms"`
}
