package models

// Listing is the simplified, client-facing hotel+price record. It exists only
// per-request: a listing is produced iff a hotel and a price share an ID.
type Listing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	StarRating  int     `json:"starRating"`
	GuestRating float64 `json:"guestRating"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// ListingDetail is the optional enrichment attached to a listing by the
// per-hotel detail fetch. It stays nil when that fetch fails, so one slow or
// broken detail call degrades a single listing instead of the whole batch.
type ListingDetail struct {
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

// DetailedListing pairs a listing with its (possibly absent) enrichment.
type DetailedListing struct {
	Listing
	Detail *ListingDetail `json:"detail"`
}

// HotelDetails is the full per-hotel view: static metadata joined with the
// polled room offers.
type HotelDetails struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	StarRating  int      `json:"starRating"`
	GuestRating float64  `json:"guestRating"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"imageUrl"`
	Currency    string   `json:"currency"`
	Rooms       []Room   `json:"rooms"`
}
