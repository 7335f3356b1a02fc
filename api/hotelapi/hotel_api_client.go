package hotelapi

import (
	"context"
	"net/url"

	"hotels-server/api"
	"hotels-server/models"
)

// HotelApiClient embeds the common HTTPClient
type HotelApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewHotelApiClient creates a new instance of HotelApiClient
func NewHotelApiClient(httpClient *api.HTTPClient) *HotelApiClient {
	return &HotelApiClient{
		HTTPClient: httpClient,
	}
}

// ListHotels retrieves the static hotel metadata for a destination.
func (c *HotelApiClient) ListHotels(ctx context.Context, destinationID string) ([]models.Hotel, error) {
	q := url.Values{}
	q.Set("destination_id", destinationID)

	var hotels []models.Hotel
	if err := c.Get(ctx, "/hotels", q, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetHotel retrieves the static metadata for a single hotel.
func (c *HotelApiClient) GetHotel(ctx context.Context, hotelID string) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := c.Get(ctx, "/hotels/"+hotelID, nil, &hotel); err != nil {
		return nil, err
	}
	if hotel.ID == "" {
		return nil, &api.UpstreamError{Message: "hotel response missing id field"}
	}
	return &hotel, nil
}

// SearchPrices issues one iteration of the asynchronous destination price
// search. The completed flag is returned as-is for the poller to act on.
func (c *HotelApiClient) SearchPrices(ctx context.Context, criteria *models.SearchCriteria) (*models.PricesResponse, error) {
	// The completed field must be present; an empty-but-running search is a
	// valid state, a body without the flag is a contract violation.
	var raw struct {
		Completed *bool               `json:"completed"`
		Currency  string              `json:"currency"`
		Hotels    []models.HotelPrice `json:"hotels"`
	}
	if err := c.Get(ctx, "/hotels/prices", criteria.QueryValues(), &raw); err != nil {
		return nil, err
	}
	if raw.Completed == nil {
		return nil, &api.UpstreamError{Message: "prices response missing completed field"}
	}
	return &models.PricesResponse{
		Completed: *raw.Completed,
		Currency:  raw.Currency,
		Hotels:    raw.Hotels,
	}, nil
}

// GetRoomPrices issues one iteration of the asynchronous room price search
// for a single hotel.
func (c *HotelApiClient) GetRoomPrices(ctx context.Context, hotelID string, criteria *models.SearchCriteria) (*models.RoomsResponse, error) {
	var raw struct {
		Completed *bool         `json:"completed"`
		Currency  string        `json:"currency"`
		Rooms     []models.Room `json:"rooms"`
	}
	if err := c.Get(ctx, "/hotels/"+hotelID+"/price", criteria.QueryValues(), &raw); err != nil {
		return nil, err
	}
	if raw.Completed == nil {
		return nil, &api.UpstreamError{Message: "room prices response missing completed field"}
	}
	return &models.RoomsResponse{
		Completed: *raw.Completed,
		Currency:  raw.Currency,
		Rooms:     raw.Rooms,
	}, nil
}
