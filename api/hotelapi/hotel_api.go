package hotelapi

import (
	"context"

	"hotels-server/models"
)

// HotelAPI defines the interface for interacting with the hotel search API.
// SearchPrices and GetRoomPrices are single poll iterations: they return the
// raw page untouched and never interpret the completed flag themselves.
type HotelAPI interface {
	ListHotels(ctx context.Context, destinationID string) ([]models.Hotel, error)
	GetHotel(ctx context.Context, hotelID string) (*models.Hotel, error)
	SearchPrices(ctx context.Context, criteria *models.SearchCriteria) (*models.PricesResponse, error)
	GetRoomPrices(ctx context.Context, hotelID string, criteria *models.SearchCriteria) (*models.RoomsResponse, error)
}
