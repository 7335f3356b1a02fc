package hotelapi

import (
	"context"
	"sync"

	"hotels-server/config"
	"hotels-server/models"
	"hotels-server/util"
)

// HotelApiClientMock serves canned fixture responses so the server can run
// without upstream credentials or network. It simulates the asynchronous
// search: price calls report completed=false until PollsBeforeComplete calls
// have been made for a given search.
type HotelApiClientMock struct {
	// PollsBeforeComplete is how many price polls return an incomplete page
	// before the fixture payload is served as completed.
	PollsBeforeComplete int

	mu         sync.Mutex
	priceCalls int
	roomCalls  int
}

// NewHotelApiClientMock creates a new instance of HotelApiClientMock
func NewHotelApiClientMock(pollsBeforeComplete int) *HotelApiClientMock {
	return &HotelApiClientMock{PollsBeforeComplete: pollsBeforeComplete}
}

// ListHotels returns the fixture destination hotel list.
func (c *HotelApiClientMock) ListHotels(ctx context.Context, destinationID string) ([]models.Hotel, error) {
	return util.ReadHotelsFromJSON(config.GetResourcePath(config.HOTELS_RESOURCE))
}

// GetHotel returns the fixture static hotel record.
func (c *HotelApiClientMock) GetHotel(ctx context.Context, hotelID string) (*models.Hotel, error) {
	return util.ReadHotelFromJSON(config.GetResourcePath(config.HOTEL_STATIC_RESOURCE))
}

// SearchPrices returns incomplete pages until the configured poll count is
// reached, then the fixture prices marked completed.
func (c *HotelApiClientMock) SearchPrices(ctx context.Context, criteria *models.SearchCriteria) (*models.PricesResponse, error) {
	c.mu.Lock()
	c.priceCalls++
	pending := c.priceCalls <= c.PollsBeforeComplete
	c.mu.Unlock()

	if pending {
		return &models.PricesResponse{Completed: false, Hotels: nil}, nil
	}
	return util.ReadPricesResponseFromJSON(config.GetResourcePath(config.PRICES_RESPONSE_RESOURCE))
}

// GetRoomPrices behaves like SearchPrices for the per-hotel room search.
func (c *HotelApiClientMock) GetRoomPrices(ctx context.Context, hotelID string, criteria *models.SearchCriteria) (*models.RoomsResponse, error) {
	c.mu.Lock()
	c.roomCalls++
	pending := c.roomCalls <= c.PollsBeforeComplete
	c.mu.Unlock()

	if pending {
		return &models.RoomsResponse{Completed: false, Rooms: nil}, nil
	}
	return util.ReadRoomsResponseFromJSON(config.GetResourcePath(config.ROOMS_RESPONSE_RESOURCE))
}
