package services

import (
	"hotels-server/models"
	"hotels-server/util"
)

// UnpricedPolicy decides what happens to a hotel that has no matching price.
type UnpricedPolicy int

const (
	// DropUnpriced excludes the hotel from the output. Hotels without a price
	// are not shown as "unavailable", they are simply absent.
	DropUnpriced UnpricedPolicy = iota
	// ZeroPricePlaceholder keeps the hotel with price 0. Kept selectable for
	// frontends that want to render unpriced hotels themselves.
	ZeroPricePlaceholder
)

// MergeResult is the output of a metadata/price join. Dropped counts the
// hotels excluded for lack of a matching price; it feeds a metric, not an
// error.
type MergeResult struct {
	Listings []models.Listing
	Dropped  int
}

// MergeListings joins static hotel metadata with price-search results on
// hotel ID and projects each pair into a Listing. Output order follows the
// metadata slice, never the price slice, since price order varies between
// polls. Pure function: no I/O, deterministic for equal inputs.
func MergeListings(hotels []models.Hotel, prices []models.HotelPrice, policy UnpricedPolicy) MergeResult {
	priceByID := make(map[string]models.HotelPrice, len(prices))
	for _, p := range prices {
		priceByID[p.ID] = p
	}

	listings := make([]models.Listing, 0, len(hotels))
	dropped := 0
	for i := range hotels {
		h := &hotels[i]
		price, ok := priceByID[h.ID]
		if !ok {
			if policy == DropUnpriced {
				dropped++
				continue
			}
			price = models.HotelPrice{ID: h.ID}
		}
		listings = append(listings, newListing(h, price))
	}

	return MergeResult{Listings: listings, Dropped: dropped}
}

func newListing(h *models.Hotel, price models.HotelPrice) models.Listing {
	return models.Listing{
		ID:          h.ID,
		Name:        h.Name,
		Address:     h.Address,
		StarRating:  h.Rating,
		GuestRating: h.GuestRating(),
		Price:       price.Price,
		ImageURL:    util.BuildImageURL(h),
	}
}
