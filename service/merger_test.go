package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotels-server/models"
	"hotels-server/util"
)

func metaHotel(id, name string, rating int, kaligo float64) models.Hotel {
	h := models.Hotel{
		ID:      id,
		Name:    name,
		Address: name + " street",
		Rating:  rating,
		ImageDetails: models.ImageDetails{
			Prefix: "https://cdn.example.com/" + id + "/i",
			Suffix: ".jpg",
			Count:  10,
		},
		DefaultImageIndex: 1,
	}
	h.TrustYou.Score.KaligoOverall = kaligo
	return h
}

func TestMergeListings_JoinsOnHotelID(t *testing.T) {
	hotels := []models.Hotel{
		metaHotel("jOZC", "Fullerton", 5, 92),
		metaHotel("k3k2", "Harbour View", 4, 81),
	}
	prices := []models.HotelPrice{
		{ID: "k3k2", Price: 350.5},
		{ID: "jOZC", Price: 2758.24},
	}

	result := MergeListings(hotels, prices, DropUnpriced)

	require.Len(t, result.Listings, 2)
	assert.Equal(t, 0, result.Dropped)

	first := result.Listings[0]
	assert.Equal(t, "jOZC", first.ID)
	assert.Equal(t, "Fullerton", first.Name)
	assert.Equal(t, 5, first.StarRating)
	assert.InDelta(t, 4.6, first.GuestRating, 0.001)
	assert.Equal(t, 2758.24, first.Price)
	assert.Equal(t, "https://cdn.example.com/jOZC/i1.jpg", first.ImageURL)
}

func TestMergeListings_OrderFollowsMetadataNotPrices(t *testing.T) {
	hotels := []models.Hotel{
		metaHotel("a", "A", 3, 60),
		metaHotel("b", "B", 4, 70),
		metaHotel("c", "C", 5, 80),
	}
	prices := []models.HotelPrice{
		{ID: "a", Price: 1},
		{ID: "b", Price: 2},
		{ID: "c", Price: 3},
	}
	shuffled := []models.HotelPrice{prices[2], prices[0], prices[1]}

	ordered := MergeListings(hotels, prices, DropUnpriced)
	reordered := MergeListings(hotels, shuffled, DropUnpriced)

	assert.Equal(t, ordered.Listings, reordered.Listings)
	assert.Equal(t, []string{"a", "b", "c"}, listingIDs(ordered.Listings))
}

func TestMergeListings_UnpricedHotelsDroppedSilently(t *testing.T) {
	hotels := []models.Hotel{
		metaHotel("priced", "Priced", 4, 80),
		metaHotel("unpriced", "Unpriced", 3, 70),
	}
	prices := []models.HotelPrice{{ID: "priced", Price: 120}}

	result := MergeListings(hotels, prices, DropUnpriced)

	require.Len(t, result.Listings, 1)
	assert.Equal(t, "priced", result.Listings[0].ID)
	assert.Equal(t, 1, result.Dropped)
}

func TestMergeListings_ZeroPricePlaceholderPolicy(t *testing.T) {
	hotels := []models.Hotel{
		metaHotel("priced", "Priced", 4, 80),
		metaHotel("unpriced", "Unpriced", 3, 70),
	}
	prices := []models.HotelPrice{{ID: "priced", Price: 120}}

	result := MergeListings(hotels, prices, ZeroPricePlaceholder)

	require.Len(t, result.Listings, 2)
	assert.Equal(t, 0, result.Dropped)
	assert.Equal(t, 0.0, result.Listings[1].Price)
}

func TestMergeListings_EmptyMetadataYieldsEmptyResult(t *testing.T) {
	result := MergeListings(nil, []models.HotelPrice{{ID: "x", Price: 1}}, DropUnpriced)

	assert.Empty(t, result.Listings)
	assert.Equal(t, 0, result.Dropped)
}

func TestMergeListings_MissingImageDescriptorUsesPlaceholder(t *testing.T) {
	h := metaHotel("a", "A", 3, 60)
	h.ImageDetails = models.ImageDetails{}

	result := MergeListings([]models.Hotel{h}, []models.HotelPrice{{ID: "a", Price: 9}}, DropUnpriced)

	require.Len(t, result.Listings, 1)
	assert.Equal(t, util.PlaceholderImageURL, result.Listings[0].ImageURL)
}

func listingIDs(listings []models.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}
