package main

import (
	"context"
	"log"

	"hotels-server/config"
	"hotels-server/di"
	"hotels-server/models"
	"hotels-server/util"
)

// runDevSearch exercises the full search flow against the fixture-backed mock
// client and renders a price chart, handy when poking at merge output
// without upstream access.
func runDevSearch(container *di.Container) {
	criteria := &models.SearchCriteria{
		DestinationID: "WD0M",
		CheckIn:       "2026-10-01",
		CheckOut:      "2026-10-07",
		Guests:        []int{2},
		Currency:      "SGD",
		CountryCode:   "SG",
		Lang:          "en_US",
		PartnerID:     config.HOTEL_API_PARTNER_ID,
	}

	listings, err := container.ListingService.GetListings(context.Background(), criteria)
	if err != nil {
		log.Printf("[Main] Dev search failed: %v", err)
		return
	}

	util.PrintListingsPartially(listings)
	if err := util.PlotListingPrices(listings, "listing_prices.html"); err != nil {
		log.Printf("[Main] Failed to plot listing prices: %v", err)
	}
}

func main() {
	config.LoadEnv()

	env := config.GetEnv("APP_ENV", "prod")
	container := di.NewContainer(env)

	if env == "dev" {
		runDevSearch(container)
	}

	log.Println("[Main] Starting server")
	container.HotelHttpServer.Start()
}
