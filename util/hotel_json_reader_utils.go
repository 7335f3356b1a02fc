package util

import (
	"encoding/json"
	"fmt"
	"os"

	"hotels-server/models"
)

// ReadHotelsFromJSON loads a destination hotel list from JSON on disk.
func ReadHotelsFromJSON(filePath string) ([]models.Hotel, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var hotels []models.Hotel
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotel list: %w", err)
	}
	return hotels, nil
}

// ReadHotelFromJSON loads a single Hotel from JSON on disk.
func ReadHotelFromJSON(filePath string) (*models.Hotel, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var h models.Hotel
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Hotel: %w", err)
	}
	return &h, nil
}

// ReadPricesResponseFromJSON loads a PricesResponse from JSON on disk.
func ReadPricesResponseFromJSON(filePath string) (*models.PricesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PricesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PricesResponse: %w", err)
	}
	return &resp, nil
}

// ReadRoomsResponseFromJSON loads a RoomsResponse from JSON on disk.
func ReadRoomsResponseFromJSON(filePath string) (*models.RoomsResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RoomsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RoomsResponse: %w", err)
	}
	return &resp, nil
}

// PrintListingsPartially prints key fields of a listing search result.
func PrintListingsPartially(listings []models.Listing) {
	fmt.Printf("Listings returned: %d\n", len(listings))
	for i, l := range listings {
		if i >= 3 {
			fmt.Println("...")
			break
		}
		fmt.Printf("%s: %s (%d stars, %.1f guest rating) %.2f\n", l.ID, l.Name, l.StarRating, l.GuestRating, l.Price)
	}
}
