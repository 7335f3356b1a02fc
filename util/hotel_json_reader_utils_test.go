package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadHotelsFromJSON(t *testing.T) {
	path := writeTempJSON(t, "hotels.json", `[
		{"id": "jOZC", "name": "Fullerton", "rating": 5},
		{"id": "k3k2", "name": "Harbour View", "rating": 4}
	]`)

	hotels, err := ReadHotelsFromJSON(path)

	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, "jOZC", hotels[0].ID)
	assert.Equal(t, 4, hotels[1].Rating)
}

func TestReadHotelsFromJSON_MissingFile(t *testing.T) {
	_, err := ReadHotelsFromJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestReadHotelsFromJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, "bad.json", `{"invalid_json`)

	_, err := ReadHotelsFromJSON(path)
	assert.Error(t, err)
}

func TestReadPricesResponseFromJSON(t *testing.T) {
	path := writeTempJSON(t, "prices.json", `{
		"completed": true,
		"currency": "SGD",
		"hotels": [{"id": "jOZC", "price": 2758.24}]
	}`)

	resp, err := ReadPricesResponseFromJSON(path)

	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, 2758.24, resp.Hotels[0].Price)
}

func TestReadRoomsResponseFromJSON(t *testing.T) {
	path := writeTempJSON(t, "rooms.json", `{
		"completed": true,
		"rooms": [{"key": "r1", "roomDescription": "Deluxe", "price": 100}]
	}`)

	resp, err := ReadRoomsResponseFromJSON(path)

	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "r1", resp.Rooms[0].Key)
}

func TestReadHotelFromJSON(t *testing.T) {
	path := writeTempJSON(t, "hotel.json", `{"id": "jOZC", "name": "Fullerton"}`)

	h, err := ReadHotelFromJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "Fullerton", h.Name)
}
