package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotels-server/models"
)

func TestPlotListingPrices_WritesChartHTML(t *testing.T) {
	listings := []models.Listing{
		{ID: "jOZC", Name: "Fullerton", Price: 2758.24},
		{ID: "k3k2", Name: "Harbour View", Price: 350.5},
	}
	outputPath := filepath.Join(t.TempDir(), "prices.html")

	require.NoError(t, PlotListingPrices(listings, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.Contains(html, "Fullerton"))
	assert.True(t, strings.Contains(html, "Harbour View"))
}

func TestPlotListingPrices_BadPathFails(t *testing.T) {
	err := PlotListingPrices(nil, filepath.Join(t.TempDir(), "missing-dir", "prices.html"))
	assert.Error(t, err)
}
