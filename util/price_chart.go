package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hotels-server/models"
)

// PlotListingPrices generates an HTML file rendering the price distribution
// of a listing search, useful when eyeballing merge results against a live
// destination.
func PlotListingPrices(listings []models.Listing, outputPath string) error {
	names := make([]string, 0, len(listings))
	prices := make([]opts.BarData, 0, len(listings))
	for _, l := range listings {
		names = append(names, l.Name)
		prices = append(prices, opts.BarData{Value: l.Price})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Listing Prices",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Prices for %d listings", len(listings)),
		}),
	)
	bar.SetXAxis(names).AddSeries("price", prices)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outputPath, err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render price chart: %w", err)
	}
	return nil
}
