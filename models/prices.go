package models

// HotelPrice is one hotel's entry in an asynchronous price search. A given ID
// may reappear with a different price across successive polls; only the value
// from the completed poll is authoritative.
type HotelPrice struct {
	ID                   string       `json:"id"`
	SearchRank           float64      `json:"searchRank"`
	PriceType            string       `json:"price_type,omitempty"`
	Price                float64      `json:"price"`
	ConvertedPrice       float64      `json:"converted_price"`
	LowestPrice          float64      `json:"lowest_price,omitempty"`
	LowestConvertedPrice float64      `json:"lowest_converted_price,omitempty"`
	MarketRates          []MarketRate `json:"market_rates,omitempty"`
}

// MarketRate is a raw per-supplier rate in the price breakdown.
type MarketRate struct {
	Supplier string  `json:"supplier"`
	Rate     float64 `json:"rate"`
}

// PricesResponse is one iteration of the asynchronous destination price
// search. Completed=false means the upstream job is still running and the
// caller should poll again; it is not an error.
type PricesResponse struct {
	Completed bool         `json:"completed"`
	Currency  string       `json:"currency,omitempty"`
	Hotels    []HotelPrice `json:"hotels"`
}
