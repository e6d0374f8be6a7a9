package models

// PricePoint is one daily closing price in a historical price series.
// Passed through from the price provider untouched by the sentiment core.
type PricePoint struct {
	Timestamp string  `json:"timestamp"` // YYYY-MM-DD
	Price     float64 `json:"price"`
}
