package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/seenimoa/stockmood/internal/infra"
	"github.com/seenimoa/stockmood/pkg/models"
	"github.com/seenimoa/stockmood/pkg/utils"
)

const fmpBaseURL = "https://financialmodelingprep.com/api/v3"

// FMP fetches historical daily prices from Financial Modeling Prep.
//
// Free tier: 250 requests/day.
// Docs: https://financialmodelingprep.com/developer/docs
type FMP struct {
	apiKey  string
	cache   *infra.Cache
	limiter *infra.RateLimiter
}

// NewFMP creates an FMP client. An empty apiKey is allowed; calls will
// fail with ErrMissingAPIKey until one is configured.
func NewFMP(apiKey string) *FMP {
	return &FMP{
		apiKey:  apiKey,
		cache:   infra.NewCache(4 * time.Hour),
		limiter: infra.NewRateLimiter(2, time.Second),
	}
}

// Name returns the data source name.
func (f *FMP) Name() string { return "Financial Modeling Prep" }

// HistoricalPrices returns the daily close series for the ticker,
// optionally bounded by from/to (YYYY-MM-DD). The series is returned in
// provider order (newest first).
func (f *FMP) HistoricalPrices(ctx context.Context, ticker, from, to string) ([]models.PricePoint, error) {
	if f.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := fmt.Sprintf("fmp:prices:%s:%s:%s", symbol, from, to)
	if cached, ok := f.cache.Get(cacheKey); ok {
		return cached.([]models.PricePoint), nil
	}

	params := url.Values{}
	params.Set("apikey", f.apiKey)
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	reqURL := fmt.Sprintf("%s/historical-price-full/%s?%s", fmpBaseURL, symbol, params.Encode())

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, _, err := infra.DoGet(ctx, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fmp prices for %s: %w", symbol, err)
	}
	defer body.Close()

	var resp struct {
		ErrorMessage string `json:"Error Message"`
		Historical   []struct {
			Date  string  `json:"date"`
			Close float64 `json:"close"`
		} `json:"historical"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("fmp decode for %s: %w", symbol, err)
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("fmp: %s", resp.ErrorMessage)
	}
	if len(resp.Historical) == 0 {
		return nil, fmt.Errorf("fmp prices for %s: %w", symbol, ErrNoData)
	}

	prices := make([]models.PricePoint, 0, len(resp.Historical))
	for _, day := range resp.Historical {
		if day.Date == "" {
			continue
		}
		prices = append(prices, models.PricePoint{
			Timestamp: day.Date,
			Price:     day.Close,
		})
	}

	f.cache.Set(cacheKey, prices)
	return prices, nil
}
