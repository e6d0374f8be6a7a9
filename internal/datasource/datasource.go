// Package datasource implements the external data collaborators: the
// NewsAPI and RSS news providers and the FMP price provider.
//
// Providers are thin I/O glue around REST endpoints. Each one carries
// its own TTL cache and rate limiter; failures surface as errors for the
// HTTP layer to translate (soft neutral responses for ticker analysis,
// gateway errors for general news).
package datasource

import (
	"context"
	"fmt"

	"github.com/seenimoa/stockmood/pkg/models"
)

// NewsProvider supplies articles for a ticker or general market headlines.
type NewsProvider interface {
	// StockNews returns recent articles mentioning the ticker.
	StockNews(ctx context.Context, ticker string) ([]models.Article, error)

	// TopHeadlines returns general business/market headlines.
	TopHeadlines(ctx context.Context) ([]models.Article, error)
}

// PriceProvider supplies historical daily closing prices.
type PriceProvider interface {
	// HistoricalPrices returns the daily close series for the ticker.
	// from and to are optional YYYY-MM-DD bounds; empty means provider default.
	HistoricalPrices(ctx context.Context, ticker, from, to string) ([]models.PricePoint, error)
}

// ErrMissingAPIKey is returned when a provider is used without credentials.
var ErrMissingAPIKey = fmt.Errorf("API key not configured")

// ErrNoData is returned when a provider responds successfully but has
// nothing for the requested parameters.
var ErrNoData = fmt.Errorf("no data for the given parameters")
