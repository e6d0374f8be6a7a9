package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/seenimoa/stockmood/internal/infra"
	"github.com/seenimoa/stockmood/pkg/models"
	"github.com/seenimoa/stockmood/pkg/utils"
)

const (
	newsAPIEverythingURL   = "https://newsapi.org/v2/everything"
	newsAPITopHeadlinesURL = "https://newsapi.org/v2/top-headlines"

	// stockNewsWindow bounds ticker searches to recent coverage.
	stockNewsWindow = 7 * 24 * time.Hour

	stockNewsPageSize    = 20
	topHeadlinesPageSize = 15
)

// NewsAPI fetches articles from newsapi.org.
//
// Free tier: 100 requests/day. Docs: https://newsapi.org/docs
type NewsAPI struct {
	apiKey  string
	cache   *infra.Cache
	limiter *infra.RateLimiter
	now     func() time.Time
}

// NewNewsAPI creates a NewsAPI client. An empty apiKey is allowed; calls
// will fail with ErrMissingAPIKey until one is configured.
func NewNewsAPI(apiKey string) *NewsAPI {
	return &NewsAPI{
		apiKey:  apiKey,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second),
		now:     time.Now,
	}
}

// Name returns the data source name.
func (n *NewsAPI) Name() string { return "NewsAPI" }

// StockNews returns recent English articles mentioning the ticker,
// relevance-sorted, from the last seven days.
func (n *NewsAPI) StockNews(ctx context.Context, ticker string) ([]models.Article, error) {
	if n.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := "newsapi:stock:" + symbol
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.Article), nil
	}

	params := url.Values{}
	params.Set("q", symbol)
	params.Set("apiKey", n.apiKey)
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", strconv.Itoa(stockNewsPageSize))
	params.Set("from", n.now().Add(-stockNewsWindow).Format("2006-01-02"))

	articles, err := n.fetch(ctx, newsAPIEverythingURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("stock news for %s: %w", symbol, err)
	}

	n.cache.Set(cacheKey, articles)
	return articles, nil
}

// TopHeadlines returns US business headlines.
func (n *NewsAPI) TopHeadlines(ctx context.Context) ([]models.Article, error) {
	if n.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cacheKey := "newsapi:headlines"
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.Article), nil
	}

	params := url.Values{}
	params.Set("apiKey", n.apiKey)
	params.Set("category", "business")
	params.Set("country", "us")
	params.Set("pageSize", strconv.Itoa(topHeadlinesPageSize))

	articles, err := n.fetch(ctx, newsAPITopHeadlinesURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("top headlines: %w", err)
	}

	n.cache.Set(cacheKey, articles)
	return articles, nil
}

// fetch performs the request and normalizes the raw article records.
func (n *NewsAPI) fetch(ctx context.Context, reqURL string) ([]models.Article, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, _, err := infra.DoGet(ctx, reqURL, nil)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	// Articles arrive as loose maps; NormalizeArticle does the
	// best-effort field extraction.
	var resp struct {
		Status   string           `json:"status"`
		Message  string           `json:"message"`
		Articles []map[string]any `json:"articles"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.Status != "" && resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q: %s", resp.Status, resp.Message)
	}

	articles := make([]models.Article, 0, len(resp.Articles))
	for _, raw := range resp.Articles {
		articles = append(articles, NormalizeArticle(raw))
	}
	return articles, nil
}
