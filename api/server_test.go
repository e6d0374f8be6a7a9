package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/seenimoa/stockmood/internal/analysis/sentiment"
	"github.com/seenimoa/stockmood/internal/config"
	"github.com/seenimoa/stockmood/internal/history"
	"github.com/seenimoa/stockmood/internal/infra"
	"github.com/seenimoa/stockmood/pkg/models"
)

// --- Test helpers ---

type stubNews struct {
	articles  []models.Article
	headlines []models.Article
	err       error

	stockCalls    int
	headlineCalls int
}

func (s *stubNews) StockNews(_ context.Context, _ string) ([]models.Article, error) {
	s.stockCalls++
	return s.articles, s.err
}

func (s *stubNews) TopHeadlines(_ context.Context) ([]models.Article, error) {
	s.headlineCalls++
	return s.headlines, s.err
}

type stubPrices struct {
	prices []models.PricePoint
	err    error
}

func (s *stubPrices) HistoricalPrices(_ context.Context, _, _, _ string) ([]models.PricePoint, error) {
	return s.prices, s.err
}

func testServer(t *testing.T, news *stubNews, prices *stubPrices) *Server {
	t.Helper()
	srv := &Server{
		cfg:          &config.Config{},
		analyzer:     sentiment.NewAnalyzer(),
		news:         news,
		prices:       prices,
		store:        history.NewStore(filepath.Join(t.TempDir(), "history.json")),
		analyzeCache: infra.NewCache(time.Minute),
		priceCache:   infra.NewCache(time.Minute),
		newsCache:    infra.NewCache(time.Minute),
	}
	srv.router = srv.buildRouter()
	return srv
}

func doRequest(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// --- Tests ---

func TestHealth(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{})
	rec := doRequest(t, srv, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAnalyzeTickerMissingParam(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{})
	rec := doRequest(t, srv, "/analyze-ticker")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp errorResponse
	decode(t, rec, &resp)
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestAnalyzeTickerHappyPath(t *testing.T) {
	news := &stubNews{articles: []models.Article{
		{Title: "Company beats earnings", Description: "Profit up", URL: "https://example.com/1"},
		{Title: "", Description: ""},
	}}
	srv := testServer(t, news, &stubPrices{})

	rec := doRequest(t, srv, "/analyze-ticker?ticker=aapl")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var summary models.SentimentSummary
	decode(t, rec, &summary)
	if summary.Label != models.LabelPositive {
		t.Errorf("label = %s, want positive", summary.Label)
	}
	if len(summary.AnalyzedArticles) != 1 {
		t.Errorf("analyzed = %d, want 1", len(summary.AnalyzedArticles))
	}

	// A history sample was recorded under the upper-cased ticker.
	samples := srv.store.Query("AAPL")
	if len(samples) != 1 {
		t.Fatalf("history samples = %d, want 1", len(samples))
	}
	if samples[0].Score != summary.Score {
		t.Errorf("history score %.6f, want %.6f", samples[0].Score, summary.Score)
	}
}

func TestAnalyzeTickerCachesResult(t *testing.T) {
	news := &stubNews{articles: []models.Article{
		{Title: "Profits surge on strong growth"},
	}}
	srv := testServer(t, news, &stubPrices{})

	doRequest(t, srv, "/analyze-ticker?ticker=AAPL")
	doRequest(t, srv, "/analyze-ticker?ticker=AAPL")

	if news.stockCalls != 1 {
		t.Errorf("provider calls = %d, want 1 (second request cached)", news.stockCalls)
	}
	// The cached response must not append a second history sample.
	if got := len(srv.store.Query("AAPL")); got != 1 {
		t.Errorf("history samples = %d, want 1", got)
	}
}

func TestAnalyzeTickerProviderErrorSoftFails(t *testing.T) {
	news := &stubNews{err: errors.New("connection refused")}
	srv := testServer(t, news, &stubPrices{})

	rec := doRequest(t, srv, "/analyze-ticker?ticker=TSLA")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 soft-fail", rec.Code)
	}

	var summary models.SentimentSummary
	decode(t, rec, &summary)
	if summary.Label != models.LabelNeutral || summary.Score != 0 {
		t.Errorf("expected neutral sentinel, got %s %.4f", summary.Label, summary.Score)
	}
	if summary.Details == "" {
		t.Error("expected details message")
	}
	if len(srv.store.Query("TSLA")) != 0 {
		t.Error("sentinel result must not be recorded in history")
	}
}

func TestAnalyzeTickerNoArticlesSoftFails(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{})

	rec := doRequest(t, srv, "/analyze-ticker?ticker=TSLA")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var summary models.SentimentSummary
	decode(t, rec, &summary)
	if summary.Label != models.LabelNeutral {
		t.Errorf("label = %s, want neutral", summary.Label)
	}
	if summary.Details != "No news articles found for TSLA." {
		t.Errorf("details = %q", summary.Details)
	}
}

func TestHistoricalSentiment(t *testing.T) {
	news := &stubNews{articles: []models.Article{
		{Title: "Record profits and strong growth"},
	}}
	srv := testServer(t, news, &stubPrices{})

	doRequest(t, srv, "/analyze-ticker?ticker=msft")

	rec := doRequest(t, srv, "/historical-sentiment?ticker=msft")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HistoricalSentimentResponse
	decode(t, rec, &resp)
	if resp.Ticker != "MSFT" {
		t.Errorf("ticker = %q, want MSFT", resp.Ticker)
	}
	if len(resp.History) != 1 {
		t.Errorf("history = %d samples, want 1", len(resp.History))
	}
}

func TestHistoricalSentimentUnknownTicker(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{})

	rec := doRequest(t, srv, "/historical-sentiment?ticker=ZZZZ")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HistoricalSentimentResponse
	decode(t, rec, &resp)
	if resp.History == nil || len(resp.History) != 0 {
		t.Errorf("expected empty history, got %v", resp.History)
	}
}

func TestHistoricalSentimentMissingParam(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{})
	if rec := doRequest(t, srv, "/historical-sentiment"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHistoricalPrice(t *testing.T) {
	prices := &stubPrices{prices: []models.PricePoint{
		{Timestamp: "2024-03-01", Price: 184.5},
		{Timestamp: "2024-02-29", Price: 182.1},
	}}
	srv := testServer(t, &stubNews{}, prices)

	rec := doRequest(t, srv, "/historical-price?ticker=aapl&from_date=2024-02-01&to_date=2024-03-01")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HistoricalPriceResponse
	decode(t, rec, &resp)
	if resp.Ticker != "AAPL" {
		t.Errorf("ticker = %q, want AAPL", resp.Ticker)
	}
	if len(resp.Prices) != 2 {
		t.Errorf("prices = %d, want 2", len(resp.Prices))
	}
	if resp.Error != "" {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

func TestHistoricalPriceProviderErrorSoftFails(t *testing.T) {
	srv := testServer(t, &stubNews{}, &stubPrices{err: errors.New("boom")})

	rec := doRequest(t, srv, "/historical-price?ticker=AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 soft-fail", rec.Code)
	}

	var resp HistoricalPriceResponse
	decode(t, rec, &resp)
	if resp.Error == "" {
		t.Error("expected error message in body")
	}
	if len(resp.Prices) != 0 {
		t.Errorf("expected empty prices, got %d", len(resp.Prices))
	}
}

func TestGeneralNews(t *testing.T) {
	news := &stubNews{headlines: []models.Article{
		{Title: "Markets rally on strong earnings", Source: "Example Wire"},
		{Title: "Stocks plunge as recession fears grow", Source: "Example Wire"},
		{Title: "Fed holds rates steady", Source: "Example Wire"},
	}}
	srv := testServer(t, news, &stubPrices{})

	rec := doRequest(t, srv, "/general-news")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp GeneralNewsResponse
	decode(t, rec, &resp)
	if len(resp.Articles) != 3 {
		t.Fatalf("articles = %d, want 3", len(resp.Articles))
	}
	if resp.Articles[0].SentimentLabel != models.LabelPositive {
		t.Errorf("article 0 label = %s, want positive", resp.Articles[0].SentimentLabel)
	}
	if resp.Articles[1].SentimentLabel != models.LabelNegative {
		t.Errorf("article 1 label = %s, want negative", resp.Articles[1].SentimentLabel)
	}
	if resp.Articles[2].SentimentLabel != models.LabelNeutral {
		t.Errorf("article 2 label = %s, want neutral", resp.Articles[2].SentimentLabel)
	}
}

func TestGeneralNewsCaches(t *testing.T) {
	news := &stubNews{headlines: []models.Article{{Title: "Fed holds rates steady"}}}
	srv := testServer(t, news, &stubPrices{})

	doRequest(t, srv, "/general-news")
	doRequest(t, srv, "/general-news")

	if news.headlineCalls != 1 {
		t.Errorf("provider calls = %d, want 1 (second request cached)", news.headlineCalls)
	}
}

func TestGeneralNewsProviderErrorIsGatewayError(t *testing.T) {
	srv := testServer(t, &stubNews{err: errors.New("boom")}, &stubPrices{})

	rec := doRequest(t, srv, "/general-news")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp errorResponse
	decode(t, rec, &resp)
	if resp.Error == "" {
		t.Error("expected error message")
	}
}

func TestNewServerUsesRSSFallbackWithoutKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.History.File = filepath.Join(t.TempDir(), "history.json")

	srv := NewServer(cfg)
	if _, ok := srv.news.(interface{ Name() string }); !ok {
		t.Fatal("expected a named news provider")
	}
	if name := srv.news.(interface{ Name() string }).Name(); name != "Market RSS" {
		t.Errorf("provider = %q, want RSS fallback when no key configured", name)
	}
}
