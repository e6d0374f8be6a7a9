package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/seenimoa/stockmood/internal/datasource"
	"github.com/seenimoa/stockmood/pkg/models"
	"github.com/seenimoa/stockmood/pkg/utils"
)

// HistoricalSentimentResponse is the body of GET /historical-sentiment.
type HistoricalSentimentResponse struct {
	Ticker  string                    `json:"ticker"`
	History []models.HistoricalSample `json:"history"`
}

// HistoricalPriceResponse is the body of GET /historical-price.
type HistoricalPriceResponse struct {
	Ticker string              `json:"ticker"`
	Prices []models.PricePoint `json:"prices"`
	Error  string              `json:"error,omitempty"`
}

// GeneralNewsResponse is the body of GET /general-news.
type GeneralNewsResponse struct {
	Articles []models.GeneralArticle `json:"articles"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyzeTicker aggregates recent news sentiment for one ticker.
// Provider failures and empty article sets produce a 200 neutral
// sentinel, never a 5xx: "no news today" is not an error to frontends.
func (s *Server) handleAnalyzeTicker(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "Ticker symbol is required")
		return
	}
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := "analyze:" + symbol
	if cached, ok := s.analyzeCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached.(models.SentimentSummary))
		return
	}

	articles, err := s.news.StockNews(r.Context(), symbol)
	if err != nil || len(articles) == 0 {
		details := fmt.Sprintf("No news articles found for %s.", symbol)
		if err != nil {
			log.Printf("analyze-ticker %s: news fetch: %v", symbol, err)
			details = fmt.Sprintf("News fetch error: %v", err)
		}
		writeJSON(w, http.StatusOK, models.SentimentSummary{
			Label:            models.LabelNeutral,
			Score:            0,
			AnalyzedArticles: []models.ScoredArticle{},
			Details:          details,
		})
		return
	}

	result := s.analyzer.Aggregate(articles)

	// Record a history sample only when at least one article was
	// actually scored; sentinel results never enter the time series.
	if len(result.AnalyzedArticles) > 0 {
		s.store.Append(symbol, result.Score)
	}

	s.analyzeCache.Set(cacheKey, result)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistoricalSentiment(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "Ticker symbol is required")
		return
	}
	symbol := utils.NormalizeTicker(ticker)

	writeJSON(w, http.StatusOK, HistoricalSentimentResponse{
		Ticker:  symbol,
		History: s.store.Query(symbol),
	})
}

// handleHistoricalPrice passes the price provider's series through.
// Provider errors soft-fail as 200 with an error message and an empty
// series, keeping the response shape stable for frontends.
func (s *Server) handleHistoricalPrice(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		writeError(w, http.StatusBadRequest, "Ticker symbol is required")
		return
	}
	symbol := utils.NormalizeTicker(ticker)
	from := r.URL.Query().Get("from_date")
	to := r.URL.Query().Get("to_date")

	cacheKey := fmt.Sprintf("price:%s:%s:%s", symbol, from, to)
	if cached, ok := s.priceCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached.(HistoricalPriceResponse))
		return
	}

	prices, err := s.prices.HistoricalPrices(r.Context(), symbol, from, to)
	if err != nil {
		log.Printf("historical-price %s: %v", symbol, err)
		msg := "Could not fetch price data."
		if errors.Is(err, datasource.ErrMissingAPIKey) {
			msg = "Price data API key not configured."
		} else if errors.Is(err, datasource.ErrNoData) {
			msg = "No historical price data found for the given parameters."
		}
		writeJSON(w, http.StatusOK, HistoricalPriceResponse{
			Ticker: symbol,
			Prices: []models.PricePoint{},
			Error:  msg,
		})
		return
	}

	resp := HistoricalPriceResponse{Ticker: symbol, Prices: prices}
	s.priceCache.Set(cacheKey, resp)
	writeJSON(w, http.StatusOK, resp)
}

// handleGeneralNews serves market headlines annotated with per-article
// sentiment. Unlike ticker analysis there is no sentinel content to fall
// back on, so provider failures surface as a gateway error.
func (s *Server) handleGeneralNews(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "general-news"
	if cached, ok := s.newsCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached.(GeneralNewsResponse))
		return
	}

	articles, err := s.news.TopHeadlines(r.Context())
	if err != nil {
		log.Printf("general-news: %v", err)
		writeError(w, http.StatusBadGateway, fmt.Sprintf("General news fetch error: %v", err))
		return
	}

	annotated := make([]models.GeneralArticle, 0, len(articles))
	for _, a := range articles {
		annotated = append(annotated, s.analyzer.Annotate(a))
	}

	resp := GeneralNewsResponse{Articles: annotated}
	s.newsCache.Set(cacheKey, resp)
	writeJSON(w, http.StatusOK, resp)
}
