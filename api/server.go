// Package api provides the HTTP REST API server for StockMood.
//
// It exposes endpoints for ticker sentiment analysis, historical
// sentiment, historical prices, and general market news.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/stockmood/internal/analysis/sentiment"
	"github.com/seenimoa/stockmood/internal/config"
	"github.com/seenimoa/stockmood/internal/datasource"
	"github.com/seenimoa/stockmood/internal/history"
	"github.com/seenimoa/stockmood/internal/infra"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	analyzer *sentiment.Analyzer
	news     datasource.NewsProvider
	prices   datasource.PriceProvider
	store    *history.Store

	// Per-endpoint response caches, keyed by request parameters.
	analyzeCache *infra.Cache
	priceCache   *infra.Cache
	newsCache    *infra.Cache
}

// NewServer creates a configured API server with all routes and middleware.
// With a NewsAPI key configured the NewsAPI provider is used; otherwise
// the keyless RSS fallback serves market headlines.
func NewServer(cfg *config.Config) *Server {
	var news datasource.NewsProvider
	if cfg.News.NewsAPIKey != "" {
		news = datasource.NewNewsAPI(cfg.News.NewsAPIKey)
	} else {
		news = datasource.NewRSS(feedsFromConfig(cfg.News.RSSFeeds))
	}

	srv := &Server{
		cfg:          cfg,
		analyzer:     sentiment.NewAnalyzer(),
		news:         news,
		prices:       datasource.NewFMP(cfg.Prices.FMPKey),
		store:        history.NewStore(cfg.History.File),
		analyzeCache: infra.NewCache(time.Duration(cfg.Cache.AnalyzeTTL) * time.Second),
		priceCache:   infra.NewCache(time.Duration(cfg.Cache.PriceTTL) * time.Second),
		newsCache:    infra.NewCache(time.Duration(cfg.Cache.GeneralNewsTTL) * time.Second),
	}

	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/analyze-ticker", s.handleAnalyzeTicker)
	r.Get("/historical-sentiment", s.handleHistoricalSentiment)
	r.Get("/historical-price", s.handleHistoricalPrice)
	r.Get("/general-news", s.handleGeneralNews)

	return r
}

// feedsFromConfig builds RSS feeds from configured URLs, naming each
// feed after its host.
func feedsFromConfig(urls []string) []datasource.Feed {
	feeds := make([]datasource.Feed, 0, len(urls))
	for _, raw := range urls {
		name := raw
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			name = u.Host
		}
		feeds = append(feeds, datasource.Feed{Name: name, URL: raw})
	}
	return feeds
}

// --- Response helpers ---

// errorResponse is the body for client and upstream errors.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
