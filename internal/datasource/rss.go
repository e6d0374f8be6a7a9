package datasource

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/stockmood/internal/infra"
	"github.com/seenimoa/stockmood/pkg/models"
	"github.com/seenimoa/stockmood/pkg/utils"
)

// Feed is one RSS market-news source.
type Feed struct {
	Name string
	URL  string
}

// DefaultFeeds lists the market news feeds used when none are configured.
var DefaultFeeds = []Feed{
	{Name: "CNBC Markets", URL: "https://www.cnbc.com/id/20910258/device/rss/rss.html"},
	{Name: "MarketWatch Top Stories", URL: "https://feeds.content.dowjones.io/public/rss/mw_topstories"},
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex"},
}

// RSS serves market headlines from RSS feeds. It is the keyless fallback
// news provider: used for general news when no NewsAPI key is configured,
// with ticker news reduced to a mention filter over the market feed.
type RSS struct {
	feeds   []Feed
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// datedArticle pairs an article with its parsed publication time for sorting.
type datedArticle struct {
	article models.Article
	at      time.Time
}

// NewRSS creates an RSS news source. Empty feeds falls back to DefaultFeeds.
func NewRSS(feeds []Feed) *RSS {
	if len(feeds) == 0 {
		feeds = DefaultFeeds
	}
	return &RSS{
		feeds:   feeds,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second),
		parser:  gofeed.NewParser(),
	}
}

// Name returns the data source name.
func (r *RSS) Name() string { return "Market RSS" }

// TopHeadlines returns recent headlines from all configured feeds,
// newest first. Feeds are fetched concurrently; a failing feed is
// skipped rather than failing the batch.
func (r *RSS) TopHeadlines(ctx context.Context) ([]models.Article, error) {
	const cacheKey = "rss:headlines"
	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.([]models.Article), nil
	}

	var mu sync.Mutex
	var all []datedArticle

	g, gctx := errgroup.WithContext(ctx)
	for _, feed := range r.feeds {
		feed := feed
		g.Go(func() error {
			items, err := r.fetchFeed(gctx, feed)
			if err != nil {
				// Non-critical: skip failed feeds.
				return nil
			}
			mu.Lock()
			all = append(all, items...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].at.After(all[j].at)
	})

	articles := make([]models.Article, 0, len(all))
	for _, d := range all {
		articles = append(articles, d.article)
	}

	r.cache.Set(cacheKey, articles)
	return articles, nil
}

// StockNews filters the market headlines down to articles mentioning the
// ticker symbol.
func (r *RSS) StockNews(ctx context.Context, ticker string) ([]models.Article, error) {
	symbol := utils.NormalizeTicker(ticker)

	all, err := r.TopHeadlines(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(symbol)
	var filtered []models.Article
	for _, a := range all {
		content := strings.ToLower(a.Title + " " + a.Description)
		if strings.Contains(content, needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// fetchFeed parses one RSS feed into dated articles.
func (r *RSS) fetchFeed(ctx context.Context, feed Feed) ([]datedArticle, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	parsed, err := r.parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		return nil, err
	}

	out := make([]datedArticle, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		a := models.Article{
			Title:       item.Title,
			Description: cleanHTML(item.Description),
			URL:         item.Link,
			Source:      feed.Name,
		}
		var at time.Time
		if item.PublishedParsed != nil {
			at = *item.PublishedParsed
			a.PublishedAt = utils.UTCTimestamp(at)
		}
		if item.Image != nil {
			a.ImageURL = item.Image.URL
		}
		out = append(out, datedArticle{article: a, at: at})
	}
	return out, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
