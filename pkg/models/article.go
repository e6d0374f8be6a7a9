// Package models defines the core data structures used throughout StockMood.
package models

// SentimentLabel classifies a compound score as positive, neutral, or negative.
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNeutral  SentimentLabel = "neutral"
	LabelNegative SentimentLabel = "negative"
)

// Article is the canonical article shape produced by the normalizer.
// Any field may be empty when the provider record lacked it.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
	PublishedAt string `json:"publishedAt"` // provider-supplied, usually RFC 3339
	Source      string `json:"source"`
}

// ScoredArticle carries an article's display metadata plus its own
// compound sentiment score. Immutable once created by the aggregator.
type ScoredArticle struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	PublishedAt string  `json:"publishedAt"`
	ImageURL    string  `json:"imageUrl"`
	Score       float64 `json:"sentiment_score"`
}

// SentimentSummary is the aggregate result for one batch of articles.
// It doubles as the /analyze-ticker response body.
type SentimentSummary struct {
	Label            SentimentLabel  `json:"sentiment"`
	Score            float64         `json:"score"`
	AnalyzedArticles []ScoredArticle `json:"analyzed_articles"`
	Details          string          `json:"details,omitempty"`
}

// GeneralArticle is an Article annotated with per-article sentiment,
// served by /general-news.
type GeneralArticle struct {
	Article
	SentimentScore float64        `json:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
}

// HistoricalSample is one (timestamp, score) point in a ticker's
// sentiment history. Immutable once written.
type HistoricalSample struct {
	Timestamp string  `json:"timestamp"` // ISO-8601 UTC
	Score     float64 `json:"score"`
}
