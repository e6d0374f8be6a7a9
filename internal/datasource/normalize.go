package datasource

import "github.com/seenimoa/stockmood/pkg/models"

// NormalizeArticle maps a provider-specific article record into the
// canonical Article shape. Extraction is best-effort: unknown, missing,
// or mistyped fields yield empty canonical fields, never a panic.
func NormalizeArticle(raw map[string]any) models.Article {
	return models.Article{
		Title:       stringField(raw, "title"),
		Description: stringField(raw, "description"),
		URL:         stringField(raw, "url", "link"),
		ImageURL:    stringField(raw, "imageUrl", "urlToImage", "image"),
		PublishedAt: stringField(raw, "publishedAt", "published_at", "pubDate"),
		Source:      sourceName(raw["source"]),
	}
}

// stringField returns the first of the given keys holding a string value.
func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok {
			return s
		}
	}
	return ""
}

// sourceName handles both flat ("source": "Reuters") and nested
// ("source": {"name": "Reuters"}) provider layouts.
func sourceName(v any) string {
	switch src := v.(type) {
	case string:
		return src
	case map[string]any:
		if name, ok := src["name"].(string); ok {
			return name
		}
	}
	return ""
}
