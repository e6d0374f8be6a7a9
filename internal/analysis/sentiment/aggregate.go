package sentiment

import (
	"strings"

	"github.com/seenimoa/stockmood/pkg/models"
)

// maxAnalyzedArticles caps the per-article detail list in a summary.
// More articles still contribute to the mean score; only the returned
// detail list is truncated.
const maxAnalyzedArticles = 10

// Aggregate scores a batch of articles and summarizes them into an
// overall sentiment signal. It never fails: batches with no analyzable
// content degrade to a neutral sentinel summary.
func (a *Analyzer) Aggregate(articles []models.Article) models.SentimentSummary {
	if len(articles) == 0 {
		return models.SentimentSummary{
			Label:            models.LabelNeutral,
			Score:            0,
			AnalyzedArticles: []models.ScoredArticle{},
			Details:          "No articles.",
		}
	}

	var scores []float64
	var analyzed []models.ScoredArticle

	for _, art := range articles {
		content := art.Title + ". " + art.Description
		trimmed := strings.TrimSpace(content)
		if trimmed == "" || trimmed == "." {
			continue
		}

		compound := a.Score(content)
		scores = append(scores, compound)
		analyzed = append(analyzed, models.ScoredArticle{
			Title:       art.Title,
			URL:         art.URL,
			Source:      art.Source,
			PublishedAt: art.PublishedAt,
			ImageURL:    art.ImageURL,
			Score:       compound,
		})
	}

	if len(scores) == 0 {
		return models.SentimentSummary{
			Label:            models.LabelNeutral,
			Score:            0,
			AnalyzedArticles: []models.ScoredArticle{},
			Details:          "No analyzable content.",
		}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	if len(analyzed) > maxAnalyzedArticles {
		analyzed = analyzed[:maxAnalyzedArticles]
	}

	return models.SentimentSummary{
		Label:            Label(mean),
		Score:            mean,
		AnalyzedArticles: analyzed,
	}
}

// Annotate scores a single article for display, attaching its compound
// score and label. Articles without analyzable content stay neutral at
// zero, matching the aggregation engine's skip rule.
func (a *Analyzer) Annotate(art models.Article) models.GeneralArticle {
	ga := models.GeneralArticle{
		Article:        art,
		SentimentScore: 0,
		SentimentLabel: models.LabelNeutral,
	}

	content := art.Title + ". " + art.Description
	trimmed := strings.TrimSpace(content)
	if trimmed == "" || trimmed == "." {
		return ga
	}

	ga.SentimentScore = a.Score(content)
	ga.SentimentLabel = Label(ga.SentimentScore)
	return ga
}
