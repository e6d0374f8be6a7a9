// Package sentiment implements the lexicon-based sentiment scorer and the
// article aggregation engine.
//
// Scoring is offline and deterministic: a fixed valence lexicon with
// negation and booster rules, normalized to a compound score in [-1, 1].
// No LLM, no network calls, no randomness.
package sentiment

import (
	"math"
	"strings"

	"github.com/seenimoa/stockmood/pkg/models"
)

// Thresholds for classifying a compound score. Both boundaries are
// inclusive: exactly 0.05 is positive, exactly -0.05 is negative.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// negationDampener scales a valence hit by a preceding negator.
const negationDampener = -0.74

// Analyzer scores text against the package lexicon. It holds no mutable
// state and is safe for concurrent use; construct once and share.
type Analyzer struct {
	lexicon  map[string]float64
	boosters map[string]float64
	negators map[string]bool
}

// NewAnalyzer returns an analyzer backed by the built-in lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon:  lexicon,
		boosters: boosters,
		negators: negators,
	}
}

// Score returns the compound polarity of text in [-1, 1].
// Zero means no sentiment signal was found.
func (a *Analyzer) Score(text string) float64 {
	tokens := tokenize(text)

	sum := 0.0
	for i, tok := range tokens {
		valence, ok := a.lexicon[tok]
		if !ok {
			continue
		}

		// Boosters within the two preceding tokens intensify or dampen.
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			if b, ok := a.boosters[tokens[j]]; ok {
				if valence > 0 {
					valence += b
				} else {
					valence -= b
				}
			}
		}

		// A negator within the three preceding tokens flips polarity.
		for j := i - 1; j >= 0 && j >= i-3; j-- {
			if a.negators[tokens[j]] {
				valence *= negationDampener
				break
			}
		}

		sum += valence
	}

	return normalize(sum)
}

// Label classifies a compound score using the fixed ±0.05 thresholds.
func Label(score float64) models.SentimentLabel {
	switch {
	case score >= positiveThreshold:
		return models.LabelPositive
	case score <= negativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// normalize maps an unbounded valence sum onto [-1, 1].
// Same alpha=15 squashing as the reference VADER implementation.
func normalize(sum float64) float64 {
	n := sum / math.Sqrt(sum*sum+15)
	if n > 1 {
		return 1
	}
	if n < -1 {
		return -1
	}
	return n
}

// tokenize lower-cases text and splits it into words, trimming
// surrounding punctuation but keeping intra-word apostrophes and
// hyphens so contractions and terms like "sell-off" match the lexicon.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !isWordRune(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '\'' || r == '-' || r == '&':
		return true
	}
	return false
}
