package sentiment

// ------------------------------------------------------------------
// Valence lexicon for the rule-based scorer. Values follow the usual
// VADER scale of roughly -4 (most negative) to +4 (most positive).
// The lexicon is fixed at compile time; scoring is fully deterministic
// for a given lexicon version.
// ------------------------------------------------------------------

var lexicon = map[string]float64{
	// general positive
	"good": 1.9, "great": 3.1, "excellent": 2.7, "strong": 2.3,
	"positive": 2.0, "best": 3.2, "better": 1.9, "improved": 1.9,
	"improving": 1.9, "success": 2.7, "successful": 2.8, "win": 2.8,
	"winning": 2.4, "wins": 2.7, "optimistic": 2.4, "optimism": 2.4,
	"confident": 2.2, "confidence": 2.3, "robust": 2.0, "healthy": 1.7,
	"solid": 1.5, "stellar": 2.8, "impressive": 2.3, "upbeat": 2.1,
	"promising": 2.0, "favorable": 1.9, "resilient": 1.8,

	// finance positive
	"profit": 2.1, "profits": 2.1, "profitable": 2.2, "gain": 1.9,
	"gains": 1.9, "gained": 1.8, "growth": 2.0, "grow": 1.6,
	"grew": 1.6, "rally": 2.2, "rallied": 2.2, "surge": 2.4,
	"surged": 2.4, "surges": 2.4, "soar": 2.6, "soared": 2.6,
	"soars": 2.6, "jump": 1.8, "jumped": 1.8, "jumps": 1.8,
	"climb": 1.6, "climbed": 1.6, "climbs": 1.6, "beat": 2.0,
	"beats": 2.0, "exceeded": 2.0, "exceeds": 2.0, "outperform": 2.2,
	"outperformed": 2.2, "outperforms": 2.2, "upgrade": 2.0,
	"upgraded": 2.0, "bullish": 2.5, "boom": 2.4, "record": 1.6,
	"dividend": 1.2, "expansion": 1.6, "recovery": 1.8, "recovered": 1.8,
	"breakthrough": 2.5, "momentum": 1.3, "up": 1.1, "higher": 1.3,
	"rise": 1.5, "rises": 1.5, "rose": 1.5, "rising": 1.5,
	"buy": 1.3, "boost": 1.8, "boosted": 1.8, "boosts": 1.8,

	// general negative
	"bad": -2.5, "poor": -2.1, "terrible": -3.1, "awful": -3.0,
	"negative": -2.0, "worst": -3.1, "worse": -2.1, "weak": -1.9,
	"weakness": -1.9, "fail": -2.5, "failed": -2.3, "fails": -2.3,
	"failure": -2.6, "trouble": -2.0, "troubled": -2.1, "problem": -1.7,
	"problems": -1.7, "fear": -2.2, "fears": -2.2, "worry": -1.9,
	"worries": -1.9, "worried": -1.9, "doubt": -1.5, "doubts": -1.5,
	"uncertain": -1.4, "uncertainty": -1.4, "pessimistic": -2.4,
	"disappointing": -2.2, "disappointed": -2.2, "disappoints": -2.2,
	"bleak": -2.3, "grim": -2.4, "dismal": -2.5,

	// finance negative
	"loss": -2.2, "losses": -2.2, "lose": -2.1, "lost": -2.0,
	"decline": -1.8, "declined": -1.8, "declines": -1.8, "drop": -1.7,
	"dropped": -1.7, "drops": -1.7, "fall": -1.7, "falls": -1.7,
	"fell": -1.7, "falling": -1.7, "plunge": -2.6, "plunged": -2.6,
	"plunges": -2.6, "plummet": -2.8, "plummeted": -2.8, "crash": -3.0,
	"crashed": -3.0, "slump": -2.3, "slumped": -2.3, "selloff": -2.4,
	"sell-off": -2.4, "tumble": -2.2, "tumbled": -2.2, "tumbles": -2.2,
	"sink": -2.0, "sank": -2.0, "sinks": -2.0, "slide": -1.6,
	"slides": -1.6, "slid": -1.6, "downgrade": -2.0, "downgraded": -2.0,
	"bearish": -2.5, "recession": -2.7, "bankruptcy": -3.3,
	"bankrupt": -3.2, "default": -2.5, "defaulted": -2.5, "debt": -1.3,
	"lawsuit": -2.0, "fraud": -3.2, "scandal": -2.8, "investigation": -1.8,
	"probe": -1.5, "fine": -1.2, "fined": -1.8, "penalty": -1.8,
	"layoffs": -2.3, "layoff": -2.3, "cuts": -1.4, "cut": -1.3,
	"miss": -1.8, "missed": -1.8, "misses": -1.8, "warning": -1.9,
	"warns": -1.9, "warned": -1.9, "concern": -1.6, "concerns": -1.6,
	"risk": -1.3, "risks": -1.3, "risky": -1.6, "crisis": -2.7,
	"volatile": -1.4, "volatility": -1.3, "inflation": -1.2,
	"shortfall": -2.0, "down": -1.1, "lower": -1.2, "sell": -1.1,
}

// boosters intensify (positive value) or dampen (negative value) the
// valence of the next sentiment-bearing word.
var boosters = map[string]float64{
	"very": 0.293, "extremely": 0.293, "hugely": 0.293, "really": 0.267,
	"significantly": 0.293, "sharply": 0.293, "strongly": 0.267,
	"massively": 0.293, "substantially": 0.267, "considerably": 0.267,
	"slightly": -0.293, "somewhat": -0.233, "marginally": -0.293,
	"barely": -0.293, "mildly": -0.267,
}

// negators flip the polarity of a following sentiment-bearing word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "none": true,
	"neither": true, "nor": true, "cannot": true, "can't": true,
	"won't": true, "isn't": true, "wasn't": true, "aren't": true,
	"weren't": true, "doesn't": true, "don't": true, "didn't": true,
	"hasn't": true, "haven't": true, "hadn't": true, "without": true,
	"lacks": true, "lacking": true,
}
