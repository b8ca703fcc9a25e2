// Package scoring turns a classifier probability into a risk tier and a
// recommended action.
//
// Tier cut-points and recommendation records are fixed product policy:
// they are evaluated top-down on the raw probability, first match wins,
// with each band inclusive on its lower bound.
package scoring

import (
	"fmt"
	"math"

	"github.com/novapay/fraudscore/internal/model"
)

// Tier is the discrete risk level derived from the fraud probability.
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierHigh     Tier = "HIGH"
	TierMedium   Tier = "MEDIUM"
	TierLow      Tier = "LOW"
	TierMinimal  Tier = "MINIMAL"
)

// Probability cut-points for tier assignment.
const (
	criticalCutoff = 0.70
	highCutoff     = 0.50
	mediumCutoff   = 0.30
	lowCutoff      = 0.10
)

// tierColors are the display colors the dashboard renders each tier with.
var tierColors = map[Tier]string{
	TierCritical: "#dc2626",
	TierHigh:     "#ea580c",
	TierMedium:   "#f59e0b",
	TierLow:      "#84cc16",
	TierMinimal:  "#22c55e",
}

// Recommendation is the canned operational guidance attached to a tier.
type Recommendation struct {
	Action  string `json:"action"`
	Details string `json:"details"`
	Icon    string `json:"icon"`
}

var recommendations = map[Tier]Recommendation{
	TierCritical: {
		Action:  "BLOCK TRANSACTION",
		Details: "This transaction shows extremely high fraud indicators. Immediate blocking is recommended. Flag for manual review and contact customer for verification.",
		Icon:    "🚫",
	},
	TierHigh: {
		Action:  "HOLD FOR REVIEW",
		Details: "Transaction flagged with high fraud probability. Place on hold and require additional verification before processing.",
		Icon:    "⚠️",
	},
	TierMedium: {
		Action:  "ENHANCED MONITORING",
		Details: "Transaction shows moderate risk signals. Proceed with enhanced monitoring and log for pattern analysis.",
		Icon:    "👁️",
	},
	TierLow: {
		Action:  "PROCEED WITH CAUTION",
		Details: "Low fraud indicators detected. Transaction can proceed but include in routine monitoring reports.",
		Icon:    "✅",
	},
	TierMinimal: {
		Action:  "APPROVE",
		Details: "Transaction appears legitimate with minimal risk indicators. Safe to process normally.",
		Icon:    "✨",
	},
}

// Result is a single scored transaction. Probability and thresholds are
// carried both raw (for callers doing math) and as 2-decimal percentages
// (the wire representation).
type Result struct {
	Probability         float64
	ProbabilityPct      float64
	IsFraudBest         bool
	IsFraudDefault      bool
	Tier                Tier
	Color               string
	BestThresholdPct    float64
	DefaultThresholdPct float64
	Recommendation      Recommendation
}

// Score evaluates one feature vector against the loaded model package.
// Returns model.ErrNotLoaded when no package is available; any classifier
// failure is wrapped and surfaced as an inference error.
func Score(features []float64, pkg *model.Package) (*Result, error) {
	if pkg == nil || pkg.Classifier == nil {
		return nil, model.ErrNotLoaded
	}

	p, err := pkg.FraudProbability(features)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	tier := TierFor(p)
	return &Result{
		Probability:         p,
		ProbabilityPct:      RoundPct(p),
		IsFraudBest:         p >= pkg.BestThreshold,
		IsFraudDefault:      p >= pkg.DefaultThreshold,
		Tier:                tier,
		Color:               tierColors[tier],
		BestThresholdPct:    RoundPct(pkg.BestThreshold),
		DefaultThresholdPct: RoundPct(pkg.DefaultThreshold),
		Recommendation:      RecommendationFor(tier),
	}, nil
}

// TierFor assigns the risk tier for a probability, top-down, lower bounds
// inclusive.
func TierFor(p float64) Tier {
	switch {
	case p >= criticalCutoff:
		return TierCritical
	case p >= highCutoff:
		return TierHigh
	case p >= mediumCutoff:
		return TierMedium
	case p >= lowCutoff:
		return TierLow
	default:
		return TierMinimal
	}
}

// RecommendationFor looks up the fixed record for a tier. The enumeration
// is closed; an unrecognized tier falls back to the MEDIUM record.
func RecommendationFor(tier Tier) Recommendation {
	if rec, ok := recommendations[tier]; ok {
		return rec
	}
	return recommendations[TierMedium]
}

// ColorFor returns the display color for a tier.
func ColorFor(tier Tier) string {
	return tierColors[tier]
}

// RoundPct converts a [0,1] fraction to a percentage rounded to 2 decimals.
func RoundPct(p float64) float64 {
	return math.Round(p*10000) / 100
}
