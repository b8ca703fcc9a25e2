package scoring

import (
	"errors"
	"fmt"
	"testing"

	"github.com/novapay/fraudscore/internal/model"
)

// fixedClassifier always returns the same fraud probability.
type fixedClassifier struct {
	p float64
}

func (f *fixedClassifier) PredictProba(features []float64) ([]float64, error) {
	return []float64{1 - f.p, f.p}, nil
}

// failingClassifier simulates an internal model failure.
type failingClassifier struct{}

func (f *failingClassifier) PredictProba(features []float64) ([]float64, error) {
	return nil, fmt.Errorf("shape mismatch")
}

func pkgWith(p float64) *model.Package {
	return &model.Package{
		Classifier:       &fixedClassifier{p: p},
		BestThreshold:    0.42,
		DefaultThreshold: 0.5,
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		p    float64
		want Tier
	}{
		{0.70, TierCritical},
		{0.99, TierCritical},
		{0.6999, TierHigh},
		{0.50, TierHigh},
		{0.4999, TierMedium},
		{0.30, TierMedium},
		{0.2999, TierLow},
		{0.10, TierLow},
		{0.0999, TierMinimal},
		{0.0, TierMinimal},
	}
	for _, tc := range cases {
		if got := TierFor(tc.p); got != tc.want {
			t.Errorf("TierFor(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}

func TestScoreThresholdVerdicts(t *testing.T) {
	res, err := Score([]float64{0}, pkgWith(0.45))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !res.IsFraudBest {
		t.Error("0.45 >= best threshold 0.42, expected fraud verdict")
	}
	if res.IsFraudDefault {
		t.Error("0.45 < default threshold 0.5, expected non-fraud verdict")
	}

	// Threshold boundaries are inclusive.
	res, err = Score([]float64{0}, pkgWith(0.42))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !res.IsFraudBest {
		t.Error("probability equal to threshold should count as fraud")
	}
}

func TestScoreRounding(t *testing.T) {
	res, err := Score([]float64{0}, pkgWith(0.123456))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if res.ProbabilityPct != 12.35 {
		t.Errorf("probability pct = %v, want 12.35", res.ProbabilityPct)
	}
	if res.BestThresholdPct != 42.0 {
		t.Errorf("best threshold pct = %v, want 42", res.BestThresholdPct)
	}
	if res.DefaultThresholdPct != 50.0 {
		t.Errorf("default threshold pct = %v, want 50", res.DefaultThresholdPct)
	}
}

func TestScoreTierAndColor(t *testing.T) {
	res, err := Score([]float64{0}, pkgWith(0.83))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if res.Tier != TierCritical {
		t.Errorf("tier = %s, want CRITICAL", res.Tier)
	}
	if res.Color != "#dc2626" {
		t.Errorf("color = %s, want #dc2626", res.Color)
	}
	if res.Recommendation.Action != "BLOCK TRANSACTION" {
		t.Errorf("action = %s, want BLOCK TRANSACTION", res.Recommendation.Action)
	}
}

func TestScoreNoModel(t *testing.T) {
	if _, err := Score([]float64{0}, nil); !errors.Is(err, model.ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

func TestScoreInferenceError(t *testing.T) {
	pkg := &model.Package{
		Classifier:       &failingClassifier{},
		BestThreshold:    0.5,
		DefaultThreshold: 0.5,
	}
	_, err := Score([]float64{0}, pkg)
	if err == nil {
		t.Fatal("expected inference error")
	}
	if errors.Is(err, model.ErrNotLoaded) {
		t.Error("inference failure must not be reported as model-unavailable")
	}
}

func TestRecommendationFallback(t *testing.T) {
	rec := RecommendationFor(Tier("IMPOSSIBLE"))
	if rec.Action != recommendations[TierMedium].Action {
		t.Errorf("unknown tier should fall back to MEDIUM record, got %s", rec.Action)
	}
}

func TestEveryTierHasRecommendationAndColor(t *testing.T) {
	for _, tier := range []Tier{TierCritical, TierHigh, TierMedium, TierLow, TierMinimal} {
		if _, ok := recommendations[tier]; !ok {
			t.Errorf("tier %s missing recommendation", tier)
		}
		if ColorFor(tier) == "" {
			t.Errorf("tier %s missing color", tier)
		}
	}
}
