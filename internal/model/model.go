// Package model loads and evaluates the serialized fraud classifier.
//
// The classifier is modeled as a capability — anything that maps a feature
// vector to a two-class probability distribution — so the artifact format
// can change (random forest today, logistic fallback for smoke tests)
// without touching the scoring path.
package model

import (
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when scoring is attempted before a model
// package was successfully loaded.
var ErrNotLoaded = errors.New("model not loaded")

// DefaultThreshold is used when the artifact omits a threshold value.
const DefaultThreshold = 0.5

// Classifier maps a feature vector to a probability distribution over
// the classes [not-fraud, fraud].
type Classifier interface {
	PredictProba(features []float64) ([]float64, error)
}

// Package bundles the trained classifier with its decision thresholds.
// Constructed once at startup and read-only afterwards; safe for
// concurrent use by all request handlers.
type Package struct {
	Classifier       Classifier
	BestThreshold    float64
	DefaultThreshold float64
}

// FraudProbability runs the classifier and returns the probability mass
// on the positive (fraud) class.
func (p *Package) FraudProbability(features []float64) (float64, error) {
	if p == nil || p.Classifier == nil {
		return 0, ErrNotLoaded
	}
	probs, err := p.Classifier.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if len(probs) != 2 {
		return 0, fmt.Errorf("classifier returned %d classes, want 2", len(probs))
	}
	return probs[1], nil
}
