package model

import (
	"fmt"
	"math"
)

// Logistic is a linear classifier through a sigmoid. It exists to prove
// the Classifier seam and for lightweight smoke-test artifacts; production
// artifacts ship a Forest.
type Logistic struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// PredictProba implements Classifier.
func (l *Logistic) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(l.Weights) {
		return nil, fmt.Errorf("feature vector length %d, model expects %d",
			len(features), len(l.Weights))
	}
	z := l.Bias
	for i, w := range l.Weights {
		z += w * features[i]
	}
	p := 1.0 / (1.0 + math.Exp(-z))
	return []float64{1 - p, p}, nil
}
