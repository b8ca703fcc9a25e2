package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// artifact is the on-disk model package layout. Thresholds are optional;
// absent values fall back to DefaultThreshold.
type artifact struct {
	ModelType        string    `json:"model_type"`
	BestThreshold    *float64  `json:"best_threshold,omitempty"`
	DefaultThreshold *float64  `json:"default_threshold,omitempty"`
	Forest           *Forest   `json:"forest,omitempty"`
	Logistic         *Logistic `json:"logistic,omitempty"`
}

// Load reads a serialized model package from path. A missing or corrupt
// artifact is an error for the caller to log — the service is expected to
// keep running in degraded mode with no package.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return Parse(data)
}

// Parse decodes a model package from raw artifact bytes.
func Parse(data []byte) (*Package, error) {
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	var clf Classifier
	switch a.ModelType {
	case "random_forest":
		if a.Forest == nil || len(a.Forest.Trees) == 0 {
			return nil, fmt.Errorf("artifact declares random_forest but carries no trees")
		}
		clf = a.Forest
	case "logistic":
		if a.Logistic == nil || len(a.Logistic.Weights) == 0 {
			return nil, fmt.Errorf("artifact declares logistic but carries no weights")
		}
		clf = a.Logistic
	default:
		return nil, fmt.Errorf("unsupported model_type %q", a.ModelType)
	}

	pkg := &Package{
		Classifier:       clf,
		BestThreshold:    DefaultThreshold,
		DefaultThreshold: DefaultThreshold,
	}
	if a.BestThreshold != nil {
		pkg.BestThreshold = *a.BestThreshold
	}
	if a.DefaultThreshold != nil {
		pkg.DefaultThreshold = *a.DefaultThreshold
	}

	if pkg.BestThreshold < 0 || pkg.BestThreshold > 1 {
		return nil, fmt.Errorf("best_threshold %v outside [0,1]", pkg.BestThreshold)
	}
	if pkg.DefaultThreshold < 0 || pkg.DefaultThreshold > 1 {
		return nil, fmt.Errorf("default_threshold %v outside [0,1]", pkg.DefaultThreshold)
	}

	return pkg, nil
}
