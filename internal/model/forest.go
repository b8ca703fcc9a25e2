package model

import "fmt"

// Node is a single decision node in a serialized tree. Leaves carry a
// class distribution in Value; internal nodes route on Feature <= Threshold
// (left) versus > Threshold (right), matching the training-time convention.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value,omitempty"`
}

// IsLeaf reports whether the node carries a class distribution.
func (n *Node) IsLeaf() bool {
	return len(n.Value) > 0
}

// Tree is a flat array-encoded decision tree; index 0 is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// evaluate walks the tree for one feature vector and returns the leaf
// distribution.
func (t *Tree) evaluate(features []float64) ([]float64, error) {
	if len(t.Nodes) == 0 {
		return nil, fmt.Errorf("empty tree")
	}
	idx := 0
	for hops := 0; hops <= len(t.Nodes); hops++ {
		node := &t.Nodes[idx]
		if node.IsLeaf() {
			return node.Value, nil
		}
		if node.Feature < 0 || node.Feature >= len(features) {
			return nil, fmt.Errorf("tree references feature %d outside vector of length %d",
				node.Feature, len(features))
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return nil, fmt.Errorf("tree child index %d out of range", idx)
		}
	}
	return nil, fmt.Errorf("tree walk exceeded node count (cycle?)")
}

// Forest is a random-forest classifier: the mean of the per-tree leaf
// distributions, normalized to sum to 1.
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// PredictProba implements Classifier.
func (f *Forest) PredictProba(features []float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("forest has no trees")
	}
	if f.NumFeatures > 0 && len(features) != f.NumFeatures {
		return nil, fmt.Errorf("feature vector length %d, model expects %d",
			len(features), f.NumFeatures)
	}

	sum := [2]float64{}
	for i := range f.Trees {
		dist, err := f.Trees[i].evaluate(features)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		if len(dist) != 2 {
			return nil, fmt.Errorf("tree %d leaf has %d classes, want 2", i, len(dist))
		}
		total := dist[0] + dist[1]
		if total <= 0 {
			return nil, fmt.Errorf("tree %d leaf distribution sums to %v", i, total)
		}
		sum[0] += dist[0] / total
		sum[1] += dist[1] / total
	}

	n := float64(len(f.Trees))
	return []float64{sum[0] / n, sum[1] / n}, nil
}
