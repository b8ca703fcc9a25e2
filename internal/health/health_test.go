package health

import (
	"context"
	"testing"
)

func TestCheckAllAggregates(t *testing.T) {
	r := NewRegistry()
	r.Register("model", func(ctx context.Context) Status {
		return Status{Name: "model", Healthy: true}
	})
	r.Register("hub", func(ctx context.Context) Status {
		return Status{Name: "hub", Healthy: true}
	})

	healthy, statuses := r.CheckAll(context.Background())
	if !healthy {
		t.Error("all checkers healthy, aggregate should be healthy")
	}
	if len(statuses) != 2 {
		t.Fatalf("got %d statuses, want 2", len(statuses))
	}
}

func TestCheckAllDegraded(t *testing.T) {
	r := NewRegistry()
	r.Register("model", func(ctx context.Context) Status {
		return Status{Name: "model", Healthy: false, Detail: "artifact not loaded"}
	})

	healthy, statuses := r.CheckAll(context.Background())
	if healthy {
		t.Error("unhealthy checker should make aggregate unhealthy")
	}
	if statuses[0].Detail != "artifact not loaded" {
		t.Errorf("detail = %q", statuses[0].Detail)
	}
}

func TestEmptyRegistryHealthy(t *testing.T) {
	healthy, statuses := NewRegistry().CheckAll(context.Background())
	if !healthy || len(statuses) != 0 {
		t.Error("empty registry should report healthy with no statuses")
	}
}
