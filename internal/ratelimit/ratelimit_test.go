package ratelimit

import (
	"testing"
	"time"
)

func TestAllowWithinBurst(t *testing.T) {
	l := New(Config{RequestsPerMinute: 60, BurstSize: 5, CleanupInterval: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request beyond burst should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(Config{RequestsPerMinute: 60, BurstSize: 1, CleanupInterval: time.Minute})
	defer l.Stop()

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request for key A should be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("exhausting key A must not affect key B")
	}
}

func TestTokensRefill(t *testing.T) {
	l := New(Config{RequestsPerMinute: 6000, BurstSize: 1, CleanupInterval: time.Minute})
	defer l.Stop()

	l.Allow("10.0.0.1")
	if l.Allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}
	time.Sleep(50 * time.Millisecond) // 100 tokens/sec refill rate
	if !l.Allow("10.0.0.1") {
		t.Error("bucket should have refilled")
	}
}
