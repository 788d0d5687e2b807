package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 1 {
		t.Errorf("expected burst 1 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "https://danbooru.donmai.us/posts.json?page=1"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	// A different host has its own bucket.
	if err := limiter.Wait(ctx, "https://other.example.com/posts.json"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_EnforcesRate(t *testing.T) {
	// 10 rps, burst 1: the second request must wait ~100ms.
	limiter := NewLimiter(10, 1)
	ctx := context.Background()
	url := "https://danbooru.donmai.us/posts.json"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	start := time.Now()
	if err := limiter.Wait(ctx, url); err != nil {
		t.Fatalf("second wait failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("second request not rate limited, waited only %v", elapsed)
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)
	url := "https://danbooru.donmai.us/posts.json"
	limiter.Allow(url) // drain the burst token

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, url); err == nil {
		t.Error("expected error from cancelled context")
	}
}
