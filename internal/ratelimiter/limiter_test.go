package ratelimiter_test

import (
	"testing"

	"github.com/hng13/deploypage/internal/ratelimiter"
)

func TestNew_DisabledReturnsNil(t *testing.T) {
	for _, rps := range []int{0, -5} {
		if l := ratelimiter.New(rps, 10); l != nil {
			t.Fatalf("rps=%d: expected nil limiter", rps)
		}
	}
}

func TestLimiter_NilAllowsEverything(t *testing.T) {
	var l *ratelimiter.Limiter
	for i := 0; i < 1000; i++ {
		if !l.Allow() {
			t.Fatal("nil limiter must always allow")
		}
	}
}

// TestLimiter_BurstExhaustion verifies that once the burst is spent further
// requests are refused. The refill rate is 1/s so no token returns during
// the test.
func TestLimiter_BurstExhaustion(t *testing.T) {
	l := ratelimiter.New(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("request %d: expected allow within burst", i)
		}
	}
	if l.Allow() {
		t.Fatal("expected request beyond burst to be refused")
	}
}

func TestLimiter_ZeroBurstEqualsRate(t *testing.T) {
	l := ratelimiter.New(2, 0)

	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow() {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("expected burst of 2, got %d", allowed)
	}
}
