package core

import (
	"testing"
	"time"
)

func TestFixedStepPending(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	// The first call primes the clock and releases the initial tick.
	if got := fs.Pending(5); got != 1 {
		t.Fatalf("initial Pending = %d, want 1", got)
	}

	clock = clock.Add(350 * time.Millisecond)
	if got := fs.Pending(5); got != 3 {
		t.Fatalf("Pending after 350ms = %d, want 3", got)
	}

	clock = clock.Add(10 * time.Second)
	if got := fs.Pending(4); got != 4 {
		t.Fatalf("Pending after stall = %d, want cap 4", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Pending(4); got != 0 {
		t.Fatalf("stall backlog should be dropped, got %d ticks", got)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("Interval = %v, want 1/60s", fs.Interval())
	}
}
