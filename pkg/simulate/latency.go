// Package simulate provides the artificial API latency the mock services
// add in front of their in-memory work, mimicking a network round trip.
package simulate

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Latency sleeps for a uniformly random duration inside a window.
// A zero-valued Latency never sleeps, which is what tests use.
type Latency struct {
	Min time.Duration
	Max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLatency builds a latency window. Min above max is clamped to max.
func NewLatency(min, max time.Duration) *Latency {
	if min > max {
		min = max
	}
	return &Latency{
		Min: min,
		Max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// None returns a latency window that never sleeps.
func None() *Latency { return &Latency{} }

// Sleep blocks for a random duration in [Min, Max], or until the context
// is done. It returns immediately when the window is empty.
func (l *Latency) Sleep(ctx context.Context) {
	d := l.pick()
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (l *Latency) pick() time.Duration {
	if l.Max <= 0 {
		return 0
	}
	if l.Max == l.Min {
		return l.Max
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return l.Min + time.Duration(l.rng.Int63n(int64(l.Max-l.Min)+1))
}
