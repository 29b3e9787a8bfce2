// Package progress implements the cosmetic loading indicator used by the
// UI layer. The value eases toward 95 while active and snaps to 100 on
// finish; nothing observes it for correctness.
package progress

import (
	"math/rand"
	"sync"
	"time"
)

// Tracker animates a 0-100 progress value on a polling timer.
type Tracker struct {
	mu       sync.Mutex
	active   bool
	value    float64
	stop     chan struct{}
	interval time.Duration
	rng      *rand.Rand
}

// NewTracker creates a Tracker ticking at the given interval. A
// non-positive interval defaults to 150ms.
func NewTracker(interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	return &Tracker{
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start activates the tracker and begins easing the value toward 95. A
// Start while already running restarts from zero.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
	}
	t.active = true
	t.value = 0
	stop := make(chan struct{})
	t.stop = stop
	go t.run(stop)
}

func (t *Tracker) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			inc := 5 + t.rng.Float64()*10
			t.value += inc
			if t.value > 95 {
				t.value = 95
			}
			t.mu.Unlock()
		}
	}
}

// Finish snaps the value to 100 and deactivates the tracker.
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.value = 100
	t.active = false
}

// Snapshot returns the current active flag and value.
func (t *Tracker) Snapshot() (active bool, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active, t.value
}
