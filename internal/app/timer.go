package app

import (
	"sync"
	"time"
)

// DeadlineTimer is a one-shot countdown that decrements once per tick and
// fires its callback exactly once when the count reaches zero, unless
// cancelled first. Cancellation and expiry both invalidate the running
// generation under the same lock, so a cancel that races an in-flight tick
// can never let the callback fire afterwards.
type DeadlineTimer struct {
	interval time.Duration

	mu         sync.Mutex
	generation uint64
	remaining  int
}

// NewDeadlineTimer returns a timer ticking once per second.
func NewDeadlineTimer() *DeadlineTimer {
	return NewDeadlineTimerWithInterval(time.Second)
}

// NewDeadlineTimerWithInterval allows shorter ticks in tests.
func NewDeadlineTimerWithInterval(interval time.Duration) *DeadlineTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return &DeadlineTimer{interval: interval}
}

// Start begins a fresh countdown of the given number of ticks. Any previous
// countdown is implicitly cancelled. onExpire runs on the timer goroutine.
func (t *DeadlineTimer) Start(seconds int, onExpire func()) {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.remaining = seconds
	t.mu.Unlock()

	go t.run(gen, onExpire)
}

func (t *DeadlineTimer) run(gen uint64, onExpire func()) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for range ticker.C {
		t.mu.Lock()
		if t.generation != gen {
			t.mu.Unlock()
			return
		}
		t.remaining--
		if t.remaining > 0 {
			t.mu.Unlock()
			continue
		}
		// Expiry consumes the generation so a later Cancel is a no-op and
		// the callback cannot fire twice.
		t.generation++
		t.remaining = 0
		t.mu.Unlock()
		onExpire()
		return
	}
}

// Cancel stops the countdown and guarantees the callback will never fire for
// it. Cancelling an idle or already-cancelled timer is a no-op.
func (t *DeadlineTimer) Cancel() {
	t.mu.Lock()
	t.generation++
	t.remaining = 0
	t.mu.Unlock()
}

// Remaining reports the ticks left on the active countdown, for display only.
func (t *DeadlineTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}
