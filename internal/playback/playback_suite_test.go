package playback_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
)

func TestPlayback(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Playback Suite")
}

// manualClock fires callbacks only when Advance is called.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	when    time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) playback.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, when: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending counts timers that are scheduled and not stopped.
func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward, firing due timers in order. Callbacks run
// without the clock lock so they can schedule again.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.SliceStable(c.timers, func(i, j int) bool { return c.timers[i].when < c.timers[j].when })
		var due *manualTimer
		for i, t := range c.timers {
			if t.stopped {
				continue
			}
			if t.when <= target {
				due = t
				c.timers = append(c.timers[:i], c.timers[i+1:]...)
			}
			break
		}
		if due == nil {
			c.now = target
			c.timers = compact(c.timers)
			c.mu.Unlock()
			return
		}
		due.stopped = true
		c.now = due.when
		c.mu.Unlock()
		due.fn()
	}
}

// FireStale runs a stopped callback anyway, as a real timer might when Stop
// loses the race with expiry.
func (c *manualClock) FireStale() int {
	c.mu.Lock()
	var stale []func()
	for _, t := range c.timers {
		if t.stopped {
			stale = append(stale, t.fn)
		}
	}
	c.mu.Unlock()
	for _, fn := range stale {
		fn()
	}
	return len(stale)
}

func compact(ts []*manualTimer) []*manualTimer {
	out := ts[:0]
	for _, t := range ts {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}
