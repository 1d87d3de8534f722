// Package playback drives an index through a step sequence over time.
//
// A Controller owns exactly one pending timer. Every cancellation bumps a
// generation counter captured by the scheduled callback, so a callback that
// fires after Stop lost the race is discarded instead of advancing a
// replaced or paused sequence.
package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

type State int

const (
	Idle State = iota
	Ready
	Playing
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	}
	return "idle"
}

const (
	DefaultSpeed    = 100 * time.Millisecond
	DefaultMinSpeed = 10 * time.Millisecond
	DefaultMaxSpeed = 2000 * time.Millisecond
)

// Snapshot is a consistent view of the controller at one instant.
type Snapshot struct {
	State    State
	Index    int
	Len      int
	Step     step.Record
	Speed    time.Duration
	Playing  bool
	Complete bool
}

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithSpeed(d time.Duration) Option {
	return func(ctl *Controller) { ctl.speed = d }
}

func WithSpeedBounds(min, max time.Duration) Option {
	return func(ctl *Controller) {
		ctl.minSpeed = min
		ctl.maxSpeed = max
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithOnChange registers a listener called after every observable change.
// It runs outside the controller lock and may call back into the controller.
func WithOnChange(fn func(Snapshot)) Option {
	return func(ctl *Controller) { ctl.onChange = fn }
}

type Controller struct {
	mu sync.Mutex

	clock    Clock
	logger   *slog.Logger
	onChange func(Snapshot)

	seq     step.Sequence
	index   int
	playing bool

	speed    time.Duration
	minSpeed time.Duration
	maxSpeed time.Duration

	timer  Timer
	gen    uint64
	closed bool
}

func New(opts ...Option) *Controller {
	c := &Controller{
		clock:    RealClock,
		logger:   slog.New(slog.DiscardHandler),
		speed:    DefaultSpeed,
		minSpeed: DefaultMinSpeed,
		maxSpeed: DefaultMaxSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.minSpeed > c.maxSpeed {
		c.minSpeed, c.maxSpeed = c.maxSpeed, c.minSpeed
	}
	c.speed = c.clamp(c.speed)
	return c
}

func (c *Controller) clamp(d time.Duration) time.Duration {
	if d < c.minSpeed {
		return c.minSpeed
	}
	if d > c.maxSpeed {
		return c.maxSpeed
	}
	return d
}

// Load installs a new sequence and rewinds to its first step. Any pending
// tick from the previous sequence is cancelled first.
func (c *Controller) Load(seq step.Sequence) {
	c.update(func() bool {
		if c.closed {
			return false
		}
		c.cancel()
		c.seq = seq
		c.index = 0
		c.playing = false
		c.logger.Debug("sequence loaded", "steps", len(seq))
		return true
	})
}

// Play starts the timer loop. From the last step it restarts at 0.
func (c *Controller) Play() {
	c.update(func() bool {
		if c.closed || len(c.seq) == 0 || c.playing {
			return false
		}
		if c.index == len(c.seq)-1 {
			c.index = 0
		}
		c.playing = true
		c.schedule()
		c.logger.Debug("playback started", "index", c.index, "speed", c.speed)
		return true
	})
}

func (c *Controller) Pause() {
	c.update(func() bool {
		if !c.playing {
			return false
		}
		c.cancel()
		c.playing = false
		c.logger.Debug("playback paused", "index", c.index)
		return true
	})
}

func (c *Controller) Toggle() {
	c.mu.Lock()
	playing := c.playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

func (c *Controller) StepForward() { c.seek(func(i, _ int) int { return i + 1 }) }
func (c *Controller) StepBack()    { c.seek(func(i, _ int) int { return i - 1 }) }
func (c *Controller) JumpToStart() { c.seek(func(_, _ int) int { return 0 }) }
func (c *Controller) JumpToEnd()   { c.seek(func(_, last int) int { return last }) }

// seek moves the index while paused, clamped to the sequence.
func (c *Controller) seek(target func(index, last int) int) {
	c.update(func() bool {
		if c.playing || len(c.seq) == 0 {
			return false
		}
		last := len(c.seq) - 1
		next := target(c.index, last)
		if next < 0 {
			next = 0
		}
		if next > last {
			next = last
		}
		if next == c.index {
			return false
		}
		c.index = next
		return true
	})
}

// SetSpeed clamps d to the configured bounds. A tick already scheduled keeps
// its original delay.
func (c *Controller) SetSpeed(d time.Duration) {
	c.update(func() bool {
		d = c.clamp(d)
		if d == c.speed {
			return false
		}
		c.speed = d
		return true
	})
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels the pending tick. A closed controller ignores Load and Play.
func (c *Controller) Close() {
	c.update(func() bool {
		c.cancel()
		c.closed = true
		wasPlaying := c.playing
		c.playing = false
		return wasPlaying
	})
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Index:   c.index,
		Len:     len(c.seq),
		Speed:   c.speed,
		Playing: c.playing,
	}
	switch {
	case len(c.seq) == 0:
		s.State = Idle
	case c.playing:
		s.State = Playing
	default:
		s.State = Ready
	}
	if len(c.seq) > 0 {
		s.Step = c.seq[c.index]
		s.Complete = c.index == len(c.seq)-1
	}
	return s
}

// update runs fn under the lock and notifies the listener outside it when fn
// reports a change.
func (c *Controller) update(fn func() bool) {
	c.mu.Lock()
	changed := fn()
	snap := c.snapshotLocked()
	listener := c.onChange
	c.mu.Unlock()

	if changed && listener != nil {
		listener(snap)
	}
}

// schedule must be called with the lock held.
func (c *Controller) schedule() {
	gen := c.gen
	c.timer = c.clock.AfterFunc(c.speed, func() { c.tick(gen) })
}

// cancel must be called with the lock held.
func (c *Controller) cancel() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) tick(gen uint64) {
	c.update(func() bool {
		if gen != c.gen || !c.playing {
			return false
		}
		c.timer = nil
		if c.index >= len(c.seq)-1 {
			c.playing = false
			c.logger.Debug("playback complete", "index", c.index)
			return true
		}
		c.index++
		c.schedule()
		return true
	})
}
