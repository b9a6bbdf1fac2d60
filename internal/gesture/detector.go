// ABOUTME: Long-press detector distinguishing a sustained hold from a tap.
// ABOUTME: Clock-driven polling, decoupled from any rendering cadence.

package gesture

import (
	"sync"
	"time"
)

const (
	// DefaultThreshold is how long a press must be held to count as a
	// long press.
	DefaultThreshold = time.Second
	// DefaultPollInterval approximates a 60fps sampling cadence.
	DefaultPollInterval = 16 * time.Millisecond
)

type state int

const (
	idle state = iota
	pressing
	completed // long press fired, awaiting release
)

// Detector classifies presses on keyed targets (calendar cells). Hold a
// key past the threshold and OnLongPress fires exactly once; release
// earlier and the press is either a tap (OnClick) or a cancellation.
// The caller drives time by calling Poll on whatever cadence it likes.
type Detector struct {
	Threshold    time.Duration
	PollInterval time.Duration

	// OnProgress receives min(elapsed/threshold, 1). Progress is
	// monotonically non-decreasing during a press and resets to 0 on
	// cancellation.
	OnProgress  func(key string, progress float64)
	OnLongPress func(key string)
	OnClick     func(key string)

	now func() time.Time

	mu    sync.Mutex
	state state
	key   string
	start time.Time
}

// New returns a detector with default timing.
func New() *Detector {
	return &Detector{
		Threshold:    DefaultThreshold,
		PollInterval: DefaultPollInterval,
		now:          time.Now,
	}
}

// SetClock substitutes the time source. Tests use this to step time
// without sleeping.
func (d *Detector) SetClock(now func() time.Time) {
	d.now = now
}

// Press begins a press on key. A press already in flight is cancelled
// first; only one target can be pressed at a time.
func (d *Detector) Press(key string) {
	d.mu.Lock()
	d.state = pressing
	d.key = key
	d.start = d.now()
	d.mu.Unlock()
	d.report(key, 0)
}

// Poll samples elapsed time for the in-flight press. Returns the
// current progress, 0 when idle.
func (d *Detector) Poll() float64 {
	d.mu.Lock()
	if d.state != pressing {
		d.mu.Unlock()
		return 0
	}
	key := d.key
	elapsed := d.now().Sub(d.start)
	progress := float64(elapsed) / float64(d.Threshold)
	if progress >= 1 {
		progress = 1
		d.state = completed
	}
	done := d.state == completed
	d.mu.Unlock()

	d.report(key, progress)
	if done && d.OnLongPress != nil {
		d.OnLongPress(key)
	}
	return progress
}

// Release ends the press on key. Before the threshold this is a tap
// and fires OnClick; after a completed long press the click is
// suppressed. Releases for a key that is not pressed are ignored.
func (d *Detector) Release(key string) {
	d.mu.Lock()
	if d.key != key || d.state == idle {
		d.mu.Unlock()
		return
	}
	wasPressing := d.state == pressing
	d.state = idle
	d.key = ""
	d.mu.Unlock()

	d.report(key, 0)
	if wasPressing && d.OnClick != nil {
		d.OnClick(key)
	}
}

// Cancel unconditionally abandons any in-flight press. Pointer-leave
// and touch-end map here; no click fires.
func (d *Detector) Cancel() {
	d.mu.Lock()
	key := d.key
	active := d.state != idle
	d.state = idle
	d.key = ""
	d.mu.Unlock()

	if active {
		d.report(key, 0)
	}
}

// Pressing reports whether a press is in flight. The tie-break guard:
// platform-dispatched clicks are suppressed while this is true.
func (d *Detector) Pressing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == pressing
}

func (d *Detector) report(key string, progress float64) {
	if d.OnProgress != nil {
		d.OnProgress(key, progress)
	}
}
