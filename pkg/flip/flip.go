// Package flip periodically switches the hour labels of the clock face
// between decimal and Roman numerals, one label at a time.
//
// A cycle picks the style opposite to the current one and walks the twelve
// labels in order on a short repeating timer. Every activation also
// schedules the next one after a random delay; the two timers run
// independently.
//
//	Idle --activate--> Flipping(next = 0..11) --after 11--> Idle
//	  ^                                                      |
//	  +-------------- random delay (independent) ------------+
package flip

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/go-drift/bkclock/pkg/animation"
)

// Defaults for the flip timing.
const (
	DefaultInitialDelay = 7 * time.Second
	DefaultStepInterval = 50 * time.Millisecond
	DefaultMinDelay     = 20 * time.Second
	DefaultMaxDelay     = 70 * time.Second
)

// delayGranularity is the resolution of the random re-arm delay.
const delayGranularity = 10 * time.Millisecond

// Labels is the set of hour labels a Flipper controls. Index 0 is the
// label for one o'clock.
type Labels interface {
	Len() int
	Roman(i int) bool
	SetRoman(i int, roman bool)
}

// CycleState is the progress of one pass over the labels.
type CycleState struct {
	// Target is the style being applied (true for Roman).
	Target bool
	// Next is the index of the label the next step will change.
	Next int
}

// Done reports whether every label has been visited.
func (s CycleState) Done(n int) bool {
	return s.Next >= n
}

// cycle binds a CycleState to the labels it walks. It is registered
// directly as the interval callback.
type cycle struct {
	state  CycleState
	labels Labels
	timer  *animation.Timer
}

// step applies the target style to the next label. It returns false once
// the last label has been set so the interval is not re-armed.
func (c *cycle) step() bool {
	i := c.state.Next
	c.labels.SetRoman(i, c.state.Target)
	c.state.Next++
	return !c.state.Done(c.labels.Len())
}

// Option configures a Flipper.
type Option func(*Flipper)

// WithInitialDelay sets the delay before the first cycle.
func WithInitialDelay(d time.Duration) Option {
	return func(f *Flipper) { f.initialDelay = d }
}

// WithStepInterval sets the period between individual label flips.
func WithStepInterval(d time.Duration) Option {
	return func(f *Flipper) { f.stepInterval = d }
}

// WithDelayRange sets the bounds of the random delay between cycles.
// Bounds are swapped when given in the wrong order.
func WithDelayRange(lo, hi time.Duration) Option {
	return func(f *Flipper) {
		if hi < lo {
			lo, hi = hi, lo
		}
		f.minDelay, f.maxDelay = lo, hi
	}
}

// WithRand sets the random source for the re-arm delay.
func WithRand(r *rand.Rand) Option {
	return func(f *Flipper) { f.rng = r }
}

// Flipper schedules flip cycles. All of its methods run on the scheduler's
// goroutine.
type Flipper struct {
	labels Labels
	sched  animation.Scheduler
	rng    *rand.Rand

	initialDelay time.Duration
	stepInterval time.Duration
	minDelay     time.Duration
	maxDelay     time.Duration

	current *cycle
	cycles  int

	next    *animation.Timer
	running []*cycle
}

// New creates a Flipper for labels using sched for all timing.
func New(labels Labels, sched animation.Scheduler, opts ...Option) *Flipper {
	f := &Flipper{
		labels:       labels,
		sched:        sched,
		initialDelay: DefaultInitialDelay,
		stepInterval: DefaultStepInterval,
		minDelay:     DefaultMinDelay,
		maxDelay:     DefaultMaxDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		now := uint64(time.Now().UnixNano())
		f.rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return f
}

// Start schedules the first cycle after the initial delay, giving the
// face time to lay out before anything moves.
func (f *Flipper) Start() {
	f.next = f.sched.ScheduleOnce(f.initialDelay, f.activate)
}

// Stop cancels the next activation and every cycle still in progress.
// Labels keep the style they had when Stop was called.
func (f *Flipper) Stop() {
	f.next.Cancel()
	f.next = nil
	for _, c := range f.running {
		c.timer.Cancel()
	}
	f.running = nil
}

// State returns the progress of the most recent cycle, and false before
// the first activation.
func (f *Flipper) State() (CycleState, bool) {
	if f.current == nil {
		return CycleState{}, false
	}
	return f.current.state, true
}

// Cycles returns how many cycles have been started.
func (f *Flipper) Cycles() int {
	return f.cycles
}

func (f *Flipper) activate() {
	c := &cycle{
		state:  CycleState{Target: !f.labels.Roman(0)},
		labels: f.labels,
	}
	f.current = c
	f.cycles++

	n := f.labels.Len()
	f.running = slices.DeleteFunc(f.running, func(old *cycle) bool { return old.state.Done(n) })
	c.timer = f.sched.ScheduleInterval(f.stepInterval, c.step)
	f.running = append(f.running, c)
	f.next = f.sched.ScheduleOnce(f.nextDelay(), f.activate)
}

// nextDelay draws uniformly from [minDelay, maxDelay] in steps of
// delayGranularity.
func (f *Flipper) nextDelay() time.Duration {
	span := int64((f.maxDelay - f.minDelay) / delayGranularity)
	if span <= 0 {
		return f.minDelay
	}
	return f.minDelay + time.Duration(f.rng.Int64N(span+1))*delayGranularity
}
