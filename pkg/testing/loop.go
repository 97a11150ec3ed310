package testing

import (
	"sync"
	stdtesting "testing"
	"time"

	"github.com/go-drift/bkclock/pkg/animation"
)

// epoch is where every tester's clock starts: a Monday at midnight, local
// time, so samples taken from it have a stable date.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

// LoopTester owns a loop and the time it runs on. While installed it is
// the animation clock, so the loop, samples and flip delays all read its
// time. It is safe for concurrent use.
type LoopTester struct {
	Loop *animation.Loop

	mu  sync.Mutex
	now time.Time
}

// NewLoopTester installs a tester as the animation clock for the duration
// of the test and returns it with an empty loop. The previous clock is
// restored in tb.Cleanup.
func NewLoopTester(tb stdtesting.TB) *LoopTester {
	tb.Helper()
	lt := &LoopTester{Loop: animation.NewLoop(), now: epoch}
	prev := animation.SetClock(lt)
	tb.Cleanup(func() { animation.SetClock(prev) })
	return lt
}

// Now implements animation.Clock.
func (lt *LoopTester) Now() time.Time {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	return lt.now
}

// Set moves the clock to t without stepping the loop.
func (lt *LoopTester) Set(t time.Time) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.now = t
}

// Stall moves time forward by d without stepping the loop, as a frame
// that arrives late would.
func (lt *LoopTester) Stall(d time.Duration) {
	lt.mu.Lock()
	defer lt.mu.Unlock()
	lt.now = lt.now.Add(d)
}

// Advance moves time forward by total in increments of step, stepping the
// loop after each increment. It returns how many callbacks ran.
func (lt *LoopTester) Advance(total, step time.Duration) int {
	if step <= 0 {
		step = total
	}
	ran := 0
	for elapsed := time.Duration(0); elapsed < total; {
		d := min(step, total-elapsed)
		lt.Stall(d)
		elapsed += d
		ran += lt.Loop.Step()
	}
	return ran
}

// Registration records one call made through a RecordingScheduler.
type Registration struct {
	Repeat bool
	Delay  time.Duration
	At     time.Time
}

// RecordingScheduler forwards to Next and records every registration.
type RecordingScheduler struct {
	Next          animation.Scheduler
	Registrations []Registration
}

// ScheduleOnce records and forwards a one-shot registration.
func (r *RecordingScheduler) ScheduleOnce(delay time.Duration, fn func()) *animation.Timer {
	r.Registrations = append(r.Registrations, Registration{Delay: delay, At: animation.Now()})
	return r.Next.ScheduleOnce(delay, fn)
}

// ScheduleInterval records and forwards a repeating registration.
func (r *RecordingScheduler) ScheduleInterval(interval time.Duration, fn func() bool) *animation.Timer {
	r.Registrations = append(r.Registrations, Registration{Repeat: true, Delay: interval, At: animation.Now()})
	return r.Next.ScheduleInterval(interval, fn)
}

// Count returns how many registrations of the given kind were made.
func (r *RecordingScheduler) Count(repeat bool) int {
	n := 0
	for _, reg := range r.Registrations {
		if reg.Repeat == repeat {
			n++
		}
	}
	return n
}
