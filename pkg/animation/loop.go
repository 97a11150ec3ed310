// Package animation provides the timing primitives that drive the clock:
// a replaceable time source and a single-threaded callback loop.
//
// # Loop
//
// [Loop] is a cooperative scheduler. Callbacks are registered with
// [Loop.ScheduleOnce] or [Loop.ScheduleInterval] and run on whichever
// goroutine calls [Loop.Step]; [Loop.Run] calls Step from a frame ticker.
// Because every callback runs on that one goroutine, state touched only
// from callbacks needs no locking. Callbacks must be short.
//
//	loop := animation.NewLoop()
//	loop.ScheduleInterval(time.Second/30, func() bool {
//	    render(animation.Now())
//	    return true // keep running
//	})
//	err := loop.Run(ctx, time.Second/60)
package animation

import (
	"container/heap"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/bkclock/pkg/errors"
)

// Scheduler registers callbacks to run later. [Loop] implements it; tests
// may substitute their own.
type Scheduler interface {
	// ScheduleOnce runs fn once after delay.
	ScheduleOnce(delay time.Duration, fn func()) *Timer
	// ScheduleInterval runs fn every interval for as long as it returns
	// true.
	ScheduleInterval(interval time.Duration, fn func() bool) *Timer
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	due      time.Time
	interval time.Duration
	once     func()
	repeat   func() bool
	seq      uint64
	index    int
	loop     *Loop
}

// Cancel removes the timer if it has not finished. It is safe to call
// more than once and from within the timer's own callback.
func (t *Timer) Cancel() {
	if t == nil || t.loop == nil {
		return
	}
	t.loop.cancel(t)
}

// Loop runs scheduled callbacks on the goroutine that calls Step.
type Loop struct {
	mu      sync.Mutex
	queue   timerQueue
	nextSeq uint64
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// ScheduleOnce runs fn once, on the first Step at or after now+delay.
func (l *Loop) ScheduleOnce(delay time.Duration, fn func()) *Timer {
	return l.push(&Timer{due: Now().Add(delay), once: fn})
}

// ScheduleInterval runs fn on the first Step at or after each multiple of
// interval from now. Returning false stops the timer.
func (l *Loop) ScheduleInterval(interval time.Duration, fn func() bool) *Timer {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return l.push(&Timer{due: Now().Add(interval), interval: interval, repeat: fn})
}

// Pending returns the number of timers waiting to fire.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Step fires every timer that is due at the current time and returns how
// many ran. Each timer fires at most once per Step; timers scheduled by a
// callback wait for the next Step.
func (l *Loop) Step() int {
	now := Now()

	l.mu.Lock()
	var due []*Timer
	for len(l.queue) > 0 && !l.queue[0].due.After(now) {
		due = append(due, heap.Pop(&l.queue).(*Timer))
	}
	l.mu.Unlock()

	ran := 0
	for _, t := range due {
		// An earlier callback in this step may have cancelled t.
		l.mu.Lock()
		live := t.loop == l
		l.mu.Unlock()
		if !live {
			continue
		}
		ran++

		if t.repeat == nil {
			l.fireOnce(t)
			continue
		}
		if l.fireRepeat(t) {
			next := t.due.Add(t.interval)
			if next.Before(now) {
				next = now
			}
			t.due = next
			l.mu.Lock()
			if t.loop == l {
				heap.Push(&l.queue, t)
			}
			l.mu.Unlock()
		} else {
			l.mu.Lock()
			t.loop = nil
			l.mu.Unlock()
		}
	}
	return ran
}

// Run steps the loop once per frame until ctx is cancelled. Pending timers
// are discarded when it returns.
func (l *Loop) Run(ctx context.Context, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			for _, t := range l.queue {
				t.loop = nil
			}
			l.queue = nil
			l.mu.Unlock()
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}

func (l *Loop) push(t *Timer) *Timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	t.loop = l
	t.seq = l.nextSeq
	l.nextSeq++
	heap.Push(&l.queue, t)
	return t
}

func (l *Loop) cancel(t *Timer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.loop != l {
		return
	}
	t.loop = nil
	if t.index >= 0 && t.index < len(l.queue) && l.queue[t.index] == t {
		heap.Remove(&l.queue, t.index)
	}
}

func (l *Loop) fireOnce(t *Timer) {
	l.mu.Lock()
	t.loop = nil
	l.mu.Unlock()
	errors.Guard("animation.Loop.ScheduleOnce", t.once)
}

// fireRepeat runs an interval callback. A callback that panics is not
// re-armed, and dropping it is reported as a schedule error.
func (l *Loop) fireRepeat(t *Timer) bool {
	again := false
	p := errors.Guard("animation.Loop.ScheduleInterval", func() { again = t.repeat() })
	if p != nil {
		errors.Report("animation.Loop.Step", errors.New("animation.Loop.Step", errors.KindSchedule,
			fmt.Errorf("interval of %v dropped: %w", t.interval, p)))
		return false
	}
	return again
}

// timerQueue orders timers by due time, then by registration order.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
