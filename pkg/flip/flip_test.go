package flip

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/theme"
	clocktest "github.com/go-drift/bkclock/pkg/testing"
)

const tick = 10 * time.Millisecond

func newFlipper(t *testing.T, opts ...Option) (*Flipper, *face.Face, *clocktest.LoopTester, *clocktest.RecordingScheduler) {
	t.Helper()
	lt := clocktest.NewLoopTester(t)
	rec := &clocktest.RecordingScheduler{Next: lt.Loop}
	labels := face.New(theme.DefaultSymbols())
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return New(labels, rec, opts...), labels, lt, rec
}

func romanCount(l Labels) int {
	n := 0
	for i := 0; i < l.Len(); i++ {
		if l.Roman(i) {
			n++
		}
	}
	return n
}

func TestFlipper_WaitsForInitialDelay(t *testing.T) {
	f, labels, lt, rec := newFlipper(t)
	f.Start()

	if rec.Count(false) != 1 || rec.Registrations[0].Delay != DefaultInitialDelay {
		t.Fatalf("Start() registrations = %+v", rec.Registrations)
	}

	lt.Advance(DefaultInitialDelay-tick, tick)
	if _, ok := f.State(); ok {
		t.Error("cycle started before the initial delay")
	}
	if romanCount(labels) != 0 {
		t.Error("labels changed before the first cycle")
	}
}

func TestFlipper_CompleteCycle(t *testing.T) {
	f, labels, lt, rec := newFlipper(t)
	f.Start()

	lt.Advance(DefaultInitialDelay, tick)
	state, ok := f.State()
	if !ok || !state.Target || state.Next != 0 {
		t.Fatalf("State() after activation = %+v, %v", state, ok)
	}

	lt.Advance(13*DefaultStepInterval, tick)

	for i := 0; i < labels.Len(); i++ {
		if !labels.Roman(i) {
			t.Errorf("label %d not flipped to Roman", i)
		}
	}
	state, _ = f.State()
	if !state.Done(labels.Len()) {
		t.Errorf("cycle not finished: %+v", state)
	}

	// Start() plus exactly one re-arm, and one inner sequence.
	if got := rec.Count(false); got != 2 {
		t.Errorf("one-shot registrations = %d, want 2", got)
	}
	if got := rec.Count(true); got != 1 {
		t.Errorf("interval registrations = %d, want 1", got)
	}
	if lt.Loop.Pending() != 1 {
		t.Errorf("Pending() = %d, want only the re-arm timer", lt.Loop.Pending())
	}
}

func TestFlipper_FlipsInOrder(t *testing.T) {
	f, labels, lt, _ := newFlipper(t)
	f.Start()

	lt.Advance(DefaultInitialDelay+3*DefaultStepInterval, tick)

	for i := 0; i < labels.Len(); i++ {
		want := i < 3
		if labels.Roman(i) != want {
			t.Errorf("label %d Roman = %v, want %v", i, labels.Roman(i), want)
		}
	}
	if state, _ := f.State(); state.Next != 3 {
		t.Errorf("Next = %d, want 3", state.Next)
	}
}

func TestFlipper_AlternatesStyle(t *testing.T) {
	f, labels, lt, rec := newFlipper(t)
	f.Start()

	lt.Advance(DefaultInitialDelay+time.Second, tick)
	if romanCount(labels) != 12 {
		t.Fatalf("first cycle flipped %d labels", romanCount(labels))
	}

	for elapsed := time.Duration(0); f.Cycles() < 2 && elapsed <= DefaultMaxDelay; elapsed += tick {
		lt.Advance(tick, tick)
	}
	lt.Advance(time.Second, tick)
	if f.Cycles() != 2 {
		t.Fatalf("Cycles() = %d, want 2", f.Cycles())
	}
	if romanCount(labels) != 0 {
		t.Errorf("second cycle left %d Roman labels, want 0", romanCount(labels))
	}

	for _, reg := range rec.Registrations[1:] {
		if reg.Repeat {
			continue
		}
		if reg.Delay < DefaultMinDelay || reg.Delay > DefaultMaxDelay {
			t.Errorf("re-arm delay %v outside [%v, %v]", reg.Delay, DefaultMinDelay, DefaultMaxDelay)
		}
	}
}

func TestFlipper_Options(t *testing.T) {
	f, labels, lt, rec := newFlipper(t,
		WithInitialDelay(time.Second),
		WithStepInterval(20*time.Millisecond),
		WithDelayRange(3*time.Second, 2*time.Second),
	)
	f.Start()

	lt.Advance(time.Second+12*20*time.Millisecond, tick)
	if romanCount(labels) != 12 {
		t.Errorf("flipped %d labels with custom timing", romanCount(labels))
	}
	last := rec.Registrations[len(rec.Registrations)-1]
	if last.Repeat || last.Delay < 2*time.Second || last.Delay > 3*time.Second {
		t.Errorf("re-arm = %+v, want a delay in [2s, 3s]", last)
	}
}

func TestNextDelay(t *testing.T) {
	f := New(face.New(theme.DefaultSymbols()), nil, WithRand(rand.New(rand.NewPCG(3, 4))))

	seenLow, seenHigh := false, false
	for i := 0; i < 2000; i++ {
		d := f.nextDelay()
		if d < DefaultMinDelay || d > DefaultMaxDelay {
			t.Fatalf("nextDelay() = %v out of range", d)
		}
		if d%delayGranularity != 0 {
			t.Fatalf("nextDelay() = %v not a multiple of %v", d, delayGranularity)
		}
		seenLow = seenLow || d < DefaultMinDelay+10*time.Second
		seenHigh = seenHigh || d > DefaultMaxDelay-10*time.Second
	}
	if !seenLow || !seenHigh {
		t.Error("delays do not span the configured range")
	}

	fixed := New(face.New(theme.DefaultSymbols()), nil, WithDelayRange(time.Second, time.Second))
	if d := fixed.nextDelay(); d != time.Second {
		t.Errorf("nextDelay() with empty range = %v", d)
	}
}

func TestFlipper_Stop(t *testing.T) {
	f, labels, lt, _ := newFlipper(t)
	f.Start()

	// Stop half way through the first cycle.
	lt.Advance(DefaultInitialDelay+6*DefaultStepInterval, tick)
	flipped := romanCount(labels)
	if flipped == 0 || flipped == labels.Len() {
		t.Fatalf("romanCount() = %d mid-cycle", flipped)
	}

	f.Stop()
	if lt.Loop.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", lt.Loop.Pending())
	}
	lt.Advance(2*DefaultMaxDelay, 100*time.Millisecond)
	if romanCount(labels) != flipped {
		t.Errorf("labels changed after Stop: %d, want %d", romanCount(labels), flipped)
	}
	if f.Cycles() != 1 {
		t.Errorf("Cycles() = %d after Stop, want 1", f.Cycles())
	}

	f.Stop()
}

func TestFlipper_StopBeforeStart(t *testing.T) {
	f, _, _, _ := newFlipper(t)
	f.Stop()
}
