// Package testing provides helpers for deterministic tests of timer-driven
// clock code.
//
// # Fake Time
//
// [NewLoopTester] returns a loop together with the time it runs on, and
// installs that time as the animation clock. Advancing the tester moves
// time forward in fixed steps and runs every callback that became due:
//
//	lt := clocktest.NewLoopTester(t)
//	flipper := flip.New(face, lt.Loop)
//	flipper.Start()
//	lt.Advance(8*time.Second, 10*time.Millisecond)
//
// # Recording Schedules
//
// [RecordingScheduler] wraps another scheduler and remembers every
// registration so tests can assert how often something was re-armed.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import clocktest "github.com/go-drift/bkclock/pkg/testing"
package testing
