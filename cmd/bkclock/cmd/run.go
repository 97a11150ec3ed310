package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-drift/bkclock/pkg/animation"
	"github.com/go-drift/bkclock/pkg/clock"
	"github.com/go-drift/bkclock/pkg/config"
	"github.com/go-drift/bkclock/pkg/errors"
	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/markup"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the clock in the terminal",
		Long: `Run the clock loop and print a line every time the displayed
second changes, until interrupted.

Each line shows the 24 and 12 hour readouts, the word clock sentence
and period, and the current hour numerals.

Flags:
  --frames N    Stop after N lines (default: run until Ctrl+C)
  --watch       Reload bkclock.yaml when it changes`,
		Usage: "bkclock run [--frames N] [--watch]",
		Run:   runRun,
	})
}

// frameRate is how often the loop is stepped; it must be at least the
// tick rate.
const frameRate = time.Second / 60

type runOptions struct {
	frames int
	watch  bool
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	for i := 0; i < len(args); {
		if args[i] == "--watch" {
			opts.watch = true
			i++
			continue
		}
		v, n, ok, err := flagValue(args, i, "--frames")
		if err != nil {
			return opts, err
		}
		if !ok {
			return opts, usageError("unexpected argument %q", args[i])
		}
		if opts.frames, err = strconv.Atoi(v); err != nil || opts.frames < 0 {
			return opts, usageError("invalid --frames %q", v)
		}
		i += n
	}
	return opts, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := animation.NewLoop()
	layout := face.Layout{Size: graphics.Size{Width: 480, Height: 360}}
	p := &linePrinter{limit: opts.frames, done: cancel}
	p.start(cfg, loop, layout)

	if opts.watch {
		reload := func() {
			res, err := config.Resolve(cfg.Root, Version)
			if err != nil {
				// Keep showing the last good configuration.
				errors.Report("cmd.run", err)
				return
			}
			p.start(res, loop, layout)
			slog.Info("configuration reloaded", "path", res.Path)
		}
		err := config.Watch(ctx, cfg.Root, func() { loop.ScheduleOnce(0, reload) })
		if err != nil {
			return err
		}
		slog.Debug("watching configuration", "dir", cfg.Root)
	}

	slog.Debug("clock started", "tick", clock.TickInterval, "flip", cfg.Flip)
	if err := loop.Run(ctx, frameRate); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// linePrinter writes one line per displayed second.
type linePrinter struct {
	clock   *clock.Clock
	limit   int
	done    func()
	printed int
	last    string
	cycles  int
}

// start replaces the running clock with one built from res.
func (p *linePrinter) start(res *config.Resolved, sched animation.Scheduler, layout face.Layout) {
	if p.clock != nil {
		p.clock.Stop()
	}
	p.clock = clock.New(res.Theme, clock.WithFlipOptions(res.Flip.Options()...))
	p.cycles = 0
	p.clock.Start(sched, layout, p.print)
}

func (p *linePrinter) print(f clock.Frame) {
	if n := p.clock.Flipper().Cycles(); n != p.cycles {
		p.cycles = n
		state, _ := p.clock.Flipper().State()
		slog.Debug("flipping hour labels", "cycle", n, "roman", state.Target)
	}

	line := p.format(f)
	if line == p.last || (p.limit > 0 && p.printed >= p.limit) {
		return
	}
	p.last = line
	fmt.Fprintln(stdout, line)
	p.printed++
	if p.limit > 0 && p.printed >= p.limit {
		p.done()
	}
}

func (p *linePrinter) format(f clock.Frame) string {
	numerals := make([]string, len(f.Face.Labels))
	for i, l := range f.Face.Labels {
		numerals[i] = l.Text
	}
	return fmt.Sprintf("%s  %-7s  %s, %s  [%s]",
		markup.Strip(f.Digital24),
		markup.Strip(f.Digital12),
		markup.Strip(f.Phrase.Primary),
		markup.Strip(f.Phrase.DayPeriod),
		strings.Join(numerals, " "),
	)
}
