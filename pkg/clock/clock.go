// Package clock ties the displays together. A [Clock] turns one wall-clock
// reading into a [Frame] holding everything a renderer needs: the word
// clock text, both digital readouts, the date and the face geometry.
//
// Sampling happens once per tick and every display sees the same sample,
// so the readouts never disagree with each other.
package clock

import (
	"time"

	"github.com/go-drift/bkclock/pkg/animation"
	"github.com/go-drift/bkclock/pkg/digital"
	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/flip"
	"github.com/go-drift/bkclock/pkg/phrase"
	"github.com/go-drift/bkclock/pkg/theme"
)

// TickInterval is the period of the display refresh.
const TickInterval = time.Second / 30

// DefaultFontSize is the text size used for the size-dependent markup.
const DefaultFontSize = 24

// Sample is one wall-clock reading in local time.
type Sample struct {
	Year        int
	Month       time.Month
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// SampleOf reads t in its own location.
func SampleOf(t time.Time) Sample {
	return Sample{
		Year:        t.Year(),
		Month:       t.Month(),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}.Normalize()
}

// Normalize clamps every time-of-day field into range. Samples entering
// the displays are expected to be normalized; the displays do not check.
func (s Sample) Normalize() Sample {
	s.Hour = clamp(s.Hour, 0, 23)
	s.Minute = clamp(s.Minute, 0, 59)
	s.Second = clamp(s.Second, 0, 59)
	s.Microsecond = clamp(s.Microsecond, 0, 999999)
	return s
}

// Date returns the calendar part of the sample.
func (s Sample) Date() digital.Date {
	return digital.Date{Year: s.Year, Month: s.Month, Day: s.Day}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Frame is the output of one tick.
type Frame struct {
	Sample Sample
	Phrase phrase.Phrase
	// WordText is the three-line word clock block.
	WordText  string
	Digital12 string
	Digital24 string
	Date      string
	Face      face.State
}

// Option configures a Clock.
type Option func(*Clock)

// WithFontSize sets the size used to scale the smaller text lines.
func WithFontSize(size float64) Option {
	return func(c *Clock) { c.fontSize = size }
}

// WithFlipOptions passes options through to the hour-label flipper.
func WithFlipOptions(opts ...flip.Option) Option {
	return func(c *Clock) { c.flipOpts = append(c.flipOpts, opts...) }
}

// Clock owns every display. Tick and the callbacks registered by Start
// must run on the same goroutine.
type Clock struct {
	theme    theme.ThemeData
	fontSize float64
	flipOpts []flip.Option

	words   *phrase.Generator
	face    *face.Face
	digit12 *digital.Format12
	digit24 *digital.Format24
	date    *digital.DateDisplay
	flipper *flip.Flipper
	tick    *animation.Timer
}

// New creates a clock for t.
func New(t theme.ThemeData, opts ...Option) *Clock {
	c := &Clock{theme: t, fontSize: DefaultFontSize}
	for _, opt := range opts {
		opt(c)
	}
	c.words = phrase.NewGenerator(t)
	c.face = face.New(t.Symbols)
	c.digit12 = digital.NewFormat12(t)
	c.digit24 = digital.NewFormat24(t)
	c.date = digital.NewDateDisplay(t, c.fontSize)
	return c
}

// Theme returns the theme the clock was built with.
func (c *Clock) Theme() theme.ThemeData {
	return c.theme
}

// Face returns the analogue face. Its hour labels are the state the
// flipper mutates.
func (c *Clock) Face() *face.Face {
	return c.face
}

// Flipper returns the label flipper, or nil before Start.
func (c *Clock) Flipper() *flip.Flipper {
	return c.flipper
}

// Tick feeds s to every display and returns the resulting frame.
func (c *Clock) Tick(s Sample, layout face.Layout) Frame {
	h, m, sec := face.HandValues(s.Hour, s.Minute, s.Second, s.Microsecond)
	p := c.words.Generate(s.Hour, s.Minute)
	return Frame{
		Sample:    s,
		Phrase:    p,
		WordText:  c.words.Text(p, c.fontSize),
		Digital12: c.digit12.Format(s.Hour, s.Minute, s.Second),
		Digital24: c.digit24.Format(s.Hour, s.Minute, s.Second),
		Date:      c.date.Update(s.Date(), false),
		Face:      c.face.Update(layout, h, m, sec),
	}
}

// Start registers the refresh tick on sched and starts the label flipper.
// Every tick samples animation.Now and hands the frame to sink. The
// returned timer stops the refresh only; Stop also stops the flipper.
func (c *Clock) Start(sched animation.Scheduler, layout face.Layout, sink func(Frame)) *animation.Timer {
	c.flipper = flip.New(c.face, sched, c.flipOpts...)
	c.flipper.Start()
	c.tick = sched.ScheduleInterval(TickInterval, func() bool {
		frame := c.Tick(SampleOf(animation.Now()), layout)
		if sink != nil {
			sink(frame)
		}
		return true
	})
	return c.tick
}

// Stop cancels every timer registered by Start.
func (c *Clock) Stop() {
	c.tick.Cancel()
	if c.flipper != nil {
		c.flipper.Stop()
	}
}
