// Package phrase turns an hour and minute into an English sentence such as
// "Twenty-five to Seven", together with an arithmetic aside and the period
// of the day.
//
// All strings carry color markup chosen from the theme; use markup.Strip
// for plain text.
package phrase

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/bkclock/pkg/markup"
	"github.com/go-drift/bkclock/pkg/theme"
	"github.com/go-drift/bkclock/pkg/words"
)

// Phrase is the generated text for one minute of the day.
type Phrase struct {
	// Primary is the main sentence.
	Primary string
	// Secondary is the arithmetic aside; empty on the hour.
	Secondary string
	// DayPeriod is the colored day-period label.
	DayPeriod string
}

// Generator produces phrases for a fixed theme. It holds no mutable state
// and may be shared.
type Generator struct {
	theme   theme.ThemeData
	tables  templates
	periods [len(dayPeriods)]string
}

// NewGenerator builds the per-minute tables for t.
func NewGenerator(t theme.ThemeData) *Generator {
	g := &Generator{
		theme:  t,
		tables: buildTemplates(t),
	}
	for i, p := range dayPeriods {
		label := t.Tag(theme.AmPm, p.Label)
		if p.Lead != "" {
			label = t.Tag(theme.On, p.Lead) + " " + label
		}
		g.periods[i] = label
	}
	return g
}

// Generate returns the phrase for hour (0..23) and minute (0..59).
func (g *Generator) Generate(hour, minute int) Phrase {
	minute = min(minute, 59)
	minuteNext := (60 - minute) % 60

	h := hour % 12
	hNext := h + 1
	if h == 0 {
		h = 12
	}

	hw, hnw := words.Of(h), words.Of(hNext)
	mw, mnw := words.Of(minute), words.Of(minuteNext)

	r := strings.NewReplacer(
		"{H}", hw.Capitalized,
		"{H_}", hnw.Capitalized,
		"{h}", hw.Lowercase,
		"{h_}", hnw.Lowercase,
		"{M}", mw.Capitalized,
		"{M_}", mnw.Capitalized,
		"{HH}", strconv.Itoa(h),
		"{HH_}", strconv.Itoa(hNext),
		"{MM}", strconv.Itoa(minute),
		"{MM_}", strconv.Itoa(minuteNext),
	)

	return Phrase{
		Primary:   r.Replace(g.tables.primary[minute]),
		Secondary: r.Replace(g.tables.secondary[minute]),
		DayPeriod: g.periods[dayPeriodIndex((hour%24)*60+minute)],
	}
}

// Text assembles the three-line block shown by the word clock: the
// sentence, the day period, and the aside in parentheses at two thirds of
// fontSize.
func (g *Generator) Text(p Phrase, fontSize float64) string {
	small := int(math.Ceil(fontSize * 0.67))
	aside := p.Secondary
	if aside != "" {
		aside = g.theme.Tag(theme.On, "(") + aside + g.theme.Tag(theme.On, ")")
	}
	return p.Primary + "\n" + p.DayPeriod + "\n" + markup.Size(small, aside)
}
