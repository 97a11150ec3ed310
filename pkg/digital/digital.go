// Package digital formats the digital time readouts and the date line.
//
// Separators blink: they take the "on" color on even seconds and the
// "off" color on odd seconds.
package digital

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/bkclock/pkg/markup"
	"github.com/go-drift/bkclock/pkg/theme"
)

// Format24 is a 24-hour readout with seconds, "HH:MM:SS".
type Format24 struct {
	// formats holds the on and off variants, indexed by second parity.
	formats [2]string
}

// NewFormat24 prepares both blink variants for t.
func NewFormat24(t theme.ThemeData) *Format24 {
	build := func(sep theme.Category) string {
		colon := t.Tag(sep, ":")
		return t.Tag(theme.Hour, "%02d") + colon +
			t.Tag(theme.Minute, "%02d") + colon +
			t.Tag(theme.Second, "%02d")
	}
	return &Format24{formats: [2]string{build(theme.On), build(theme.Off)}}
}

// Format returns the markup for the given time.
func (f *Format24) Format(hour, minute, second int) string {
	return fmt.Sprintf(f.formats[second%2], hour, minute, second)
}

// Format12 is a 12-hour readout without seconds, "H:MMam".
type Format12 struct {
	formats [2]string
}

// NewFormat12 prepares both blink variants for t.
func NewFormat12(t theme.ThemeData) *Format12 {
	build := func(sep theme.Category) string {
		return t.Tag(theme.Hour, "%d") + t.Tag(sep, ":") +
			t.Tag(theme.Minute, "%02d") + t.Tag(theme.AmPm, "%s")
	}
	return &Format12{formats: [2]string{build(theme.On), build(theme.Off)}}
}

// Format returns the markup for the given time. Hour 0 and 12 both read
// as 12.
func (f *Format12) Format(hour, minute, second int) string {
	h, suffix := To12(hour)
	return fmt.Sprintf(f.formats[second%2], h, minute, suffix)
}

// To12 converts a 24-hour value to its 12-hour reading and suffix.
func To12(hour int) (int, string) {
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
		hour -= 12
	}
	if hour == 0 {
		hour = 12
	}
	return hour, suffix
}

// smallFactor scales the numeric date line relative to the main font.
const smallFactor = 0.75

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateDisplay renders "Weekday D Month, YYYY" followed by a smaller
// "DD/MM/YY" line. The text is only rebuilt when the date changes.
type DateDisplay struct {
	theme    theme.ThemeData
	fontSize float64

	current Date
	valid   bool
	text    string
	builds  int
}

// NewDateDisplay creates an empty display.
func NewDateDisplay(t theme.ThemeData, fontSize float64) *DateDisplay {
	return &DateDisplay{theme: t, fontSize: fontSize}
}

// SetFontSize changes the font size and rebuilds the current text, the
// same as a forced update.
func (d *DateDisplay) SetFontSize(fontSize float64) {
	d.fontSize = fontSize
	if d.valid {
		d.Update(d.current, true)
	}
}

// Update sets the displayed date. The text is rebuilt when date differs
// from the last one shown, or when force is set. It returns the current
// text.
func (d *DateDisplay) Update(date Date, force bool) string {
	if !force && d.valid && date == d.current {
		return d.text
	}
	d.current = date
	d.valid = true
	d.text = d.build(date)
	d.builds++
	return d.text
}

// Text returns the last rendered text.
func (d *DateDisplay) Text() string {
	return d.text
}

// Builds returns how many times the text has been rebuilt.
func (d *DateDisplay) Builds() int {
	return d.builds
}

func (d *DateDisplay) build(date Date) string {
	t := d.theme
	tm := time.Date(date.Year, date.Month, date.Day, 12, 0, 0, 0, time.UTC)
	sep := t.Tag(theme.On, t.Symbols.DateSeparator)
	small := int(math.Ceil(d.fontSize * smallFactor))

	return t.Tag(theme.DayName, tm.Format("Monday")) + " " +
		t.Tag(theme.Day, tm.Format("_2")) + " " +
		t.Tag(theme.Month, tm.Format("January")) + t.Tag(theme.On, ",") + " " +
		t.Tag(theme.Year, tm.Format("2006")) + "\n" +
		markup.Size(small,
			t.Tag(theme.Day, tm.Format("02"))+sep+
				t.Tag(theme.Month, tm.Format("01"))+sep+
				t.Tag(theme.Year, tm.Format("06")))
}
