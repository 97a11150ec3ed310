package face

import (
	"strconv"

	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

// Layout is the box the face is drawn in. It replaces any lookup of the
// enclosing widget: every measurement the geometry needs derives from it.
type Layout struct {
	Size graphics.Size
}

// radiusFactor leaves room for rim labels at 1.1 radii inside the box.
const radiusFactor = 0.4

// labelFactor places hour labels just inside the rim.
const labelFactor = 0.85

// Center returns the middle of the box.
func (l Layout) Center() graphics.Offset {
	return l.Size.Center()
}

// MinDimension returns the smaller side of the box.
func (l Layout) MinDimension() float64 {
	return l.Size.Min()
}

// Radius returns the face radius.
func (l Layout) Radius() float64 {
	return l.MinDimension() * radiusFactor
}

// HourLabel is one of the twelve numerals around the face.
type HourLabel struct {
	// Hour is the position, 1..12.
	Hour int
	// Roman selects Roman numerals instead of decimal digits.
	Roman bool
}

// LabelOffset returns the label position for hour relative to the centre.
func LabelOffset(hour int, radius float64) graphics.Offset {
	return graphics.Offset{X: 0, Y: labelFactor * radius}.Rotate(-30 * float64(hour))
}

// Text returns the label text using the given symbols.
func (l HourLabel) Text(sym theme.Symbols) string {
	if l.Roman {
		return sym.Roman(l.Hour)
	}
	return strconv.Itoa(l.Hour)
}

// LabelState is a positioned hour label ready to draw.
type LabelState struct {
	Position graphics.Offset
	Text     string
}

// State is everything a renderer needs to draw one frame of the face.
type State struct {
	Layout Layout
	Hour   HandState
	Minute HandState
	Second HandState
	Labels [12]LabelState
}

// Hands returns the hands in drawing order.
func (s State) Hands() [3]HandState {
	return [3]HandState{s.Hour, s.Minute, s.Second}
}

// Face owns the hour labels. Their numeral style is the only state that
// survives between frames; it is mutated by the flip scheduler through
// SetRoman.
type Face struct {
	symbols theme.Symbols
	labels  [12]HourLabel
}

// New returns a face with all labels in decimal style.
func New(sym theme.Symbols) *Face {
	f := &Face{symbols: sym}
	for i := range f.labels {
		f.labels[i] = HourLabel{Hour: i + 1}
	}
	return f
}

// Len returns the number of hour labels.
func (f *Face) Len() int { return len(f.labels) }

// Roman reports the style of the label at index i (0 is one o'clock).
func (f *Face) Roman(i int) bool { return f.labels[i].Roman }

// SetRoman sets the style of the label at index i.
func (f *Face) SetRoman(i int, roman bool) { f.labels[i].Roman = roman }

// Update computes the frame state for the given hand values.
func (f *Face) Update(layout Layout, hourValue, minuteValue, secondValue float64) State {
	s := State{
		Layout: layout,
		Hour:   UpdateHand(HourHand, hourValue, layout),
		Minute: UpdateHand(MinuteHand, minuteValue, layout),
		Second: UpdateHand(SecondHand, secondValue, layout),
	}

	center, radius := layout.Center(), layout.Radius()
	for i, l := range f.labels {
		s.Labels[i] = LabelState{
			Position: LabelOffset(l.Hour, radius).Add(center),
			Text:     l.Text(f.symbols),
		}
	}
	return s
}
