// Package face computes the geometry of the analogue clock face: hand
// triangles, rim labels and the positions of the twelve hour labels.
//
// Everything here is a pure function of its arguments. Coordinates are in a
// y-up space with counter-clockwise positive rotation; a renderer drawing
// into y-down image space flips Y itself.
package face

import (
	"fmt"
	"math"

	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

// HandSpec describes the shape of one hand kind.
type HandSpec struct {
	// Tip is the outer point, in units of the face radius.
	Tip graphics.Offset
	// BaseA and BaseB are the spindle-end corners, in units of 1/60 of the
	// smaller face dimension.
	BaseA graphics.Offset
	BaseB graphics.Offset
	// UnitAngle is the rotation in degrees for one unit of value.
	UnitAngle float64
	// Color selects the fill color.
	Color theme.Category
}

// Hand kinds.
var (
	HourHand = HandSpec{
		Tip:       graphics.Offset{X: 0, Y: 0.6},
		BaseA:     graphics.Offset{X: -1, Y: -2},
		BaseB:     graphics.Offset{X: 1, Y: -2},
		UnitAngle: 30,
		Color:     theme.Hour,
	}
	MinuteHand = HandSpec{
		Tip:       graphics.Offset{X: 0, Y: 0.95},
		BaseA:     graphics.Offset{X: -0.5, Y: -2},
		BaseB:     graphics.Offset{X: 0.5, Y: -2},
		UnitAngle: 6,
		Color:     theme.Minute,
	}
	SecondHand = HandSpec{
		Tip:       graphics.Offset{X: 0, Y: 0.95},
		BaseA:     graphics.Offset{X: -0.25, Y: -2},
		BaseB:     graphics.Offset{X: 0.25, Y: -2},
		UnitAngle: 6,
		Color:     theme.Second,
	}
)

// HandAlpha is the opacity hands are filled with.
const HandAlpha = 0.6

// rimFactor places rim labels just outside the face.
const rimFactor = 1.1

// Period returns the value change that brings the hand back to where it
// started (12 for the hour hand, 60 for the others).
func (s HandSpec) Period() float64 {
	return 360 / s.UnitAngle
}

// Angle returns the rotation in degrees for value. Clock hands turn
// clockwise, so the angle is negative.
func Angle(spec HandSpec, value float64) float64 {
	return -value * spec.UnitAngle
}

// PointsFor returns the hand triangle for value: tip first, then the two
// base corners.
func PointsFor(spec HandSpec, value, radius, minDimension float64, center graphics.Offset) [3]graphics.Point {
	angle := Angle(spec, value)
	baseScale := minDimension / 60

	tip := spec.Tip.Rotate(angle).Scale(radius)
	a := spec.BaseA.Rotate(angle).Scale(baseScale)
	b := spec.BaseB.Rotate(angle).Scale(baseScale)

	return [3]graphics.Point{
		tip.Add(center).Round(),
		a.Add(center).Round(),
		b.Add(center).Round(),
	}
}

// RimLabel is the small numeric readout that follows a hand around the rim.
type RimLabel struct {
	Position graphics.Offset
	Text     string
}

// RimLabelFor places the readout for a hand at angle showing value.
func RimLabelFor(angle, value, radius float64, center graphics.Offset) RimLabel {
	pos := graphics.Offset{X: 0, Y: 1}.Rotate(angle).Scale(radius * rimFactor).Add(center)
	return RimLabel{
		Position: pos,
		Text:     fmt.Sprintf("%02d", int(math.Floor(value))),
	}
}

// HandState is the per-tick render state of one hand.
type HandState struct {
	Spec   HandSpec
	Value  float64
	Angle  float64
	Points [3]graphics.Point
	Rim    RimLabel
}

// UpdateHand computes the full state of a hand for value within layout.
func UpdateHand(spec HandSpec, value float64, layout Layout) HandState {
	angle := Angle(spec, value)
	center := layout.Center()
	radius := layout.Radius()
	return HandState{
		Spec:   spec,
		Value:  value,
		Angle:  angle,
		Points: PointsFor(spec, value, radius, layout.MinDimension(), center),
		Rim:    RimLabelFor(angle, value, radius, center),
	}
}

// HandValues converts a wall-clock reading into the three hand values.
// Hour and minute sweep continuously; the second hand only moves on whole
// seconds so that it visibly ticks.
func HandValues(hour, minute, second, microsecond int) (h, m, s float64) {
	sec := float64(second) + float64(microsecond)/1e6
	m = float64(minute) + sec/60
	h = float64(hour%24) + m/60
	return h, m, float64(second)
}
