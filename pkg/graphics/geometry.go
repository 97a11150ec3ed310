package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector. The clock face works in a y-up
// coordinate space where positive rotation is counter-clockwise.
type Offset struct {
	X float64
	Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Scale returns the offset multiplied by s.
func (o Offset) Scale(s float64) Offset {
	return Offset{X: o.X * s, Y: o.Y * s}
}

// Rotate returns the offset rotated counter-clockwise by degrees.
func (o Offset) Rotate(degrees float64) Offset {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Offset{
		X: o.X*cos - o.Y*sin,
		Y: o.X*sin + o.Y*cos,
	}
}

// Length returns the euclidean length of the offset.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Round converts the offset to integer coordinates, rounding half away
// from zero.
func (o Offset) Round() Point {
	return Point{X: int(math.Round(o.X)), Y: int(math.Round(o.Y))}
}

// ApproxEqual reports whether two offsets match within epsilon.
func (o Offset) ApproxEqual(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Offset {
	return Offset{X: s.Width * 0.5, Y: s.Height * 0.5}
}

// Min returns the smaller of width and height.
func (s Size) Min() float64 {
	return math.Min(s.Width, s.Height)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
