package face

import (
	"math"
	"testing"

	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

var square = Layout{Size: graphics.Size{Width: 200, Height: 200}}

func TestLayout(t *testing.T) {
	l := Layout{Size: graphics.Size{Width: 300, Height: 200}}
	if l.Center() != (graphics.Offset{X: 150, Y: 100}) {
		t.Errorf("Center() = %+v", l.Center())
	}
	if l.MinDimension() != 200 {
		t.Errorf("MinDimension() = %v", l.MinDimension())
	}
	if l.Radius() != 80 {
		t.Errorf("Radius() = %v, want 80", l.Radius())
	}
}

func TestPointsFor_Known(t *testing.T) {
	center := square.Center()
	radius := square.Radius()
	minDim := square.MinDimension()

	tests := []struct {
		name  string
		spec  HandSpec
		value float64
		want  [3]graphics.Point
	}{
		{
			name:  "minute hand at zero",
			spec:  MinuteHand,
			value: 0,
			want:  [3]graphics.Point{{X: 100, Y: 176}, {X: 98, Y: 93}, {X: 102, Y: 93}},
		},
		{
			name:  "minute hand at quarter past",
			spec:  MinuteHand,
			value: 15,
			want:  [3]graphics.Point{{X: 176, Y: 100}, {X: 93, Y: 102}, {X: 93, Y: 98}},
		},
		{
			name:  "hour hand at three",
			spec:  HourHand,
			value: 3,
			want:  [3]graphics.Point{{X: 148, Y: 100}, {X: 93, Y: 103}, {X: 93, Y: 97}},
		},
		{
			name:  "second hand at thirty",
			spec:  SecondHand,
			value: 30,
			want:  [3]graphics.Point{{X: 100, Y: 24}, {X: 101, Y: 107}, {X: 99, Y: 107}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsFor(tt.spec, tt.value, radius, minDim, center)
			if got != tt.want {
				t.Errorf("PointsFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPointsFor_Pure(t *testing.T) {
	center := graphics.Offset{X: 321, Y: 123}
	for _, spec := range []HandSpec{HourHand, MinuteHand, SecondHand} {
		for _, v := range []float64{0, 1.3, 7.77, 42.1} {
			a := PointsFor(spec, v, 150, 400, center)
			b := PointsFor(spec, v, 150, 400, center)
			if a != b {
				t.Errorf("PointsFor(%v) not deterministic: %+v vs %+v", v, a, b)
			}
		}
	}
}

func TestPointsFor_FullPeriod(t *testing.T) {
	center := square.Center()
	radius := square.Radius()
	minDim := square.MinDimension()

	for _, spec := range []HandSpec{HourHand, MinuteHand, SecondHand} {
		for _, v := range []float64{0, 2.2, 5.1, 9.4, 11.05} {
			a := PointsFor(spec, v, radius, minDim, center)
			b := PointsFor(spec, v+spec.Period(), radius, minDim, center)
			if a[0] != b[0] {
				t.Errorf("tip at %v = %+v, one period later = %+v", v, a[0], b[0])
			}
		}
	}
}

func TestPeriod(t *testing.T) {
	if HourHand.Period() != 12 {
		t.Errorf("hour period = %v", HourHand.Period())
	}
	if MinuteHand.Period() != 60 || SecondHand.Period() != 60 {
		t.Error("minute and second hands should have a period of 60")
	}
}

func TestRimLabelFor(t *testing.T) {
	center := square.Center()

	tests := []struct {
		angle, value float64
		pos          graphics.Offset
		text         string
	}{
		{0, 7.9, graphics.Offset{X: 100, Y: 188}, "07"},
		{-90, 15, graphics.Offset{X: 188, Y: 100}, "15"},
		{-180, 30.5, graphics.Offset{X: 100, Y: 12}, "30"},
		{0, 123, graphics.Offset{X: 100, Y: 188}, "123"},
	}

	for _, tt := range tests {
		got := RimLabelFor(tt.angle, tt.value, 80, center)
		if !got.Position.ApproxEqual(tt.pos) {
			t.Errorf("RimLabelFor(%v).Position = %+v, want %+v", tt.angle, got.Position, tt.pos)
		}
		if got.Text != tt.text {
			t.Errorf("RimLabelFor(%v).Text = %q, want %q", tt.value, got.Text, tt.text)
		}
	}
}

func TestUpdateHand_RimFollowsHand(t *testing.T) {
	st := UpdateHand(MinuteHand, 20, square)
	if st.Angle != -120 {
		t.Errorf("Angle = %v, want -120", st.Angle)
	}
	want := RimLabelFor(-120, 20, square.Radius(), square.Center())
	if st.Rim != want {
		t.Errorf("Rim = %+v, want %+v", st.Rim, want)
	}
}

func TestHandValues(t *testing.T) {
	h, m, s := HandValues(13, 30, 15, 500000)
	if s != 15 {
		t.Errorf("second value = %v, want 15", s)
	}
	wantM := 30 + 15.5/60
	if math.Abs(m-wantM) > 1e-9 {
		t.Errorf("minute value = %v, want %v", m, wantM)
	}
	wantH := 13 + wantM/60
	if math.Abs(h-wantH) > 1e-9 {
		t.Errorf("hour value = %v, want %v", h, wantH)
	}

	// A sub-second change moves the hour and minute hands only.
	h2, m2, s2 := HandValues(13, 30, 15, 900000)
	if s2 != s {
		t.Errorf("second value changed within a second: %v -> %v", s, s2)
	}
	if m2 <= m || h2 <= h {
		t.Error("hour and minute values should sweep continuously")
	}
	if s2 != math.Trunc(s2) {
		t.Errorf("second value %v is fractional", s2)
	}
}

func TestLabelOffset(t *testing.T) {
	tests := []struct {
		hour int
		want graphics.Offset
	}{
		{12, graphics.Offset{X: 0, Y: 85}},
		{3, graphics.Offset{X: 85, Y: 0}},
		{6, graphics.Offset{X: 0, Y: -85}},
		{9, graphics.Offset{X: -85, Y: 0}},
	}
	for _, tt := range tests {
		if got := LabelOffset(tt.hour, 100); !got.ApproxEqual(tt.want) {
			t.Errorf("LabelOffset(%d) = %+v, want %+v", tt.hour, got, tt.want)
		}
	}
}

func TestFace_Labels(t *testing.T) {
	f := New(theme.DefaultSymbols())
	if f.Len() != 12 {
		t.Fatalf("Len() = %d", f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		if f.Roman(i) {
			t.Fatalf("label %d starts in Roman style", i)
		}
	}

	f.SetRoman(3, true)
	st := f.Update(square, 4, 0, 0)
	if st.Labels[3].Text != "IV" {
		t.Errorf("label 4 text = %q, want IV", st.Labels[3].Text)
	}
	if st.Labels[4].Text != "5" {
		t.Errorf("label 5 text = %q, want 5", st.Labels[4].Text)
	}
	if !st.Labels[11].Position.ApproxEqual(graphics.Offset{X: 100, Y: 168}) {
		t.Errorf("label 12 position = %+v", st.Labels[11].Position)
	}
	if st.Hour.Spec.Color != theme.Hour || st.Second.Spec.Color != theme.Second {
		t.Error("hands carry the wrong color categories")
	}
}
