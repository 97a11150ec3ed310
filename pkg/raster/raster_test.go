package raster

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

func testState() face.State {
	layout := face.Layout{Size: graphics.Size{Width: 200, Height: 160}}
	h, m, s := face.HandValues(3, 0, 0, 0)
	return face.New(theme.DefaultSymbols()).Update(layout, h, m, s)
}

func isBackground(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R == 0 && c.G == 0 && c.B == 0
}

func TestRender_Bounds(t *testing.T) {
	r := New(theme.DefaultTheme(), nil)
	img, err := r.Render(testState())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 160) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestDrawFace_Pixels(t *testing.T) {
	r := New(theme.DefaultTheme(), nil)
	img, err := r.Render(testState())
	if err != nil {
		t.Fatal(err)
	}

	// Every hand covers the centre.
	if isBackground(img, 100, 80) {
		t.Error("centre pixel not covered by the hands")
	}
	// Rim at the leftmost point of the circle, radius 0.4*160 = 64.
	if isBackground(img, 100-64, 80) {
		t.Error("rim not drawn")
	}
	// Inside the rim, away from hands and labels.
	if !isBackground(img, 100-25, 80+25) {
		t.Error("unexpected paint inside the face")
	}
}

func TestDrawFace_HandColor(t *testing.T) {
	r := New(theme.DefaultTheme(), nil)
	// At 3:00 the minute hand points straight up. Sample a pixel on its
	// shaft, above the centre and below the tip.
	img, err := r.Render(testState())
	if err != nil {
		t.Fatal(err)
	}
	c := img.RGBAAt(100, 80-30)
	if c.G == 0 {
		t.Errorf("minute hand shaft = %+v, want a green component", c)
	}
	if c.R != 0 {
		t.Errorf("minute hand shaft = %+v, hour hand should not reach here", c)
	}
}

func TestDrawMarkup(t *testing.T) {
	r := New(theme.DefaultTheme(), nil)
	img := r.NewImage(face.Layout{Size: graphics.Size{Width: 120, Height: 60}})

	box, err := r.DrawMarkup(img, "[color=ff0000]AB[/color]\nC", image.Point{X: 2, Y: 2}, RoleWords)
	if err != nil {
		t.Fatalf("DrawMarkup() error = %v", err)
	}
	if box.Dx() < 14 || box.Dy() < 26 {
		t.Errorf("bounds %v too small for two lines", box)
	}

	red := false
	for y := box.Min.Y; y < box.Max.Y && !red; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.R > 0 && c.G == 0 {
				red = true
				break
			}
		}
	}
	if !red {
		t.Error("colored span not drawn in red")
	}
}

func TestWritePNG(t *testing.T) {
	r := New(theme.DefaultTheme(), nil)
	img, err := r.Render(testState(), TextBlock{Role: RoleDigital, Text: "12:00"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
