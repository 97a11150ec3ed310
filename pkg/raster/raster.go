// Package raster draws clock frames into images.
//
// Face geometry is y-up with the origin at the bottom-left of the layout
// box. Images are y-down, so every position is flipped on the way in.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/bkclock/pkg/errors"
	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/markup"
	"github.com/go-drift/bkclock/pkg/theme"
)

// Font roles looked up in the font manager.
const (
	RoleFace    = "face"
	RoleWords   = "words"
	RoleDigital = "digital"
	RoleDate    = "date"
)

const (
	// rimWidth is the rim stroke as a fraction of the radius.
	rimWidth = 0.015
	// circleSegments is the polygon resolution of the rim.
	circleSegments = 120
)

// Renderer draws faces and markup text with a fixed theme.
type Renderer struct {
	theme theme.ThemeData
	fonts *graphics.FontManager
	// Background fills the image before drawing.
	Background graphics.Color
	// FontSize is the default text size for markup without a size tag.
	FontSize float64
}

// New creates a renderer. A nil font manager uses the shared default.
func New(t theme.ThemeData, fonts *graphics.FontManager) *Renderer {
	if fonts == nil {
		fonts = graphics.DefaultFontManager()
	}
	return &Renderer{
		theme:      t,
		fonts:      fonts,
		Background: graphics.ColorBlack,
		FontSize:   16,
	}
}

// NewImage returns an image sized to layout and filled with the
// background color.
func (r *Renderer) NewImage(layout face.Layout) *image.RGBA {
	w := int(math.Ceil(layout.Size.Width))
	h := int(math.Ceil(layout.Size.Height))
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background.NRGBA()), image.Point{}, draw.Src)
	return img
}

// DrawFace draws the rim, hour labels, hands and rim labels of s.
func (r *Renderer) DrawFace(dst draw.Image, s face.State) error {
	height := s.Layout.Size.Height
	flip := func(o graphics.Offset) graphics.Offset {
		return graphics.Offset{X: o.X, Y: height - o.Y}
	}

	center := flip(s.Layout.Center())
	radius := s.Layout.Radius()
	r.drawRing(dst, center, radius, radius*(1-rimWidth), r.theme.Palette.Color(theme.Rim))

	numerals := r.style(RoleFace, 0).WithColor(r.theme.Palette.Color(theme.Numerals))
	for _, l := range s.Labels {
		if err := r.drawCentered(dst, l.Text, numerals, flip(l.Position)); err != nil {
			return err
		}
	}

	rimText := r.style(RoleFace, 0).WithColor(r.theme.Palette.Color(theme.RimText))
	for _, hand := range s.Hands() {
		col := r.theme.Palette.Color(hand.Spec.Color).WithAlpha(face.HandAlpha)
		var pts [3]graphics.Offset
		for i, p := range hand.Points {
			pts[i] = flip(graphics.Offset{X: float64(p.X), Y: float64(p.Y)})
		}
		r.drawTriangle(dst, pts, col)
		if err := r.drawCentered(dst, hand.Rim.Text, rimText, flip(hand.Rim.Position)); err != nil {
			return err
		}
	}
	return nil
}

// DrawMarkup draws markup text with its top-left corner at origin, in
// image coordinates. Spans without a color tag use the high color.
func (r *Renderer) DrawMarkup(dst draw.Image, text string, origin image.Point, role string) (image.Rectangle, error) {
	x, y := origin.X, origin.Y
	lineHeight := 0
	bounds := image.Rectangle{Min: origin, Max: origin}
	def := r.theme.Palette.Color(theme.High)

	newline := func() {
		y += lineHeight
		x = origin.X
		lineHeight = 0
	}

	for _, span := range markup.Parse(text) {
		style := r.style(role, float64(span.Size)).WithColor(def)
		if span.Color != 0 {
			style = style.WithColor(span.Color)
		}
		layout, err := graphics.LayoutText(span.Text, style, r.fonts)
		if err != nil {
			return bounds, errors.New("raster.DrawMarkup", errors.KindRender, err)
		}
		ascent := int(math.Ceil(layout.Ascent))
		spanHeight := int(math.Ceil(layout.LineHeight))
		lineHeight = max(lineHeight, spanHeight)

		src := image.NewUniform(style.Color.NRGBA())
		for i, line := range layout.Lines {
			if i > 0 {
				newline()
				lineHeight = spanHeight
			}
			if line.Text == "" {
				continue
			}
			d := &font.Drawer{Dst: dst, Src: src, Face: layout.Face, Dot: fixed.P(x, y+ascent)}
			d.DrawString(line.Text)
			x += int(math.Ceil(line.Width))
			bounds = bounds.Union(image.Rect(origin.X, origin.Y, x, y+lineHeight))
		}
	}
	return bounds, nil
}

// Render draws a complete frame: the face, then each text block stacked
// down the left edge with its font role.
func (r *Renderer) Render(s face.State, blocks ...TextBlock) (*image.RGBA, error) {
	img := r.NewImage(s.Layout)
	if err := r.DrawFace(img, s); err != nil {
		return nil, err
	}
	pos := image.Point{X: 4, Y: 4}
	for _, b := range blocks {
		box, err := r.DrawMarkup(img, b.Text, pos, b.Role)
		if err != nil {
			return nil, err
		}
		pos.Y = box.Max.Y + 4
	}
	return img, nil
}

// TextBlock is a markup string and the font role it is drawn with.
type TextBlock struct {
	Role string
	Text string
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.New("raster.WritePNG", errors.KindRender, err)
	}
	return nil
}

// style resolves the text style for a font role. Roles without a
// registered font use the fallback face.
func (r *Renderer) style(role string, size float64) graphics.TextStyle {
	if size <= 0 {
		size = r.FontSize
	}
	family := ""
	if r.fonts.Has(role) {
		family = role
	}
	return graphics.TextStyle{FontFamily: family, FontSize: size}
}

func (r *Renderer) drawTriangle(dst draw.Image, pts [3]graphics.Offset, col graphics.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	z.LineTo(float32(pts[1].X), float32(pts[1].Y))
	z.LineTo(float32(pts[2].X), float32(pts[2].Y))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col.NRGBA()), image.Point{})
}

// drawRing fills the band between two concentric circles. The inner
// circle is traced in the opposite direction so it cancels the outer
// fill.
func (r *Renderer) drawRing(dst draw.Image, center graphics.Offset, outer, inner float64, col graphics.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	circle(z, center, outer, 1)
	circle(z, center, inner, -1)
	z.Draw(dst, b, image.NewUniform(col.NRGBA()), image.Point{})
}

func circle(z *vector.Rasterizer, center graphics.Offset, radius, dir float64) {
	for i := 0; i <= circleSegments; i++ {
		a := dir * 2 * math.Pi * float64(i) / circleSegments
		x := float32(center.X + radius*math.Cos(a))
		y := float32(center.Y + radius*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// drawCentered draws a single line of text centred on at.
func (r *Renderer) drawCentered(dst draw.Image, text string, style graphics.TextStyle, at graphics.Offset) error {
	if text == "" {
		return nil
	}
	layout, err := graphics.LayoutText(text, style, r.fonts)
	if err != nil {
		return errors.New("raster.DrawFace", errors.KindRender, err)
	}
	x := at.X - layout.Lines[0].Width/2
	y := at.Y + (layout.Ascent-layout.Descent)/2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: layout.Face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
	return nil
}
