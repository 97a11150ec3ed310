package graphics

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 16

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64
	Lines      []TextLine
}

type faceKey struct {
	family string
	size   float64
}

// FontManager resolves font families to faces. Families are registered from
// TrueType or OpenType data; unknown families fall back to a fixed bitmap
// face.
type FontManager struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with no registered families.
func NewFontManager() *FontManager {
	return &FontManager{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// DefaultFontManager returns a shared font manager.
func DefaultFontManager() *FontManager {
	defaultFontManagerOnce.Do(func() {
		defaultFontManager = NewFontManager()
	})
	return defaultFontManager
}

// RegisterFont registers a new font family from TrueType or OpenType data.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = f
	for k := range m.faces {
		if k.family == name {
			delete(m.faces, k)
		}
	}
	return nil
}

// Has reports whether family has been registered.
func (m *FontManager) Has(family string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.fonts[family]
	return ok
}

// Face resolves a font face for the given style. Faces are cached per
// family and size.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{family: style.FontFamily, size: size}

	m.mu.RLock()
	face, ok := m.faces[key]
	f := m.fonts[style.FontFamily]
	m.mu.RUnlock()
	if ok {
		return face, nil
	}
	if f == nil {
		return basicfont.Face7x13, nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("face %q at %v: %w", style.FontFamily, size, err)
	}
	m.mu.Lock()
	m.faces[key] = face
	m.mu.Unlock()
	return face, nil
}

// LayoutText measures text, one line per newline, using the face resolved
// for style.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	face, err := manager.Face(style)
	if err != nil {
		return nil, err
	}
	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	lineHeight := fixedToFloat(metrics.Height)
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	layout := &TextLayout{
		Text:       text,
		Style:      style,
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
	}
	width := 0.0
	for _, line := range strings.Split(text, "\n") {
		w := fixedToFloat(font.MeasureString(face, line))
		layout.Lines = append(layout.Lines, TextLine{Text: line, Width: w})
		width = max(width, w)
	}
	layout.Size = Size{Width: width, Height: lineHeight * float64(len(layout.Lines))}
	return layout, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
