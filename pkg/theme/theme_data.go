// Package theme holds the immutable presentation configuration shared by
// every clock component: the semantic color palette, typographic symbols
// and the Roman numeral table.
//
// Elements that represent the same piece of information are colored the
// same everywhere (the hour hand, the hour digits and the hour words all
// use [Hour]) so the relationship between displays is easy to see.
package theme

import (
	"fmt"

	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/markup"
)

// Category names a semantic color role.
type Category int

const (
	Hour Category = iota
	Minute
	Second
	AmPm
	DayName
	Day
	Month
	Year
	On
	Off
	High
	Rim
	RimText
	Numerals

	numCategories
)

var categoryNames = [numCategories]string{
	Hour:     "hour",
	Minute:   "minute",
	Second:   "second",
	AmPm:     "ampm",
	DayName:  "dayname",
	Day:      "day",
	Month:    "month",
	Year:     "year",
	On:       "on",
	Off:      "off",
	High:     "high",
	Rim:      "rim",
	RimText:  "rim_text",
	Numerals: "numerals",
}

func (c Category) String() string {
	if c >= 0 && c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory returns the category for a configuration key.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Palette maps every category to a color.
type Palette [numCategories]graphics.Color

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Hour:     graphics.RGB(255, 0, 0),
		Minute:   graphics.RGB(0, 255, 0),
		Second:   graphics.RGB(0, 0, 255),
		AmPm:     graphics.RGB(255, 255, 0),
		DayName:  graphics.RGB(95, 255, 175),
		Day:      graphics.RGB(255, 175, 95),
		Month:    graphics.RGB(175, 95, 255),
		Year:     graphics.RGB(255, 95, 175),
		On:       graphics.RGB(175, 175, 175),
		Off:      graphics.RGB(71, 71, 71),
		High:     graphics.RGB(255, 255, 255),
		Rim:      graphics.RGB(255, 255, 255),
		RimText:  graphics.RGB(255, 255, 255),
		Numerals: graphics.RGB(255, 255, 255),
	}
}

// Color returns the color for c.
func (p Palette) Color(c Category) graphics.Color {
	return p[c]
}

// Symbols holds the typographic characters used in generated text.
type Symbols struct {
	MinusSign     string
	EmDash        string
	DateSeparator string
	// RomanNumerals lists the numerals for positions 1..12.
	RomanNumerals [12]string
}

// DefaultSymbols returns ASCII-safe symbols.
func DefaultSymbols() Symbols {
	return Symbols{
		MinusSign:     "-",
		EmDash:        "-",
		DateSeparator: "/",
		RomanNumerals: [12]string{
			"I", "II", "III", "IV", "V", "VI",
			"VII", "VIII", "IX", "X", "XI", "XII",
		},
	}
}

// Roman returns the numeral for an hour position 1..12.
func (s Symbols) Roman(hour int) string {
	return s.RomanNumerals[(hour+11)%12]
}

// ThemeData is the complete presentation configuration. It is built once,
// before any clock component runs, and passed by value afterwards.
type ThemeData struct {
	Palette Palette
	Symbols Symbols
	// Fonts maps a role name ("face", "words", "digital") to a font file.
	// Renderers fall back to a built-in face for roles not listed.
	Fonts map[string]string
}

// DefaultTheme returns the stock theme.
func DefaultTheme() ThemeData {
	return ThemeData{
		Palette: DefaultPalette(),
		Symbols: DefaultSymbols(),
	}
}

// CopyWith returns a copy with the given fields overridden. The Fonts map
// is copied so the result never aliases the receiver.
func (t ThemeData) CopyWith(palette *Palette, symbols *Symbols) ThemeData {
	result := ThemeData{
		Palette: t.Palette,
		Symbols: t.Symbols,
	}
	if len(t.Fonts) > 0 {
		result.Fonts = make(map[string]string, len(t.Fonts))
		for k, v := range t.Fonts {
			result.Fonts[k] = v
		}
	}
	if palette != nil {
		result.Palette = *palette
	}
	if symbols != nil {
		result.Symbols = *symbols
	}
	return result
}

// Tag wraps s in the markup color of c.
func (t ThemeData) Tag(c Category, s string) string {
	return markup.Color(t.Palette[c], s)
}
