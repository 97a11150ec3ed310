// Package markup builds and parses the inline text markup consumed by the
// renderer: "[color=rrggbb]text[/color]" and "[size=N]text[/size]".
//
// Builders never escape their input; callers control every string that
// flows through them.
package markup

import (
	"strconv"
	"strings"

	"github.com/go-drift/bkclock/pkg/graphics"
)

// Color wraps s in a color tag.
func Color(c graphics.Color, s string) string {
	return "[color=" + c.Hex() + "]" + s + "[/color]"
}

// Size wraps s in a font size tag. Size is given in pixels.
func Size(px int, s string) string {
	return "[size=" + strconv.Itoa(px) + "]" + s + "[/size]"
}

// Span is a run of text with the innermost color and size in effect.
// A zero Color or Size means the renderer default applies.
type Span struct {
	Text  string
	Color graphics.Color
	Size  int
}

// Parse splits s into spans. Unknown or malformed tags are kept as literal
// text so that a stray bracket never swallows output.
func Parse(s string) []Span {
	var (
		spans  []Span
		colors []graphics.Color
		sizes  []int
		buf    strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		span := Span{Text: buf.String()}
		if n := len(colors); n > 0 {
			span.Color = colors[n-1]
		}
		if n := len(sizes); n > 0 {
			span.Size = sizes[n-1]
		}
		spans = append(spans, span)
		buf.Reset()
	}

	for len(s) > 0 {
		open := strings.IndexByte(s, '[')
		if open < 0 {
			buf.WriteString(s)
			break
		}
		buf.WriteString(s[:open])
		s = s[open:]

		end := strings.IndexByte(s, ']')
		if end < 0 {
			buf.WriteString(s)
			break
		}
		tag := s[1:end]

		switch {
		case strings.HasPrefix(tag, "color="):
			c, err := graphics.ParseHex(strings.TrimPrefix(tag, "color="))
			if err != nil {
				break
			}
			flush()
			colors = append(colors, c)
			s = s[end+1:]
			continue
		case tag == "/color" && len(colors) > 0:
			flush()
			colors = colors[:len(colors)-1]
			s = s[end+1:]
			continue
		case strings.HasPrefix(tag, "size="):
			px, err := strconv.Atoi(strings.TrimPrefix(tag, "size="))
			if err != nil {
				break
			}
			flush()
			sizes = append(sizes, px)
			s = s[end+1:]
			continue
		case tag == "/size" && len(sizes) > 0:
			flush()
			sizes = sizes[:len(sizes)-1]
			s = s[end+1:]
			continue
		}

		// Not a tag: keep the bracket and rescan from the next byte, so a
		// tag that follows is still recognised.
		buf.WriteByte('[')
		s = s[1:]
	}
	flush()
	return spans
}

// Strip removes all recognised tags and returns the plain text.
func Strip(s string) string {
	var b strings.Builder
	for _, span := range Parse(s) {
		b.WriteString(span.Text)
	}
	return b.String()
}
