package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/bkclock/pkg/clock"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

// parseAt reads "HH:MM" or "HH:MM:SS" as a time on the day of now.
func parseAt(s string, now time.Time) (clock.Sample, error) {
	var (
		t   time.Time
		err error
	)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err = time.Parse(layout, s); err == nil {
			break
		}
	}
	if err != nil {
		return clock.Sample{}, fmt.Errorf("invalid time %q (want HH:MM or HH:MM:SS)", s)
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), 0, now.Location())
	return clock.SampleOf(at), nil
}

// parseSize reads "N" (a square) or "WxH" in pixels.
func parseSize(s string) (graphics.Size, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		h = w
	}
	width, err1 := strconv.Atoi(w)
	height, err2 := strconv.Atoi(h)
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want N or WxH)", s)
	}
	return graphics.Size{Width: float64(width), Height: float64(height)}, nil
}

// flagValue returns the value of a "--name value" or "--name=value" flag
// at args[i] and how many arguments it used.
func flagValue(args []string, i int, name string) (string, int, bool, error) {
	arg := args[i]
	if arg == name {
		if i+1 >= len(args) {
			return "", 0, true, usageError("%s requires a value", name)
		}
		return args[i+1], 2, true, nil
	}
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, 1, true, nil
	}
	return "", 0, false, nil
}

// loadFonts registers the configured font files by role.
func loadFonts(t theme.ThemeData) (*graphics.FontManager, error) {
	m := graphics.NewFontManager()
	roles := make([]string, 0, len(t.Fonts))
	for role := range t.Fonts {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		data, err := os.ReadFile(t.Fonts[role])
		if err != nil {
			return nil, err
		}
		if err := m.RegisterFont(role, data); err != nil {
			return nil, err
		}
		slog.Debug("registered font", "role", role, "path", t.Fonts[role])
	}
	return m, nil
}
