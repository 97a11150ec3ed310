// Package config loads the optional bkclock.yaml file and resolves it
// against the stock theme and flip timings.
//
// A minimal file:
//
//	requires: v0.2.0
//	colors:
//	  hour: "#ff8000"
//	  minute: [0, 200, 255]
//	roman_numerals: [i, ii, iii, iv, v, vi, vii, viii, ix, x, xi, xii]
//	date_separator: "-"
//	fonts:
//	  face: fonts/Clock.ttf
//	flip:
//	  min_delay: 30s
//	  max_delay: 90s
//
// Every key is optional. Unknown keys are rejected.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/bkclock/pkg/errors"
	"github.com/go-drift/bkclock/pkg/flip"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/theme"
)

// FileName is the name of the configuration file looked up in a directory.
const FileName = "bkclock.yaml"

// FontRoles lists the text roles a font can be assigned to.
var FontRoles = []string{"face", "words", "digital", "date"}

// Config represents the optional bkclock.yaml configuration.
type Config struct {
	Requires      string                `yaml:"requires,omitempty"`
	Colors        map[string]ColorValue `yaml:"colors,omitempty"`
	RomanNumerals []string              `yaml:"roman_numerals,omitempty"`
	MinusSign     *string               `yaml:"minus_sign,omitempty"`
	EmDash        *string               `yaml:"em_dash,omitempty"`
	DateSeparator *string               `yaml:"date_separator,omitempty"`
	Fonts         map[string]string     `yaml:"fonts,omitempty"`
	Flip          FlipConfig            `yaml:"flip,omitempty"`
}

// FlipConfig holds the hour-label flip timings as Go duration strings.
type FlipConfig struct {
	InitialDelay string `yaml:"initial_delay,omitempty"`
	StepInterval string `yaml:"step_interval,omitempty"`
	MinDelay     string `yaml:"min_delay,omitempty"`
	MaxDelay     string `yaml:"max_delay,omitempty"`
}

// ColorValue is a color written either as a hex string ("#rrggbb") or as
// a list of three 0..255 components.
type ColorValue struct {
	graphics.Color
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		col, err := graphics.ParseHex(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.Color = col
		return nil
	case yaml.SequenceNode:
		var rgb []int
		if err := node.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: color needs 3 components, got %d", node.Line, len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("line %d: color component %d out of range 0..255", node.Line, v)
			}
		}
		c.Color = graphics.RGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]))
		return nil
	default:
		return fmt.Errorf("line %d: color must be \"#rrggbb\" or [r, g, b]", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c ColorValue) MarshalYAML() (any, error) {
	return "#" + c.Hex(), nil
}

// FlipTimings are the resolved flip durations.
type FlipTimings struct {
	InitialDelay time.Duration
	StepInterval time.Duration
	MinDelay     time.Duration
	MaxDelay     time.Duration
}

// DefaultFlipTimings returns the stock timings.
func DefaultFlipTimings() FlipTimings {
	return FlipTimings{
		InitialDelay: flip.DefaultInitialDelay,
		StepInterval: flip.DefaultStepInterval,
		MinDelay:     flip.DefaultMinDelay,
		MaxDelay:     flip.DefaultMaxDelay,
	}
}

// Options converts the timings to flipper options.
func (t FlipTimings) Options() []flip.Option {
	return []flip.Option{
		flip.WithInitialDelay(t.InitialDelay),
		flip.WithStepInterval(t.StepInterval),
		flip.WithDelayRange(t.MinDelay, t.MaxDelay),
	}
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Root is the directory the configuration was resolved in.
	Root string
	// Path is the file that was read, or empty when none exists.
	Path  string
	Theme theme.ThemeData
	Flip  FlipTimings
}

// Parse decodes a configuration document. Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional reads bkclock.yaml from dir if present. A missing file
// yields an empty Config and an empty path.
func LoadOptional(dir string) (*Config, string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, "", nil
		}
		return nil, "", errors.New("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", errors.New("config.LoadOptional", errors.KindConfig,
			fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return cfg, path, nil
}

// Resolve loads bkclock.yaml (if present) from dir and merges it onto the
// defaults. version is the running program version checked against the
// requires key. All validation problems are reported together.
func Resolve(dir, version string) (*Resolved, error) {
	cfg, path, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	res, err := cfg.Apply(dir, version)
	if err != nil {
		return nil, errors.New("config.Resolve", errors.KindConfig, err)
	}
	res.Path = path
	return res, nil
}

// Apply merges cfg onto the defaults. Relative font paths are resolved
// against dir.
func (cfg *Config) Apply(dir, version string) (*Resolved, error) {
	var result *multierror.Error

	if err := checkRequires(cfg.Requires, version); err != nil {
		result = multierror.Append(result, err)
	}

	palette := theme.DefaultPalette()
	for _, name := range sortedKeys(cfg.Colors) {
		c, ok := theme.ParseCategory(name)
		if !ok {
			result = multierror.Append(result, fmt.Errorf("colors: unknown category %q", name))
			continue
		}
		palette[c] = cfg.Colors[name].Color
	}

	symbols := theme.DefaultSymbols()
	if cfg.RomanNumerals != nil {
		if len(cfg.RomanNumerals) != 12 {
			result = multierror.Append(result,
				fmt.Errorf("roman_numerals: need 12 entries, got %d", len(cfg.RomanNumerals)))
		} else {
			for i, n := range cfg.RomanNumerals {
				if strings.TrimSpace(n) == "" {
					result = multierror.Append(result, fmt.Errorf("roman_numerals: entry %d is empty", i+1))
				}
				symbols.RomanNumerals[i] = n
			}
		}
	}
	setSymbol(&symbols.MinusSign, cfg.MinusSign)
	setSymbol(&symbols.EmDash, cfg.EmDash)
	setSymbol(&symbols.DateSeparator, cfg.DateSeparator)

	fonts := make(map[string]string, len(cfg.Fonts))
	for _, role := range sortedKeys(cfg.Fonts) {
		file := strings.TrimSpace(cfg.Fonts[role])
		if !slices.Contains(FontRoles, role) {
			result = multierror.Append(result,
				fmt.Errorf("fonts: unknown role %q (want one of %s)", role, strings.Join(FontRoles, ", ")))
			continue
		}
		if file == "" {
			result = multierror.Append(result, fmt.Errorf("fonts.%s: path is empty", role))
			continue
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		if _, err := os.Stat(file); err != nil {
			result = multierror.Append(result, fmt.Errorf("fonts.%s: %w", role, err))
			continue
		}
		fonts[role] = file
	}

	timings, err := cfg.Flip.resolve()
	if err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	th := theme.DefaultTheme().CopyWith(&palette, &symbols)
	if len(fonts) > 0 {
		th.Fonts = fonts
	}
	return &Resolved{Root: dir, Theme: th, Flip: timings}, nil
}

func (f FlipConfig) resolve() (FlipTimings, error) {
	var result *multierror.Error
	t := DefaultFlipTimings()

	parse := func(key, value string, dst *time.Duration, allowZero bool) {
		if value == "" {
			return
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("flip.%s: %w", key, err))
			return
		}
		if d < 0 || (d == 0 && !allowZero) {
			result = multierror.Append(result, fmt.Errorf("flip.%s: must be positive, got %s", key, value))
			return
		}
		*dst = d
	}
	parse("initial_delay", f.InitialDelay, &t.InitialDelay, true)
	parse("step_interval", f.StepInterval, &t.StepInterval, false)
	parse("min_delay", f.MinDelay, &t.MinDelay, false)
	parse("max_delay", f.MaxDelay, &t.MaxDelay, false)

	if t.MinDelay > t.MaxDelay {
		result = multierror.Append(result,
			fmt.Errorf("flip.min_delay %s exceeds flip.max_delay %s", t.MinDelay, t.MaxDelay))
	}
	return t, result.ErrorOrNil()
}

func checkRequires(required, version string) error {
	if required == "" {
		return nil
	}
	req := canonical(required)
	if !semver.IsValid(req) {
		return fmt.Errorf("requires: %q is not a semantic version", required)
	}
	have := canonical(version)
	if !semver.IsValid(have) {
		// Development builds satisfy any requirement.
		return nil
	}
	if semver.Compare(have, req) < 0 {
		return fmt.Errorf("requires: bkclock %s or newer, running %s", req, have)
	}
	return nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

func setSymbol(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Export converts r back into file form, listing every value explicitly.
func (r *Resolved) Export() *Config {
	cfg := &Config{
		Colors:        make(map[string]ColorValue),
		RomanNumerals: r.Theme.Symbols.RomanNumerals[:],
		MinusSign:     &r.Theme.Symbols.MinusSign,
		EmDash:        &r.Theme.Symbols.EmDash,
		DateSeparator: &r.Theme.Symbols.DateSeparator,
		Fonts:         r.Theme.Fonts,
		Flip: FlipConfig{
			InitialDelay: r.Flip.InitialDelay.String(),
			StepInterval: r.Flip.StepInterval.String(),
			MinDelay:     r.Flip.MinDelay.String(),
			MaxDelay:     r.Flip.MaxDelay.String(),
		},
	}
	for _, c := range theme.Categories() {
		cfg.Colors[c.String()] = ColorValue{r.Theme.Palette.Color(c)}
	}
	return cfg
}

// FindConfigDir walks up from the current directory to the first
// directory holding bkclock.yaml. It returns the current directory when
// none is found.
func FindConfigDir() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}
