package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-drift/bkclock/pkg/clock"
	"github.com/go-drift/bkclock/pkg/errors"
	"github.com/go-drift/bkclock/pkg/face"
	"github.com/go-drift/bkclock/pkg/graphics"
	"github.com/go-drift/bkclock/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "face",
		Short: "Render the clock to a PNG file",
		Long: `Render one frame of the clock: the analogue face with the digital
readouts, the word clock and the date down the left edge.

Flags:
  --at HH:MM[:SS]   Time to render (default: now)
  --size N|WxH      Image size in pixels (default 480x360)
  --roman           Draw the hour numerals in Roman style
  --out FILE        Output file (default bkclock.png)`,
		Usage: "bkclock face [--at HH:MM[:SS]] [--size N|WxH] [--roman] [--out FILE]",
		Run:   runFace,
	})
}

type faceOptions struct {
	at    string
	size  graphics.Size
	roman bool
	out   string
}

func parseFaceArgs(args []string) (faceOptions, error) {
	opts := faceOptions{
		size: graphics.Size{Width: 480, Height: 360},
		out:  "bkclock.png",
	}
	for i := 0; i < len(args); {
		if args[i] == "--roman" {
			opts.roman = true
			i++
			continue
		}
		matched := false
		for _, name := range []string{"--at", "--size", "--out"} {
			v, n, ok, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			if !ok {
				continue
			}
			switch name {
			case "--at":
				opts.at = v
			case "--size":
				if opts.size, err = parseSize(v); err != nil {
					return opts, usageError("%v", err)
				}
			case "--out":
				opts.out = v
			}
			i += n
			matched = true
			break
		}
		if !matched {
			return opts, usageError("unexpected argument %q", args[i])
		}
	}
	return opts, nil
}

func runFace(args []string) error {
	opts, err := parseFaceArgs(args)
	if err != nil {
		return err
	}

	sample := clock.SampleOf(time.Now())
	if opts.at != "" {
		if sample, err = parseAt(opts.at, time.Now()); err != nil {
			return usageError("%v", err)
		}
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	fonts, err := loadFonts(cfg.Theme)
	if err != nil {
		return errors.New("cmd.face", errors.KindRender, err)
	}

	c := clock.New(cfg.Theme)
	if opts.roman {
		for i := 0; i < c.Face().Len(); i++ {
			c.Face().SetRoman(i, true)
		}
	}
	frame := c.Tick(sample, face.Layout{Size: opts.size})

	r := raster.New(cfg.Theme, fonts)
	img, err := r.Render(frame.Face,
		raster.TextBlock{Role: raster.RoleDigital, Text: frame.Digital24},
		raster.TextBlock{Role: raster.RoleDigital, Text: frame.Digital12},
		raster.TextBlock{Role: raster.RoleWords, Text: frame.WordText},
		raster.TextBlock{Role: raster.RoleDate, Text: frame.Date},
	)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return errors.New("cmd.face", errors.KindRender, err)
	}
	if err := raster.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.New("cmd.face", errors.KindRender, err)
	}

	slog.Debug("rendered frame", "path", opts.out, "width", opts.size.Width, "height", opts.size.Height)
	fmt.Fprintf(stdout, "Wrote %s\n", opts.out)
	return nil
}
