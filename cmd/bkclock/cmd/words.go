package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-drift/bkclock/pkg/clock"
	"github.com/go-drift/bkclock/pkg/markup"
	"github.com/go-drift/bkclock/pkg/phrase"
)

func init() {
	RegisterCommand(&Command{
		Name:  "words",
		Short: "Print the word clock",
		Long: `Print the time as an English sentence, the period of the day and
the arithmetic aside, for the given time or now.

Flags:
  --markup      Keep the color and size markup
  --size N      Font size used for the aside's size tag (default 24)

Examples:
  bkclock words               Current time
  bkclock words 18:35         Twenty-five to seven`,
		Usage: "bkclock words [HH:MM] [--markup] [--size N]",
		Run:   runWords,
	})
}

type wordsOptions struct {
	at       string
	markup   bool
	fontSize float64
}

func parseWordsArgs(args []string) (wordsOptions, error) {
	opts := wordsOptions{fontSize: clock.DefaultFontSize}
	for i := 0; i < len(args); {
		if args[i] == "--markup" {
			opts.markup = true
			i++
			continue
		}
		v, n, ok, err := flagValue(args, i, "--size")
		if err != nil {
			return opts, err
		}
		if ok {
			size, err := strconv.ParseFloat(v, 64)
			if err != nil || size <= 0 {
				return opts, usageError("invalid --size %q", v)
			}
			opts.fontSize = size
			i += n
			continue
		}
		if opts.at != "" {
			return opts, usageError("unexpected argument %q", args[i])
		}
		opts.at = args[i]
		i++
	}
	return opts, nil
}

func runWords(args []string) error {
	opts, err := parseWordsArgs(args)
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

	gen := phrase.NewGenerator(cfg.Theme)
	text := gen.Text(gen.Generate(sample.Hour, sample.Minute), opts.fontSize)
	if !opts.markup {
		text = markup.Strip(text)
	}
	fmt.Fprintln(stdout, text)
	return nil
}
