package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/bkclock/pkg/config"
	"github.com/go-drift/bkclock/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print every configuration value after merging bkclock.yaml onto
the defaults. The output is itself a valid bkclock.yaml.`,
		Usage: "bkclock config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return usageError("config takes no arguments")
	}
	res, err := resolveConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(res.Export())
	if err != nil {
		return errors.New("cmd.config", errors.KindConfig, err)
	}
	source := res.Path
	if source == "" {
		source = fmt.Sprintf("defaults (no %s in %s)", config.FileName, res.Root)
	}
	fmt.Fprintf(stdout, "# resolved from %s\n%s", source, data)
	return nil
}
