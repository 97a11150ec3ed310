// Package cmd implements the bkclock CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (words, face, run, config).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/bkclock/pkg/config"
	"github.com/go-drift/bkclock/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "bkclock",
	Short: "bkclock - analogue, digital and word clock",
	Long: `bkclock shows the time three ways: an analogue face whose hour
numerals drift between decimal and Roman, 12 and 24 hour digital
readouts, and an English sentence such as "Twenty-five to seven".

Use "bkclock <command> --help" for more information about a command.`,
	Usage: "bkclock <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	commandList []*Command
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Global flag state, reset on every Execute.
var (
	verbose   bool
	configDir string
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandList = append(commandList, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the CLI with the given arguments. A failure is
// reported through the installed error handler before it is returned.
func ExecuteArgs(args []string) error {
	err := execute(args)
	if err != nil {
		errors.Report("bkclock", err)
	}
	return err
}

func execute(args []string) error {
	verbose, configDir = false, ""

	var (
		filteredArgs []string
		flagErr      error
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "bkclock version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		case "--config-dir":
			if i+1 >= len(args) {
				flagErr = usageError("--config-dir requires a directory path")
				break
			}
			configDir = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				configDir = strings.TrimPrefix(arg, "--config-dir=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	setupLogging()
	if flagErr != nil {
		return flagErr
	}

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(rootCmd)
		return usageError("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// setupLogging installs a text slog handler on stderr and routes reported
// errors through it.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
}

// resolveConfig loads the configuration from --config-dir, or from the
// nearest directory holding bkclock.yaml.
func resolveConfig() (*config.Resolved, error) {
	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.FindConfigDir(); err != nil {
			return nil, err
		}
	}
	res, err := config.Resolve(dir, Version)
	if err != nil {
		return nil, err
	}
	if res.Path != "" {
		slog.Debug("loaded configuration", "path", res.Path)
	}
	return res, nil
}

func usageError(format string, args ...any) error {
	return errors.New("cmd", errors.KindUsage, fmt.Errorf(format, args...))
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range commandList {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log at debug level")
	fmt.Fprintln(stdout, "  --config-dir DIR     Read bkclock.yaml from DIR (default: nearest parent holding one)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  bkclock words 18:35        Print the word clock for 18:35")
	fmt.Fprintln(stdout, "  bkclock face --out now.png Render the current time")
	fmt.Fprintln(stdout, "  bkclock run                Tick in the terminal")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
