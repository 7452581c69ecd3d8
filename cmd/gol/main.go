// Command gol runs and manipulates Game of Life boards without a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog/log"

	"lifegrid/internal/config"
	"lifegrid/internal/observability"
)

type env struct {
	ctx      context.Context
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
}

type command struct {
	usage string
	run   func(e *env, args []string) error
}

var commands = map[string]command{
	"run":       {"advance a board and print the final generation", cmdRun},
	"show":      {"print a board with its cell counts", cmdShow},
	"convert":   {"convert between .gol and .bgol", cmdConvert},
	"png":       {"export a board as a PNG image", cmdPNG},
	"transform": {"crop, rotate or resize a board", cmdTransform},
	"slot":      {"save, load, list or delete named boards", cmdSlot},
	"patterns":  {"list built-in patterns", cmdPatterns},
}

// errUsage signals a command-line mistake already reported to stderr.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: gol [-config file] [-log-level level] <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].usage)
	}
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gol", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	cfgPath := fs.String("config", "", "TOML or YAML settings file")
	level := fs.String("log-level", "", "log level (trace, debug, info, warn, error, off)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Out = stderr
	observability.InitLoggerWith("gol", logCfg)

	settings := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Error().Err(err).Msg("load config")
			return 1
		}
		settings = loaded
		if lvl, ok := observability.ParseLevel(settings.LogLevel); ok && os.Getenv(observability.EnvLogLevel) == "" {
			logCfg.Level = lvl
		}
	}
	if *level != "" {
		lvl, ok := observability.ParseLevel(*level)
		if !ok {
			fmt.Fprintf(stderr, "gol: unknown log level %q\n", *level)
			return 2
		}
		logCfg.Level = lvl
	}
	logger := observability.InitLoggerWith("gol", logCfg)

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "gol: unknown command %q\n", rest[0])
		usage(stderr)
		return 2
	}

	e := &env{ctx: ctx, settings: settings, stdout: stdout, stderr: stderr}
	if err := cmd.run(e, rest[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return 2
		}
		logger.Error().Err(err).Str("command", rest[0]).Msg("command failed")
		return 1
	}
	return 0
}

func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet("gol "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "usage: gol %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}
