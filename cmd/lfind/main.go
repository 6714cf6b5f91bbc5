package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lfind/internal/debug"
	"github.com/standardbeagle/lfind/internal/version"
)

func init() {
	// -v is --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	err := app.RunContext(ctx, normalizeArgs(os.Args))
	_ = debug.CloseDebugLog()

	if err != nil {
		fd := os.Stderr.Fd()
		reportError(os.Stderr, err, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
		stop()
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "lfind",
		Usage:                  "Find files by exact name, optionally filtered by content",
		Version:                version.FullInfo(),
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (.kdl or .toml); defaults to ~/.lfind.kdl merged with <root>/.lfind.kdl",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format: text or json",
			},
			&cli.BoolFlag{
				Name:   "debug-log-file",
				Usage:  "Write logs to a file in the temp directory instead of stderr",
				Hidden: true,
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug-log-file") {
				path, err := debug.InitDebugLogFile()
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.ErrWriter, "debug log: %s\n", path)
			}
			return applyLogFlags(c)
		},
		Commands: []*cli.Command{
			findCommand(),
			lsCommand(),
		},
	}
}

// applyLogFlags lets --verbose and --log-format override whatever the config chose
func applyLogFlags(c *cli.Context) error {
	level := ""
	if c.Bool("verbose") || debug.IsDebugEnabled() {
		level = "debug"
	}
	if err := debug.Configure(level, c.String("log-format")); err != nil {
		return err
	}
	debug.Log(debug.ComponentConfig, "%s\n", version.FullInfo())
	return nil
}

// reportError prints err on w with a red prefix when colour is enabled
func reportError(w io.Writer, err error, useColor bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if useColor {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", prefix.Sprint("Error:"), err)
}
