package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lfind/internal/config"
	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/debug"
	"github.com/standardbeagle/lfind/internal/pipeline"
)

func findCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Find files and directories named NAME below the root directory",
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "Sort results by path in ascending order",
			},
			&cli.StringFlag{
				Name:    "filename",
				Aliases: []string{"f"},
				Usage:   "Write results to FILE instead of stdout (created or truncated)",
			},
			&cli.StringFlag{
				Name:    "in-file",
				Aliases: []string{"i"},
				Usage:   "Keep only text files whose content contains TEXT",
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Directory to search (defaults to the current directory)",
			},
		},
		Action: runFind,
	}
}

func runFind(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("find requires exactly one NAME argument")
	}
	name := c.Args().First()

	root, err := resolveRoot(c.String("root"))
	if err != nil {
		return err
	}

	cfg, err := loadConfigWithOverrides(c, root)
	if err != nil {
		return err
	}

	req := pipeline.Request{
		Root:        root,
		Query:       name,
		SortResults: c.Bool("sort") || cfg.Search.Sort,
		OutputFile:  c.String("filename"),
	}
	if c.IsSet("in-file") {
		needle := c.String("in-file")
		req.ContentFilter = &needle
	}

	return pipeline.Execute(c.Context, req, pipeline.OptionsFromConfig(cfg, core.NewFileService(), c.App.Writer))
}

// resolveRoot returns the absolute search root; empty means the working directory
func resolveRoot(rootFlag string) (string, error) {
	if rootFlag == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		return cwd, nil
	}

	absRoot, err := filepath.Abs(rootFlag)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path %q: %w", rootFlag, err)
	}
	return absRoot, nil
}

// loadConfigWithOverrides loads configuration, validates it, and applies logging
// settings with CLI flags taking precedence
func loadConfigWithOverrides(c *cli.Context, root string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath := c.String("config"); configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadWithRoot(root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Project.Root = root

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if err := debug.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, err
	}
	if err := applyLogFlags(c); err != nil {
		return nil, err
	}
	return cfg, nil
}
