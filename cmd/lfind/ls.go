package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/lfind/internal/core"
	"github.com/standardbeagle/lfind/internal/listing"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List the regular files in PATH (defaults to the current directory)",
		ArgsUsage: "[PATH]",
		Action: func(c *cli.Context) error {
			path := "."
			if c.NArg() > 0 {
				path = c.Args().First()
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}

			return listing.New(core.NewFileService(), cwd).Print(c.App.Writer, path)
		},
	}
}
