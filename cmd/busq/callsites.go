package main

import (
	"context"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
)

func callsitesCommand() *cli.Command {
	return &cli.Command{
		Name:  "callsites",
		Usage: "find broadcast call sites and their event names",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "single source file to scan",
			},
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "project root to scan",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file (default: <path>/.busq.yml)",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output for LLM context limits",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Value:   runtime.NumCPU(),
				Usage:   "number of parallel workers",
			},
			&cli.IntFlag{
				Name:  "max-files",
				Usage: "cap on source files scanned (0 = no cap)",
			},
		},
		Action: runCallsites,
	}
}

func runCallsites(ctx context.Context, cmd *cli.Command) error {
	ws, settings, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	out := newWriter(cmd)

	sites, err := busq.CallSites(ctx, ws, busq.CallSitesOptions{
		File:     cmd.String("file"),
		Exclude:  settings.ExcludeGlob,
		MaxFiles: cmd.Int("max-files"),
		Jobs:     cmd.Int("jobs"),
		Logger:   appLogger(cmd),
	})
	if err != nil {
		return err
	}

	return out.Write(sites)
}
