package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
)

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "derive the event name broadcast at a call site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "source file, relative to --path (required)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "line",
				Aliases:  []string{"l"},
				Usage:    "1-based line of the call site (required)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "project root",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file (default: <path>/.busq.yml)",
			},
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "minimize output for LLM context limits",
			},
		},
		Action: runResolve,
	}
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	ws, _, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	out := newWriter(cmd)

	resolved, err := busq.Resolve(ctx, ws, busq.ResolveOptions{
		File:   cmd.String("file"),
		Line:   cmd.Int("line"),
		Logger: appLogger(cmd),
	})
	if err != nil {
		return err
	}
	if resolved == nil {
		out.Notef("no bus event at %s:%d", cmd.String("file"), cmd.Int("line"))
		return nil
	}

	return out.Write(resolved)
}
