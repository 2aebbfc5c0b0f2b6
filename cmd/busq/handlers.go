package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
)

func handlersCommand() *cli.Command {
	return &cli.Command{
		Name:  "handlers",
		Usage: "list the handlers subscribed to an event",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event",
				Aliases:  []string{"e"},
				Usage:    "event name to look for (required)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "no-resolve",
				Usage: "skip resolving handlers to source files",
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
		Action: runHandlers,
	}
}

func runHandlers(ctx context.Context, cmd *cli.Command) error {
	ws, settings, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	out := newWriter(cmd)

	locations, err := busq.Handlers(ctx, ws, busq.HandlersOptions{
		Event:           cmd.String("event"),
		Resolve:         !cmd.Bool("no-resolve"),
		ConfigGlob:      settings.SubscriptionsGlob,
		Exclude:         settings.ExcludeGlob,
		MaxConfigFiles:  settings.MaxConfigFiles,
		MaxHandlerFiles: settings.MaxHandlerCandidates,
		Logger:          appLogger(cmd),
	})
	if err != nil {
		return err
	}
	if len(locations) == 0 {
		out.Notef("no handlers subscribed to %s", cmd.String("event"))
	}

	return out.Write(locations)
}
