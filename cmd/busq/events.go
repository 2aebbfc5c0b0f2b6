package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
)

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "list every subscribed event in the project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "fuzzy-filter event names",
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
		Action: runEvents,
	}
}

func runEvents(ctx context.Context, cmd *cli.Command) error {
	ws, settings, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	out := newWriter(cmd)

	infos, err := busq.Events(ctx, ws, busq.EventsOptions{
		Filter:         cmd.String("filter"),
		ConfigGlob:     settings.SubscriptionsGlob,
		Exclude:        settings.ExcludeGlob,
		MaxConfigFiles: settings.MaxConfigFiles,
		Logger:         appLogger(cmd),
	})
	if err != nil {
		return err
	}

	return out.Write(infos)
}
