package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
)

func findCommand() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "jump to the subscription entry for an event",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "event",
				Aliases: []string{"e"},
				Usage:   "event name to look for",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "derive the event from this source file instead",
			},
			&cli.IntFlag{
				Name:    "line",
				Aliases: []string{"l"},
				Usage:   "1-based call-site line, used with --file",
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
		Action: runFind,
	}
}

func runFind(ctx context.Context, cmd *cli.Command) error {
	ws, settings, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	logger := appLogger(cmd)
	out := newWriter(cmd)

	event := cmd.String("event")
	if event == "" {
		if cmd.String("file") == "" {
			return errors.New("--event or --file is required")
		}
		resolved, err := busq.Resolve(ctx, ws, busq.ResolveOptions{
			File:   cmd.String("file"),
			Line:   cmd.Int("line"),
			Logger: logger,
		})
		if err != nil {
			return err
		}
		if resolved == nil {
			out.Notef("no bus event at %s:%d", cmd.String("file"), cmd.Int("line"))
			return nil
		}
		event = resolved.Event
	}

	match, err := busq.FindEntry(ctx, ws, busq.FindOptions{
		Event:          event,
		ConfigGlob:     settings.SubscriptionsGlob,
		Exclude:        settings.ExcludeGlob,
		MaxConfigFiles: settings.MaxConfigFiles,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	if match == nil {
		out.Notef("%s is not subscribed in any config file", event)
		return nil
	}

	return out.Write(match)
}
