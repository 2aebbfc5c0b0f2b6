package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/busq"
	"github.com/busq/busq/types"
)

func handlerFileCommand() *cli.Command {
	return &cli.Command{
		Name:  "handler-file",
		Usage: "resolve a handler class to its source file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "handler",
				Usage:    "handler class identifier (required)",
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
		Action: runHandlerFile,
	}
}

func runHandlerFile(ctx context.Context, cmd *cli.Command) error {
	ws, settings, err := projectWorkspace(cmd)
	if err != nil {
		return err
	}
	out := newWriter(cmd)

	handler := cmd.String("handler")
	file, err := busq.HandlerFile(ctx, ws, busq.HandlerFileOptions{
		Handler:       handler,
		Exclude:       settings.ExcludeGlob,
		MaxCandidates: settings.MaxHandlerCandidates,
		Logger:        appLogger(cmd),
	})
	if err != nil {
		return err
	}
	if file == "" {
		out.Notef("no source file for %s", handler)
		return nil
	}

	return out.Write(types.HandlerLocation{Handler: handler, File: file})
}
