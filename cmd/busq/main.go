package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/config"
	"github.com/busq/busq/logging"
	"github.com/busq/busq/output"
	"github.com/busq/busq/workspace"
)

func main() {
	app := &cli.Command{
		Name:  "busq",
		Usage: "event bus navigator (like jq for your subscriptions)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "text or json",
			},
		},
		Commands: []*cli.Command{
			resolveCommand(),
			findCommand(),
			handlersCommand(),
			handlerFileCommand(),
			eventsCommand(),
			callsitesCommand(),
			initCommand(),
			exampleConfigCommand(),
			skillCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		output.WriteError(err)
		os.Exit(1)
	}
}

// appLogger builds the process logger from the root flags. Logs go to
// stderr; stdout carries results.
func appLogger(cmd *cli.Command) *slog.Logger {
	return logging.New(logging.Config{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
	})
}

// projectWorkspace builds the OS workspace and settings for a command
// from its --path and --config flags.
func projectWorkspace(cmd *cli.Command) (*workspace.OS, config.Settings, error) {
	root := cmd.String("path")
	settings, err := config.Load(cmd.String("config"), root)
	if err != nil {
		return nil, config.Settings{}, err
	}
	return workspace.NewOS(workspace.Config{Root: root}), settings, nil
}

// newWriter builds the result writer for a command.
func newWriter(cmd *cli.Command) *output.Writer {
	return output.New(output.Config{Compact: cmd.Bool("compact")})
}
