package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/urfave/cli/v3"
)

//go:embed example_config.txt
var exampleConfigText string

func exampleConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "example-config",
		Usage: "show an annotated subscription config",
		Description: "Print an example event_bus_subscriptions.yml, the Ruby that\n" +
			"broadcasts into it, and the busq calls that tie them together.\n" +
			"Output is designed to be grep-friendly.\n\n" +
			"Examples:\n" +
			"  busq example-config                  # show the whole example\n" +
			"  busq example-config | grep handler   # just the handler lines",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Print(exampleConfigText)
			return nil
		},
	}
}
