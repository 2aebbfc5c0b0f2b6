package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/busq/busq/config"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "write a default .busq.yml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Value: ".",
				Usage: "project root",
			},
		},
		Action: runInit,
	}
}

func runInit(_ context.Context, cmd *cli.Command) error {
	path, err := config.Init(cmd.String("path"))
	if err != nil {
		return err
	}

	fmt.Println("created", path)
	return nil
}
