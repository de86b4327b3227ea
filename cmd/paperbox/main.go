package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/paperbox/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	err := c.Run(ctx, os.Args[1:])
	cli.PrintError(os.Stderr, err)

	cancel()
	os.Exit(cli.ExitCode(err))
}
