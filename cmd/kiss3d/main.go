package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"kiss3d/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewCmdRoot(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatalf("ERROR: %v", err)
	}
}
