package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cforge/cforge/internal/buildinfo"
	"github.com/cforge/cforge/internal/client/cli"
	"github.com/cforge/cforge/internal/client/config"
	"github.com/cforge/cforge/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
