package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tdnguyen/luxauto/internal/buildinfo"
	"github.com/tdnguyen/luxauto/internal/cli"
	"github.com/tdnguyen/luxauto/internal/config"
	"github.com/tdnguyen/luxauto/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
