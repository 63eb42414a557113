package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/conf-keeper/internal/cli"
	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := logger.NewCLILogger("conf", os.Stderr, zerolog.WarnLevel)

	cfg, err := config.GetCLIConfig()
	if err != nil {
		return err
	}

	return cli.NewFrontend(*cfg, os.Stdout, log).Run(ctx, os.Args[1:])
}
