// Command syncctl drives a running syncd over its control API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/worldsync/internal/adapter"
	"github.com/MKhiriev/worldsync/internal/client"
	"github.com/MKhiriev/worldsync/internal/config"
	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	fs := pflag.NewFlagSet("syncctl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", cfg.Adapter.HTTPAddress, "control API address")
	fs.DurationVarP(&cfg.Adapter.RequestTimeout, "timeout", "t", cfg.Adapter.RequestTimeout, "control API request timeout")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err = fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	log := logger.NewClientLogger("syncctl", cfg.LogLevel)

	controlAdapter, err := adapter.NewHTTPControlAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create control adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	err = client.NewApp(controlAdapter, build, os.Stdout, log).Run(ctx, fs.Args())
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUsage), errors.Is(err, client.ErrUnknownCommand):
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
