package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/patrimoine/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := newApp(cfg).RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(cfg config.Config) *cli.App {
	return &cli.App{
		Name:  "patrimoine",
		Usage: "personal wealth dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "holdings",
				Usage: "YAML holdings file (built-in registry when empty)",
				Value: cfg.HoldingsFile,
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "locale used to format amounts",
				Value: cfg.Locale,
			},
			&cli.StringFlag{
				Name:  "rates-url",
				Usage: "exchange-rate endpoint",
				Value: cfg.RatesURL,
			},
		},
		Commands: []*cli.Command{
			serveCommand(cfg),
			showCommand(cfg),
			exportCommand(cfg),
		},
	}
}
