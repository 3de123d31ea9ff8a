package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/patrimoine/internal/api"
	"github.com/mtlprog/patrimoine/internal/config"
	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/export"
	"github.com/mtlprog/patrimoine/internal/format"
	"github.com/mtlprog/patrimoine/internal/holdings"
	"github.com/mtlprog/patrimoine/internal/rates"
	"github.com/mtlprog/patrimoine/internal/render"
)

// session is what every command needs before it can build a dashboard.
type session struct {
	holdings  domain.Holdings
	formatter *format.Formatter
	provider  *rates.Provider
}

func newSession(c *cli.Context, cfg config.Config) (session, error) {
	h, err := holdings.Load(c.String("holdings"))
	if err != nil {
		return session{}, err
	}
	f, err := format.New(c.String("locale"))
	if err != nil {
		return session{}, err
	}
	client := rates.NewClient(c.String("rates-url"), cfg.RatesTimeout)
	return session{
		holdings:  h,
		formatter: f,
		provider:  rates.NewProvider(client),
	}, nil
}

func baseFlag(cfg config.Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "base",
		Usage: "display currency (EUR or AED)",
		Value: string(cfg.DefaultBase),
	}
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the dashboard over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Usage: "HTTP port", Value: cfg.HTTPPort},
			baseFlag(cfg),
		},
		Action: func(c *cli.Context) error {
			base, err := dashboard.ParseBase(c.String("base"))
			if err != nil {
				return err
			}
			sess, err := newSession(c, cfg)
			if err != nil {
				return err
			}
			go sess.provider.Load(c.Context)

			handler := api.NewHandler(sess.provider, sess.holdings, sess.formatter, base)
			srv := api.NewServer(c.String("port"), handler)

			serveErr := make(chan error, 1)
			go func() {
				slog.Info("HTTP server listening", "port", c.String("port"), "base", base, "locale", sess.formatter.Locale())
				serveErr <- srv.ListenAndServe()
			}()

			select {
			case err := <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("HTTP server: %w", err)
				}
				return nil
			case <-c.Context.Done():
			}
			slog.Info("Shutting down...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down HTTP server: %w", err)
			}
			slog.Info("Shutdown complete")
			return nil
		},
	}
}

func showCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "print the dashboard to the terminal",
		Flags: []cli.Flag{
			baseFlag(cfg),
			&cli.StringFlag{Name: "tab", Usage: "overview, liquidities or realestate", Value: string(dashboard.TabOverview)},
			&cli.BoolFlag{Name: "edit", Usage: "show the edit-mode banner"},
			&cli.BoolFlag{Name: "plain", Usage: "print raw markdown"},
			&cli.IntFlag{Name: "width", Usage: "terminal word-wrap width", Value: 100},
		},
		Action: func(c *cli.Context) error {
			s, err := stateFromFlags(c)
			if err != nil {
				return err
			}
			sess, err := newSession(c, cfg)
			if err != nil {
				return err
			}
			res := sess.provider.Load(c.Context)
			v := dashboard.Build(s.Loaded(), sess.holdings, res.Table)

			var out string
			if c.Bool("plain") {
				out, err = render.Markdown(v, sess.formatter)
			} else {
				out, err = render.Terminal(v, sess.formatter, c.Int("width"))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.App.Writer, out)
			return err
		},
	}
}

func exportCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write the dashboard to an Excel workbook",
		Flags: []cli.Flag{
			baseFlag(cfg),
			&cli.StringFlag{Name: "out", Usage: "output file", Value: "patrimoine.xlsx"},
		},
		Action: func(c *cli.Context) error {
			base, err := dashboard.ParseBase(c.String("base"))
			if err != nil {
				return err
			}
			sess, err := newSession(c, cfg)
			if err != nil {
				return err
			}
			res := sess.provider.Load(c.Context)

			path := c.String("out")
			out, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			s := dashboard.Initial(base).Loaded()
			if err := export.WriteWorkbook(out, s, sess.holdings, res.Table); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", path, err)
			}
			slog.Info("Export: workbook written", "path", path, "base", base, "fallback", res.Fallback)
			return nil
		},
	}
}

func stateFromFlags(c *cli.Context) (dashboard.State, error) {
	base, err := dashboard.ParseBase(c.String("base"))
	if err != nil {
		return dashboard.State{}, err
	}
	tab, err := dashboard.ParseTab(c.String("tab"))
	if err != nil {
		return dashboard.State{}, err
	}
	s := dashboard.Initial(base).WithTab(tab)
	if c.Bool("edit") {
		s = s.ToggleEdit()
	}
	return s, nil
}
