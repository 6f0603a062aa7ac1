package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	kbhttp "github.com/dcsstech/kbportal/http"
)

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Server *kbhttp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" default:"1" help:"Start the portal server"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string  `default:":8787" help:"HTTP listen address"`
	ExplainRPS float64 `name:"explain-rps" default:"1" help:"Rate limit for grounded explanation calls (requests per second)"`
}

// Run starts the HTTP server and blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           deps.Server,
		ReadHeaderTimeout: 10 * time.Second,
		// Chat and grounded-search calls can legitimately take a while.
		WriteTimeout: 2 * time.Minute,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		deps.Logger.Info("portal listening", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
