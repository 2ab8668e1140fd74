package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"service-orders/internal/config"
	"service-orders/internal/logx"
)

// Runner runs the HTTP servers
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP servers using the provided DI container and blocks until shutdown.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	if errors.Is(err, context.Canceled) {
		logger.Info("shutdown requested, exiting")
		return
	}
	logger.Error("run error", logx.Err(err))
	r.exit(1)
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Config *config.Config
	Logger logx.Logger
	Main   *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

// appRun serves every server until ctx is done or one of them fails, then shuts all of them down.
func appRun(in runIn) error {
	servers := []*http.Server{in.Main}
	if in.Pprof != nil {
		servers = append(servers, in.Pprof)
	}

	g, ctx := errgroup.WithContext(in.Ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			in.Logger.Info("http server listening", logx.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		in.Logger.Info("shutting down service-orders")
		for _, srv := range servers {
			gracefulShutdown(srv, in.Logger, in.Config.ShutdownTimeout)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return in.Ctx.Err()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}
