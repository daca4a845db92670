package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/navkit/internal/config"
	"github.com/vango-dev/navkit/internal/errors"
	"github.com/vango-dev/navkit/pkg/metrics"
	"github.com/vango-dev/navkit/pkg/options"
	"github.com/vango-dev/navkit/pkg/reactive"
	"github.com/vango-dev/navkit/pkg/spaserve"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var (
		dir     string
		addr    string
		project string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built single-page application",
		Long: `Serve the build output with history-mode fallback.

Settings come from navkit.json (found by walking up from --project) and
can be overridden with flags. When --watch is set, changes to the routing
section of navkit.json are applied without a restart.

Examples:
  navkit serve
  navkit serve --dir dist --addr :8080
  navkit serve --watch=false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig(project)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Serve.Dir = dir
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}
			return runServe(cmd, cfg, watch)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to serve (default from navkit.json)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from navkit.json)")
	cmd.Flags().StringVarP(&project, "project", "p", ".", "Directory to search for navkit.json")
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "Reload routing settings when navkit.json changes")

	return cmd
}

// loadProjectConfig loads navkit.json above dir, falling back to defaults
// when there is none.
func loadProjectConfig(dir string) (*config.Config, error) {
	root, err := config.Find(dir)
	if err != nil {
		if errors.HasCode(err, "N201") {
			cfg := config.New()
			cfg.Serve.Dir = filepath.Join(dir, cfg.Serve.Dir)
			return cfg, nil
		}
		return nil, err
	}
	return config.Load(root)
}

func runServe(cmd *cobra.Command, cfg *config.Config, watch bool) error {
	w := cmd.OutOrStdout()
	logger := slog.Default().With("component", "serve")

	if err := cfg.Validate(); err != nil {
		if !errors.HasCode(err, "N001") {
			return err
		}
		warn(w, "%s", err.Error())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := options.New(cfg.Options())
	app, err := newApp(cfg, store, reg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch && cfg.Path() != "" {
		go func() {
			err := config.Watch(ctx, cfg.Path(), func(next *config.Config) {
				if err := next.Validate(); err != nil {
					logger.Warn("reloaded config is invalid", "error", err)
				}
				next.ApplyTo(store)
			})
			if err != nil {
				logger.Error("config watch stopped", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	printBanner(w)
	success(w, "Serving %s on http://%s", cfg.ServeDir(), cfg.Serve.Addr)
	info(w, "mode: %s, base path: %s", cfg.Routing.Mode, cfg.Options().BasePathOr("/"))

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return errors.New("N401").Wrap(err)
		}
		return nil
	case <-ctx.Done():
	}

	info(w, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.New("N401").Wrap(err)
	}
	return nil
}

// app is the serve command's root handler. It mounts metrics next to the
// SPA server and rebuilds the SPA server when the routing options change.
type app struct {
	router chi.Router
	spa    atomic.Pointer[spaserve.Server]
	unsub  reactive.Unsubscribe
}

func newApp(cfg *config.Config, store *options.Store, reg *prometheus.Registry, logger *slog.Logger) (*app, error) {
	m := metrics.New(metrics.WithRegistry(reg))

	build := func(o options.Options) (*spaserve.Server, error) {
		cache := spaserve.CacheControlNone
		if cfg.Serve.Cache == config.CacheProduction {
			cache = spaserve.CacheControlProduction
		}
		return spaserve.New(spaserve.Config{
			Dir:          cfg.ServeDir(),
			Index:        cfg.Serve.Index,
			BasePath:     o.BasePathOr(""),
			CacheControl: cache,
			Headers:      cfg.Serve.Headers,
			Logger:       logger,
			Metrics:      m,
		})
	}

	a := &app{router: chi.NewRouter()}
	srv, err := build(store.Get())
	if err != nil {
		return nil, err
	}
	a.spa.Store(srv)

	first := true
	a.unsub = store.Subscribe(func(o options.Options) {
		if first {
			first = false
			return
		}
		next, err := build(o)
		if err != nil {
			logger.Error("keeping previous server", "error", err)
			return
		}
		a.spa.Store(next)
		logger.Info("routing options applied", "mode", string(o.Mode), "basePath", o.BasePathOr(""))
	})

	if cfg.Serve.MetricsPath != "-" {
		a.router.Handle(cfg.Serve.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	a.router.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.spa.Load().ServeHTTP(w, r)
	}))

	return a, nil
}

// ServeHTTP implements http.Handler.
func (a *app) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Close stops following the options store.
func (a *app) Close() {
	a.unsub()
}
