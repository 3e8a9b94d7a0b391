package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"intersection-benchmark/internal/api"
	"intersection-benchmark/internal/intersection"
)

// serverConfig is the resolved configuration of the service.
type serverConfig struct {
	Addr              string
	LogLevel          string
	LogJSON           bool
	Warmup            int
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// runFunc starts the service with a resolved configuration.
type runFunc func(ctx context.Context, cfg serverConfig) error

func main() {
	if err := newRootCmd(viper.New(), run).Execute(); err != nil {
		logrus.Errorln(err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper, runFn runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "intersection-server",
		Short:         "Serve the intersection calculation and benchmark API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("error while binding flags: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if err := setupLogging(cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runFn(ctx, cfg)
		},
	}

	cmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("log-json", false, "Emit logs as JSON")
	cmd.Flags().Int("warmup", intersection.DefaultWarmup, "Untimed repetitions before each benchmark")
	cmd.Flags().Duration("shutdown-timeout", 5*time.Second, "Grace period for in-flight requests on shutdown")
	cmd.Flags().Duration("read-header-timeout", 5*time.Second, "Maximum time to read request headers")

	v.SetEnvPrefix("intersection")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func loadConfig(v *viper.Viper) (serverConfig, error) {
	cfg := serverConfig{
		Addr:              v.GetString("addr"),
		LogLevel:          v.GetString("log-level"),
		LogJSON:           v.GetBool("log-json"),
		Warmup:            v.GetInt("warmup"),
		ShutdownTimeout:   v.GetDuration("shutdown-timeout"),
		ReadHeaderTimeout: v.GetDuration("read-header-timeout"),
	}

	if cfg.Addr == "" {
		return serverConfig{}, errors.New("listen address must not be empty")
	}
	if cfg.Warmup < 0 {
		return serverConfig{}, fmt.Errorf("warmup must be >= 0, but was %d", cfg.Warmup)
	}

	return cfg, nil
}

func setupLogging(cfg serverConfig) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}

// run serves the API until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, cfg serverConfig) error {
	log := logrus.StandardLogger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := api.NewServer(api.Config{Warmup: cfg.Warmup}, api.NewMetrics(reg), log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(server, reg, log),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("address", cfg.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}

		log.Info("Server stopped")
		return nil
	})

	return g.Wait()
}
