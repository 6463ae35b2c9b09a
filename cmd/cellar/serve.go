package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/cellar"
	httpAdapter "github.com/aretw0/cellar/internal/adapters/http"
	"github.com/aretw0/cellar/internal/config"
	"github.com/aretw0/cellar/internal/logging"
	redisadapter "github.com/aretw0/cellar/pkg/adapters/redis"
	"github.com/aretw0/cellar/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cellar HTTP server",
	Long:  `Starts a cellar store and exposes it over the JSON envelope protocol on PUT /command, with /healthz and /metrics alongside.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		level := slog.LevelInfo
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		kv, err := buildClient(cfg)
		if err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(kv, prometheus.NewRegistry(),
			httpAdapter.WithLogger(logger))

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("cellar server listening", "addr", srv.Addr, "driver", cfg.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("cellar server stopped")
		}
		return nil
	},
}

// loadConfig reads the config file when given and lets flags override it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("listen") {
		cfg.Listen, _ = cmd.Flags().GetString("listen")
	}
	if cmd.Flags().Changed("driver") {
		cfg.Driver, _ = cmd.Flags().GetString("driver")
	}
	if cmd.Flags().Changed("path") {
		path, _ := cmd.Flags().GetString("path")
		cfg.Options["path"] = path
	}
	if cmd.Flags().Changed("capacity") {
		capacity, _ := cmd.Flags().GetInt("capacity")
		cfg.Options["capacity"] = capacity
	}
	return cfg, nil
}

// buildClient constructs the store the server fronts.
func buildClient(cfg *config.Config) (ports.Client, error) {
	switch cfg.Driver {
	case config.DriverMem:
		return cellar.Mem(), nil

	case config.DriverFile:
		var opts config.FileOptions
		if err := cfg.DecodeOptions(&opts); err != nil {
			return nil, err
		}
		return cellar.File(opts.Path)

	case config.DriverLRU:
		opts := config.CacheOptions{Capacity: 1024}
		if err := cfg.DecodeOptions(&opts); err != nil {
			return nil, err
		}
		return cellar.LRU(opts.Capacity), nil

	case config.DriverTiered:
		opts := config.TieredOptions{Capacity: 1024}
		if err := cfg.DecodeOptions(&opts); err != nil {
			return nil, err
		}
		return cellar.Tiered(opts.Path, opts.Capacity)

	case config.DriverRedis:
		var opts config.RedisOptions
		if err := cfg.DecodeOptions(&opts); err != nil {
			return nil, err
		}
		var redisOpts []redisadapter.Option
		if opts.Prefix != "" {
			redisOpts = append(redisOpts, redisadapter.WithPrefix(opts.Prefix))
		}
		if opts.TTL > 0 {
			redisOpts = append(redisOpts, redisadapter.WithTTL(opts.TTL))
		}
		return cellar.Redis(opts.Addr, opts.Password, opts.DB, redisOpts...), nil

	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
	serveCmd.Flags().String("driver", config.DriverLRU, "Storage driver (mem|file|lru|tiered|redis)")
	serveCmd.Flags().String("path", "", "Data directory for the file and tiered drivers")
	serveCmd.Flags().Int("capacity", 1024, "Cache capacity for the lru and tiered drivers")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}
