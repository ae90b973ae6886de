package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/moehq/moe/internal/api"
	"github.com/moehq/moe/internal/config"
	"github.com/moehq/moe/internal/logger"
	"github.com/moehq/moe/internal/optimal"
)

var (
	serveHost string
	servePort string
)

const pingTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MOE web service",
	Long: `Start the MOE web service.

Registers the route table, serves static assets, and, when mongodb is
enabled in the configuration, opens the shared connection and binds a
database handle onto every incoming request.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "", "Host to bind to (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	path := configPath()
	if !config.Exists(path) {
		return fmt.Errorf("configuration file not found at %s. Run 'moe init' to create one", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	logger.Init(logger.ParseLogLevel(cfg.Log.Level), os.Stdout)

	server, err := api.NewServer(cfg, optimal.Unimplemented{})
	if err != nil {
		return fmt.Errorf("failed to assemble server: %w", err)
	}

	if conn := server.Conn(); conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err := conn.Ping(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("mongodb ping failed: %w", err)
		}
		logger.Info("mongodb connection established (%s)", cfg.MongoDB.Database)

		healthCheck := cron.New()
		if _, err := healthCheck.AddFunc("@every 30s", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := conn.Ping(ctx); err != nil {
				logger.Warning("mongodb health check failed: %v", err)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule health check: %w", err)
		}
		healthCheck.Start()
		defer healthCheck.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			conn.Disconnect(ctx)
			os.Exit(0)
		}()
	}

	addr := cfg.Server.Address()
	logger.Info("listening on http://%s", addr)
	return server.Run(addr)
}
