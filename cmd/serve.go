package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inovacc/routeguided/internal/application"
	"github.com/inovacc/routeguided/internal/catalog"
	"github.com/inovacc/routeguided/internal/config"
	"github.com/inovacc/routeguided/internal/grpcserver"
	"github.com/inovacc/routeguided/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ErrMissingDB indicates no feature database path was provided
var ErrMissingDB = errors.New("no feature database: pass --db or set db_path in the config file")

var (
	serveDBPath     string
	servePort       int
	serveConfigPath string
	serveLogLevel   string
	serveLogJSON    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the RouteGuide gRPC server",
	Long: `Start the RouteGuide gRPC server on the configured port.

The feature database is a JSON file with an array of
{"location": {"latitude", "longitude"}, "name"} records; --db is required
unless db_path is set in the config file.

While running, SIGUSR1 or SIGHUP re-reads the log level from the config
file and applies it without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to the JSON feature database")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config file, else 50051)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to routeguided.ini (default in the user config directory)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config file)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON log records instead of text")

	// Accept --database as an alias for --db
	serveCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "database" {
			name = "db"
		}

		return pflag.NormalizedName(name)
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Silent abort if a server is already running
	if grpcserver.IsServerRunning() != nil {
		return nil
	}

	configPath := serveConfigPath
	if configPath == "" {
		if p, err := application.DefaultConfigPath(); err == nil {
			configPath = p
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override file settings
	if servePort == 0 {
		servePort = cfg.Server.Port
	}

	if serveDBPath == "" {
		serveDBPath = cfg.Server.DBPath
	}

	if serveLogLevel == "" {
		serveLogLevel = cfg.Server.LogLevel
	}

	if !cmd.Flags().Changed("log-json") {
		serveLogJSON = cfg.Server.LogJSON
	}

	if serveDBPath == "" {
		return ErrMissingDB
	}

	ctrl, err := logging.New(serveLogLevel, serveLogJSON)
	if err != nil {
		return err
	}

	logger := ctrl.Logger()

	cat, err := catalog.Load(serveDBPath)
	if err != nil {
		return err
	}

	logger.Info("feature database loaded", "path", serveDBPath, "features", cat.Len())

	addr := fmt.Sprintf(":%d", servePort)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	// Write a server info file for the stop, status and client commands
	if err := grpcserver.WriteServerInfo(servePort); err != nil {
		logger.Warn("failed to write server info file", "error", err)
	}

	srvWithHealth := grpcserver.NewServer(cat, logger)

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("server listening", "address", addr)
		serveErr <- srvWithHealth.GRPCServer.Serve(lis)
	}()

	// Reload signals re-read the configured log level; this runs outside
	// the signal context, on its own goroutine, per the level controller
	// contract.
	reload := make(chan os.Signal, 1)
	if sigs := logging.ReloadSignals(); len(sigs) > 0 {
		signal.Notify(reload, sigs...)

		go func() {
			for range reload {
				cfg, err := config.Load(configPath)
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					continue
				}

				if err := ctrl.SetLevel(cfg.Server.LogLevel); err != nil {
					logger.Warn("config reload failed", "error", err)
					continue
				}

				logger.Info("log level changed", "level", cfg.Server.LogLevel)
			}
		}()
	}

	// Wait for a shutdown signal or a serve failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("received shutdown signal")
	case err := <-serveErr:
		grpcserver.RemoveServerInfo()
		return fmt.Errorf("failed to serve: %w", err)
	}

	// Set health status to NOT_SERVING before shutdown
	srvWithHealth.HealthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	// Start graceful stop with timeout
	stopChan := make(chan struct{})

	go func() {
		srvWithHealth.GRPCServer.GracefulStop()
		close(stopChan)
	}()

	// Wait for a graceful stop or force stop after 30 seconds
	select {
	case <-stopChan:
		logger.Info("server stopped gracefully")
	case <-time.After(30 * time.Second):
		logger.Warn("timeout waiting for graceful shutdown, forcing stop")
		srvWithHealth.GRPCServer.Stop()
	}

	// Clean up server info file
	grpcserver.RemoveServerInfo()

	return nil
}
