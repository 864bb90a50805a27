package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/homestead-calculator/internal/application"
	"github.com/eugenenazirov/homestead-calculator/internal/config"
	"github.com/eugenenazirov/homestead-calculator/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("homestead-calculator", "Homesteading Calculator - land, feed, water and yield estimates for raising animals")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	serveCmd := kingpinApp.Command("serve", "Run the HTTP API").Default()
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	calculateCmd := kingpinApp.Command("calculate", "Print the estimate for the given animals as JSON")
	animals := calculateCmd.Arg("animals", "animal=count pairs, e.g. chicken=10 goat_dairy=2").Required().StringMap()

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	if command == calculateCmd.FullCommand() {
		if err := runCalculate(os.Stdout, *animals); err != nil {
			kingpinApp.Fatalf("%v", err)
		}
		return
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *port != "" {
		overrides.Port = port
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)
	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
