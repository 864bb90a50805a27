package application

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/homestead-calculator/internal/api"
	"github.com/eugenenazirov/homestead-calculator/internal/calculator"
	"github.com/eugenenazirov/homestead-calculator/internal/catalog"
	"github.com/eugenenazirov/homestead-calculator/internal/config"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	catalog    catalog.Catalog
	calculator calculator.Calculator
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) *App {
	cat := catalog.National()
	calc := calculator.New(cat)
	handler := api.NewHandler(calc, cat,
		api.WithLogger(logger),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
	)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		catalog:    cat,
		calculator: calc,
		handler:    handler,
		router:     router,
		logger:     logger,
		server:     NewServer(cfg, router),
	}
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening",
			zap.String("addr", a.server.Addr),
			zap.Strings("animals", a.catalog.IDs()),
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}
