// Package api implements app.Runner for the operator server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/docsign-bridge/pkg/app/http"
	"github.com/chainsafe/docsign-bridge/pkg/bridge"
	"github.com/chainsafe/docsign-bridge/pkg/config"
)

// Server holds cfg to init the operator server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new operator server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting document registry bridge",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.Int64("chain_id", cfg.Ethereum.ChainID),
		zap.String("network", cfg.Ethereum.NetworkName),
		zap.String("contract", cfg.Ethereum.ContractAddress),
	)
	if cfg.Ethereum.RPCURL == "" {
		logger.Warn("No wallet provider configured, every action will raise an alert")
	}

	ctrl := bridge.New(&cfg.Ethereum, logger)

	return apphttp.ServeAndWait(ctx, s.setupRouter(ctrl, logger), logger, &cfg.Server)
}

func (s *Server) setupRouter(ctrl *bridge.Controller, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	bridge.RegisterRoutes(r, ctrl, logger)

	return r
}
