package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // served only on ${PPROF_PORT}
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"shop/internal/handlers/rest/health_get"
	"shop/internal/handlers/rest/healthcheck_head"
	"shop/internal/pkg/config"
	"shop/internal/pkg/middlewares/graceful_shutdown"
	"shop/internal/pkg/middlewares/metrics"
	"shop/internal/pkg/middlewares/rate_limiter"
	"shop/internal/pkg/middlewares/request_id"
	"shop/internal/pkg/middlewares/timeout"
	"shop/pkg/logger"
)

const (
	shutdownPeriod      = 15 * time.Second
	shutdownHardPeriod  = 3 * time.Second
	readinessDrainDelay = 5 * time.Second
)

// Server is the HTTP front of one service: the shared middleware chain,
// /metrics, /health and /healthcheck, plus whatever routes the service adds.
type Server struct {
	log  logger.Logger
	cfg  config.HTTPServer
	deps []healthcheck_head.Pinger

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	isShuttingDown atomic.Bool
	ongoingCtx     context.Context
	stopOngoing    context.CancelFunc

	router     *mux.Router
	drainDelay time.Duration
}

// New builds the router. dependencies are pinged by HEAD /healthcheck.
func New(log logger.Logger, cfg config.HTTPServer, dependencies ...healthcheck_head.Pinger) *Server {
	// ongoingCtx is not cancelled by SIGTERM, only after Shutdown so that
	// in-flight requests can finish.
	ongoingCtx, stopOngoing := context.WithCancel(context.Background())

	s := &Server{
		log:         log.With(),
		cfg:         cfg,
		deps:        dependencies,
		ongoingCtx:  ongoingCtx,
		stopOngoing: stopOngoing,
		drainDelay:  readinessDrainDelay,
	}
	s.router = s.initRouter()

	return s
}

// Router is where the service registers its own handlers.
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) initRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(&s.isShuttingDown, s.ongoingCtx))
	router.Use(request_id.Middleware())
	router.Use(timeout.Middleware(s.cfg.RequestTimeout))
	router.Use(metrics.Middleware(s.log))
	router.Use(rate_limiter.Middleware(
		s.log,
		s.cfg.RateLimiterQPS,
		rate_limiter.NewLimiter(s.cfg.RateLimiterQPS, s.cfg.RateLimiterBurst),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(&s.isShuttingDown, s.deps...)).Methods(http.MethodHead)
	router.Handle("/health", health_get.New(s.log, s.cfg.ServiceName)).Methods(http.MethodGet)

	return router
}

func (s *Server) initPprofRouter() http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(&s.isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

// Run serves until ctx is done or a listener fails, then drains and shuts
// down gracefully.
//
//nolint:contextcheck // shutdown deliberately derives from context.Background()
func (s *Server) Run(ctx context.Context) error {
	defer s.stopOngoing()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.Port),
		Handler: s.router,
		BaseContext: func(_ net.Listener) context.Context {
			return s.ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		s.log.Info("server starting",
			logger.NewField("port", s.cfg.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if s.cfg.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", s.cfg.PprofPort),
			Handler: s.initPprofRouter(),
			BaseContext: func(_ net.Listener) context.Context {
				return s.ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			s.log.Info("pprof server starting",
				logger.NewField("port", s.cfg.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	s.isShuttingDown.Store(true)

	time.Sleep(s.drainDelay)
	s.log.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err := server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			s.log.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		}
	}

	s.stopOngoing()
	if err != nil || pprofErr != nil {
		s.log.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	s.log.Info("server stopped")
	return nil
}
