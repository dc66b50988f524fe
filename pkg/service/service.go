package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/versiclehq/versicle/pkg/cipher"
	"github.com/versiclehq/versicle/pkg/config"
	"github.com/versiclehq/versicle/pkg/wire"
)

// Service serves the codec over HTTP.
type Service struct {
	cfg     *config.Config
	logger  *slog.Logger
	codec   atomic.Pointer[cipher.Codec]
	format  wire.Format
	metrics *Metrics
	limiter *RateLimiter
	watcher *config.TableWatcher
	server  *http.Server

	mu      sync.Mutex
	running bool
}

// NewService builds the service: loads the table, constructs the codec, and
// wires the HTTP handlers. It does not start listening; call Start.
func NewService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table, err := config.LoadTable(cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}

	s := &Service{
		cfg:    cfg,
		logger: logger,
		format: wire.Format{
			LetterSep: cfg.Wire.LetterSep,
			WordSep:   cfg.Wire.WordSep,
		},
		metrics: NewMetrics(),
		limiter: NewRateLimiter(map[string]RateLimiterConfig{
			"encode": {RequestsPerSecond: cfg.Server.RequestsPerSecond, BurstSize: cfg.Server.BurstSize},
			"decode": {RequestsPerSecond: cfg.Server.RequestsPerSecond, BurstSize: cfg.Server.BurstSize},
		}),
	}
	s.codec.Store(cipher.NewCodec(table))
	s.metrics.SetTableSize(table.Len())

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Handler: otelhttp.NewHandler(mux, "versicle"),
	}

	return s, nil
}

// Codec returns the active codec snapshot.
func (s *Service) Codec() *cipher.Codec {
	return s.codec.Load()
}

// Metrics exposes the service metrics, mainly for tests.
func (s *Service) Metrics() *Metrics {
	return s.metrics
}

// ReloadTable reloads the table from the given path and swaps the active
// codec. On failure the previous codec keeps serving.
func (s *Service) ReloadTable(path string) error {
	tc := s.cfg.Table
	tc.File = path

	table, err := config.LoadTable(tc)
	if err != nil {
		s.metrics.RecordTableReload(false)
		return fmt.Errorf("failed to reload table: %w", err)
	}

	s.codec.Store(cipher.NewCodec(table))
	s.metrics.RecordTableReload(true)
	s.metrics.SetTableSize(table.Len())
	s.logger.Info("Table reloaded", "path", path, "symbols", table.Len())
	return nil
}

// Start begins listening on addr and, when configured, starts the table
// watcher. It blocks until the server stops.
func (s *Service) Start(addr string) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("service already running")
	}
	s.running = true
	s.mu.Unlock()

	s.server.Addr = addr

	if s.cfg.Table.Watch && s.cfg.Table.File != "" {
		watcher, err := config.NewTableWatcher(s.cfg.Table.File, s.ReloadTable, s.logger)
		if err != nil {
			return fmt.Errorf("failed to create table watcher: %w", err)
		}
		if err := watcher.Start(context.Background()); err != nil {
			s.logger.Warn("Failed to start table watcher", "error", err)
		} else {
			s.watcher = watcher
		}
	}

	s.logger.Info("Starting service", "addr", addr)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the service.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false

	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			s.logger.Warn("Failed to stop table watcher", "error", err)
		}
		s.watcher = nil
	}

	return s.server.Shutdown(ctx)
}

// Handler returns the service's HTTP handler, mainly for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

// registerRoutes sets up the HTTP handlers
func (s *Service) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.Handle("/v1/encode", s.instrument("encode", s.handleEncode))
	mux.Handle("/v1/decode", s.instrument("decode", s.handleDecode))
	mux.Handle("/v1/table", s.instrument("table", s.handleTable))

	mux.Handle("/metrics", s.metrics.Handler())
}
