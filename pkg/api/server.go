// Package api exposes the Access-layer codec over an HTTP REST API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pion/logging"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/capture"
)

// ErrNoCodec is returned by NewServer when no codec is configured.
var ErrNoCodec = errors.New("api: codec is required")

// Config holds server configuration.
type Config struct {
	// Addr is the listen address. Default: ":8080".
	Addr string

	EnableCORS   bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Codec decodes and encodes PDUs. Required.
	Codec *access.Codec

	// Store records decoded frames and serves /api/v1/frames. Optional.
	Store *capture.Store

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// DefaultConfig returns default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:         ":8080",
		EnableCORS:   true,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	codec      *access.Codec
	store      *capture.Store
	router     *gin.Engine
	httpServer *http.Server
	log        logging.LeveledLogger
}

// NewServer creates a server. A nil config uses DefaultConfig, which has no
// codec and therefore fails.
func NewServer(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Codec == nil {
		return nil, ErrNoCodec
	}

	cfg := *config
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config: cfg,
		codec:  cfg.Codec,
		store:  cfg.Store,
		router: gin.New(),
	}
	if cfg.LoggerFactory != nil {
		s.log = cfg.LoggerFactory.NewLogger("api")
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	if s.config.EnableCORS {
		s.router.Use(CORSMiddleware())
	}
	s.router.Use(LoggingMiddleware(s.log))
	s.router.Use(gin.Recovery())
}

func (s *Server) setupRoutes() {
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/decode", s.handleDecode)
		v1.POST("/encode", s.handleEncode)

		opcodes := v1.Group("/opcodes")
		{
			opcodes.GET("", s.handleOpcodes)
			opcodes.GET("/:opcode/schema", s.handleSchema)
		}

		v1.GET("/frames", s.handleFrames)
	}

	s.router.GET("/health", s.handleHealth)
}

// Start serves until ctx is done and then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if s.log != nil {
			s.log.Infof("HTTP API listening on %s", s.config.Addr)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("api: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if s.log != nil {
		s.log.Info("shutting down HTTP API")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
