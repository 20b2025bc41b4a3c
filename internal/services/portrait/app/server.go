// Package server wires the portrait runtime and its gRPC and HTTP lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/crewportrait/internal/platform/config"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api/gateway"
	portraitservice "github.com/louisbranch/crewportrait/internal/services/portrait/api/grpc/portrait"
	portraitsqlite "github.com/louisbranch/crewportrait/internal/services/portrait/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath       string `env:"CREWPORTRAIT_PORTRAIT_DB_PATH"`
	GeminiAPIKey string `env:"CREWPORTRAIT_GEMINI_API_KEY"`
	GeminiModel  string `env:"CREWPORTRAIT_GEMINI_MODEL"`
	Seed         int64  `env:"CREWPORTRAIT_SEED"`
}

func (e serverEnv) runtime() RuntimeConfig {
	return RuntimeConfig{Seed: e.Seed, GeminiAPIKey: e.GeminiAPIKey, GeminiModel: e.GeminiModel}
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "crews.db")
	}
	return cfg
}

// Server hosts the portrait gRPC API, the JSON gateway and crew storage.
type Server struct {
	listener     net.Listener
	httpListener net.Listener
	grpcServer   *grpc.Server
	httpServer   *http.Server
	health       *health.Server
	store        *portraitsqlite.Store
}

// New creates a portrait server on the provided ports. A zero HTTP port
// disables the JSON gateway.
func New(port, httpPort int) (*Server, error) {
	httpAddr := ""
	if httpPort > 0 {
		httpAddr = fmt.Sprintf(":%d", httpPort)
	}
	return NewWithAddr(fmt.Sprintf(":%d", port), httpAddr)
}

// NewWithAddr creates a portrait server for the provided addresses.
func NewWithAddr(addr, httpAddr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	var httpListener net.Listener
	if strings.TrimSpace(httpAddr) != "" {
		httpListener, err = net.Listen("tcp", httpAddr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
		}
	}
	closeListeners := func() {
		_ = listener.Close()
		if httpListener != nil {
			_ = httpListener.Close()
		}
	}

	env := loadServerEnv()
	store, err := openCrewStore(env.DBPath)
	if err != nil {
		closeListeners()
		return nil, err
	}
	apiService, err := NewAPIService(env.runtime(), store)
	if err != nil {
		closeListeners()
		_ = store.Close()
		return nil, err
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	portraitservice.Register(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(portraitservice.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	var httpServer *http.Server
	if httpListener != nil {
		httpServer = &http.Server{
			Handler:           gateway.NewHandler(apiService),
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}

	return &Server{
		listener:     listener,
		httpListener: httpListener,
		grpcServer:   grpcServer,
		httpServer:   httpServer,
		health:       healthServer,
		store:        store,
	}, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// HTTPAddr returns the gateway listener address, or "" when disabled.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// Run creates and serves a portrait server until context cancellation.
func Run(ctx context.Context, port, httpPort int) error {
	server, err := New(port, httpPort)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the gRPC server and gateway until context cancellation or
// until either of them fails.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	serveErr := make(chan error, 2)
	pending := 1
	log.Printf("portrait server listening at %v", s.listener.Addr())
	go func() {
		err := s.grpcServer.Serve(s.listener)
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			err = fmt.Errorf("serve gRPC: %w", err)
		} else {
			err = nil
		}
		serveErr <- err
	}()
	if s.httpServer != nil {
		pending++
		log.Printf("portrait gateway listening at %v", s.httpListener.Addr())
		go func() {
			err := s.httpServer.Serve(s.httpListener)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				err = fmt.Errorf("serve http: %w", err)
			} else {
				err = nil
			}
			serveErr <- err
		}()
	}

	var firstErr error
	select {
	case <-ctx.Done():
	case firstErr = <-serveErr:
		pending--
	}

	if s.health != nil {
		s.health.Shutdown()
	}
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown http server: %v", err)
		}
		cancel()
	}
	s.grpcServer.GracefulStop()

	for ; pending > 0; pending-- {
		if err := <-serveErr; firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close releases portrait server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close crew store: %v", err)
		}
	}
}

func openCrewStore(path string) (*portraitsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := portraitsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crew sqlite store: %w", err)
	}
	return store, nil
}
