package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/crewportrait/internal/platform/discovery"
	"github.com/louisbranch/crewportrait/internal/platform/timeouts"
	portraitservice "github.com/louisbranch/crewportrait/internal/services/portrait/api/grpc/portrait"
	server "github.com/louisbranch/crewportrait/internal/services/portrait/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// PortraitAddr is a remote portrait gRPC server. Empty runs the portrait
	// API in process.
	PortraitAddr string
	Transport    TransportKind
	HTTPAddr     string
	// Locale selects the language of error messages from a remote server.
	Locale string
	// Runtime configures the in-process portrait API.
	Runtime server.RuntimeConfig
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	mcpServer, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	return mcpServer.serveWithTransport(ctx, transport)
}

// runWithHTTPTransport serves the same tools over streamable HTTP.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	httpAddr := discovery.OrDefaultHTTPAddr(cfg.HTTPAddr, discovery.ServiceMCP)

	mcpServer, err := open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := mcpServer.Close(); err != nil {
			log.Printf("close portrait connection: %v", err)
		}
	}()

	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go mcpServer.monitorHealth(healthCtx)

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer.mcpServer
	}, nil)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	log.Printf("mcp listening on %s", httpAddr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// open builds the MCP server over the portrait API selected by cfg.
func open(ctx context.Context, cfg Config) (*Server, error) {
	addr := strings.TrimSpace(cfg.PortraitAddr)
	if addr == "" {
		svc, err := server.NewAPIService(cfg.Runtime, nil)
		if err != nil {
			return nil, err
		}
		return newServer(svc, nil)
	}

	client, conn, err := portraitservice.Dial(ctx, addr, cfg.Locale)
	if err != nil {
		return nil, err
	}
	mcpServer, err := newServer(client, conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return mcpServer, nil
}

// serveWithTransport runs the MCP server until the transport closes or the
// context ends, then releases the portrait connection.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// monitorHealth logs when a remote portrait server stops serving. It keeps
// the MCP transport up so individual tool calls report the failure.
func (s *Server) monitorHealth(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.conn == nil {
				continue
			}
			healthClient := grpc_health_v1.NewHealthClient(s.conn)
			callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: portraitservice.ServiceName})
			cancel()

			if err != nil {
				log.Printf("portrait health check failed: %v", err)
			} else if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
				log.Printf("portrait health check status: %s", response.GetStatus().String())
			}
		}
	}
}
