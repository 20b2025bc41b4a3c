package portrait

import (
	"context"
	"math/rand"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/crewportrait/internal/portrait/appearance"
	"github.com/louisbranch/crewportrait/internal/portrait/catalog"
	"github.com/louisbranch/crewportrait/internal/services/portrait/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func startHealthyPortraitServer(t *testing.T, status grpc_health_v1.HealthCheckResponse_ServingStatus) string {
	t.Helper()

	c := catalog.Embedded()
	svc := api.NewService(c, appearance.NewGenerator(c, rand.New(rand.NewSource(3)), appearance.DefaultPolicy()))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	Register(grpcServer, svc)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(ServiceName, status)

	go func() {
		_ = grpcServer.Serve(listener)
	}()
	t.Cleanup(func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	})
	return listener.Addr().String()
}

func TestDial(t *testing.T) {
	addr := startHealthyPortraitServer(t, grpc_health_v1.HealthCheckResponse_SERVING)

	client, conn, err := Dial(context.Background(), addr, "en-US")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	layout, err := client.GetPostcardLayout(context.Background(), api.GetPostcardLayoutRequest{Color: "orange", Count: 2})
	if err != nil {
		t.Fatalf("postcard layout: %v", err)
	}
	if len(layout.Slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(layout.Slots))
	}
}

func TestDialNotServing(t *testing.T) {
	addr := startHealthyPortraitServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, _, err := Dial(ctx, addr, "")
	if err == nil {
		t.Fatal("expected dial to fail while the server is not serving")
	}
	if !strings.Contains(err.Error(), addr) {
		t.Fatalf("error %q does not name the address", err)
	}
}
