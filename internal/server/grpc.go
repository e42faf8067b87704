package server

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name of the roll API.
const ServiceName = "relic.gacha.v1.Roller"

// HealthServer exposes grpc.health.v1 so orchestrators can probe the process
// without going through HTTP.
type HealthServer struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

// NewHealthServer listens on port (0 picks a free one).
func NewHealthServer(port int) (*HealthServer, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("grpc listen: %w", err)
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{grpc: gs, health: hs, lis: lis}, nil
}

// Addr is the bound listen address.
func (s *HealthServer) Addr() string { return s.lis.Addr().String() }

// SetServing flips the overall and service status.
func (s *HealthServer) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Serve blocks until Stop.
func (s *HealthServer) Serve() error {
	slog.Default().Info("gRPC health server starting", "addr", s.Addr())
	return s.grpc.Serve(s.lis)
}

// Stop marks the service down and drains connections.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
