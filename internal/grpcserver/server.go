package grpcserver

import (
	"log/slog"
	"time"

	"github.com/inovacc/routeguided/internal/catalog"
	v1 "github.com/inovacc/routeguided/pkg/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServerWithHealth wraps gRPC server and health service for lifecycle management
type ServerWithHealth struct {
	GRPCServer   *grpc.Server
	HealthServer *health.Server
}

// NewServer creates a new gRPC server with all interceptors, health
// service, and the RouteGuide service registered over the given catalog.
func NewServer(cat *catalog.Catalog, logger *slog.Logger) *ServerWithHealth {
	// Server options
	opts := []grpc.ServerOption{
		// Chain unary interceptors in order: recovery -> logging -> timeout
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(logger),
			loggingInterceptor(logger),
			timeoutInterceptor(30*time.Second),
		),
		// Streams get recovery and logging only; RouteChat has no deadline
		grpc.ChainStreamInterceptor(
			recoveryStreamInterceptor(logger),
			loggingStreamInterceptor(logger),
		),
		// Connection timeout
		grpc.ConnectionTimeout(10 * time.Second),
		// Keepalive settings
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 15 * time.Minute,
			Time:              5 * time.Minute,
			Timeout:           20 * time.Second,
		}),
		// Message size limits (4MB)
		grpc.MaxRecvMsgSize(4 * 1024 * 1024),
		grpc.MaxSendMsgSize(4 * 1024 * 1024),
	}

	// Create gRPC server
	srv := grpc.NewServer(opts...)

	// Register health service
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Register service implementation
	svc := NewService(cat, logger)
	v1.RegisterRouteGuideServer(srv, svc)

	return &ServerWithHealth{
		GRPCServer:   srv,
		HealthServer: healthServer,
	}
}
