package grpcclient

import (
	"os"

	"github.com/inovacc/routeguided/internal/grpcserver"
)

// DiscoverServerAddress determines the server address to connect to.
// Priority:
// 1. ROUTEGUIDED_SERVER environment variable
// 2. server.json written by a running server
// 3. Default: localhost:50051
func DiscoverServerAddress() string {
	if addr := os.Getenv("ROUTEGUIDED_SERVER"); addr != "" {
		return addr
	}

	if info := grpcserver.IsServerRunning(); info != nil {
		return info.Address
	}

	return "localhost:50051"
}
