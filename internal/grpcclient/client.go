package grpcclient

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/inovacc/routeguided/internal/model"
	v1 "github.com/inovacc/routeguided/pkg/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Client wraps the gRPC connection and exposes the four RouteGuide
// operations over domain types.
type Client struct {
	conn    *grpc.ClientConn
	service v1.RouteGuideClient
	timeout time.Duration
}

// New connects to addr and verifies the server is healthy before
// returning. The connection uses insecure credentials, matching the
// local-only server.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	// Perform health check to trigger connection
	healthClient := healthpb.NewHealthClient(conn)

	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer healthCancel()

	resp, err := healthClient.Check(healthCtx, &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		_ = conn.Close()
		return nil, fmt.Errorf("server at %s is not serving", addr)
	}

	return &Client{
		conn:    conn,
		service: v1.NewRouteGuideClient(conn),
		timeout: 30 * time.Second,
	}, nil
}

// Close closes the gRPC connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}

// GetFeature looks up the feature at a point.
func (c *Client) GetFeature(p model.Point) (model.Feature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.service.GetFeature(ctx, &v1.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	})
	if err != nil {
		return model.Feature{}, handleGRPCError(err)
	}

	return model.Feature{
		Name: resp.GetName(),
		Location: model.Point{
			Latitude:  resp.GetLocation().GetLatitude(),
			Longitude: resp.GetLocation().GetLongitude(),
		},
	}, nil
}

// ListFeatures collects every feature inside the rectangle spanned by
// lo and hi.
func (c *Client) ListFeatures(lo, hi model.Point) ([]model.Feature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stream, err := c.service.ListFeatures(ctx, &v1.Rectangle{
		Lo: &v1.Point{Latitude: lo.Latitude, Longitude: lo.Longitude},
		Hi: &v1.Point{Latitude: hi.Latitude, Longitude: hi.Longitude},
	})
	if err != nil {
		return nil, handleGRPCError(err)
	}

	var features []model.Feature

	for {
		f, err := stream.Recv()
		if err == io.EOF {
			return features, nil
		}
		if err != nil {
			return nil, handleGRPCError(err)
		}

		features = append(features, model.Feature{
			Name: f.GetName(),
			Location: model.Point{
				Latitude:  f.GetLocation().GetLatitude(),
				Longitude: f.GetLocation().GetLongitude(),
			},
		})
	}
}

// RecordRoute streams the given points and returns the server's summary.
func (c *Client) RecordRoute(points []model.Point) (*v1.RouteSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stream, err := c.service.RecordRoute(ctx)
	if err != nil {
		return nil, handleGRPCError(err)
	}

	for _, p := range points {
		if err := stream.Send(&v1.Point{Latitude: p.Latitude, Longitude: p.Longitude}); err != nil {
			return nil, handleGRPCError(err)
		}
	}

	summary, err := stream.CloseAndRecv()
	if err != nil {
		return nil, handleGRPCError(err)
	}

	return summary, nil
}

// RouteChat sends the given notes and returns every note the server
// echoed back before the response stream closed.
func (c *Client) RouteChat(notes []model.RouteNote) ([]model.RouteNote, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stream, err := c.service.RouteChat(ctx)
	if err != nil {
		return nil, handleGRPCError(err)
	}

	var (
		received []model.RouteNote
		recvErr  error
	)

	done := make(chan struct{})

	// Receive until the server closes its side.
	go func() {
		defer close(done)

		for {
			in, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				recvErr = err
				return
			}

			received = append(received, model.RouteNote{
				Location: model.Point{
					Latitude:  in.GetLocation().GetLatitude(),
					Longitude: in.GetLocation().GetLongitude(),
				},
				Message: in.GetMessage(),
			})
		}
	}()

	for _, n := range notes {
		err := stream.Send(&v1.RouteNote{
			Location: &v1.Point{Latitude: n.Location.Latitude, Longitude: n.Location.Longitude},
			Message:  n.Message,
		})
		if err != nil {
			return nil, handleGRPCError(err)
		}
	}

	if err := stream.CloseSend(); err != nil {
		return nil, handleGRPCError(err)
	}

	<-done

	if recvErr != nil {
		return nil, handleGRPCError(recvErr)
	}

	return received, nil
}

// handleGRPCError maps gRPC status codes to user-friendly errors
func handleGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("unknown error: %w", err)
	}

	//nolint:exhaustive // default case handles remaining codes
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("invalid input: %s", st.Message())
	case codes.Unavailable:
		return fmt.Errorf("server unavailable - is routeguided running?\nStart it with: routeguided serve --db <file>")
	case codes.DeadlineExceeded:
		return fmt.Errorf("request timeout: %s", st.Message())
	case codes.Canceled:
		return fmt.Errorf("request canceled: %s", st.Message())
	default:
		return fmt.Errorf("server error: %s", st.Message())
	}
}
