package grpcserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/routeguided/internal/catalog"
	"github.com/inovacc/routeguided/internal/geo"
	"github.com/inovacc/routeguided/internal/model"
	v1 "github.com/inovacc/routeguided/pkg/api/v1"
	"google.golang.org/grpc"
)

// Service implements the RouteGuideServer interface over an immutable
// feature catalog and a shared note log.
type Service struct {
	v1.UnimplementedRouteGuideServer

	catalog *catalog.Catalog
	notes   *NoteLog
	logger  *slog.Logger
}

// NewService creates a new gRPC service instance.
func NewService(cat *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{
		catalog: cat,
		notes:   NewNoteLog(),
		logger:  logger,
	}
}

// GetFeature returns the feature at the requested point. The location is
// echoed back and the name is empty when the catalog has no entry there;
// a lookup miss is not an error.
func (s *Service) GetFeature(ctx context.Context, point *v1.Point) (*v1.Feature, error) {
	p := ProtoToModelPoint(point)
	s.logger.Debug("get feature", "latitude", p.Latitude, "longitude", p.Longitude)

	return &v1.Feature{
		Name:     s.catalog.Lookup(p),
		Location: ModelToProtoPoint(p),
	}, nil
}

// ListFeatures streams every catalog feature inside the rectangle, in
// catalog order. The corners may arrive in any orientation; bounds are
// normalized per axis and matching is inclusive.
func (s *Service) ListFeatures(rect *v1.Rectangle, stream grpc.ServerStreamingServer[v1.Feature]) error {
	lo := ProtoToModelPoint(rect.GetLo())
	hi := ProtoToModelPoint(rect.GetHi())

	left := min(lo.Longitude, hi.Longitude)
	right := max(lo.Longitude, hi.Longitude)
	bottom := min(lo.Latitude, hi.Latitude)
	top := max(lo.Latitude, hi.Latitude)

	for _, f := range s.catalog.Features() {
		if f.Location.Longitude >= left && f.Location.Longitude <= right &&
			f.Location.Latitude >= bottom && f.Location.Latitude <= top {
			if err := stream.Send(ModelToProtoFeature(f)); err != nil {
				return err
			}
		}
	}

	return nil
}

// RecordRoute consumes a stream of points and replies with a summary:
// point count, how many points sat on a named feature, the total
// haversine distance in meters (truncated), and elapsed wall-clock
// seconds. Any read failure ends the route; io.EOF is the normal case
// and no partial error is surfaced.
func (s *Service) RecordRoute(stream grpc.ClientStreamingServer[v1.Point, v1.RouteSummary]) error {
	var (
		pointCount   int32
		featureCount int32
		distance     float64
		prev         model.Point
	)

	start := time.Now()

	for {
		point, err := stream.Recv()
		if err != nil {
			return stream.SendAndClose(&v1.RouteSummary{
				PointCount:   pointCount,
				FeatureCount: featureCount,
				Distance:     int32(distance),
				ElapsedTime:  int32(time.Since(start).Seconds()),
			})
		}

		p := ProtoToModelPoint(point)

		pointCount++

		if s.catalog.Lookup(p) != "" {
			featureCount++
		}

		if pointCount != 1 {
			distance += geo.Distance(prev, p)
		}

		prev = p
	}
}

// RouteChat relays notes between all connected chat sessions. For each
// incoming note it replays every earlier note recorded at the same
// location back to the sender, then records the note. A session replays
// its own earlier notes to itself when the coordinates match.
func (s *Service) RouteChat(stream grpc.BidiStreamingServer[v1.RouteNote, v1.RouteNote]) error {
	session := uuid.NewString()
	s.logger.Debug("chat session opened", "session", session)

	for {
		in, err := stream.Recv()
		if err != nil {
			s.logger.Debug("chat session closed", "session", session, "notes", s.notes.Len())
			return nil
		}

		// Snapshot matches and append under the log's lock, then send
		// after the lock is released.
		matches := s.notes.MatchAndAppend(ProtoToModelRouteNote(in))

		for _, n := range matches {
			if err := stream.Send(ModelToProtoRouteNote(n)); err != nil {
				return err
			}
		}
	}
}
