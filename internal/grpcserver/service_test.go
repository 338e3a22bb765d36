package grpcserver

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/inovacc/routeguided/internal/catalog"
	"github.com/inovacc/routeguided/internal/geo"
	"github.com/inovacc/routeguided/internal/model"
	v1 "github.com/inovacc/routeguided/pkg/api/v1"
	"google.golang.org/grpc/metadata"
)

var testFeatures = []model.Feature{
	{Name: "Patriots Path, Mendham, NJ 07945, USA", Location: model.Point{Latitude: 407838351, Longitude: -746143763}},
	{Name: "101 New Jersey 10, Whippany, NJ 07981, USA", Location: model.Point{Latitude: 408122808, Longitude: -743999179}},
	{Name: "U.S. 6, Shohola, PA 18458, USA", Location: model.Point{Latitude: 413628156, Longitude: -749015468}},
	{Name: "Berkshire Valley Management Area Trail, Jefferson, NJ, USA", Location: model.Point{Latitude: 409146138, Longitude: -746188906}},
}

func newTestService() *Service {
	return NewService(catalog.New(testFeatures), slog.New(slog.DiscardHandler))
}

// fakeServerStream satisfies grpc.ServerStream so the typed fakes below
// only have to implement the Send/Recv halves a handler touches.
type fakeServerStream struct {
	ctx context.Context
}

func (f *fakeServerStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeServerStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeServerStream) SetTrailer(metadata.MD)       {}
func (f *fakeServerStream) Context() context.Context     { return f.ctx }
func (f *fakeServerStream) SendMsg(any) error            { return nil }
func (f *fakeServerStream) RecvMsg(any) error            { return nil }

type fakeListFeaturesStream struct {
	fakeServerStream

	sent []*v1.Feature
}

func (f *fakeListFeaturesStream) Send(feature *v1.Feature) error {
	f.sent = append(f.sent, feature)
	return nil
}

type fakeRecordRouteStream struct {
	fakeServerStream

	points  []*v1.Point
	next    int
	summary *v1.RouteSummary
}

func (f *fakeRecordRouteStream) Recv() (*v1.Point, error) {
	if f.next >= len(f.points) {
		return nil, io.EOF
	}

	p := f.points[f.next]
	f.next++

	return p, nil
}

func (f *fakeRecordRouteStream) SendAndClose(summary *v1.RouteSummary) error {
	f.summary = summary
	return nil
}

type fakeRouteChatStream struct {
	fakeServerStream

	mu    sync.Mutex
	notes []*v1.RouteNote
	next  int
	sent  []*v1.RouteNote
}

func (f *fakeRouteChatStream) Recv() (*v1.RouteNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.next >= len(f.notes) {
		return nil, io.EOF
	}

	n := f.notes[f.next]
	f.next++

	return n, nil
}

func (f *fakeRouteChatStream) Send(note *v1.RouteNote) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, note)

	return nil
}

func TestService_GetFeature(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		point    *v1.Point
		wantName string
	}{
		{
			name:     "known location",
			point:    &v1.Point{Latitude: 409146138, Longitude: -746188906},
			wantName: "Berkshire Valley Management Area Trail, Jefferson, NJ, USA",
		},
		{
			name:     "unknown location",
			point:    &v1.Point{Latitude: 0, Longitude: 0},
			wantName: "",
		},
		{
			name:     "near miss is a miss",
			point:    &v1.Point{Latitude: 409146139, Longitude: -746188906},
			wantName: "",
		},
		{
			name:     "nil point treated as origin",
			point:    nil,
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feature, err := svc.GetFeature(t.Context(), tt.point)
			if err != nil {
				t.Fatalf("GetFeature() error = %v", err)
			}

			if feature.GetName() != tt.wantName {
				t.Errorf("GetFeature() name = %q, want %q", feature.GetName(), tt.wantName)
			}

			if feature.GetLocation().GetLatitude() != tt.point.GetLatitude() ||
				feature.GetLocation().GetLongitude() != tt.point.GetLongitude() {
				t.Errorf("GetFeature() location = %v, want request point echoed back", feature.GetLocation())
			}
		})
	}
}

func TestService_ListFeatures(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name      string
		rect      *v1.Rectangle
		wantNames []string
	}{
		{
			name: "wide rectangle returns catalog order",
			rect: &v1.Rectangle{
				Lo: &v1.Point{Latitude: 400000000, Longitude: -750000000},
				Hi: &v1.Point{Latitude: 420000000, Longitude: -730000000},
			},
			wantNames: []string{
				"Patriots Path, Mendham, NJ 07945, USA",
				"101 New Jersey 10, Whippany, NJ 07981, USA",
				"U.S. 6, Shohola, PA 18458, USA",
				"Berkshire Valley Management Area Trail, Jefferson, NJ, USA",
			},
		},
		{
			name: "inverted corners normalize",
			rect: &v1.Rectangle{
				Lo: &v1.Point{Latitude: 420000000, Longitude: -730000000},
				Hi: &v1.Point{Latitude: 400000000, Longitude: -750000000},
			},
			wantNames: []string{
				"Patriots Path, Mendham, NJ 07945, USA",
				"101 New Jersey 10, Whippany, NJ 07981, USA",
				"U.S. 6, Shohola, PA 18458, USA",
				"Berkshire Valley Management Area Trail, Jefferson, NJ, USA",
			},
		},
		{
			name: "degenerate rectangle matches its own point",
			rect: &v1.Rectangle{
				Lo: &v1.Point{Latitude: 407838351, Longitude: -746143763},
				Hi: &v1.Point{Latitude: 407838351, Longitude: -746143763},
			},
			wantNames: []string{"Patriots Path, Mendham, NJ 07945, USA"},
		},
		{
			name: "empty region",
			rect: &v1.Rectangle{
				Lo: &v1.Point{Latitude: 0, Longitude: 0},
				Hi: &v1.Point{Latitude: 1, Longitude: 1},
			},
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &fakeListFeaturesStream{fakeServerStream: fakeServerStream{ctx: t.Context()}}

			if err := svc.ListFeatures(tt.rect, stream); err != nil {
				t.Fatalf("ListFeatures() error = %v", err)
			}

			if len(stream.sent) != len(tt.wantNames) {
				t.Fatalf("ListFeatures() sent %d features, want %d", len(stream.sent), len(tt.wantNames))
			}

			for i, want := range tt.wantNames {
				if got := stream.sent[i].GetName(); got != want {
					t.Errorf("ListFeatures() feature[%d] = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestService_RecordRoute(t *testing.T) {
	svc := newTestService()

	a := model.Point{Latitude: 407838351, Longitude: -746143763}
	b := model.Point{Latitude: 408122808, Longitude: -743999179}
	c := model.Point{Latitude: 1, Longitude: 1}

	wantDistance := int32(geo.Distance(a, b) + geo.Distance(b, c))

	stream := &fakeRecordRouteStream{
		fakeServerStream: fakeServerStream{ctx: t.Context()},
		points: []*v1.Point{
			{Latitude: a.Latitude, Longitude: a.Longitude},
			{Latitude: b.Latitude, Longitude: b.Longitude},
			{Latitude: c.Latitude, Longitude: c.Longitude},
		},
	}

	if err := svc.RecordRoute(stream); err != nil {
		t.Fatalf("RecordRoute() error = %v", err)
	}

	if stream.summary == nil {
		t.Fatal("RecordRoute() did not send a summary")
	}

	if got := stream.summary.GetPointCount(); got != 3 {
		t.Errorf("summary point count = %d, want 3", got)
	}

	// a and b sit on catalog features, c does not
	if got := stream.summary.GetFeatureCount(); got != 2 {
		t.Errorf("summary feature count = %d, want 2", got)
	}

	if got := stream.summary.GetDistance(); got != wantDistance {
		t.Errorf("summary distance = %d, want %d", got, wantDistance)
	}
}

func TestService_RecordRoute_Empty(t *testing.T) {
	svc := newTestService()

	stream := &fakeRecordRouteStream{fakeServerStream: fakeServerStream{ctx: t.Context()}}

	if err := svc.RecordRoute(stream); err != nil {
		t.Fatalf("RecordRoute() error = %v", err)
	}

	if stream.summary == nil {
		t.Fatal("RecordRoute() did not send a summary")
	}

	if got := stream.summary.GetPointCount(); got != 0 {
		t.Errorf("summary point count = %d, want 0", got)
	}

	if got := stream.summary.GetDistance(); got != 0 {
		t.Errorf("summary distance = %d, want 0", got)
	}
}

func TestService_RecordRoute_SinglePoint(t *testing.T) {
	svc := newTestService()

	stream := &fakeRecordRouteStream{
		fakeServerStream: fakeServerStream{ctx: t.Context()},
		points:           []*v1.Point{{Latitude: 407838351, Longitude: -746143763}},
	}

	if err := svc.RecordRoute(stream); err != nil {
		t.Fatalf("RecordRoute() error = %v", err)
	}

	if got := stream.summary.GetPointCount(); got != 1 {
		t.Errorf("summary point count = %d, want 1", got)
	}

	if got := stream.summary.GetDistance(); got != 0 {
		t.Errorf("summary distance = %d, want 0 for a single point", got)
	}
}

func TestService_RouteChat(t *testing.T) {
	svc := newTestService()

	loc := &v1.Point{Latitude: 1, Longitude: 1}
	elsewhere := &v1.Point{Latitude: 2, Longitude: 2}

	stream := &fakeRouteChatStream{
		fakeServerStream: fakeServerStream{ctx: t.Context()},
		notes: []*v1.RouteNote{
			{Location: loc, Message: "first"},
			{Location: elsewhere, Message: "second"},
			{Location: loc, Message: "third"},
		},
	}

	if err := svc.RouteChat(stream); err != nil {
		t.Fatalf("RouteChat() error = %v", err)
	}

	// Only the third note revisits a location, so only the first note
	// is replayed, and only once.
	if len(stream.sent) != 1 {
		t.Fatalf("RouteChat() sent %d notes, want 1", len(stream.sent))
	}

	if got := stream.sent[0].GetMessage(); got != "first" {
		t.Errorf("RouteChat() replayed %q, want %q", got, "first")
	}
}

func TestService_RouteChat_ConcurrentSessions(t *testing.T) {
	const sessions = 8

	svc := newTestService()
	loc := &v1.Point{Latitude: 123, Longitude: 456}

	streams := make([]*fakeRouteChatStream, sessions)

	var wg sync.WaitGroup

	for i := 0; i < sessions; i++ {
		streams[i] = &fakeRouteChatStream{
			fakeServerStream: fakeServerStream{ctx: t.Context()},
			notes:            []*v1.RouteNote{{Location: loc, Message: "hello"}},
		}

		wg.Add(1)

		go func(s *fakeRouteChatStream) {
			defer wg.Done()

			if err := svc.RouteChat(s); err != nil {
				t.Errorf("RouteChat() error = %v", err)
			}
		}(streams[i])
	}

	wg.Wait()

	// Each note is replayed to exactly the sessions that arrived after
	// it, so the replay totals across all sessions sum to n*(n-1)/2.
	total := 0
	for _, s := range streams {
		total += len(s.sent)
	}

	if want := sessions * (sessions - 1) / 2; total != want {
		t.Errorf("concurrent sessions replayed %d notes in total, want %d", total, want)
	}
}

func TestService_RouteChat_RandomizedLocations(t *testing.T) {
	svc := newTestService()
	rng := rand.New(rand.NewSource(42))

	const count = 200

	locations := []*v1.Point{
		{Latitude: 1, Longitude: 1},
		{Latitude: 2, Longitude: 2},
		{Latitude: 3, Longitude: 3},
	}

	notes := make([]*v1.RouteNote, count)
	perLocation := make(map[int64]int)
	wantReplays := 0

	for i := range notes {
		loc := locations[rng.Intn(len(locations))]
		wantReplays += perLocation[loc.GetLatitude()]
		perLocation[loc.GetLatitude()]++

		notes[i] = &v1.RouteNote{Location: loc, Message: "m"}
	}

	stream := &fakeRouteChatStream{
		fakeServerStream: fakeServerStream{ctx: t.Context()},
		notes:            notes,
	}

	if err := svc.RouteChat(stream); err != nil {
		t.Fatalf("RouteChat() error = %v", err)
	}

	if len(stream.sent) != wantReplays {
		t.Errorf("RouteChat() replayed %d notes, want %d", len(stream.sent), wantReplays)
	}
}
