package grpcserver

import (
	"github.com/inovacc/routeguided/internal/model"
	v1 "github.com/inovacc/routeguided/pkg/api/v1"
)

// ProtoToModelPoint converts a protobuf Point to the domain type.
// A nil point maps to the origin.
func ProtoToModelPoint(p *v1.Point) model.Point {
	return model.Point{
		Latitude:  p.GetLatitude(),
		Longitude: p.GetLongitude(),
	}
}

// ModelToProtoPoint converts a domain Point to its protobuf form.
func ModelToProtoPoint(p model.Point) *v1.Point {
	return &v1.Point{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// ModelToProtoFeature converts a domain Feature to its protobuf form.
func ModelToProtoFeature(f model.Feature) *v1.Feature {
	return &v1.Feature{
		Name:     f.Name,
		Location: ModelToProtoPoint(f.Location),
	}
}

// ProtoToModelRouteNote converts a protobuf RouteNote to the domain type.
func ProtoToModelRouteNote(n *v1.RouteNote) model.RouteNote {
	return model.RouteNote{
		Location: ProtoToModelPoint(n.GetLocation()),
		Message:  n.GetMessage(),
	}
}

// ModelToProtoRouteNote converts a domain RouteNote to its protobuf form.
func ModelToProtoRouteNote(n model.RouteNote) *v1.RouteNote {
	return &v1.RouteNote{
		Location: ModelToProtoPoint(n.Location),
		Message:  n.Message,
	}
}
