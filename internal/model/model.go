package model

// Point is a location in E7 fixed-point coordinates (degrees * 10^7),
// the encoding used by the feature database and the wire protocol.
// Equality is exact integer equality on both axes.
type Point struct {
	// Latitude in E7 degrees, positive north
	Latitude int64 `json:"latitude"`

	// Longitude in E7 degrees, positive east
	Longitude int64 `json:"longitude"`
}

// Feature is a named Point. An empty name means "no feature at this
// location"; features are immutable once loaded from the database.
type Feature struct {
	// Name is the display name of the feature, empty when unnamed
	Name string `json:"name"`

	// Location is the feature position in E7 degrees
	Location Point `json:"location"`
}

// RouteNote is a free-text message attached to a location, exchanged
// over the RouteChat stream.
type RouteNote struct {
	// Location the note was posted at
	Location Point `json:"location"`

	// Message is the note text
	Message string `json:"message"`
}
