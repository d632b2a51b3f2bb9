package tilemap

import (
	"go-wave-defense/pkg/utils"
	"math"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Route is the fixed polyline every enemy walks, from Waypoints[0] to the last waypoint.
type Route struct {
	Waypoints []Point
	lengths   []float64
}

func NewRoute(waypoints []Point) *Route {
	lengths := make([]float64, 0, len(waypoints))
	for i := 0; i+1 < len(waypoints); i++ {
		lengths = append(lengths, waypoints[i].Distance(waypoints[i+1]))
	}
	return &Route{Waypoints: waypoints, lengths: lengths}
}

// Segments returns the number of segments; a segment index equal to it means the route is done.
func (r *Route) Segments() int {
	return len(r.lengths)
}

// SegmentLength returns the length of segment i, or 0 when i is out of range.
func (r *Route) SegmentLength(i int) float64 {
	if i < 0 || i >= len(r.lengths) {
		return 0
	}
	return r.lengths[i]
}

// PositionAt interpolates the position at the given fraction of segment i.
// Indices past the end clamp to the final waypoint.
func (r *Route) PositionAt(segment int, progress float64) Point {
	if len(r.Waypoints) == 0 {
		return Point{}
	}
	if segment >= len(r.lengths) {
		return r.Waypoints[len(r.Waypoints)-1]
	}
	if segment < 0 {
		return r.Waypoints[0]
	}
	from, to := r.Waypoints[segment], r.Waypoints[segment+1]
	return Point{
		X: utils.Lerp(from.X, to.X, progress),
		Y: utils.Lerp(from.Y, to.Y, progress),
	}
}

// Start returns the spawn point.
func (r *Route) Start() Point {
	return r.PositionAt(0, 0)
}
