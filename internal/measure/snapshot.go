package measure

import "github.com/philipparndt/goarea/pkg/geometry"

// Snapshot is the derived, read-only view of a measurement session that the
// panel and overlay consume. A fresh value is built on every publish; holding
// on to an old snapshot is always safe.
type Snapshot struct {
	Points []geometry.Vector3
	Edges  []geometry.Edge
	Closed bool
	// Area is nil while the polygon is open or degenerate
	Area *float64
	// RedoIndex is nil unless a point is pending replacement
	RedoIndex *int
}

// Perimeter returns the total edge length of the snapshot
func (s Snapshot) Perimeter() float64 {
	return geometry.PolygonPerimeter(s.Edges)
}
