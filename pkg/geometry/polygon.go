package geometry

import "math"

// DistanceEpsilon is the minimum separation between two points for them to
// count as distinct. Clicks resolved to the same surface location (e.g. an
// accidental double click) produce coincident points that must not create
// zero-length edges or degenerate area terms.
const DistanceEpsilon = 1e-6

// Edge is a polygon edge between two measurement points
type Edge struct {
	A      Vector3
	B      Vector3
	Length float64
}

// BuildEdges constructs the edge list for an ordered point sequence.
// Consecutive pairs closer than DistanceEpsilon are skipped. When closed and
// at least 3 points are present, the closing edge from the last point back to
// the first is appended under the same rule.
func BuildEdges(points []Vector3, closed bool) []Edge {
	edges := make([]Edge, 0, len(points))

	for i := 0; i+1 < len(points); i++ {
		length := points[i].Distance(points[i+1])
		if length > DistanceEpsilon {
			edges = append(edges, Edge{A: points[i], B: points[i+1], Length: length})
		}
	}

	if closed && len(points) >= 3 {
		length := points[len(points)-1].Distance(points[0])
		if length > DistanceEpsilon {
			edges = append(edges, Edge{A: points[len(points)-1], B: points[0], Length: length})
		}
	}

	return edges
}

// PolygonPerimeter returns the total length of the given edges
func PolygonPerimeter(edges []Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Length
	}
	return total
}

// PolygonArea computes the enclosed area of a closed point loop.
// The boolean result is false when the loop is open or fewer than 3 distinct
// points remain after collapsing coincident neighbours.
//
// Three distinct points are treated as a plain triangle (half the cross
// product magnitude). Longer loops use Newell's method: the summed area
// vector is exact for planar simple polygons and degrades gracefully to a
// best-fit-plane estimate for the slightly non-coplanar loops that clicking
// on real surfaces produces. Only the magnitude is returned, so winding
// order does not matter.
func PolygonArea(points []Vector3, closed bool) (float64, bool) {
	if !closed {
		return 0, false
	}

	effective := collapseCoincident(points)
	if len(effective) < 3 {
		return 0, false
	}

	if len(effective) == 3 {
		e1 := effective[1].Sub(effective[0])
		e2 := effective[2].Sub(effective[0])
		return e1.Cross(e2).Length() / 2.0, true
	}

	var nx, ny, nz float64
	for i, p := range effective {
		q := effective[(i+1)%len(effective)]
		nx += (p.Y - q.Y) * (p.Z + q.Z)
		ny += (p.Z - q.Z) * (p.X + q.X)
		nz += (p.X - q.X) * (p.Y + q.Y)
	}

	return math.Sqrt(nx*nx+ny*ny+nz*nz) / 2.0, true
}

// collapseCoincident drops points closer than DistanceEpsilon to their
// predecessor, keeping the first point of each run
func collapseCoincident(points []Vector3) []Vector3 {
	if len(points) == 0 {
		return nil
	}

	effective := make([]Vector3, 0, len(points))
	effective = append(effective, points[0])
	for _, p := range points[1:] {
		if p.Distance(effective[len(effective)-1]) > DistanceEpsilon {
			effective = append(effective, p)
		}
	}
	return effective
}
