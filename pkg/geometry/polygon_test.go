package geometry

import (
	"math"
	"testing"
)

func TestBuildEdgesOpenPath(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	edges := BuildEdges(points, false)

	if len(edges) != 2 {
		t.Fatalf("Expected 2 edges for open path, got %d", len(edges))
	}
	if math.Abs(edges[0].Length-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", edges[0].Length)
	}
	if math.Abs(edges[1].Length-4.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 4.0, got %v", edges[1].Length)
	}
}

func TestBuildEdgesClosedAppendsClosingEdge(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	edges := BuildEdges(points, true)

	if len(edges) != 3 {
		t.Fatalf("Expected 3 edges for closed triangle, got %d", len(edges))
	}

	closing := edges[len(edges)-1]
	if closing.A != points[2] || closing.B != points[0] {
		t.Errorf("Closing edge endpoints wrong: got %v -> %v", closing.A, closing.B)
	}
	if math.Abs(closing.Length-5.0) > 1e-10 {
		t.Errorf("Closing edge length failed: expected 5.0, got %v", closing.Length)
	}
}

func TestBuildEdgesSkipsCoincidentPoints(t *testing.T) {
	// Double click at the same world location must not produce a zero-length edge
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
	}

	edges := BuildEdges(points, false)

	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	if math.Abs(edges[0].Length-1.0) > 1e-10 {
		t.Errorf("Edge length failed: expected 1.0, got %v", edges[0].Length)
	}
}

func TestBuildEdgesNoClosingEdgeBelowThreePoints(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
	}

	edges := BuildEdges(points, true)

	if len(edges) != 1 {
		t.Errorf("Expected 1 edge for a closed 2-point path, got %d", len(edges))
	}
}

func TestPolygonAreaOpenPathUndefined(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
		NewVector3(0, 4, 0),
	}

	if _, ok := PolygonArea(points, false); ok {
		t.Error("Area should be undefined for an open path")
	}
	if _, ok := PolygonArea(points[:2], true); ok {
		t.Error("Area should be undefined for fewer than 3 points")
	}
}

func TestPolygonAreaTriangle(t *testing.T) {
	// Right triangle with legs 3 and 4: area = |cross| / 2 = 12 / 2 = 6
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	area, ok := PolygonArea(points, true)
	if !ok {
		t.Fatal("Expected a defined area for a closed triangle")
	}
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Triangle area failed: expected 6.0, got %v", area)
	}
}

func TestPolygonAreaUnitSquare(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 1, 0),
		NewVector3(0, 1, 0),
	}

	area, ok := PolygonArea(points, true)
	if !ok {
		t.Fatal("Expected a defined area for a closed square")
	}
	if math.Abs(area-1.0) > 1e-10 {
		t.Errorf("Square area failed: expected 1.0, got %v", area)
	}
}

func TestPolygonAreaNewellMatchesTriangleSum(t *testing.T) {
	// Planar convex quadrilateral: Newell result must equal the sum of the
	// two triangles it decomposes into
	a := NewVector3(0, 0, 0)
	b := NewVector3(4, 0, 0)
	c := NewVector3(5, 3, 0)
	d := NewVector3(1, 4, 0)

	quad, ok := PolygonArea([]Vector3{a, b, c, d}, true)
	if !ok {
		t.Fatal("Expected a defined area for the quadrilateral")
	}

	t1, _ := PolygonArea([]Vector3{a, b, c}, true)
	t2, _ := PolygonArea([]Vector3{a, c, d}, true)

	if math.Abs(quad-(t1+t2)) > 1e-10 {
		t.Errorf("Newell area %v does not match triangle sum %v", quad, t1+t2)
	}
}

func TestPolygonAreaCyclicRotationInvariant(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(4, 0, 1),
		NewVector3(5, 3, 2),
		NewVector3(1, 4, 1),
		NewVector3(-1, 2, 0),
	}

	base, ok := PolygonArea(points, true)
	if !ok {
		t.Fatal("Expected a defined area")
	}

	for shift := 1; shift < len(points); shift++ {
		rotated := append(append([]Vector3{}, points[shift:]...), points[:shift]...)
		area, ok := PolygonArea(rotated, true)
		if !ok {
			t.Fatalf("Rotation by %d lost the area", shift)
		}
		if math.Abs(area-base) > 1e-10 {
			t.Errorf("Rotation by %d changed area: expected %v, got %v", shift, base, area)
		}
	}
}

func TestPolygonAreaWindingIndependent(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 1, 0),
		NewVector3(0, 1, 0),
	}
	reversed := []Vector3{points[3], points[2], points[1], points[0]}

	a1, _ := PolygonArea(points, true)
	a2, _ := PolygonArea(reversed, true)

	if math.Abs(a1-a2) > 1e-10 {
		t.Errorf("Winding order changed area magnitude: %v vs %v", a1, a2)
	}
}

func TestPolygonAreaCollapsesCoincidentRuns(t *testing.T) {
	// Duplicated vertices reduce the effective count; a "square" with one
	// corner doubled is still a square, and a triangle with a doubled corner
	// falls back to the exact triangle formula
	square := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 1, 0),
		NewVector3(0, 1, 0),
	}

	area, ok := PolygonArea(square, true)
	if !ok {
		t.Fatal("Expected a defined area")
	}
	if math.Abs(area-1.0) > 1e-10 {
		t.Errorf("Square with doubled corner: expected 1.0, got %v", area)
	}

	degenerate := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
	}
	if _, ok := PolygonArea(degenerate, true); ok {
		t.Error("Two distinct points must not have an area")
	}
}

func TestPolygonAreaNearPlanarLoop(t *testing.T) {
	// Unit square with small out-of-plane noise: Newell should stay close
	// to the planar answer
	points := []Vector3{
		NewVector3(0, 0, 0.001),
		NewVector3(1, 0, -0.001),
		NewVector3(1, 1, 0.001),
		NewVector3(0, 1, -0.001),
	}

	area, ok := PolygonArea(points, true)
	if !ok {
		t.Fatal("Expected a defined area")
	}
	if math.Abs(area-1.0) > 1e-2 {
		t.Errorf("Near-planar area drifted too far: expected ~1.0, got %v", area)
	}
}

func TestPolygonPerimeter(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(3, 4, 0),
	}

	perimeter := PolygonPerimeter(BuildEdges(points, true))
	if math.Abs(perimeter-12.0) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12.0, got %v", perimeter)
	}
}
