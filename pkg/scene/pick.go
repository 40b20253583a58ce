package scene

import (
	"math"

	"github.com/philipparndt/goarea/pkg/geometry"
)

// Picker resolves screen coordinates to world points on the mesh surface by
// casting a ray through the camera. It is a pure query: nothing on the
// camera is modified by a pick.
type Picker struct {
	mesh   *Mesh
	camera *Camera
	width  float64
	height float64
}

// NewPicker creates a picker for the given mesh and camera
func NewPicker(mesh *Mesh, camera *Camera) *Picker {
	return &Picker{mesh: mesh, camera: camera}
}

// SetViewport updates the screen dimensions used for unprojection
func (p *Picker) SetViewport(width, height float64) {
	p.width = width
	p.height = height
}

// SetMesh swaps the mesh, e.g. after a file reload
func (p *Picker) SetMesh(mesh *Mesh) {
	p.mesh = mesh
}

// ProjectScreenToWorld casts a ray through the screen coordinate and returns
// the nearest intersection with the mesh, or false when nothing is hit.
func (p *Picker) ProjectScreenToWorld(x, y float64) (geometry.Vector3, bool) {
	if p.mesh == nil || p.width <= 0 || p.height <= 0 {
		return geometry.Vector3{}, false
	}

	origin, dir := p.camera.Unproject(x, y, p.width, p.height)

	nearest := math.MaxFloat64
	hit := false
	for _, tri := range p.mesh.Triangles {
		if t, ok := rayTriangle(origin, dir, tri); ok && t < nearest {
			nearest = t
			hit = true
		}
	}

	if !hit {
		return geometry.Vector3{}, false
	}
	return origin.Add(dir.Mul(nearest)), true
}

// rayTriangle computes the ray parameter of the intersection with a triangle
// using the Moller-Trumbore algorithm. Returns false for misses, backface
// grazes at near-zero determinant, and intersections behind the origin.
func rayTriangle(origin, dir geometry.Vector3, tri geometry.Triangle) (float64, bool) {
	const epsilon = 1e-9

	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)

	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < epsilon {
		return 0, false // Ray parallel to the triangle plane
	}

	invDet := 1.0 / det
	s := origin.Sub(tri.V1)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(q) * invDet
	if t <= epsilon {
		return 0, false
	}
	return t, true
}
