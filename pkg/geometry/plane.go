package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PlaneFit represents the result of fitting a plane to points
type PlaneFit struct {
	Centroid Vector3 // Centroid of the input points
	Normal   Vector3 // Unit normal of the best-fit plane
	RMS      float64 // Root-mean-square out-of-plane deviation (quality measure)
}

// FitPlane fits a least-squares plane through a set of 3D points.
// The plane passes through the centroid; its normal is the direction of
// least variance, found via SVD of the centered point matrix.
// Returns an error for fewer than 3 points or a collinear point set.
func FitPlane(points []Vector3) (*PlaneFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a plane")
	}

	var centroid Vector3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(points)))

	centered := mat.NewDense(len(points), 3, nil)
	for i, p := range points {
		d := p.Sub(centroid)
		centered.SetRow(i, []float64{d.X, d.Y, d.Z})
	}

	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return nil, fmt.Errorf("plane fit failed: SVD did not converge")
	}

	values := svd.Values(nil)
	// All variance on a single axis means the points lie on a line
	if values[0] > 0 && values[1]/values[0] < 1e-12 {
		return nil, fmt.Errorf("points are collinear")
	}

	var v mat.Dense
	svd.VTo(&v)

	// Right-singular vector of the smallest singular value
	normal := NewVector3(v.At(0, 2), v.At(1, 2), v.At(2, 2)).Normalize()

	sumSq := 0.0
	for _, p := range points {
		d := p.Sub(centroid).Dot(normal)
		sumSq += d * d
	}

	return &PlaneFit{
		Centroid: centroid,
		Normal:   normal,
		RMS:      math.Sqrt(sumSq / float64(len(points))),
	}, nil
}
