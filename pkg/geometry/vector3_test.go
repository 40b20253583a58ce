package geometry

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -1, 2)

	if got := a.Add(b); got != NewVector3(5, 1, 5) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := a.Sub(b); got != NewVector3(-3, 3, 1) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Mul(2); got != NewVector3(2, 4, 6) {
		t.Errorf("Mul failed: got %v", got)
	}
}

func TestVectorDot(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -1, 2)

	got := a.Dot(b)
	expected := 8.0

	if math.Abs(got-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, got)
	}
}

func TestVectorCross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)

	// Right-handed: x cross y = z
	if got := x.Cross(y); got != NewVector3(0, 0, 1) {
		t.Errorf("Cross failed: got %v", got)
	}
	if got := y.Cross(x); got != NewVector3(0, 0, -1) {
		t.Errorf("Cross anticommutativity failed: got %v", got)
	}
}

func TestVectorLengthAndDistance(t *testing.T) {
	v := NewVector3(2, 3, 6)

	if math.Abs(v.Length()-7.0) > 1e-10 {
		t.Errorf("Length failed: expected 7, got %v", v.Length())
	}

	a := NewVector3(1, 1, 1)
	b := NewVector3(4, 5, 1)
	if math.Abs(a.Distance(b)-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", a.Distance(b))
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector3(0, 3, 4).Normalize()

	if math.Abs(v.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: length %v", v.Length())
	}
	if math.Abs(v.Y-0.6) > 1e-10 || math.Abs(v.Z-0.8) > 1e-10 {
		t.Errorf("Normalize direction failed: got %v", v)
	}

	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: got %v", got)
	}
}

func TestVectorMinMax(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(3, 2, -4)

	if got := a.Min(b); got != NewVector3(1, 2, -4) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := a.Max(b); got != NewVector3(3, 5, -2) {
		t.Errorf("Max failed: got %v", got)
	}
}
