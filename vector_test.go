package soft3d

import (
	"math/rand"
	"testing"

	"github.com/solarlune/soft3d/math32"
)

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector3, 0, 100)
		vecs = append(vecs, Vector3{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector3, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector3{X: rand.Float32(), Y: rand.Float32(), Z: rand.Float32()})
	}

	b.ReportAllocs()
	b.StartTimer()

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i].Add(vecs[i+1]).Cross(vecs[i]).Unit()
		}
	}

}

func TestVectorArithmetic(t *testing.T) {

	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6)

	if got := a.Add(b); got != NewVector3(5, -3, 9) {
		t.Errorf("Add: got %s", got)
	}

	if got := a.Sub(b); got != NewVector3(-3, 7, -3) {
		t.Errorf("Sub: got %s", got)
	}

	if got := a.Scale(2); got != NewVector3(2, 4, 6) {
		t.Errorf("Scale: got %s", got)
	}

	if got := a.Invert(); got != NewVector3(-1, -2, -3) {
		t.Errorf("Invert: got %s", got)
	}

	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot: got %f", got)
	}

	// The receiver is never modified.
	if a != NewVector3(1, 2, 3) {
		t.Errorf("receiver changed: %s", a)
	}

}

func TestVectorCross(t *testing.T) {

	if got := WorldRight.Cross(WorldUp); !got.Equals(WorldBackward) {
		t.Errorf("X cross Y should be Z, got %s", got)
	}

	for i := 0; i < 100; i++ {

		a := NewVector3(rand.Float32()*2-1, rand.Float32()*2-1, rand.Float32()*2-1)
		b := NewVector3(rand.Float32()*2-1, rand.Float32()*2-1, rand.Float32()*2-1)

		got := a.Cross(b)
		expected := toMGL(a).Cross(toMGL(b))

		if !got.Equals(NewVector3(expected[0], expected[1], expected[2])) {
			t.Fatalf("%s cross %s = %s, expected %v", a, b, got, expected)
		}

		// The cross product is perpendicular to both inputs.
		if math32.Abs(got.Dot(a)) > 1e-4 || math32.Abs(got.Dot(b)) > 1e-4 {
			t.Fatalf("%s isn't perpendicular to %s and %s", got, a, b)
		}

	}

}

func TestVectorUnit(t *testing.T) {

	for i := 0; i < 100; i++ {
		v := NewVector3(rand.Float32()*20-10, rand.Float32()*20-10, rand.Float32()*20-10)
		if v.IsZero() {
			continue
		}
		if l := v.Unit().Magnitude(); math32.Abs(l-1) > 1e-4 {
			t.Fatalf("unit of %s has length %f", v, l)
		}
	}

	if got := NewVector3Zero().Unit(); !got.IsZero() {
		t.Errorf("unit of the zero vector should stay zero, got %s", got)
	}

	v := NewVector3(3, 4, 0)
	if v.Magnitude() != 5 || v.MagnitudeSquared() != 25 {
		t.Errorf("magnitude of %s: %f", v, v.Magnitude())
	}

	if d := v.Distance(NewVector3Zero()); d != 5 {
		t.Errorf("distance: got %f", d)
	}

}

func TestVectorLerpAndReflect(t *testing.T) {

	a := NewVector3(0, 0, 0)
	b := NewVector3(10, -10, 4)

	if got := a.Lerp(b, 0.5); !got.Equals(NewVector3(5, -5, 2)) {
		t.Errorf("Lerp: got %s", got)
	}

	if got := NewVector3(1, -1, 0).Reflect(WorldUp); !got.Equals(NewVector3(1, 1, 0)) {
		t.Errorf("Reflect: got %s", got)
	}

}

func TestVector4ToVector3(t *testing.T) {

	if got := NewVector4(2, 4, 6, 2).ToVector3(); got != NewVector3(1, 2, 3) {
		t.Errorf("ToVector3 should divide by W, got %s", got)
	}

	if got := NewVector4(2, 4, 6, 0).ToVector3(); got != NewVector3(2, 4, 6) {
		t.Errorf("ToVector3 shouldn't divide by a zero W, got %s", got)
	}

	if p := NewVector4Point(WorldUp); p.W != 1 {
		t.Errorf("points have a W of 1, got %f", p.W)
	}

	if d := NewVector4Direction(WorldUp); d.W != 0 {
		t.Errorf("directions have a W of 0, got %f", d.W)
	}

}
