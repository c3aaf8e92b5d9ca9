package vmath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"zero vector", r2.Vec{}, r2.Vec{}},
		{"unit x", r2.Vec{X: 5}, r2.Vec{X: 1}},
		{"negative y", r2.Vec{Y: -0.25}, r2.Vec{Y: -1}},
		{"diagonal", r2.Vec{X: 3, Y: 4}, r2.Vec{X: 0.6, Y: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOrZero(tt.in)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Expected finite result, got %v", got)
			}
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	v := r2.Vec{X: 30, Y: 40}

	got := ClampMagnitude(v, 100)
	if got != v {
		t.Errorf("Expected unchanged %v under cap, got %v", v, got)
	}

	got = ClampMagnitude(v, 10)
	if mag := Magnitude(got); math.Abs(mag-10) > eps {
		t.Errorf("Expected magnitude 10 after clamp, got %f", mag)
	}
	if math.Abs(got.X/got.Y-0.75) > eps {
		t.Errorf("Expected direction preserved, got %v", got)
	}

	got = ClampMagnitude(v, 50)
	if got != v {
		t.Errorf("Expected vector exactly at cap to be unchanged, got %v", got)
	}
}

func TestClampMagnitudeNonPositiveCap(t *testing.T) {
	v := r2.Vec{X: 1, Y: -1}
	for _, limit := range []float64{0, -5} {
		if got := ClampMagnitude(v, limit); got != Zero {
			t.Errorf("Expected zero vector for cap %f, got %v", limit, got)
		}
	}
}

func TestClampMagnitudeHugeVector(t *testing.T) {
	tests := []struct {
		name string
		in   r2.Vec
		want r2.Vec
	}{
		{"beyond squared overflow", r2.Vec{X: 1e160, Y: 1e160}, r2.Vec{X: 10 / math.Sqrt2, Y: 10 / math.Sqrt2}},
		{"hypot overflow", r2.Vec{X: math.MaxFloat64, Y: -math.MaxFloat64}, r2.Vec{X: 10 / math.Sqrt2, Y: -10 / math.Sqrt2}},
		{"infinite component", r2.Vec{X: 7, Y: math.Inf(-1)}, r2.Vec{Y: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampMagnitude(tt.in, 10)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsFiniteVec(t *testing.T) {
	if !IsFiniteVec(r2.Vec{X: 1e300, Y: -1e300}) {
		t.Error("Expected large finite vector to be finite")
	}
	if IsFiniteVec(r2.Vec{X: math.NaN()}) {
		t.Error("Expected NaN component to be non-finite")
	}
	if IsFiniteVec(r2.Vec{Y: math.Inf(-1)}) {
		t.Error("Expected -Inf component to be non-finite")
	}
}
