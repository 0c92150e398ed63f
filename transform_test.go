package fontparts

import (
	"math"
	"testing"
)

func positionsClose(a, b Position) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformPosition(t *testing.T) {
	tests := []struct {
		name string
		t    Transformation
		in   Position
		want Position
	}{
		{"identity", Identity, Position{X: 5, Y: 7}, Position{X: 5, Y: 7}},
		{"translate", Translate(10, -20), Position{X: 1, Y: 2}, Position{X: 11, Y: -18}},
		{"scale", ScaleTransform(2, 3), Position{X: 4, Y: 5}, Position{X: 8, Y: 15}},
		{"rotate 90", Rotate(90), Position{X: 1, Y: 0}, Position{X: 0, Y: 1}},
		{"rotate 180", Rotate(180), Position{X: 1, Y: 2}, Position{X: -1, Y: -2}},
		{"skew x 45", Skew(45, 0), Position{X: 0, Y: 100}, Position{X: 100, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.t.TransformPosition(tt.in)
			if !positionsClose(got, tt.want) {
				t.Errorf("TransformPosition(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Receiver first, argument second.
	combined := ScaleTransform(2, 2).Multiply(Translate(10, 0))
	got := combined.TransformPosition(Position{X: 1, Y: 1})
	want := Position{X: 12, Y: 2}
	if !positionsClose(got, want) {
		t.Errorf("scale-then-translate = %v, want %v", got, want)
	}

	combined = Translate(10, 0).Multiply(ScaleTransform(2, 2))
	got = combined.TransformPosition(Position{X: 1, Y: 1})
	want = Position{X: 22, Y: 2}
	if !positionsClose(got, want) {
		t.Errorf("translate-then-scale = %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		t    Transformation
	}{
		{"identity", Identity},
		{"translate", Translate(5, -3)},
		{"scale", ScaleTransform(2, 0.5)},
		{"rotate", Rotate(33)},
		{"composite", Translate(7, 1).Multiply(Rotate(45)).Multiply(ScaleTransform(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.t.Invert()
			if !ok {
				t.Fatal("Invert() reported singular")
			}
			p := Position{X: 13, Y: -8}
			got := inv.TransformPosition(tt.t.TransformPosition(p))
			if !positionsClose(got, p) {
				t.Errorf("round trip = %v, want %v", got, p)
			}
		})
	}

	if _, ok := (Transformation{}).Invert(); ok {
		t.Error("zero matrix should be singular")
	}
}

func TestNewTransformationValidates(t *testing.T) {
	if _, err := NewTransformation([6]float64{1, 0, 0, 1, math.NaN(), 0}); err == nil {
		t.Error("NaN offset accepted")
	}
	got, err := NewTransformation([6]float64{1, 0, 0, 1, 5, 6})
	if err != nil {
		t.Fatalf("valid matrix rejected: %v", err)
	}
	if got.DX != 5 || got.DY != 6 {
		t.Errorf("values = %v", got.Values())
	}
}
