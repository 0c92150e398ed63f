package fontparts

import (
	"math"
	"testing"
)

func squarePath(size float64) *Path {
	p := NewPath()
	p.MoveTo(Position{X: 0, Y: 0})
	p.LineTo(Position{X: size, Y: 0})
	p.LineTo(Position{X: size, Y: size})
	p.LineTo(Position{X: 0, Y: size})
	p.ClosePath()
	return p
}

// circlePath approximates a circle with four cubic beziers.
func circlePath(cx, cy, r float64) *Path {
	const k = 0.5522847498307936
	p := NewPath()
	p.MoveTo(Position{X: cx + r, Y: cy})
	p.CurveTo(Position{X: cx + r, Y: cy + k*r}, Position{X: cx + k*r, Y: cy + r}, Position{X: cx, Y: cy + r})
	p.CurveTo(Position{X: cx - k*r, Y: cy + r}, Position{X: cx - r, Y: cy + k*r}, Position{X: cx - r, Y: cy})
	p.CurveTo(Position{X: cx - r, Y: cy - k*r}, Position{X: cx - k*r, Y: cy - r}, Position{X: cx, Y: cy - r})
	p.CurveTo(Position{X: cx + k*r, Y: cy - r}, Position{X: cx + r, Y: cy - k*r}, Position{X: cx + r, Y: cy})
	p.ClosePath()
	return p
}

func TestPathArea(t *testing.T) {
	t.Run("ccw square", func(t *testing.T) {
		got := squarePath(100).Area()
		if got != 10000 {
			t.Errorf("Area() = %g, want 10000", got)
		}
	})
	t.Run("cw square is negative", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(Position{X: 0, Y: 0})
		p.LineTo(Position{X: 0, Y: 100})
		p.LineTo(Position{X: 100, Y: 100})
		p.LineTo(Position{X: 100, Y: 0})
		p.ClosePath()
		if got := p.Area(); got != -10000 {
			t.Errorf("Area() = %g, want -10000", got)
		}
	})
	t.Run("circle", func(t *testing.T) {
		got := circlePath(0, 0, 50).Area()
		want := math.Pi * 50 * 50
		if math.Abs(got-want)/want > 0.001 {
			t.Errorf("Area() = %g, want ~%g", got, want)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if got := NewPath().Area(); got != 0 {
			t.Errorf("Area() = %g, want 0", got)
		}
	})
}

func TestPathContains(t *testing.T) {
	square := squarePath(100)
	circle := circlePath(200, 200, 50)
	tests := []struct {
		name string
		path *Path
		pt   Position
		want bool
	}{
		{"square center", square, Position{X: 50, Y: 50}, true},
		{"square outside", square, Position{X: 150, Y: 50}, false},
		{"square far above", square, Position{X: 50, Y: 500}, false},
		{"circle center", circle, Position{X: 200, Y: 200}, true},
		{"circle near edge inside", circle, Position{X: 245, Y: 200}, true},
		{"circle near edge outside", circle, Position{X: 255, Y: 200}, false},
		{"circle corner of box", circle, Position{X: 245, Y: 245}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPathBounds(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		bounds, ok := squarePath(100).Bounds()
		if !ok {
			t.Fatal("Bounds() reported empty")
		}
		want := BoundingBox{XMin: 0, YMin: 0, XMax: 100, YMax: 100}
		if bounds != want {
			t.Errorf("Bounds() = %+v, want %+v", bounds, want)
		}
	})
	t.Run("curve extrema are tighter than control points", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(Position{X: 0, Y: 0})
		// Control points at y=150, the curve itself only reaches 112.5.
		p.CurveTo(Position{X: 0, Y: 150}, Position{X: 100, Y: 150}, Position{X: 100, Y: 0})
		p.ClosePath()
		bounds, ok := p.Bounds()
		if !ok {
			t.Fatal("Bounds() reported empty")
		}
		if math.Abs(bounds.YMax-112.5) > 1e-9 {
			t.Errorf("YMax = %g, want 112.5", bounds.YMax)
		}
	})
	t.Run("empty", func(t *testing.T) {
		if _, ok := NewPath().Bounds(); ok {
			t.Error("empty path reported bounds")
		}
	})
}

func TestPathFlatten(t *testing.T) {
	points := circlePath(0, 0, 100).Flatten(0.5)
	if len(points) < 8 {
		t.Fatalf("Flatten produced only %d points", len(points))
	}
	for i, pt := range points {
		r := pt.Length()
		if math.Abs(r-100) > 2 {
			t.Errorf("point %d at radius %g, want ~100", i, r)
		}
	}
}

func TestPathWindingNested(t *testing.T) {
	// Outer CCW square with a CW hole.
	p := squarePath(100)
	p.MoveTo(Position{X: 25, Y: 25})
	p.LineTo(Position{X: 25, Y: 75})
	p.LineTo(Position{X: 75, Y: 75})
	p.LineTo(Position{X: 75, Y: 25})
	p.ClosePath()

	if p.Contains(Position{X: 50, Y: 50}) {
		t.Error("point inside the hole reported as contained")
	}
	if !p.Contains(Position{X: 10, Y: 50}) {
		t.Error("point in the ring reported as outside")
	}
}
