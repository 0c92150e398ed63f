package fontparts

import "math"

// Position is an (x, y) coordinate in font units. Outline code also
// uses it as a displacement, for example between an off-curve handle
// and its anchor.
type Position struct {
	X, Y float64
}

// Pos is shorthand for building a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns the coordinate moved by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the displacement scaled by s.
func (p Position) Mul(s float64) Position {
	return Position{X: p.X * s, Y: p.Y * s}
}

// Cross returns the scalar cross product. Its sign gives the turn
// direction, which winding and area computations rely on.
func (p Position) Cross(q Position) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the displacement.
func (p Position) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length, avoiding the square root
// when only comparisons are needed.
func (p Position) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the distance between two coordinates.
func (p Position) Distance(q Position) float64 {
	return p.Sub(q).Length()
}

// Lerp interpolates between two coordinates. t=0 returns p, t=1
// returns q. Pointwise glyph interpolation is built on this.
func (p Position) Lerp(q Position, t float64) Position {
	return Position{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Round snaps both coordinates to integer font units using visual
// rounding: ties round toward positive infinity, so 0.5 lands on 1
// and -0.5 lands on 0.
func (p Position) Round() Position {
	return Position{
		X: math.Floor(p.X + 0.5),
		Y: math.Floor(p.Y + 0.5),
	}
}

// BoundingBox is the axis-aligned extent of an outline in font units,
// expressed as (xMin, yMin, xMax, yMax) in the usual font convention.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

// NewBoundingBox builds a bounding box from two corner coordinates,
// normalized so the minimums do not exceed the maximums.
func NewBoundingBox(p1, p2 Position) BoundingBox {
	return BoundingBox{
		XMin: math.Min(p1.X, p2.X),
		YMin: math.Min(p1.Y, p2.Y),
		XMax: math.Max(p1.X, p2.X),
		YMax: math.Max(p1.Y, p2.Y),
	}
}

// Width returns xMax - xMin.
func (b BoundingBox) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns yMax - yMin.
func (b BoundingBox) Height() float64 {
	return b.YMax - b.YMin
}

// Union returns the smallest bounding box containing both b and other.
// Glyph bounds accumulate contour and component boxes this way.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, other.XMin),
		YMin: math.Min(b.YMin, other.YMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

// Contains reports whether the coordinate lies inside the bounding
// box, edges included.
func (b BoundingBox) Contains(p Position) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// expand grows the bounding box to include the coordinate.
func (b BoundingBox) expand(p Position) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, p.X),
		YMin: math.Min(b.YMin, p.Y),
		XMax: math.Max(b.XMax, p.X),
		YMax: math.Max(b.YMax, p.Y),
	}
}
