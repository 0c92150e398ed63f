package fontparts

import "math"

// Geometric queries over recorded paths: signed area, winding number,
// containment, tight bounding boxes and flattening. The object model's
// bounds/area/pointInside operations all reduce to these.

// Area returns the signed area enclosed by the path, using the shoelace
// formula extended for curves (Green's theorem). With y increasing
// upward, counter-clockwise subpaths contribute positive area. Open
// subpaths are treated as if closed.
func (p *Path) Area() float64 {
	var area float64
	var current, start Position

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			// Close the preceding subpath implicitly.
			area += lineArea(current, start)
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}
	area += lineArea(current, start)

	return area
}

// lineArea computes the contribution of a line segment to the signed
// area: 0.5 * (x0*y1 - x1*y0).
func lineArea(p0, p1 Position) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea integrates x*dy over a quadratic bezier.
func quadArea(p0, p1, p2 Position) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + p1.X*(-p0.Y+p2.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6.0
}

// cubicArea integrates x*dy over a cubic bezier.
func cubicArea(p0, p1, p2, p3 Position) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for the non-zero fill rule). Open
// subpaths are treated as if closed.
func (p *Path) Winding(pt Position) int {
	var winding int
	var current, start Position

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			winding += lineWinding(current, start, pt)
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case QuadTo:
			winding += quadWinding(current, e.Control, e.Point, pt)
			current = e.Point
		case CubicTo:
			winding += cubicWinding(current, e.Control1, e.Control2, e.Point, pt)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
		}
	}
	winding += lineWinding(current, start, pt)

	return winding
}

// Contains tests whether a point is inside the path using the non-zero
// fill rule.
func (p *Path) Contains(pt Position) bool {
	return p.Winding(pt) != 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Position) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing.
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing.
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if
// right, zero if on the line.
func isLeft(p0, p1, pt Position) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// windingTolerance is the flatness threshold used when flattening curves
// for winding tests, in font units.
const windingTolerance = 0.1

// quadWinding computes the winding contribution of a quadratic bezier.
func quadWinding(p0, p1, p2, pt Position) int {
	minY := math.Min(math.Min(p0.Y, p1.Y), p2.Y)
	maxY := math.Max(math.Max(p0.Y, p1.Y), p2.Y)
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	maxX := math.Max(math.Max(p0.X, p1.X), p2.X)
	if pt.X > maxX {
		return 0
	}

	var winding int
	quadWindingRecursive(QuadBez{p0, p1, p2}, pt, &winding)
	return winding
}

func quadWindingRecursive(q QuadBez, pt Position, winding *int) {
	// Flatness test: distance from control point to chord midpoint.
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).Length() <= windingTolerance {
		*winding += lineWinding(q.P0, q.P2, pt)
		return
	}
	q1, q2 := q.Subdivide()
	quadWindingRecursive(q1, pt, winding)
	quadWindingRecursive(q2, pt, winding)
}

// cubicWinding computes the winding contribution of a cubic bezier.
func cubicWinding(p0, p1, p2, p3, pt Position) int {
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	if pt.X > maxX {
		return 0
	}

	var winding int
	cubicWindingRecursive(CubicBez{p0, p1, p2, p3}, pt, &winding)
	return winding
}

func cubicWindingRecursive(c CubicBez, pt Position, winding *int) {
	if cubicFlatness(c) <= windingTolerance {
		*winding += lineWinding(c.P0, c.P3, pt)
		return
	}
	c1, c2 := c.Subdivide()
	cubicWindingRecursive(c1, pt, winding)
	cubicWindingRecursive(c2, pt, winding)
}

// cubicFlatness returns the squared-distance flatness metric of a cubic.
func cubicFlatness(c CubicBez) float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y
	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// Bounds returns the tight axis-aligned bounding box of the path, using
// curve extrema for accuracy. The second return value is false when the
// path records no outline.
func (p *Path) Bounds() (BoundingBox, bool) {
	if len(p.elements) == 0 {
		return BoundingBox{}, false
	}

	bbox := BoundingBox{
		XMin: math.MaxFloat64,
		YMin: math.MaxFloat64,
		XMax: -math.MaxFloat64,
		YMax: -math.MaxFloat64,
	}
	var current Position
	seen := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = bbox.expand(e.Point)
			current = e.Point
			seen = true
		case LineTo:
			bbox = bbox.expand(e.Point)
			current = e.Point
			seen = true
		case QuadTo:
			bbox = bbox.Union(QuadBez{current, e.Control, e.Point}.BoundingBox())
			current = e.Point
			seen = true
		case CubicTo:
			bbox = bbox.Union(CubicBez{current, e.Control1, e.Control2, e.Point}.BoundingBox())
			current = e.Point
			seen = true
		case Close:
			// Close adds no new points.
		}
	}

	if !seen {
		return BoundingBox{}, false
	}
	return bbox, true
}

// Flatten converts all curves to line segments within the given
// tolerance (maximum distance from the true curve) and returns the
// resulting polyline points.
func (p *Path) Flatten(tolerance float64) []Position {
	if len(p.elements) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}

	points := make([]Position, 0, len(p.elements)*4)
	emit := func(pt Position) { points = append(points, pt) }

	var current, start Position
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			emit(e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuadRecursive(QuadBez{current, e.Control, e.Point}, tolerance*tolerance, emit)
			current = e.Point
		case CubicTo:
			flattenCubicRecursive(CubicBez{current, e.Control1, e.Control2, e.Point}, tolerance*tolerance, emit)
			current = e.Point
		case Close:
			if current != start {
				emit(start)
			}
			current = start
		}
	}
	return points
}

func flattenQuadRecursive(q QuadBez, toleranceSq float64, emit func(Position)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).LengthSquared() <= toleranceSq {
		emit(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuadRecursive(q1, toleranceSq, emit)
	flattenQuadRecursive(q2, toleranceSq, emit)
}

func flattenCubicRecursive(c CubicBez, toleranceSq float64, emit func(Position)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		emit(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicRecursive(c1, toleranceSq, emit)
	flattenCubicRecursive(c2, toleranceSq, emit)
}
