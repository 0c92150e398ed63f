package fontparts

// PathElement represents a single element in a recorded path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Position
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Position
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic bezier curve.
type QuadTo struct {
	Control Position
	Point   Position
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic bezier curve.
type CubicTo struct {
	Control1 Position
	Control2 Position
	Point    Position
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// ComponentRef records an AddComponent call made against a Path.
type ComponentRef struct {
	BaseGlyph      string
	Transformation Transformation
}

// Path is a recorded outline. It implements Pen, so glyphs and contours
// can be drawn into it, and exposes the geometric queries (bounds, area,
// winding) the object model is built on.
type Path struct {
	elements   []PathElement
	components []ComponentRef
	start      Position // starting point of current subpath
	current    Position // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo implements Pen.
func (p *Path) MoveTo(pt Position) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo implements Pen.
func (p *Path) LineTo(pt Position) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CurveTo implements Pen.
func (p *Path) CurveTo(cp1, cp2, pt Position) {
	p.elements = append(p.elements, CubicTo{Control1: cp1, Control2: cp2, Point: pt})
	p.current = pt
}

// QCurveTo implements Pen. Runs of multiple off-curve points are split
// at their implied on-curve midpoints, TrueType style.
func (p *Path) QCurveTo(pts ...Position) {
	if len(pts) == 0 {
		return
	}
	offCurves := pts[:len(pts)-1]
	on := pts[len(pts)-1]
	if len(offCurves) == 0 {
		p.LineTo(on)
		return
	}
	for i := 0; i < len(offCurves)-1; i++ {
		implied := offCurves[i].Lerp(offCurves[i+1], 0.5)
		p.elements = append(p.elements, QuadTo{Control: offCurves[i], Point: implied})
	}
	p.elements = append(p.elements, QuadTo{Control: offCurves[len(offCurves)-1], Point: on})
	p.current = on
}

// ClosePath implements Pen.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// EndPath implements Pen. Open subpaths need no terminator in the
// recorded form.
func (p *Path) EndPath() {}

// AddComponent implements Pen. References are recorded as-is; use a
// decomposing pen to flatten them.
func (p *Path) AddComponent(baseGlyph string, transformation Transformation) {
	p.components = append(p.components, ComponentRef{
		BaseGlyph:      baseGlyph,
		Transformation: transformation,
	})
}

// Elements returns the recorded path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Components returns the recorded component references.
func (p *Path) Components() []ComponentRef {
	return p.components
}

// IsEmpty reports whether the path records no outline and no components.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0 && len(p.components) == 0
}

// Transform returns a new path with all positions transformed.
func (p *Path) Transform(t Transformation) *Path {
	out := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.MoveTo(t.TransformPosition(e.Point))
		case LineTo:
			out.LineTo(t.TransformPosition(e.Point))
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: t.TransformPosition(e.Control),
				Point:   t.TransformPosition(e.Point),
			})
			out.current = t.TransformPosition(e.Point)
		case CubicTo:
			out.CurveTo(
				t.TransformPosition(e.Control1),
				t.TransformPosition(e.Control2),
				t.TransformPosition(e.Point),
			)
		case Close:
			out.ClosePath()
		}
	}
	for _, c := range p.components {
		out.AddComponent(c.BaseGlyph, t.Multiply(c.Transformation))
	}
	return out
}
