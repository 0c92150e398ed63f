package fontparts

// Pen is the segment-oriented drawing protocol. Glyphs, contours and
// components describe their outlines to a Pen; recording targets such as
// Path implement it.
type Pen interface {
	// MoveTo starts a new subpath at pt.
	MoveTo(pt Position)

	// LineTo draws a straight line to pt.
	LineTo(pt Position)

	// CurveTo draws a cubic bezier through the control points cp1 and
	// cp2 to pt.
	CurveTo(cp1, cp2, pt Position)

	// QCurveTo draws a quadratic bezier. pts holds zero or more
	// off-curve points followed by the final on-curve point; runs of
	// off-curves use implied on-curve midpoints, TrueType style.
	QCurveTo(pts ...Position)

	// ClosePath closes the current subpath. The closing segment back to
	// the subpath start is implied unless it was drawn explicitly.
	ClosePath()

	// EndPath finishes an open subpath without closing it.
	EndPath()

	// AddComponent inserts a reference to another glyph, transformed.
	AddComponent(baseGlyph string, transformation Transformation)
}

// PointPen is the point-oriented drawing protocol. It exposes the raw
// point structure of contours, including off-curve points, names and
// identifiers, without segment interpretation.
type PointPen interface {
	// BeginPath starts a new contour. identifier may be empty.
	BeginPath(identifier string)

	// AddPoint adds a point to the current contour. typ is one of the
	// on-curve point types ("move", "line", "curve", "qcurve"), or ""
	// for an off-curve point; name and identifier may be empty.
	AddPoint(pt Position, typ string, smooth bool, name, identifier string)

	// EndPath finishes the current contour.
	EndPath()

	// AddComponent inserts a reference to another glyph, transformed.
	// identifier may be empty.
	AddComponent(baseGlyph string, transformation Transformation, identifier string)
}

// transformPen forwards drawing calls to another Pen with every position
// pushed through a transformation. Used when decomposing components.
type transformPen struct {
	out Pen
	t   Transformation
}

func (p *transformPen) MoveTo(pt Position) { p.out.MoveTo(p.t.TransformPosition(pt)) }
func (p *transformPen) LineTo(pt Position) { p.out.LineTo(p.t.TransformPosition(pt)) }

func (p *transformPen) CurveTo(cp1, cp2, pt Position) {
	p.out.CurveTo(p.t.TransformPosition(cp1), p.t.TransformPosition(cp2), p.t.TransformPosition(pt))
}

func (p *transformPen) QCurveTo(pts ...Position) {
	out := make([]Position, len(pts))
	for i, pt := range pts {
		out[i] = p.t.TransformPosition(pt)
	}
	p.out.QCurveTo(out...)
}

func (p *transformPen) ClosePath() { p.out.ClosePath() }
func (p *transformPen) EndPath()   { p.out.EndPath() }

func (p *transformPen) AddComponent(baseGlyph string, transformation Transformation) {
	p.out.AddComponent(baseGlyph, p.t.Multiply(transformation))
}

// decomposePen forwards drawing calls to another Pen, resolving
// AddComponent calls against a layer so nested references flatten into
// plain outlines. Unresolvable or cyclic references are skipped with a
// warning.
type decomposePen struct {
	out   Pen
	layer *Layer
	seen  map[string]bool
}

func newDecomposePen(out Pen, layer *Layer) *decomposePen {
	return &decomposePen{out: out, layer: layer, seen: make(map[string]bool)}
}

func (p *decomposePen) MoveTo(pt Position)            { p.out.MoveTo(pt) }
func (p *decomposePen) LineTo(pt Position)            { p.out.LineTo(pt) }
func (p *decomposePen) CurveTo(cp1, cp2, pt Position) { p.out.CurveTo(cp1, cp2, pt) }
func (p *decomposePen) QCurveTo(pts ...Position)      { p.out.QCurveTo(pts...) }
func (p *decomposePen) ClosePath()                    { p.out.ClosePath() }
func (p *decomposePen) EndPath()                      { p.out.EndPath() }

func (p *decomposePen) AddComponent(baseGlyph string, transformation Transformation) {
	if p.layer == nil {
		return
	}
	base := p.layer.glyphNamed(baseGlyph)
	if base == nil {
		Logger().Warn("skipping unresolvable component", "baseGlyph", baseGlyph)
		return
	}
	if p.seen[baseGlyph] {
		Logger().Warn("skipping cyclic component reference", "baseGlyph", baseGlyph)
		return
	}
	p.seen[baseGlyph] = true
	base.Draw(&transformPen{out: p, t: transformation})
	delete(p.seen, baseGlyph)
}
