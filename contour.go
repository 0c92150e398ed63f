package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Contour is an ordered list of points forming one outline of a glyph.
// A contour whose first point has type "move" is open; all other
// contours are closed.
type Contour struct {
	glyph *Glyph

	points     []*Point
	identifier string
	selected   bool
}

// NewContour returns an empty contour with no parent. Use
// Glyph.AppendContour to attach it to a glyph.
func NewContour() *Contour {
	return &Contour{}
}

// Glyph returns the contour's parent glyph, or nil.
func (c *Contour) Glyph() *Glyph { return c.glyph }

// Layer returns the layer the contour belongs to, or nil.
func (c *Contour) Layer() *Layer {
	if c.glyph == nil {
		return nil
	}
	return c.glyph.Layer()
}

// Font returns the font the contour belongs to, or nil.
func (c *Contour) Font() *Font {
	if l := c.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Index returns the contour's position within its parent glyph, or -1.
func (c *Contour) Index() int {
	if c.glyph == nil {
		return -1
	}
	for i, other := range c.glyph.contours {
		if other == c {
			return i
		}
	}
	return -1
}

// Identifier returns the contour's identifier, or "" when none has
// been generated.
func (c *Contour) Identifier() string { return c.identifier }

// GenerateIdentifier assigns the contour a new unique identifier if it
// does not already have one, and returns it.
func (c *Contour) GenerateIdentifier() string {
	if c.identifier == "" {
		c.identifier = newIdentifier()
	}
	return c.identifier
}

// SetIdentifier sets the contour's identifier.
func (c *Contour) SetIdentifier(value string) error {
	v, err := normalizers.Identifier(value)
	if err != nil {
		return validationError("contour", "identifier", err)
	}
	c.identifier = v
	return nil
}

// Selected reports whether the contour is selected.
func (c *Contour) Selected() bool { return c.selected }

// SetSelected sets the contour's selection state.
func (c *Contour) SetSelected(value bool) { c.selected = value }

// Open reports whether the contour is open. An empty contour is open.
func (c *Contour) Open() bool {
	if len(c.points) == 0 {
		return true
	}
	return c.points[0].typ == normalizers.PointTypeMove
}

// Points returns the contour's points in order.
func (c *Contour) Points() []*Point { return c.points }

// Point returns the point at index.
func (c *Contour) Point(index int) (*Point, error) {
	if index < 0 || index >= len(c.points) {
		return nil, fmt.Errorf("point index %d: %w", index, ErrNotFound)
	}
	return c.points[index], nil
}

// AppendPoint adds a point to the end of the contour.
func (c *Contour) AppendPoint(pos Position, typ string, smooth bool, name string) (*Point, error) {
	return c.InsertPoint(len(c.points), pos, typ, smooth, name)
}

// InsertPoint inserts a point at index.
func (c *Contour) InsertPoint(index int, pos Position, typ string, smooth bool, name string) (*Point, error) {
	if index < 0 || index > len(c.points) {
		return nil, fmt.Errorf("point index %d: %w", index, ErrNotFound)
	}
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return nil, validationError("point", "position", err)
	}
	t, err := normalizers.PointType(typ)
	if err != nil {
		return nil, validationError("point", "type", err)
	}
	pt := &Point{contour: c, x: x, y: y, typ: t, smooth: smooth}
	if name != "" {
		if err := pt.SetName(name); err != nil {
			return nil, err
		}
	}
	c.insertPointValue(index, pt)
	return pt, nil
}

// RemovePoint removes the point at index.
func (c *Contour) RemovePoint(index int) error {
	if index < 0 || index >= len(c.points) {
		return fmt.Errorf("point index %d: %w", index, ErrNotFound)
	}
	c.removePointValue(c.points[index])
	return nil
}

func (c *Contour) insertPointValue(index int, pt *Point) {
	pt.contour = c
	c.points = append(c.points, nil)
	copy(c.points[index+1:], c.points[index:])
	c.points[index] = pt
}

func (c *Contour) removePointValue(pt *Point) {
	for i, other := range c.points {
		if other == pt {
			c.points = append(c.points[:i], c.points[i+1:]...)
			pt.contour = nil
			return
		}
	}
}

// pointBefore returns the point before pt, wrapping on closed
// contours and returning nil at the start of an open contour.
func (c *Contour) pointBefore(pt *Point) *Point {
	i := pt.Index()
	if i < 0 {
		return nil
	}
	if i == 0 {
		if c.Open() || len(c.points) < 2 {
			return nil
		}
		return c.points[len(c.points)-1]
	}
	return c.points[i-1]
}

// pointAfter returns the point after pt, wrapping on closed contours
// and returning nil at the end of an open contour.
func (c *Contour) pointAfter(pt *Point) *Point {
	i := pt.Index()
	if i < 0 {
		return nil
	}
	if i == len(c.points)-1 {
		if c.Open() || len(c.points) < 2 {
			return nil
		}
		return c.points[0]
	}
	return c.points[i+1]
}

// Segments returns the contour's segments, computed from the point
// list. Each segment holds zero or more off-curve points followed by
// an on-curve point. On closed contours, trailing off-curve points
// wrap around to the first segment.
func (c *Contour) Segments() []*Segment {
	if len(c.points) == 0 {
		return nil
	}
	var segments []*Segment
	var pending []*Point
	for _, pt := range c.points {
		if pt.typ == normalizers.PointTypeOffCurve {
			pending = append(pending, pt)
			continue
		}
		run := make([]*Point, 0, len(pending)+1)
		run = append(run, pending...)
		run = append(run, pt)
		segments = append(segments, &Segment{contour: c, points: run})
		pending = nil
	}
	if len(pending) > 0 {
		if len(segments) == 0 {
			// A contour made entirely of off-curve points, the
			// TrueType quadratic form.
			return []*Segment{{contour: c, points: pending}}
		}
		if !c.Open() {
			first := segments[0]
			run := make([]*Point, 0, len(pending)+len(first.points))
			run = append(run, pending...)
			run = append(run, first.points...)
			first.points = run
		} else {
			segments = append(segments, &Segment{contour: c, points: pending})
		}
	}
	return segments
}

// Segment returns the segment at index.
func (c *Contour) Segment(index int) (*Segment, error) {
	segments := c.Segments()
	if index < 0 || index >= len(segments) {
		return nil, fmt.Errorf("segment index %d: %w", index, ErrNotFound)
	}
	return segments[index], nil
}

// AppendSegment adds a segment to the end of the contour. The last
// position is the on-curve point; the rest are off-curves.
func (c *Contour) AppendSegment(typ string, positions []Position, smooth bool) (*Segment, error) {
	return c.InsertSegment(len(c.Segments()), typ, positions, smooth)
}

// InsertSegment inserts a segment at index.
func (c *Contour) InsertSegment(index int, typ string, positions []Position, smooth bool) (*Segment, error) {
	t, err := normalizers.SegmentType(typ)
	if err != nil {
		return nil, validationError("segment", "type", err)
	}
	if len(positions) == 0 {
		return nil, validationError("segment", "points", fmt.Errorf("segment requires at least one point"))
	}
	segments := c.Segments()
	if index < 0 || index > len(segments) {
		return nil, fmt.Errorf("segment index %d: %w", index, ErrNotFound)
	}
	at := len(c.points)
	if index < len(segments) {
		first := segments[index].points[0]
		at = first.Index()
	}
	run := make([]*Point, 0, len(positions))
	for i, pos := range positions {
		x, y, perr := normalizers.CoordinatePair(pos.X, pos.Y)
		if perr != nil {
			return nil, validationError("point", "position", perr)
		}
		pt := &Point{contour: c, x: x, y: y, typ: normalizers.PointTypeOffCurve}
		if i == len(positions)-1 {
			pt.typ = t
			pt.smooth = smooth
		}
		run = append(run, pt)
	}
	for i, pt := range run {
		c.insertPointValue(at+i, pt)
	}
	return &Segment{contour: c, points: run}, nil
}

// RemoveSegment removes the segment at index, deleting its points.
func (c *Contour) RemoveSegment(index int) error {
	segments := c.Segments()
	if index < 0 || index >= len(segments) {
		return fmt.Errorf("segment index %d: %w", index, ErrNotFound)
	}
	for _, pt := range segments[index].points {
		c.removePointValue(pt)
	}
	return nil
}

// SetStartSegment rotates a closed contour so the segment at index
// becomes the first segment.
func (c *Contour) SetStartSegment(index int) error {
	if c.Open() {
		return fmt.Errorf("cannot set the start segment of an open contour: %w", ErrUnsupported)
	}
	segments := c.Segments()
	if index < 0 || index >= len(segments) {
		return fmt.Errorf("segment index %d: %w", index, ErrNotFound)
	}
	on := segments[index].OnCurve()
	if on == nil {
		return fmt.Errorf("segment %d has no on-curve point: %w", index, ErrUnsupported)
	}
	at := on.Index()
	rotated := make([]*Point, 0, len(c.points))
	rotated = append(rotated, c.points[at:]...)
	rotated = append(rotated, c.points[:at]...)
	c.points = rotated
	return nil
}

// SetStartPoint rotates a closed contour so the point at index becomes
// the first point. The point must be on-curve.
func (c *Contour) SetStartPoint(index int) error {
	if c.Open() {
		return fmt.Errorf("cannot set the start point of an open contour: %w", ErrUnsupported)
	}
	if index < 0 || index >= len(c.points) {
		return fmt.Errorf("point index %d: %w", index, ErrNotFound)
	}
	if index == 0 {
		return nil
	}
	if c.points[index].typ == normalizers.PointTypeOffCurve {
		return fmt.Errorf("cannot start a contour on an off-curve point: %w", ErrUnsupported)
	}
	rotated := make([]*Point, 0, len(c.points))
	rotated = append(rotated, c.points[index:]...)
	rotated = append(rotated, c.points[:index]...)
	c.points = rotated
	return nil
}

// AutoStartSegment rotates a closed contour so it starts at the
// on-curve point with the lowest y, breaking ties by lowest x.
func (c *Contour) AutoStartSegment() error {
	if c.Open() {
		return nil
	}
	segments := c.Segments()
	best := -1
	var bestPos Position
	for i, seg := range segments {
		on := seg.OnCurve()
		if on == nil {
			continue
		}
		pos := on.Position()
		if best == -1 || pos.Y < bestPos.Y || (pos.Y == bestPos.Y && pos.X < bestPos.X) {
			best = i
			bestPos = pos
		}
	}
	if best <= 0 {
		return nil
	}
	return c.SetStartSegment(best)
}

// BPoints returns the contour's bPoints, one per on-curve point.
func (c *Contour) BPoints() []*BPoint {
	var bPoints []*BPoint
	for _, seg := range c.Segments() {
		if on := seg.OnCurve(); on != nil {
			bPoints = append(bPoints, &BPoint{contour: c, anchor: on})
		}
	}
	return bPoints
}

// BPoint returns the bPoint at index.
func (c *Contour) BPoint(index int) (*BPoint, error) {
	bPoints := c.BPoints()
	if index < 0 || index >= len(bPoints) {
		return nil, fmt.Errorf("bPoint index %d: %w", index, ErrNotFound)
	}
	return bPoints[index], nil
}

// AppendBPoint adds a bPoint to the end of the contour. bcpIn and
// bcpOut are offsets relative to the anchor; zero offsets mean no
// handle.
func (c *Contour) AppendBPoint(typ string, anchor, bcpIn, bcpOut Position) (*BPoint, error) {
	return c.InsertBPoint(len(c.BPoints()), typ, anchor, bcpIn, bcpOut)
}

// InsertBPoint inserts a bPoint at index.
func (c *Contour) InsertBPoint(index int, typ string, anchor, bcpIn, bcpOut Position) (*BPoint, error) {
	t, err := normalizers.BPointType(typ)
	if err != nil {
		return nil, validationError("bPoint", "type", err)
	}
	smooth := t == normalizers.BPointTypeCurve
	if _, err := c.InsertSegment(index, normalizers.PointTypeLine, []Position{anchor}, smooth); err != nil {
		return nil, err
	}
	bPoint, err := c.BPoint(index)
	if err != nil {
		return nil, err
	}
	if bcpIn != (Position{}) {
		if err := bPoint.SetBCPIn(bcpIn); err != nil {
			return nil, err
		}
	}
	if bcpOut != (Position{}) {
		if err := bPoint.SetBCPOut(bcpOut); err != nil {
			return nil, err
		}
	}
	return bPoint, nil
}

// RemoveBPoint removes the bPoint at index together with its handles.
func (c *Contour) RemoveBPoint(index int) error {
	bPoints := c.BPoints()
	if index < 0 || index >= len(bPoints) {
		return fmt.Errorf("bPoint index %d: %w", index, ErrNotFound)
	}
	anchor := bPoints[index].anchor
	if after := c.pointAfter(anchor); after != nil && after.typ == normalizers.PointTypeOffCurve {
		c.removePointValue(after)
	}
	if before := c.pointBefore(anchor); before != nil && before.typ == normalizers.PointTypeOffCurve {
		c.removePointValue(before)
	}
	c.removePointValue(anchor)
	return nil
}

// Draw renders the contour through a segment pen.
func (c *Contour) Draw(pen Pen) {
	segments := c.Segments()
	if len(segments) == 0 {
		return
	}

	// Wholly off-curve contour: synthesize the implied start point.
	if segments[0].OnCurve() == nil {
		pts := segments[0].points
		start := pts[len(pts)-1].Position().Lerp(pts[0].Position(), 0.5)
		pen.MoveTo(start)
		positions := make([]Position, 0, len(pts)+1)
		for _, pt := range pts {
			positions = append(positions, pt.Position())
		}
		positions = append(positions, start)
		pen.QCurveTo(positions...)
		pen.ClosePath()
		return
	}

	open := c.Open()
	start := segments[0].OnCurve().Position()
	pen.MoveTo(start)
	current := start
	for _, seg := range segments[1:] {
		current = drawSegment(pen, seg, current)
	}
	if open {
		pen.EndPath()
		return
	}
	// The first segment's off-curve points close the contour.
	if len(segments[0].OffCurve()) > 0 {
		drawSegment(pen, segments[0], current)
	}
	pen.ClosePath()
}

func drawSegment(pen Pen, seg *Segment, current Position) Position {
	on := seg.OnCurve().Position()
	off := seg.OffCurve()
	switch seg.Type() {
	case normalizers.PointTypeLine, normalizers.PointTypeMove:
		pen.LineTo(on)
	case normalizers.PointTypeCurve:
		switch len(off) {
		case 0:
			pen.LineTo(on)
		case 1:
			// Elevate the quadratic to a cubic.
			q := off[0].Position()
			cp1 := current.Lerp(q, 2.0/3.0)
			cp2 := on.Lerp(q, 2.0/3.0)
			pen.CurveTo(cp1, cp2, on)
		default:
			pen.CurveTo(off[0].Position(), off[1].Position(), on)
		}
	case normalizers.PointTypeQCurve:
		positions := make([]Position, 0, len(off)+1)
		for _, pt := range off {
			positions = append(positions, pt.Position())
		}
		positions = append(positions, on)
		pen.QCurveTo(positions...)
	}
	return on
}

// DrawPoints renders the contour through a point pen.
func (c *Contour) DrawPoints(pen PointPen) {
	pen.BeginPath(c.identifier)
	for _, pt := range c.points {
		typ := pt.typ
		if typ == normalizers.PointTypeOffCurve {
			typ = ""
		}
		pen.AddPoint(pt.Position(), typ, pt.smooth, pt.name, pt.identifier)
	}
	pen.EndPath()
}

// path records the contour into a Path for geometric queries.
func (c *Contour) path() *Path {
	p := NewPath()
	c.Draw(p)
	return p
}

// Bounds returns the contour's bounding box. The second return value
// is false for an empty contour.
func (c *Contour) Bounds() (BoundingBox, bool) {
	return c.path().Bounds()
}

// Area returns the contour's signed area. With y increasing upward,
// counter-clockwise contours have positive area.
func (c *Contour) Area() float64 {
	return c.path().Area()
}

// Clockwise reports whether the contour winds clockwise.
func (c *Contour) Clockwise() bool {
	return c.Area() < 0
}

// SetClockwise reverses the contour if needed so it winds in the
// requested direction.
func (c *Contour) SetClockwise(value bool) {
	if c.Clockwise() != value {
		c.Reverse()
	}
}

// PointInside reports whether a position is inside the contour, using
// the non-zero fill rule.
func (c *Contour) PointInside(pos Position) bool {
	return c.path().Contains(pos)
}

// ContourInside reports whether other lies entirely inside this
// contour, judged by its on-curve points.
func (c *Contour) ContourInside(other *Contour) bool {
	p := c.path()
	any := false
	for _, pt := range other.points {
		if pt.typ == normalizers.PointTypeOffCurve {
			continue
		}
		any = true
		if !p.Contains(pt.Position()) {
			return false
		}
	}
	return any
}

// Reverse reverses the contour's winding direction. Closed contours
// keep their start point.
func (c *Contour) Reverse() {
	segments := c.Segments()
	m := len(segments)
	if m < 2 {
		if m == 1 && segments[0].OnCurve() == nil {
			// All off-curve: plain list reversal is enough.
			for i, j := 0, len(c.points)-1; i < j; i, j = i+1, j-1 {
				c.points[i], c.points[j] = c.points[j], c.points[i]
			}
		}
		return
	}

	anchors := make([]*Point, m)
	types := make([]string, m)
	offs := make([][]*Point, m)
	for i, seg := range segments {
		on := seg.OnCurve()
		if on == nil {
			return
		}
		anchors[i] = on
		types[i] = on.typ
		offs[i] = seg.OffCurve()
	}

	reversedOff := func(run []*Point) []*Point {
		out := make([]*Point, len(run))
		for i, pt := range run {
			out[len(run)-1-i] = pt
		}
		return out
	}

	var newPoints []*Point
	if c.Open() {
		// New start is the old end; the type of each reversed segment
		// comes from the segment it retraces.
		newPoints = append(newPoints, anchors[m-1])
		anchors[m-1].typ = normalizers.PointTypeMove
		for j := 1; j < m; j++ {
			src := m - j
			newPoints = append(newPoints, reversedOff(offs[src])...)
			anchors[m-1-j].typ = types[src]
			newPoints = append(newPoints, anchors[m-1-j])
		}
	} else {
		newPoints = append(newPoints, anchors[0])
		prev := 0
		for j := 1; j < m; j++ {
			dst := m - j
			newPoints = append(newPoints, reversedOff(offs[prev])...)
			anchors[dst].typ = types[prev]
			prev = dst
			newPoints = append(newPoints, anchors[dst])
		}
		// Closing run wraps to the end of the list.
		closing := reversedOff(offs[prev])
		anchors[0].typ = types[prev]
		newPoints = append(newPoints, closing...)
	}
	c.points = newPoints
}

// Move shifts the contour by (dx, dy).
func (c *Contour) Move(dx, dy float64) error {
	return c.TransformBy(Translate(dx, dy))
}

// Scale scales the contour about an origin.
func (c *Contour) Scale(sx, sy float64, origin Position) error {
	return c.transformAbout(ScaleTransform(sx, sy), origin)
}

// Rotate rotates the contour by an angle in degrees about an origin.
func (c *Contour) Rotate(degrees float64, origin Position) error {
	angle, err := normalizers.RotationAngle(degrees)
	if err != nil {
		return validationError("contour", "angle", err)
	}
	return c.transformAbout(Rotate(angle), origin)
}

// Skew skews the contour by angles in degrees about an origin.
func (c *Contour) Skew(xDegrees, yDegrees float64, origin Position) error {
	return c.transformAbout(Skew(xDegrees, yDegrees), origin)
}

func (c *Contour) transformAbout(t Transformation, origin Position) error {
	full := Translate(-origin.X, -origin.Y).Multiply(t).Multiply(Translate(origin.X, origin.Y))
	return c.TransformBy(full)
}

// TransformBy applies an affine transformation to every point.
func (c *Contour) TransformBy(t Transformation) error {
	for _, pt := range c.points {
		if err := pt.TransformBy(t); err != nil {
			return err
		}
	}
	return nil
}

// Round rounds every point's coordinates to integers.
func (c *Contour) Round() {
	for _, pt := range c.points {
		pt.Round()
	}
}

// Copy returns a detached deep copy of the contour, identifiers
// excluded.
func (c *Contour) Copy() *Contour {
	out := &Contour{}
	for _, pt := range c.points {
		cp := pt.copyPoint()
		cp.contour = out
		out.points = append(out.points, cp)
	}
	return out
}

func (c *Contour) String() string {
	return fmt.Sprintf("<Contour %d points>", len(c.points))
}
