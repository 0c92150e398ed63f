package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Segment is a view over a run of points in a contour: zero or more
// off-curve points followed by one on-curve point. Segments are
// computed from the contour's point list; mutating the underlying
// points is reflected the next time segments are requested.
type Segment struct {
	contour *Contour
	points  []*Point
}

// Contour returns the segment's parent contour.
func (s *Segment) Contour() *Contour { return s.contour }

// Glyph returns the glyph the segment belongs to, or nil.
func (s *Segment) Glyph() *Glyph {
	if s.contour == nil {
		return nil
	}
	return s.contour.Glyph()
}

// Points returns the segment's points, off-curves first and the
// on-curve point last.
func (s *Segment) Points() []*Point { return s.points }

// OnCurve returns the segment's on-curve point, or nil for a segment
// made entirely of off-curve points.
func (s *Segment) OnCurve() *Point {
	if len(s.points) == 0 {
		return nil
	}
	last := s.points[len(s.points)-1]
	if last.Type() == normalizers.PointTypeOffCurve {
		return nil
	}
	return last
}

// OffCurve returns the segment's off-curve points.
func (s *Segment) OffCurve() []*Point {
	if s.OnCurve() == nil {
		return s.points
	}
	return s.points[:len(s.points)-1]
}

// Type returns the segment's type, taken from the on-curve point:
// "move", "line", "curve" or "qcurve". A segment with no on-curve
// point reports "qcurve", the TrueType all-off-curve form.
func (s *Segment) Type() string {
	on := s.OnCurve()
	if on == nil {
		return normalizers.PointTypeQCurve
	}
	return on.Type()
}

// SetType converts the segment to another type. Converting a line to
// a curve inserts off-curve points on the segment's chord; converting
// a curve to a line removes the off-curve points.
func (s *Segment) SetType(value string) error {
	v, err := normalizers.SegmentType(value)
	if err != nil {
		return validationError("segment", "type", err)
	}
	on := s.OnCurve()
	if on == nil {
		return validationError("segment", "type", fmt.Errorf("segment has no on-curve point"))
	}
	if s.Type() == v {
		return nil
	}
	switch v {
	case normalizers.PointTypeMove, normalizers.PointTypeLine:
		for _, off := range s.OffCurve() {
			s.contour.removePointValue(off)
		}
		s.points = []*Point{on}
		on.typ = v
	case normalizers.PointTypeCurve, normalizers.PointTypeQCurve:
		if len(s.OffCurve()) == 0 {
			// Place the new off-curves at thirds of the chord so the
			// converted curve keeps the line's shape.
			prev := s.contour.pointBefore(on)
			start := Position{X: on.x, Y: on.y}
			if prev != nil {
				start = prev.Position()
			}
			end := on.Position()
			onIndex := on.Index()
			off1 := &Point{contour: s.contour, typ: normalizers.PointTypeOffCurve}
			off2 := &Point{contour: s.contour, typ: normalizers.PointTypeOffCurve}
			off1.x, off1.y = start.Lerp(end, 1.0/3.0).X, start.Lerp(end, 1.0/3.0).Y
			off2.x, off2.y = start.Lerp(end, 2.0/3.0).X, start.Lerp(end, 2.0/3.0).Y
			s.contour.insertPointValue(onIndex, off2)
			s.contour.insertPointValue(onIndex, off1)
			s.points = []*Point{off1, off2, on}
		}
		on.typ = v
	}
	return nil
}

// Smooth reports whether the segment's on-curve point is smooth.
func (s *Segment) Smooth() bool {
	on := s.OnCurve()
	return on != nil && on.Smooth()
}

// SetSmooth sets the smooth flag on the segment's on-curve point.
func (s *Segment) SetSmooth(value bool) {
	if on := s.OnCurve(); on != nil {
		on.SetSmooth(value)
	}
}

// Index returns the segment's position within the contour's segment
// list, or -1 when it cannot be located.
func (s *Segment) Index() int {
	if s.contour == nil {
		return -1
	}
	on := s.OnCurve()
	for i, other := range s.contour.Segments() {
		if other.OnCurve() == on && on != nil {
			return i
		}
	}
	return -1
}

// Move shifts every point in the segment by (dx, dy).
func (s *Segment) Move(dx, dy float64) error {
	return s.TransformBy(Translate(dx, dy))
}

// TransformBy applies an affine transformation to every point in the
// segment.
func (s *Segment) TransformBy(t Transformation) error {
	for _, pt := range s.points {
		if err := pt.TransformBy(t); err != nil {
			return err
		}
	}
	return nil
}

// Round rounds the coordinates of every point in the segment.
func (s *Segment) Round() {
	for _, pt := range s.points {
		pt.Round()
	}
}

func (s *Segment) String() string {
	return fmt.Sprintf("<Segment %s %d points>", s.Type(), len(s.points))
}
