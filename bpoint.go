package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// BPoint is a bezier-handle view over a contour's on-curve point: the
// anchor position plus the incoming and outgoing control handles,
// expressed relative to the anchor. BPoints are computed from the
// contour's point list the way Segments are.
type BPoint struct {
	contour *Contour
	anchor  *Point
}

// Contour returns the bPoint's parent contour.
func (b *BPoint) Contour() *Contour { return b.contour }

// Glyph returns the glyph the bPoint belongs to, or nil.
func (b *BPoint) Glyph() *Glyph {
	if b.contour == nil {
		return nil
	}
	return b.contour.Glyph()
}

// Anchor returns the position of the on-curve point.
func (b *BPoint) Anchor() Position { return b.anchor.Position() }

// SetAnchor moves the on-curve point, dragging its handles with it.
func (b *BPoint) SetAnchor(pos Position) error {
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("bPoint", "anchor", err)
	}
	bcpIn := b.BCPIn()
	bcpOut := b.BCPOut()
	b.anchor.x, b.anchor.y = x, y
	if err := b.setBCPIn(bcpIn); err != nil {
		return err
	}
	return b.setBCPOut(bcpOut)
}

// BCPIn returns the incoming control handle relative to the anchor.
// (0, 0) means no incoming handle.
func (b *BPoint) BCPIn() Position {
	in := b.inHandle()
	if in == nil {
		return Position{}
	}
	return in.Position().Sub(b.anchor.Position())
}

// SetBCPIn sets the incoming control handle relative to the anchor.
// Setting (0, 0) removes the handle.
func (b *BPoint) SetBCPIn(pos Position) error {
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("bPoint", "bcpIn", err)
	}
	return b.setBCPIn(Position{X: x, Y: y})
}

func (b *BPoint) setBCPIn(rel Position) error {
	in := b.inHandle()
	if rel == (Position{}) {
		if in != nil {
			b.contour.removePointValue(in)
			// The segment ending on the anchor loses its curve.
			if b.inHandle() == nil && b.anchor.typ == normalizers.PointTypeCurve {
				b.anchor.typ = normalizers.PointTypeLine
			}
		}
		return nil
	}
	abs := b.anchor.Position().Add(rel)
	if in == nil {
		idx := b.anchor.Index()
		pt := &Point{contour: b.contour, typ: normalizers.PointTypeOffCurve, x: abs.X, y: abs.Y}
		b.contour.insertPointValue(idx, pt)
		if b.anchor.typ == normalizers.PointTypeLine {
			b.anchor.typ = normalizers.PointTypeCurve
		}
		return nil
	}
	in.x, in.y = abs.X, abs.Y
	return nil
}

// BCPOut returns the outgoing control handle relative to the anchor.
// (0, 0) means no outgoing handle.
func (b *BPoint) BCPOut() Position {
	out := b.outHandle()
	if out == nil {
		return Position{}
	}
	return out.Position().Sub(b.anchor.Position())
}

// SetBCPOut sets the outgoing control handle relative to the anchor.
// Setting (0, 0) removes the handle.
func (b *BPoint) SetBCPOut(pos Position) error {
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("bPoint", "bcpOut", err)
	}
	return b.setBCPOut(Position{X: x, Y: y})
}

func (b *BPoint) setBCPOut(rel Position) error {
	out := b.outHandle()
	next := b.nextOnCurve()
	if rel == (Position{}) {
		if out != nil {
			b.contour.removePointValue(out)
			if next != nil && b.handleBefore(next) == nil && next.typ == normalizers.PointTypeCurve {
				next.typ = normalizers.PointTypeLine
			}
		}
		return nil
	}
	abs := b.anchor.Position().Add(rel)
	if out == nil {
		idx := b.anchor.Index() + 1
		pt := &Point{contour: b.contour, typ: normalizers.PointTypeOffCurve, x: abs.X, y: abs.Y}
		b.contour.insertPointValue(idx, pt)
		if next != nil && next.typ == normalizers.PointTypeLine {
			next.typ = normalizers.PointTypeCurve
		}
		return nil
	}
	out.x, out.y = abs.X, abs.Y
	return nil
}

// Type returns "corner" or "curve". A curve bPoint is a smooth
// on-curve point; a corner is everything else.
func (b *BPoint) Type() string {
	if b.anchor.Smooth() {
		return normalizers.BPointTypeCurve
	}
	return normalizers.BPointTypeCorner
}

// SetType sets the bPoint's type.
func (b *BPoint) SetType(value string) error {
	v, err := normalizers.BPointType(value)
	if err != nil {
		return validationError("bPoint", "type", err)
	}
	b.anchor.SetSmooth(v == normalizers.BPointTypeCurve)
	return nil
}

// Index returns the bPoint's position within the contour's bPoint
// list, or -1 when it cannot be located.
func (b *BPoint) Index() int {
	if b.contour == nil {
		return -1
	}
	for i, other := range b.contour.BPoints() {
		if other.anchor == b.anchor {
			return i
		}
	}
	return -1
}

// Move shifts the bPoint's anchor and handles by (dx, dy).
func (b *BPoint) Move(dx, dy float64) error {
	return b.TransformBy(Translate(dx, dy))
}

// TransformBy applies an affine transformation to the anchor and both
// handles.
func (b *BPoint) TransformBy(t Transformation) error {
	if in := b.inHandle(); in != nil {
		if err := in.TransformBy(t); err != nil {
			return err
		}
	}
	if out := b.outHandle(); out != nil {
		if err := out.TransformBy(t); err != nil {
			return err
		}
	}
	return b.anchor.TransformBy(t)
}

// Round rounds the anchor and handle coordinates.
func (b *BPoint) Round() {
	if in := b.inHandle(); in != nil {
		in.Round()
	}
	if out := b.outHandle(); out != nil {
		out.Round()
	}
	b.anchor.Round()
}

func (b *BPoint) String() string {
	a := b.Anchor()
	return fmt.Sprintf("<BPoint %s (%g, %g)>", b.Type(), a.X, a.Y)
}

// inHandle returns the off-curve point immediately before the anchor,
// wrapping on closed contours, or nil.
func (b *BPoint) inHandle() *Point {
	return b.handleBefore(b.anchor)
}

func (b *BPoint) handleBefore(anchor *Point) *Point {
	prev := b.contour.pointBefore(anchor)
	if prev != nil && prev.typ == normalizers.PointTypeOffCurve {
		return prev
	}
	return nil
}

// outHandle returns the off-curve point immediately after the anchor,
// wrapping on closed contours, or nil.
func (b *BPoint) outHandle() *Point {
	next := b.contour.pointAfter(b.anchor)
	if next != nil && next.typ == normalizers.PointTypeOffCurve {
		return next
	}
	return nil
}

// nextOnCurve returns the next on-curve point after the anchor,
// wrapping on closed contours.
func (b *BPoint) nextOnCurve() *Point {
	pt := b.contour.pointAfter(b.anchor)
	for pt != nil && pt != b.anchor {
		if pt.typ != normalizers.PointTypeOffCurve {
			return pt
		}
		pt = b.contour.pointAfter(pt)
	}
	return nil
}
