package fontparts

import (
	"errors"
	"testing"

	"github.com/robotools/fontparts/normalizers"
)

// buildSquareContour returns a closed 100x100 counter-clockwise square.
func buildSquareContour(t *testing.T) *Contour {
	t.Helper()
	c := NewContour()
	corners := []Position{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	for _, pos := range corners {
		if _, err := c.AppendPoint(pos, "line", false, ""); err != nil {
			t.Fatalf("AppendPoint(%v): %v", pos, err)
		}
	}
	return c
}

// buildCurvedContour returns a closed contour with one curve segment:
// a line from (0,0) to (100,0) and a cubic back to the start.
func buildCurvedContour(t *testing.T) *Contour {
	t.Helper()
	c := NewContour()
	for _, p := range []struct {
		pos Position
		typ string
	}{
		{Position{0, 0}, "curve"},
		{Position{100, 0}, "line"},
		{Position{100, 50}, "offcurve"},
		{Position{0, 50}, "offcurve"},
	} {
		if _, err := c.AppendPoint(p.pos, p.typ, false, ""); err != nil {
			t.Fatalf("AppendPoint: %v", err)
		}
	}
	return c
}

func TestContourOpen(t *testing.T) {
	c := NewContour()
	if !c.Open() {
		t.Error("empty contour should be open")
	}
	if _, err := c.AppendPoint(Position{}, "move", false, ""); err != nil {
		t.Fatal(err)
	}
	if !c.Open() {
		t.Error("contour starting with a move point should be open")
	}

	if buildSquareContour(t).Open() {
		t.Error("square contour should be closed")
	}
}

func TestContourSegments(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		segments := buildSquareContour(t).Segments()
		if len(segments) != 4 {
			t.Fatalf("got %d segments, want 4", len(segments))
		}
		for i, seg := range segments {
			if seg.Type() != "line" {
				t.Errorf("segment %d type = %q, want line", i, seg.Type())
			}
		}
	})
	t.Run("trailing offcurves wrap to the first segment", func(t *testing.T) {
		c := buildCurvedContour(t)
		segments := c.Segments()
		if len(segments) != 2 {
			t.Fatalf("got %d segments, want 2", len(segments))
		}
		if got := segments[0].Type(); got != "curve" {
			t.Errorf("segment 0 type = %q, want curve", got)
		}
		if got := len(segments[0].OffCurve()); got != 2 {
			t.Errorf("segment 0 has %d off-curves, want 2", got)
		}
		if got := segments[1].Type(); got != "line" {
			t.Errorf("segment 1 type = %q, want line", got)
		}
	})
}

func TestContourInsertRemovePoint(t *testing.T) {
	c := buildSquareContour(t)
	pt, err := c.InsertPoint(1, Position{X: 50, Y: 0}, "line", false, "midpoint")
	if err != nil {
		t.Fatal(err)
	}
	if pt.Index() != 1 {
		t.Errorf("inserted point index = %d, want 1", pt.Index())
	}
	if len(c.Points()) != 5 {
		t.Fatalf("got %d points, want 5", len(c.Points()))
	}
	if err := c.RemovePoint(1); err != nil {
		t.Fatal(err)
	}
	if len(c.Points()) != 4 {
		t.Fatalf("got %d points after removal, want 4", len(c.Points()))
	}
	if pt.Contour() != nil {
		t.Error("removed point keeps its parent")
	}
	if err := c.RemovePoint(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemovePoint(99) = %v, want ErrNotFound", err)
	}
}

func TestContourAppendPointValidation(t *testing.T) {
	c := NewContour()
	if _, err := c.AppendPoint(Position{}, "zigzag", false, ""); !errors.Is(err, normalizers.ErrInvalid) {
		t.Errorf("bad point type error = %v, want ErrInvalid", err)
	}
}

func TestContourWinding(t *testing.T) {
	c := buildSquareContour(t)
	if c.Area() <= 0 {
		t.Errorf("counter-clockwise square area = %g, want > 0", c.Area())
	}
	if c.Clockwise() {
		t.Error("counter-clockwise square reported clockwise")
	}
	c.SetClockwise(true)
	if !c.Clockwise() {
		t.Error("SetClockwise(true) did not reverse")
	}
	if got := len(c.Points()); got != 4 {
		t.Errorf("reversal changed point count to %d", got)
	}
}

func TestContourReverseKeepsGeometry(t *testing.T) {
	c := buildCurvedContour(t)
	before, ok := c.Bounds()
	if !ok {
		t.Fatal("no bounds before reversal")
	}
	areaBefore := c.Area()
	c.Reverse()
	after, ok := c.Bounds()
	if !ok {
		t.Fatal("no bounds after reversal")
	}
	if before != after {
		t.Errorf("bounds changed: %+v -> %+v", before, after)
	}
	if got := c.Area(); got != -areaBefore {
		t.Errorf("area = %g, want %g", got, -areaBefore)
	}
	// Start point stays put on closed contours.
	if got := c.Points()[0].Position(); got != (Position{X: 0, Y: 0}) {
		t.Errorf("start point moved to %v", got)
	}
	c.Reverse()
	if got := c.Area(); got != areaBefore {
		t.Errorf("double reversal area = %g, want %g", got, areaBefore)
	}
}

func TestContourSetStartSegment(t *testing.T) {
	c := buildSquareContour(t)
	if err := c.SetStartSegment(2); err != nil {
		t.Fatal(err)
	}
	if got := c.Points()[0].Position(); got != (Position{X: 100, Y: 100}) {
		t.Errorf("start point = %v, want (100, 100)", got)
	}
	if got := len(c.Segments()); got != 4 {
		t.Errorf("segment count = %d, want 4", got)
	}

	open := NewContour()
	if _, err := open.AppendPoint(Position{}, "move", false, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := open.AppendPoint(Position{X: 10}, "line", false, ""); err != nil {
		t.Fatal(err)
	}
	if err := open.SetStartSegment(1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("open contour SetStartSegment = %v, want ErrUnsupported", err)
	}
}

func TestContourAutoStartSegment(t *testing.T) {
	c := NewContour()
	for _, pos := range []Position{{0, 100}, {100, 100}, {100, 0}, {0, 0}} {
		if _, err := c.AppendPoint(pos, "line", false, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.AutoStartSegment(); err != nil {
		t.Fatal(err)
	}
	if got := c.Points()[0].Position(); got != (Position{X: 0, Y: 0}) {
		t.Errorf("start point = %v, want (0, 0)", got)
	}
}

func TestContourPointInside(t *testing.T) {
	c := buildSquareContour(t)
	if !c.PointInside(Position{X: 50, Y: 50}) {
		t.Error("center not inside")
	}
	if c.PointInside(Position{X: 150, Y: 50}) {
		t.Error("outside point reported inside")
	}
}

func TestContourContourInside(t *testing.T) {
	outer := buildSquareContour(t)
	inner := NewContour()
	for _, pos := range []Position{{25, 25}, {75, 25}, {75, 75}, {25, 75}} {
		if _, err := inner.AppendPoint(pos, "line", false, ""); err != nil {
			t.Fatal(err)
		}
	}
	if !outer.ContourInside(inner) {
		t.Error("nested contour not reported inside")
	}
	if inner.ContourInside(outer) {
		t.Error("outer contour reported inside the inner one")
	}
}

func TestContourDrawRoundTrip(t *testing.T) {
	c := buildCurvedContour(t)
	p := c.path()
	elements := p.Elements()
	if len(elements) == 0 {
		t.Fatal("no elements recorded")
	}
	if _, ok := elements[0].(MoveTo); !ok {
		t.Errorf("first element is %T, want MoveTo", elements[0])
	}
	if _, ok := elements[len(elements)-1].(Close); !ok {
		t.Errorf("last element is %T, want Close", elements[len(elements)-1])
	}
	sawCubic := false
	for _, elem := range elements {
		if _, ok := elem.(CubicTo); ok {
			sawCubic = true
		}
	}
	if !sawCubic {
		t.Error("curve segment did not produce a CubicTo")
	}
}

func TestContourTransformAndRound(t *testing.T) {
	c := buildSquareContour(t)
	if err := c.Move(10.4, -0.6); err != nil {
		t.Fatal(err)
	}
	c.Round()
	if got := c.Points()[0].Position(); got != (Position{X: 10, Y: -1}) {
		t.Errorf("rounded start point = %v, want (10, -1)", got)
	}
}

func TestSegmentSetType(t *testing.T) {
	c := buildSquareContour(t)
	seg := c.Segments()[1]
	if err := seg.SetType("curve"); err != nil {
		t.Fatal(err)
	}
	segments := c.Segments()
	if got := segments[1].Type(); got != "curve" {
		t.Fatalf("type after conversion = %q", got)
	}
	if got := len(segments[1].OffCurve()); got != 2 {
		t.Errorf("converted segment has %d off-curves, want 2", got)
	}
	// Convert back to a line; the inserted off-curves disappear.
	if err := c.Segments()[1].SetType("line"); err != nil {
		t.Fatal(err)
	}
	if got := len(c.Points()); got != 4 {
		t.Errorf("point count after back-conversion = %d, want 4", got)
	}
}

func TestBPoints(t *testing.T) {
	c := buildCurvedContour(t)
	bPoints := c.BPoints()
	if len(bPoints) != 2 {
		t.Fatalf("got %d bPoints, want 2", len(bPoints))
	}
	b0 := bPoints[0] // anchor (0,0), curve comes in from (0,50)
	if got := b0.Anchor(); got != (Position{X: 0, Y: 0}) {
		t.Errorf("anchor = %v", got)
	}
	if got := b0.BCPIn(); got != (Position{X: 0, Y: 50}) {
		t.Errorf("bcpIn = %v, want (0, 50)", got)
	}
	if got := b0.BCPOut(); got != (Position{}) {
		t.Errorf("bcpOut = %v, want (0, 0)", got)
	}
	if got := b0.Type(); got != "corner" {
		t.Errorf("type = %q, want corner", got)
	}

	if err := b0.SetType("curve"); err != nil {
		t.Fatal(err)
	}
	if !c.Points()[0].Smooth() {
		t.Error("curve bPoint should mark the anchor smooth")
	}
}

func TestBPointSetBCPOut(t *testing.T) {
	c := buildSquareContour(t)
	b := c.BPoints()[0]
	if err := b.SetBCPOut(Position{X: 20, Y: 0}); err != nil {
		t.Fatal(err)
	}
	// The outgoing handle turns the next segment into a curve.
	if got := c.Segments()[1].Type(); got != "curve" {
		t.Errorf("next segment type = %q, want curve", got)
	}
	if got := b.BCPOut(); got != (Position{X: 20, Y: 0}) {
		t.Errorf("bcpOut = %v", got)
	}
	// Clearing the handle restores the line.
	if err := c.BPoints()[0].SetBCPOut(Position{}); err != nil {
		t.Fatal(err)
	}
	if got := c.Segments()[1].Type(); got != "line" {
		t.Errorf("next segment type after clearing = %q, want line", got)
	}
}

func TestContourSetStartPoint(t *testing.T) {
	c := buildSquareContour(t)
	if err := c.SetStartPoint(2); err != nil {
		t.Fatalf("SetStartPoint: %v", err)
	}
	if got := c.Points()[0].Position(); got != (Position{X: 100, Y: 100}) {
		t.Errorf("first point = %v, want (100, 100)", got)
	}

	curved := buildCurvedContour(t)
	// Index 2 is an off-curve point.
	if err := curved.SetStartPoint(2); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetStartPoint on off-curve = %v, want ErrUnsupported", err)
	}

	open := NewContour()
	if _, err := open.AppendPoint(Position{}, "move", false, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := open.AppendPoint(Position{X: 10}, "line", false, ""); err != nil {
		t.Fatal(err)
	}
	if err := open.SetStartPoint(1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetStartPoint on open contour = %v, want ErrUnsupported", err)
	}
}

func TestContourBPointInsertRemove(t *testing.T) {
	c := buildSquareContour(t)
	bPoint, err := c.InsertBPoint(1, "corner", Position{X: 50, Y: -10}, Position{}, Position{})
	if err != nil {
		t.Fatalf("InsertBPoint: %v", err)
	}
	if got := bPoint.Anchor(); got != (Position{X: 50, Y: -10}) {
		t.Errorf("anchor = %v, want (50, -10)", got)
	}
	if got := len(c.Points()); got != 5 {
		t.Fatalf("got %d points, want 5", got)
	}
	if got := len(c.BPoints()); got != 5 {
		t.Fatalf("got %d bPoints, want 5", got)
	}
	if err := c.RemoveBPoint(1); err != nil {
		t.Fatalf("RemoveBPoint: %v", err)
	}
	if got := len(c.Points()); got != 4 {
		t.Errorf("got %d points, want 4", got)
	}
	if err := c.RemoveBPoint(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveBPoint out of range = %v, want ErrNotFound", err)
	}
}

func TestContourAppendBPointWithHandles(t *testing.T) {
	c := buildSquareContour(t)
	if _, err := c.AppendBPoint("curve", Position{X: 50, Y: 150}, Position{X: 20, Y: 0}, Position{X: -20, Y: 0}); err != nil {
		t.Fatalf("AppendBPoint: %v", err)
	}
	bPoints := c.BPoints()
	last := bPoints[len(bPoints)-1]
	if got := last.BCPIn(); got != (Position{X: 20, Y: 0}) {
		t.Errorf("bcpIn = %v, want (20, 0)", got)
	}
	if got := last.BCPOut(); got != (Position{X: -20, Y: 0}) {
		t.Errorf("bcpOut = %v, want (-20, 0)", got)
	}
	if got := last.Type(); got != "curve" {
		t.Errorf("type = %q, want curve", got)
	}
}

func TestContourIsCompatible(t *testing.T) {
	a := buildSquareContour(t)
	b := buildSquareContour(t)
	if ok, _ := a.IsCompatible(b); !ok {
		t.Error("identical contours reported incompatible")
	}
	curved := buildCurvedContour(t)
	ok, report := a.IsCompatible(curved)
	if ok {
		t.Error("mismatched contours reported compatible")
	}
	if report == "" {
		t.Error("empty compatibility report")
	}
}

func TestSetIdentifier(t *testing.T) {
	c := buildSquareContour(t)
	if err := c.SetIdentifier("contour-01"); err != nil {
		t.Fatal(err)
	}
	if got := c.Identifier(); got != "contour-01" {
		t.Errorf("identifier = %q", got)
	}
	if err := c.SetIdentifier(""); err == nil {
		t.Error("empty identifier accepted")
	}
	if err := c.SetIdentifier("café"); err == nil {
		t.Error("non-ASCII identifier accepted")
	}

	p := c.Points()[0]
	if err := p.SetIdentifier("point-01"); err != nil {
		t.Fatal(err)
	}
	if got := p.Identifier(); got != "point-01" {
		t.Errorf("point identifier = %q", got)
	}
}
