package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Point is a single point in a contour. It is always owned by a
// Contour; construct points through Contour.AppendPoint or
// Contour.InsertPoint.
type Point struct {
	contour *Contour

	x, y       float64
	typ        string
	smooth     bool
	name       string
	identifier string
	selected   bool
}

// Contour returns the point's parent contour, or nil when the point
// is orphaned.
func (p *Point) Contour() *Contour { return p.contour }

// Glyph returns the glyph the point belongs to, or nil.
func (p *Point) Glyph() *Glyph {
	if p.contour == nil {
		return nil
	}
	return p.contour.Glyph()
}

// Layer returns the layer the point belongs to, or nil.
func (p *Point) Layer() *Layer {
	if g := p.Glyph(); g != nil {
		return g.Layer()
	}
	return nil
}

// Font returns the font the point belongs to, or nil.
func (p *Point) Font() *Font {
	if l := p.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Index returns the point's position within its parent contour, or -1
// when the point is orphaned.
func (p *Point) Index() int {
	if p.contour == nil {
		return -1
	}
	for i, other := range p.contour.points {
		if other == p {
			return i
		}
	}
	return -1
}

// X returns the point's x coordinate.
func (p *Point) X() float64 { return p.x }

// SetX sets the point's x coordinate.
func (p *Point) SetX(value float64) error {
	v, err := normalizers.X(value)
	if err != nil {
		return validationError("point", "x", err)
	}
	p.x = v
	return nil
}

// Y returns the point's y coordinate.
func (p *Point) Y() float64 { return p.y }

// SetY sets the point's y coordinate.
func (p *Point) SetY(value float64) error {
	v, err := normalizers.Y(value)
	if err != nil {
		return validationError("point", "y", err)
	}
	p.y = v
	return nil
}

// Position returns the point's coordinates.
func (p *Point) Position() Position { return Position{X: p.x, Y: p.y} }

// Type returns the point's type: "move", "line", "offcurve", "curve"
// or "qcurve".
func (p *Point) Type() string { return p.typ }

// SetType sets the point's type.
func (p *Point) SetType(value string) error {
	v, err := normalizers.PointType(value)
	if err != nil {
		return validationError("point", "type", err)
	}
	p.typ = v
	return nil
}

// Smooth reports whether the point is marked smooth.
func (p *Point) Smooth() bool { return p.smooth }

// SetSmooth sets the point's smooth flag.
func (p *Point) SetSmooth(value bool) { p.smooth = value }

// Name returns the point's name, or "" when unnamed.
func (p *Point) Name() string { return p.name }

// SetName sets the point's name. An empty string clears it.
func (p *Point) SetName(value string) error {
	if value == "" {
		p.name = ""
		return nil
	}
	v, err := normalizers.PointName(value)
	if err != nil {
		return validationError("point", "name", err)
	}
	p.name = v
	return nil
}

// Identifier returns the point's identifier, or "" when none has been
// generated.
func (p *Point) Identifier() string { return p.identifier }

// GenerateIdentifier assigns the point a new unique identifier if it
// does not already have one, and returns it.
func (p *Point) GenerateIdentifier() string {
	if p.identifier == "" {
		p.identifier = newIdentifier()
	}
	return p.identifier
}

// SetIdentifier sets the point's identifier.
func (p *Point) SetIdentifier(value string) error {
	v, err := normalizers.Identifier(value)
	if err != nil {
		return validationError("point", "identifier", err)
	}
	p.identifier = v
	return nil
}

// Selected reports whether the point is selected.
func (p *Point) Selected() bool { return p.selected }

// SetSelected sets the point's selection state.
func (p *Point) SetSelected(value bool) { p.selected = value }

// Move shifts the point by (dx, dy).
func (p *Point) Move(dx, dy float64) error {
	return p.TransformBy(Translate(dx, dy))
}

// Scale scales the point about an origin.
func (p *Point) Scale(sx, sy float64, origin Position) error {
	return p.transformAbout(ScaleTransform(sx, sy), origin)
}

// Rotate rotates the point by an angle in degrees about an origin.
func (p *Point) Rotate(degrees float64, origin Position) error {
	angle, err := normalizers.RotationAngle(degrees)
	if err != nil {
		return validationError("point", "angle", err)
	}
	return p.transformAbout(Rotate(angle), origin)
}

// Skew skews the point by angles in degrees about an origin.
func (p *Point) Skew(xDegrees, yDegrees float64, origin Position) error {
	return p.transformAbout(Skew(xDegrees, yDegrees), origin)
}

// TransformBy applies an affine transformation to the point.
func (p *Point) TransformBy(t Transformation) error {
	pos := t.TransformPosition(p.Position())
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("point", "position", err)
	}
	p.x, p.y = x, y
	return nil
}

func (p *Point) transformAbout(t Transformation, origin Position) error {
	full := Translate(-origin.X, -origin.Y).Multiply(t).Multiply(Translate(origin.X, origin.Y))
	return p.TransformBy(full)
}

// Round rounds the point's coordinates to integers.
func (p *Point) Round() {
	p.x = float64(normalizers.VisualRounding(p.x))
	p.y = float64(normalizers.VisualRounding(p.y))
}

func (p *Point) String() string {
	return fmt.Sprintf("<Point %s (%g, %g)>", p.typ, p.x, p.y)
}

// copyPoint returns a detached copy of the point, identifier excluded.
func (p *Point) copyPoint() *Point {
	return &Point{
		x:      p.x,
		y:      p.y,
		typ:    p.typ,
		smooth: p.smooth,
		name:   p.name,
	}
}
