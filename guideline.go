package fontparts

import (
	"fmt"
	"math"

	"github.com/robotools/fontparts/normalizers"
)

// Guideline is a positioned, angled reference line. Guidelines belong
// either to a glyph or to a font; at most one of the two parents is
// set.
type Guideline struct {
	glyph *Glyph
	font  *Font

	x, y       float64
	angle      float64
	name       string
	color      *Color
	identifier string
	selected   bool
}

// Glyph returns the guideline's parent glyph, or nil for font-level
// guidelines.
func (g *Guideline) Glyph() *Glyph { return g.glyph }

// Layer returns the layer the guideline belongs to, or nil.
func (g *Guideline) Layer() *Layer {
	if g.glyph == nil {
		return nil
	}
	return g.glyph.Layer()
}

// Font returns the font the guideline belongs to, either directly or
// through its glyph, or nil.
func (g *Guideline) Font() *Font {
	if g.font != nil {
		return g.font
	}
	if l := g.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Index returns the guideline's position within its parent's guideline
// list, or -1.
func (g *Guideline) Index() int {
	var list []*Guideline
	switch {
	case g.glyph != nil:
		list = g.glyph.guidelines
	case g.font != nil:
		list = g.font.guidelines
	default:
		return -1
	}
	for i, other := range list {
		if other == g {
			return i
		}
	}
	return -1
}

// X returns the guideline's x coordinate.
func (g *Guideline) X() float64 { return g.x }

// SetX sets the guideline's x coordinate.
func (g *Guideline) SetX(value float64) error {
	v, err := normalizers.X(value)
	if err != nil {
		return validationError("guideline", "x", err)
	}
	g.x = v
	return nil
}

// Y returns the guideline's y coordinate.
func (g *Guideline) Y() float64 { return g.y }

// SetY sets the guideline's y coordinate.
func (g *Guideline) SetY(value float64) error {
	v, err := normalizers.Y(value)
	if err != nil {
		return validationError("guideline", "y", err)
	}
	g.y = v
	return nil
}

// Position returns the guideline's coordinates.
func (g *Guideline) Position() Position { return Position{X: g.x, Y: g.y} }

// Angle returns the guideline's angle in degrees, in the range
// [0, 360).
func (g *Guideline) Angle() float64 { return g.angle }

// SetAngle sets the guideline's angle in degrees. Negative angles are
// folded into [0, 360).
func (g *Guideline) SetAngle(value float64) error {
	v, err := normalizers.RotationAngle(value)
	if err != nil {
		return validationError("guideline", "angle", err)
	}
	g.angle = v
	return nil
}

// Name returns the guideline's name, or "".
func (g *Guideline) Name() string { return g.name }

// SetName sets the guideline's name. An empty string clears it.
func (g *Guideline) SetName(value string) error {
	if value == "" {
		g.name = ""
		return nil
	}
	v, err := normalizers.GuidelineName(value)
	if err != nil {
		return validationError("guideline", "name", err)
	}
	g.name = v
	return nil
}

// Color returns the guideline's color, or nil.
func (g *Guideline) Color() *Color { return g.color }

// SetColor sets the guideline's color. Pass nil to clear it.
func (g *Guideline) SetColor(color *Color) { g.color = color }

// Identifier returns the guideline's identifier, or "".
func (g *Guideline) Identifier() string { return g.identifier }

// GenerateIdentifier assigns the guideline a new unique identifier if
// it does not already have one, and returns it.
func (g *Guideline) GenerateIdentifier() string {
	if g.identifier == "" {
		g.identifier = newIdentifier()
	}
	return g.identifier
}

// SetIdentifier sets the guideline's identifier.
func (g *Guideline) SetIdentifier(value string) error {
	v, err := normalizers.Identifier(value)
	if err != nil {
		return validationError("guideline", "identifier", err)
	}
	g.identifier = v
	return nil
}

// Selected reports whether the guideline is selected.
func (g *Guideline) Selected() bool { return g.selected }

// SetSelected sets the guideline's selection state.
func (g *Guideline) SetSelected(value bool) { g.selected = value }

// Move shifts the guideline by (dx, dy).
func (g *Guideline) Move(dx, dy float64) error {
	return g.TransformBy(Translate(dx, dy))
}

// TransformBy applies an affine transformation to the guideline's
// position. The angle is unchanged except by Rotate.
func (g *Guideline) TransformBy(t Transformation) error {
	pos := t.TransformPosition(g.Position())
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("guideline", "position", err)
	}
	g.x, g.y = x, y
	return nil
}

// Rotate rotates the guideline's position about an origin and adds the
// angle to the guideline's own angle.
func (g *Guideline) Rotate(degrees float64, origin Position) error {
	angle, err := normalizers.RotationAngle(degrees)
	if err != nil {
		return validationError("guideline", "angle", err)
	}
	full := Translate(-origin.X, -origin.Y).Multiply(Rotate(angle)).Multiply(Translate(origin.X, origin.Y))
	if err := g.TransformBy(full); err != nil {
		return err
	}
	sum := math.Mod(g.angle+angle, 360)
	if sum < 0 {
		sum += 360
	}
	g.angle = sum
	return nil
}

// Round rounds the guideline's coordinates to integers. The angle is
// not rounded.
func (g *Guideline) Round() {
	g.x = float64(normalizers.VisualRounding(g.x))
	g.y = float64(normalizers.VisualRounding(g.y))
}

// copyGuideline returns a detached copy, identifier excluded.
func (g *Guideline) copyGuideline() *Guideline {
	out := &Guideline{x: g.x, y: g.y, angle: g.angle, name: g.name}
	if g.color != nil {
		c := *g.color
		out.color = &c
	}
	return out
}

func (g *Guideline) String() string {
	return fmt.Sprintf("<Guideline %q (%g, %g) %g>", g.name, g.x, g.y, g.angle)
}
