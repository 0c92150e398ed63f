package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Component is a reference to another glyph in the same layer,
// positioned by an affine transformation.
type Component struct {
	glyph *Glyph

	baseGlyph      string
	transformation Transformation
	identifier     string
	selected       bool
}

// Glyph returns the component's parent glyph, or nil.
func (c *Component) Glyph() *Glyph { return c.glyph }

// Layer returns the layer the component belongs to, or nil.
func (c *Component) Layer() *Layer {
	if c.glyph == nil {
		return nil
	}
	return c.glyph.Layer()
}

// Font returns the font the component belongs to, or nil.
func (c *Component) Font() *Font {
	if l := c.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Index returns the component's position within its parent glyph, or
// -1.
func (c *Component) Index() int {
	if c.glyph == nil {
		return -1
	}
	for i, other := range c.glyph.components {
		if other == c {
			return i
		}
	}
	return -1
}

// BaseGlyph returns the name of the referenced glyph.
func (c *Component) BaseGlyph() string { return c.baseGlyph }

// SetBaseGlyph sets the name of the referenced glyph.
func (c *Component) SetBaseGlyph(name string) error {
	v, err := normalizers.GlyphName(name)
	if err != nil {
		return validationError("component", "baseGlyph", err)
	}
	c.baseGlyph = v
	return nil
}

// Transformation returns the component's transformation matrix.
func (c *Component) Transformation() Transformation { return c.transformation }

// SetTransformation sets the component's transformation matrix.
func (c *Component) SetTransformation(t Transformation) error {
	if _, err := normalizers.TransformationMatrix(t.Values()); err != nil {
		return validationError("component", "transformation", err)
	}
	c.transformation = t
	return nil
}

// Offset returns the translation part of the transformation.
func (c *Component) Offset() Position {
	return Position{X: c.transformation.DX, Y: c.transformation.DY}
}

// SetOffset sets the translation part of the transformation.
func (c *Component) SetOffset(pos Position) error {
	x, y, err := normalizers.TransformationOffset(pos.X, pos.Y)
	if err != nil {
		return validationError("component", "offset", err)
	}
	c.transformation.DX = x
	c.transformation.DY = y
	return nil
}

// Scale returns the scale part of the transformation.
func (c *Component) Scale() (float64, float64) {
	return c.transformation.XX, c.transformation.YY
}

// SetScale sets the scale part of the transformation.
func (c *Component) SetScale(sx, sy float64) error {
	x, y, err := normalizers.ComponentScale(sx, sy)
	if err != nil {
		return validationError("component", "scale", err)
	}
	c.transformation.XX = x
	c.transformation.YY = y
	return nil
}

// Identifier returns the component's identifier, or "".
func (c *Component) Identifier() string { return c.identifier }

// GenerateIdentifier assigns the component a new unique identifier if
// it does not already have one, and returns it.
func (c *Component) GenerateIdentifier() string {
	if c.identifier == "" {
		c.identifier = newIdentifier()
	}
	return c.identifier
}

// SetIdentifier sets the component's identifier.
func (c *Component) SetIdentifier(value string) error {
	v, err := normalizers.Identifier(value)
	if err != nil {
		return validationError("component", "identifier", err)
	}
	c.identifier = v
	return nil
}

// Selected reports whether the component is selected.
func (c *Component) Selected() bool { return c.selected }

// SetSelected sets the component's selection state.
func (c *Component) SetSelected(value bool) { c.selected = value }

// Draw renders the component through a segment pen.
func (c *Component) Draw(pen Pen) {
	pen.AddComponent(c.baseGlyph, c.transformation)
}

// DrawPoints renders the component through a point pen.
func (c *Component) DrawPoints(pen PointPen) {
	pen.AddComponent(c.baseGlyph, c.transformation, c.identifier)
}

// path resolves the component against its layer and records the
// transformed outline of the base glyph.
func (c *Component) path() *Path {
	p := NewPath()
	layer := c.Layer()
	if layer == nil {
		return p
	}
	dp := newDecomposePen(p, layer)
	dp.AddComponent(c.baseGlyph, c.transformation)
	return p
}

// Bounds returns the bounding box of the resolved component outline.
// The second return value is false when the base glyph cannot be
// resolved or has no outline.
func (c *Component) Bounds() (BoundingBox, bool) {
	return c.path().Bounds()
}

// PointInside reports whether a position is inside the resolved
// component outline.
func (c *Component) PointInside(pos Position) bool {
	return c.path().Contains(pos)
}

// Decompose replaces the component with the transformed outline of its
// base glyph, drawn directly into the parent glyph.
func (c *Component) Decompose() error {
	glyph := c.glyph
	if glyph == nil {
		return ErrNoParent
	}
	return glyph.decomposeComponent(c)
}

// Move shifts the component by (dx, dy).
func (c *Component) Move(dx, dy float64) error {
	return c.TransformBy(Translate(dx, dy))
}

// TransformBy composes an affine transformation onto the component's
// transformation.
func (c *Component) TransformBy(t Transformation) error {
	combined := c.transformation.Multiply(t)
	return c.SetTransformation(combined)
}

// Round rounds the component's offset to integers. The scale and skew
// parts are unchanged.
func (c *Component) Round() {
	c.transformation.DX = float64(normalizers.VisualRounding(c.transformation.DX))
	c.transformation.DY = float64(normalizers.VisualRounding(c.transformation.DY))
}

// copyComponent returns a detached copy, identifier excluded.
func (c *Component) copyComponent() *Component {
	return &Component{baseGlyph: c.baseGlyph, transformation: c.transformation}
}

func (c *Component) String() string {
	return fmt.Sprintf("<Component %q>", c.baseGlyph)
}
