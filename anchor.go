package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Anchor is a named attachment position in a glyph, used for mark
// placement and similar layout tasks.
type Anchor struct {
	glyph *Glyph

	x, y       float64
	name       string
	color      *Color
	identifier string
	selected   bool
}

// Glyph returns the anchor's parent glyph, or nil.
func (a *Anchor) Glyph() *Glyph { return a.glyph }

// Layer returns the layer the anchor belongs to, or nil.
func (a *Anchor) Layer() *Layer {
	if a.glyph == nil {
		return nil
	}
	return a.glyph.Layer()
}

// Font returns the font the anchor belongs to, or nil.
func (a *Anchor) Font() *Font {
	if l := a.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Index returns the anchor's position within its parent glyph, or -1.
func (a *Anchor) Index() int {
	if a.glyph == nil {
		return -1
	}
	for i, other := range a.glyph.anchors {
		if other == a {
			return i
		}
	}
	return -1
}

// X returns the anchor's x coordinate.
func (a *Anchor) X() float64 { return a.x }

// SetX sets the anchor's x coordinate.
func (a *Anchor) SetX(value float64) error {
	v, err := normalizers.X(value)
	if err != nil {
		return validationError("anchor", "x", err)
	}
	a.x = v
	return nil
}

// Y returns the anchor's y coordinate.
func (a *Anchor) Y() float64 { return a.y }

// SetY sets the anchor's y coordinate.
func (a *Anchor) SetY(value float64) error {
	v, err := normalizers.Y(value)
	if err != nil {
		return validationError("anchor", "y", err)
	}
	a.y = v
	return nil
}

// Position returns the anchor's coordinates.
func (a *Anchor) Position() Position { return Position{X: a.x, Y: a.y} }

// Name returns the anchor's name, or "".
func (a *Anchor) Name() string { return a.name }

// SetName sets the anchor's name. An empty string clears it.
func (a *Anchor) SetName(value string) error {
	if value == "" {
		a.name = ""
		return nil
	}
	v, err := normalizers.AnchorName(value)
	if err != nil {
		return validationError("anchor", "name", err)
	}
	a.name = v
	return nil
}

// Color returns the anchor's mark color, or nil.
func (a *Anchor) Color() *Color { return a.color }

// SetColor sets the anchor's mark color. Pass nil to clear it.
func (a *Anchor) SetColor(color *Color) { a.color = color }

// Identifier returns the anchor's identifier, or "".
func (a *Anchor) Identifier() string { return a.identifier }

// GenerateIdentifier assigns the anchor a new unique identifier if it
// does not already have one, and returns it.
func (a *Anchor) GenerateIdentifier() string {
	if a.identifier == "" {
		a.identifier = newIdentifier()
	}
	return a.identifier
}

// SetIdentifier sets the anchor's identifier.
func (a *Anchor) SetIdentifier(value string) error {
	v, err := normalizers.Identifier(value)
	if err != nil {
		return validationError("anchor", "identifier", err)
	}
	a.identifier = v
	return nil
}

// Selected reports whether the anchor is selected.
func (a *Anchor) Selected() bool { return a.selected }

// SetSelected sets the anchor's selection state.
func (a *Anchor) SetSelected(value bool) { a.selected = value }

// Move shifts the anchor by (dx, dy).
func (a *Anchor) Move(dx, dy float64) error {
	return a.TransformBy(Translate(dx, dy))
}

// Scale scales the anchor about an origin.
func (a *Anchor) Scale(sx, sy float64, origin Position) error {
	full := Translate(-origin.X, -origin.Y).Multiply(ScaleTransform(sx, sy)).Multiply(Translate(origin.X, origin.Y))
	return a.TransformBy(full)
}

// Rotate rotates the anchor by an angle in degrees about an origin.
func (a *Anchor) Rotate(degrees float64, origin Position) error {
	angle, err := normalizers.RotationAngle(degrees)
	if err != nil {
		return validationError("anchor", "angle", err)
	}
	full := Translate(-origin.X, -origin.Y).Multiply(Rotate(angle)).Multiply(Translate(origin.X, origin.Y))
	return a.TransformBy(full)
}

// TransformBy applies an affine transformation to the anchor.
func (a *Anchor) TransformBy(t Transformation) error {
	pos := t.TransformPosition(a.Position())
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return validationError("anchor", "position", err)
	}
	a.x, a.y = x, y
	return nil
}

// Round rounds the anchor's coordinates to integers.
func (a *Anchor) Round() {
	a.x = float64(normalizers.VisualRounding(a.x))
	a.y = float64(normalizers.VisualRounding(a.y))
}

// copyAnchor returns a detached copy, identifier excluded.
func (a *Anchor) copyAnchor() *Anchor {
	out := &Anchor{x: a.x, y: a.y, name: a.name}
	if a.color != nil {
		c := *a.color
		out.color = &c
	}
	return out
}

func (a *Anchor) String() string {
	return fmt.Sprintf("<Anchor %q (%g, %g)>", a.name, a.x, a.y)
}
