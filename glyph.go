package fontparts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/robotools/fontparts/normalizers"
)

// Glyph is a single glyph: contours, components, anchors, guidelines,
// an optional background image, metrics and unicode values. Glyphs are
// owned by a Layer; construct them with Layer.NewGlyph.
type Glyph struct {
	layer *Layer

	name      string
	unicodes  []rune
	width     float64
	height    float64
	note      string
	markColor *Color

	contours   []*Contour
	components []*Component
	anchors    []*Anchor
	guidelines []*Guideline
	image      *Image
	lib        *Lib
	tempLib    *Lib

	selected bool
}

func newGlyph(name string) *Glyph {
	g := &Glyph{name: name}
	g.lib = newLib()
	g.lib.glyph = g
	g.tempLib = newLib()
	g.tempLib.glyph = g
	return g
}

// Layer returns the glyph's parent layer, or nil.
func (g *Glyph) Layer() *Layer { return g.layer }

// Font returns the font the glyph belongs to, or nil.
func (g *Glyph) Font() *Font {
	if g.layer == nil {
		return nil
	}
	return g.layer.Font()
}

// Name returns the glyph's name.
func (g *Glyph) Name() string { return g.name }

// SetName renames the glyph. Within a layer the new name must be
// unused.
func (g *Glyph) SetName(value string) error {
	v, err := normalizers.GlyphName(value)
	if err != nil {
		return validationError("glyph", "name", err)
	}
	if v == g.name {
		return nil
	}
	if g.layer != nil {
		if _, ok := g.layer.glyphs[v]; ok {
			return fmt.Errorf("glyph %q: %w", v, ErrDuplicate)
		}
		delete(g.layer.glyphs, g.name)
		g.layer.glyphs[v] = g
	}
	g.name = v
	return nil
}

// Unicodes returns the glyph's unicode values, primary first.
func (g *Glyph) Unicodes() []rune { return g.unicodes }

// SetUnicodes sets the glyph's unicode values.
func (g *Glyph) SetUnicodes(values []rune) error {
	v, err := normalizers.GlyphUnicodes(values)
	if err != nil {
		return validationError("glyph", "unicodes", err)
	}
	g.unicodes = v
	return nil
}

// Unicode returns the glyph's primary unicode value, or -1 when it has
// none.
func (g *Glyph) Unicode() rune {
	if len(g.unicodes) == 0 {
		return -1
	}
	return g.unicodes[0]
}

// SetUnicode sets the glyph's primary unicode value, replacing any
// existing values. Pass -1 to clear them.
func (g *Glyph) SetUnicode(value rune) error {
	if value == -1 {
		g.unicodes = nil
		return nil
	}
	v, err := normalizers.GlyphUnicode(int(value))
	if err != nil {
		return validationError("glyph", "unicode", err)
	}
	g.unicodes = []rune{v}
	return nil
}

// AutoUnicodes sets the glyph's unicode values from its name: a
// single-character name maps to that character, and names of the form
// "uniXXXX" or "uXXXXX" are parsed as hexadecimal code points.
func (g *Glyph) AutoUnicodes() error {
	name := g.name
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return g.SetUnicode(r)
	}
	for _, prefix := range []string{"uni", "u"} {
		hex, ok := strings.CutPrefix(name, prefix)
		if !ok || len(hex) < 4 || len(hex) > 6 {
			continue
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			continue
		}
		return g.SetUnicode(rune(v))
	}
	g.unicodes = nil
	return nil
}

// Width returns the glyph's advance width.
func (g *Glyph) Width() float64 { return g.width }

// SetWidth sets the glyph's advance width.
func (g *Glyph) SetWidth(value float64) error {
	v, err := normalizers.GlyphWidth(value)
	if err != nil {
		return validationError("glyph", "width", err)
	}
	g.width = v
	return nil
}

// Height returns the glyph's advance height.
func (g *Glyph) Height() float64 { return g.height }

// SetHeight sets the glyph's advance height.
func (g *Glyph) SetHeight(value float64) error {
	v, err := normalizers.GlyphHeight(value)
	if err != nil {
		return validationError("glyph", "height", err)
	}
	g.height = v
	return nil
}

// Note returns the glyph's note.
func (g *Glyph) Note() string { return g.note }

// SetNote sets the glyph's note.
func (g *Glyph) SetNote(value string) { g.note = value }

// MarkColor returns the glyph's mark color, or nil.
func (g *Glyph) MarkColor() *Color { return g.markColor }

// SetMarkColor sets the glyph's mark color. Pass nil to clear it.
func (g *Glyph) SetMarkColor(color *Color) { g.markColor = color }

// Selected reports whether the glyph is selected.
func (g *Glyph) Selected() bool { return g.selected }

// SetSelected sets the glyph's selection state.
func (g *Glyph) SetSelected(value bool) { g.selected = value }

// Lib returns the glyph's lib.
func (g *Glyph) Lib() *Lib { return g.lib }

// TempLib returns the glyph's temporary lib, a scratch store that is
// never saved and is not carried by Copy.
func (g *Glyph) TempLib() *Lib { return g.tempLib }

// Margins. The left and bottom margins are the distances from the
// origin to the outline's bounding box; the right and top margins are
// measured against the advance width and height.

// LeftMargin returns the glyph's left margin. The second return value
// is false when the glyph has no outline.
func (g *Glyph) LeftMargin() (float64, bool) {
	bounds, ok := g.Bounds()
	if !ok {
		return 0, false
	}
	return bounds.XMin, true
}

// SetLeftMargin moves the outline so the left margin equals value,
// adjusting the width to keep the right margin unchanged.
func (g *Glyph) SetLeftMargin(value float64) error {
	v, err := normalizers.GlyphMargin(value)
	if err != nil {
		return validationError("glyph", "leftMargin", err)
	}
	old, ok := g.LeftMargin()
	if !ok {
		return fmt.Errorf("glyph has no outline: %w", ErrUnsupported)
	}
	diff := v - old
	if err := g.Move(diff, 0); err != nil {
		return err
	}
	return g.SetWidth(g.width + diff)
}

// RightMargin returns the glyph's right margin. The second return
// value is false when the glyph has no outline.
func (g *Glyph) RightMargin() (float64, bool) {
	bounds, ok := g.Bounds()
	if !ok {
		return 0, false
	}
	return g.width - bounds.XMax, true
}

// SetRightMargin adjusts the width so the right margin equals value.
func (g *Glyph) SetRightMargin(value float64) error {
	v, err := normalizers.GlyphMargin(value)
	if err != nil {
		return validationError("glyph", "rightMargin", err)
	}
	bounds, ok := g.Bounds()
	if !ok {
		return fmt.Errorf("glyph has no outline: %w", ErrUnsupported)
	}
	return g.SetWidth(bounds.XMax + v)
}

// BottomMargin returns the glyph's bottom margin. The second return
// value is false when the glyph has no outline.
func (g *Glyph) BottomMargin() (float64, bool) {
	bounds, ok := g.Bounds()
	if !ok {
		return 0, false
	}
	return bounds.YMin, true
}

// SetBottomMargin moves the outline so the bottom margin equals value,
// adjusting the height to keep the top margin unchanged.
func (g *Glyph) SetBottomMargin(value float64) error {
	v, err := normalizers.GlyphMargin(value)
	if err != nil {
		return validationError("glyph", "bottomMargin", err)
	}
	old, ok := g.BottomMargin()
	if !ok {
		return fmt.Errorf("glyph has no outline: %w", ErrUnsupported)
	}
	diff := v - old
	if err := g.Move(0, diff); err != nil {
		return err
	}
	return g.SetHeight(g.height + diff)
}

// TopMargin returns the glyph's top margin. The second return value is
// false when the glyph has no outline.
func (g *Glyph) TopMargin() (float64, bool) {
	bounds, ok := g.Bounds()
	if !ok {
		return 0, false
	}
	return g.height - bounds.YMax, true
}

// SetTopMargin adjusts the height so the top margin equals value.
func (g *Glyph) SetTopMargin(value float64) error {
	v, err := normalizers.GlyphMargin(value)
	if err != nil {
		return validationError("glyph", "topMargin", err)
	}
	bounds, ok := g.Bounds()
	if !ok {
		return fmt.Errorf("glyph has no outline: %w", ErrUnsupported)
	}
	return g.SetHeight(bounds.YMax + v)
}

// Contours returns the glyph's contours in order.
func (g *Glyph) Contours() []*Contour { return g.contours }

// Contour returns the contour at index.
func (g *Glyph) Contour(index int) (*Contour, error) {
	if index < 0 || index >= len(g.contours) {
		return nil, fmt.Errorf("contour index %d: %w", index, ErrNotFound)
	}
	return g.contours[index], nil
}

// NewContour appends a new empty contour and returns it.
func (g *Glyph) NewContour() *Contour {
	c := &Contour{glyph: g}
	g.contours = append(g.contours, c)
	return c
}

// AppendContour adds a copy of a contour to the glyph, optionally
// shifted by an offset, and returns the copy.
func (g *Glyph) AppendContour(contour *Contour, offset Position) (*Contour, error) {
	cp := contour.Copy()
	cp.glyph = g
	if offset != (Position{}) {
		if err := cp.Move(offset.X, offset.Y); err != nil {
			return nil, err
		}
	}
	g.contours = append(g.contours, cp)
	return cp, nil
}

// RemoveContour removes the contour at index.
func (g *Glyph) RemoveContour(index int) error {
	if index < 0 || index >= len(g.contours) {
		return fmt.Errorf("contour index %d: %w", index, ErrNotFound)
	}
	g.contours[index].glyph = nil
	g.contours = append(g.contours[:index], g.contours[index+1:]...)
	return nil
}

// ClearContours removes all contours.
func (g *Glyph) ClearContours() {
	for _, c := range g.contours {
		c.glyph = nil
	}
	g.contours = nil
}

// Components returns the glyph's components in order.
func (g *Glyph) Components() []*Component { return g.components }

// Component returns the component at index.
func (g *Glyph) Component(index int) (*Component, error) {
	if index < 0 || index >= len(g.components) {
		return nil, fmt.Errorf("component index %d: %w", index, ErrNotFound)
	}
	return g.components[index], nil
}

// AppendComponent adds a component referencing baseGlyph with the
// given transformation and returns it.
func (g *Glyph) AppendComponent(baseGlyph string, transformation Transformation) (*Component, error) {
	name, err := normalizers.GlyphName(baseGlyph)
	if err != nil {
		return nil, validationError("component", "baseGlyph", err)
	}
	if name == g.name {
		return nil, validationError("component", "baseGlyph",
			fmt.Errorf("glyph %q cannot reference itself", name))
	}
	if _, err := normalizers.TransformationMatrix(transformation.Values()); err != nil {
		return nil, validationError("component", "transformation", err)
	}
	c := &Component{glyph: g, baseGlyph: name, transformation: transformation}
	g.components = append(g.components, c)
	return c, nil
}

// RemoveComponent removes the component at index.
func (g *Glyph) RemoveComponent(index int) error {
	if index < 0 || index >= len(g.components) {
		return fmt.Errorf("component index %d: %w", index, ErrNotFound)
	}
	g.components[index].glyph = nil
	g.components = append(g.components[:index], g.components[index+1:]...)
	return nil
}

// ClearComponents removes all components.
func (g *Glyph) ClearComponents() {
	for _, c := range g.components {
		c.glyph = nil
	}
	g.components = nil
}

// Decompose replaces every component with the transformed outline of
// its base glyph.
func (g *Glyph) Decompose() error {
	for len(g.components) > 0 {
		if err := g.decomposeComponent(g.components[0]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Glyph) decomposeComponent(c *Component) error {
	idx := c.Index()
	if idx < 0 {
		return ErrNotFound
	}
	layer := g.Layer()
	if layer == nil {
		return ErrNoParent
	}
	pen := g.GetPen()
	dp := newDecomposePen(pen, layer)
	dp.AddComponent(c.baseGlyph, c.transformation)
	return g.RemoveComponent(idx)
}

// Anchors returns the glyph's anchors in order.
func (g *Glyph) Anchors() []*Anchor { return g.anchors }

// Anchor returns the anchor at index.
func (g *Glyph) Anchor(index int) (*Anchor, error) {
	if index < 0 || index >= len(g.anchors) {
		return nil, fmt.Errorf("anchor index %d: %w", index, ErrNotFound)
	}
	return g.anchors[index], nil
}

// AppendAnchor adds an anchor and returns it.
func (g *Glyph) AppendAnchor(name string, pos Position, color *Color) (*Anchor, error) {
	x, y, err := normalizers.CoordinatePair(pos.X, pos.Y)
	if err != nil {
		return nil, validationError("anchor", "position", err)
	}
	a := &Anchor{glyph: g, x: x, y: y, color: color}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	g.anchors = append(g.anchors, a)
	return a, nil
}

// RemoveAnchor removes the anchor at index.
func (g *Glyph) RemoveAnchor(index int) error {
	if index < 0 || index >= len(g.anchors) {
		return fmt.Errorf("anchor index %d: %w", index, ErrNotFound)
	}
	g.anchors[index].glyph = nil
	g.anchors = append(g.anchors[:index], g.anchors[index+1:]...)
	return nil
}

// ClearAnchors removes all anchors.
func (g *Glyph) ClearAnchors() {
	for _, a := range g.anchors {
		a.glyph = nil
	}
	g.anchors = nil
}

// Guidelines returns the glyph's guidelines in order.
func (g *Glyph) Guidelines() []*Guideline { return g.guidelines }

// Guideline returns the guideline at index.
func (g *Glyph) Guideline(index int) (*Guideline, error) {
	if index < 0 || index >= len(g.guidelines) {
		return nil, fmt.Errorf("guideline index %d: %w", index, ErrNotFound)
	}
	return g.guidelines[index], nil
}

// AppendGuideline adds a guideline and returns it.
func (g *Glyph) AppendGuideline(pos Position, angle float64, name string, color *Color) (*Guideline, error) {
	gl := &Guideline{glyph: g, color: color}
	if err := gl.SetX(pos.X); err != nil {
		return nil, err
	}
	if err := gl.SetY(pos.Y); err != nil {
		return nil, err
	}
	if err := gl.SetAngle(angle); err != nil {
		return nil, err
	}
	if err := gl.SetName(name); err != nil {
		return nil, err
	}
	g.guidelines = append(g.guidelines, gl)
	return gl, nil
}

// RemoveGuideline removes the guideline at index.
func (g *Glyph) RemoveGuideline(index int) error {
	if index < 0 || index >= len(g.guidelines) {
		return fmt.Errorf("guideline index %d: %w", index, ErrNotFound)
	}
	g.guidelines[index].glyph = nil
	g.guidelines = append(g.guidelines[:index], g.guidelines[index+1:]...)
	return nil
}

// ClearGuidelines removes all guidelines.
func (g *Glyph) ClearGuidelines() {
	for _, gl := range g.guidelines {
		gl.glyph = nil
	}
	g.guidelines = nil
}

// Image returns the glyph's background image, or nil.
func (g *Glyph) Image() *Image { return g.image }

// AddImage sets the glyph's background image from PNG data.
func (g *Glyph) AddImage(data []byte, transformation Transformation, color *Color) (*Image, error) {
	img := &Image{glyph: g, color: color}
	if err := img.SetData(data); err != nil {
		return nil, err
	}
	if err := img.SetTransformation(transformation); err != nil {
		return nil, err
	}
	g.image = img
	return img, nil
}

// ClearImage removes the glyph's background image.
func (g *Glyph) ClearImage() {
	if g.image != nil {
		g.image.glyph = nil
		g.image = nil
	}
}

// Clear removes the glyph's contours, components, anchors, guidelines
// and image.
func (g *Glyph) Clear() {
	g.ClearContours()
	g.ClearComponents()
	g.ClearAnchors()
	g.ClearGuidelines()
	g.ClearImage()
}

// IsEmpty reports whether the glyph has no contours and no components.
func (g *Glyph) IsEmpty() bool {
	return len(g.contours) == 0 && len(g.components) == 0
}

// AppendGlyph merges another glyph's contours, components, anchors and
// guidelines into the glyph, shifted by offset.
func (g *Glyph) AppendGlyph(other *Glyph, offset Position) error {
	for _, c := range other.contours {
		if _, err := g.AppendContour(c, offset); err != nil {
			return err
		}
	}
	for _, c := range other.components {
		t := c.transformation
		t.DX += offset.X
		t.DY += offset.Y
		if _, err := g.AppendComponent(c.baseGlyph, t); err != nil {
			return err
		}
	}
	for _, a := range other.anchors {
		pos := Position{X: a.x + offset.X, Y: a.y + offset.Y}
		if _, err := g.AppendAnchor(a.name, pos, cloneColor(a.color)); err != nil {
			return err
		}
	}
	for _, gl := range other.guidelines {
		pos := Position{X: gl.x + offset.X, Y: gl.y + offset.Y}
		if _, err := g.AppendGuideline(pos, gl.angle, gl.name, cloneColor(gl.color)); err != nil {
			return err
		}
	}
	return nil
}

// RemoveOverlap unions overlapping contours. The in-memory model
// carries no boolean outline engine, so this reports ErrUnsupported;
// environments with one provide their own.
func (g *Glyph) RemoveOverlap() error {
	return fmt.Errorf("remove overlap: %w", ErrUnsupported)
}

// Draw renders the glyph through a segment pen. Components are passed
// through as references.
func (g *Glyph) Draw(pen Pen) {
	for _, c := range g.contours {
		c.Draw(pen)
	}
	for _, c := range g.components {
		c.Draw(pen)
	}
}

// DrawPoints renders the glyph through a point pen.
func (g *Glyph) DrawPoints(pen PointPen) {
	for _, c := range g.contours {
		c.DrawPoints(pen)
	}
	for _, c := range g.components {
		c.DrawPoints(pen)
	}
}

// GetPen returns a segment pen that draws new outline into the glyph.
func (g *Glyph) GetPen() Pen {
	return &glyphPen{glyph: g}
}

// GetPointPen returns a point pen that draws new outline into the
// glyph.
func (g *Glyph) GetPointPen() PointPen {
	return &glyphPointPen{glyph: g}
}

// path records the glyph's full outline, components resolved against
// the parent layer.
func (g *Glyph) path() *Path {
	p := NewPath()
	if layer := g.layer; layer != nil {
		dp := newDecomposePen(p, layer)
		g.Draw(dp)
	} else {
		g.Draw(p)
	}
	return p
}

// Bounds returns the glyph's bounding box, components included. The
// second return value is false when the glyph has no outline.
func (g *Glyph) Bounds() (BoundingBox, bool) {
	return g.path().Bounds()
}

// Area returns the unsigned area enclosed by the glyph's outline.
func (g *Glyph) Area() float64 {
	a := g.path().Area()
	if a < 0 {
		return -a
	}
	return a
}

// PointInside reports whether a position is inside the glyph's
// outline, using the non-zero fill rule.
func (g *Glyph) PointInside(pos Position) bool {
	return g.path().Contains(pos)
}

// CorrectDirection sets contour windings to the PostScript convention:
// outer contours counter-clockwise, holes clockwise, by nesting depth.
func (g *Glyph) CorrectDirection() {
	for _, c := range g.contours {
		depth := 0
		for _, other := range g.contours {
			if other != c && other.ContourInside(c) {
				depth++
			}
		}
		c.SetClockwise(depth%2 == 1)
	}
}

// AutoContourOrder sorts the contours into a deterministic order:
// by bounding box position, then by point count.
func (g *Glyph) AutoContourOrder() {
	sort.SliceStable(g.contours, func(i, j int) bool {
		bi, iok := g.contours[i].Bounds()
		bj, jok := g.contours[j].Bounds()
		if iok != jok {
			return !iok
		}
		if bi.XMin != bj.XMin {
			return bi.XMin < bj.XMin
		}
		if bi.YMin != bj.YMin {
			return bi.YMin < bj.YMin
		}
		return len(g.contours[i].points) < len(g.contours[j].points)
	})
}

// Move shifts the glyph's outline, components and anchors by (dx, dy).
func (g *Glyph) Move(dx, dy float64) error {
	return g.TransformBy(Translate(dx, dy))
}

// Scale scales the glyph about an origin.
func (g *Glyph) Scale(sx, sy float64, origin Position) error {
	return g.transformAbout(ScaleTransform(sx, sy), origin)
}

// Rotate rotates the glyph by an angle in degrees about an origin.
func (g *Glyph) Rotate(degrees float64, origin Position) error {
	angle, err := normalizers.RotationAngle(degrees)
	if err != nil {
		return validationError("glyph", "angle", err)
	}
	return g.transformAbout(Rotate(angle), origin)
}

// Skew skews the glyph by angles in degrees about an origin.
func (g *Glyph) Skew(xDegrees, yDegrees float64, origin Position) error {
	return g.transformAbout(Skew(xDegrees, yDegrees), origin)
}

func (g *Glyph) transformAbout(t Transformation, origin Position) error {
	full := Translate(-origin.X, -origin.Y).Multiply(t).Multiply(Translate(origin.X, origin.Y))
	return g.TransformBy(full)
}

// TransformBy applies an affine transformation to the glyph's
// contours, components, anchors, guidelines and image.
func (g *Glyph) TransformBy(t Transformation) error {
	for _, c := range g.contours {
		if err := c.TransformBy(t); err != nil {
			return err
		}
	}
	for _, c := range g.components {
		if err := c.TransformBy(t); err != nil {
			return err
		}
	}
	for _, a := range g.anchors {
		if err := a.TransformBy(t); err != nil {
			return err
		}
	}
	for _, gl := range g.guidelines {
		if err := gl.TransformBy(t); err != nil {
			return err
		}
	}
	if g.image != nil {
		if err := g.image.TransformBy(t); err != nil {
			return err
		}
	}
	return nil
}

// Round rounds the glyph's width, height and every child coordinate to
// integers.
func (g *Glyph) Round() {
	g.width = float64(normalizers.VisualRounding(g.width))
	g.height = float64(normalizers.VisualRounding(g.height))
	for _, c := range g.contours {
		c.Round()
	}
	for _, c := range g.components {
		c.Round()
	}
	for _, a := range g.anchors {
		a.Round()
	}
	for _, gl := range g.guidelines {
		gl.Round()
	}
	if g.image != nil {
		g.image.Round()
	}
}

// Copy returns a detached deep copy of the glyph, identifiers
// excluded.
func (g *Glyph) Copy() *Glyph {
	out := newGlyph(g.name)
	out.unicodes = append([]rune(nil), g.unicodes...)
	out.width = g.width
	out.height = g.height
	out.note = g.note
	if g.markColor != nil {
		c := *g.markColor
		out.markColor = &c
	}
	for _, c := range g.contours {
		cp := c.Copy()
		cp.glyph = out
		out.contours = append(out.contours, cp)
	}
	for _, c := range g.components {
		cp := c.copyComponent()
		cp.glyph = out
		out.components = append(out.components, cp)
	}
	for _, a := range g.anchors {
		cp := a.copyAnchor()
		cp.glyph = out
		out.anchors = append(out.anchors, cp)
	}
	for _, gl := range g.guidelines {
		cp := gl.copyGuideline()
		cp.glyph = out
		out.guidelines = append(out.guidelines, cp)
	}
	if g.image != nil {
		cp := g.image.copyImage()
		cp.glyph = out
		out.image = cp
	}
	out.lib.Update(g.lib)
	return out
}

func (g *Glyph) String() string {
	return fmt.Sprintf("<Glyph %q>", g.name)
}

// glyphPen is a segment pen that builds outline directly into a glyph.
type glyphPen struct {
	glyph   *Glyph
	contour *Contour
}

func (p *glyphPen) MoveTo(pt Position) {
	p.contour = &Contour{glyph: p.glyph}
	p.contour.points = append(p.contour.points, &Point{
		contour: p.contour, x: pt.X, y: pt.Y, typ: normalizers.PointTypeMove,
	})
}

func (p *glyphPen) LineTo(pt Position) {
	p.addPoint(pt, normalizers.PointTypeLine)
}

func (p *glyphPen) CurveTo(cp1, cp2, pt Position) {
	p.addPoint(cp1, normalizers.PointTypeOffCurve)
	p.addPoint(cp2, normalizers.PointTypeOffCurve)
	p.addPoint(pt, normalizers.PointTypeCurve)
}

func (p *glyphPen) QCurveTo(pts ...Position) {
	if len(pts) == 0 {
		return
	}
	for _, pt := range pts[:len(pts)-1] {
		p.addPoint(pt, normalizers.PointTypeOffCurve)
	}
	p.addPoint(pts[len(pts)-1], normalizers.PointTypeQCurve)
}

func (p *glyphPen) addPoint(pt Position, typ string) {
	if p.contour == nil {
		return
	}
	p.contour.points = append(p.contour.points, &Point{
		contour: p.contour, x: pt.X, y: pt.Y, typ: typ,
	})
}

// ClosePath finishes a closed contour. The trailing on-curve point is
// merged into the start point when the path ends where it began.
func (p *glyphPen) ClosePath() {
	c := p.contour
	p.contour = nil
	if c == nil || len(c.points) == 0 {
		return
	}
	first := c.points[0]
	last := c.points[len(c.points)-1]
	if len(c.points) > 1 && last.typ != normalizers.PointTypeOffCurve &&
		first.x == last.x && first.y == last.y {
		// The closing segment's type and off-curves wrap onto the
		// start point.
		first.typ = last.typ
		first.smooth = last.smooth
		c.points = c.points[:len(c.points)-1]
	} else if first.typ == normalizers.PointTypeMove {
		// Closing line segment.
		first.typ = normalizers.PointTypeLine
	}
	p.glyph.contours = append(p.glyph.contours, c)
}

// EndPath finishes an open contour.
func (p *glyphPen) EndPath() {
	c := p.contour
	p.contour = nil
	if c == nil || len(c.points) == 0 {
		return
	}
	p.glyph.contours = append(p.glyph.contours, c)
}

func (p *glyphPen) AddComponent(baseGlyph string, transformation Transformation) {
	if _, err := p.glyph.AppendComponent(baseGlyph, transformation); err != nil {
		Logger().Warn("pen: component rejected", "baseGlyph", baseGlyph, "error", err)
	}
}

// glyphPointPen is a point pen that builds outline directly into a
// glyph.
type glyphPointPen struct {
	glyph   *Glyph
	contour *Contour
}

func (p *glyphPointPen) BeginPath(identifier string) {
	p.contour = &Contour{glyph: p.glyph, identifier: identifier}
}

func (p *glyphPointPen) AddPoint(pt Position, typ string, smooth bool, name, identifier string) {
	if p.contour == nil {
		return
	}
	if typ == "" {
		typ = normalizers.PointTypeOffCurve
	}
	p.contour.points = append(p.contour.points, &Point{
		contour:    p.contour,
		x:          pt.X,
		y:          pt.Y,
		typ:        typ,
		smooth:     smooth,
		name:       name,
		identifier: identifier,
	})
}

func (p *glyphPointPen) EndPath() {
	c := p.contour
	p.contour = nil
	if c == nil || len(c.points) == 0 {
		return
	}
	p.glyph.contours = append(p.glyph.contours, c)
}

func (p *glyphPointPen) AddComponent(baseGlyph string, transformation Transformation, identifier string) {
	c, err := p.glyph.AppendComponent(baseGlyph, transformation)
	if err != nil {
		Logger().Warn("point pen: component rejected", "baseGlyph", baseGlyph, "error", err)
		return
	}
	c.identifier = identifier
}
