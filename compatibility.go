package fontparts

import (
	"fmt"
	"strings"

	"github.com/robotools/fontparts/normalizers"
)

// CompatibilityReport collects the results of an interpolation
// compatibility check between two objects. Fatal problems make
// interpolation impossible; warnings flag differences that
// interpolation will paper over.
type CompatibilityReport struct {
	object string
	fatals []string
	warns  []string
}

func newCompatibilityReport(object string) *CompatibilityReport {
	return &CompatibilityReport{object: object}
}

func (r *CompatibilityReport) fatal(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *CompatibilityReport) warn(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func (r *CompatibilityReport) merge(other *CompatibilityReport) {
	for _, msg := range other.fatals {
		r.fatals = append(r.fatals, fmt.Sprintf("%s: %s", other.object, msg))
	}
	for _, msg := range other.warns {
		r.warns = append(r.warns, fmt.Sprintf("%s: %s", other.object, msg))
	}
}

// Fatal reports whether the objects cannot be interpolated.
func (r *CompatibilityReport) Fatal() bool { return len(r.fatals) > 0 }

// Fatals returns the fatal problems.
func (r *CompatibilityReport) Fatals() []string { return r.fatals }

// Warnings returns the non-fatal differences.
func (r *CompatibilityReport) Warnings() []string { return r.warns }

// Report returns a human-readable summary, or "" when the objects are
// fully compatible.
func (r *CompatibilityReport) Report() string {
	if len(r.fatals) == 0 && len(r.warns) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s compatibility:\n", r.object)
	for _, msg := range r.fatals {
		fmt.Fprintf(&b, "  [Fatal] %s\n", msg)
	}
	for _, msg := range r.warns {
		fmt.Fprintf(&b, "  [Warning] %s\n", msg)
	}
	return b.String()
}

func checkContourCompatibility(c1, c2 *Contour) *CompatibilityReport {
	r := newCompatibilityReport("contour")
	if len(c1.points) != len(c2.points) {
		r.fatal("point counts differ: %d vs %d", len(c1.points), len(c2.points))
		return r
	}
	if c1.Open() != c2.Open() {
		r.fatal("one contour is open, the other closed")
	}
	for i := range c1.points {
		t1, t2 := c1.points[i].typ, c2.points[i].typ
		if t1 != t2 {
			r.fatal("point %d types differ: %s vs %s", i, t1, t2)
		}
	}
	if c1.Clockwise() != c2.Clockwise() {
		r.warn("winding directions differ")
	}
	return r
}

func checkGlyphCompatibility(g1, g2 *Glyph) *CompatibilityReport {
	r := newCompatibilityReport("glyph")
	if len(g1.contours) != len(g2.contours) {
		r.fatal("contour counts differ: %d vs %d", len(g1.contours), len(g2.contours))
	} else {
		for i := range g1.contours {
			sub := checkContourCompatibility(g1.contours[i], g2.contours[i])
			sub.object = fmt.Sprintf("contour %d", i)
			r.merge(sub)
		}
	}
	if len(g1.components) != len(g2.components) {
		r.fatal("component counts differ: %d vs %d", len(g1.components), len(g2.components))
	} else {
		for i := range g1.components {
			b1, b2 := g1.components[i].baseGlyph, g2.components[i].baseGlyph
			if b1 != b2 {
				r.warn("component %d base glyphs differ: %q vs %q", i, b1, b2)
			}
		}
	}
	if len(g1.anchors) != len(g2.anchors) {
		r.warn("anchor counts differ: %d vs %d", len(g1.anchors), len(g2.anchors))
	} else {
		for i := range g1.anchors {
			n1, n2 := g1.anchors[i].name, g2.anchors[i].name
			if n1 != n2 {
				r.warn("anchor %d names differ: %q vs %q", i, n1, n2)
			}
		}
	}
	if len(g1.guidelines) != len(g2.guidelines) {
		r.warn("guideline counts differ: %d vs %d", len(g1.guidelines), len(g2.guidelines))
	}
	return r
}

func checkLayerCompatibility(l1, l2 *Layer) *CompatibilityReport {
	r := newCompatibilityReport("layer")
	names1 := l1.Keys()
	common := make([]string, 0, len(names1))
	for _, name := range names1 {
		if l2.Contains(name) {
			common = append(common, name)
		} else {
			r.warn("glyph %q missing from the other layer", name)
		}
	}
	for _, name := range l2.Keys() {
		if !l1.Contains(name) {
			r.warn("glyph %q missing from the other layer", name)
		}
	}
	for _, name := range common {
		g1 := l1.glyphs[name]
		g2 := l2.glyphs[name]
		sub := checkGlyphCompatibility(g1, g2)
		sub.object = fmt.Sprintf("glyph %q", name)
		r.merge(sub)
	}
	return r
}

func checkFontCompatibility(f1, f2 *Font) *CompatibilityReport {
	r := newCompatibilityReport("font")
	sub := checkLayerCompatibility(f1.DefaultLayer(), f2.DefaultLayer())
	sub.object = "default layer"
	r.merge(sub)
	return r
}

// IsCompatible reports whether the segment can be interpolated against
// other, with a textual report of the differences found.
func (s *Segment) IsCompatible(other *Segment) (bool, string) {
	r := newCompatibilityReport("segment")
	if s.Type() != other.Type() {
		r.fatal("segment types differ: %s vs %s", s.Type(), other.Type())
	}
	if len(s.OffCurve()) != len(other.OffCurve()) {
		r.fatal("off-curve counts differ: %d vs %d", len(s.OffCurve()), len(other.OffCurve()))
	}
	return !r.Fatal(), r.Report()
}

// IsCompatible reports whether the contour can be interpolated against
// other, with a textual report of the differences found.
func (c *Contour) IsCompatible(other *Contour) (bool, string) {
	r := checkContourCompatibility(c, other)
	return !r.Fatal(), r.Report()
}

// IsCompatible reports whether the glyph can be interpolated against
// other, with a textual report of the differences found.
func (g *Glyph) IsCompatible(other *Glyph) (bool, string) {
	r := checkGlyphCompatibility(g, other)
	return !r.Fatal(), r.Report()
}

// IsCompatible reports whether the layer can be interpolated against
// other, with a textual report of the differences found.
func (l *Layer) IsCompatible(other *Layer) (bool, string) {
	r := checkLayerCompatibility(l, other)
	return !r.Fatal(), r.Report()
}

// IsCompatible reports whether the font can be interpolated against
// other, with a textual report of the differences found.
func (f *Font) IsCompatible(other *Font) (bool, string) {
	r := checkFontCompatibility(f, other)
	return !r.Fatal(), r.Report()
}

// lerp is the shared interpolation primitive.
func lerp(a, b, factor float64) float64 {
	return a + (b-a)*factor
}

// Interpolate replaces the glyph's content with the interpolation of
// minGlyph and maxGlyph at factor. The glyphs must be compatible.
func (g *Glyph) Interpolate(factor float64, minGlyph, maxGlyph *Glyph, round bool) error {
	fx, _, err := normalizers.InterpolationFactor(factor, factor)
	if err != nil {
		return validationError("glyph", "factor", err)
	}
	r := checkGlyphCompatibility(minGlyph, maxGlyph)
	if r.Fatal() {
		return &CompatibilityError{Report: r}
	}

	g.Clear()
	g.width = lerp(minGlyph.width, maxGlyph.width, fx)
	g.height = lerp(minGlyph.height, maxGlyph.height, fx)

	for i, minC := range minGlyph.contours {
		maxC := maxGlyph.contours[i]
		c := &Contour{glyph: g}
		for j, minP := range minC.points {
			maxP := maxC.points[j]
			c.points = append(c.points, &Point{
				contour: c,
				x:       lerp(minP.x, maxP.x, fx),
				y:       lerp(minP.y, maxP.y, fx),
				typ:     minP.typ,
				smooth:  minP.smooth,
				name:    minP.name,
			})
		}
		g.contours = append(g.contours, c)
	}
	for i, minC := range minGlyph.components {
		maxC := maxGlyph.components[i]
		minT := minC.transformation.Values()
		maxT := maxC.transformation.Values()
		var values [6]float64
		for j := range values {
			values[j] = lerp(minT[j], maxT[j], fx)
		}
		t, terr := NewTransformation(values)
		if terr != nil {
			return terr
		}
		g.components = append(g.components, &Component{
			glyph:          g,
			baseGlyph:      minC.baseGlyph,
			transformation: t,
		})
	}
	if len(minGlyph.anchors) == len(maxGlyph.anchors) {
		for i, minA := range minGlyph.anchors {
			maxA := maxGlyph.anchors[i]
			g.anchors = append(g.anchors, &Anchor{
				glyph: g,
				x:     lerp(minA.x, maxA.x, fx),
				y:     lerp(minA.y, maxA.y, fx),
				name:  minA.name,
			})
		}
	}
	if round {
		g.Round()
	}
	return nil
}

// Interpolate interpolates every glyph common to minLayer and
// maxLayer into the layer.
func (l *Layer) Interpolate(factor float64, minLayer, maxLayer *Layer, round bool) error {
	r := checkLayerCompatibility(minLayer, maxLayer)
	if r.Fatal() {
		return &CompatibilityError{Report: r}
	}
	for _, name := range minLayer.Keys() {
		if !maxLayer.Contains(name) {
			continue
		}
		g, err := l.NewGlyph(name)
		if err != nil {
			return err
		}
		if err := g.Interpolate(factor, minLayer.glyphs[name], maxLayer.glyphs[name], round); err != nil {
			return err
		}
	}
	return nil
}

// Interpolate interpolates minFont and maxFont into the font: the
// default layer's glyphs, the kerning and the numeric font info.
func (f *Font) Interpolate(factor float64, minFont, maxFont *Font, round bool) error {
	r := checkFontCompatibility(minFont, maxFont)
	if r.Fatal() {
		return &CompatibilityError{Report: r}
	}
	if err := f.DefaultLayer().Interpolate(factor, minFont.DefaultLayer(), maxFont.DefaultLayer(), round); err != nil {
		return err
	}
	if err := f.kerning.Interpolate(factor, minFont.kerning, maxFont.kerning, round); err != nil {
		return err
	}
	return f.info.Interpolate(factor, minFont.info, maxFont.info, round)
}
