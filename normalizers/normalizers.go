// Package normalizers implements the validation and coercion layer of the
// fontparts object model. Every public setter in the object model funnels
// its input through one of these predicates. A predicate either returns the
// canonical form of the value or an error wrapping ErrInvalid; predicates
// are idempotent on already-canonical input.
package normalizers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is the sentinel wrapped by every validation failure reported
// by this package. Use errors.Is(err, normalizers.ErrInvalid) to detect
// validation errors regardless of the attribute that produced them.
var ErrInvalid = errors.New("fontparts: invalid value")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// finite reports whether v is a usable coordinate or metric value.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ----
// Font
// ----

// FileStructure normalizes a font's file structure. The only allowed
// values are "zip" and "package".
func FileStructure(value string) (string, error) {
	switch value {
	case "zip", "package":
		return value, nil
	}
	return "", invalidf("file structure must be zip or package, not %q", value)
}

// LayerOrder normalizes a layer order against the layer names that exist
// in the font. The value must be a permutation of the existing names:
// every entry must be a valid layer name, must exist in the font, must
// not repeat, and no existing layer may be left out.
func LayerOrder(value, existing []string) ([]string, error) {
	if len(value) != len(existing) {
		return nil, invalidf("layer order must contain all %d layers, got %d", len(existing), len(value))
	}
	seen := make(map[string]bool, len(value))
	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}
	out := make([]string, 0, len(value))
	for _, name := range value {
		name, err := LayerName(name)
		if err != nil {
			return nil, err
		}
		if !known[name] {
			return nil, invalidf("layer %q does not exist in the font", name)
		}
		if seen[name] {
			return nil, invalidf("duplicate layer name %q in layer order", name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// DefaultLayerName normalizes a default layer name. The name must be a
// valid layer name and must be present in layerOrder.
func DefaultLayerName(value string, layerOrder []string) (string, error) {
	value, err := LayerName(value)
	if err != nil {
		return "", err
	}
	for _, name := range layerOrder {
		if name == value {
			return value, nil
		}
	}
	return "", invalidf("no layer with the name %q exists", value)
}

// GlyphOrder normalizes a glyph order. Every entry must be a valid glyph
// name and must not repeat.
func GlyphOrder(value []string) ([]string, error) {
	seen := make(map[string]bool, len(value))
	out := make([]string, 0, len(value))
	for _, name := range value {
		name, err := GlyphName(name)
		if err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, invalidf("duplicate glyph name %q in glyph order", name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// -------
// Kerning
// -------

// KerningKey normalizes a kerning pair. Both members must be at least one
// character long, and members using the public group namespace must carry
// the side-specific kerning group prefix.
func KerningKey(first, second string) (string, string, error) {
	if len(first) < 1 || len(second) < 1 {
		return "", "", invalidf("kerning key members must be at least one character long")
	}
	if strings.HasPrefix(first, "public.") && !strings.HasPrefix(first, "public.kern1.") {
		return "", "", invalidf("left kerning key group must start with public.kern1.")
	}
	if strings.HasPrefix(second, "public.") && !strings.HasPrefix(second, "public.kern2.") {
		return "", "", invalidf("right kerning key group must start with public.kern2.")
	}
	return first, second, nil
}

// KerningValue normalizes a kerning value.
func KerningValue(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("kerning value must be finite, not %v", value)
	}
	return value, nil
}

// ------
// Groups
// ------

// GroupKey normalizes a group name.
func GroupKey(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("group key must be at least one character long")
	}
	return value, nil
}

// GroupValue normalizes a group's member list. Every member must be a
// valid glyph name.
func GroupValue(value []string) ([]string, error) {
	out := make([]string, 0, len(value))
	for _, name := range value {
		name, err := GlyphName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// ---
// Lib
// ---

// LibKey normalizes a lib key.
func LibKey(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("lib key must be at least one character long")
	}
	return value, nil
}

// LibValue normalizes a lib value. Values must not be nil; slices and maps
// are checked recursively.
func LibValue(value any) (any, error) {
	if value == nil {
		return nil, invalidf("lib value must not be nil")
	}
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if _, err := LibValue(item); err != nil {
				return nil, err
			}
		}
	case map[string]any:
		for key, item := range v {
			if _, err := LibKey(key); err != nil {
				return nil, err
			}
			if _, err := LibValue(item); err != nil {
				return nil, err
			}
		}
	}
	return value, nil
}

// -----
// Layer
// -----

// LayerName normalizes a layer name.
func LayerName(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("layer names must be at least one character long")
	}
	return value, nil
}

// -----
// Glyph
// -----

// GlyphName normalizes a glyph name.
func GlyphName(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("glyph names must be at least one character long")
	}
	return value, nil
}

// GlyphUnicode normalizes a single unicode value. The value must lie in
// the Unicode range.
func GlyphUnicode(value int) (rune, error) {
	if value < 0 || value > 0x10FFFF {
		return 0, invalidf("glyph unicode %d is outside of the Unicode range", value)
	}
	return rune(value), nil
}

// GlyphUnicodeHex normalizes a unicode value given as a hex string, as
// accepted by interactive environments.
func GlyphUnicodeHex(value string) (rune, error) {
	parsed, err := strconv.ParseInt(value, 16, 64)
	if err != nil {
		return 0, invalidf("glyph unicode hex %q is not a valid hex string", value)
	}
	return GlyphUnicode(int(parsed))
}

// GlyphUnicodes normalizes a list of unicode values. Values must not
// repeat.
func GlyphUnicodes(value []rune) ([]rune, error) {
	seen := make(map[rune]bool, len(value))
	out := make([]rune, 0, len(value))
	for _, r := range value {
		r, err := GlyphUnicode(int(r))
		if err != nil {
			return nil, err
		}
		if seen[r] {
			return nil, invalidf("duplicate unicode value %U", r)
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}

// GlyphWidth normalizes a glyph advance width.
func GlyphWidth(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("glyph width must be finite, not %v", value)
	}
	return value, nil
}

// GlyphHeight normalizes a glyph advance height.
func GlyphHeight(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("glyph height must be finite, not %v", value)
	}
	return value, nil
}

// GlyphMargin normalizes a glyph margin (left, right, top or bottom).
func GlyphMargin(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("glyph margin must be finite, not %v", value)
	}
	return value, nil
}

// GlyphFormatVersion normalizes a glyph format version. Only versions 1
// and 2 exist.
func GlyphFormatVersion(value int) (int, error) {
	if value != 1 && value != 2 {
		return 0, invalidf("glyph format version must be 1 or 2, not %d", value)
	}
	return value, nil
}

// -----
// Point
// -----

// Point types.
const (
	PointTypeMove     = "move"
	PointTypeLine     = "line"
	PointTypeOffCurve = "offcurve"
	PointTypeCurve    = "curve"
	PointTypeQCurve   = "qcurve"
)

// PointType normalizes a point type.
func PointType(value string) (string, error) {
	switch value {
	case PointTypeMove, PointTypeLine, PointTypeOffCurve, PointTypeCurve, PointTypeQCurve:
		return value, nil
	}
	return "", invalidf("point type must be move, line, offcurve, curve or qcurve, not %q", value)
}

// PointName normalizes a point name.
func PointName(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("point names must be at least one character long")
	}
	return value, nil
}

// -------
// Segment
// -------

// SegmentType normalizes a segment type.
func SegmentType(value string) (string, error) {
	switch value {
	case PointTypeMove, PointTypeLine, PointTypeCurve, PointTypeQCurve:
		return value, nil
	}
	return "", invalidf("segment type must be move, line, curve or qcurve, not %q", value)
}

// ------
// BPoint
// ------

// BPoint types.
const (
	BPointTypeCorner = "corner"
	BPointTypeCurve  = "curve"
)

// BPointType normalizes a bPoint type.
func BPointType(value string) (string, error) {
	switch value {
	case BPointTypeCorner, BPointTypeCurve:
		return value, nil
	}
	return "", invalidf("bPoint type must be corner or curve, not %q", value)
}

// ---------
// Component
// ---------

// ComponentScale normalizes a component scale pair.
func ComponentScale(x, y float64) (float64, float64, error) {
	if !finite(x) || !finite(y) {
		return 0, 0, invalidf("component scale values must be finite")
	}
	return x, y, nil
}

// ------
// Anchor
// ------

// AnchorName normalizes an anchor name. The empty string clears the name.
func AnchorName(value string) (string, error) {
	return value, nil
}

// ---------
// Guideline
// ---------

// GuidelineName normalizes a guideline name.
func GuidelineName(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("guideline names must be at least one character long")
	}
	return value, nil
}

// --------------
// Identification
// --------------

// maxIdentifierLength is imposed by the UFO identifier conventions.
const maxIdentifierLength = 100

// Identifier normalizes an identifier. Identifiers must be 1-100
// characters long and consist only of printable ASCII (0x20-0x7E).
func Identifier(value string) (string, error) {
	if len(value) == 0 {
		return "", invalidf("identifier must not be empty")
	}
	if len(value) > maxIdentifierLength {
		return "", invalidf("identifier length %d exceeds the maximum of %d", len(value), maxIdentifierLength)
	}
	for _, c := range value {
		if c < 0x20 || c > 0x7E {
			return "", invalidf("identifier %q contains a character outside of the range 0x20-0x7E", value)
		}
	}
	return value, nil
}

// -----------
// Coordinates
// -----------

// X normalizes an x coordinate.
func X(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("x coordinate must be finite, not %v", value)
	}
	return value, nil
}

// Y normalizes a y coordinate.
func Y(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("y coordinate must be finite, not %v", value)
	}
	return value, nil
}

// CoordinatePair normalizes an (x, y) pair.
func CoordinatePair(x, y float64) (float64, float64, error) {
	x, err := X(x)
	if err != nil {
		return 0, 0, err
	}
	y, err = Y(y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// BoundingBox normalizes a bounding box given as xMin, yMin, xMax, yMax.
// The minimums must not exceed the corresponding maximums.
func BoundingBox(xMin, yMin, xMax, yMax float64) ([4]float64, error) {
	for _, v := range [4]float64{xMin, yMin, xMax, yMax} {
		if !finite(v) {
			return [4]float64{}, invalidf("bounding box values must be finite")
		}
	}
	if xMin > xMax {
		return [4]float64{}, invalidf("bounding box xMin must be less than or equal to xMax")
	}
	if yMin > yMax {
		return [4]float64{}, invalidf("bounding box yMin must be less than or equal to yMax")
	}
	return [4]float64{xMin, yMin, xMax, yMax}, nil
}

// Area normalizes an area. Areas must be positive.
func Area(value float64) (float64, error) {
	if !finite(value) || value < 0 {
		return 0, invalidf("area must be a positive number, not %v", value)
	}
	return value, nil
}

// RotationAngle normalizes an angle. The angle must be between -360 and
// 360; negative angles are folded into [0, 360).
func RotationAngle(value float64) (float64, error) {
	if !finite(value) {
		return 0, invalidf("angle must be finite, not %v", value)
	}
	if math.Abs(value) > 360 {
		return 0, invalidf("angle must be between -360 and 360, not %v", value)
	}
	if value < 0 {
		value += 360
	}
	return value, nil
}

// -----
// Color
// -----

// Color normalizes color components. Every component must be between 0
// and 1.
func Color(r, g, b, a float64) ([4]float64, error) {
	components := [4]float64{r, g, b, a}
	names := [4]string{"r", "g", "b", "a"}
	for i, v := range components {
		if !finite(v) || v < 0 || v > 1 {
			return [4]float64{}, invalidf("the value for the %s component (%v) is not between 0 and 1", names[i], v)
		}
	}
	return components, nil
}

// ---------
// File path
// ---------

// FilePath normalizes a file path.
func FilePath(value string) (string, error) {
	if len(value) < 1 {
		return "", invalidf("file paths must be at least one character long")
	}
	return value, nil
}

// -------------
// Interpolation
// -------------

// InterpolationFactor normalizes an interpolation factor pair. Scalar
// factors are expressed by passing the same value for x and y.
func InterpolationFactor(x, y float64) (float64, float64, error) {
	if !finite(x) || !finite(y) {
		return 0, 0, invalidf("interpolation factor values must be finite")
	}
	return x, y, nil
}

// ---------------
// Transformations
// ---------------

// TransformationMatrix normalizes a six value transformation matrix.
func TransformationMatrix(value [6]float64) ([6]float64, error) {
	for _, v := range value {
		if !finite(v) {
			return [6]float64{}, invalidf("transformation matrix values must be finite")
		}
	}
	return value, nil
}

// TransformationOffset normalizes a transformation offset pair.
func TransformationOffset(x, y float64) (float64, float64, error) {
	return CoordinatePair(x, y)
}

// TransformationSkewAngle normalizes a skew angle pair. Angles must be
// between -360 and 360; negative angles are folded into [0, 360).
func TransformationSkewAngle(x, y float64) (float64, float64, error) {
	x, err := RotationAngle(x)
	if err != nil {
		return 0, 0, err
	}
	y, err = RotationAngle(y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// TransformationScale normalizes a transformation scale pair.
func TransformationScale(x, y float64) (float64, float64, error) {
	if !finite(x) || !finite(y) {
		return 0, 0, invalidf("transformation scale values must be finite")
	}
	return x, y, nil
}

// --------
// Rounding
// --------

// VisualRounding rounds a value the way type designers expect: ties round
// toward positive infinity rather than to the nearest even number, so a
// point at 0.5 lands on 1 and a point at -0.5 lands on 0.
func VisualRounding(value float64) int {
	return int(math.Floor(value + 0.5))
}
