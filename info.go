package fontparts

import (
	"fmt"
	"sort"

	"github.com/robotools/fontparts/normalizers"
)

// Info holds the font's metadata and global metrics. Attributes are
// stored by name and validated on the way in; the common ones have
// typed accessors.
type Info struct {
	font *Font

	data map[string]any
}

func newInfo() *Info {
	return &Info{data: make(map[string]any)}
}

// Font returns the info's parent font, or nil.
func (info *Info) Font() *Font { return info.font }

// infoValidator normalizes one info attribute value.
type infoValidator func(any) (any, error)

func infoString(value any) (any, error) {
	v, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, got %T", value)
	}
	return v, nil
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func infoNumber(value any) (any, error) {
	v, ok := toNumber(value)
	if !ok {
		return nil, fmt.Errorf("expected a number, got %T", value)
	}
	if _, err := normalizers.X(v); err != nil {
		return nil, err
	}
	return v, nil
}

func infoPositiveNumber(value any) (any, error) {
	raw, err := infoNumber(value)
	if err != nil {
		return nil, err
	}
	v := raw.(float64)
	if v <= 0 {
		return nil, fmt.Errorf("expected a positive number, got %g", v)
	}
	return v, nil
}

func infoAngle(value any) (any, error) {
	raw, err := infoNumber(value)
	if err != nil {
		return nil, err
	}
	v := raw.(float64)
	if v < -360 || v > 360 {
		return nil, fmt.Errorf("angle %g is out of range", v)
	}
	return v, nil
}

func infoInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return nil, fmt.Errorf("expected an integer, got %T (%v)", value, value)
}

func infoIntRange(min, max int) infoValidator {
	return func(value any) (any, error) {
		raw, err := infoInt(value)
		if err != nil {
			return nil, err
		}
		v := raw.(int)
		if v < min || v > max {
			return nil, fmt.Errorf("expected an integer between %d and %d, got %d", min, max, v)
		}
		return v, nil
	}
}

func infoNonNegativeInt(value any) (any, error) {
	raw, err := infoInt(value)
	if err != nil {
		return nil, err
	}
	v := raw.(int)
	if v < 0 {
		return nil, fmt.Errorf("expected a non-negative integer, got %d", v)
	}
	return v, nil
}

func infoBool(value any) (any, error) {
	v, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("expected a bool, got %T", value)
	}
	return v, nil
}

func infoEnum(options ...string) infoValidator {
	return func(value any) (any, error) {
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", value)
		}
		for _, option := range options {
			if v == option {
				return v, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of %v", v, options)
	}
}

func infoNumberList(maxLen int) infoValidator {
	return func(value any) (any, error) {
		var out []float64
		switch v := value.(type) {
		case []float64:
			out = append(out, v...)
		case []int:
			for _, n := range v {
				out = append(out, float64(n))
			}
		case []any:
			for _, item := range v {
				n, ok := toNumber(item)
				if !ok {
					return nil, fmt.Errorf("expected numbers, got %T", item)
				}
				out = append(out, n)
			}
		default:
			return nil, fmt.Errorf("expected a list of numbers, got %T", value)
		}
		if maxLen > 0 && len(out) > maxLen {
			return nil, fmt.Errorf("expected at most %d values, got %d", maxLen, len(out))
		}
		for _, n := range out {
			if _, err := normalizers.X(n); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
}

// infoAttributes maps every known info attribute to its validator.
var infoAttributes = map[string]infoValidator{
	"familyName":         infoString,
	"styleName":          infoString,
	"styleMapFamilyName": infoString,
	"styleMapStyleName":  infoEnum("regular", "italic", "bold", "bold italic"),
	"versionMajor":       infoInt,
	"versionMinor":       infoNonNegativeInt,
	"copyright":          infoString,
	"trademark":          infoString,
	"note":               infoString,

	"unitsPerEm":  infoPositiveNumber,
	"descender":   infoNumber,
	"xHeight":     infoNumber,
	"capHeight":   infoNumber,
	"ascender":    infoNumber,
	"italicAngle": infoAngle,

	"openTypeNameDesigner":        infoString,
	"openTypeNameDesignerURL":     infoString,
	"openTypeNameManufacturer":    infoString,
	"openTypeNameManufacturerURL": infoString,
	"openTypeNameLicense":         infoString,
	"openTypeNameLicenseURL":      infoString,
	"openTypeNameDescription":     infoString,
	"openTypeNameSampleText":      infoString,
	"openTypeOS2WeightClass":      infoIntRange(1, 1000),
	"openTypeOS2WidthClass":       infoIntRange(1, 9),
	"openTypeOS2VendorID":         infoString,

	"postscriptFontName":           infoString,
	"postscriptFullName":           infoString,
	"postscriptSlantAngle":         infoAngle,
	"postscriptUnderlineThickness": infoNumber,
	"postscriptUnderlinePosition":  infoNumber,
	"postscriptBlueValues":         infoNumberList(14),
	"postscriptOtherBlues":         infoNumberList(10),
	"postscriptFamilyBlues":        infoNumberList(14),
	"postscriptFamilyOtherBlues":   infoNumberList(10),
	"postscriptStemSnapH":          infoNumberList(12),
	"postscriptStemSnapV":          infoNumberList(12),
	"postscriptIsFixedPitch":       infoBool,
}

// roundableAttributes are the numeric attributes affected by Round.
var roundableAttributes = []string{
	"unitsPerEm", "descender", "xHeight", "capHeight", "ascender",
	"postscriptUnderlineThickness", "postscriptUnderlinePosition",
}

// interpolableAttributes are the numeric attributes affected by
// Interpolate.
var interpolableAttributes = []string{
	"unitsPerEm", "descender", "xHeight", "capHeight", "ascender",
	"italicAngle", "postscriptSlantAngle",
	"postscriptUnderlineThickness", "postscriptUnderlinePosition",
}

// Attributes returns the names of every known attribute, sorted.
func (info *Info) Attributes() []string {
	names := make([]string, 0, len(infoAttributes))
	for name := range infoAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value stored for an attribute.
func (info *Info) Get(attr string) (any, bool) {
	v, ok := info.data[attr]
	return v, ok
}

// Set validates and stores an attribute value. Pass nil to clear it.
func (info *Info) Set(attr string, value any) error {
	validator, ok := infoAttributes[attr]
	if !ok {
		return fmt.Errorf("info attribute %q: %w", attr, ErrNotFound)
	}
	if value == nil {
		delete(info.data, attr)
		return nil
	}
	v, err := validator(value)
	if err != nil {
		return validationError("info", attr, err)
	}
	info.data[attr] = v
	return nil
}

// Update copies every attribute from other into the info.
func (info *Info) Update(other *Info) {
	if other == nil {
		return
	}
	for attr, value := range other.data {
		info.data[attr] = value
	}
}

func (info *Info) stringAttr(attr string) string {
	if v, ok := info.data[attr].(string); ok {
		return v
	}
	return ""
}

func (info *Info) numberAttr(attr string) float64 {
	if v, ok := info.data[attr].(float64); ok {
		return v
	}
	return 0
}

// FamilyName returns the family name, or "".
func (info *Info) FamilyName() string { return info.stringAttr("familyName") }

// SetFamilyName sets the family name.
func (info *Info) SetFamilyName(value string) error { return info.Set("familyName", value) }

// StyleName returns the style name, or "".
func (info *Info) StyleName() string { return info.stringAttr("styleName") }

// SetStyleName sets the style name.
func (info *Info) SetStyleName(value string) error { return info.Set("styleName", value) }

// UnitsPerEm returns the units per em, or 0 when unset.
func (info *Info) UnitsPerEm() float64 { return info.numberAttr("unitsPerEm") }

// SetUnitsPerEm sets the units per em.
func (info *Info) SetUnitsPerEm(value float64) error { return info.Set("unitsPerEm", value) }

// Ascender returns the ascender, or 0 when unset.
func (info *Info) Ascender() float64 { return info.numberAttr("ascender") }

// SetAscender sets the ascender.
func (info *Info) SetAscender(value float64) error { return info.Set("ascender", value) }

// Descender returns the descender, or 0 when unset.
func (info *Info) Descender() float64 { return info.numberAttr("descender") }

// SetDescender sets the descender.
func (info *Info) SetDescender(value float64) error { return info.Set("descender", value) }

// XHeight returns the x-height, or 0 when unset.
func (info *Info) XHeight() float64 { return info.numberAttr("xHeight") }

// SetXHeight sets the x-height.
func (info *Info) SetXHeight(value float64) error { return info.Set("xHeight", value) }

// CapHeight returns the cap height, or 0 when unset.
func (info *Info) CapHeight() float64 { return info.numberAttr("capHeight") }

// SetCapHeight sets the cap height.
func (info *Info) SetCapHeight(value float64) error { return info.Set("capHeight", value) }

// ItalicAngle returns the italic angle in degrees, or 0 when unset.
func (info *Info) ItalicAngle() float64 { return info.numberAttr("italicAngle") }

// SetItalicAngle sets the italic angle in degrees.
func (info *Info) SetItalicAngle(value float64) error { return info.Set("italicAngle", value) }

// Round rounds the roundable numeric attributes to integers.
func (info *Info) Round() {
	for _, attr := range roundableAttributes {
		if v, ok := info.data[attr].(float64); ok {
			info.data[attr] = float64(normalizers.VisualRounding(v))
		}
	}
}

// Interpolate sets the numeric attributes present in both minInfo and
// maxInfo to their interpolation at factor.
func (info *Info) Interpolate(factor float64, minInfo, maxInfo *Info, round bool) error {
	fx, _, err := normalizers.InterpolationFactor(factor, factor)
	if err != nil {
		return validationError("info", "factor", err)
	}
	for _, attr := range interpolableAttributes {
		minV, minOK := minInfo.data[attr].(float64)
		maxV, maxOK := maxInfo.data[attr].(float64)
		if !minOK || !maxOK {
			continue
		}
		if err := info.Set(attr, lerp(minV, maxV, fx)); err != nil {
			return err
		}
	}
	if round {
		info.Round()
	}
	return nil
}

func (info *Info) String() string {
	name := info.FamilyName()
	if style := info.StyleName(); style != "" {
		name += " " + style
	}
	return fmt.Sprintf("<Info %q>", name)
}
