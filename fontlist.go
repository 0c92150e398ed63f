package fontparts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FontList is a list of fonts with sorting helpers.
type FontList []*Font

// sortableAttributes are the info attributes SortBy accepts.
var sortableAttributes = map[string]bool{
	"familyName":             true,
	"styleName":              true,
	"unitsPerEm":             true,
	"ascender":               true,
	"descender":              true,
	"xHeight":                true,
	"capHeight":              true,
	"italicAngle":            true,
	"openTypeOS2WeightClass": true,
	"openTypeOS2WidthClass":  true,
}

// derivedSortValue computes the derived sort keys SortBy accepts in
// addition to raw info attributes. Roman and italic are read from the
// style map style with the italic angle as a fallback.
func derivedSortValue(info *Info, attr string) (float64, bool) {
	switch attr {
	case "isItalic":
		return boolSortValue(infoIsItalic(info)), true
	case "isRoman":
		return boolSortValue(!infoIsItalic(info)), true
	case "weightValue":
		return numberSortValue(info, "openTypeOS2WeightClass")
	case "widthValue":
		return numberSortValue(info, "openTypeOS2WidthClass")
	case "isMonospace":
		v, ok := info.Get("postscriptIsFixedPitch")
		b, isBool := v.(bool)
		return boolSortValue(ok && isBool && b), true
	}
	return 0, false
}

func infoIsItalic(info *Info) bool {
	if style, ok := info.Get("styleMapStyleName"); ok {
		if s, isString := style.(string); isString {
			return strings.Contains(s, "italic")
		}
	}
	return info.ItalicAngle() != 0
}

func boolSortValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func numberSortValue(info *Info, attr string) (float64, bool) {
	v, ok := info.Get(attr)
	if !ok {
		return 0, false
	}
	n, isNumber := toNumber(v)
	return n, isNumber
}

// derivedAttributes are the computed sort keys SortBy accepts.
var derivedAttributes = map[string]bool{
	"isRoman":     true,
	"isItalic":    true,
	"weightValue": true,
	"widthValue":  true,
	"isMonospace": true,
}

// SortBy sorts the list in place by one or more info attributes or
// derived keys, in the order given. String attributes use locale-aware,
// case-insensitive collation; fonts missing an attribute sort first.
func (fl FontList) SortBy(attributes ...string) error {
	for _, attr := range attributes {
		if !sortableAttributes[attr] && !derivedAttributes[attr] {
			return fmt.Errorf("cannot sort by %q: %w", attr, ErrUnsupported)
		}
	}
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(fl, func(i, j int) bool {
		for _, attr := range attributes {
			cmp := compareInfoAttr(collator, fl[i].info, fl[j].info, attr)
			if cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return nil
}

func compareInfoAttr(collator *collate.Collator, a, b *Info, attr string) int {
	if derivedAttributes[attr] {
		x, aok := derivedSortValue(a, attr)
		y, bok := derivedSortValue(b, attr)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	av, aok := a.Get(attr)
	bv, bok := b.Get(attr)
	if !aok || !bok {
		switch {
		case aok == bok:
			return 0
		case !aok:
			return -1
		default:
			return 1
		}
	}
	switch x := av.(type) {
	case string:
		y, ok := bv.(string)
		if !ok {
			return 0
		}
		return collator.CompareString(x, y)
	case float64:
		y, ok := toNumber(bv)
		if !ok {
			return 0
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	case int:
		y, ok := toNumber(bv)
		if !ok {
			return 0
		}
		fx := float64(x)
		switch {
		case fx < y:
			return -1
		case fx > y:
			return 1
		}
	}
	return 0
}

// FamilyNames returns the distinct family names in the list, sorted.
func (fl FontList) FamilyNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range fl {
		name := f.info.FamilyName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	collator := collate.New(language.Und, collate.IgnoreCase)
	collator.SortStrings(names)
	return names
}

// FontsForFamily returns the fonts whose family name matches.
func (fl FontList) FontsForFamily(familyName string) FontList {
	var out FontList
	for _, f := range fl {
		if f.info.FamilyName() == familyName {
			out = append(out, f)
		}
	}
	return out
}
