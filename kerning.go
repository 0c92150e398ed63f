package fontparts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robotools/fontparts/normalizers"
)

// Pair is a kerning pair. Each member is a glyph name or a kerning
// group name.
type Pair struct {
	First  string
	Second string
}

// Kerning maps pairs to adjustment values in font units.
type Kerning struct {
	font *Font

	data map[Pair]float64
}

func newKerning() *Kerning {
	return &Kerning{data: make(map[Pair]float64)}
}

// Font returns the kerning's parent font, or nil.
func (k *Kerning) Font() *Font { return k.font }

// Len returns the number of pairs.
func (k *Kerning) Len() int { return len(k.data) }

// Pairs returns every pair, sorted by first then second member.
func (k *Kerning) Pairs() []Pair {
	pairs := make([]Pair, 0, len(k.data))
	for pair := range k.data {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].First != pairs[j].First {
			return pairs[i].First < pairs[j].First
		}
		return pairs[i].Second < pairs[j].Second
	})
	return pairs
}

// Contains reports whether the exact pair is stored.
func (k *Kerning) Contains(pair Pair) bool {
	_, ok := k.data[pair]
	return ok
}

// Get returns the value stored for the exact pair. No group fallback
// is applied; use Find for lookup with fallback.
func (k *Kerning) Get(pair Pair) (float64, bool) {
	v, ok := k.data[pair]
	return v, ok
}

// Set stores a value for a pair.
func (k *Kerning) Set(pair Pair, value float64) error {
	first, second, err := normalizers.KerningKey(pair.First, pair.Second)
	if err != nil {
		return validationError("kerning", "pair", err)
	}
	v, err := normalizers.KerningValue(value)
	if err != nil {
		return validationError("kerning", "value", err)
	}
	k.data[Pair{First: first, Second: second}] = v
	return nil
}

// Remove deletes a pair.
func (k *Kerning) Remove(pair Pair) error {
	if _, ok := k.data[pair]; !ok {
		return fmt.Errorf("kerning pair (%q, %q): %w", pair.First, pair.Second, ErrNotFound)
	}
	delete(k.data, pair)
	return nil
}

// Clear removes all pairs.
func (k *Kerning) Clear() {
	k.data = make(map[Pair]float64)
}

// Find looks up the kerning for a pair of glyph names, falling back
// through the glyphs' kerning groups: glyph/glyph, then glyph/group,
// group/glyph and finally group/group. The fallback value is returned
// when nothing matches.
func (k *Kerning) Find(pair Pair, fallback float64) float64 {
	firstGroup := ""
	secondGroup := ""
	if k.font != nil {
		groups := k.font.groups
		if !strings.HasPrefix(pair.First, KerningGroupPrefix1) {
			firstGroup = groups.kerningGroupFor(pair.First, KerningGroupPrefix1)
		}
		if !strings.HasPrefix(pair.Second, KerningGroupPrefix2) {
			secondGroup = groups.kerningGroupFor(pair.Second, KerningGroupPrefix2)
		}
	}
	candidates := []Pair{pair}
	if secondGroup != "" {
		candidates = append(candidates, Pair{First: pair.First, Second: secondGroup})
	}
	if firstGroup != "" {
		candidates = append(candidates, Pair{First: firstGroup, Second: pair.Second})
	}
	if firstGroup != "" && secondGroup != "" {
		candidates = append(candidates, Pair{First: firstGroup, Second: secondGroup})
	}
	for _, candidate := range candidates {
		if v, ok := k.data[candidate]; ok {
			return v
		}
	}
	return fallback
}

// ScaleBy multiplies every value by factor.
func (k *Kerning) ScaleBy(factor float64) {
	for pair, value := range k.data {
		k.data[pair] = value * factor
	}
}

// Round rounds every value to the nearest increment. An increment of
// zero or one rounds to integers.
func (k *Kerning) Round(increment int) {
	if increment <= 0 {
		increment = 1
	}
	inc := float64(increment)
	for pair, value := range k.data {
		k.data[pair] = float64(normalizers.VisualRounding(value/inc)) * inc
	}
}

// Update copies every pair from other into the kerning.
func (k *Kerning) Update(other *Kerning) {
	if other == nil {
		return
	}
	for pair, value := range other.data {
		k.data[pair] = value
	}
}

// AsMap returns a copy of the kerning as a plain map.
func (k *Kerning) AsMap() map[Pair]float64 {
	out := make(map[Pair]float64, len(k.data))
	for pair, value := range k.data {
		out[pair] = value
	}
	return out
}

// Interpolate replaces the kerning with the interpolation of minK and
// maxK at factor. Pairs missing from one side are treated as zero.
func (k *Kerning) Interpolate(factor float64, minK, maxK *Kerning, round bool) error {
	fx, _, err := normalizers.InterpolationFactor(factor, factor)
	if err != nil {
		return validationError("kerning", "factor", err)
	}
	k.Clear()
	seen := make(map[Pair]bool, len(minK.data))
	for pair, minV := range minK.data {
		seen[pair] = true
		k.data[pair] = lerp(minV, maxK.data[pair], fx)
	}
	for pair, maxV := range maxK.data {
		if !seen[pair] {
			k.data[pair] = lerp(0, maxV, fx)
		}
	}
	if round {
		k.Round(1)
	}
	return nil
}

func (k *Kerning) String() string {
	return fmt.Sprintf("<Kerning %d pairs>", len(k.data))
}
