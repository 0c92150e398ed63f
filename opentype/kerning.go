package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/robotools/fontparts"
)

// loadKerning extracts pair kerning for the given runes by shaping and
// stores it in the font's kerning object.
func loadKerning(f *fontparts.Font, data []byte, runes []rune) error {
	pairs, err := ExtractKerning(data, runes)
	if err != nil {
		return err
	}
	kerning := f.Kerning()
	for pair, value := range pairs {
		if err := kerning.Set(pair, value); err != nil {
			return err
		}
	}
	return nil
}

// ExtractKerning shapes every ordered pair of the given runes and
// returns the non-zero advance adjustments in font units. The work is
// quadratic in the number of runes.
func ExtractKerning(data []byte, runes []rune) (map[fontparts.Pair]float64, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font for shaping: %w", err)
	}
	upem := int(face.Upem())
	shaper := &shaping.HarfbuzzShaper{}

	// Shaping at size == upem keeps advances in font units.
	solo := make(map[rune]fixed.Int26_6, len(runes))
	for _, r := range runes {
		out := shapeRun(shaper, face, upem, []rune{r})
		if len(out.Glyphs) != 1 {
			continue
		}
		solo[r] = out.Glyphs[0].XAdvance
	}

	pairs := make(map[fontparts.Pair]float64)
	for _, first := range runes {
		base, ok := solo[first]
		if !ok {
			continue
		}
		for _, second := range runes {
			if _, ok := solo[second]; !ok {
				continue
			}
			out := shapeRun(shaper, face, upem, []rune{first, second})
			if len(out.Glyphs) != 2 {
				continue
			}
			kern := fromFixed(out.Glyphs[0].XAdvance - base)
			if kern == 0 {
				continue
			}
			pairs[fontparts.Pair{First: glyphName(first), Second: glyphName(second)}] = kern
		}
	}
	return pairs, nil
}

func shapeRun(shaper *shaping.HarfbuzzShaper, face *font.Face, upem int, text []rune) shaping.Output {
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.I(upem),
		Script:    language.LookupScript(text[0]),
		Language:  language.NewLanguage("en"),
	}
	return shaper.Shape(input)
}
