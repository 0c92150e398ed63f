// Package opentype is a read-only environment serving OpenType and
// TrueType fonts. Opened fonts expose names, metrics, the character
// mapping and glyph outlines; they cannot be saved back.
package opentype

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/robotools/fontparts"
)

// EnvironmentName is the name the environment registers under.
const EnvironmentName = "opentype"

type environment struct{}

func (environment) Name() string { return EnvironmentName }

func (environment) NewFont() (*fontparts.Font, error) {
	return nil, fmt.Errorf("opentype environment is read-only: %w", fontparts.ErrUnsupported)
}

func (environment) OpenFont(path string) (*fontparts.Font, error) {
	return Open(path)
}

func init() {
	fontparts.RegisterEnvironment(environment{})
}

// Option configures Open and Parse.
type Option func(*config)

type config struct {
	kerningRunes []rune
}

// WithKerningRunes extracts kerning for every ordered pair of the
// given runes while loading. Extraction shapes each pair, so keep the
// set small.
func WithKerningRunes(runes []rune) Option {
	return func(cfg *config) { cfg.kerningRunes = runes }
}

// Open loads an OpenType or TrueType font from a file.
func Open(path string, opts ...Option) (*fontparts.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	f, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	if err := f.SetPath(path); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse loads an OpenType or TrueType font from memory.
func Parse(data []byte, opts ...Option) (*fontparts.Font, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	src, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	f := fontparts.NewEmptyFont()
	var buf sfnt.Buffer

	if err := loadInfo(f, src, &buf); err != nil {
		return nil, err
	}
	if err := loadGlyphs(f, src, &buf); err != nil {
		return nil, err
	}
	if len(cfg.kerningRunes) > 0 {
		if err := loadKerning(f, data, cfg.kerningRunes); err != nil {
			return nil, err
		}
	}

	f.MarkReadOnly()
	return f, nil
}

func loadInfo(f *fontparts.Font, src *sfnt.Font, buf *sfnt.Buffer) error {
	info := f.Info()

	if name, err := src.Name(buf, sfnt.NameIDFamily); err == nil && name != "" {
		if err := info.SetFamilyName(name); err != nil {
			return err
		}
	}
	if name, err := src.Name(buf, sfnt.NameIDSubfamily); err == nil && name != "" {
		if err := info.SetStyleName(name); err != nil {
			return err
		}
	}

	upem := float64(src.UnitsPerEm())
	if err := info.SetUnitsPerEm(upem); err != nil {
		return err
	}

	// Requesting metrics at ppem == upem yields values in font units.
	ppem := fixed.I(int(src.UnitsPerEm()))
	metrics, err := src.Metrics(buf, ppem, font.HintingNone)
	if err != nil {
		return fmt.Errorf("font metrics: %w", err)
	}
	if err := info.SetAscender(fromFixed(metrics.Ascent)); err != nil {
		return err
	}
	if err := info.SetDescender(-fromFixed(metrics.Descent)); err != nil {
		return err
	}
	if metrics.XHeight > 0 {
		if err := info.SetXHeight(fromFixed(metrics.XHeight)); err != nil {
			return err
		}
	}
	if metrics.CapHeight > 0 {
		if err := info.SetCapHeight(fromFixed(metrics.CapHeight)); err != nil {
			return err
		}
	}
	return nil
}

func loadGlyphs(f *fontparts.Font, src *sfnt.Font, buf *sfnt.Buffer) error {
	layer := f.DefaultLayer()
	ppem := fixed.I(int(src.UnitsPerEm()))
	var order []string

	for r := rune(0); r <= 0xFFFF; r++ {
		index, err := src.GlyphIndex(buf, r)
		if err != nil || index == 0 {
			continue
		}
		name := glyphName(r)
		glyph, err := layer.NewGlyph(name)
		if err != nil {
			return err
		}
		if err := glyph.SetUnicode(r); err != nil {
			return err
		}

		advance, err := src.GlyphAdvance(buf, index, ppem, font.HintingNone)
		if err == nil {
			if err := glyph.SetWidth(fromFixed(advance)); err != nil {
				return err
			}
		}

		segments, err := src.LoadGlyph(buf, index, ppem, nil)
		if err != nil {
			continue
		}
		drawSegments(glyph.GetPen(), segments)
		order = append(order, name)
	}
	return f.SetGlyphOrder(order)
}

// drawSegments replays sfnt segments through a pen. LoadGlyph returns
// coordinates with y increasing downward, so y is negated.
func drawSegments(pen fontparts.Pen, segments sfnt.Segments) {
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				pen.ClosePath()
			}
			pen.MoveTo(segmentPoint(seg.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			pen.LineTo(segmentPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			pen.QCurveTo(segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			pen.CurveTo(segmentPoint(seg.Args[0]), segmentPoint(seg.Args[1]), segmentPoint(seg.Args[2]))
		}
	}
	if started {
		pen.ClosePath()
	}
}

func segmentPoint(p fixed.Point26_6) fontparts.Position {
	return fontparts.Position{X: fromFixed(p.X), Y: -fromFixed(p.Y)}
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// glyphName derives a working name for a mapped rune. ASCII letters
// and digits name themselves; everything else gets the uniXXXX form.
func glyphName(r rune) string {
	if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return string(r)
	}
	if r > 0xFFFF {
		return fmt.Sprintf("u%X", r)
	}
	return fmt.Sprintf("uni%04X", r)
}
