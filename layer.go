package fontparts

import (
	"fmt"
	"sort"

	"github.com/robotools/fontparts/normalizers"
)

// Layer is a named collection of glyphs. Every font has at least one
// layer, the default layer; glyph operations on the font act on it.
type Layer struct {
	font *Font

	name    string
	color   *Color
	glyphs  map[string]*Glyph
	lib     *Lib
	tempLib *Lib
}

func newLayer(name string) *Layer {
	l := &Layer{name: name, glyphs: make(map[string]*Glyph)}
	l.lib = newLib()
	l.tempLib = newLib()
	return l
}

// Font returns the layer's parent font, or nil.
func (l *Layer) Font() *Font { return l.font }

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// SetName renames the layer. Within a font the new name must be
// unused.
func (l *Layer) SetName(value string) error {
	v, err := normalizers.LayerName(value)
	if err != nil {
		return validationError("layer", "name", err)
	}
	if v == l.name {
		return nil
	}
	if l.font != nil {
		for _, other := range l.font.layers {
			if other.name == v {
				return fmt.Errorf("layer %q: %w", v, ErrDuplicate)
			}
		}
	}
	l.name = v
	return nil
}

// Color returns the layer's color, or nil.
func (l *Layer) Color() *Color { return l.color }

// SetColor sets the layer's color. Pass nil to clear it.
func (l *Layer) SetColor(color *Color) { l.color = color }

// Lib returns the layer's lib.
func (l *Layer) Lib() *Lib { return l.lib }

// TempLib returns the layer's temporary lib, a scratch store that is
// never saved and is not carried by Copy.
func (l *Layer) TempLib() *Lib { return l.tempLib }

// Len returns the number of glyphs in the layer.
func (l *Layer) Len() int { return len(l.glyphs) }

// Keys returns the layer's glyph names, sorted.
func (l *Layer) Keys() []string {
	names := make([]string, 0, len(l.glyphs))
	for name := range l.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether the layer has a glyph with the given name.
func (l *Layer) Contains(name string) bool {
	_, ok := l.glyphs[name]
	return ok
}

// Glyph returns the named glyph.
func (l *Layer) Glyph(name string) (*Glyph, error) {
	g, ok := l.glyphs[name]
	if !ok {
		return nil, fmt.Errorf("glyph %q: %w", name, ErrNotFound)
	}
	return g, nil
}

// glyphNamed returns the named glyph without error reporting, for
// internal lookups such as component resolution.
func (l *Layer) glyphNamed(name string) *Glyph {
	return l.glyphs[name]
}

// NewGlyph creates an empty glyph with the given name and returns it.
// An existing glyph with that name is replaced.
func (l *Layer) NewGlyph(name string) (*Glyph, error) {
	v, err := normalizers.GlyphName(name)
	if err != nil {
		return nil, validationError("glyph", "name", err)
	}
	if old, ok := l.glyphs[v]; ok {
		old.layer = nil
	}
	g := newGlyph(v)
	g.layer = l
	l.glyphs[v] = g
	return g, nil
}

// InsertGlyph adds a copy of a glyph to the layer. With a non-empty
// name the copy is renamed; an existing glyph is replaced.
func (l *Layer) InsertGlyph(glyph *Glyph, name string) (*Glyph, error) {
	if name == "" {
		name = glyph.Name()
	}
	v, err := normalizers.GlyphName(name)
	if err != nil {
		return nil, validationError("glyph", "name", err)
	}
	cp := glyph.Copy()
	cp.name = v
	if old, ok := l.glyphs[v]; ok {
		old.layer = nil
	}
	cp.layer = l
	l.glyphs[v] = cp
	return cp, nil
}

// RemoveGlyph removes the named glyph from the layer.
func (l *Layer) RemoveGlyph(name string) error {
	g, ok := l.glyphs[name]
	if !ok {
		return fmt.Errorf("glyph %q: %w", name, ErrNotFound)
	}
	g.layer = nil
	delete(l.glyphs, name)
	return nil
}

// Selected returns the layer's selected glyphs, sorted by name.
func (l *Layer) Selected() []*Glyph {
	var out []*Glyph
	for _, name := range l.Keys() {
		if g := l.glyphs[name]; g.Selected() {
			out = append(out, g)
		}
	}
	return out
}

// CharacterMapping returns a map from unicode values to the names of
// the glyphs carrying them, each list sorted.
func (l *Layer) CharacterMapping() map[rune][]string {
	mapping := make(map[rune][]string)
	for _, name := range l.Keys() {
		g := l.glyphs[name]
		for _, r := range g.unicodes {
			mapping[r] = append(mapping[r], name)
		}
	}
	return mapping
}

// ReverseComponentMapping returns a map from glyph names to the sorted
// names of the glyphs that reference them as components.
func (l *Layer) ReverseComponentMapping() map[string][]string {
	mapping := make(map[string]map[string]bool)
	for _, name := range l.Keys() {
		g := l.glyphs[name]
		for _, c := range g.components {
			if mapping[c.baseGlyph] == nil {
				mapping[c.baseGlyph] = make(map[string]bool)
			}
			mapping[c.baseGlyph][name] = true
		}
	}
	out := make(map[string][]string, len(mapping))
	for base, refs := range mapping {
		names := make([]string, 0, len(refs))
		for name := range refs {
			names = append(names, name)
		}
		sort.Strings(names)
		out[base] = names
	}
	return out
}

// Round rounds every glyph in the layer.
func (l *Layer) Round() {
	for _, g := range l.glyphs {
		g.Round()
	}
}

// AutoUnicodes sets the unicode values of every glyph in the layer
// from its name.
func (l *Layer) AutoUnicodes() error {
	for _, name := range l.Keys() {
		if err := l.glyphs[name].AutoUnicodes(); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a detached deep copy of the layer.
func (l *Layer) Copy() *Layer {
	out := newLayer(l.name)
	if l.color != nil {
		c := *l.color
		out.color = &c
	}
	for name, g := range l.glyphs {
		cp := g.Copy()
		cp.layer = out
		out.glyphs[name] = cp
	}
	out.lib.Update(l.lib)
	return out
}

func (l *Layer) String() string {
	return fmt.Sprintf("<Layer %q %d glyphs>", l.name, len(l.glyphs))
}
