package fontparts

import (
	"fmt"
	"strings"

	"github.com/robotools/fontparts/normalizers"
)

// DefaultLayerName is the name given to the default layer of a newly
// created font.
const DefaultLayerName = "public.default"

// Font is the top-level object: layers of glyphs plus the font-wide
// info, kerning, groups, features, guidelines and lib.
type Font struct {
	info     *Info
	groups   *Groups
	kerning  *Kerning
	features *Features
	lib      *Lib

	layers       []*Layer
	defaultLayer *Layer
	glyphOrder   []string
	guidelines   []*Guideline

	path        string
	environment string
	readOnly    bool
	saver       func(*Font, string) error
}

// NewEmptyFont returns a font with a default layer and empty
// sub-objects. Environment implementations use it as a starting point;
// application code normally goes through NewFont or OpenFont.
func NewEmptyFont() *Font {
	f := &Font{}
	f.info = newInfo()
	f.info.font = f
	f.groups = newGroups()
	f.groups.font = f
	f.kerning = newKerning()
	f.kerning.font = f
	f.features = &Features{font: f}
	f.lib = newLib()
	f.lib.font = f
	layer := newLayer(DefaultLayerName)
	layer.font = f
	f.layers = []*Layer{layer}
	f.defaultLayer = layer
	return f
}

// Info returns the font's info.
func (f *Font) Info() *Info { return f.info }

// Groups returns the font's groups.
func (f *Font) Groups() *Groups { return f.groups }

// Kerning returns the font's kerning.
func (f *Font) Kerning() *Kerning { return f.kerning }

// Features returns the font's features.
func (f *Font) Features() *Features { return f.features }

// Lib returns the font's lib.
func (f *Font) Lib() *Lib { return f.lib }

// Environment returns the name of the environment that created the
// font, or "" for detached fonts.
func (f *Font) Environment() string { return f.environment }

// ReadOnly reports whether the font rejects Save.
func (f *Font) ReadOnly() bool { return f.readOnly }

// MarkReadOnly makes the font reject Save. There is no way back;
// environments serving immutable sources call this once at load time.
func (f *Font) MarkReadOnly() { f.readOnly = true }

// Path returns the file path the font was opened from or last saved
// to, or "".
func (f *Font) Path() string { return f.path }

// SetPath sets the font's file path. An empty string clears it.
func (f *Font) SetPath(value string) error {
	if value == "" {
		f.path = ""
		return nil
	}
	v, err := normalizers.FilePath(value)
	if err != nil {
		return validationError("font", "path", err)
	}
	f.path = v
	return nil
}

// Save writes the font through its environment. With an empty path the
// font's current path is used.
func (f *Font) Save(path string) error {
	if f.readOnly {
		return fmt.Errorf("font from environment %q: %w", f.environment, ErrReadOnly)
	}
	if path == "" {
		path = f.path
	} else {
		v, err := normalizers.FilePath(path)
		if err != nil {
			return validationError("font", "path", err)
		}
		path = v
	}
	if f.saver == nil {
		f.path = path
		return nil
	}
	if err := f.saver(f, path); err != nil {
		return err
	}
	f.path = path
	return nil
}

// SetSaver installs the function Save delegates to. Environments call
// this at construction time.
func (f *Font) SetSaver(saver func(*Font, string) error) { f.saver = saver }

// Close releases the font. Unsaved changes are discarded.
func (f *Font) Close() error {
	Logger().Debug("font closed", "path", f.path)
	return nil
}

// Layers returns the font's layers in order.
func (f *Font) Layers() []*Layer { return f.layers }

// LayerOrder returns the layer names in order.
func (f *Font) LayerOrder() []string {
	names := make([]string, 0, len(f.layers))
	for _, layer := range f.layers {
		names = append(names, layer.name)
	}
	return names
}

// SetLayerOrder reorders the layers. The names must be a permutation
// of the existing layer names.
func (f *Font) SetLayerOrder(names []string) error {
	v, err := normalizers.LayerOrder(names, f.LayerOrder())
	if err != nil {
		return validationError("font", "layerOrder", err)
	}
	byName := make(map[string]*Layer, len(f.layers))
	for _, layer := range f.layers {
		byName[layer.name] = layer
	}
	ordered := make([]*Layer, 0, len(v))
	for _, name := range v {
		ordered = append(ordered, byName[name])
	}
	f.layers = ordered
	return nil
}

// Layer returns the named layer.
func (f *Font) Layer(name string) (*Layer, error) {
	for _, layer := range f.layers {
		if layer.name == name {
			return layer, nil
		}
	}
	return nil, fmt.Errorf("layer %q: %w", name, ErrNotFound)
}

// NewLayer creates an empty layer with the given name and returns it.
// An existing layer with that name is replaced.
func (f *Font) NewLayer(name string) (*Layer, error) {
	v, err := normalizers.LayerName(name)
	if err != nil {
		return nil, validationError("layer", "name", err)
	}
	layer := newLayer(v)
	layer.font = f
	for i, other := range f.layers {
		if other.name == v {
			other.font = nil
			f.layers[i] = layer
			if f.defaultLayer == other {
				f.defaultLayer = layer
			}
			return layer, nil
		}
	}
	f.layers = append(f.layers, layer)
	return layer, nil
}

// InsertLayer adds a copy of a layer to the font. With a non-empty
// name the copy is renamed; an existing layer is replaced.
func (f *Font) InsertLayer(layer *Layer, name string) (*Layer, error) {
	if name == "" {
		name = layer.Name()
	}
	v, err := normalizers.LayerName(name)
	if err != nil {
		return nil, validationError("layer", "name", err)
	}
	cp := layer.Copy()
	cp.name = v
	cp.font = f
	for i, other := range f.layers {
		if other.name == v {
			other.font = nil
			f.layers[i] = cp
			if f.defaultLayer == other {
				f.defaultLayer = cp
			}
			return cp, nil
		}
	}
	f.layers = append(f.layers, cp)
	return cp, nil
}

// DuplicateLayer copies the named layer under a new name.
func (f *Font) DuplicateLayer(name, newName string) (*Layer, error) {
	layer, err := f.Layer(name)
	if err != nil {
		return nil, err
	}
	return f.InsertLayer(layer, newName)
}

// SwapLayerNames exchanges the names of two layers.
func (f *Font) SwapLayerNames(a, b string) error {
	layerA, err := f.Layer(a)
	if err != nil {
		return err
	}
	layerB, err := f.Layer(b)
	if err != nil {
		return err
	}
	if layerA == layerB {
		return nil
	}
	layerA.name, layerB.name = layerB.name, layerA.name
	return nil
}

// RemoveLayer removes the named layer. The default layer cannot be
// removed.
func (f *Font) RemoveLayer(name string) error {
	for i, layer := range f.layers {
		if layer.name != name {
			continue
		}
		if layer == f.defaultLayer {
			return fmt.Errorf("cannot remove the default layer: %w", ErrUnsupported)
		}
		layer.font = nil
		f.layers = append(f.layers[:i], f.layers[i+1:]...)
		return nil
	}
	return fmt.Errorf("layer %q: %w", name, ErrNotFound)
}

// DefaultLayer returns the font's default layer.
func (f *Font) DefaultLayer() *Layer { return f.defaultLayer }

// SetDefaultLayer makes the named layer the default.
func (f *Font) SetDefaultLayer(name string) error {
	if _, err := normalizers.DefaultLayerName(name, f.LayerOrder()); err != nil {
		return validationError("font", "defaultLayer", err)
	}
	layer, err := f.Layer(name)
	if err != nil {
		return err
	}
	f.defaultLayer = layer
	return nil
}

// Glyph operations on the font act on the default layer.

// Len returns the number of glyphs in the default layer.
func (f *Font) Len() int { return f.defaultLayer.Len() }

// Keys returns the default layer's glyph names, sorted.
func (f *Font) Keys() []string { return f.defaultLayer.Keys() }

// Contains reports whether the default layer has the named glyph.
func (f *Font) Contains(name string) bool { return f.defaultLayer.Contains(name) }

// Glyph returns the named glyph from the default layer.
func (f *Font) Glyph(name string) (*Glyph, error) { return f.defaultLayer.Glyph(name) }

// NewGlyph creates an empty glyph in the default layer.
func (f *Font) NewGlyph(name string) (*Glyph, error) { return f.defaultLayer.NewGlyph(name) }

// InsertGlyph adds a copy of a glyph to the default layer.
func (f *Font) InsertGlyph(glyph *Glyph, name string) (*Glyph, error) {
	return f.defaultLayer.InsertGlyph(glyph, name)
}

// RemoveGlyph removes the named glyph from the default layer and from
// the glyph order.
func (f *Font) RemoveGlyph(name string) error {
	if err := f.defaultLayer.RemoveGlyph(name); err != nil {
		return err
	}
	for i, other := range f.glyphOrder {
		if other == name {
			f.glyphOrder = append(f.glyphOrder[:i], f.glyphOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GlyphOrder returns the font's glyph order.
func (f *Font) GlyphOrder() []string { return f.glyphOrder }

// SetGlyphOrder sets the font's glyph order. Names must be unique.
func (f *Font) SetGlyphOrder(names []string) error {
	v, err := normalizers.GlyphOrder(names)
	if err != nil {
		return validationError("font", "glyphOrder", err)
	}
	f.glyphOrder = v
	return nil
}

// Guidelines returns the font-level guidelines in order.
func (f *Font) Guidelines() []*Guideline { return f.guidelines }

// AppendGuideline adds a font-level guideline and returns it.
func (f *Font) AppendGuideline(pos Position, angle float64, name string, color *Color) (*Guideline, error) {
	gl := &Guideline{font: f, color: color}
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
	f.guidelines = append(f.guidelines, gl)
	return gl, nil
}

// RemoveGuideline removes the font-level guideline at index.
func (f *Font) RemoveGuideline(index int) error {
	if index < 0 || index >= len(f.guidelines) {
		return fmt.Errorf("guideline index %d: %w", index, ErrNotFound)
	}
	f.guidelines[index].font = nil
	f.guidelines = append(f.guidelines[:index], f.guidelines[index+1:]...)
	return nil
}

// ClearGuidelines removes all font-level guidelines.
func (f *Font) ClearGuidelines() {
	for _, gl := range f.guidelines {
		gl.font = nil
	}
	f.guidelines = nil
}

// CharacterMapping returns a map from unicode values to the names of
// the default-layer glyphs carrying them, each list sorted.
func (f *Font) CharacterMapping() map[rune][]string {
	return f.defaultLayer.CharacterMapping()
}

// ReverseComponentMapping returns a map from glyph names to the sorted
// names of the default-layer glyphs that reference them as components.
func (f *Font) ReverseComponentMapping() map[string][]string {
	return f.defaultLayer.ReverseComponentMapping()
}

// GetFlatKerning expands group kerning into per-glyph pairs. More
// specific pairs override group pairs: glyph/glyph beats glyph/group
// and group/glyph, which beat group/group.
func (f *Font) GetFlatKerning() map[Pair]float64 {
	expand := func(name, prefix string) []string {
		if strings.HasPrefix(name, prefix) {
			if members, ok := f.groups.Get(name); ok {
				return members
			}
			return nil
		}
		return []string{name}
	}

	flat := make(map[Pair]float64)
	// Passes in increasing specificity so later passes override:
	// group/group, group/glyph, glyph/group, glyph/glyph. This mirrors
	// the lookup order used by Find.
	for pass := 0; pass < 4; pass++ {
		for pair, value := range f.kerning.data {
			firstIsGroup := strings.HasPrefix(pair.First, KerningGroupPrefix1)
			secondIsGroup := strings.HasPrefix(pair.Second, KerningGroupPrefix2)
			specificity := 0
			if !secondIsGroup {
				specificity++
			}
			if !firstIsGroup {
				specificity += 2
			}
			if specificity != pass {
				continue
			}
			for _, first := range expand(pair.First, KerningGroupPrefix1) {
				for _, second := range expand(pair.Second, KerningGroupPrefix2) {
					flat[Pair{First: first, Second: second}] = value
				}
			}
		}
	}
	return flat
}

// Round rounds the font's info, kerning, guidelines and every glyph in
// every layer.
func (f *Font) Round() {
	f.info.Round()
	f.kerning.Round(1)
	for _, gl := range f.guidelines {
		gl.Round()
	}
	for _, layer := range f.layers {
		layer.Round()
	}
}

// AutoUnicodes sets the unicode values of every default-layer glyph
// from its name.
func (f *Font) AutoUnicodes() error {
	return f.defaultLayer.AutoUnicodes()
}

// Copy returns a detached deep copy of the font. The copy belongs to
// no environment and is writable.
func (f *Font) Copy() *Font {
	out := NewEmptyFont()
	out.info.Update(f.info)
	for name, members := range f.groups.data {
		out.groups.data[name] = append([]string(nil), members...)
	}
	out.kerning.Update(f.kerning)
	out.features.text = f.features.text
	out.lib.Update(f.lib)
	out.glyphOrder = append([]string(nil), f.glyphOrder...)
	for _, gl := range f.guidelines {
		cp := gl.copyGuideline()
		cp.font = out
		out.guidelines = append(out.guidelines, cp)
	}
	out.layers = nil
	for _, layer := range f.layers {
		cp := layer.Copy()
		cp.font = out
		out.layers = append(out.layers, cp)
		if layer == f.defaultLayer {
			out.defaultLayer = cp
		}
	}
	if out.defaultLayer == nil && len(out.layers) > 0 {
		out.defaultLayer = out.layers[0]
	}
	return out
}

func (f *Font) String() string {
	name := f.info.FamilyName()
	if style := f.info.StyleName(); style != "" {
		name += " " + style
	}
	return fmt.Sprintf("<Font %q>", name)
}
