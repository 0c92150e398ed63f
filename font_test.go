package fontparts

import (
	"errors"
	"reflect"
	"testing"
)

func TestFontLayers(t *testing.T) {
	f := newTestFont(t)
	if got := f.LayerOrder(); !reflect.DeepEqual(got, []string{DefaultLayerName}) {
		t.Fatalf("initial layer order = %v", got)
	}

	background, err := f.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	if background.Font() != f {
		t.Error("layer parent not set")
	}
	if got := f.LayerOrder(); !reflect.DeepEqual(got, []string{DefaultLayerName, "background"}) {
		t.Fatalf("layer order = %v", got)
	}

	if err := f.SetLayerOrder([]string{"background", DefaultLayerName}); err != nil {
		t.Fatal(err)
	}
	if got := f.LayerOrder(); got[0] != "background" {
		t.Errorf("layer order after reorder = %v", got)
	}
	if err := f.SetLayerOrder([]string{"background"}); err == nil {
		t.Error("partial layer order accepted")
	}

	if err := f.RemoveLayer(DefaultLayerName); !errors.Is(err, ErrUnsupported) {
		t.Errorf("removing the default layer = %v, want ErrUnsupported", err)
	}
	if err := f.RemoveLayer("background"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Layer("background"); !errors.Is(err, ErrNotFound) {
		t.Errorf("removed layer lookup = %v, want ErrNotFound", err)
	}
}

func TestFontSetDefaultLayer(t *testing.T) {
	f := newTestFont(t)
	if _, err := f.NewLayer("background"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetDefaultLayer("background"); err != nil {
		t.Fatal(err)
	}
	if f.DefaultLayer().Name() != "background" {
		t.Error("default layer not switched")
	}
	if err := f.SetDefaultLayer("missing"); err == nil {
		t.Error("unknown default layer accepted")
	}
}

func TestFontGlyphSugar(t *testing.T) {
	f := newTestFont(t)
	newBoxGlyph(t, f, "box", 100)
	if f.Len() != 1 || !f.Contains("box") {
		t.Fatal("glyph not visible through the font")
	}
	g, err := f.Glyph("box")
	if err != nil {
		t.Fatal(err)
	}
	if g.Font() != f {
		t.Error("glyph Font() broken")
	}

	if err := f.SetGlyphOrder([]string{"box"}); err != nil {
		t.Fatal(err)
	}
	if err := f.RemoveGlyph("box"); err != nil {
		t.Fatal(err)
	}
	if len(f.GlyphOrder()) != 0 {
		t.Error("glyph order keeps removed glyph")
	}
	if err := f.SetGlyphOrder([]string{"a", "a"}); err == nil {
		t.Error("duplicate glyph order accepted")
	}
}

func TestFontCharacterMapping(t *testing.T) {
	f := newTestFont(t)
	a := newBoxGlyph(t, f, "A", 100)
	if err := a.SetUnicode('A'); err != nil {
		t.Fatal(err)
	}
	alt := newBoxGlyph(t, f, "A.alt", 100)
	if err := alt.SetUnicodes([]rune{'A', 0x0391}); err != nil {
		t.Fatal(err)
	}

	mapping := f.CharacterMapping()
	if got := mapping['A']; !reflect.DeepEqual(got, []string{"A", "A.alt"}) {
		t.Errorf("mapping['A'] = %v", got)
	}
	if got := mapping[0x0391]; !reflect.DeepEqual(got, []string{"A.alt"}) {
		t.Errorf("mapping[0x0391] = %v", got)
	}
}

func TestFontReverseComponentMapping(t *testing.T) {
	f := newTestFont(t)
	newBoxGlyph(t, f, "box", 100)
	for _, name := range []string{"boxed.one", "boxed.two"} {
		g, err := f.NewGlyph(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := g.AppendComponent("box", Identity); err != nil {
			t.Fatal(err)
		}
	}
	mapping := f.ReverseComponentMapping()
	if got := mapping["box"]; !reflect.DeepEqual(got, []string{"boxed.one", "boxed.two"}) {
		t.Errorf("mapping[box] = %v", got)
	}
}

func TestFontGuidelines(t *testing.T) {
	f := newTestFont(t)
	gl, err := f.AppendGuideline(Position{X: 0, Y: 500}, 0, "x-height", nil)
	if err != nil {
		t.Fatal(err)
	}
	if gl.Font() != f {
		t.Error("guideline parent not set")
	}
	if gl.Index() != 0 {
		t.Errorf("guideline index = %d", gl.Index())
	}
	if err := f.RemoveGuideline(0); err != nil {
		t.Fatal(err)
	}
	if len(f.Guidelines()) != 0 {
		t.Error("guideline remains after removal")
	}
}

func TestFontSaveReadOnly(t *testing.T) {
	f := newTestFont(t)
	if err := f.Save("/tmp/test.out"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if f.Path() != "/tmp/test.out" {
		t.Errorf("path = %q", f.Path())
	}
	f.MarkReadOnly()
	if err := f.Save(""); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Save on read-only font = %v, want ErrReadOnly", err)
	}
}

func TestFontCopy(t *testing.T) {
	f := newTestFont(t)
	newBoxGlyph(t, f, "box", 100)
	if err := f.Kerning().Set(Pair{First: "box", Second: "box"}, -10); err != nil {
		t.Fatal(err)
	}
	f.MarkReadOnly()

	cp := f.Copy()
	if cp.ReadOnly() {
		t.Error("copy inherited read-only state")
	}
	if cp.Len() != 1 {
		t.Errorf("copy has %d glyphs", cp.Len())
	}
	g, err := cp.Glyph("box")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Move(10, 0); err != nil {
		t.Fatal(err)
	}
	orig, _ := mustGlyph(t, f, "box").Bounds()
	if orig.XMin != 0 {
		t.Error("mutating the copy mutated the original")
	}
	if v, _ := cp.Kerning().Get(Pair{First: "box", Second: "box"}); v != -10 {
		t.Errorf("copied kerning = %g", v)
	}
}

func mustGlyph(t *testing.T, f *Font, name string) *Glyph {
	t.Helper()
	g, err := f.Glyph(name)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFontInterpolate(t *testing.T) {
	light := newTestFont(t)
	bold := newTestFont(t)
	newBoxGlyph(t, light, "box", 100)
	newBoxGlyph(t, bold, "box", 200)
	if err := light.Info().SetUnitsPerEm(1000); err != nil {
		t.Fatal(err)
	}
	if err := bold.Info().SetUnitsPerEm(1000); err != nil {
		t.Fatal(err)
	}
	if err := light.Kerning().Set(Pair{First: "box", Second: "box"}, 0); err != nil {
		t.Fatal(err)
	}
	if err := bold.Kerning().Set(Pair{First: "box", Second: "box"}, -40); err != nil {
		t.Fatal(err)
	}

	medium := newTestFont(t)
	if err := medium.Interpolate(0.25, light, bold, true); err != nil {
		t.Fatal(err)
	}
	g := mustGlyph(t, medium, "box")
	bounds, _ := g.Bounds()
	if bounds.XMax != 125 {
		t.Errorf("interpolated XMax = %g, want 125", bounds.XMax)
	}
	if v, _ := medium.Kerning().Get(Pair{First: "box", Second: "box"}); v != -10 {
		t.Errorf("interpolated kerning = %g, want -10", v)
	}
}

func TestLayerInsertGlyph(t *testing.T) {
	f := newTestFont(t)
	g := newBoxGlyph(t, f, "box", 100)
	layer, err := f.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	cp, err := layer.InsertGlyph(g, "box.bg")
	if err != nil {
		t.Fatal(err)
	}
	if cp.Name() != "box.bg" || cp.Layer() != layer {
		t.Errorf("inserted glyph %q in layer %v", cp.Name(), cp.Layer())
	}
	if cp == g {
		t.Error("InsertGlyph did not copy")
	}
}

func TestFontInsertLayer(t *testing.T) {
	f := newTestFont(t)
	other := newTestFont(t)
	src, err := other.NewLayer("background")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.NewGlyph("A"); err != nil {
		t.Fatal(err)
	}

	inserted, err := f.InsertLayer(src, "")
	if err != nil {
		t.Fatalf("InsertLayer: %v", err)
	}
	if inserted == src {
		t.Error("InsertLayer stored the original instead of a copy")
	}
	if inserted.Font() != f {
		t.Error("inserted layer does not report the font")
	}
	if !inserted.Contains("A") {
		t.Error("inserted layer lost its glyphs")
	}

	renamed, err := f.InsertLayer(src, "sketch")
	if err != nil {
		t.Fatal(err)
	}
	if got := renamed.Name(); got != "sketch" {
		t.Errorf("layer name = %q, want sketch", got)
	}
}

func TestFontDuplicateLayer(t *testing.T) {
	f := newTestFont(t)
	if _, err := f.NewGlyph("A"); err != nil {
		t.Fatal(err)
	}
	dup, err := f.DuplicateLayer(DefaultLayerName, "backup")
	if err != nil {
		t.Fatalf("DuplicateLayer: %v", err)
	}
	if !dup.Contains("A") {
		t.Error("duplicate layer lost its glyphs")
	}
	if _, err := f.DuplicateLayer("nonesuch", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DuplicateLayer missing = %v, want ErrNotFound", err)
	}
}

func TestFontSwapLayerNames(t *testing.T) {
	f := newTestFont(t)
	if _, err := f.NewLayer("background"); err != nil {
		t.Fatal(err)
	}
	if err := f.SwapLayerNames(DefaultLayerName, "background"); err != nil {
		t.Fatalf("SwapLayerNames: %v", err)
	}
	if got := f.DefaultLayer().Name(); got != "background" {
		t.Errorf("default layer name = %q, want background", got)
	}
	if err := f.SwapLayerNames("nonesuch", "background"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SwapLayerNames missing = %v, want ErrNotFound", err)
	}
}
