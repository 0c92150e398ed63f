package normalizers

import (
	"errors"
	"math"
	"testing"
)

func TestLayerOrder(t *testing.T) {
	existing := []string{"public.default", "background", "sketch"}
	tests := []struct {
		name    string
		value   []string
		wantErr bool
	}{
		{"valid order", []string{"sketch", "public.default", "background"}, false},
		{"partial order", []string{"public.default", "background"}, true},
		{"empty order", nil, true},
		{"unknown layer", []string{"public.default", "background", "master"}, true},
		{"duplicate layer", []string{"background", "background", "background"}, true},
		{"empty name", []string{"public.default", "background", ""}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LayerOrder(tt.value, existing)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LayerOrder(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && len(got) != len(tt.value) {
				t.Errorf("LayerOrder(%v) = %v", tt.value, got)
			}
		})
	}
}

func TestDefaultLayerName(t *testing.T) {
	order := []string{"public.default", "background"}
	if _, err := DefaultLayerName("background", order); err != nil {
		t.Errorf("DefaultLayerName(background) error = %v", err)
	}
	if _, err := DefaultLayerName("missing", order); err == nil {
		t.Error("DefaultLayerName(missing) expected error")
	}
}

func TestGlyphOrder(t *testing.T) {
	if _, err := GlyphOrder([]string{"A", "B", "A"}); err == nil {
		t.Error("GlyphOrder with duplicates expected error")
	}
	got, err := GlyphOrder([]string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("GlyphOrder error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("GlyphOrder = %v", got)
	}
}

func TestKerningKey(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
		wantErr       bool
	}{
		{"glyph pair", "A", "V", false},
		{"group pair", "public.kern1.A", "public.kern2.V", false},
		{"empty first", "", "V", true},
		{"empty second", "A", "", true},
		{"bad left group", "public.kern2.A", "V", true},
		{"bad right group", "A", "public.kern1.V", true},
		{"non kerning public prefix left", "public.groups.A", "V", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := KerningKey(tt.first, tt.second)
			if (err != nil) != tt.wantErr {
				t.Errorf("KerningKey(%q, %q) error = %v, wantErr %v", tt.first, tt.second, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("KerningKey error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestLibValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"string", "hello", false},
		{"number", 1.5, false},
		{"nil", nil, true},
		{"slice with nil", []any{"ok", nil}, true},
		{"nested map", map[string]any{"key": []any{1, 2}}, false},
		{"map with empty key", map[string]any{"": 1}, true},
		{"map with nil value", map[string]any{"key": nil}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LibValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("LibValue(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestGlyphUnicode(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"latin a", 0x0061, false},
		{"zero", 0, false},
		{"max", 0x10FFFF, false},
		{"negative", -1, true},
		{"out of range", 0x110000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GlyphUnicode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("GlyphUnicode(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestGlyphUnicodeHex(t *testing.T) {
	r, err := GlyphUnicodeHex("0041")
	if err != nil {
		t.Fatalf("GlyphUnicodeHex(0041) error = %v", err)
	}
	if r != 'A' {
		t.Errorf("GlyphUnicodeHex(0041) = %U, want U+0041", r)
	}
	if _, err := GlyphUnicodeHex("xyz"); err == nil {
		t.Error("GlyphUnicodeHex(xyz) expected error")
	}
}

func TestGlyphUnicodes(t *testing.T) {
	if _, err := GlyphUnicodes([]rune{'a', 'b', 'a'}); err == nil {
		t.Error("GlyphUnicodes with duplicates expected error")
	}
	got, err := GlyphUnicodes([]rune{'a', 'b'})
	if err != nil {
		t.Fatalf("GlyphUnicodes error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("GlyphUnicodes = %v", got)
	}
}

func TestPointType(t *testing.T) {
	for _, valid := range []string{"move", "line", "offcurve", "curve", "qcurve"} {
		if _, err := PointType(valid); err != nil {
			t.Errorf("PointType(%q) error = %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "corner", "Move", "quad"} {
		if _, err := PointType(invalid); err == nil {
			t.Errorf("PointType(%q) expected error", invalid)
		}
	}
}

func TestSegmentType(t *testing.T) {
	if _, err := SegmentType("offcurve"); err == nil {
		t.Error("SegmentType(offcurve) expected error")
	}
	if _, err := SegmentType("qcurve"); err != nil {
		t.Errorf("SegmentType(qcurve) error = %v", err)
	}
}

func TestBPointType(t *testing.T) {
	for _, valid := range []string{"corner", "curve"} {
		if _, err := BPointType(valid); err != nil {
			t.Errorf("BPointType(%q) error = %v", valid, err)
		}
	}
	if _, err := BPointType("smooth"); err == nil {
		t.Error("BPointType(smooth) expected error")
	}
}

func TestIdentifier(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "contour-1", false},
		{"full ascii range", " !~", false},
		{"empty", "", true},
		{"too long", string(long), true},
		{"non ascii", "contour-é", true},
		{"control character", "contour\t1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Identifier(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Identifier(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCoordinates(t *testing.T) {
	if _, err := X(math.NaN()); err == nil {
		t.Error("X(NaN) expected error")
	}
	if _, err := Y(math.Inf(1)); err == nil {
		t.Error("Y(+Inf) expected error")
	}
	x, y, err := CoordinatePair(1.5, -2)
	if err != nil || x != 1.5 || y != -2 {
		t.Errorf("CoordinatePair(1.5, -2) = %v, %v, %v", x, y, err)
	}
}

func TestBoundingBox(t *testing.T) {
	if _, err := BoundingBox(10, 0, 0, 10); err == nil {
		t.Error("BoundingBox with xMin > xMax expected error")
	}
	if _, err := BoundingBox(0, 10, 10, 0); err == nil {
		t.Error("BoundingBox with yMin > yMax expected error")
	}
	box, err := BoundingBox(0, -250, 500, 750)
	if err != nil {
		t.Fatalf("BoundingBox error = %v", err)
	}
	if box != [4]float64{0, -250, 500, 750} {
		t.Errorf("BoundingBox = %v", box)
	}
}

func TestRotationAngle(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		want    float64
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"positive", 45, 45, false},
		{"negative folds", -90, 270, false},
		{"edge 360", 360, 360, false},
		{"edge -360 folds", -360, 0, false},
		{"too large", 361, 0, true},
		{"too small", -361, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RotationAngle(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RotationAngle(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("RotationAngle(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRotationAngleIdempotent(t *testing.T) {
	// Normalizing an already canonical angle must not change it.
	for _, v := range []float64{0, 45, 180, 270, 359.5} {
		once, err := RotationAngle(v)
		if err != nil {
			t.Fatalf("RotationAngle(%v) error = %v", v, err)
		}
		twice, err := RotationAngle(once)
		if err != nil {
			t.Fatalf("RotationAngle(%v) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("RotationAngle not idempotent: %v -> %v -> %v", v, once, twice)
		}
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		wantErr    bool
	}{
		{"black", 0, 0, 0, 1, false},
		{"white transparent", 1, 1, 1, 0, false},
		{"mid", 0.5, 0.25, 0.75, 1, false},
		{"negative component", -0.1, 0, 0, 1, true},
		{"component above one", 0, 1.1, 0, 1, true},
		{"nan component", math.NaN(), 0, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Color(tt.r, tt.g, tt.b, tt.a)
			if (err != nil) != tt.wantErr {
				t.Errorf("Color(%v, %v, %v, %v) error = %v, wantErr %v", tt.r, tt.g, tt.b, tt.a, err, tt.wantErr)
			}
		})
	}
}

func TestTransformationSkewAngle(t *testing.T) {
	x, y, err := TransformationSkewAngle(-45, 0)
	if err != nil {
		t.Fatalf("TransformationSkewAngle error = %v", err)
	}
	if x != 315 || y != 0 {
		t.Errorf("TransformationSkewAngle(-45, 0) = %v, %v", x, y)
	}
	if _, _, err := TransformationSkewAngle(400, 0); err == nil {
		t.Error("TransformationSkewAngle(400, 0) expected error")
	}
}

func TestVisualRounding(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{0.4, 0},
		{-0.6, -1},
		{2, 2},
	}
	for _, tt := range tests {
		if got := VisualRounding(tt.value); got != tt.want {
			t.Errorf("VisualRounding(%v) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestGlyphFormatVersion(t *testing.T) {
	for _, v := range []int{1, 2} {
		if _, err := GlyphFormatVersion(v); err != nil {
			t.Errorf("GlyphFormatVersion(%d) error = %v", v, err)
		}
	}
	if _, err := GlyphFormatVersion(3); err == nil {
		t.Error("GlyphFormatVersion(3) expected error")
	}
}

func TestFileStructure(t *testing.T) {
	for _, v := range []string{"zip", "package"} {
		if _, err := FileStructure(v); err != nil {
			t.Errorf("FileStructure(%q) error = %v", v, err)
		}
	}
	if _, err := FileStructure("folder"); err == nil {
		t.Error("FileStructure(folder) expected error")
	}
}
