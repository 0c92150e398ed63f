package opentype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/robotools/fontparts"
)

func TestParse(t *testing.T) {
	f, err := Parse(goregular.TTF)
	require.NoError(t, err)

	info := f.Info()
	assert.Equal(t, "Go", info.FamilyName())
	assert.Equal(t, float64(2048), info.UnitsPerEm())
	assert.Greater(t, info.Ascender(), 0.0)
	assert.Less(t, info.Descender(), 0.0)

	require.True(t, f.Contains("A"))
	glyph, err := f.Glyph("A")
	require.NoError(t, err)
	assert.Equal(t, 'A', glyph.Unicode())
	assert.Greater(t, glyph.Width(), 0.0)

	bounds, ok := glyph.Bounds()
	require.True(t, ok, "glyph A has no outline")
	assert.Greater(t, bounds.YMax, 0.0, "outline should extend above the baseline")
	assert.Less(t, bounds.YMin, bounds.YMax)

	mapping := f.CharacterMapping()
	assert.Contains(t, mapping['A'], "A")
	assert.NotEmpty(t, f.GlyphOrder())
}

func TestParseReadOnly(t *testing.T) {
	f, err := Parse(goregular.TTF)
	require.NoError(t, err)
	assert.True(t, f.ReadOnly())
	assert.ErrorIs(t, f.Save(""), fontparts.ErrReadOnly)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nonesuch.ttf"))
	assert.Error(t, err)
}

func TestEnvironmentRegistered(t *testing.T) {
	assert.Contains(t, fontparts.Environments(), EnvironmentName)

	_, err := fontparts.NewFont(fontparts.WithEnvironment(EnvironmentName))
	assert.True(t, errors.Is(err, fontparts.ErrUnsupported), "opentype NewFont should be unsupported")
}

func TestGlyphName(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{r: 'A', want: "A"},
		{r: 'z', want: "z"},
		{r: '0', want: "0"},
		{r: 0x00E9, want: "uni00E9"},
		{r: '.', want: "uni002E"},
		{r: 0x1F600, want: "u1F600"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glyphName(tt.r), "glyphName(%U)", tt.r)
	}
}

func TestFromFixed(t *testing.T) {
	assert.Equal(t, 1.0, fromFixed(fixed.I(1)))
	assert.Equal(t, 0.5, fromFixed(fixed.Int26_6(32)))
	assert.Equal(t, -1.25, fromFixed(fixed.Int26_6(-80)))
}

func TestExtractKerning(t *testing.T) {
	pairs, err := ExtractKerning(goregular.TTF, []rune{'A', 'V', 'o'})
	require.NoError(t, err)
	for pair, value := range pairs {
		assert.NotZero(t, value, "pair %v", pair)
	}
}

func TestParseWithKerningRunes(t *testing.T) {
	f, err := Parse(goregular.TTF, WithKerningRunes([]rune{'A', 'V'}))
	require.NoError(t, err)

	want, err := ExtractKerning(goregular.TTF, []rune{'A', 'V'})
	require.NoError(t, err)
	assert.Equal(t, len(want), f.Kerning().Len())
}
