package fontparts

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/robotools/fontparts/normalizers"
)

// pngSignature is the eight-byte header every PNG stream starts with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Image is a background bitmap placed in a glyph. Only PNG data is
// accepted.
type Image struct {
	glyph *Glyph

	data           []byte
	transformation Transformation
	color          *Color
}

// Glyph returns the image's parent glyph, or nil.
func (img *Image) Glyph() *Glyph { return img.glyph }

// Layer returns the layer the image belongs to, or nil.
func (img *Image) Layer() *Layer {
	if img.glyph == nil {
		return nil
	}
	return img.glyph.Layer()
}

// Font returns the font the image belongs to, or nil.
func (img *Image) Font() *Font {
	if l := img.Layer(); l != nil {
		return l.Font()
	}
	return nil
}

// Data returns the raw PNG data.
func (img *Image) Data() []byte { return img.data }

// SetData sets the image data. The data must carry a PNG signature.
func (img *Image) SetData(data []byte) error {
	if !bytes.HasPrefix(data, pngSignature) {
		return validationError("image", "data", fmt.Errorf("data is not in a valid image format"))
	}
	img.data = data
	return nil
}

// Size returns the pixel dimensions decoded from the PNG header.
func (img *Image) Size() (width, height int, err error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(img.data))
	if err != nil {
		return 0, 0, validationError("image", "data", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Transformation returns the image's placement transformation.
func (img *Image) Transformation() Transformation { return img.transformation }

// SetTransformation sets the image's placement transformation.
func (img *Image) SetTransformation(t Transformation) error {
	if _, err := normalizers.TransformationMatrix(t.Values()); err != nil {
		return validationError("image", "transformation", err)
	}
	img.transformation = t
	return nil
}

// Offset returns the translation part of the transformation.
func (img *Image) Offset() Position {
	return Position{X: img.transformation.DX, Y: img.transformation.DY}
}

// SetOffset sets the translation part of the transformation.
func (img *Image) SetOffset(pos Position) error {
	x, y, err := normalizers.TransformationOffset(pos.X, pos.Y)
	if err != nil {
		return validationError("image", "offset", err)
	}
	img.transformation.DX = x
	img.transformation.DY = y
	return nil
}

// Scale returns the scale part of the transformation.
func (img *Image) Scale() (float64, float64) {
	return img.transformation.XX, img.transformation.YY
}

// SetScale sets the scale part of the transformation.
func (img *Image) SetScale(sx, sy float64) error {
	x, y, err := normalizers.TransformationScale(sx, sy)
	if err != nil {
		return validationError("image", "scale", err)
	}
	img.transformation.XX = x
	img.transformation.YY = y
	return nil
}

// Color returns the image's display color, or nil.
func (img *Image) Color() *Color { return img.color }

// SetColor sets the image's display color. Pass nil to clear it.
func (img *Image) SetColor(color *Color) { img.color = color }

// Move shifts the image by (dx, dy).
func (img *Image) Move(dx, dy float64) error {
	return img.TransformBy(Translate(dx, dy))
}

// TransformBy composes an affine transformation onto the image's
// transformation.
func (img *Image) TransformBy(t Transformation) error {
	return img.SetTransformation(img.transformation.Multiply(t))
}

// Round rounds the image's offset to integers.
func (img *Image) Round() {
	img.transformation.DX = float64(normalizers.VisualRounding(img.transformation.DX))
	img.transformation.DY = float64(normalizers.VisualRounding(img.transformation.DY))
}

// copyImage returns a detached copy.
func (img *Image) copyImage() *Image {
	out := &Image{transformation: img.transformation}
	if img.data != nil {
		out.data = append([]byte(nil), img.data...)
	}
	if img.color != nil {
		c := *img.color
		out.color = &c
	}
	return out
}

func (img *Image) String() string {
	return fmt.Sprintf("<Image %d bytes>", len(img.data))
}
