package fontparts

import (
	"fmt"

	"github.com/robotools/fontparts/normalizers"
)

// Color is an RGBA color with each channel in the range 0 to 1
// inclusive. The zero value is transparent black.
type Color struct {
	R, G, B, A float64
}

// NewColor validates the channel values and returns a Color.
func NewColor(r, g, b, a float64) (Color, error) {
	v, err := normalizers.Color(r, g, b, a)
	if err != nil {
		return Color{}, err
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// Values returns the channels as an (r, g, b, a) tuple.
func (c Color) Values() [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// cloneColor copies an optional color.
func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
