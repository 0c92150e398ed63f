package fontparts

import (
	"math"

	"github.com/robotools/fontparts/normalizers"
)

// Transformation is a 2D affine transformation matrix:
//
//	| XX  YX  0 |
//	| XY  YY  0 |
//	| DX  DY  1 |
//
// Points transform as (x', y') = (XX*x + YX*y + DX, XY*x + YY*y + DY).
// The field order matches the common font tool convention of
// (xx, xy, yx, yy, dx, dy).
type Transformation struct {
	XX, XY, YX, YY, DX, DY float64
}

// Identity is the identity transformation.
var Identity = Transformation{XX: 1, YY: 1}

// NewTransformation builds a transformation from a six-value tuple in
// (xx, xy, yx, yy, dx, dy) order, validating that every value is finite.
func NewTransformation(values [6]float64) (Transformation, error) {
	v, err := normalizers.TransformationMatrix(values)
	if err != nil {
		return Transformation{}, err
	}
	return Transformation{XX: v[0], XY: v[1], YX: v[2], YY: v[3], DX: v[4], DY: v[5]}, nil
}

// Values returns the matrix as a six-value tuple in
// (xx, xy, yx, yy, dx, dy) order.
func (t Transformation) Values() [6]float64 {
	return [6]float64{t.XX, t.XY, t.YX, t.YY, t.DX, t.DY}
}

// Translate returns a translation matrix.
func Translate(dx, dy float64) Transformation {
	return Transformation{XX: 1, YY: 1, DX: dx, DY: dy}
}

// ScaleTransform returns a scaling matrix. Pass the same value for both
// axes for uniform scaling.
func ScaleTransform(sx, sy float64) Transformation {
	return Transformation{XX: sx, YY: sy}
}

// Rotate returns a rotation matrix for an angle in degrees,
// counter-clockwise about the origin.
func Rotate(degrees float64) Transformation {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return Transformation{XX: cos, XY: sin, YX: -sin, YY: cos}
}

// Skew returns a skew matrix for angles in degrees along x and y.
func Skew(xDegrees, yDegrees float64) Transformation {
	return Transformation{
		XX: 1,
		XY: math.Tan(yDegrees * math.Pi / 180.0),
		YX: math.Tan(xDegrees * math.Pi / 180.0),
		YY: 1,
	}
}

// Multiply composes two transformations. The receiver is applied first,
// then other: (t.Multiply(other)).TransformPosition(p) equals
// other.TransformPosition(t.TransformPosition(p)).
func (t Transformation) Multiply(other Transformation) Transformation {
	return Transformation{
		XX: t.XX*other.XX + t.XY*other.YX,
		XY: t.XX*other.XY + t.XY*other.YY,
		YX: t.YX*other.XX + t.YY*other.YX,
		YY: t.YX*other.XY + t.YY*other.YY,
		DX: t.DX*other.XX + t.DY*other.YX + other.DX,
		DY: t.DX*other.XY + t.DY*other.YY + other.DY,
	}
}

// TransformPosition applies the transformation to a point.
func (t Transformation) TransformPosition(p Position) Position {
	return Position{
		X: t.XX*p.X + t.YX*p.Y + t.DX,
		Y: t.XY*p.X + t.YY*p.Y + t.DY,
	}
}

// IsIdentity reports whether the transformation is the identity.
func (t Transformation) IsIdentity() bool {
	return t == Identity
}

// Determinant returns the determinant of the linear part.
func (t Transformation) Determinant() float64 {
	return t.XX*t.YY - t.XY*t.YX
}

// Invert returns the inverse transformation. The second return value is
// false when the matrix is singular.
func (t Transformation) Invert() (Transformation, bool) {
	det := t.Determinant()
	if det == 0 || math.IsInf(det, 0) || math.IsNaN(det) {
		return Transformation{}, false
	}
	inv := 1.0 / det
	out := Transformation{
		XX: t.YY * inv,
		XY: -t.XY * inv,
		YX: -t.YX * inv,
		YY: t.XX * inv,
	}
	out.DX = -(t.DX*out.XX + t.DY*out.YX)
	out.DY = -(t.DX*out.XY + t.DY*out.YY)
	return out, true
}
