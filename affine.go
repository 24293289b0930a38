package catmullrom

import (
	"iter"
	"math"
)

// Affine describes a 3D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f, g, h, i, j, k, l), then the
// resulting transformation represents this augmented matrix:
//
//	| a d g j |
//	| b e h k |
//	| c f i l |
//	| 0 0 0 1 |
//
// The coefficients are stored in column-major order, consistent with the
// [Wikipedia] formulation of affine transformation as augmented matrix. The
// idea is that (A * B) * v == A * (B * v).
//
// Catmull-Rom splines are affine invariant: transforming the control points
// and then sampling yields the same points as sampling and then transforming
// the samples. Transforming the control points is usually cheaper.
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale(x, y, z float64) Affine {
	return Affine{x, 0, 0, 0, y, 0, 0, 0, z, 0, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	return Affine{1, 0, 0, 0, 1, 0, 0, 0, 1, v.X, v.Y, v.Z}
}

// RotateX creates an affine transform representing a rotation of th radians
// about the x axis. A positive angle rotates positive y into positive z.
func RotateX(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{1, 0, 0, 0, cos, sin, 0, -sin, cos, 0, 0, 0}
}

// RotateY creates an affine transform representing a rotation of th radians
// about the y axis. A positive angle rotates positive z into positive x.
func RotateY(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, 0, -sin, 0, 1, 0, sin, 0, cos, 0, 0, 0}
}

// RotateZ creates an affine transform representing a rotation of th radians
// about the z axis. A positive angle rotates positive x into positive y.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, 0, -sin, cos, 0, 0, 0, 1, 0, 0, 0}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2,
		aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8,
		aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (aff Affine) Mul(o Affine) Affine {
	a := aff.Coefficients()
	b := o.Coefficients()
	var n [12]float64
	for col := range 4 {
		for row := range 3 {
			v := a[row]*b[col*3] + a[3+row]*b[col*3+1] + a[6+row]*b[col*3+2]
			if col == 3 {
				v += a[9+row]
			}
			n[col*3+row] = v
		}
	}
	return NewAffine(n)
}

// PreScale creates a scale by (x, y, z) followed by aff.
//
// Equivalent to "aff * Scale(x, y, z)"
func (aff Affine) PreScale(x, y, z float64) Affine {
	return aff.Mul(Scale(x, y, z))
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.N9 += v.X
	aff.N10 += v.Y
	aff.N11 += v.Z
	return aff
}

// Determinant computes the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()

	// Row-major names for the linear part.
	m00, m01, m02 := aff.N0, aff.N3, aff.N6
	m10, m11, m12 := aff.N1, aff.N4, aff.N7
	m20, m21, m22 := aff.N2, aff.N5, aff.N8

	i00 := invDet * (m11*m22 - m12*m21)
	i01 := invDet * (m02*m21 - m01*m22)
	i02 := invDet * (m01*m12 - m02*m11)
	i10 := invDet * (m12*m20 - m10*m22)
	i11 := invDet * (m00*m22 - m02*m20)
	i12 := invDet * (m02*m10 - m00*m12)
	i20 := invDet * (m10*m21 - m11*m20)
	i21 := invDet * (m01*m20 - m00*m21)
	i22 := invDet * (m00*m11 - m01*m10)

	tx, ty, tz := aff.N9, aff.N10, aff.N11
	return Affine{
		i00, i10, i20,
		i01, i11, i21,
		i02, i12, i22,
		-(i00*tx + i01*ty + i02*tz),
		-(i10*tx + i11*ty + i12*tz),
		-(i20*tx + i21*ty + i22*tz),
	}
}

func (aff Affine) IsInf() bool {
	for _, n := range aff.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, n := range aff.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return Vec3{
		X: aff.N9,
		Y: aff.N10,
		Z: aff.N11,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.N9 = v.X
	aff.N10 = v.Y
	aff.N11 = v.Z
	return aff
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
