package catmullrom

// Segment is a single Catmull-Rom segment. The curve runs from P1 to P2; P0
// and P3 only influence its tangents.
type Segment struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the segment at parameter t. See [PointOnCurve].
func (s Segment) Eval(t float64) Point {
	return PointOnCurve(s.P0, s.P1, s.P2, s.P3, t)
}

// Deriv returns the derivative of the segment with respect to t, which is the
// tangent of the curve at t.
func (s Segment) Deriv(t float64) Vec3 {
	t2 := t * t
	return Vec3{
		X: blendDeriv(s.P0.X, s.P1.X, s.P2.X, s.P3.X, t, t2),
		Y: blendDeriv(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y, t, t2),
		Z: blendDeriv(s.P0.Z, s.P1.Z, s.P2.Z, s.P3.Z, t, t2),
	}
}

func blendDeriv(p0, p1, p2, p3, t, t2 float64) float64 {
	return 0.5 * ((-p0 + p2) +
		2.0*(2.0*p0-5.0*p1+4.0*p2-p3)*t +
		3.0*(-p0+3.0*p1-3.0*p2+p3)*t2)
}

// Start returns the point the segment starts at.
func (s Segment) Start() Point {
	return s.P1
}

// End returns the point the segment ends at.
func (s Segment) End() Point {
	return s.P2
}

func (s Segment) Translate(v Vec3) Segment {
	return Segment{
		P0: s.P0.Translate(v),
		P1: s.P1.Translate(v),
		P2: s.P2.Translate(v),
		P3: s.P3.Translate(v),
	}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: s.P0.Transform(aff),
		P1: s.P1.Transform(aff),
		P2: s.P2.Transform(aff),
		P3: s.P3.Transform(aff),
	}
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf() || s.P2.IsInf() || s.P3.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN() || s.P2.IsNaN() || s.P3.IsNaN()
}
