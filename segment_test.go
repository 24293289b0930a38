package catmullrom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentEndpoints(t *testing.T) {
	seg := Segment{wobbly[0], wobbly[1], wobbly[2], wobbly[3]}
	diff(t, seg.Start(), seg.Eval(0))
	assertNear(t, seg.Eval(1), seg.End(), 1e-12)
	diff(t, PointOnCurve(seg.P0, seg.P1, seg.P2, seg.P3, 0.3), seg.Eval(0.3))
}

func TestSegmentDeriv(t *testing.T) {
	seg := Segment{wobbly[2], wobbly[3], wobbly[4], wobbly[5]}

	// Catmull-Rom tangents are half the chord between the neighbours.
	diff(t, seg.P2.Sub(seg.P0).Mul(0.5), seg.Deriv(0), cmpopts.EquateApprox(0, 1e-12))
	diff(t, seg.P3.Sub(seg.P1).Mul(0.5), seg.Deriv(1), cmpopts.EquateApprox(0, 1e-12))

	const h = 1e-6
	for _, tt := range []float64{0.1, 0.4, 0.5, 0.9} {
		fd := seg.Eval(tt + h).Sub(seg.Eval(tt - h)).Div(2 * h)
		diff(t, fd, seg.Deriv(tt), cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestSegmentTranslate(t *testing.T) {
	seg := Segment{wobbly[0], wobbly[1], wobbly[2], wobbly[3]}
	v := Vec(1, -2, 3)
	moved := seg.Translate(v)
	for _, tt := range []float64{0, 0.2, 0.7} {
		assertNear(t, moved.Eval(tt), seg.Eval(tt).Translate(v), 1e-12)
	}
	// Translation doesn't change tangents.
	diff(t, seg.Deriv(0.5), moved.Deriv(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestSegmentNonFinite(t *testing.T) {
	seg := Segment{wobbly[0], wobbly[1], wobbly[2], wobbly[3]}
	if seg.IsInf() || seg.IsNaN() {
		t.Error("finite segment reported as non-finite")
	}

	inf := seg
	inf.P3 = Pt(math.Inf(1), 0, 0)
	if !inf.IsInf() {
		t.Error("expected IsInf for infinite P3")
	}
	if inf.IsNaN() {
		t.Error("infinite segment reported as NaN")
	}

	nan := seg
	nan.P0 = Pt(0, math.NaN(), 0)
	if !nan.IsNaN() {
		t.Error("expected IsNaN for NaN P0")
	}
	if nan.IsInf() {
		t.Error("NaN segment reported as infinite")
	}
}
