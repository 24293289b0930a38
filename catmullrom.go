package catmullrom

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// MinPoints is the smallest number of control points that describe a spline.
const MinPoints = 4

// maxPrealloc bounds the capacity Generate reserves up front. Longer results
// grow as they are produced.
const maxPrealloc = 1 << 20

// ErrInvalidInput is returned by [Generate] when the control points or the
// sample density cannot describe a spline. Errors returned by Generate wrap it
// and can be checked with [errors.Is].
var ErrInvalidInput = errors.New("catmullrom: invalid input")

// PointOnCurve computes the point at parameter t on the Catmull-Rom segment
// that runs from p1 to p2, with p0 and p3 shaping the tangents at either end.
//
// t is normally in [0, 1), where t = 0 yields p1 and t = 1 would yield p2.
// Values outside that range are not clamped and extrapolate the cubic.
func PointOnCurve(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: blend(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Y: blend(p0.Y, p1.Y, p2.Y, p3.Y, t, t2, t3),
		Z: blend(p0.Z, p1.Z, p2.Z, p3.Z, t, t2, t3),
	}
}

// blend evaluates the uniform Catmull-Rom basis for a single axis.
func blend(p0, p1, p2, p3, t, t2, t3 float64) float64 {
	return 0.5 * ((2.0 * p1) +
		(-p0+p2)*t +
		(2.0*p0-5.0*p1+4.0*p2-p3)*t2 +
		(-p0+3.0*p1-3.0*p2+p3)*t3)
}

// Generate returns a series of points approximating a smooth curve through
// points. Every window of four consecutive control points contributes
// numPoints samples at t = j/numPoints, and the second-to-last control point
// is appended as the final point. The result has
// numPoints × (len(points) − 3) + 1 elements and never shares memory with
// points.
//
// Generate fails with [ErrInvalidInput] if there are fewer than [MinPoints]
// control points, if numPoints is negative, or if the result would have more
// than math.MaxInt elements. A numPoints of zero is accepted and yields only
// the final point.
//
// Use [Spline.Samples] to produce the same points without allocating.
func Generate(points []Point, numPoints int) ([]Point, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%w: need at least %d control points, got %d", ErrInvalidInput, MinPoints, len(points))
	}
	if numPoints < 0 {
		return nil, fmt.Errorf("%w: negative number of points per segment: %d", ErrInvalidInput, numPoints)
	}
	if overflows(len(points), numPoints) {
		return nil, fmt.Errorf("%w: too many points per segment: %d", ErrInvalidInput, numPoints)
	}
	out := make([]Point, 0, min(numPoints*(len(points)-3)+1, maxPrealloc))
	return slices.AppendSeq(out, Spline(points).Samples(numPoints)), nil
}

// Spline is a sequence of Catmull-Rom control points. The curve passes through
// every point except the first and the last, which only shape the tangents of
// their neighbours.
type Spline []Point

// Segments returns an iterator over the segments of the spline, one for every
// window of four consecutive control points. A spline with fewer than four
// points has no segments.
func (s Spline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 0; i+3 < len(s); i++ {
			if !yield(Segment{s[i], s[i+1], s[i+2], s[i+3]}) {
				break
			}
		}
	}
}

// Samples returns an iterator over the points that [Generate] would return.
// It yields nothing if the spline has fewer than [MinPoints] points or
// numPoints is negative.
func (s Spline) Samples(numPoints int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(s) < MinPoints || numPoints < 0 {
			return
		}
		for seg := range s.Segments() {
			for j := range numPoints {
				if !yield(seg.Eval(float64(j) / float64(numPoints))) {
					return
				}
			}
		}
		// The last window stops short of t = 1, so close the sequence on the
		// control point it was heading towards.
		yield(s[len(s)-2])
	}
}

// Len returns the number of points [Spline.Samples] yields for numPoints
// samples per segment. It returns 0 where [Generate] would fail.
func (s Spline) Len(numPoints int) int {
	if len(s) < MinPoints || numPoints < 0 || overflows(len(s), numPoints) {
		return 0
	}
	return numPoints*(len(s)-3) + 1
}

// overflows reports whether numPoints × (n − 3) + 1 exceeds math.MaxInt.
// n must be at least MinPoints and numPoints must not be negative.
func overflows(n, numPoints int) bool {
	return numPoints > (math.MaxInt-1)/(n-3)
}
