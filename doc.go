// Package catmullrom generates smooth curves through sequences of 3D control
// points using uniform Catmull-Rom splines. It is intended for camera paths,
// procedural motion, track generation and similar uses where a handful of
// waypoints has to be turned into a dense, smooth polyline.
//
// # Splines and segments
//
// A Catmull-Rom spline passes through its control points without requiring
// explicit tangents: the tangent at each point is derived from its
// neighbours. Every window of four consecutive control points p0, p1, p2, p3
// describes one cubic [Segment] that runs from p1 to p2. Consequently, the
// curve does not reach the first and the last control point; they only shape
// the tangents of the curve at the second and the second-to-last point.
//
// [PointOnCurve] evaluates a single segment at a parameter t ∈ [0, 1).
// [Generate] samples every segment of a sequence of control points at evenly
// spaced values of t and returns the result as a slice. Sampling is uniform in
// t, not in arc length, so samples bunch up where control points are close
// together.
//
// The sequence returned by Generate ends on the second-to-last control point.
// Because no segment is sampled at t = 1, the final point acts as an anchor
// that closes the curve on the last point it actually passes through.
//
// # Iterators
//
// [Spline] provides the same functionality as iterators. [Spline.Segments]
// iterates over the windows of four points, and [Spline.Samples] produces the
// points that Generate would return, one at a time and without allocating.
// Use [slices.Collect] to turn them into slices.
//
// # Transformations
//
// Catmull-Rom splines are affine invariant. [Affine] describes 3D affine
// transformations, and [Transform] applies one to a sequence of points or
// segments. Placing a path in a scene can thus be done either before or after
// sampling it.
package catmullrom
