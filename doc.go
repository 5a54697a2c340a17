// Package spline generates dense, discretized curves from sparse 3D control
// points.
//
// A curve is built from an ordered sequence of control points. Each pair of
// neighboring control points spans a cubic Hermite segment ([CubicHermite])
// whose tangents are estimated from the surrounding control points using the
// Catmull-Rom central difference rule. [Spline] tesselates every segment at a
// configurable resolution and stores, per sample, the position, the unit
// tangent, and a normal, together with the cumulative arc length of the
// sampled chain. Curves are either open or closed; a closed curve wraps its
// final segment from the last control point back to the first.
//
// Generated samples are queried with [Spline.Points], [Spline.Position], and
// [Spline.At]. Updating the control points or the curve shape regenerates all
// samples; there is no incremental recomputation.
//
// # Normals
//
// Sample normals are the cross product of the unit tangent with a
// configurable up axis (see [Spline.SetUp]), normalized and scaled to half
// length. This is a drawing convention, not a Frenet normal: it degenerates
// to the zero vector where the tangent is parallel to the up axis.
//
// # Concurrency
//
// All computation is synchronous. A [Spline] must not be mutated concurrently
// with reads; [Spline.Points] returns a copy that stays valid across later
// updates.
package spline
