package spline

import (
	"errors"
	"math"
	"slices"
)

var (
	// ErrTooFewPoints is returned when fewer than three control points are
	// supplied. Three is the minimum for a segment with defined neighbor
	// tangents.
	ErrTooFewPoints = errors.New("spline: need at least 3 control points")
	// ErrResolution is returned for resolutions below two samples per segment.
	ErrResolution = errors.New("spline: resolution must be at least 2")
	// ErrZeroUp is returned when the up axis is the zero vector.
	ErrZeroUp = errors.New("spline: up axis must not be zero")
	// ErrNotInitialized is returned when a zero-value Spline is used. Splines
	// must be created with [NewSpline].
	ErrNotInitialized = errors.New("spline: not initialized")
)

// DefaultUp is the up axis used for computing sample normals until
// [Spline.SetUp] is called.
var DefaultUp = Vec(0, 0, 1)

// SplinePoint is one generated sample of a curve.
//
// Tangent has unit length, except where the curve's derivative vanishes, in
// which case it is the zero vector. Normal is the cross product of the
// tangent with the curve's up axis, normalized and scaled to half length; it
// is the zero vector where the tangent is parallel to the up axis.
type SplinePoint struct {
	Pos     Point
	Tangent Vec3
	Normal  Vec3
}

// Spline is a curve through a sequence of control points, discretized into
// samples.
//
// Every pair of neighboring control points forms a segment, tesselated into
// a fixed number of samples (the resolution). An open curve with n control
// points generates resolution × (n−1) samples; a closed curve wraps a final
// segment back to the first control point and generates resolution × n
// samples. All samples are regenerated whenever the control points or the
// curve shape change.
type Spline struct {
	ctrl       []Point
	resolution int
	closed     bool
	up         Vec3

	points []SplinePoint
	length float64
}

// NewSpline returns a curve through the given control points, sampled at
// resolution samples per segment. If closed is true, the curve wraps from the
// last control point back to the first.
//
// NewSpline fails with [ErrTooFewPoints] for fewer than three control points
// and with [ErrResolution] for a resolution below two. The control points are
// copied; samples are generated before NewSpline returns.
func NewSpline(ctrl []Point, resolution int, closed bool) (*Spline, error) {
	if len(ctrl) < 3 {
		return nil, ErrTooFewPoints
	}
	if resolution < 2 {
		return nil, ErrResolution
	}
	s := &Spline{
		ctrl:       slices.Clone(ctrl),
		resolution: resolution,
		closed:     closed,
		up:         DefaultUp,
	}
	s.rebuild()
	return s, nil
}

func (s *Spline) initialized() bool {
	return len(s.points) != 0
}

// segments returns the number of segments of the curve.
func (s *Spline) segments() int {
	if s.closed {
		return len(s.ctrl)
	}
	return len(s.ctrl) - 1
}

// segment returns the Hermite segment starting at control point i, with
// tangents estimated from the neighboring control points.
func (s *Spline) segment(i int) CubicHermite {
	n := len(s.ctrl)
	if s.closed {
		return CatmullRom(
			s.ctrl[(i-1+n)%n],
			s.ctrl[i],
			s.ctrl[(i+1)%n],
			s.ctrl[(i+2)%n],
		)
	}
	// At the open ends there is no neighbor to difference across; the
	// one-sided difference keeps the same ×½ scale as the interior.
	p0, p1 := s.ctrl[i], s.ctrl[i+1]
	m0 := p1.Sub(p0).Mul(0.5)
	if i > 0 {
		m0 = p1.Sub(s.ctrl[i-1]).Mul(0.5)
	}
	m1 := p1.Sub(p0).Mul(0.5)
	if i < n-2 {
		m1 = s.ctrl[i+2].Sub(p0).Mul(0.5)
	}
	return CubicHermite{P0: p0, P1: p1, M0: m0, M1: m1}
}

// rebuild regenerates all samples and the cumulative arc length.
func (s *Spline) rebuild() {
	segs := s.segments()
	points := make([]SplinePoint, segs*s.resolution)
	var length float64
	var prev Point
	for seg := 0; seg < segs; seg++ {
		h := s.segment(seg)
		step := 1.0 / float64(s.resolution)
		if seg == segs-1 {
			// The last sample of the whole curve must land on t=1 rather than
			// stop one step short of the terminal control point.
			step = 1.0 / float64(s.resolution-1)
		}
		for i := 0; i < s.resolution; i++ {
			t := float64(i) * step
			pos := h.Eval(t)
			tangent := h.EvalDeriv(t).NormalizeOrZero()
			normal := tangent.Cross(s.up).NormalizeOrZero().Mul(0.5)
			idx := seg*s.resolution + i
			points[idx] = SplinePoint{Pos: pos, Tangent: tangent, Normal: normal}
			if idx > 0 {
				length += prev.Distance(pos)
			}
			prev = pos
		}
	}
	s.points = points
	s.length = length
}

// SetControlPoints replaces the control points and regenerates all samples.
// It fails with [ErrTooFewPoints] for fewer than three points, leaving the
// curve unchanged.
func (s *Spline) SetControlPoints(ctrl []Point) error {
	if !s.initialized() {
		return ErrNotInitialized
	}
	if len(ctrl) < 3 {
		return ErrTooFewPoints
	}
	s.ctrl = slices.Clone(ctrl)
	s.rebuild()
	return nil
}

// SetShape replaces the resolution and the closed flag and regenerates all
// samples. It fails with [ErrResolution] for a resolution below two, leaving
// the curve unchanged.
func (s *Spline) SetShape(resolution int, closed bool) error {
	if !s.initialized() {
		return ErrNotInitialized
	}
	if resolution < 2 {
		return ErrResolution
	}
	s.resolution = resolution
	s.closed = closed
	s.rebuild()
	return nil
}

// SetUp replaces the up axis used for computing sample normals and
// regenerates all samples. It fails with [ErrZeroUp] for a zero vector,
// leaving the curve unchanged.
func (s *Spline) SetUp(up Vec3) error {
	if !s.initialized() {
		return ErrNotInitialized
	}
	if up.Hypot2() == 0 {
		return ErrZeroUp
	}
	s.up = up
	s.rebuild()
	return nil
}

// ControlPoints returns a copy of the control points.
func (s *Spline) ControlPoints() []Point {
	return slices.Clone(s.ctrl)
}

// Resolution returns the number of samples generated per segment.
func (s *Spline) Resolution() int {
	return s.resolution
}

// Closed reports whether the curve wraps back to its first control point.
func (s *Spline) Closed() bool {
	return s.closed
}

// Up returns the up axis used for computing sample normals.
func (s *Spline) Up() Vec3 {
	return s.up
}

// Points returns a copy of the generated samples, ordered along the curve.
func (s *Spline) Points() ([]SplinePoint, error) {
	if !s.initialized() {
		return nil, ErrNotInitialized
	}
	return slices.Clone(s.points), nil
}

// PointCount returns the number of generated samples: resolution × (n−1) for
// an open curve with n control points, resolution × n for a closed one.
func (s *Spline) PointCount() (int, error) {
	if !s.initialized() {
		return 0, ErrNotInitialized
	}
	return len(s.points), nil
}

// Length returns the arc length of the curve, accumulated over the distances
// between consecutive samples.
func (s *Spline) Length() (float64, error) {
	if !s.initialized() {
		return 0, ErrNotInitialized
	}
	return s.length, nil
}

// Position returns the position on the curve at t.
//
// If normalized is true, t is a fraction of the curve in [0, 1]; otherwise it
// is a distance along the sampled chain in [0, Length]. Out-of-range values
// are clamped. The position is interpolated linearly between the two bounding
// samples.
func (s *Spline) Position(t float64, normalized bool) (Point, error) {
	if !s.initialized() {
		return Point{}, ErrNotInitialized
	}
	lo, hi, frac := s.locate(t, normalized)
	return s.points[lo].Pos.Lerp(s.points[hi].Pos, frac), nil
}

// At returns the full sample at t, with the position, tangent, and normal
// interpolated linearly between the two bounding samples. The interpolated
// tangent is renormalized; t behaves as in [Spline.Position].
func (s *Spline) At(t float64, normalized bool) (SplinePoint, error) {
	if !s.initialized() {
		return SplinePoint{}, ErrNotInitialized
	}
	lo, hi, frac := s.locate(t, normalized)
	a, b := s.points[lo], s.points[hi]
	return SplinePoint{
		Pos:     a.Pos.Lerp(b.Pos, frac),
		Tangent: a.Tangent.Lerp(b.Tangent, frac).NormalizeOrZero(),
		Normal:  a.Normal.Lerp(b.Normal, frac),
	}, nil
}

// locate maps t to the bounding sample indices and the interpolation
// fraction between them.
func (s *Spline) locate(t float64, normalized bool) (lo, hi int, frac float64) {
	if !normalized {
		if s.length == 0 {
			return 0, 0, 0
		}
		t /= s.length
	}
	t = min(max(t, 0.0), 1.0)
	p := t * float64(len(s.points)-1)
	lo = int(math.Floor(p))
	hi = min(lo+1, len(s.points)-1)
	return lo, hi, p - float64(lo)
}
