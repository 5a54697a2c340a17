package spline

import "math"

var _ ParametricCurve = CubicHermite{}
var _ Arclener = CubicHermite{}

// CubicHermite is a cubic Hermite segment: a cubic curve running from P0 to
// P1, with tangent M0 at the start and M1 at the end.
type CubicHermite struct {
	P0 Point
	P1 Point
	M0 Vec3
	M1 Vec3
}

// CatmullRom returns the Hermite segment from p1 to p2 whose tangents are the
// central differences of the neighboring points, (p2−p0)/2 and (p3−p1)/2.
func CatmullRom(p0, p1, p2, p3 Point) CubicHermite {
	return CubicHermite{
		P0: p1,
		P1: p2,
		M0: p2.Sub(p0).Mul(0.5),
		M1: p3.Sub(p1).Mul(0.5),
	}
}

func (h CubicHermite) IsInf() bool {
	return h.P0.IsInf() || h.P1.IsInf() || h.M0.IsInf() || h.M1.IsInf()
}

func (h CubicHermite) IsNaN() bool {
	return h.P0.IsNaN() || h.P1.IsNaN() || h.M0.IsNaN() || h.M1.IsNaN()
}

// Eval evaluates the segment at parameter t using the Hermite basis.
func (h CubicHermite) Eval(t float64) Point {
	t2 := t * t
	t3 := t2 * t
	v := Vec3(h.P0).Mul(2.0*t3 - 3.0*t2 + 1.0).
		Add(h.M0.Mul(t3 - 2.0*t2 + t)).
		Add(Vec3(h.P1).Mul(-2.0*t3 + 3.0*t2)).
		Add(h.M1.Mul(t3 - t2))
	return Point(v)
}

// EvalDeriv evaluates the derivative of the segment at parameter t. The
// result is not normalized.
func (h CubicHermite) EvalDeriv(t float64) Vec3 {
	t2 := t * t
	return Vec3(h.P0).Mul(6.0*t2 - 6.0*t).
		Add(h.M0.Mul(3.0*t2 - 4.0*t + 1.0)).
		Add(Vec3(h.P1).Mul(-6.0*t2 + 6.0*t)).
		Add(h.M1.Mul(3.0*t2 - 2.0*t))
}

func (h CubicHermite) Start() Point {
	return h.P0
}

func (h CubicHermite) End() Point {
	return h.P1
}

// Bezier returns the control points of the cubic Bézier that traces the same
// curve as the segment.
func (h CubicHermite) Bezier() (Point, Point, Point, Point) {
	b1 := h.P0.Translate(h.M0.Div(3.0))
	b2 := h.P1.Translate(h.M1.Div(3.0).Negate())
	return h.P0, b1, b2, h.P1
}

// Subsegment returns the part of the segment between parameters t0 and t1,
// reparametrized to [0, 1].
func (h CubicHermite) Subsegment(t0, t1 float64) CubicHermite {
	dt := t1 - t0
	return CubicHermite{
		P0: h.Eval(t0),
		P1: h.Eval(t1),
		M0: h.EvalDeriv(t0).Mul(dt),
		M1: h.EvalDeriv(t1).Mul(dt),
	}
}

// Subdivide subdivides the segment into halves.
func (h CubicHermite) Subdivide() (CubicHermite, CubicHermite) {
	return h.Subsegment(0.0, 0.5), h.Subsegment(0.5, 1.0)
}

// Arclen returns the arc length of the segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature,
// applied to the segment's Bézier form.
func (h CubicHermite) Arclen(accuracy float64) float64 {
	return h.arclen(accuracy, 0)
}

func (h CubicHermite) arclen(accuracy float64, depth int) float64 {
	b0, b1, b2, b3 := h.Bezier()
	d03 := b3.Sub(b0)
	d01 := b1.Sub(b0)
	d12 := b2.Sub(b1)
	d23 := b3.Sub(b2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for the first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as the segment approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	h0, h1 := h.Subdivide()
	return h0.arclen(accuracy*0.5, depth+1) + h1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm, dm1, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}
