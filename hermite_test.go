package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicHermiteLine(t *testing.T) {
	// A segment whose tangents equal the chord is a straight line traversed
	// at constant speed.
	h := CubicHermite{
		P0: Pt(0, 0, 0),
		P1: Pt(1, 0, 0),
		M0: Vec(1, 0, 0),
		M1: Vec(1, 0, 0),
	}
	const n = 8
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		diff(t, Pt(ts, 0, 0), h.Eval(ts), cmpopts.EquateApprox(0, 1e-12))
	}
	diff(t, Pt(0, 0, 0), h.Start())
	diff(t, Pt(1, 0, 0), h.End())
}

func TestCubicHermiteDeriv(t *testing.T) {
	h := CatmullRom(
		Pt(0, 0, 0),
		Pt(1, 1, 0),
		Pt(2, 0, 1),
		Pt(3, 1, 1),
	)

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p0 := h.Eval(ts - delta)
		p1 := h.Eval(ts + delta)
		dApprox := p1.Sub(p0).Mul(1.0 / (2.0 * delta))
		d := h.EvalDeriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("t=%g: got difference of %g, want at most %g", ts, l, delta*2)
		}
	}
}

func TestCubicHermiteBezier(t *testing.T) {
	h := CatmullRom(
		Pt(-1, 2, 0),
		Pt(0, 0, 1),
		Pt(2, 1, -1),
		Pt(3, 3, 0),
	)
	b0, b1, b2, b3 := h.Bezier()

	// De Casteljau evaluation of the Bézier form.
	bez := func(ts float64) Point {
		q0 := b0.Lerp(b1, ts)
		q1 := b1.Lerp(b2, ts)
		q2 := b2.Lerp(b3, ts)
		r0 := q0.Lerp(q1, ts)
		r1 := q1.Lerp(q2, ts)
		return r0.Lerp(r1, ts)
	}

	const n = 16
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		diff(t, h.Eval(ts), bez(ts), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicHermiteSubsegment(t *testing.T) {
	h := CatmullRom(
		Pt(0, 0, 0),
		Pt(1, 2, 0),
		Pt(3, 3, 1),
		Pt(4, 0, 2),
	)
	sub := h.Subsegment(0.25, 0.75)
	const n = 10
	for i := 0; i <= n; i++ {
		u := float64(i) / float64(n)
		diff(t, h.Eval(0.25+u*0.5), sub.Eval(u), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicHermiteArclenLine(t *testing.T) {
	h := CubicHermite{
		P0: Pt(0, 0, 0),
		P1: Pt(3, 4, 0),
		M0: Vec(3, 4, 0),
		M1: Vec(3, 4, 0),
	}
	diff(t, 5.0, h.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-9))
}

func TestCubicHermiteArclen(t *testing.T) {
	h := CatmullRom(
		Pt(0, 0, 0),
		Pt(1, 2, 0),
		Pt(3, 3, 1),
		Pt(4, 0, 2),
	)

	// Compare against a dense polyline approximation, which converges to the
	// true arc length from below.
	const n = 100000
	var approx float64
	prev := h.Eval(0)
	for i := 1; i <= n; i++ {
		pos := h.Eval(float64(i) / float64(n))
		approx += prev.Distance(pos)
		prev = pos
	}
	diff(t, approx, h.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-4))
}

func TestCubicHermiteDegenerate(t *testing.T) {
	// All control data coincident: the derivative vanishes everywhere.
	h := CubicHermite{P0: Pt(1, 1, 1), P1: Pt(1, 1, 1)}
	for _, ts := range []float64{0, 0.5, 1} {
		diff(t, Pt(1, 1, 1), h.Eval(ts))
		diff(t, Vec3{}, h.EvalDeriv(ts))
		diff(t, Vec3{}, h.EvalDeriv(ts).NormalizeOrZero())
	}
	diff(t, 0.0, h.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, 1e-12))
}

func TestCatmullRom(t *testing.T) {
	h := CatmullRom(
		Pt(0, 0, 0),
		Pt(1, 0, 0),
		Pt(2, 1, 0),
		Pt(3, 1, 1),
	)
	want := CubicHermite{
		P0: Pt(1, 0, 0),
		P1: Pt(2, 1, 0),
		M0: Vec(1, 0.5, 0),
		M1: Vec(1, 0.5, 0.5),
	}
	diff(t, want, h)
}
