package collision

import (
	"testing"

	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
)

func TestRayVsRectDiagonalHit(t *testing.T) {
	// Canonical fixture: ray from (1,2) along (3,4) against the rect at
	// (5,6) sized (7,8). Entry happens on the x slab at t = 4/3, which in
	// Q16.16 with the inverse-multiply evaluation lands on raw 87380.
	res, ok := RayVsRect(geom.V(1, 2), geom.V(3, 4), geom.R(5, 6, 7, 8))
	if !ok {
		t.Fatal("expected intersection")
	}

	if res.ClosestTime.Raw() != 87380 {
		t.Errorf("ClosestTime = %d raw (%s), expected 87380", res.ClosestTime.Raw(), res.ClosestTime)
	}
	if res.ContactNormal != geom.NegUnitX {
		t.Errorf("ContactNormal = %s, expected (-1, 0)", res.ContactNormal)
	}
	if res.ContactPoint.X.Raw() != 327676 || res.ContactPoint.Y.Raw() != 480592 {
		t.Errorf("ContactPoint = (%d, %d) raw, expected (327676, 480592)",
			res.ContactPoint.X.Raw(), res.ContactPoint.Y.Raw())
	}
}

func TestRayVsRectAxisNormals(t *testing.T) {
	target := geom.R(0, 0, 10, 10)

	tests := []struct {
		name       string
		origin     geom.Vec
		dir        geom.Vec
		wantNormal geom.Vec
	}{
		{"+x into left face", geom.V(-5, 5), geom.V(10, 0), geom.NegUnitX},
		{"-x into right face", geom.V(15, 5), geom.V(-10, 0), geom.UnitX},
		{"+y into low face", geom.V(5, -5), geom.V(0, 10), geom.NegUnitY},
		{"-y into high face", geom.V(5, 15), geom.V(0, -10), geom.UnitY},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := RayVsRect(tc.origin, tc.dir, target)
			if !ok {
				t.Fatal("expected intersection")
			}
			if res.ContactNormal != tc.wantNormal {
				t.Errorf("ContactNormal = %s, expected %s", res.ContactNormal, tc.wantNormal)
			}
			// Entry at half the direction vector, up to truncation.
			if diff := res.ClosestTime - fixed.Half; diff.Abs().Raw() > 16 {
				t.Errorf("ClosestTime = %s, expected ~0.5", res.ClosestTime)
			}
		})
	}
}

func TestRayVsRectCornerTieBreak(t *testing.T) {
	// Both slabs are entered at exactly t = 0.5; the x-axis normal wins.
	res, ok := RayVsRect(geom.V(-1, -1), geom.V(2, 2), geom.R(0, 0, 4, 4))
	if !ok {
		t.Fatal("expected intersection")
	}
	if res.ClosestTime != fixed.Half {
		t.Errorf("ClosestTime = %s, expected 0.5", res.ClosestTime)
	}
	if res.ContactNormal != geom.NegUnitX {
		t.Errorf("ContactNormal = %s, expected (-1, 0) from the tie-break", res.ContactNormal)
	}
	if res.ContactPoint != geom.V(0, 0) {
		t.Errorf("ContactPoint = %s, expected (0, 0)", res.ContactPoint)
	}
}

func TestRayVsRectOriginInside(t *testing.T) {
	origin := geom.V(5, 5)
	res, ok := RayVsRect(origin, geom.V(3, 1), geom.R(0, 0, 10, 10))
	if !ok {
		t.Fatal("expected intersection")
	}
	if res.ClosestTime != fixed.Zero {
		t.Errorf("ClosestTime = %s, expected 0 for an inside origin", res.ClosestTime)
	}
	if res.ContactPoint != origin {
		t.Errorf("ContactPoint = %s, expected the origin %s", res.ContactPoint, origin)
	}
}

func TestRayVsRectMisses(t *testing.T) {
	target := geom.R(0, 0, 10, 10)

	tests := []struct {
		name   string
		origin geom.Vec
		dir    geom.Vec
	}{
		{"zero direction", geom.V(-5, 5), geom.V(0, 0)},
		{"zero direction inside", geom.V(5, 5), geom.V(0, 0)},
		{"parallel outside slab", geom.V(0, 20), geom.V(10, 0)},
		{"rect behind origin", geom.V(20, 5), geom.V(5, 0)},
		{"passes above", geom.V(-5, 20), geom.V(10, 0)},
		{"diverging diagonal", geom.V(-5, -5), geom.V(-2, -3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := RayVsRect(tc.origin, tc.dir, target); ok {
				t.Error("expected no intersection")
			}
		})
	}
}

func TestRayVsRectUnboundedSpan(t *testing.T) {
	// The plain ray query does not stop at t = 1; only the swept wrappers
	// restrict to a single tick.
	res, ok := RayVsRect(geom.V(0, 5), geom.V(1, 0), geom.R(30, 0, 10, 10))
	if !ok {
		t.Fatal("expected intersection far along the ray")
	}
	if res.ClosestTime != fixed.FromInt(30) {
		t.Errorf("ClosestTime = %s, expected 30", res.ClosestTime)
	}
}

func TestRayVsRectBoundaryReentry(t *testing.T) {
	// Re-casting from a reported contact point must hit again immediately:
	// the contact sits on the boundary up to fixed-point truncation.
	origin, dir := geom.V(-5, 5), geom.V(10, 0)
	target := geom.R(0, 0, 10, 10)

	first, ok := RayVsRect(origin, dir, target)
	if !ok {
		t.Fatal("expected intersection")
	}
	second, ok := RayVsRect(first.ContactPoint, dir, target)
	if !ok {
		t.Fatal("expected re-entry intersection from the contact point")
	}
	if second.ClosestTime.Raw() > 64 {
		t.Errorf("re-entry ClosestTime = %d raw, expected ~0", second.ClosestTime.Raw())
	}
}

func TestRayVsRectDeterminism(t *testing.T) {
	origin, dir := geom.V(1, 2), geom.V(3, 4)
	target := geom.R(5, 6, 7, 8)

	first, ok := RayVsRect(origin, dir, target)
	if !ok {
		t.Fatal("expected intersection")
	}
	for range 50 {
		again, ok := RayVsRect(origin, dir, target)
		if !ok || again != first {
			t.Fatal("identical inputs produced different results")
		}
	}
}

func TestSweptRectVsRectHeadOn(t *testing.T) {
	moving := geom.R(0, 0, 2, 2)
	target := geom.R(5, 0, 2, 2)

	res, ok := SweptRectVsRect(moving, geom.V(4, 0), target)
	if !ok {
		t.Fatal("expected collision")
	}
	// Centers start 5 apart; the gap between faces is 3, closed after
	// 3/4 of the tick's displacement.
	if res.ClosestTime.Raw() != 49152 {
		t.Errorf("ClosestTime = %s, expected 0.75", res.ClosestTime)
	}
	if res.ContactNormal != geom.NegUnitX {
		t.Errorf("ContactNormal = %s, expected (-1, 0)", res.ContactNormal)
	}
	if res.ContactPoint != geom.V(4, 1) {
		t.Errorf("ContactPoint = %s, expected center (4, 1) at contact", res.ContactPoint)
	}
}

func TestSweptRectVsRectMatchesExpansionReduction(t *testing.T) {
	moving := geom.R(1, 2, 2, 4)
	target := geom.R(8, 3, 4, 4)
	delta := geom.V(9, 2)

	swept, ok := SweptRectVsRect(moving, delta, target)
	if !ok {
		t.Fatal("expected collision")
	}

	ray, ok := RayVsRect(moving.Center(), delta, target.Expand(moving.Size.Half()))
	if !ok {
		t.Fatal("expected the reduced ray query to agree")
	}
	if swept != ray {
		t.Errorf("swept result %+v differs from expansion reduction %+v", swept, ray)
	}
}

func TestSweptRectVsRectEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		moving  geom.Rect
		delta   geom.Vec
		target  geom.Rect
		wantHit bool
	}{
		{"zero velocity apart", geom.R(0, 0, 2, 2), geom.V(0, 0), geom.R(5, 0, 2, 2), false},
		{"zero velocity overlapping", geom.R(4, 0, 2, 2), geom.V(0, 0), geom.R(5, 0, 2, 2), false},
		{"contact exactly at tick end", geom.R(0, 0, 2, 2), geom.V(4, 0), geom.R(6, 0, 2, 2), false},
		{"moving away", geom.R(0, 0, 2, 2), geom.V(-4, 0), geom.R(5, 0, 2, 2), false},
		{"diagonal sweep", geom.R(0, 0, 2, 2), geom.V(4, 4), geom.R(4, 4, 2, 2), true},
		{"too short", geom.R(0, 0, 2, 2), geom.V(2, 0), geom.R(5, 0, 2, 2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := SweptRectVsRect(tc.moving, tc.delta, tc.target)
			if ok != tc.wantHit {
				t.Errorf("hit = %v, expected %v", ok, tc.wantHit)
			}
		})
	}
}

func TestSweptRectVsRectAlreadyOverlapping(t *testing.T) {
	// Overlapping rectangles with a nonzero velocity report contact at
	// t = 0 at the mover's current center.
	moving := geom.R(4, 0, 2, 2)
	res, ok := SweptRectVsRect(moving, geom.V(1, 0), geom.R(5, 0, 2, 2))
	if !ok {
		t.Fatal("expected immediate contact")
	}
	if res.ClosestTime != fixed.Zero {
		t.Errorf("ClosestTime = %s, expected 0", res.ClosestTime)
	}
	if res.ContactPoint != moving.Center() {
		t.Errorf("ContactPoint = %s, expected %s", res.ContactPoint, moving.Center())
	}
}

func TestSweptRectVerticalTime(t *testing.T) {
	moving := geom.R(0, 0, 2, 2)
	target := geom.R(0, 4, 2, 2)

	tm, ok := SweptRectVerticalTime(moving, fixed.FromInt(4), target)
	if !ok {
		t.Fatal("expected vertical impact")
	}
	if tm != fixed.Half {
		t.Errorf("time = %s, expected 0.5", tm)
	}

	// Upward motion away from the target never lands.
	if _, ok := SweptRectVerticalTime(moving, fixed.FromInt(-4), target); ok {
		t.Error("expected no impact when moving away")
	}
	// Zero displacement is degenerate.
	if _, ok := SweptRectVerticalTime(moving, fixed.Zero, target); ok {
		t.Error("expected no impact for zero displacement")
	}
	// Horizontally disjoint columns never meet.
	if _, ok := SweptRectVerticalTime(moving, fixed.FromInt(4), geom.R(10, 4, 2, 2)); ok {
		t.Error("expected no impact outside the horizontal span")
	}
}

func TestSweptRectHorizontalTime(t *testing.T) {
	moving := geom.R(0, 0, 2, 2)
	target := geom.R(4, 0, 2, 2)

	tm, ok := SweptRectHorizontalTime(moving, fixed.FromInt(4), target)
	if !ok {
		t.Fatal("expected horizontal impact")
	}
	if tm != fixed.Half {
		t.Errorf("time = %s, expected 0.5", tm)
	}

	// Leftward motion moves away from the target.
	if _, ok := SweptRectHorizontalTime(moving, fixed.FromInt(-1), target); ok {
		t.Error("expected no impact when moving away")
	}
}

func TestRayVsRectVerticalTimeUnbounded(t *testing.T) {
	// The raw axis query reports times outside [0,1) as well.
	tm, ok := RayVsRectVerticalTime(geom.V(1, 10), fixed.FromInt(-4), geom.R(0, 4, 2, 2))
	if !ok {
		t.Fatal("expected a time")
	}
	if tm != fixed.One {
		t.Errorf("time = %s, expected 1", tm)
	}
}
