// Package collision implements deterministic intersection queries between
// rays and axis-aligned rectangles, including swept checks for moving
// rectangles. Everything runs on the Q16.16 scalar from internal/fixed, so
// identical inputs produce bit-identical results on every platform.
//
// All functions are pure and safe for concurrent use. Coordinates are
// expected to stay well within the Q16.16 range; the package does not
// saturate on overflow.
package collision

import (
	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
)

// Result describes the first contact between a ray (or swept rectangle)
// and a target rectangle.
type Result struct {
	// ContactPoint is the ray position at first contact. For swept
	// rectangle queries it is the moving rectangle's center at contact.
	ContactPoint geom.Vec

	// ContactNormal is the outward unit normal of the struck face: one of
	// (±1,0) or (0,±1), always opposing the direction of travel on the
	// axis of entry.
	ContactNormal geom.Vec

	// ClosestTime is the entry time as a fraction of the direction
	// vector: 0 is the ray origin, 1 the full displacement. Never
	// negative; a ray starting inside the rectangle reports 0.
	ClosestTime fixed.Fp
}

// slabTimes computes the near/far crossing times for one axis of the slab
// test. A zero direction component means the ray runs parallel to this
// axis's slab: the axis either rules out any intersection (origin outside
// the slab) or contributes no constraint at all, reported as the
// (MinFp, MaxFp) sentinel pair. No division by zero can occur.
func slabTimes(origin, dir, lo, hi fixed.Fp) (near, far fixed.Fp, ok bool) {
	switch {
	case dir > 0:
		inv := dir.Inv()
		return (lo - origin).Mul(inv), (hi - origin).Mul(inv), true
	case dir < 0:
		inv := dir.Inv()
		return (hi - origin).Mul(inv), (lo - origin).Mul(inv), true
	default:
		if origin < lo || origin > hi {
			return 0, 0, false
		}
		return fixed.MinFp, fixed.MaxFp, true
	}
}

// RayVsRect casts a ray from origin along dir against target and reports
// the first intersection. The direction need not be normalized; its
// magnitude defines the time scale, with ClosestTime == 1 meaning the full
// direction vector was traveled. The ray itself is unbounded: entry times
// beyond 1 are still reported, and the swept wrappers are the ones that
// restrict results to a single tick.
//
// A zero direction is degenerate and never intersects. When both axes
// enter at exactly the same time (a perfect corner hit) the x-axis normal
// wins; this tie-break is deliberate and pinned by tests.
func RayVsRect(origin, dir geom.Vec, target geom.Rect) (Result, bool) {
	if dir.IsZero() {
		return Result{}, false
	}

	min, max := target.Min(), target.Max()

	nearX, farX, ok := slabTimes(origin.X, dir.X, min.X, max.X)
	if !ok {
		return Result{}, false
	}
	nearY, farY, ok := slabTimes(origin.Y, dir.Y, min.Y, max.Y)
	if !ok {
		return Result{}, false
	}

	entry := fixed.Max(nearX, nearY)
	exit := fixed.Min(farX, farY)

	// Entry strictly after exit means the ray misses; an exact corner
	// graze (entry == exit) counts as contact. A rectangle entirely
	// behind the origin never intersects.
	if entry > exit || exit < 0 {
		return Result{}, false
	}

	// A ray starting inside reports contact at its own origin.
	closest := fixed.Max(entry, fixed.Zero)

	var normal geom.Vec
	if nearX >= nearY {
		if dir.X > 0 {
			normal = geom.NegUnitX
		} else {
			normal = geom.UnitX
		}
	} else {
		if dir.Y > 0 {
			normal = geom.NegUnitY
		} else {
			normal = geom.UnitY
		}
	}

	return Result{
		ContactPoint:  origin.Add(dir.Scale(closest)),
		ContactNormal: normal,
		ClosestTime:   closest,
	}, true
}

// SweepPoint reduces a moving rectangle to a point: the target is expanded
// by the mover's half-extents (Minkowski sum) and the mover's center is
// ray-cast against the expanded rectangle. Only contacts within this
// tick's displacement are reported, i.e. ClosestTime in [0, 1).
func SweepPoint(center, halfExtents, velocity geom.Vec, target geom.Rect) (Result, bool) {
	res, ok := RayVsRect(center, velocity, target.Expand(halfExtents))
	if !ok || res.ClosestTime >= fixed.One {
		return Result{}, false
	}
	return res, true
}

// SweptRectVsRect reports whether and when a rectangle moving by delta
// this tick first touches the stationary target. ContactPoint is the
// moving rectangle's center at the moment of contact; ContactNormal is the
// face of target that was struck. A zero delta never collides, even when
// the rectangles already overlap.
func SweptRectVsRect(moving geom.Rect, delta geom.Vec, target geom.Rect) (Result, bool) {
	return SweepPoint(moving.Center(), moving.Size.Half(), delta, target)
}

// RayVsRectVerticalTime is the one-axis fast path for purely vertical
// motion: it reports the time at which a point falling by dy crosses the
// target's near horizontal face. The point must already be within the
// target's horizontal span; there is no bound on the result.
func RayVsRectVerticalTime(origin geom.Vec, dy fixed.Fp, target geom.Rect) (fixed.Fp, bool) {
	if dy.IsZero() {
		return 0, false
	}
	min, max := target.Min(), target.Max()
	if origin.X < min.X || origin.X > max.X {
		return 0, false
	}
	if dy > 0 {
		return (min.Y - origin.Y).Div(dy), true
	}
	return (max.Y - origin.Y).Div(dy), true
}

// RayVsRectHorizontalTime is the horizontal counterpart of
// RayVsRectVerticalTime.
func RayVsRectHorizontalTime(origin geom.Vec, dx fixed.Fp, target geom.Rect) (fixed.Fp, bool) {
	if dx.IsZero() {
		return 0, false
	}
	min, max := target.Min(), target.Max()
	if origin.Y < min.Y || origin.Y > max.Y {
		return 0, false
	}
	if dx > 0 {
		return (min.X - origin.X).Div(dx), true
	}
	return (max.X - origin.X).Div(dx), true
}

// SweptRectVerticalTime reports when a rectangle moving only vertically by
// dy this tick first touches target, restricted to [0, 1).
func SweptRectVerticalTime(moving geom.Rect, dy fixed.Fp, target geom.Rect) (fixed.Fp, bool) {
	expanded := target.Expand(moving.Size.Half())
	t, ok := RayVsRectVerticalTime(moving.Center(), dy, expanded)
	if !ok || t < 0 || t >= fixed.One {
		return 0, false
	}
	return t, true
}

// SweptRectHorizontalTime reports when a rectangle moving only
// horizontally by dx this tick first touches target, restricted to [0, 1).
func SweptRectHorizontalTime(moving geom.Rect, dx fixed.Fp, target geom.Rect) (fixed.Fp, bool) {
	expanded := target.Expand(moving.Size.Half())
	t, ok := RayVsRectHorizontalTime(moving.Center(), dx, expanded)
	if !ok || t < 0 || t >= fixed.One {
		return 0, false
	}
	return t, true
}
