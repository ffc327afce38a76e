// Package sim runs the deterministic playground: a box bouncing through an
// arena of static blocks, with every movement decision made by swept
// collision queries. Reflection of the velocity lives here, in the
// consumer, so the collision package stays a pure query library.
package sim

import (
	"github.com/vovakirdan/impactbox/internal/collision"
	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
	"github.com/vovakirdan/impactbox/internal/scene"
)

// contactBackoff is subtracted from every contact time so the box stops a
// hair short of the surface instead of exactly on it. Resting on the
// boundary would make the next tick's sweep report a phantom t=0 graze
// while moving away. Roughly 0.001 of a tick; far below one terminal cell.
const contactBackoff = fixed.Fp(64)

// World is the playground state. It is not safe for concurrent use; the
// platform layer drives it from a single tick loop.
type World struct {
	sc        scene.Scene
	obstacles []geom.Rect // four walls first, then scene blocks
	box       geom.Rect
	vel       geom.Vec
	tick      int
	impacts   int
	lastHit   geom.Vec // normal of the most recent contact, zero if none yet
}

// New builds a world from a scene. The arena is fenced with four wall
// rectangles just outside its bounds so the box can never escape.
func New(sc scene.Scene) *World {
	w := &World{sc: sc}
	w.Reset()
	return w
}

// Reset restores the world to the scene's initial state.
func (w *World) Reset() {
	sc := w.sc
	w.obstacles = w.obstacles[:0]
	w.obstacles = append(w.obstacles,
		geom.R(-1, -1, sc.ArenaW+2, 1),        // top
		geom.R(-1, sc.ArenaH, sc.ArenaW+2, 1), // bottom
		geom.R(-1, 0, 1, sc.ArenaH),           // left
		geom.R(sc.ArenaW, 0, 1, sc.ArenaH),    // right
	)
	w.obstacles = append(w.obstacles, sc.Blocks...)
	w.box = sc.Box
	w.vel = sc.Velocity
	w.tick = 0
	w.impacts = 0
	w.lastHit = geom.Vec{}
}

// Step advances the simulation by one tick: sweep the box against every
// obstacle, advance to the earliest contact (or the full displacement) and
// reflect the velocity across the struck face.
func (w *World) Step() {
	w.tick++

	if w.vel.IsZero() {
		return
	}

	res, hit := w.earliestHit(w.vel)
	if !hit {
		w.box = w.box.Translate(w.vel)
		return
	}

	t := fixed.Max(res.ClosestTime-contactBackoff, fixed.Zero)
	w.box = w.box.Translate(w.vel.Scale(t))
	w.vel = reflect(w.vel, res.ContactNormal)
	w.impacts++
	w.lastHit = res.ContactNormal
}

// earliestHit sweeps the box along delta against all obstacles and returns
// the hit with the smallest contact time. Obstacle order breaks exact
// ties, which keeps the result deterministic.
func (w *World) earliestHit(delta geom.Vec) (collision.Result, bool) {
	var best collision.Result
	found := false
	for _, obstacle := range w.obstacles {
		res, ok := collision.SweptRectVsRect(w.box, delta, obstacle)
		if !ok {
			continue
		}
		if !found || res.ClosestTime < best.ClosestTime {
			best = res
			found = true
		}
	}
	return best, found
}

// reflect mirrors v across an axis-aligned contact normal.
func reflect(v, normal geom.Vec) geom.Vec {
	if normal.X != 0 {
		v.X = -v.X
	}
	if normal.Y != 0 {
		v.Y = -v.Y
	}
	return v
}

// Nudge adds dv to the box's velocity. Used by the interactive playground
// to steer the box.
func (w *World) Nudge(dv geom.Vec) {
	w.vel = w.vel.Add(dv)
}

// Box returns the box rectangle.
func (w *World) Box() geom.Rect {
	return w.box
}

// Velocity returns the current per-tick velocity.
func (w *World) Velocity() geom.Vec {
	return w.vel
}

// Blocks returns the scene's static blocks (walls excluded).
func (w *World) Blocks() []geom.Rect {
	return w.sc.Blocks
}

// ArenaSize returns the arena dimensions in cells.
func (w *World) ArenaSize() (int, int) {
	return w.sc.ArenaW, w.sc.ArenaH
}

// Tick returns the number of steps taken since the last reset.
func (w *World) Tick() int {
	return w.tick
}

// Impacts returns the number of contacts since the last reset.
func (w *World) Impacts() int {
	return w.impacts
}

// LastHitNormal returns the contact normal of the most recent impact, or
// the zero vector if nothing has been hit yet.
func (w *World) LastHitNormal() geom.Vec {
	return w.lastHit
}

// Scene returns the scene the world was built from.
func (w *World) Scene() scene.Scene {
	return w.sc
}
