// Package geom provides the fixed-point vector and rectangle value types
// shared by the collision routines and the playground simulation. All types
// are plain immutable values; methods return fresh copies.
package geom

import (
	"fmt"

	"github.com/vovakirdan/impactbox/internal/fixed"
)

// Vec is a 2D fixed-point vector. Depending on context it is a point, a
// direction or a per-tick velocity.
type Vec struct {
	X, Y fixed.Fp
}

// V is shorthand for constructing a vector from integer coordinates.
func V(x, y int) Vec {
	return Vec{X: fixed.FromInt(x), Y: fixed.FromInt(y)}
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*s with both components multiplied by the scalar.
func (v Vec) Scale(s fixed.Fp) Vec {
	return Vec{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// ScaleInt returns v*n for a plain integer n.
func (v Vec) ScaleInt(n int) Vec {
	return Vec{X: v.X.MulInt(n), Y: v.Y.MulInt(n)}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Half returns v with both components halved.
func (v Vec) Half() Vec {
	return Vec{X: v.X.DivInt(2), Y: v.Y.DivInt(2)}
}

// IsZero reports whether both components are exactly zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) String() string {
	return fmt.Sprintf("(%s, %s)", v.X, v.Y)
}

// Unit normals for the four axis-aligned faces.
var (
	UnitX    = Vec{X: fixed.One}
	UnitY    = Vec{Y: fixed.One}
	NegUnitX = Vec{X: -fixed.One}
	NegUnitY = Vec{Y: -fixed.One}
)

// Rect is an axis-aligned rectangle described by its minimum corner and
// size. Size must be non-negative; constructing a degenerate rectangle is
// the caller's mistake, not a recoverable condition.
type Rect struct {
	Pos  Vec // minimum corner
	Size Vec
}

// R is shorthand for constructing a rectangle from integer coordinates.
func R(x, y, w, h int) Rect {
	return Rect{Pos: V(x, y), Size: V(w, h)}
}

// Min returns the minimum corner.
func (r Rect) Min() Vec {
	return r.Pos
}

// Max returns the maximum corner.
func (r Rect) Max() Vec {
	return r.Pos.Add(r.Size)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return r.Pos.Add(r.Size.Half())
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{Pos: r.Pos.Add(d), Size: r.Size}
}

// Expand grows the rectangle by e on every side: the Minkowski sum of the
// rectangle with a box of half-extents e. The result's minimum corner moves
// by -e and its size grows by 2e.
func (r Rect) Expand(e Vec) Rect {
	return Rect{
		Pos:  r.Pos.Sub(e),
		Size: r.Size.Add(e).Add(e),
	}
}

// Contains reports whether p lies inside the rectangle, edges inclusive.
func (r Rect) Contains(p Vec) bool {
	max := r.Max()
	return p.X >= r.Pos.X && p.X <= max.X &&
		p.Y >= r.Pos.Y && p.Y <= max.Y
}

// ContainsStrict reports whether p lies strictly inside the rectangle,
// edges exclusive.
func (r Rect) ContainsStrict(p Vec) bool {
	max := r.Max()
	return p.X > r.Pos.X && p.X < max.X &&
		p.Y > r.Pos.Y && p.Y < max.Y
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return r.Pos.X < oMax.X && o.Pos.X < rMax.X &&
		r.Pos.Y < oMax.Y && o.Pos.Y < rMax.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s +%s]", r.Pos, r.Size)
}
