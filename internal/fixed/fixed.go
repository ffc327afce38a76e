// Package fixed provides a signed Q16.16 fixed-point scalar used by all
// collision math. Every operation is defined purely over integers so that
// results are bit-identical across platforms, which is what makes replays
// and lockstep simulation possible.
package fixed

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fp is a signed Q16.16 fixed-point number: 16 integer bits, 16 fractional
// bits, stored in an int32. Addition, subtraction and comparison work with
// the ordinary operators; use Mul and Div for products and quotients.
type Fp int32

// Shift is the number of fractional bits.
const Shift = 32 - 16

// Common constants. MinFp and MaxFp double as the -inf/+inf sentinels for
// axes that impose no constraint during slab testing.
const (
	Zero  Fp = 0
	One   Fp = 1 << Shift
	Half  Fp = 1 << (Shift - 1)
	MinFp Fp = math.MinInt32
	MaxFp Fp = math.MaxInt32
)

// FromInt converts an integer to fixed-point.
func FromInt(v int) Fp {
	return Fp(v << Shift)
}

// FromFloat converts a float64 to the nearest representable fixed-point
// value. Intended for boundary conversion only (config parsing, display);
// simulation code must stay in Fp.
func FromFloat(v float64) Fp {
	return Fp(math.Round(v * float64(One)))
}

// FromRaw reinterprets a raw Q16.16 bit pattern as an Fp. Used to pin
// exact expected values in tests and to round-trip snapshots.
func FromRaw(raw int32) Fp {
	return Fp(raw)
}

// Raw returns the underlying Q16.16 bit pattern.
func (f Fp) Raw() int32 {
	return int32(f)
}

// Mul returns f*g, computed through an int64 intermediate so no precision
// is lost before the final shift. The product rounds toward negative
// infinity (arithmetic shift); Div rounds toward zero. Both rules are part
// of the determinism contract and pinned by tests.
func (f Fp) Mul(g Fp) Fp {
	return Fp((int64(f) * int64(g)) >> Shift)
}

// Div returns f/g truncated toward zero. Division by zero returns Zero by
// definition; the collision routines branch before ever reaching it.
func (f Fp) Div(g Fp) Fp {
	if g == 0 {
		return Zero
	}
	return Fp((int64(f) << Shift) / int64(g))
}

// MulInt returns f*n for a plain integer n.
func (f Fp) MulInt(n int) Fp {
	return Fp(int64(f) * int64(n))
}

// DivInt returns f/n for a plain integer n, truncated toward zero.
func (f Fp) DivInt(n int) Fp {
	if n == 0 {
		return Zero
	}
	return Fp(int64(f) / int64(n))
}

// Inv returns 1/f truncated toward zero.
func (f Fp) Inv() Fp {
	return One.Div(f)
}

// Abs returns the absolute value.
func (f Fp) Abs() Fp {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0 or 1.
func (f Fp) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether f is exactly zero.
func (f Fp) IsZero() bool {
	return f == 0
}

// Floor returns the largest integer value not greater than f.
func (f Fp) Floor() int {
	return int(f >> Shift)
}

// Round returns the nearest integer value, halves away from zero.
func (f Fp) Round() int {
	if f >= 0 {
		return int((f + Half) >> Shift)
	}
	return -int((-f + Half) >> Shift)
}

// Float converts to float64. Display/debug only.
func (f Fp) Float() float64 {
	return float64(f) / float64(One)
}

// Min returns the smaller of a and b.
func Min(a, b Fp) Fp {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fp) Fp {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi Fp) Fp {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Parse converts a decimal string like "3", "-1.25" or "0.5" to fixed-point
// using integer arithmetic only, so parsing is as deterministic as the rest
// of the package. Fractional digits beyond what Q16.16 can hold are rounded
// to the nearest representable value.
func Parse(s string) (Fp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("fixed: empty value")
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("fixed: invalid value %q", s)
	}

	var whole int64
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("fixed: invalid value %q: %w", s, err)
		}
		whole = v
	}

	raw := whole << Shift

	if fracPart != "" {
		// Ten digits are more than enough to resolve 1/65536.
		if len(fracPart) > 10 {
			fracPart = fracPart[:10]
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("fixed: invalid value %q: %w", s, err)
		}
		den := int64(1)
		for range len(fracPart) {
			den *= 10
		}
		raw += ((frac << Shift) + den/2) / den
	}

	if neg {
		raw = -raw
	}
	if raw > math.MaxInt32 || raw < math.MinInt32 {
		return 0, fmt.Errorf("fixed: value %q out of range", s)
	}
	return Fp(raw), nil
}

// String formats f as a decimal with up to five fractional digits,
// trailing zeros trimmed.
func (f Fp) String() string {
	raw := int64(f)
	sign := ""
	if raw < 0 {
		sign = "-"
		raw = -raw
	}
	whole := raw >> Shift
	frac := raw & (1<<Shift - 1)
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	// Five decimal digits resolve every Q16.16 step (1/65536 ~ 0.0000153).
	dec := (frac*100000 + int64(Half)) >> Shift
	s := fmt.Sprintf("%s%d.%05d", sign, whole, dec)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
