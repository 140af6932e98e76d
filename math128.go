package polyclip

import (
	"math"
	"math/bits"
)

// Int128 is a signed 128-bit integer, two's complement, Hi:Lo.
//
// Cross products and areas over full-range int64 coordinates can
// overflow 64 bits; spec.md §6 requires 128-bit-wide intermediates for
// every such predicate, so every geometric sign test in this package
// routes through Int128 rather than plain int64 or float64 arithmetic.
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 sign-extends a 64-bit integer into an Int128.
func NewInt128(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

func (i Int128) IsNegative() bool { return i.Hi < 0 }
func (i Int128) IsZero() bool     { return i.Hi == 0 && i.Lo == 0 }

// Sign returns -1, 0, or 1.
func (i Int128) Sign() int {
	if i.IsZero() {
		return 0
	}
	if i.IsNegative() {
		return -1
	}
	return 1
}

// Negate returns -i. Negating MinInt128 wraps back to MinInt128, as
// two's complement negation always does; no caller in this package
// multiplies coordinates wide enough to reach that corner.
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

func (i Int128) Add(o Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, o.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(o.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

func (i Int128) Sub(o Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, o.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(o.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp returns -1, 0, or 1 for i <, ==, > o.
func (i Int128) Cmp(o Int128) int {
	if i.Hi != o.Hi {
		if i.Hi < o.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == o.Lo {
		return 0
	}
	if i.Lo < o.Lo {
		return -1
	}
	return 1
}

// ToFloat64 converts with possible precision loss above 2^53.
func (i Int128) ToFloat64() float64 {
	if i.Hi == 0 {
		return float64(i.Lo)
	}
	if i.Hi == -1 && i.Lo >= 1<<63 {
		return float64(int64(i.Lo))
	}
	const two64 = 18446744073709551616.0
	return float64(i.Hi)*two64 + float64(i.Lo)
}

// Mul64 returns i*v as an Int128, discarding any overflow beyond 128
// bits (which never occurs for products of two int64 values, the only
// use this package makes of it).
func (i Int128) Mul64(v int64) Int128 {
	if v == 0 {
		return Int128{}
	}
	if v == math.MinInt64 {
		// i * MinInt64 == -(i*MaxInt64 + i); avoids negating MinInt64.
		return i.Mul64(math.MaxInt64).Add(i).Negate()
	}

	negative := i.IsNegative() != (v < 0)
	a := i
	if a.IsNegative() {
		a = a.Negate()
	}
	av := v
	if av < 0 {
		av = -av
	}

	loHi, loLo := bits.Mul64(a.Lo, uint64(av))
	_, hiLo := bits.Mul64(uint64(a.Hi), uint64(av))
	hi, _ := bits.Add64(loHi, hiLo, 0)

	result := Int128{Hi: int64(hi), Lo: loLo}
	if negative {
		result = result.Negate()
	}
	return result
}

// CrossProduct128 computes the Z-component of (p2-p1) x (p3-p1) using
// 128-bit intermediates: positive when p1->p2->p3 turns left (CCW),
// negative when it turns right, zero when collinear.
func CrossProduct128(p1, p2, p3 Point64) Int128 {
	v1x, v1y := p2.X-p1.X, p2.Y-p1.Y
	v2x, v2y := p3.X-p1.X, p3.Y-p1.Y
	return NewInt128(v1x).Mul64(v2y).Sub(NewInt128(v1y).Mul64(v2x))
}

// Area128 computes twice the signed area of a closed ring using the
// shoelace formula with 128-bit accumulation.
func Area128(path Path64) Int128 {
	var area Int128
	n := len(path)
	if n < 3 {
		return area
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area = area.Add(NewInt128(path[i].X).Mul64(path[j].Y).Sub(NewInt128(path[j].X).Mul64(path[i].Y)))
	}
	return area
}

// Area64 returns the signed area as a float64 (half of Area128),
// positive for a clockwise ring under this package's Y-down, CW-outer
// convention.
func Area64(path Path64) float64 {
	return Area128(path).ToFloat64() / 2
}
