package polyclip

import (
	"math"
	"testing"
)

func TestInt128AddSub(t *testing.T) {
	a := NewInt128(1<<62 + 1)
	b := NewInt128(1<<62 + 2)
	sum := a.Add(b)
	if got := sum.ToFloat64(); got != float64(1<<62+1)+float64(1<<62+2) {
		t.Fatalf("Add: got %v", got)
	}
	diff := a.Sub(b)
	if diff.Cmp(NewInt128(-1)) != 0 {
		t.Fatalf("Sub: expected -1, got Hi=%d Lo=%d", diff.Hi, diff.Lo)
	}
}

func TestInt128Mul64Overflow(t *testing.T) {
	// math.MaxInt64 * math.MaxInt64 overflows int64 by a wide margin;
	// 128 bits must carry the full product.
	big := NewInt128(math.MaxInt64).Mul64(math.MaxInt64)
	if big.IsNegative() {
		t.Fatalf("expected positive product, got negative")
	}
	if big.IsZero() {
		t.Fatalf("expected nonzero product")
	}
}

func TestInt128Mul64MinInt64(t *testing.T) {
	got := NewInt128(2).Mul64(math.MinInt64)
	want := NewInt128(math.MinInt64).Mul64(2)
	if got.Cmp(want) != 0 {
		t.Fatalf("Mul64(MinInt64) asymmetric: %+v vs %+v", got, want)
	}
}

func TestInt128Sign(t *testing.T) {
	if NewInt128(5).Sign() != 1 {
		t.Error("expected positive sign")
	}
	if NewInt128(-5).Sign() != -1 {
		t.Error("expected negative sign")
	}
	if NewInt128(0).Sign() != 0 {
		t.Error("expected zero sign")
	}
}

func TestCrossProduct128(t *testing.T) {
	// A left turn (CCW) must be positive.
	p1 := Point64{X: 0, Y: 0}
	p2 := Point64{X: 10, Y: 0}
	p3 := Point64{X: 10, Y: 10}
	if CrossProduct128(p1, p2, p3).IsNegative() {
		t.Fatal("expected non-negative cross product for a left turn")
	}

	// Collinear points must cross to exactly zero.
	p4 := Point64{X: 20, Y: 0}
	if !CrossProduct128(p1, p2, p4).IsZero() {
		t.Fatal("expected zero cross product for collinear points")
	}
}

func TestArea128Square(t *testing.T) {
	square := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if got := Area64(square); got != 100 && got != -100 {
		t.Fatalf("expected area magnitude 100, got %v", got)
	}
}

func TestArea128LargeCoordinatesNoOverflow(t *testing.T) {
	const big = 1 << 40
	square := Path64{{X: -big, Y: -big}, {X: big, Y: -big}, {X: big, Y: big}, {X: -big, Y: big}}
	area := Area128(square)
	if area.IsZero() {
		t.Fatal("expected nonzero area for a large square")
	}
}
