package polyclip

import "testing"

func totalArea(paths Paths64) float64 {
	var sum float64
	for _, p := range paths {
		a := Area64(p)
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum
}

func TestUnion64OverlappingSquares(t *testing.T) {
	subject := Paths64{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := Paths64{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}

	result, err := Union64(append(append(Paths64{}, subject...), clip...), NonZero)
	if err != nil {
		t.Fatalf("Union64 failed: %v", err)
	}
	if len(result) == 0 {
		t.Fatal("expected a non-empty union result")
	}
	// Two 10x10 squares overlapping in a 5x5 corner: union area is
	// 100 + 100 - 25 = 175.
	if got := totalArea(result); got != 175 {
		t.Fatalf("expected union area 175, got %v", got)
	}
}

func TestIntersect64OverlappingSquares(t *testing.T) {
	subject := Paths64{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := Paths64{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}

	result, err := Intersect64(subject, clip, NonZero)
	if err != nil {
		t.Fatalf("Intersect64 failed: %v", err)
	}
	if len(result) == 0 {
		t.Fatal("expected a non-empty intersection result")
	}
	if got := totalArea(result); got != 25 {
		t.Fatalf("expected intersection area 25, got %v", got)
	}
}

func TestDifference64OverlappingSquares(t *testing.T) {
	subject := Paths64{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := Paths64{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}

	result, err := Difference64(subject, clip, NonZero)
	if err != nil {
		t.Fatalf("Difference64 failed: %v", err)
	}
	if got := totalArea(result); got != 75 {
		t.Fatalf("expected difference area 75, got %v", got)
	}
}

func TestXor64OverlappingSquares(t *testing.T) {
	subject := Paths64{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := Paths64{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}

	result, err := Xor64(subject, clip, NonZero)
	if err != nil {
		t.Fatalf("Xor64 failed: %v", err)
	}
	if got := totalArea(result); got != 150 {
		t.Fatalf("expected xor area 150, got %v", got)
	}
}

func TestIntersect64DisjointSquares(t *testing.T) {
	subject := Paths64{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := Paths64{{{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110}}}

	result, err := Intersect64(subject, clip, NonZero)
	if err != nil {
		t.Fatalf("Intersect64 failed: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result for disjoint squares, got %d paths", len(result))
	}
}

func TestClipper64HoleViaEvenOdd(t *testing.T) {
	outer := Path64{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}
	inner := Path64{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}

	c := NewClipper64()
	c.AddSubject(outer)
	c.AddSubject(inner)
	result, err := c.Execute(Union, EvenOdd)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// EvenOdd treats the nested square as a hole: the outer ring's area
	// is positive and the hole's negative, so the signed sum is 400 - 100 = 300.
	var got float64
	for _, p := range result {
		got += Area64(p)
	}
	if got != 300 {
		t.Fatalf("expected area 300 with a hole, got %v", got)
	}
}

func TestBooleanOp64InvalidClipType(t *testing.T) {
	_, err := BooleanOp64(None, NonZero, nil, nil)
	if err != ErrInvalidClipType {
		t.Fatalf("expected ErrInvalidClipType, got %v", err)
	}
}

func TestClipper64ExecuteTreeReportsHoles(t *testing.T) {
	outer := Path64{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20}}
	inner := Path64{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}

	c := NewClipper64()
	c.AddSubject(outer)
	c.AddSubject(inner)
	tree, _, err := c.ExecuteTree(Union, EvenOdd)
	if err != nil {
		t.Fatalf("ExecuteTree failed: %v", err)
	}
	if len(tree.Children) == 0 {
		t.Fatal("expected at least one top-level ring")
	}
	var foundHole bool
	for _, child := range tree.Children {
		for _, grandchild := range child.Children {
			if grandchild.IsHole() {
				foundHole = true
			}
		}
	}
	if !foundHole {
		t.Fatal("expected the nested square to be reported as a hole")
	}
}
