package polyclip

import "testing"

func TestPolyPath64Flatten(t *testing.T) {
	root := &PolyPath64{}
	outer := root.addChild(Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, false)
	outer.addChild(Path64{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, true)

	flat := root.Flatten()
	if len(flat) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(flat))
	}
}

func TestPolyPath64IsHole(t *testing.T) {
	root := &PolyPath64{}
	outer := root.addChild(Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, false)
	hole := outer.addChild(Path64{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, true)

	if outer.IsHole() {
		t.Error("expected the top-level ring not to be a hole")
	}
	if !hole.IsHole() {
		t.Error("expected the nested ring to be a hole")
	}
	if hole.Parent != outer {
		t.Error("expected the hole's parent to be the outer ring")
	}
}
