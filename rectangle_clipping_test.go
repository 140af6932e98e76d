package polyclip

import "testing"

func TestRectClip64FullyInside(t *testing.T) {
	rect := Path64{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	square := Path64{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 10, Y: 20}}

	result, err := RectClip64(rect, Paths64{square})
	if err != nil {
		t.Fatalf("RectClip64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 path, got %d", len(result))
	}
	if got := totalArea(result); got != 100 {
		t.Fatalf("expected unchanged area 100, got %v", got)
	}
}

func TestRectClip64PartialOverlap(t *testing.T) {
	rect := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	square := Path64{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}

	result, err := RectClip64(rect, Paths64{square})
	if err != nil {
		t.Fatalf("RectClip64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 path, got %d", len(result))
	}
	if got := totalArea(result); got != 25 {
		t.Fatalf("expected clipped area 25, got %v", got)
	}
}

func TestRectClip64Disjoint(t *testing.T) {
	rect := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	square := Path64{{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 110, Y: 110}, {X: 100, Y: 110}}

	result, err := RectClip64(rect, Paths64{square})
	if err != nil {
		t.Fatalf("RectClip64 failed: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d paths", len(result))
	}
}

func TestRectClip64InvalidRectangle(t *testing.T) {
	_, err := RectClip64(Path64{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil)
	if err != ErrInvalidRectangle {
		t.Fatalf("expected ErrInvalidRectangle, got %v", err)
	}
}

func TestRectClipLines64PartialOverlap(t *testing.T) {
	rect := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	line := Path64{{X: -5, Y: 5}, {X: 15, Y: 5}}

	result, err := RectClipLines64(rect, Paths64{line})
	if err != nil {
		t.Fatalf("RectClipLines64 failed: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 clipped segment, got %d", len(result))
	}
	got := result[0]
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0] != (Point64{X: 0, Y: 5}) || got[1] != (Point64{X: 10, Y: 5}) {
		t.Fatalf("expected clipped segment (0,5)-(10,5), got %v", got)
	}
}

func TestRectClipLines64EntirelyOutside(t *testing.T) {
	rect := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	line := Path64{{X: 100, Y: 100}, {X: 200, Y: 200}}

	result, err := RectClipLines64(rect, Paths64{line})
	if err != nil {
		t.Fatalf("RectClipLines64 failed: %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected no surviving segments, got %d", len(result))
	}
}

func TestRectClipLines64InvalidRectangle(t *testing.T) {
	_, err := RectClipLines64(Path64{{X: 0, Y: 0}}, nil)
	if err != ErrInvalidRectangle {
		t.Fatalf("expected ErrInvalidRectangle, got %v", err)
	}
}
