package polyclip

import "testing"

func TestSegmentIntersectionCrossing(t *testing.T) {
	pt, kind, err := SegmentIntersection(
		Point64{X: 0, Y: 0}, Point64{X: 10, Y: 10},
		Point64{X: 0, Y: 10}, Point64{X: 10, Y: 0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != PointIntersection {
		t.Fatalf("expected PointIntersection, got %v", kind)
	}
	if pt != (Point64{X: 5, Y: 5}) {
		t.Fatalf("expected (5,5), got %v", pt)
	}
}

func TestSegmentIntersectionParallelNoOverlap(t *testing.T) {
	_, kind, err := SegmentIntersection(
		Point64{X: 0, Y: 0}, Point64{X: 10, Y: 0},
		Point64{X: 0, Y: 5}, Point64{X: 10, Y: 5},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != NoIntersection {
		t.Fatalf("expected NoIntersection, got %v", kind)
	}
}

func TestSegmentIntersectionCollinearOverlap(t *testing.T) {
	_, kind, err := SegmentIntersection(
		Point64{X: 0, Y: 0}, Point64{X: 10, Y: 0},
		Point64{X: 5, Y: 0}, Point64{X: 15, Y: 0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != OverlapIntersection {
		t.Fatalf("expected OverlapIntersection, got %v", kind)
	}
}

func TestSegmentIntersectionTouchingEndpoint(t *testing.T) {
	pt, kind, err := SegmentIntersection(
		Point64{X: 0, Y: 0}, Point64{X: 10, Y: 0},
		Point64{X: 10, Y: 0}, Point64{X: 10, Y: 10},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != PointIntersection {
		t.Fatalf("expected PointIntersection, got %v", kind)
	}
	if pt != (Point64{X: 10, Y: 0}) {
		t.Fatalf("expected (10,0), got %v", pt)
	}
}

func TestPointInPolygonSquare(t *testing.T) {
	square := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	if got := PointInPolygon(Point64{X: 5, Y: 5}, square, NonZero); got != Inside {
		t.Errorf("expected center to be Inside, got %v", got)
	}
	if got := PointInPolygon(Point64{X: 20, Y: 20}, square, NonZero); got != Outside {
		t.Errorf("expected far point to be Outside, got %v", got)
	}
	if got := PointInPolygon(Point64{X: 0, Y: 5}, square, NonZero); got != OnBoundary {
		t.Errorf("expected edge point to be OnBoundary, got %v", got)
	}
}

func TestWindingNumberOppositeOrientations(t *testing.T) {
	ccw := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	cw := Path64{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	center := Point64{X: 5, Y: 5}

	wnCCW := WindingNumber(center, ccw)
	wnCW := WindingNumber(center, cw)
	if wnCCW == 0 || wnCW == 0 {
		t.Fatalf("expected nonzero winding number inside a simple square, got ccw=%d cw=%d", wnCCW, wnCW)
	}
	if (wnCCW > 0) == (wnCW > 0) {
		t.Fatalf("expected opposite-orientation squares to wind oppositely, got ccw=%d cw=%d", wnCCW, wnCW)
	}
	if wn := WindingNumber(Point64{X: 50, Y: 50}, ccw); wn != 0 {
		t.Fatalf("expected winding number 0 outside the square, got %d", wn)
	}
}

func TestIsCollinear(t *testing.T) {
	if !IsCollinear(Point64{X: 0, Y: 0}, Point64{X: 5, Y: 5}, Point64{X: 10, Y: 10}) {
		t.Error("expected points on a diagonal to be collinear")
	}
	if IsCollinear(Point64{X: 0, Y: 0}, Point64{X: 5, Y: 5}, Point64{X: 10, Y: 11}) {
		t.Error("expected a bent path not to be collinear")
	}
}

func TestPointBetween(t *testing.T) {
	if !PointBetween(Point64{X: 5, Y: 0}, Point64{X: 0, Y: 0}, Point64{X: 10, Y: 0}) {
		t.Error("expected midpoint to be between corners")
	}
	if PointBetween(Point64{X: 15, Y: 0}, Point64{X: 0, Y: 0}, Point64{X: 10, Y: 0}) {
		t.Error("expected point beyond the segment not to be between corners")
	}
}
