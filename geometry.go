package polyclip

// IntersectionType classifies the result of SegmentIntersection.
type IntersectionType uint8

const (
	NoIntersection IntersectionType = iota
	PointIntersection
	OverlapIntersection
)

// PolygonLocation classifies the result of PointInPolygon.
type PolygonLocation uint8

const (
	Outside PolygonLocation = iota
	Inside
	OnBoundary
)

// IsCollinear reports whether p1, p2, p3 lie on a common line, using
// the exact 128-bit cross product.
func IsCollinear(p1, p2, p3 Point64) bool {
	return CrossProduct128(p1, p2, p3).IsZero()
}

// isLeft reports whether point is not to the right of the directed
// line p1->p2 (on the line counts as left, matching WindingNumber's
// use of it for crossing tests).
func isLeft(p1, p2, point Point64) bool {
	return !CrossProduct128(p1, p2, point).IsNegative()
}

// SegmentIntersection finds where two closed segments meet, if at all.
// Collinear overlapping segments report OverlapIntersection and the
// overlap's first point; segments that merely touch at an endpoint, or
// cross properly, report PointIntersection.
func SegmentIntersection(seg1a, seg1b, seg2a, seg2b Point64) (Point64, IntersectionType, error) {
	if IsCollinear(seg1a, seg1b, seg2a) && IsCollinear(seg1a, seg1b, seg2b) {
		return collinearOverlap(seg1a, seg1b, seg2a, seg2b)
	}

	d1 := CrossProduct128(seg2a, seg2b, seg1a)
	d2 := CrossProduct128(seg2a, seg2b, seg1b)
	d3 := CrossProduct128(seg1a, seg1b, seg2a)
	d4 := CrossProduct128(seg1a, seg1b, seg2b)

	if d1.IsZero() && d2.IsZero() && d3.IsZero() && d4.IsZero() {
		return collinearOverlap(seg1a, seg1b, seg2a, seg2b)
	}

	if (d1.IsNegative() != d2.IsNegative()) && (d3.IsNegative() != d4.IsNegative()) {
		pt, err := segmentCrossingPoint(seg1a, seg1b, d1, d2)
		return pt, PointIntersection, err
	}

	if d1.IsZero() && isPointOnSegment(seg1a, seg2a, seg2b) {
		return seg1a, PointIntersection, nil
	}
	if d2.IsZero() && isPointOnSegment(seg1b, seg2a, seg2b) {
		return seg1b, PointIntersection, nil
	}
	if d3.IsZero() && isPointOnSegment(seg2a, seg1a, seg1b) {
		return seg2a, PointIntersection, nil
	}
	if d4.IsZero() && isPointOnSegment(seg2b, seg1a, seg1b) {
		return seg2b, PointIntersection, nil
	}

	return Point64{}, NoIntersection, nil
}

// segmentCrossingPoint resolves the proper-crossing case of
// SegmentIntersection. d1, d2 are the signed distances (as 128-bit
// cross products) of seg1a and seg1b from the line through seg2; the
// crossing point is their linear interpolation, rounded half-away-
// from-zero per spec.md §6. This is the one rounding step the CORE's
// exactness guarantee (spec.md §1 Non-goals) concedes.
func segmentCrossingPoint(seg1a, seg1b Point64, d1, d2 Int128) (Point64, error) {
	denom := d1.Sub(d2)
	if denom.IsZero() {
		return Point64{}, ErrInvalidInput
	}
	t := d1.ToFloat64() / denom.ToFloat64()
	x := float64(seg1a.X) + t*float64(seg1b.X-seg1a.X)
	y := float64(seg1a.Y) + t*float64(seg1b.Y-seg1a.Y)
	return Point64{X: roundHalfAwayFromZero(x), Y: roundHalfAwayFromZero(y)}, nil
}

// roundHalfAwayFromZero implements spec.md §6's rounding convention
// for intersection coordinates.
func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}

// collinearOverlap handles the case where all four endpoints lie on
// one line: it finds the overlapping sub-range (projecting onto
// whichever axis has the larger extent, for numerical stability) and
// reports its first point.
func collinearOverlap(seg1a, seg1b, seg2a, seg2b Point64) (Point64, IntersectionType, error) {
	dx1, dy1 := abs64(seg1b.X-seg1a.X), abs64(seg1b.Y-seg1a.Y)

	if dx1 >= dy1 {
		min1, max1 := minMax64(seg1a.X, seg1b.X)
		min2, max2 := minMax64(seg2a.X, seg2b.X)
		if max1 < min2 || max2 < min1 {
			return Point64{}, NoIntersection, nil
		}
		overlapMin, overlapMax := max64(min1, min2), min64(max1, max2)
		y := seg1a.Y
		if seg1b.X != seg1a.X {
			y = seg1a.Y + (seg1b.Y-seg1a.Y)*(overlapMin-seg1a.X)/(seg1b.X-seg1a.X)
		}
		kind := PointIntersection
		if overlapMin != overlapMax {
			kind = OverlapIntersection
		}
		return Point64{X: overlapMin, Y: y}, kind, nil
	}

	min1, max1 := minMax64(seg1a.Y, seg1b.Y)
	min2, max2 := minMax64(seg2a.Y, seg2b.Y)
	if max1 < min2 || max2 < min1 {
		return Point64{}, NoIntersection, nil
	}
	overlapMin, overlapMax := max64(min1, min2), min64(max1, max2)
	x := seg1a.X
	if seg1b.Y != seg1a.Y {
		x = seg1a.X + (seg1b.X-seg1a.X)*(overlapMin-seg1a.Y)/(seg1b.Y-seg1a.Y)
	}
	kind := PointIntersection
	if overlapMin != overlapMax {
		kind = OverlapIntersection
	}
	return Point64{X: x, Y: overlapMin}, kind, nil
}

func isPointOnSegment(point, segA, segB Point64) bool {
	if !IsCollinear(segA, segB, point) {
		return false
	}
	return point.X >= min64(segA.X, segB.X) && point.X <= max64(segA.X, segB.X) &&
		point.Y >= min64(segA.Y, segB.Y) && point.Y <= max64(segA.Y, segB.Y)
}

// PointBetween reports whether pt lies on the segment [corner1, corner2]
// under the assumption the three points are already known collinear.
// spec.md §9 flags the reference implementation's comparison of pt.X
// against corner1.X twice as an apparent bug; this is the corrected
// reading, comparing each axis of pt against both corners.
func PointBetween(pt, corner1, corner2 Point64) bool {
	return pt.X >= min64(corner1.X, corner2.X) && pt.X <= max64(corner1.X, corner2.X) &&
		pt.Y >= min64(corner1.Y, corner2.Y) && pt.Y <= max64(corner1.Y, corner2.Y)
}

// PointInPolygon classifies point against polygon under fillRule.
func PointInPolygon(point Point64, polygon Path64, fillRule FillRule) PolygonLocation {
	if len(polygon) < 3 {
		return Outside
	}
	for i := range polygon {
		j := (i + 1) % len(polygon)
		if isPointOnSegment(point, polygon[i], polygon[j]) {
			return OnBoundary
		}
	}

	wn := WindingNumber(point, polygon)
	switch fillRule {
	case EvenOdd:
		if wn%2 != 0 {
			return Inside
		}
	case NonZero:
		if wn != 0 {
			return Inside
		}
	case Positive:
		if wn > 0 {
			return Inside
		}
	case Negative:
		if wn < 0 {
			return Inside
		}
	}
	return Outside
}

// WindingNumber computes the winding number of point with respect to
// polygon using the standard crossing-number formulation, but with
// isLeft resolved by the exact 128-bit cross product.
func WindingNumber(point Point64, polygon Path64) int {
	if len(polygon) < 3 {
		return 0
	}
	wn := 0
	for i := range polygon {
		j := (i + 1) % len(polygon)
		if polygon[i].Y <= point.Y {
			if polygon[j].Y > point.Y && isLeft(polygon[i], polygon[j], point) {
				wn++
			}
		} else if polygon[j].Y <= point.Y && !isLeft(polygon[i], polygon[j], point) {
			wn--
		}
	}
	return wn
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minMax64(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}
	return b, a
}
