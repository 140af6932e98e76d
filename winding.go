package polyclip

// setWindCountClosed computes e.WindCount (this polygon's winding
// number immediately right of e) and e.WindCount2 (the other
// polygon's winding number there), per spec.md §4.4.1.
func (en *engine) setWindCountClosed(e *Active) {
	prev := e.PrevInAEL
	for prev != nil && (prev.isOpen() || prev.LocalMin.PolyType != e.LocalMin.PolyType) {
		prev = prev.PrevInAEL
	}

	switch {
	case prev == nil:
		e.WindCount = e.WindDx
	case en.fillRule == EvenOdd:
		e.WindCount = e.WindDx
	case prev.WindCount*prev.WindDx < 0:
		if abs64(int64(prev.WindCount)) > 1 {
			if prev.WindDx*e.WindDx < 0 {
				e.WindCount = prev.WindCount
			} else {
				e.WindCount = prev.WindCount + e.WindDx
			}
		} else {
			e.WindCount = e.WindDx
		}
	default:
		if prev.WindDx*e.WindDx < 0 {
			e.WindCount = prev.WindCount
		} else {
			e.WindCount = prev.WindCount + e.WindDx
		}
	}

	e.WindCount2 = 0
	for p := e.PrevInAEL; p != nil; p = p.PrevInAEL {
		if p.LocalMin.PolyType != e.LocalMin.PolyType {
			e.WindCount2 += p.WindDx
		}
	}
}

// setWindCountOpen computes winding counts for an edge belonging to an
// open (polyline) path, per spec.md §4.4.2: both counts are accumulated
// by walking the whole AEL from the left, since an open path's bound
// has no "other side" of its own to pair against.
func (en *engine) setWindCountOpen(e *Active) {
	cnt1, cnt2 := 0, 0
	for p := en.aelHead; p != e; p = p.NextInAEL {
		if p.LocalMin.PolyType == Clip {
			if en.fillRule == EvenOdd {
				cnt2 ^= 1
			} else {
				cnt2 += p.WindDx
			}
		} else if !p.isOpen() {
			if en.fillRule == EvenOdd {
				cnt1 ^= 1
			} else {
				cnt1 += p.WindDx
			}
		}
	}
	e.WindCount = cnt1
	e.WindCount2 = cnt2
}

// isContributingClosed reports whether a closed-path edge, given its
// current winding counts, bounds a region the active ClipType/FillRule
// combination keeps — spec.md §4.4.3's contribution table.
func (en *engine) isContributingClosed(e *Active) bool {
	switch en.fillRule {
	case Positive:
		if e.WindCount != 1 {
			return false
		}
	case Negative:
		if e.WindCount != -1 {
			return false
		}
	case NonZero:
		if abs64(int64(e.WindCount)) != 1 {
			return false
		}
	}

	switch en.clipType {
	case Intersection:
		switch en.fillRule {
		case Positive:
			return e.WindCount2 > 0
		case Negative:
			return e.WindCount2 < 0
		default:
			return e.WindCount2 != 0
		}
	case Union:
		switch en.fillRule {
		case Positive:
			return e.WindCount2 <= 0
		case Negative:
			return e.WindCount2 >= 0
		default:
			return e.WindCount2 == 0
		}
	case Difference:
		var result bool
		switch en.fillRule {
		case Positive:
			result = e.WindCount2 <= 0
		case Negative:
			result = e.WindCount2 >= 0
		default:
			result = e.WindCount2 == 0
		}
		if e.LocalMin.PolyType == Subject {
			return result
		}
		return !result
	case Xor:
		return true
	default:
		return false
	}
}

// isContributingOpen is isContributingClosed's counterpart for a point
// on an open path (spec.md §4.4.3): under Intersection an open path
// contributes where it lies inside the clip; under Union, where it lies
// outside both subject and clip; under Difference and Xor, where it
// lies outside the clip.
func (en *engine) isContributingOpen(e *Active) bool {
	var inSubj, inClip bool
	switch en.fillRule {
	case Positive:
		inSubj = e.WindCount > 0
		inClip = e.WindCount2 > 0
	case Negative:
		inSubj = e.WindCount < 0
		inClip = e.WindCount2 < 0
	default:
		inSubj = e.WindCount != 0
		inClip = e.WindCount2 != 0
	}

	switch en.clipType {
	case Intersection:
		return inClip
	case Union:
		return !inSubj && !inClip
	default:
		return !inClip
	}
}

// swapOutrecs exchanges which OutRec e1 and e2 point at, keeping each
// OutRec's front/back edge references consistent.
func swapOutrecs(e1, e2 *Active) {
	or1, or2 := e1.OutRec, e2.OutRec
	if or1 == or2 {
		or1.FrontEdge, or1.BackEdge = or1.BackEdge, or1.FrontEdge
		return
	}
	if or1 != nil {
		if e1 == or1.FrontEdge {
			or1.FrontEdge = e2
		} else {
			or1.BackEdge = e2
		}
	}
	if or2 != nil {
		if e2 == or2.FrontEdge {
			or2.FrontEdge = e1
		} else {
			or2.BackEdge = e1
		}
	}
	e1.OutRec, e2.OutRec = or2, or1
}

// intersectEdges is the sweep's single point of contact with the
// fill-rule/clip-type contribution logic (spec.md §4.4.4): given two
// AEL-adjacent edges now crossing at pt, it updates their winding
// counts for everything further right and, where the crossing marks a
// region boundary the current operation cares about, emits output
// points.
func (en *engine) intersectEdges(e1, e2 *Active, pt Point64) *OutPt {
	if en.zCallback != nil {
		en.zCallback(e1.Bot, e1.Top, e2.Bot, e2.Top, &pt)
	}
	if en.hasOpenPaths && (e1.isOpen() || e2.isOpen()) {
		return en.intersectOpenClosedEdges(e1, e2, pt)
	}

	if e1.LocalMin.PolyType == e2.LocalMin.PolyType {
		if en.fillRule == EvenOdd {
			e1.WindCount, e2.WindCount = e2.WindCount, e1.WindCount
		} else {
			if e1.WindCount+e2.WindDx == 0 {
				e1.WindCount = -e1.WindCount
			} else {
				e1.WindCount += e2.WindDx
			}
			if e2.WindCount-e1.WindDx == 0 {
				e2.WindCount = -e2.WindCount
			} else {
				e2.WindCount -= e1.WindDx
			}
		}
	} else {
		if en.fillRule != EvenOdd {
			e1.WindCount2 += e2.WindDx
			e2.WindCount2 -= e1.WindDx
		} else {
			if e1.WindCount2 == 0 {
				e1.WindCount2 = 1
			} else {
				e1.WindCount2 = 0
			}
			if e2.WindCount2 == 0 {
				e2.WindCount2 = 1
			} else {
				e2.WindCount2 = 0
			}
		}
	}

	var e1Wc, e2Wc int
	switch en.fillRule {
	case Positive:
		e1Wc, e2Wc = e1.WindCount, e2.WindCount
	case Negative:
		e1Wc, e2Wc = -e1.WindCount, -e2.WindCount
	default:
		e1Wc = iabs(e1.WindCount)
		e2Wc = iabs(e2.WindCount)
	}

	switch {
	case e1.isHotEdge() && e2.isHotEdge():
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(e1.LocalMin.PolyType != e2.LocalMin.PolyType && en.clipType != Xor) {
			return addLocalMaxPoly(e1, e2, pt)
		}
		if isFront(e1) || e1.OutRec == e2.OutRec {
			result := addLocalMaxPoly(e1, e2, pt)
			op2 := addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
			if result != nil && result.Pt == op2.Pt && !isHorizontal(e1) && !isHorizontal(e2) &&
				CrossProduct128(e1.Bot, result.Pt, e2.Bot).IsZero() {
				en.addJoin(result, op2)
			}
			return result
		}
		result := addOutPt(e1, pt)
		addOutPt(e2, pt)
		swapOutrecs(e1, e2)
		return result

	case e1.isHotEdge():
		if e2Wc == 0 || e2Wc == 1 {
			result := addOutPt(e1, pt)
			swapOutrecs(e1, e2)
			return result
		}
		return nil

	case e2.isHotEdge():
		if e1Wc == 0 || e1Wc == 1 {
			result := addOutPt(e2, pt)
			swapOutrecs(e1, e2)
			return result
		}
		return nil

	case (e1Wc == 0 || e1Wc == 1) && (e2Wc == 0 || e2Wc == 1):
		var e1Wc2, e2Wc2 int
		switch en.fillRule {
		case Positive:
			e1Wc2, e2Wc2 = e1.WindCount2, e2.WindCount2
		case Negative:
			e1Wc2, e2Wc2 = -e1.WindCount2, -e2.WindCount2
		default:
			e1Wc2, e2Wc2 = iabs(e1.WindCount2), iabs(e2.WindCount2)
		}

		if e1.LocalMin.PolyType != e2.LocalMin.PolyType {
			return addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
		}
		if e1Wc != 1 || e2Wc != 1 {
			return nil
		}
		switch en.clipType {
		case Union:
			if e1Wc2 > 0 && e2Wc2 > 0 {
				return nil
			}
			return addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
		case Difference:
			if (e1.LocalMin.PolyType == Clip && e1Wc2 > 0 && e2Wc2 > 0) ||
				(e1.LocalMin.PolyType == Subject && e1Wc2 <= 0 && e2Wc2 <= 0) {
				return addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
			}
			return nil
		case Xor:
			return addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
		default: // Intersection
			if e1Wc2 <= 0 || e2Wc2 <= 0 {
				return nil
			}
			return addLocalMinPoly(e1, e2, pt, false, &en.outrecRegistry)
		}
	}
	return nil
}

// intersectOpenClosedEdges handles a crossing where exactly one of the
// two edges belongs to an open path. Open paths never get joined or
// split, so this only ever starts or ends a single hot edge's trace.
func (en *engine) intersectOpenClosedEdges(e1, e2 *Active, pt Point64) *OutPt {
	var eOpen, eClosed *Active
	switch {
	case e1.isOpen() && e2.isOpen():
		return nil
	case e1.isOpen():
		eOpen, eClosed = e1, e2
	default:
		eOpen, eClosed = e2, e1
	}

	switch en.clipType {
	case Union:
		if !eOpen.isHotEdge() {
			return nil
		}
	default:
		if eClosed.LocalMin.PolyType == Subject {
			return nil
		}
	}

	if eOpen.isHotEdge() {
		result := addOutPt(eOpen, pt)
		uncoupleOutRec(eOpen)
		return result
	}

	var inClosed bool
	switch en.fillRule {
	case Positive:
		inClosed = eClosed.WindCount > 0
	case Negative:
		inClosed = eClosed.WindCount < 0
	default:
		inClosed = eClosed.WindCount != 0
	}
	if !inClosed {
		return nil
	}
	return addLocalMinPoly(eOpen, eClosed, pt, false, &en.outrecRegistry)
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
