package polyclip

import "sort"

// intersectNode is one crossing discovered by buildIntersectList:
// e1 and e2 are adjacent in the AEL at the current scanline and will
// swap places by topY.
type intersectNode struct {
	e1, e2 *Active
	pt     Point64
}

// buildIntersectList copies the AEL into the SEL, advances every
// edge's CurrX to topY, and finds every adjacent-pair inversion that
// advance produces — each one is a crossing that must be applied
// before the sweep may move to topY (spec.md §4.3.2).
//
// The reference engine finds these inversions with a merge sort over
// the SEL using each Active's Jump pointer, which keeps the cost to
// O(n log n) for large scanlines. This implementation finds the same
// inversions with repeated adjacent-swap passes instead: the result —
// the same intersection set, and the SEL left in the same final order
// — is identical, just at O(n^2) instead of O(n log n); Active.Jump is
// left unused. See DESIGN.md.
func (en *engine) buildIntersectList(topY int64) []intersectNode {
	if en.aelHead == nil || en.aelHead.NextInAEL == nil {
		return nil
	}
	for e := en.aelHead; e != nil; e = e.NextInAEL {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e.CurrX = e.topX(topY)
	}
	en.selHead = en.aelHead

	var nodes []intersectNode
	for {
		swappedAny := false
		e := en.selHead
		for e != nil && e.NextInSEL != nil {
			next := e.NextInSEL
			if e.CurrX > next.CurrX {
				nodes = append(nodes, intersectNode{e1: e, e2: next, pt: intersectPointClamped(e, next, topY)})
				swapSelAdjacent(&en.selHead, e, next)
				swappedAny = true
				continue
			}
			e = next
		}
		if !swappedAny {
			break
		}
	}
	return nodes
}

func swapSelAdjacent(headRef **Active, e1, e2 *Active) {
	prev := e1.PrevInSEL
	next := e2.NextInSEL
	if prev != nil {
		prev.NextInSEL = e2
	} else {
		*headRef = e2
	}
	if next != nil {
		next.PrevInSEL = e1
	}
	e2.PrevInSEL = prev
	e2.NextInSEL = e1
	e1.PrevInSEL = e2
	e1.NextInSEL = next
}

// intersectPointClamped computes where e1 and e2 actually cross,
// falling back to the midpoint of their current X positions if exact
// segment intersection fails (parallel/degenerate edges this close to
// a scanbeam boundary), then clamps the result into [topY, the lower
// of the two edges' bottoms] per spec.md §4.3.3 — floating-point slope
// extrapolation can otherwise place the computed point a unit or two
// beyond where either edge actually exists.
func intersectPointClamped(e1, e2 *Active, topY int64) Point64 {
	pt, kind, err := SegmentIntersection(e1.Bot, e1.Top, e2.Bot, e2.Top)
	if err != nil || kind == NoIntersection {
		return Point64{X: (e1.CurrX + e2.CurrX) / 2, Y: topY}
	}
	if pt.Y < topY {
		pt.Y = topY
		pt.X = e1.topX(topY)
	}
	if maxY := min64(e1.Bot.Y, e2.Bot.Y); pt.Y > maxY {
		pt.Y = maxY
		pt.X = e1.topX(maxY)
	}
	return pt
}

func areAdjacentInAEL(e1, e2 *Active) bool {
	return e1.NextInAEL == e2 || e2.NextInAEL == e1
}

// doIntersections applies every crossing found between the current
// scanline and topY, processing them top-down (nearest Y first) so
// each IntersectEdges call sees edges still in their true AEL order
// (spec.md §4.3.2).
func (en *engine) doIntersections(topY int64) {
	nodes := en.buildIntersectList(topY)
	if len(nodes) == 0 {
		return
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].pt.Y != nodes[j].pt.Y {
			return nodes[i].pt.Y > nodes[j].pt.Y
		}
		return nodes[i].e1.CurrX < nodes[j].e1.CurrX
	})
	for _, n := range nodes {
		if !areAdjacentInAEL(n.e1, n.e2) {
			continue // an earlier node already separated this pair
		}
		en.intersectEdges(n.e1, n.e2, n.pt)
		swapPositionsInAEL(&en.aelHead, n.e1, n.e2)
	}
}

// trimHorzSpikes advances horz's top past any vertex that immediately
// reverses back onto the same point — a 180-degree spike that would
// otherwise leave a zero-length bound segment for the walk below to
// stumble over — before horz is processed (spec.md §4.6).
func (en *engine) trimHorzSpikes(horz *Active) {
	for !isMaxima(horz) {
		nv := nextVertex(horz)
		if nv == nil || nv.Pt != horz.Top {
			break
		}
		horz.VertexTop = nv
	}
}

// horzEndpointGrazed reports whether e, sitting exactly at horz's far
// endpoint X, only touches that point without actually continuing past
// it in horz's direction of travel — a graze rather than a crossing,
// which must not be handed to intersectEdges (spec.md §4.6).
func horzEndpointGrazed(horz, e *Active, goingRight bool) bool {
	if isMaxima(e) {
		return true
	}
	nv := nextVertex(e)
	if nv == nil {
		return true
	}
	if goingRight {
		return nv.Pt.X <= horz.Top.X
	}
	return nv.Pt.X >= horz.Top.X
}

// doHorizontal sweeps a horizontal edge across every edge it
// currently overlaps at this Y, intersecting with each in turn, then
// either closes horz off at a maximum or advances it into its next
// bound segment (spec.md §4.6).
func (en *engine) doHorizontal(horz *Active) {
	en.trimHorzSpikes(horz)

	y := horz.Bot.Y
	goingRight := horz.Bot.X < horz.Top.X

	if horz.isHotEdge() {
		addOutPt(horz, Point64{X: horz.CurrX, Y: y})
	}

	for {
		var e *Active
		if goingRight {
			e = horz.NextInAEL
		} else {
			e = horz.PrevInAEL
		}
		if e == nil {
			break
		}
		if goingRight && e.CurrX > horz.Top.X {
			break
		}
		if !goingRight && e.CurrX < horz.Top.X {
			break
		}
		if e.CurrX == horz.Top.X && e.VertexTop != horz.VertexTop && horzEndpointGrazed(horz, e, goingRight) {
			break
		}

		if e.VertexTop == horz.VertexTop && isMaxima(e) {
			if horz.isHotEdge() {
				if goingRight {
					addLocalMaxPoly(horz, e, horz.Top)
				} else {
					addLocalMaxPoly(e, horz, horz.Top)
				}
			}
			removeFromAEL(&en.aelHead, e)
			removeFromAEL(&en.aelHead, horz)
			return
		}

		pt := Point64{X: e.CurrX, Y: y}
		wasHot := horz.isHotEdge()
		var op *OutPt
		if goingRight {
			op = en.intersectEdges(horz, e, pt)
		} else {
			op = en.intersectEdges(e, horz, pt)
		}
		if !wasHot && horz.isHotEdge() && op != nil {
			en.addTrialHorzJoin(op)
		}
		swapPositionsInAEL(&en.aelHead, horz, e)
	}

	if isMaxima(horz) {
		if horz.isHotEdge() {
			addOutPt(horz, horz.Top)
		}
		removeFromAEL(&en.aelHead, horz)
		return
	}

	if horz.isHotEdge() {
		op := addOutPt(horz, horz.Top)
		en.addTrialHorzJoin(op)
	}

	en.updateEdgeIntoAEL(horz)
	if isHorizontal(horz) {
		en.pushHorz(horz)
	}
}
