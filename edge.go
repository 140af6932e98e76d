package polyclip

import "math"

// Active is a currently-live edge on the sweep line — spec.md §3's
// "Active edge". Bounds between a LocalMinimum and the corresponding
// maximum are represented one Active per monotone-Y segment; a bound
// spanning several vertices is advanced segment by segment via
// updateEdgeIntoAEL as the sweep reaches each vertex's Y.
type Active struct {
	Bot, Top Point64
	CurrX    int64
	Dx       float64 // dX per unit Y; ±Inf for horizontals (see isHorizontal)
	WindDx   int      // +1 or -1: this bound's own contribution to winding
	WindCount  int
	WindCount2 int

	PrevInAEL, NextInAEL *Active
	PrevInSEL, NextInSEL *Active
	Jump                 *Active // unused: buildIntersectList sorts the SEL with adjacent swaps

	OutRec *OutRec

	LocalMin    *LocalMinimum
	VertexTop   *Vertex
	IsLeftBound bool
}

func isHorizontal(e *Active) bool { return e.Bot.Y == e.Top.Y }

// isOpen reports whether this edge belongs to an open (polyline) path.
func (e *Active) isOpen() bool { return e.LocalMin.IsOpen }

// isHotEdge reports whether this edge currently owns an output ring.
func (e *Active) isHotEdge() bool { return e.OutRec != nil }

// newActiveEdge builds an Active edge for the bound running from
// botVertex up to topVertex (topVertex.Pt.Y <= botVertex.Pt.Y, i.e.
// "up" means decreasing Y in this engine's bottom-to-top sweep).
func newActiveEdge(botVertex, topVertex *Vertex, lm *LocalMinimum, isLeftBound bool) *Active {
	e := &Active{
		Bot:         botVertex.Pt,
		Top:         topVertex.Pt,
		CurrX:       botVertex.Pt.X,
		VertexTop:   topVertex,
		LocalMin:    lm,
		IsLeftBound: isLeftBound,
	}
	if e.Top.Y != e.Bot.Y {
		e.Dx = float64(e.Top.X-e.Bot.X) / float64(e.Top.Y-e.Bot.Y)
	} else if e.Top.X > e.Bot.X {
		e.Dx = math.Inf(-1) // heading right: negative infinity, per spec.md §3
	} else {
		e.Dx = math.Inf(1) // heading left: positive infinity
	}
	if isLeftBound {
		e.WindDx = -1
	} else {
		e.WindDx = 1
	}
	return e
}

// topX returns this edge's X coordinate at scanline y, which must lie
// within [Bot.Y, Top.Y] (inclusive) in the sweep's decreasing-Y sense.
func (e *Active) topX(y int64) int64 {
	if y == e.Top.Y {
		return e.Top.X
	}
	if y == e.Bot.Y || e.Dx == 0 {
		return e.Bot.X
	}
	if math.IsInf(e.Dx, 0) {
		return e.Bot.X
	}
	return e.Bot.X + int64(e.Dx*float64(y-e.Bot.Y)+roundBias(e.Dx*float64(y-e.Bot.Y)))
}

func roundBias(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

// isValidAelOrder decides whether resident may legally sit immediately
// to the left of newcomer in the AEL (spec.md §4.3.1).
//
// The reference behavior for two coincident bottoms where neither edge
// is newly inserted this scanbeam is ambiguous in the source (spec.md
// §9's first open question). Here coincident bottoms are ordered by
// their left/right-bound flags, and a pair that no rule below separates
// keeps the order the caller already has (the final return true) — see
// SPEC_FULL.md §13.1.
func isValidAelOrder(resident, newcomer *Active) bool {
	if resident.CurrX != newcomer.CurrX {
		return resident.CurrX < newcomer.CurrX
	}

	d := CrossProduct128(resident.Top, newcomer.Bot, newcomer.Top)
	if !d.IsZero() {
		return d.IsNegative()
	}

	// Collinear at the current scanline. An open edge not yet at its
	// maximum defers to the direction it's about to turn.
	if resident.isOpen() && !resident.VertexTop.isLocalMax() {
		return !isLeft(resident.Top, resident.VertexTop.Next.Pt, newcomer.Top)
	}
	if newcomer.isOpen() && !newcomer.VertexTop.isLocalMax() {
		return isLeft(newcomer.Top, newcomer.VertexTop.Next.Pt, resident.Top)
	}

	// A freshly inserted left bound whose bottom coincides with the
	// other edge's bottom sorts left of a right bound at that minimum.
	if resident.Bot == newcomer.Bot {
		if resident.LocalMin == newcomer.LocalMin {
			return resident.IsLeftBound
		}
		return resident.IsLeftBound || !newcomer.IsLeftBound
	}

	return true // preserve existing relative order
}

// insertIntoAEL splices e into the active edge list immediately to the
// right of after (or at the head if after is nil), without checking
// ordering — callers are responsible for finding the correct slot via
// isValidAelOrder first.
func insertIntoAEL(headRef **Active, after, e *Active) {
	if after == nil {
		e.NextInAEL = *headRef
		if *headRef != nil {
			(*headRef).PrevInAEL = e
		}
		e.PrevInAEL = nil
		*headRef = e
		return
	}
	e.NextInAEL = after.NextInAEL
	if after.NextInAEL != nil {
		after.NextInAEL.PrevInAEL = e
	}
	after.NextInAEL = e
	e.PrevInAEL = after
}

// insertLeftBound finds e's correct slot by walking from the head and
// respecting isValidAelOrder, then inserts it there.
func insertLeftBound(headRef **Active, e *Active) {
	if *headRef == nil || !isValidAelOrder(*headRef, e) {
		e.NextInAEL = *headRef
		if *headRef != nil {
			(*headRef).PrevInAEL = e
		}
		e.PrevInAEL = nil
		*headRef = e
		return
	}
	cur := *headRef
	for cur.NextInAEL != nil && isValidAelOrder(cur.NextInAEL, e) {
		cur = cur.NextInAEL
	}
	insertIntoAEL(headRef, cur, e)
}

func removeFromAEL(headRef **Active, e *Active) {
	if e.PrevInAEL != nil {
		e.PrevInAEL.NextInAEL = e.NextInAEL
	} else {
		*headRef = e.NextInAEL
	}
	if e.NextInAEL != nil {
		e.NextInAEL.PrevInAEL = e.PrevInAEL
	}
	e.NextInAEL, e.PrevInAEL = nil, nil
}

// swapPositionsInAEL exchanges two AEL-adjacent edges. Both e1 and e2
// must currently be adjacent; callers establish that before calling
// (spec.md §4.3.2's adjacency precondition for IntersectEdges applies
// here too, since every reordering in this engine happens through
// this one routine).
func swapPositionsInAEL(headRef **Active, e1, e2 *Active) {
	next2 := e2.NextInAEL
	if e1.NextInAEL != e2 {
		e1, e2 = e2, e1
		if e1.NextInAEL != e2 {
			return // not adjacent; caller error
		}
		next2 = e2.NextInAEL
	}

	prev1 := e1.PrevInAEL
	if prev1 != nil {
		prev1.NextInAEL = e2
	} else {
		*headRef = e2
	}
	if next2 != nil {
		next2.PrevInAEL = e1
	}

	e2.PrevInAEL = prev1
	e2.NextInAEL = e1
	e1.PrevInAEL = e2
	e1.NextInAEL = next2
}
