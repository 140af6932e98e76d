package polyclip

// OutRecState classifies a provisional output polygon.
type OutRecState uint8

const (
	RecOpen OutRecState = iota
	RecOuter
	RecInner
)

func (s OutRecState) String() string {
	switch s {
	case RecOpen:
		return "Open"
	case RecOuter:
		return "Outer"
	case RecInner:
		return "Inner"
	default:
		return "?"
	}
}

// OutPt is one vertex of a provisional output polygon, held in a
// circular doubly-linked ring (spec.md §3).
type OutPt struct {
	Pt       Point64
	Next     *OutPt
	Prev     *OutPt
	OutRec   *OutRec
	Joiner   *Joiner // head of this point's joiner list, or nil
	nextHorz *OutPt  // trial-horizontal-join chain; see joiner.go
}

// OutRec is a provisional output polygon (spec.md §3). Its Owner may
// point at a ring later absorbed into another; callers must chase the
// chain via realOutRec rather than cache a *OutRec across sweep steps.
type OutRec struct {
	Idx         int
	Owner       *OutRec
	FrontEdge   *Active
	BackEdge    *Active
	Pts   *OutPt
	State OutRecState
}

func (or *OutRec) isOpen() bool { return or.State == RecOpen }

// outrecRegistry hands out OutRec indices and keeps the master list of
// every ring ever created, so the engine can walk it once at the end
// of the sweep without having to thread a running list through every
// call site that might start a new ring.
type outrecRegistry struct {
	all []*OutRec
}

func (reg *outrecRegistry) newOutRec() *OutRec {
	or := &OutRec{Idx: len(reg.all)}
	reg.all = append(reg.all, or)
	return or
}

// realOutRec chases the owner chain until it finds a ring with live
// points, per spec.md §9 "owner chains that become stale".
func realOutRec(or *OutRec) *OutRec {
	for or != nil && or.Pts == nil {
		or = or.Owner
	}
	return or
}

// isFront reports whether e is the front edge of its ring. For open
// rings (which have exactly one hot edge at a time) front/back is
// determined by the edge's own winding direction, per spec.md §4.5.
func isFront(e *Active) bool {
	if e.isOpen() {
		return e.WindDx > 0
	}
	return e == e.OutRec.FrontEdge
}

// getPrevHotEdge walks left along the AEL from e, returning the
// nearest closed edge that currently owns an output ring, or nil.
func getPrevHotEdge(e *Active) *Active {
	prev := e.PrevInAEL
	for prev != nil && (prev.isOpen() || !prev.isHotEdge()) {
		prev = prev.PrevInAEL
	}
	return prev
}

// setSides installs start/end as the front/back edges of outrec.
func setSides(outrec *OutRec, start, end *Active) {
	outrec.FrontEdge = start
	outrec.BackEdge = end
}

// addOutPt appends pt to e's ring on the side isFront(e) selects,
// deduplicating against the current endpoint on that side (spec.md §4.5).
func addOutPt(e *Active, pt Point64) *OutPt {
	or := e.OutRec
	toFront := isFront(e)

	if or.Pts == nil {
		op := &OutPt{Pt: pt, OutRec: or}
		op.Next, op.Prev = op, op
		or.Pts = op
		return op
	}

	opFront := or.Pts
	opBack := opFront.Next

	if toFront && pt == opFront.Pt {
		return opFront
	}
	if !toFront && pt == opBack.Pt {
		return opBack
	}

	newOp := &OutPt{Pt: pt, OutRec: or}
	newOp.Prev = opFront
	newOp.Next = opBack
	opFront.Next = newOp
	opBack.Prev = newOp
	if toFront {
		or.Pts = newOp
	}
	return newOp
}

// outrecIsAscending reports whether hotEdge is the front edge of its
// ring (the naming follows the ring's winding sense as it is built).
func outrecIsAscending(hotEdge *Active) bool {
	return hotEdge == hotEdge.OutRec.FrontEdge
}

// addLocalMinPoly starts a new output ring where e1 and e2 meet at a
// local minimum, assigning owner and Outer/Inner state per spec.md
// §4.5.1, and returns the ring's sole point so far.
func addLocalMinPoly(e1, e2 *Active, pt Point64, isNew bool, reg *outrecRegistry) *OutPt {
	outrec := reg.newOutRec()
	e1.OutRec = outrec
	e2.OutRec = outrec

	if e1.isOpen() {
		outrec.State = RecOpen
		outrec.Owner = nil
		if e1.WindDx > 0 {
			setSides(outrec, e1, e2)
		} else {
			setSides(outrec, e2, e1)
		}
	} else {
		prevHot := getPrevHotEdge(e1)
		if prevHot == nil {
			outrec.Owner = nil
			outrec.State = RecOuter
			if isNew {
				setSides(outrec, e1, e2)
			} else {
				setSides(outrec, e2, e1)
			}
		} else {
			encloses := false
			for e := e1.NextInAEL; e != nil && !encloses; e = e.NextInAEL {
				encloses = e.OutRec == prevHot.OutRec
			}
			if !encloses { // prevHot's ring lies wholly to the left: a sibling
				outrec.Owner, outrec.State = prevHot.OutRec.Owner, prevHot.OutRec.State
			} else if prevHot.OutRec.State == RecInner {
				outrec.Owner = prevHot.OutRec
				outrec.State = RecOuter
			} else {
				outrec.Owner = prevHot.OutRec
				outrec.State = RecInner
			}
			if outrecIsAscending(prevHot) == isNew {
				setSides(outrec, e2, e1)
			} else {
				setSides(outrec, e1, e2)
			}
		}
	}

	op := &OutPt{Pt: pt, OutRec: outrec}
	op.Next, op.Prev = op, op
	outrec.Pts = op
	return op
}

// uncoupleOutRec detaches a ring from its bounding edges once both
// have reached a maximum and the ring is fully closed.
func uncoupleOutRec(e *Active) {
	or := e.OutRec
	if or == nil {
		return
	}
	if or.FrontEdge != nil {
		or.FrontEdge.OutRec = nil
	}
	if or.BackEdge != nil {
		or.BackEdge.OutRec = nil
	}
	or.FrontEdge = nil
	or.BackEdge = nil
}

// joinOutrecPaths splices the rings owned by e1 and e2 at the point
// they currently meet, absorbing e2's ring into e1's (spec.md §4.5).
// e1 and e2 must be on opposite sides (front/back) of their rings.
func joinOutrecPaths(e1, e2 *Active) bool {
	if isFront(e1) == isFront(e2) {
		return false // invariant violation: callers never do this
	}

	or1, or2 := e1.OutRec, e2.OutRec
	p1Start, p2Start := or1.Pts, or2.Pts
	p1End, p2End := p1Start.Next, p2Start.Next

	if isFront(e1) {
		p2End.Prev = p1End
		p1End.Next = p2End
		p2Start.Next = p1Start
		p1Start.Prev = p2Start
		or1.Pts = p2Start
		if !e1.isOpen() {
			or1.FrontEdge = or2.FrontEdge
			if or1.FrontEdge != nil {
				or1.FrontEdge.OutRec = or1
			}
		}
		or1.BackEdge = or2.BackEdge
		if or1.BackEdge != nil {
			or1.BackEdge.OutRec = or1
		}
	} else {
		p1End.Prev = p2End
		p2End.Next = p1End
		p1Start.Next = p2Start
		p2Start.Prev = p1Start
		or1.FrontEdge = or2.FrontEdge
		if or1.FrontEdge != nil {
			or1.FrontEdge.OutRec = or1
		}
		if !e1.isOpen() {
			or1.BackEdge = or2.BackEdge
			if or1.BackEdge != nil {
				or1.BackEdge.OutRec = or1
			}
		}
	}

	or2.FrontEdge = nil
	or2.BackEdge = nil
	or2.Pts = nil
	or2.Owner = or1
	return true
}

// addLocalMaxPoly closes off the ring(s) meeting at a local maximum,
// either uncoupling a single ring or joining two rings into one
// (spec.md §4.5).
func addLocalMaxPoly(e1, e2 *Active, pt Point64) *OutPt {
	if isFront(e1) == isFront(e2) {
		if e1.isOpen() {
			e1.OutRec.FrontEdge, e1.OutRec.BackEdge = e1.OutRec.BackEdge, e1.OutRec.FrontEdge
		} else if e2.isOpen() {
			e2.OutRec.FrontEdge, e2.OutRec.BackEdge = e2.OutRec.BackEdge, e2.OutRec.FrontEdge
		} else {
			return nil // invariant violation
		}
	}

	result := addOutPt(e1, pt)
	if e1.OutRec == e2.OutRec {
		or := e1.OutRec
		or.Pts = result
		uncoupleOutRec(e1)
		return result
	}

	if e1.isOpen() {
		if e1.WindDx < 0 {
			joinOutrecPaths(e1, e2)
		} else {
			joinOutrecPaths(e2, e1)
		}
	} else if e1.OutRec.Idx < e2.OutRec.Idx {
		joinOutrecPaths(e1, e2)
	} else {
		joinOutrecPaths(e2, e1)
	}
	return result
}
