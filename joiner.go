package polyclip

// Joiner records that op1 and op2 must end up adjacent in their final
// ring, a commitment made during the sweep (in horizontal-edge
// processing and at edge intersections) but only acted on once the
// whole sweep has finished (spec.md §4.7).
type Joiner struct {
	Idx          int
	OutPt1, OutPt2 *OutPt
	next1, next2 *Joiner // next joiner in OutPt1's / OutPt2's joiner list
}

// joinerState accumulates trial horizontal joins during the sweep and
// resolves them, plus any deferred Joiners, once sweeping is done. It
// is embedded in the sweep controller rather than carried as loose
// globals so multiple Clipper64 runs never share state.
type joinerState struct {
	joiners            []*Joiner
	horzFirst, horzLast *OutPt
}

// addTrialHorzJoin records op as a candidate endpoint of a horizontal
// join, to be paired up by convertHorzTrialsToJoins once the
// horizontal edge's processing (spec.md §4.6) has placed every
// endpoint it touched.
func (js *joinerState) addTrialHorzJoin(op *OutPt) {
	if op.OutRec.FrontEdge == nil && op.OutRec.BackEdge == nil && !op.OutRec.isOpen() {
		return // ring already closed; nothing left to join here
	}
	if js.horzLast != nil {
		js.horzLast.nextHorz = op
	} else {
		js.horzFirst = op
	}
	js.horzLast = op
}

// convertHorzTrialsToJoins pairs up same-point trial endpoints
// accumulated since the last call and turns each pair into a Joiner,
// per spec.md §4.7.
func (js *joinerState) convertHorzTrialsToJoins() {
	op := js.horzFirst
	for op != nil {
		next := op.nextHorz
		op.nextHorz = nil
		for op2 := next; op2 != nil; op2 = op2.nextHorz {
			if op2.Pt == op.Pt {
				js.addJoin(op, op2)
				break
			}
		}
		op = next
	}
	js.horzFirst, js.horzLast = nil, nil
}

// addJoin records that op1 and op2 must be spliced together, linking
// the new Joiner into both points' joiner lists.
func (js *joinerState) addJoin(op1, op2 *OutPt) *Joiner {
	j := &Joiner{Idx: len(js.joiners), OutPt1: op1, OutPt2: op2}
	j.next1 = op1.Joiner
	op1.Joiner = j
	j.next2 = op2.Joiner
	op2.Joiner = j
	js.joiners = append(js.joiners, j)
	return j
}

func removeJoinFromPoint(op *OutPt, j *Joiner) {
	if op.Joiner == j {
		if op.Joiner.OutPt1 == op {
			op.Joiner = j.next1
		} else {
			op.Joiner = j.next2
		}
		return
	}
	cur := op.Joiner
	for cur != nil {
		var next *Joiner
		if cur.OutPt1 == op {
			next = cur.next1
		} else {
			next = cur.next2
		}
		if next == j {
			if j.OutPt1 == op {
				if cur.OutPt1 == op {
					cur.next1 = j.next1
				} else {
					cur.next2 = j.next1
				}
			} else {
				if cur.OutPt1 == op {
					cur.next1 = j.next2
				} else {
					cur.next2 = j.next2
				}
			}
			return
		}
		cur = next
	}
}

// processJoinList resolves every deferred Joiner, splicing or
// splitting rings as needed, then tidies every ring that was touched.
func (js *joinerState) processJoinList(reg *outrecRegistry) {
	touched := make(map[*OutRec]bool)
	for _, j := range js.joiners {
		if j.OutPt1 == nil || j.OutPt2 == nil {
			continue
		}
		or := processJoin(j, reg)
		if or != nil {
			touched[or] = true
		}
	}
	js.joiners = nil
	for or := range touched {
		if realOutRec(or) == or {
			tidyOutRec(or, reg)
		}
	}
}

// processJoin splices op1 and op2 together: if they already belong to
// the same ring this splits it in two (one becomes a child of the
// other); otherwise it merges their two rings into one. Returns the
// surviving ring, or nil if the join could no longer be applied.
func processJoin(j *Joiner, reg *outrecRegistry) *OutRec {
	op1, op2 := j.OutPt1, j.OutPt2
	removeJoinFromPoint(op1, j)
	removeJoinFromPoint(op2, j)
	if op1.OutRec == nil || op2.OutRec == nil {
		return nil
	}
	or1 := realOutRec(op1.OutRec)
	or2 := realOutRec(op2.OutRec)
	if or1 == nil || or2 == nil || op1 == op2 {
		return or1
	}

	if or1 == or2 {
		return splitOutRec(or1, op1, op2, reg)
	}
	return mergeOutRecs(or1, or2, op1, op2)
}

// splitOutRec breaks a single ring into two at op1 and op2. A fragment
// with less than one unit of signed area is spurious — the residue of
// a coincident-edge split rather than a real ring — and is discarded
// outright instead of becoming its own OutRec. Otherwise ownership is
// decided by comparing the two fragments' area signs: same sign means
// the split didn't separate outer from inner, so the new fragment
// shares the original's owner/state; opposite sign means the smaller
// fragment nests inside the larger, with Outer/Inner flipped relative
// to it (spec.md §4.9 CompleteSplit).
func splitOutRec(or *OutRec, op1, op2 *OutPt, reg *outrecRegistry) *OutRec {
	op1b := op1.Next
	op2b := op2.Next
	op1.Next = op2b
	op2b.Prev = op1
	op2.Next = op1b
	op1b.Prev = op2

	ring1 := pathFromRing(op1)
	ring2 := pathFromRing(op2)
	if len(ring1) == 0 || len(ring2) == 0 {
		// degenerate split; stitch back together and keep the original ring
		op1.Next = op1b
		op1b.Prev = op1
		op2.Next = op2b
		op2b.Prev = op2
		return or
	}

	area1 := Area64(ring1)
	area2 := Area64(ring2)

	if abs64f(area1) < 1 {
		or.Pts = op2
		return or
	}
	if abs64f(area2) < 1 {
		or.Pts = op1
		return or
	}

	keepOp, keepArea, newOp, newArea := op1, area1, op2, area2
	if abs64f(area1) < abs64f(area2) {
		keepOp, keepArea, newOp, newArea = op2, area2, op1, area1
	}
	or.Pts = keepOp

	newOr := reg.newOutRec()
	newOr.Pts = newOp
	for op := newOp; ; op = op.Next {
		op.OutRec = newOr
		if op.Next == newOp {
			break
		}
	}
	if (keepArea < 0) == (newArea < 0) {
		newOr.Owner = or.Owner
		newOr.State = or.State
	} else {
		newOr.Owner = or
		if or.State == RecOuter {
			newOr.State = RecInner
		} else {
			newOr.State = RecOuter
		}
	}
	return or
}

// mergeOutRecs splices two distinct rings together at op1/op2 and
// folds or2 into or1.
func mergeOutRecs(or1, or2 *OutRec, op1, op2 *OutPt) *OutRec {
	op1b := op1.Next
	op2b := op2.Next
	op1.Next = op2b
	op2b.Prev = op1
	op2.Next = op1b
	op1b.Prev = op2

	or1.Pts = op1
	for op := op1; ; op = op.Next {
		op.OutRec = or1
		if op.Next == op1 {
			break
		}
	}
	or2.Pts = nil
	or2.Owner = or1
	return or1
}

func pathFromRing(start *OutPt) Path64 {
	if start == nil {
		return nil
	}
	var out Path64
	op := start
	for {
		out = append(out, op.Pt)
		op = op.Next
		if op == start {
			break
		}
	}
	return out
}

func abs64f(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// tidyOutRec collapses collinear runs, resolves any remaining
// single-point self-touch left in the ring, and reconciles the ring's
// declared Outer/Inner state against its actual winding, per spec.md
// §4.9.
func tidyOutRec(or *OutRec, reg *outrecRegistry) {
	cleanCollinear(or)
	fixSelfIntersects(or, reg)
	checkFixInnerOuter(or)
}

// checkFixInnerOuter reverses or's ring when its signed area disagrees
// with its declared State, per spec.md §4.5.1's CheckFixInnerOuter: a
// join or split can splice together edges from rings of opposing
// winding, leaving the surviving ring's point order out of step with
// the Owner/State it inherited. RecOuter rings are expected to wind
// positive and RecInner negative, per Area64's CW-outer convention.
func checkFixInnerOuter(or *OutRec) {
	if or.State == RecOpen || or.Pts == nil {
		return
	}
	area := Area64(pathFromRing(or.Pts))
	wantPositive := or.State == RecOuter
	if (area >= 0) == wantPositive {
		return
	}
	reverseOutPtRing(or.Pts)
}

// reverseOutPtRing reverses the point order of the circular OutPt ring
// starting at start by swapping each point's Next/Prev links.
func reverseOutPtRing(start *OutPt) {
	op := start
	for {
		next := op.Next
		op.Next, op.Prev = op.Prev, op.Next
		op = next
		if op == start {
			break
		}
	}
}

// cleanCollinear removes points that lie exactly on the segment
// joining their neighbors, since such points contribute nothing to
// the ring's shape.
func cleanCollinear(or *OutRec) {
	start := or.Pts
	if start == nil {
		return
	}
	op := start
	for {
		if op.Next == op {
			return
		}
		if IsCollinear(op.Prev.Pt, op.Pt, op.Next.Pt) {
			removed := op
			op.Prev.Next = op.Next
			op.Next.Prev = op.Prev
			if or.Pts == removed {
				or.Pts = op.Prev
			}
			if removed == start {
				start = op.Prev
			}
			op = op.Prev
			if op.Next == op {
				or.Pts = op
				return
			}
			continue
		}
		op = op.Next
		if op == start {
			return
		}
	}
}

// fixSelfIntersects looks for a point visited twice by the ring — the
// residue of a bowtie self-crossing that exact-arithmetic intersection
// testing leaves as a coincident point rather than a true crossing —
// and splits the ring there.
func fixSelfIntersects(or *OutRec, reg *outrecRegistry) {
	start := or.Pts
	if start == nil {
		return
	}
	seen := map[Point64]*OutPt{}
	op := start
	for {
		if dup, ok := seen[op.Pt]; ok {
			splitOutRec(or, dup, op, reg)
			return
		}
		seen[op.Pt] = op
		op = op.Next
		if op == start {
			return
		}
	}
}
