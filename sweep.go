package polyclip

import (
	"math"
	"sort"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// engine drives the Vatti sweep: it owns the Active Edge List, the
// pending local minima and scanbeam queue, and the set of provisional
// output rings being built, for one Execute call (spec.md §3-§4).
type engine struct {
	joinerState

	aelHead *Active
	selHead *Active

	locMinima []*LocalMinimum
	locMinIdx int

	scanbeams []int64 // kept sorted descending; duplicates collapsed on insert
	horzQueue []*Active

	clipType ClipType
	fillRule FillRule

	outrecRegistry

	hasOpenPaths      bool
	preserveCollinear bool
	zCallback         ZCallback

	succeeded bool
}

func newEngine(clipType ClipType, fillRule FillRule) *engine {
	return &engine{clipType: clipType, fillRule: fillRule, succeeded: true}
}

// addPath builds a vertex ring from path and, if it survives
// degeneracy checks, records its local minima and seeds the scanbeam
// queue with the Y of each local minimum (spec.md §4.1).
func (en *engine) addPath(path Path64, pt PathType, isOpen bool) {
	if isOpen {
		en.hasOpenPaths = true
	}
	if !isOpen && len(path) < 3 {
		return
	}
	ring := buildVertexRing(path, isOpen)
	if ring == nil {
		return
	}
	minima := collectLocalMinima(ring, pt, isOpen)
	for _, lm := range minima {
		en.locMinima = append(en.locMinima, lm)
		en.insertScanbeam(lm.Vertex.Pt.Y)
	}
}

func (en *engine) addPaths(paths Paths64, pt PathType, isOpen bool) {
	for _, p := range paths {
		en.addPath(p, pt, isOpen)
	}
}

func (en *engine) insertScanbeam(y int64) {
	i := sort.Search(len(en.scanbeams), func(i int) bool { return en.scanbeams[i] <= y })
	if i < len(en.scanbeams) && en.scanbeams[i] == y {
		return
	}
	en.scanbeams = append(en.scanbeams, 0)
	copy(en.scanbeams[i+1:], en.scanbeams[i:])
	en.scanbeams[i] = y
}

func (en *engine) popScanbeam() (int64, bool) {
	if len(en.scanbeams) == 0 {
		return 0, false
	}
	y := en.scanbeams[0]
	en.scanbeams = en.scanbeams[1:]
	return y, true
}

func (en *engine) pushHorz(e *Active) { en.horzQueue = append(en.horzQueue, e) }

func (en *engine) popHorz() *Active {
	if len(en.horzQueue) == 0 {
		return nil
	}
	e := en.horzQueue[0]
	en.horzQueue = en.horzQueue[1:]
	return e
}

// nextVertex returns the vertex following e's current top, walking in
// whichever ring direction e's bound travels.
func nextVertex(e *Active) *Vertex {
	if e.WindDx > 0 {
		return e.VertexTop.Next
	}
	return e.VertexTop.Prev
}

func isMaxima(e *Active) bool { return e.VertexTop.isLocalMax() }

// getMaximaPair finds the other Active that shares e's top vertex —
// the edge e will be paired with when the sweep closes this maximum.
func getMaximaPair(e *Active) *Active {
	for n := e.NextInAEL; n != nil; n = n.NextInAEL {
		if n.VertexTop == e.VertexTop {
			return n
		}
		if isMaxima(n) {
			break
		}
	}
	return nil
}

func insertLeftEdge(headRef **Active, e *Active) { insertLeftBound(headRef, e) }

func insertRightEdge(headRef **Active, left, right *Active) {
	insertIntoAEL(headRef, left, right)
}

// startOpenPath gives a lone open-path edge (no paired bound) its own
// OutRec and first output point.
func (en *engine) startOpenPath(e *Active, pt Point64) {
	or := en.newOutRec()
	or.State = RecOpen
	e.OutRec = or
	addOutPt(e, pt)
}

// insertLocalMinimaIntoAEL admits every local minimum at exactly botY,
// building its bound(s), computing initial winding counts, and
// opening an output ring immediately where the fill rule already
// makes that minimum's point a boundary (spec.md §4.2).
func (en *engine) insertLocalMinimaIntoAEL(botY int64) {
	for en.locMinIdx < len(en.locMinima) && en.locMinima[en.locMinIdx].Vertex.Pt.Y == botY {
		lm := en.locMinima[en.locMinIdx]
		en.locMinIdx++
		v := lm.Vertex

		var left, right *Active
		if !v.isOpenStart() {
			left = newActiveEdge(v, v.Prev, lm, true)
			left.LocalMin = lm
		}
		if !v.isOpenEnd() {
			right = newActiveEdge(v, v.Next, lm, false)
			right.LocalMin = lm
		}

		if left != nil && right != nil {
			swap := false
			switch {
			case isHorizontal(left):
				swap = left.Top.X > left.Bot.X
			case isHorizontal(right):
				swap = right.Top.X < right.Bot.X
			default:
				swap = left.Dx < right.Dx
			}
			if swap {
				left, right = right, left
			}
		} else if left == nil {
			left, right = right, nil
		}
		if left == nil {
			continue
		}

		left.IsLeftBound = true
		if right != nil {
			right.IsLeftBound = false
		}
		insertLeftEdge(&en.aelHead, left)

		var contributing bool
		if left.isOpen() {
			en.setWindCountOpen(left)
			contributing = en.isContributingOpen(left)
		} else {
			en.setWindCountClosed(left)
			contributing = en.isContributingClosed(left)
		}

		if right != nil {
			right.WindCount = left.WindCount
			right.WindCount2 = left.WindCount2
			insertRightEdge(&en.aelHead, left, right)

			if contributing {
				addLocalMinPoly(left, right, left.Bot, true, &en.outrecRegistry)
			}

			for right.NextInAEL != nil && isValidAelOrder(right.NextInAEL, right) {
				en.intersectEdges(right, right.NextInAEL, right.Bot)
				swapPositionsInAEL(&en.aelHead, right, right.NextInAEL)
			}

			if isHorizontal(right) {
				en.pushHorz(right)
			} else {
				en.insertScanbeam(right.Top.Y)
			}
		} else if contributing {
			en.startOpenPath(left, left.Bot)
		}

		if isHorizontal(left) {
			en.pushHorz(left)
		} else {
			en.insertScanbeam(left.Top.Y)
		}
	}
}

// updateEdgeIntoAEL advances e past the vertex it just reached to the
// next segment of its bound, recomputing Dx for the new segment.
func (en *engine) updateEdgeIntoAEL(e *Active) {
	e.Bot = e.Top
	e.VertexTop = nextVertex(e)
	e.Top = e.VertexTop.Pt
	e.CurrX = e.Bot.X
	if e.Top.Y != e.Bot.Y {
		e.Dx = float64(e.Top.X-e.Bot.X) / float64(e.Top.Y-e.Bot.Y)
	} else {
		e.Dx = infForDirection(e.Top.X > e.Bot.X)
	}
	if !isHorizontal(e) {
		en.insertScanbeam(e.Top.Y)
	}
}

// doMaxima closes off e at a local maximum, pairing it with its
// maxima partner (if one is still active) and removing both from the
// AEL, per spec.md §4.8. Returns the edge to resume scanning from.
func (en *engine) doMaxima(e *Active) *Active {
	prev := e.PrevInAEL
	next := e.NextInAEL
	maxPair := getMaximaPair(e)
	if maxPair == nil {
		if e.isHotEdge() {
			addOutPt(e, e.Top)
		}
		removeFromAEL(&en.aelHead, e)
		return next
	}

	for next != nil && next != maxPair {
		en.intersectEdges(e, next, e.Top)
		swapPositionsInAEL(&en.aelHead, e, next)
		next = e.NextInAEL
	}

	if e.isOpen() {
		if e.isHotEdge() {
			addLocalMaxPoly(e, maxPair, e.Top)
		}
		removeFromAEL(&en.aelHead, maxPair)
		removeFromAEL(&en.aelHead, e)
		if prev != nil {
			return prev.NextInAEL
		}
		return en.aelHead
	}

	if e.isHotEdge() {
		addLocalMaxPoly(e, maxPair, e.Top)
	}
	removeFromAEL(&en.aelHead, e)
	removeFromAEL(&en.aelHead, maxPair)
	if prev != nil {
		return prev.NextInAEL
	}
	return en.aelHead
}

// doTopOfScanbeam advances every active edge's CurrX to scanline y,
// closing maxima and stepping live bounds to their next vertex
// (spec.md §4.2/§4.8).
func (en *engine) doTopOfScanbeam(y int64) {
	en.selHead = nil
	e := en.aelHead
	for e != nil {
		if e.Top.Y == y {
			e.CurrX = e.Top.X
			if isMaxima(e) {
				e = en.doMaxima(e)
				continue
			}
			if e.isHotEdge() {
				addOutPt(e, e.Top)
			}
			en.updateEdgeIntoAEL(e)
			if isHorizontal(e) {
				en.pushHorz(e)
			}
		} else {
			e.CurrX = e.topX(y)
		}
		e = e.NextInAEL
	}
}

func infForDirection(headingRight bool) float64 {
	if headingRight {
		return negInf
	}
	return posInf
}

// execute runs the full sweep and returns the closed and open result
// sets as plain point paths (spec.md §4, §6).
func (en *engine) execute() (closed, open Paths64, err error) {
	defer func() {
		if r := recover(); r != nil {
			closed, open = nil, nil
			err = ErrClipperExecution
		}
	}()

	if len(en.locMinima) == 0 {
		return nil, nil, nil
	}
	sortLocalMinima(en.locMinima)

	y, ok := en.popScanbeam()
	if !ok {
		return nil, nil, nil
	}
	for {
		debugPhase("insertLocalMinima")
		en.insertLocalMinimaIntoAEL(y)
		for e := en.popHorz(); e != nil; e = en.popHorz() {
			en.doHorizontal(e)
		}
		en.convertHorzTrialsToJoins()

		ny, ok := en.popScanbeam()
		if !ok {
			break
		}
		y = ny
		en.doIntersections(y)
		en.doTopOfScanbeam(y)
		for e := en.popHorz(); e != nil; e = en.popHorz() {
			en.doHorizontal(e)
		}
	}

	en.processJoinList(&en.outrecRegistry)
	closed, open = en.buildResult()
	return closed, open, nil
}

// buildResult walks every surviving OutRec and emits its ring as a
// Path64, skipping absorbed/degenerate rings.
func (en *engine) buildResult() (closed, open Paths64) {
	for _, or := range en.all {
		real := realOutRec(or)
		if real != or || real.Pts == nil {
			continue
		}
		path := pathFromRing(real.Pts)
		if real.isOpen() {
			if len(path) > 0 {
				open = append(open, path)
			}
			continue
		}
		if len(path) < 3 {
			continue
		}
		closed = append(closed, path)
	}
	return closed, open
}
