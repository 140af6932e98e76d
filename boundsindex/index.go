// Package boundsindex is a bounding-box prefilter over indexed paths,
// built on an R-tree. It never changes which paths a Boolean operation
// must consider — it only tags paths whose bound cannot possibly
// contribute, so the engine can skip expensive local-minima setup for
// them.
package boundsindex

import (
	"github.com/dhconnelly/rtreego"
)

// Item is one indexed path's bounding box, identified by its slot in
// whatever subject/clip list it came from.
type Item struct {
	Slot int
	Min  [2]int64
	Max  [2]int64
}

// Bounds implements rtreego.Spatial.
func (it Item) Bounds() rtreego.Rect {
	point := rtreego.Point{float64(it.Min[0]), float64(it.Min[1])}
	lengths := []float64{
		float64(it.Max[0] - it.Min[0]),
		float64(it.Max[1] - it.Min[1]),
	}
	const minExtent = 1e-6
	if lengths[0] <= 0 {
		lengths[0] = minExtent
	}
	if lengths[1] <= 0 {
		lengths[1] = minExtent
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// Index is a 2-D R-tree over a set of path bounding boxes, dimensioned
// the way beetlebugorg-s57's ChartIndex dimensions its rtreego.Rtree
// (min 25, max 50 children per node).
type Index struct {
	tree  *rtreego.Rtree
	items []Item
}

// New builds an empty Index.
func New() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds slot's bounding box [min, max] to the index.
func (idx *Index) Insert(slot int, min, max [2]int64) {
	item := Item{Slot: slot, Min: min, Max: max}
	idx.items = append(idx.items, item)
	idx.tree.Insert(item)
}

// Intersecting returns the slots of every indexed item whose bounding
// box intersects [min, max].
func (idx *Index) Intersecting(min, max [2]int64) []int {
	q := Item{Min: min, Max: max}
	spatials := idx.tree.SearchIntersect(q.Bounds())
	slots := make([]int, 0, len(spatials))
	for _, s := range spatials {
		slots = append(slots, s.(Item).Slot)
	}
	return slots
}

// Len returns the number of items inserted into the index.
func (idx *Index) Len() int { return len(idx.items) }

// DisjointFrom reports whether a bounding box [min, max] fails to
// intersect any item in other. Callers use this as the signal that a
// subject or clip path cannot contribute to an Intersection result.
func DisjointFrom(min, max [2]int64, other *Index) bool {
	if other.Len() == 0 {
		return true
	}
	return len(other.Intersecting(min, max)) == 0
}
