package polyclip

// PolyPath64 is one node of a PolyTree64: a single polygon ring plus
// its nested children (holes, and islands inside those holes, and so
// on), per spec.md §6.
type PolyPath64 struct {
	Polygon  Path64
	Parent   *PolyPath64
	Children []*PolyPath64
	isHole   bool
}

// IsHole reports whether this ring is a hole in its parent, rather
// than a separate outer boundary.
func (p *PolyPath64) IsHole() bool { return p.isHole }

func (p *PolyPath64) addChild(polygon Path64, isHole bool) *PolyPath64 {
	child := &PolyPath64{Polygon: polygon, Parent: p, isHole: isHole}
	p.Children = append(p.Children, child)
	return child
}

// PolyTree64 is the root of a solution's nesting hierarchy; its
// Children are the result's top-level (non-hole) polygons.
type PolyTree64 struct {
	PolyPath64
}

// buildPolyTree64 walks every surviving closed OutRec and reassembles
// the owner relationships the sweep recorded into a PolyTree64,
// skipping open-path fragments (those come back via ExecuteWithOpen).
func buildPolyTree64(en *engine) *PolyTree64 {
	tree := &PolyTree64{}
	nodes := make(map[*OutRec]*PolyPath64, len(en.all))

	var order []*OutRec
	for _, or := range en.all {
		real := realOutRec(or)
		if real != or || real.Pts == nil || real.isOpen() {
			continue
		}
		path := pathFromRing(real.Pts)
		if len(path) < 3 {
			continue
		}
		order = append(order, real)
	}

	placed := make(map[*OutRec]bool, len(order))
	for len(placed) < len(order) {
		progressed := false
		for _, or := range order {
			if placed[or] {
				continue
			}
			var parent *PolyPath64
			owner := realOutRec(or.Owner)
			if owner == nil {
				parent = &tree.PolyPath64
			} else if node, ok := nodes[owner]; ok {
				parent = node
			} else {
				continue // owner not placed yet; try again next pass
			}
			node := parent.addChild(pathFromRing(or.Pts), or.State == RecInner)
			nodes[or] = node
			placed[or] = true
			progressed = true
		}
		if !progressed {
			break // owner cycle or missing owner; leave stragglers unplaced
		}
	}
	return tree
}

// Flatten returns every polygon in the tree, in depth-first order.
func (p *PolyPath64) Flatten() Paths64 {
	var out Paths64
	if p.Polygon != nil {
		out = append(out, p.Polygon)
	}
	for _, c := range p.Children {
		out = append(out, c.Flatten()...)
	}
	return out
}
