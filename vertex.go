package polyclip

// VertexFlags tags the role a Vertex plays in its ring.
type VertexFlags uint8

const (
	vfOpenStart VertexFlags = 1 << iota
	vfOpenEnd
	vfLocalMax
	vfLocalMin
)

// Vertex is a node in the circular (or, for open paths, linear)
// doubly-linked ring built from one input path. Rings are built once
// in the topology builder and never mutated afterward except for the
// consecutive-duplicate collapse performed while building them.
type Vertex struct {
	Pt    Point64
	Next  *Vertex
	Prev  *Vertex
	Flags VertexFlags
}

func (v *Vertex) isLocalMin() bool  { return v.Flags&vfLocalMin != 0 }
func (v *Vertex) isLocalMax() bool  { return v.Flags&vfLocalMax != 0 }
func (v *Vertex) isOpenStart() bool { return v.Flags&vfOpenStart != 0 }
func (v *Vertex) isOpenEnd() bool   { return v.Flags&vfOpenEnd != 0 }

// dedupePath drops trailing points equal to the first point on closed
// paths and collapses consecutive identical points, per spec.md §4.1.
func dedupePath(path Path64, isOpen bool) Path64 {
	if len(path) == 0 {
		return nil
	}
	out := make(Path64, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		if path[i] != out[len(out)-1] {
			out = append(out, path[i])
		}
	}
	if !isOpen && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// buildVertexRing converts a cleaned path into a linked ring of
// vertices and marks its local minima/maxima. It returns nil for
// degenerate input: closed paths need at least two distinct points
// (three points worth of turning, but two distinct coordinates after
// dedup is the minimal check the ring-walk itself can rely on; the
// caller additionally filters on raw point count).
func buildVertexRing(path Path64, isOpen bool) *Vertex {
	cleaned := dedupePath(path, isOpen)
	if len(cleaned) < 2 {
		return nil
	}

	verts := make([]*Vertex, len(cleaned))
	for i, pt := range cleaned {
		verts[i] = &Vertex{Pt: pt}
	}
	n := len(verts)
	for i, v := range verts {
		if isOpen {
			if i > 0 {
				v.Prev = verts[i-1]
			}
			if i < n-1 {
				v.Next = verts[i+1]
			}
		} else {
			v.Prev = verts[(i-1+n)%n]
			v.Next = verts[(i+1)%n]
		}
	}
	if isOpen {
		verts[0].Flags |= vfOpenStart
		verts[n-1].Flags |= vfOpenEnd
	}

	markLocalExtrema(verts, isOpen)
	return verts[0]
}

// markLocalExtrema walks the ring once, tracking the direction of Y,
// and flags each vertex where that direction reverses. Flat spans
// (consecutive equal-Y vertices) are skipped over when establishing
// the initial direction so a flat bottom or top still resolves to a
// single extremum, per spec.md §4.1.
func markLocalExtrema(verts []*Vertex, isOpen bool) {
	n := len(verts)
	if n < 2 {
		return
	}
	v0 := verts[0]

	var goingUp bool
	if isOpen {
		idx := 1
		for idx < n && verts[idx].Pt.Y == v0.Pt.Y {
			idx++
		}
		if idx >= n {
			return // entirely flat open path
		}
		goingUp = verts[idx].Pt.Y <= v0.Pt.Y
		if goingUp {
			v0.Flags |= vfLocalMin
		} else {
			v0.Flags |= vfLocalMax
		}
	} else {
		prevIdx := n - 1
		for prevIdx > 0 && verts[prevIdx].Pt.Y == v0.Pt.Y {
			prevIdx--
		}
		if verts[prevIdx].Pt.Y == v0.Pt.Y {
			return // entirely flat closed path
		}
		goingUp = verts[prevIdx].Pt.Y > v0.Pt.Y
	}

	goingUp0 := goingUp
	for i := 1; i < n; i++ {
		curr, prev := verts[i], verts[i-1]
		if curr.Pt.Y > prev.Pt.Y && goingUp {
			prev.Flags |= vfLocalMax
			goingUp = false
		} else if curr.Pt.Y < prev.Pt.Y && !goingUp {
			prev.Flags |= vfLocalMin
			goingUp = true
		}
	}

	last := verts[n-1]
	if isOpen {
		if goingUp {
			last.Flags |= vfLocalMax
		} else {
			last.Flags |= vfLocalMin
		}
	} else if goingUp != goingUp0 {
		if goingUp0 {
			last.Flags |= vfLocalMin
		} else {
			last.Flags |= vfLocalMax
		}
	}
}
