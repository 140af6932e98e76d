package polyclip

import "sort"

// LocalMinimum pairs a local-minimum Vertex with the path it came from.
type LocalMinimum struct {
	Vertex   *Vertex
	PolyType PathType
	IsOpen   bool
}

// collectLocalMinima walks ring once (it may be circular or, for open
// paths, linear) and returns one LocalMinimum per flagged vertex,
// matching spec.md §3's "AddLocMin is idempotent per vertex" by
// visiting each vertex exactly once.
func collectLocalMinima(ring *Vertex, polyType PathType, isOpen bool) []*LocalMinimum {
	if ring == nil {
		return nil
	}
	var out []*LocalMinimum
	v := ring
	for {
		if v.isLocalMin() {
			out = append(out, &LocalMinimum{Vertex: v, PolyType: polyType, IsOpen: isOpen})
		}
		if v.Next == nil {
			break
		}
		v = v.Next
		if v == ring {
			break
		}
	}
	return out
}

// sortLocalMinima orders the minima list by vertex.Y descending, per
// spec.md §3: the sweep starts at the numerically greatest Y and
// advances into decreasing Y.
func sortLocalMinima(minima []*LocalMinimum) {
	sort.SliceStable(minima, func(i, j int) bool {
		if minima[i].Vertex.Pt.Y != minima[j].Vertex.Pt.Y {
			return minima[i].Vertex.Pt.Y > minima[j].Vertex.Pt.Y
		}
		return minima[i].Vertex.Pt.X < minima[j].Vertex.Pt.X
	})
}
