package polyclip

import "github.com/vatti-sweep/polyclip/boundsindex"

// Clipper64 accumulates subject and clip paths and executes a single
// Boolean operation over them (spec.md §2, §6). It is not safe for
// concurrent use. Call AddSubject / AddClip / AddOpenSubject any number
// of times, then Execute; each Execute builds a fresh sweep from the
// stored paths, so it may be called again, and Clear empties the paths.
type Clipper64 struct {
	subjects     Paths64
	clips        Paths64
	openSubjects Paths64

	// PreserveCollinear is handed to the sweep engine, but no step of the
	// engine reads it: the ring tidying run after joins (cleanCollinear)
	// removes every collinear vertex whatever its value. NewClipper64
	// sets it to true.
	PreserveCollinear bool
	// ReverseSolution flips the orientation of every output ring.
	ReverseSolution bool
	// ZCallback, if set, is invoked for every computed intersection
	// point so callers can interpolate a third coordinate onto it. Its
	// semantics beyond being called are left to the caller (spec.md §1).
	ZCallback ZCallback
}

// NewClipper64 returns an empty Clipper64 ready to accept paths.
func NewClipper64() *Clipper64 { return &Clipper64{PreserveCollinear: true} }

func (c *Clipper64) AddSubject(path Path64)  { c.subjects = append(c.subjects, path) }
func (c *Clipper64) AddSubjects(paths Paths64) { c.subjects = append(c.subjects, paths...) }
func (c *Clipper64) AddClip(path Path64)     { c.clips = append(c.clips, path) }
func (c *Clipper64) AddClips(paths Paths64)  { c.clips = append(c.clips, paths...) }

// AddOpenSubject adds an open polyline subject; it can only ever
// appear in the result, never the clip set (spec.md §2).
func (c *Clipper64) AddOpenSubject(path Path64) { c.openSubjects = append(c.openSubjects, path) }

// Clear discards every path added so far, leaving config fields intact.
func (c *Clipper64) Clear() {
	c.subjects = nil
	c.clips = nil
	c.openSubjects = nil
}

// Execute runs clipType under fillRule over the accumulated paths and
// returns the closed-path solution. Any open subjects are clipped too
// and discarded from this return value; use ExecuteWithOpen to keep
// them, or ExecuteTree for a hierarchy annotated with hole membership.
func (c *Clipper64) Execute(clipType ClipType, fillRule FillRule) (Paths64, error) {
	closed, _, err := c.run(clipType, fillRule)
	return closed, err
}

// ExecuteWithOpen is Execute but also returns the solution's open
// polyline fragments (spec.md §6).
func (c *Clipper64) ExecuteWithOpen(clipType ClipType, fillRule FillRule) (closed, open Paths64, err error) {
	return c.run(clipType, fillRule)
}

// ExecuteTree runs clipType under fillRule and returns the result as a
// PolyTree64, preserving outer/hole nesting (spec.md §6).
func (c *Clipper64) ExecuteTree(clipType ClipType, fillRule FillRule) (*PolyTree64, Paths64, error) {
	if clipType == None {
		return &PolyTree64{}, nil, ErrInvalidClipType
	}
	en := c.newEngine(clipType, fillRule)
	closedEngine, open, err := en.execute()
	if err != nil {
		return nil, nil, err
	}
	_ = closedEngine // tree built directly from engine.outrecRegistry below
	tree := buildPolyTree64(en)
	if c.ReverseSolution {
		reversePaths(tree.Flatten())
		reversePaths(open)
	}
	return tree, open, nil
}

func (c *Clipper64) newEngine(clipType ClipType, fillRule FillRule) *engine {
	en := newEngine(clipType, fillRule)
	en.preserveCollinear = c.PreserveCollinear
	en.zCallback = c.ZCallback

	// Under Intersection, a closed subject or clip path whose bounding
	// box shares no point with any path of the opposite type cannot
	// contribute to the result regardless of fill rule, so its local
	// minima are never inserted. This is the one clip type where the
	// bounding-box prefilter's answer is also the algorithm's answer;
	// every other clip type still needs every path fed to the sweep,
	// so no filtering happens there.
	if clipType == Intersection && len(c.subjects) > 0 && len(c.clips) > 0 {
		subjectIdx, clipIdx := boundsindex.New(), boundsindex.New()
		for i, p := range c.subjects {
			if min, max, ok := pathBoundsInt64(p); ok {
				subjectIdx.Insert(i, min, max)
			}
		}
		for i, p := range c.clips {
			if min, max, ok := pathBoundsInt64(p); ok {
				clipIdx.Insert(i, min, max)
			}
		}
		for _, p := range c.subjects {
			min, max, ok := pathBoundsInt64(p)
			if ok && boundsindex.DisjointFrom(min, max, clipIdx) {
				continue
			}
			en.addPath(p, Subject, false)
		}
		for _, p := range c.clips {
			min, max, ok := pathBoundsInt64(p)
			if ok && boundsindex.DisjointFrom(min, max, subjectIdx) {
				continue
			}
			en.addPath(p, Clip, false)
		}
	} else {
		en.addPaths(c.subjects, Subject, false)
		en.addPaths(c.clips, Clip, false)
	}

	en.addPaths(c.openSubjects, Subject, true)
	return en
}

func pathBoundsInt64(path Path64) (min, max [2]int64, ok bool) {
	if len(path) == 0 {
		return min, max, false
	}
	min = [2]int64{path[0].X, path[0].Y}
	max = min
	for _, pt := range path[1:] {
		if pt.X < min[0] {
			min[0] = pt.X
		}
		if pt.X > max[0] {
			max[0] = pt.X
		}
		if pt.Y < min[1] {
			min[1] = pt.Y
		}
		if pt.Y > max[1] {
			max[1] = pt.Y
		}
	}
	return min, max, true
}

func (c *Clipper64) run(clipType ClipType, fillRule FillRule) (Paths64, Paths64, error) {
	if clipType == None {
		return nil, nil, ErrInvalidClipType
	}
	en := c.newEngine(clipType, fillRule)
	closed, open, err := en.execute()
	if err != nil {
		return nil, nil, err
	}
	if c.ReverseSolution {
		reversePaths(closed)
		reversePaths(open)
	}
	return closed, open, nil
}

func reversePaths(paths Paths64) {
	for _, p := range paths {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
}

// BooleanOp64 is the free-function form of Clipper64.Execute, for
// one-shot clips that don't need a persistent Clipper64 (spec.md §6).
func BooleanOp64(clipType ClipType, fillRule FillRule, subjects, clips Paths64) (Paths64, error) {
	c := NewClipper64()
	c.AddSubjects(subjects)
	c.AddClips(clips)
	return c.Execute(clipType, fillRule)
}

func Intersect64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Intersection, fillRule, subjects, clips)
}

func Union64(subjects Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Union, fillRule, subjects, nil)
}

func Difference64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Difference, fillRule, subjects, clips)
}

func Xor64(subjects, clips Paths64, fillRule FillRule) (Paths64, error) {
	return BooleanOp64(Xor, fillRule, subjects, clips)
}
