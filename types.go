package polyclip

// Point64 is a 2-D point with signed 64-bit integer coordinates.
//
// Z is an optional third coordinate carried through unchanged from the
// input. It is never read or compared by the engine; at newly created
// intersection points it is left zero unless a ZCallback is installed
// on the Clipper64 (see its ZCallback field).
type Point64 struct {
	X, Y, Z int64
}

// Path64 is an ordered sequence of points forming one ring or polyline.
type Path64 []Point64

// Paths64 is a collection of independent paths.
type Paths64 []Path64

// Rect64 is an axis-aligned rectangle. RectClip64 and RectClipLines64
// take their rectangle as a four-point Path64, not as a Rect64.
type Rect64 struct {
	Left, Top, Right, Bottom int64
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect64) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ClipType selects the Boolean set operation Execute performs.
type ClipType uint8

const (
	None ClipType = iota
	Intersection
	Union
	Difference
	Xor
)

func (c ClipType) String() string {
	switch c {
	case None:
		return "None"
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	default:
		return "ClipType(?)"
	}
}

// FillRule selects how winding counts are mapped to polygon interiors.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

func (f FillRule) String() string {
	switch f {
	case EvenOdd:
		return "EvenOdd"
	case NonZero:
		return "NonZero"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "FillRule(?)"
	}
}

// PathType distinguishes subject paths from clip paths. Winding counts
// are tracked separately per PathType (WindCount for an edge's own
// type, WindCount2 for the other).
type PathType uint8

const (
	Subject PathType = iota
	Clip
)

func (p PathType) String() string {
	if p == Clip {
		return "Clip"
	}
	return "Subject"
}

// ZCallback is invoked whenever the sweep creates a new point at an
// edge intersection, letting a caller stamp a third coordinate onto it
// from the four edge endpoints that produced it. Its semantics beyond
// "gets called with the right four endpoints and the new point" are a
// caller concern, not the engine's.
type ZCallback func(e1Bot, e1Top, e2Bot, e2Top Point64, pt *Point64)
