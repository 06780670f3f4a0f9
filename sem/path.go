package sem

import (
	"strings"

	"sable/util"
)

// SegmentKind distinguishes the two kinds of path segments.
type SegmentKind int

const (
	// SegNamespace is a module or enclosing-declaration component.
	SegNamespace SegmentKind = iota

	// SegObject is the final declared name a path refers to.
	SegObject
)

// Segment is a single named component of a path.
type Segment struct {
	Kind SegmentKind
	Name string
}

// Path is an ordered sequence of named segments identifying where a
// declaration lives.  Paths are built up incrementally as declarations are
// resolved and are used for diagnostics and fully-qualified naming.
type Path struct {
	segments []Segment
}

// EmptyPath returns a path with no segments.
func EmptyPath() Path {
	return Path{}
}

// PushNamespace appends a namespace segment to the path.
func (p *Path) PushNamespace(name string) {
	p.segments = append(p.segments, Segment{Kind: SegNamespace, Name: name})
}

// PushObject appends an object segment to the path.
func (p *Path) PushObject(name string) {
	p.segments = append(p.segments, Segment{Kind: SegObject, Name: name})
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	segments := make([]Segment, len(p.segments))
	copy(segments, p.segments)

	return Path{segments: segments}
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.segments)
}

// String renders the path with its segments joined by dots.  The empty path
// renders as the empty string.
func (p Path) String() string {
	return strings.Join(util.Map(p.segments, func(s Segment) string { return s.Name }), ".")
}
