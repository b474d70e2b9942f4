package geom

// Set is an ordered collection of rectangles. Order is z-order: the last
// element is drawn last and is hit-tested first.
type Set []Rect

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// OverlapsAny reports whether r overlaps any rectangle in s.
func (s Set) OverlapsAny(r Rect) bool {
	for _, o := range s {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// Overlaps counts the pairs of rectangles in s that overlap.
func (s Set) Overlaps() int {
	n := 0
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i].Overlaps(s[j]) {
				n++
			}
		}
	}
	return n
}

// Within reports whether every rectangle in s lies inside e.
func (s Set) Within(e Extent) bool {
	for _, r := range s {
		if !r.Within(e) {
			return false
		}
	}
	return true
}
