package layout

import "fmt"

// Bounds is the inclusive range rectangle heights are drawn from, in
// display units.
type Bounds struct {
	MinHeight int `json:"min_height" yaml:"min_height" toml:"min_height"`
	MaxHeight int `json:"max_height" yaml:"max_height" toml:"max_height"`
}

// Normalize returns the range actually sampled. A non-positive minimum is
// raised to 1, and an inverted range (MaxHeight < MinHeight) collapses to
// the single point MinHeight.
func (b Bounds) Normalize() Bounds {
	if b.MinHeight < 1 {
		b.MinHeight = 1
	}
	if b.MaxHeight < b.MinHeight {
		b.MaxHeight = b.MinHeight
	}
	return b
}

// Inverted reports whether MaxHeight is below MinHeight.
func (b Bounds) Inverted() bool { return b.MaxHeight < b.MinHeight }

// Clamp limits h to the normalized range.
func (b Bounds) Clamp(h float64) float64 {
	n := b.Normalize()
	return max(float64(n.MinHeight), min(h, float64(n.MaxHeight)))
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.MinHeight, b.MaxHeight)
}
