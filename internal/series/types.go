package series

import "math"

type Sample struct {
	X, Y, T float64
}

type Point struct {
	X, Y float64
}

// Range is a closed interval. A range with Min > Max is empty.
type Range struct {
	Min, Max float64
}

func EmptyRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

func (r Range) Empty() bool { return r.Min > r.Max }

func (r Range) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min
}

// Extend widens r to include v. Non-finite values are ignored.
func (r Range) Extend(v float64) Range {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return r
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// Contains reports whether o lies entirely inside r. The empty range is
// contained by every range.
func (r Range) Contains(o Range) bool {
	if o.Empty() {
		return true
	}
	if r.Empty() {
		return false
	}
	return r.Min <= o.Min && o.Max <= r.Max
}

// Pad returns a range suitable for an axis: empty ranges become [-1, 1],
// zero-width ranges are widened by one unit around the value, and everything
// else gains frac of its width on each side.
func (r Range) Pad(frac float64) Range {
	switch {
	case r.Empty():
		return Range{Min: -1, Max: 1}
	case r.Width() == 0:
		return Range{Min: r.Min - 1, Max: r.Max + 1}
	}
	// Scale each end before subtracting so extreme finite ranges do not
	// overflow, then keep the result finite.
	pad := r.Max*frac - r.Min*frac
	return Range{
		Min: math.Max(r.Min-pad, -math.MaxFloat64),
		Max: math.Min(r.Max+pad, math.MaxFloat64),
	}
}

// Fraction reports where v lies in r, 0 at Min and 1 at Max. It stays finite
// for ranges whose width overflows a float64.
func (r Range) Fraction(v float64) float64 {
	w := r.Max/2 - r.Min/2
	if r.Empty() || w == 0 {
		return 0
	}
	return (v/2 - r.Min/2) / w
}

// Bounds are the x and y ranges covered by a prefix of a series.
type Bounds struct {
	X, Y Range
}

func (b Bounds) Contains(o Bounds) bool {
	return b.X.Contains(o.X) && b.Y.Contains(o.Y)
}

// Window is the visible prefix of a series.
type Window struct {
	Points []Point
	Bounds Bounds
}

func (w Window) Len() int { return len(w.Points) }

func (w Window) Last() Point { return w.Points[len(w.Points)-1] }
