package series

import "sort"

type Series struct {
	points []Point
	times  []float64
	bounds []Bounds
}

// New sorts samples by time and derives the point, time and bounds slices.
// The input slice is not modified.
func New(samples []Sample) (*Series, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})

	s := &Series{
		points: make([]Point, len(sorted)),
		times:  make([]float64, len(sorted)),
		bounds: make([]Bounds, len(sorted)),
	}

	acc := Bounds{X: EmptyRange(), Y: EmptyRange()}
	for i, smp := range sorted {
		s.points[i] = Point{X: smp.X, Y: smp.Y}
		s.times[i] = smp.T
		acc.X = acc.X.Extend(smp.X)
		acc.Y = acc.Y.Extend(smp.Y)
		s.bounds[i] = acc
	}

	return s, nil
}

// MustNew is like New but panics on empty input.
func MustNew(samples []Sample) *Series {
	s, err := New(samples)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Series) Len() int { return len(s.points) }

// Start is the earliest sample time.
func (s *Series) Start() float64 { return s.times[0] }

// End is the latest sample time.
func (s *Series) End() float64 { return s.times[len(s.times)-1] }

// Points returns the sorted points. The slice must not be modified.
func (s *Series) Points() []Point { return s.points }

// Times returns the sorted sample times. The slice must not be modified.
func (s *Series) Times() []float64 { return s.times }

func (s *Series) Bounds(i int) Bounds { return s.bounds[s.clamp(i)] }

// IndexForTime returns the index of the last sample whose time is <= t.
// Times before the first sample map to 0 and times past the last sample map
// to the last index.
func (s *Series) IndexForTime(t float64) int {
	i := sort.Search(len(s.times), func(i int) bool {
		return s.times[i] > t
	})
	return s.clamp(i - 1)
}

// Window returns the prefix of points up to and including index i together
// with their bounds. i is clamped into the valid index range.
func (s *Series) Window(i int) Window {
	i = s.clamp(i)
	return Window{
		Points: s.points[:i+1:i+1],
		Bounds: s.bounds[i],
	}
}

func (s *Series) WindowAt(t float64) Window {
	return s.Window(s.IndexForTime(t))
}

// Full is the window covering every sample.
func (s *Series) Full() Window {
	return s.Window(len(s.points) - 1)
}

func (s *Series) clamp(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= len(s.points):
		return len(s.points) - 1
	}
	return i
}
