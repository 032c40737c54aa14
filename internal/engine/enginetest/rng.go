// Package enginetest provides deterministic random sources for tests.
package enginetest

// Scripted replays queued values. When a queue runs dry Intn returns n/2
// (zero variance for the damage roll) and Float64 returns 0.99, which fails
// every chance-based check.
type Scripted struct {
	Ints   []int
	Floats []float64
}

func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		return n / 2
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		v = ((v % n) + n) % n
	}
	return v
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
