package testutil

// SequenceRand replays a fixed list of values for IntN, wrapping around.
type SequenceRand struct {
	Values []int
	pos    int
}

// IntN returns the next value modulo n.
func (s *SequenceRand) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v % n
}
