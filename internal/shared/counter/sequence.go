package counter

// Sequence hands out ids 1, 2, 3, ... in order. It is not safe for concurrent
// use; the owner serializes calls.
type Sequence struct {
	last uint
}

func (s *Sequence) Next() uint {
	s.last++
	return s.last
}

// Last is the most recently issued id, 0 before the first call to Next.
func (s *Sequence) Last() uint {
	return s.last
}
