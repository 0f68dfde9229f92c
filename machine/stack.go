package machine

// opening is a '[' still waiting for its ']'.
type opening struct {
	index  int // Instruction index.
	line   int
	column int
	offset int
}

// bracketStack holds the openings of the current nesting.
type bracketStack struct {
	Data []opening
}

func (s *bracketStack) Push(open opening) {
	s.Data = append(s.Data, open)
}

func (s *bracketStack) Pop() (open opening, ok bool) {
	open, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

// Peek returns the innermost opening.
func (s *bracketStack) Peek() (open opening, ok bool) {
	if len(s.Data) == 0 {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *bracketStack) Reset() {
	s.Data = s.Data[:0]
}
