package autobind

// nameSet is a set of method names that remembers insertion order.
type nameSet struct {
	order []string
	index map[string]struct{}
}

func newNameSet() *nameSet {
	return &nameSet{index: make(map[string]struct{})}
}

// Add inserts name and reports whether it was not present yet.
func (s *nameSet) Add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.order = append(s.order, name)
	return true
}

func (s *nameSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *nameSet) Len() int { return len(s.order) }
