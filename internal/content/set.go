package content

// Item is satisfied by collection elements whose identifier the set owns.
// Identifiers carried by incoming items are never trusted; the set always
// renumbers on Replace and Append.
type Item[T any] interface {
	Ident() int
	WithIdent(id int) T
}

// Set is an ordered collection with unique, contiguous identifiers.
// Insertion order is presentation order. The set only grows (Append) or
// is wholly replaced (Replace); there is no delete or reorder.
type Set[T Item[T]] struct {
	items []T
}

func NewSet[T Item[T]](seed []T) *Set[T] {
	s := &Set[T]{}
	s.Replace(seed)
	return s
}

// Replace discards the current items and installs the given ones with
// identifiers renumbered to 1..n in input order.
func (s *Set[T]) Replace(items []T) {
	s.items = make([]T, 0, len(items))
	for i, it := range items {
		s.items = append(s.items, it.WithIdent(i+1))
	}
}

// Append renumbers the given items to the contiguous range starting at
// max existing identifier + 1 (1 for an empty set), preserving their
// relative order, and concatenates them to the tail.
func (s *Set[T]) Append(items []T) {
	next := s.maxIdent() + 1
	for i, it := range items {
		s.items = append(s.items, it.WithIdent(next+i))
	}
}

func (s *Set[T]) maxIdent() int {
	max := 0
	for _, it := range s.items {
		if id := it.Ident(); id > max {
			max = id
		}
	}
	return max
}

func (s *Set[T]) Len() int { return len(s.items) }

func (s *Set[T]) At(i int) T { return s.items[i] }

// Items returns a copy; mutating it does not affect the set.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
