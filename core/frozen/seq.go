package frozen

import (
	"errors"
	"iter"
	"slices"

	"github.com/goccy/go-json"
)

var (
	// ErrAlreadyFrozen is returned by every mutator once Freeze has been called.
	ErrAlreadyFrozen = errors.New("already frozen")
	// ErrIndexOutOfRange is returned when an index does not address an element.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Seq is an ordered sequence that accepts mutation until it is frozen.
// After Freeze it is read-only and safe for concurrent readers. Before
// that it must be owned by a single writer.
type Seq[T any] struct {
	items  []T
	frozen bool
}

// New returns an empty, unfrozen sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Of returns an unfrozen sequence holding items in order.
func Of[T any](items ...T) *Seq[T] {
	return &Seq[T]{items: slices.Clone(items)}
}

// Filled returns an unfrozen sequence of n copies of placeholder.
func Filled[T any](n int, placeholder T) *Seq[T] {
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		items[i] = placeholder
	}
	return &Seq[T]{items: items}
}

// Append adds v at the end.
func (s *Seq[T]) Append(v T) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	s.items = append(s.items, v)
	return nil
}

// AppendAll adds vs at the end, in order.
func (s *Seq[T]) AppendAll(vs ...T) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	s.items = append(s.items, vs...)
	return nil
}

// Insert places v at index i, shifting later elements. i may equal Len.
func (s *Seq[T]) Insert(i int, v T) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	if i < 0 || i > len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items = slices.Insert(s.items, i, v)
	return nil
}

// Set replaces the element at index i.
func (s *Seq[T]) Set(i int, v T) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	if i < 0 || i >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[i] = v
	return nil
}

// RemoveAt deletes and returns the element at index i.
func (s *Seq[T]) RemoveAt(i int) (T, error) {
	var zero T
	if s.frozen {
		return zero, ErrAlreadyFrozen
	}
	if i < 0 || i >= len(s.items) {
		return zero, ErrIndexOutOfRange
	}
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return v, nil
}

// RemoveFunc deletes every element matching del and reports how many were removed.
func (s *Seq[T]) RemoveFunc(del func(T) bool) (int, error) {
	if s.frozen {
		return 0, ErrAlreadyFrozen
	}
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, del)
	return before - len(s.items), nil
}

// Clear removes every element.
func (s *Seq[T]) Clear() error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	clear(s.items)
	s.items = s.items[:0]
	return nil
}

// Sort orders the elements with cmp. The sort is stable.
func (s *Seq[T]) Sort(cmp func(a, b T) int) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	slices.SortStableFunc(s.items, cmp)
	return nil
}

// Swap exchanges the elements at i and j.
func (s *Seq[T]) Swap(i, j int) error {
	if s.frozen {
		return ErrAlreadyFrozen
	}
	if i < 0 || i >= len(s.items) || j < 0 || j >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
	return nil
}

// Freeze makes the sequence read-only. Calling it again has no effect.
func (s *Seq[T]) Freeze() {
	s.frozen = true
}

// Frozen reports whether Freeze has been called.
func (s *Seq[T]) Frozen() bool {
	return s.frozen
}

// Len returns the number of elements. A nil sequence is empty.
func (s *Seq[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Get returns the element at index i and whether it exists.
func (s *Seq[T]) Get(i int) (T, bool) {
	var zero T
	if s == nil || i < 0 || i >= len(s.items) {
		return zero, false
	}
	return s.items[i], true
}

// ContainsFunc reports whether any element satisfies match.
func (s *Seq[T]) ContainsFunc(match func(T) bool) bool {
	if s == nil {
		return false
	}
	return slices.ContainsFunc(s.items, match)
}

// All iterates index and element pairs in order.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil {
			return
		}
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates the elements in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (s *Seq[T]) Slice() []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// MarshalJSON encodes the sequence as a JSON array. Empty sequences encode as [].
func (s *Seq[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}
