package txlist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/foundation"
)

// Backing is the list decorated by a transactional List.
type Backing[T any] interface {
	Len() int
	At(i int) (T, error)
	Append(v T)
	Insert(i int, v T) error
	Set(i int, v T) error
	RemoveAt(i int) error
	Clear()
	All() iter.Seq2[int, T]
}

// SliceList is a Backing on top of a Go slice.
type SliceList[T any] struct {
	items []T
}

// NewSliceList creates a SliceList holding a copy of items.
func NewSliceList[T any](items ...T) *SliceList[T] {
	return &SliceList[T]{items: slices.Clone(items)}
}

func (s *SliceList[T]) Len() int { return len(s.items) }

func (s *SliceList[T]) At(i int) (T, error) {
	if err := s.check(i, len(s.items)); err != nil {
		var zero T
		return zero, err
	}
	return s.items[i], nil
}

func (s *SliceList[T]) Append(v T) {
	s.items = append(s.items, v)
}

// Insert inserts v at position i. i may be equal to Len, which appends v.
func (s *SliceList[T]) Insert(i int, v T) error {
	if err := s.check(i, len(s.items)+1); err != nil {
		return err
	}
	s.items = slices.Insert(s.items, i, v)
	return nil
}

func (s *SliceList[T]) Set(i int, v T) error {
	if err := s.check(i, len(s.items)); err != nil {
		return err
	}
	s.items[i] = v
	return nil
}

func (s *SliceList[T]) RemoveAt(i int) error {
	if err := s.check(i, len(s.items)); err != nil {
		return err
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *SliceList[T]) Clear() {
	s.items = s.items[:0]
}

func (s *SliceList[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Items returns a copy of the list's items.
func (s *SliceList[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *SliceList[T]) check(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: position %d, length %d", foundation.ErrIndexOutOfBounds, i, len(s.items))
	}
	return nil
}
