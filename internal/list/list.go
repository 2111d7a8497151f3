// Package list provides the rank-indexed list contract and an
// implementation backed by a growable array.
package list

import "seqedit/internal/array"

// List is accessed by zero-based rank. Get, Set and Remove accept
// [0, Size); Add accepts [0, Size].
type List[T any] interface {
	Size() int
	IsEmpty() bool
	Get(index int) (T, error)
	Set(index int, value T) (T, error)
	Add(index int, value T) error
	Remove(index int) (T, error)
}

// ArrayList is a List stored in an array.Array.
type ArrayList[T any] struct {
	items *array.Array[T]
}

var _ List[int] = (*ArrayList[int])(nil)

func NewArrayList[T any]() *ArrayList[T] {
	return &ArrayList[T]{items: array.New[T]()}
}

func NewArrayListWithCapacity[T any](capacity int) *ArrayList[T] {
	return &ArrayList[T]{items: array.NewWithCapacity[T](capacity)}
}

// OnStamp forwards the slot hook to the backing array.
func (l *ArrayList[T]) OnStamp(fn array.StampFunc[T]) { l.items.OnStamp(fn) }

func (l *ArrayList[T]) Size() int     { return l.items.Size() }
func (l *ArrayList[T]) IsEmpty() bool { return l.items.IsEmpty() }
func (l *ArrayList[T]) Cap() int      { return l.items.Cap() }

func (l *ArrayList[T]) Get(index int) (T, error) { return l.items.Get(index) }

func (l *ArrayList[T]) Set(index int, value T) (T, error) { return l.items.Set(index, value) }

func (l *ArrayList[T]) Add(index int, value T) error { return l.items.Add(index, value) }

func (l *ArrayList[T]) Remove(index int) (T, error) { return l.items.Remove(index) }

// Append adds value after the last element.
func (l *ArrayList[T]) Append(value T) { _ = l.items.Add(l.items.Size(), value) }
