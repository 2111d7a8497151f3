// Package sequence implements the Sequence ADT: a list that can be addressed
// both by rank and by Position, stored in a single growable array.
//
// Every node caches its own rank. The backing array reports each slot it
// writes while shifting, and the sequence re-stamps the node living there, so
// IndexOf(AtIndex(i)) == i holds after any mutation.
//
// A Sequence is not safe for concurrent use.
package sequence

import (
	"fmt"
	"strings"

	"seqedit/internal/list"
)

// Sequence is an ordered collection addressed by rank or by Position.
type Sequence[E any] struct {
	items *list.ArrayList[*node[E]]
}

// New creates an empty sequence with the default initial capacity.
func New[E any]() *Sequence[E] {
	return wrap[E](list.NewArrayList[*node[E]]())
}

// NewWithCapacity creates an empty sequence; capacity is only a hint.
func NewWithCapacity[E any](capacity int) *Sequence[E] {
	return wrap[E](list.NewArrayListWithCapacity[*node[E]](capacity))
}

func wrap[E any](items *list.ArrayList[*node[E]]) *Sequence[E] {
	s := &Sequence[E]{items: items}
	items.OnStamp(func(slot int, n *node[E]) { n.rank = slot })
	return s
}

func (s *Sequence[E]) Size() int     { return s.items.Size() }
func (s *Sequence[E]) IsEmpty() bool { return s.items.IsEmpty() }

// Get returns the element at rank index.
func (s *Sequence[E]) Get(index int) (E, error) {
	n, err := s.items.Get(index)
	if err != nil {
		var zero E
		return zero, err
	}
	return n.element, nil
}

// Set replaces the element at rank index and returns the previous one.
// Positions referring to that element remain valid.
func (s *Sequence[E]) Set(index int, element E) (E, error) {
	n, err := s.items.Get(index)
	if err != nil {
		var zero E
		return zero, err
	}
	previous := n.element
	n.element = element
	return previous, nil
}

// Add inserts element at rank index, moving every element at rank >= index
// one rank up. index may equal Size.
func (s *Sequence[E]) Add(index int, element E) error {
	_, err := s.insert(index, element)
	return err
}

// Remove deletes the element at rank index and returns it. Any position
// referring to it becomes invalid.
func (s *Sequence[E]) Remove(index int) (E, error) {
	n, err := s.items.Remove(index)
	if err != nil {
		var zero E
		return zero, err
	}
	element := n.element
	var zero E
	n.element = zero
	n.owner = nil
	return element, nil
}

// First returns the position at rank 0, or nil when empty.
func (s *Sequence[E]) First() Position[E] { return s.at(0) }

// Last returns the position at rank Size-1, or nil when empty.
func (s *Sequence[E]) Last() Position[E] { return s.at(s.Size() - 1) }

// Before returns the position preceding p, or nil when p is first.
func (s *Sequence[E]) Before(p Position[E]) (Position[E], error) {
	n, err := s.validate(p)
	if err != nil { return nil, err }
	return s.at(n.rank - 1), nil
}

// After returns the position following p, or nil when p is last.
func (s *Sequence[E]) After(p Position[E]) (Position[E], error) {
	n, err := s.validate(p)
	if err != nil { return nil, err }
	return s.at(n.rank + 1), nil
}

func (s *Sequence[E]) AddFirst(element E) Position[E] {
	n, _ := s.insert(0, element)
	return n
}

func (s *Sequence[E]) AddLast(element E) Position[E] {
	n, _ := s.insert(s.Size(), element)
	return n
}

// AddBefore inserts element immediately before p and returns its position.
func (s *Sequence[E]) AddBefore(p Position[E], element E) (Position[E], error) {
	n, err := s.validate(p)
	if err != nil { return nil, err }
	return s.insertPosition(n.rank, element)
}

// AddAfter inserts element immediately after p and returns its position.
func (s *Sequence[E]) AddAfter(p Position[E], element E) (Position[E], error) {
	n, err := s.validate(p)
	if err != nil { return nil, err }
	return s.insertPosition(n.rank+1, element)
}

// SetPosition replaces the element at p and returns the previous one.
func (s *Sequence[E]) SetPosition(p Position[E], element E) (E, error) {
	n, err := s.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	previous := n.element
	n.element = element
	return previous, nil
}

// RemovePosition deletes the element at p and returns it. p is invalid afterwards.
func (s *Sequence[E]) RemovePosition(p Position[E]) (E, error) {
	n, err := s.validate(p)
	if err != nil {
		var zero E
		return zero, err
	}
	return s.Remove(n.rank)
}

// AtIndex returns the position of the element at rank index.
func (s *Sequence[E]) AtIndex(index int) (Position[E], error) {
	n, err := s.items.Get(index)
	if err != nil { return nil, err }
	return n, nil
}

// IndexOf returns the current rank of p.
func (s *Sequence[E]) IndexOf(p Position[E]) (int, error) {
	n, err := s.validate(p)
	if err != nil { return -1, err }
	return n.rank, nil
}

// Elements returns a copy of the elements in rank order.
func (s *Sequence[E]) Elements() []E {
	out := make([]E, 0, s.Size())
	for i := 0; i < s.Size(); i++ {
		n, _ := s.items.Get(i)
		out = append(out, n.element)
	}
	return out
}

// String renders (rank,element) pairs, e.g. {(0,A),(1,B)}. Meant for
// diagnostics only.
func (s *Sequence[E]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < s.Size(); i++ {
		n, _ := s.items.Get(i)
		if i > 0 { b.WriteByte(',') }
		fmt.Fprintf(&b, "(%d,%v)", n.rank, n.element)
	}
	b.WriteByte('}')
	return b.String()
}

// insert is the single entry point for structural insertion. Ranks of the
// shifted nodes and of the new node are stamped by the list hook.
func (s *Sequence[E]) insert(index int, element E) (*node[E], error) {
	n := &node[E]{element: element, owner: s}
	if err := s.items.Add(index, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Sequence[E]) insertPosition(index int, element E) (Position[E], error) {
	n, err := s.insert(index, element)
	if err != nil { return nil, err }
	return n, nil
}

// at returns the position at index, or an untyped nil outside [0, Size).
func (s *Sequence[E]) at(index int) Position[E] {
	n, err := s.items.Get(index)
	if err != nil { return nil }
	return n
}

func (s *Sequence[E]) validate(p Position[E]) (*node[E], error) {
	n, ok := p.(*node[E])
	if !ok || n == nil || n.owner != s {
		return nil, ErrInvalidHandle
	}
	return n, nil
}
