package sequence

// Position refers to one element of a Sequence independently of its rank.
// It stays valid until that element is removed. Two positions are equal when
// they refer to the same element.
type Position[E any] interface {
	Element() (E, error)
}

// node is the only Position implementation. rank always matches the slot
// the node occupies in its owner's list.
type node[E any] struct {
	element E
	rank    int
	owner   *Sequence[E] // nil once removed
}

func (n *node[E]) Element() (E, error) {
	if n.owner == nil {
		var zero E
		return zero, ErrEmptyAccess
	}
	return n.element, nil
}
