// Package array implements a growable, contiguous array of slots with
// bounds-checked access and physical shifting on insert and remove.
package array

// InitialCapacity is used when no capacity, or a non-positive one, is requested.
const InitialCapacity = 16

// StampFunc is called with every slot index written by Add, Remove or Set
// together with the value now living in that slot.
type StampFunc[T any] func(slot int, value T)

// Array keeps its values in slots [0, count) in order; slots [count, cap)
// hold the zero value.
type Array[T any] struct {
	slots []T
	count int
	stamp StampFunc[T]
}

// New creates an array with InitialCapacity slots.
func New[T any]() *Array[T] {
	return NewWithCapacity[T](InitialCapacity)
}

// NewWithCapacity creates an array with the given number of slots. The
// capacity is a hint: the array doubles whenever it runs out of room.
func NewWithCapacity[T any](capacity int) *Array[T] {
	if capacity <= 0 { capacity = InitialCapacity }
	return &Array[T]{slots: make([]T, capacity)}
}

// OnStamp installs the hook called for every slot written by a mutation.
// Owners use it to keep per-element bookkeeping in step with physical slots.
func (a *Array[T]) OnStamp(fn StampFunc[T]) { a.stamp = fn }

func (a *Array[T]) Size() int     { return a.count }
func (a *Array[T]) IsEmpty() bool { return a.count == 0 }
func (a *Array[T]) Cap() int      { return len(a.slots) }

// Get returns the value at index without removing it.
func (a *Array[T]) Get(index int) (T, error) {
	if err := checkIndex("get", index, a.count); err != nil {
		var zero T
		return zero, err
	}
	return a.slots[index], nil
}

// Set replaces the value at index and returns the previous one.
func (a *Array[T]) Set(index int, value T) (T, error) {
	if err := checkIndex("set", index, a.count); err != nil {
		var zero T
		return zero, err
	}
	previous := a.slots[index]
	a.write(index, value)
	return previous, nil
}

// Add inserts value at index, shifting [index, size) one slot to the right.
// index may equal Size, which appends.
func (a *Array[T]) Add(index int, value T) error {
	if err := checkIndex("add", index, a.count+1); err != nil {
		return err
	}
	if a.count == len(a.slots) {
		a.expand(2 * len(a.slots))
	}
	a.shiftUp(index)
	a.write(index, value)
	return nil
}

// Remove deletes the value at index, shifting (index, size) one slot to the
// left, and returns the removed value.
func (a *Array[T]) Remove(index int) (T, error) {
	if err := checkIndex("remove", index, a.count); err != nil {
		var zero T
		return zero, err
	}
	removed := a.slots[index]
	a.shiftDown(index)
	return removed, nil
}

// expand reallocates to capacity, which must be >= size.
func (a *Array[T]) expand(capacity int) {
	grown := make([]T, capacity)
	copy(grown, a.slots[:a.count])
	a.slots = grown
}

// shiftUp opens slot index; highest index moves first so nothing is overwritten.
func (a *Array[T]) shiftUp(index int) {
	for i := a.count - 1; i >= index; i-- {
		a.write(i+1, a.slots[i])
	}
	a.count++
}

// shiftDown closes slot index and clears the vacated trailing slot.
func (a *Array[T]) shiftDown(index int) {
	for i := index; i < a.count-1; i++ {
		a.write(i, a.slots[i+1])
	}
	var zero T
	a.slots[a.count-1] = zero
	a.count--
}

func (a *Array[T]) write(slot int, value T) {
	a.slots[slot] = value
	if a.stamp != nil { a.stamp(slot, value) }
}
