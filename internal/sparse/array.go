// Package sparse implements a popcount-compressed sparse array: a fixed
// number of addressable slots, only the present ones consuming storage.
//
// Slot width varies by tree tier (N1, N2, N3 each pick their own fanout),
// so Array takes its width as a constructor argument rather than baking a
// single fixed width into the type.
package sparse

import "github.com/millcut/voxtopo/internal/bitset"

// Array is a sparse array of up to n slots holding payload T. Only present
// slots consume an entry in Items; presence is tracked in a rank-indexed
// bitset, so Get costs one popcount rank scan over at most n/64 words, and
// InsertAt/DeleteAt of a new or removed slot additionally shift the tail of
// Items.
type Array[T any] struct {
	present bitset.Set
	Items   []T
}

// New returns an empty Array with room for n addressable slots.
func New[T any](n uint) *Array[T] {
	return &Array[T]{present: bitset.New(n)}
}

// Len returns the number of present slots.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// IsEmpty reports whether no slot is present.
func (a *Array[T]) IsEmpty() bool {
	return len(a.Items) == 0
}

// Test reports whether slot i is present, without fetching its value.
func (a *Array[T]) Test(i uint) bool {
	return a.present.Test(i)
}

// Get returns the value at slot i, if present.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.present.Test(i) {
		return a.Items[a.present.Rank0(i)], true
	}
	return value, false
}

// InsertAt sets slot i to value, overwriting any existing value. Reports
// whether the slot was already present.
func (a *Array[T]) InsertAt(i uint, value T) (existed bool) {
	if a.present.Test(i) {
		a.Items[a.present.Rank0(i)] = value
		return true
	}

	a.present.MustSet(i)
	a.insertItem(a.present.Rank0(i), value)
	return false
}

// DeleteAt removes the value at slot i, if present, shrinking Items.
func (a *Array[T]) DeleteAt(i uint) (value T, existed bool) {
	if len(a.Items) == 0 || !a.present.Test(i) {
		return value, false
	}

	rnk := a.present.Rank0(i)
	value = a.Items[rnk]

	a.deleteItem(rnk)
	a.present.MustClear(i)

	return value, true
}

// All iterates present (index, value) pairs in ascending index order —
// the order a Morton-addressed tree needs for deterministic traversal.
//
// Both the index set and the values are snapshotted before the first
// yield, so a callback that calls InsertAt/DeleteAt on this same Array
// mid-iteration (common: carve a word down to zero and delete it, or
// write back a narrowed value) sees a consistent view instead of reading
// Items at a rank the deletion has already shifted out from under it.
func (a *Array[T]) All(yield func(i uint, value T) bool) {
	indices := a.present.All()
	values := make([]T, len(indices))
	copy(values, a.Items)

	for idx, i := range indices {
		if !yield(i, values[idx]) {
			return
		}
	}
}

// insertItem inserts item at slice index rnk, shifting the tail right.
func (a *Array[T]) insertItem(rnk int, item T) {
	var zero T
	a.Items = append(a.Items, zero)
	copy(a.Items[rnk+1:], a.Items[rnk:])
	a.Items[rnk] = item
}

// deleteItem removes the item at slice index rnk, shifting the tail left.
func (a *Array[T]) deleteItem(rnk int) {
	var zero T
	copy(a.Items[rnk:], a.Items[rnk+1:])
	last := len(a.Items) - 1
	a.Items[last] = zero
	a.Items = a.Items[:last]
}
