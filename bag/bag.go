// Package bag implement a multiset of ordered values based on
// golang map. Primarily meant as reference for testing the
// tree based mset algorithm.
package bag

import "cmp"

// Bag is a reference data structure, for validation purpose.
// Lookups are O(1) on the map, Min and Max scan all distinct
// keys and hence cost O(n).
type Bag[T cmp.Ordered] struct {
	id     string
	counts map[T]uint64
	total  int64
	dead   bool
}

// NewBag create a new golang map based multiset.
func NewBag[T cmp.Ordered](id string) *Bag[T] {
	return &Bag[T]{
		id:     id,
		counts: make(map[T]uint64),
	}
}

// ID return the name supplied while creating this instance.
func (b *Bag[T]) ID() string {
	return b.id
}

// Count return the total number of occurrences across all keys.
func (b *Bag[T]) Count() int64 {
	return b.total
}

// Distinct return the number of distinct keys.
func (b *Bag[T]) Distinct() int64 {
	return int64(len(b.counts))
}

// Insert one occurrence of value.
func (b *Bag[T]) Insert(value T) {
	b.counts[value]++
	b.total++
}

// Erase one occurrence of value, no-op when value is absent.
// Return whether an occurrence was removed.
func (b *Bag[T]) Erase(value T) bool {
	count, ok := b.counts[value]
	if !ok {
		return false
	}
	if count == 1 {
		delete(b.counts, value)
	} else {
		b.counts[value] = count - 1
	}
	b.total--
	return true
}

// Has return whether at least one occurrence of value is present.
func (b *Bag[T]) Has(value T) bool {
	_, ok := b.counts[value]
	return ok
}

// Occurrences return the number of occurrences of value, zero
// when absent.
func (b *Bag[T]) Occurrences(value T) uint64 {
	return b.counts[value]
}

// Min return the smallest key present, ok is false when empty.
func (b *Bag[T]) Min() (minval T, ok bool) {
	for key := range b.counts {
		if !ok || key < minval {
			minval, ok = key, true
		}
	}
	return
}

// Max return the largest key present, ok is false when empty.
func (b *Bag[T]) Max() (maxval T, ok bool) {
	for key := range b.counts {
		if !ok || key > maxval {
			maxval, ok = key, true
		}
	}
	return
}

// Destroy shall release the map, calling a second time will panic.
func (b *Bag[T]) Destroy() {
	if b.dead {
		panic("Destroy(): already dead bag")
	}
	b.counts, b.dead = nil, true
}
