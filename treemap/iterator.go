package treemap

import "errors"

// ErrIteratorInvalid is carried by the panic raised when an iterator at
// the end sentinel is dereferenced or advanced. It is exported so callers
// can recognize the violation in recover handlers.
var ErrIteratorInvalid = errors.New("iterator does not reference an entry")

// Iterator is a bidirectional cursor over a Map's entries in ascending
// key order. Obtain one from Begin, End, Find or Insert; the zero value
// is a dead end sentinel. Iterators are small values: copy them freely
// and compare with ==, which holds exactly for two iterators at the same
// position of the same map. Next and Prev move the receiver, so take a
// pointer or use an addressable variable.
//
// An iterator stays usable across mutation of its map and is invalidated
// only when the node it references is destroyed; see Erase for which node
// that is. Using an invalidated iterator observes unspecified entries.
type Iterator[K, V any] struct {
	m *Map[K, V]
	n *node[K, V]
}

// Begin returns an iterator at the smallest entry, or End for an empty
// map. The leftmost node is cached, so Begin costs O(1).
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.begin}
}

// End returns the past-the-last sentinel. It references no entry and is
// stable: no mutation moves it.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{m: m}
}

// Find returns an iterator at key's entry, or End when key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{m: m, n: m.findNode(key)}
}

// Valid reports whether the iterator references an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil
}

// Key returns the key at the current position.
// It panics with ErrIteratorInvalid at the end sentinel.
func (it Iterator[K, V]) Key() K {
	return it.cur().key
}

// Value returns a copy of the value at the current position.
// It panics with ErrIteratorInvalid at the end sentinel.
func (it Iterator[K, V]) Value() V {
	return it.cur().value
}

// SetValue replaces the value at the current position; keys are immutable,
// values are not. It panics with ErrIteratorInvalid at the end sentinel.
func (it Iterator[K, V]) SetValue(value V) {
	it.cur().value = value
}

func (it Iterator[K, V]) cur() *node[K, V] {
	if it.n == nil {
		panic(ErrIteratorInvalid)
	}
	return it.n
}

// Next moves to the next entry in key order and reports whether one
// exists; from the largest entry it parks at the end sentinel and returns
// false. Advancing the end sentinel itself is a contract violation and
// panics with ErrIteratorInvalid.
func (it *Iterator[K, V]) Next() bool {
	it.n = it.cur().successor()
	return it.n != nil
}

// Prev moves to the previous entry and reports whether one exists. From
// the end sentinel it enters at the largest entry, making
//
//	for it := m.End(); it.Prev(); { ... }
//
// the reverse traversal loop; on an empty map it stays put and returns
// false. From the smallest entry it parks back at the end sentinel and
// returns false.
func (it *Iterator[K, V]) Prev() bool {
	if it.n == nil {
		if it.m == nil || it.m.root == nil {
			return false
		}
		it.n = it.m.root.rightmost()
		return true
	}
	it.n = it.n.predecessor()
	return it.n != nil
}
