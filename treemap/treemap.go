package treemap

import (
	"cmp"
	"sync"
)

// Less reports whether a orders strictly before b. It must define a strict
// weak ordering; keys for which neither Less(a, b) nor Less(b, a) holds are
// treated as equivalent. The map never compares keys any other way.
type Less[K any] func(a, b K) bool

// Map is an ordered associative container backed by an AA tree. Keys are
// unique up to comparator equivalence and iterate in strictly ascending
// order. The zero value is not usable; construct with New or NewOrdered.
type Map[K, V any] struct {
	less  Less[K]
	root  *node[K, V]
	begin *node[K, V] // leftmost node, serves Begin in O(1)
	size  int

	nodePool *sync.Pool
	stats    Metrics
}

// New returns an empty Map ordered by less.
func New[K, V any](less Less[K]) *Map[K, V] {
	return &Map[K, V]{
		less:     less,
		nodePool: newNodePool[K, V](),
	}
}

// NewOrdered returns an empty Map for a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Less[K])
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Get returns the value stored under key.
// The boolean is true if the key exists, false otherwise.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.findNode(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether an entry equivalent to key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.findNode(key) != nil
}

// findNode returns the node whose key is equivalent to key, or nil.
func (m *Map[K, V]) findNode(key K) *node[K, V] {
	n := m.root
	for n != nil {
		switch {
		case m.less(key, n.key):
			n = n.left
		case m.less(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// findParent locates key's node, or the node that would become its parent
// if key were inserted now. found distinguishes the two outcomes. The node
// is nil only for an empty map, which the size check identifies up front.
func (m *Map[K, V]) findParent(key K) (*node[K, V], bool) {
	if m.size == 0 {
		return nil, false
	}
	n := m.root
	for {
		switch {
		case m.less(key, n.key):
			if n.left == nil {
				return n, false
			}
			n = n.left
		case m.less(n.key, key):
			if n.right == nil {
				return n, false
			}
			n = n.right
		default:
			return n, true
		}
	}
}

// Clone returns a deep copy of the map. Structure and levels carry over
// unchanged, so the copy behaves identically; entries are value copies and
// later mutation of either map never shows through the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.less)
	out.size = m.size
	out.root = cloneSubtree(m.root, nil)
	if out.root != nil {
		out.begin = out.root.leftmost()
	}
	return out
}

func cloneSubtree[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{key: n.key, value: n.value, parent: parent, level: n.level}
	c.left = cloneSubtree(n.left, c)
	c.right = cloneSubtree(n.right, c)
	return c
}

// Move transfers every entry to a new Map in O(1) without copying nodes.
// The receiver is left valid and empty and keeps its comparator.
func (m *Map[K, V]) Move() *Map[K, V] {
	out := &Map[K, V]{
		less:     m.less,
		root:     m.root,
		begin:    m.begin,
		size:     m.size,
		nodePool: m.nodePool,
		stats:    m.stats,
	}
	m.root = nil
	m.begin = nil
	m.size = 0
	m.nodePool = newNodePool[K, V]()
	m.stats = Metrics{}
	return out
}

// Clear removes all entries. The teardown walk is iterative: left links
// are rotated away so no stack is needed, and every node returns to the
// pool.
func (m *Map[K, V]) Clear() {
	n := m.root
	for n != nil {
		if n.left != nil {
			l := n.left
			n.left = l.right
			l.right = n
			n = l
			continue
		}
		r := n.right
		m.releaseNode(n)
		n = r
	}
	m.root = nil
	m.begin = nil
	m.size = 0
}
