package treemap

import "sync"

func newNodePool[K, V any]() *sync.Pool {
	return &sync.Pool{New: func() any { return new(node[K, V]) }}
}

// acquireNode takes a recycled node from the pool and initializes it as a
// level-1 leaf holding key and value.
func (m *Map[K, V]) acquireNode(key K, value V) *node[K, V] {
	n := m.nodePool.Get().(*node[K, V])
	n.key = key
	n.value = value
	n.left = nil
	n.right = nil
	n.parent = nil
	n.level = 1
	return n
}

// releaseNode returns a detached node to the pool. Payload and links are
// zeroed so recycled nodes pin no memory.
func (m *Map[K, V]) releaseNode(n *node[K, V]) {
	if n == nil {
		return
	}
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.left = nil
	n.right = nil
	n.parent = nil
	n.level = 0
	m.nodePool.Put(n)
}
