package treemap

// node is a tree entry. parent is a back reference to the slot that owns
// the node; left and right are the subtrees. level is the AA level, one
// for a leaf.
type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	level  int
}

// levelOf reports a node's AA level, with absent nodes at level zero.
func levelOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.level
}
