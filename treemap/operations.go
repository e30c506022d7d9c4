package treemap

// Insert stores value under key and returns an iterator at the entry.
// When an equivalent key already exists the entry is left untouched and
// the boolean is false; Insert never overwrites.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	parent, found := m.findParent(key)
	if found {
		return Iterator[K, V]{m: m, n: parent}, false
	}

	n := m.acquireNode(key, value)
	n.parent = parent
	m.size++

	if parent == nil {
		m.root = n
		m.begin = n
		return Iterator[K, V]{m: m, n: n}, true
	}

	// A fresh leaf on the left can put a horizontal link on the parent;
	// on the right the first repairable shape is a double horizontal at
	// the grandparent, so the walk starts there.
	var walk *node[K, V]
	if m.less(key, parent.key) {
		parent.left = n
		walk = parent
	} else {
		parent.right = n
		walk = parent.parent
	}
	if m.less(key, m.begin.key) {
		m.begin = n
	}
	m.rebalanceInsert(walk)
	return Iterator[K, V]{m: m, n: n}, true
}

// rebalanceInsert walks from start toward the root applying skew then
// split at each ancestor. Splits push horizontal links upward one level at
// a time, so a run of ancestors with no structural change means none
// remain; the walk exits after three unchanged ancestors.
func (m *Map[K, V]) rebalanceInsert(start *node[K, V]) {
	unchanged := 0
	for n := start; n != nil && unchanged < 3; {
		prev := n
		n = m.skew(n)
		changed := n != prev
		prev = n
		n = m.split(n)
		changed = changed || n != prev

		if insertWalkHook != nil {
			insertWalkHook(n, changed)
		}

		if changed {
			unchanged = 0
		} else {
			unchanged++
		}
		n = n.parent
	}
}

// Erase removes the entry stored under key. Erasing an absent key is a
// no-op.
//
// Removing an entry with two children moves the in-order successor's
// payload into the entry's node and destroys the successor's node, so
// iterators at the erased position stay valid and observe the successor
// entry, while iterators at the successor are the ones invalidated. In
// the other cases only iterators at the erased entry are invalidated.
func (m *Map[K, V]) Erase(key K) {
	n := m.findNode(key)
	if n == nil {
		return
	}

	var start *node[K, V] // first ancestor the repair walk visits
	switch {
	case n.left != nil && n.right != nil:
		// The successor is the right subtree's leftmost node, so it has
		// no left child and detaches like a leaf.
		succ := n.right.leftmost()
		start = succ.parent
		m.relink(succ, succ.right)
		n.key = succ.key
		n.value = succ.value
		m.releaseNode(succ)
	case n.left != nil:
		start = n.parent
		m.advanceBegin(n)
		m.relink(n, n.left)
		m.releaseNode(n)
	default:
		// Leaf or right child only.
		start = n.parent
		m.advanceBegin(n)
		m.relink(n, n.right)
		m.releaseNode(n)
	}

	m.size--
	m.rebalanceErase(start)
}

// advanceBegin moves the cached leftmost node to its successor when n is
// about to be removed. Runs before any unlinking so the successor walk
// still sees intact links.
func (m *Map[K, V]) advanceBegin(n *node[K, V]) {
	if m.begin == n {
		m.begin = n.successor()
	}
}

// relink replaces n with child in n's parent slot, updating the root when
// n was the root. child may be nil.
func (m *Map[K, V]) relink(n, child *node[K, V]) {
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		m.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
}

// rebalanceErase repairs levels bottom-up from start. An ancestor whose
// level survives the recount presents an unchanged subtree root to its
// parent, so the walk stops there. One whose level drops gets the local
// repair, skews down the right spine and then splits, before the walk
// climbs on; it climbs even when a split promotes the new subtree root
// back to the old level, which is why the loop keys on the level change
// and not on the resulting level.
func (m *Map[K, V]) rebalanceErase(start *node[K, V]) {
	for n := start; n != nil; {
		changed := m.decreaseLevel(n)

		if eraseWalkHook != nil {
			eraseWalkHook(n, changed)
		}

		if !changed {
			return
		}
		n = m.skew(n)
		if n.right != nil {
			m.skew(n.right)
			if n.right.right != nil {
				m.skew(n.right.right)
			}
		}
		n = m.split(n)
		if n.right != nil {
			m.split(n.right)
		}
		n = n.parent
	}
}
