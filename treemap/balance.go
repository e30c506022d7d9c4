package treemap

// skew repairs a left horizontal link by rotating right: when n's left
// child shares n's level, the child takes n's place and n becomes its
// right child. Returns the subtree root after the rotation, n itself when
// nothing applies. Levels are unchanged.
func (m *Map[K, V]) skew(n *node[K, V]) *node[K, V] {
	l := n.left
	if l == nil || l.level != n.level {
		return n
	}

	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	l.parent = n.parent
	switch {
	case n.parent == nil:
		m.root = l
	case n.parent.left == n:
		n.parent.left = l
	default:
		n.parent.right = l
	}
	n.parent = l

	m.stats.Skews++
	return l
}

// split repairs a double right horizontal link by rotating left: when n's
// right grandchild shares n's level, the right child takes n's place one
// level up, with n and the grandchild below it. Returns the subtree root
// after the rotation, n itself when nothing applies.
func (m *Map[K, V]) split(n *node[K, V]) *node[K, V] {
	r := n.right
	if r == nil || r.right == nil || r.right.level != n.level {
		return n
	}

	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	r.parent = n.parent
	switch {
	case n.parent == nil:
		m.root = r
	case n.parent.left == n:
		n.parent.left = r
	default:
		n.parent.right = r
	}
	n.parent = r
	r.level++

	m.stats.Splits++
	return r
}

// decreaseLevel recomputes n's level after a removal below it. When either
// child sits more than one level down, n's level drops by one, dragging a
// right child that shared the old level down with it. Reports whether the
// level changed.
func (m *Map[K, V]) decreaseLevel(n *node[K, V]) bool {
	if n.level-levelOf(n.left) <= 1 && n.level-levelOf(n.right) <= 1 {
		return false
	}
	if n.right != nil && n.right.level == n.level {
		n.right.level--
	}
	n.level--
	m.stats.LevelDecrements++
	return true
}
