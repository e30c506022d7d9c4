package treemap

// leftmost returns the smallest node of n's subtree.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the largest node of n's subtree.
func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in key order, nil after the largest.
// With a right subtree the successor is its leftmost node; otherwise it is
// the first ancestor reached through a left-child link.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	p := n.parent
	for p != nil && p.right == n {
		n, p = p, p.parent
	}
	return p
}

// predecessor returns the previous node in key order, nil before the
// smallest.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	p := n.parent
	for p != nil && p.left == n {
		n, p = p, p.parent
	}
	return p
}
