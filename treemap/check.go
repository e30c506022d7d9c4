package treemap

import (
	"fmt"
	"strings"
)

// Check walks the whole tree and returns the first violation found, or
// nil. It audits the AA shape rules (positive levels, left child exactly
// one level down, right child at most one down, no double right
// horizontal link), parent-link consistency, strict key ascent, the size
// count and the cached leftmost node. Cost is O(n); meant for tests.
func (m *Map[K, V]) Check() error {
	if m.root != nil && m.root.parent != nil {
		return fmt.Errorf("root %v has a parent", m.root.key)
	}

	count := 0
	if err := checkSubtree(m.root, &count); err != nil {
		return err
	}
	if count != m.size {
		return fmt.Errorf("size is %d but the tree holds %d nodes", m.size, count)
	}

	var leftmost *node[K, V]
	if m.root != nil {
		leftmost = m.root.leftmost()
	}
	if m.begin != leftmost {
		return fmt.Errorf("cached begin node is not the leftmost node")
	}

	var prev *node[K, V]
	for n := leftmost; n != nil; n = n.successor() {
		if prev != nil && !m.less(prev.key, n.key) {
			return fmt.Errorf("keys out of order: %v before %v", prev.key, n.key)
		}
		prev = n
	}
	return nil
}

func checkSubtree[K, V any](n *node[K, V], count *int) error {
	if n == nil {
		return nil
	}
	*count++

	if n.level < 1 {
		return fmt.Errorf("node %v at level %d", n.key, n.level)
	}
	if n.left != nil && n.left.parent != n {
		return fmt.Errorf("node %v: left child parent link broken", n.key)
	}
	if n.right != nil && n.right.parent != n {
		return fmt.Errorf("node %v: right child parent link broken", n.key)
	}
	if levelOf(n.left) != n.level-1 {
		return fmt.Errorf("node %v at level %d has left child at level %d",
			n.key, n.level, levelOf(n.left))
	}
	if d := n.level - levelOf(n.right); d != 0 && d != 1 {
		return fmt.Errorf("node %v at level %d has right child at level %d",
			n.key, n.level, levelOf(n.right))
	}
	if n.right != nil && levelOf(n.right.right) >= n.level {
		return fmt.Errorf("double right horizontal link at node %v level %d",
			n.key, n.level)
	}

	if err := checkSubtree(n.left, count); err != nil {
		return err
	}
	return checkSubtree(n.right, count)
}

// dump renders the tree sideways for failure messages, right subtree
// first, one "key(level)" per line.
func (m *Map[K, V]) dump() string {
	var b strings.Builder
	dumpSubtree(&b, m.root, 0)
	return b.String()
}

func dumpSubtree[K, V any](b *strings.Builder, n *node[K, V], depth int) {
	if n == nil {
		return
	}
	dumpSubtree(b, n.right, depth+1)
	fmt.Fprintf(b, "%s%v(%d)\n", strings.Repeat("  ", depth), n.key, n.level)
	dumpSubtree(b, n.left, depth+1)
}
