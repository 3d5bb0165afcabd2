package Trees

// Height [Tree.Height]. It's the height of the subtree rooting at the node
// holding v, a leaf has height 0. Returns (-1, false) if v isn't in the tree.
// Recursive.
// Time: O(n)
func (u *BSTree[T]) Height(v T) (int, bool) {
	if n := u.Find(v); n != nil {
		return n.Height(), true
	}
	return -1, false
}

// Depth [Tree.Depth]. Recursive.
// The search doesn't use the order of keys to prune, it visits the whole tree.
// Time: O(n)
func (u *BSTree[T]) Depth(v T) int {
	return u.root.Depth(v)
}

// IsBalanced [Tree.IsBalanced]. An empty tree is balanced. Recursive.
// Time: O(n)
func (u *BSTree[T]) IsBalanced() bool {
	_, ok := checkBalance(u.root)
	return ok
}

// Rebalance [Tree.Rebalance]. The keys are collected in order, which is
// already sorted without repeats, and the tree is rebuilt from them the same
// way Build does. Recursive.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Rebalance() {
	u.root = build(u.InOrder())
}

func (u *BSTree[T]) minDepth(c *Node[T], cd int) int {
	if c == nil {
		return cd - 1
	}
	if c.l == nil {
		return u.minDepth(c.r, cd+1)
	} else if c.r == nil {
		return u.minDepth(c.l, cd+1)
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth is the depth of the shallowest leaf, -1 for an empty tree.
func (u *BSTree[T]) MinDepth() int {
	return u.minDepth(u.root, 0)
}

func (u *BSTree[T]) maxDepth(c *Node[T], cd int) int {
	if c == nil {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth is the depth of the deepest leaf, which is also the height of the
// root. -1 for an empty tree.
func (u *BSTree[T]) MaxDepth() int {
	return u.maxDepth(u.root, 0)
}
