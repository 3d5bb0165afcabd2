package Trees

import (
	"cmp"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Every order has two forms: one collecting the keys into a slice, and one
// calling f on each node. f must not modify the tree. An empty tree gives an
// empty slice and no calls to f.

// VisitLevelOrder calls f on every node breadth first, left child before right.
// Time: O(n); Space: O(w) where w is the widest level.
func (u *BSTree[T]) VisitLevelOrder(f func(*Node[T])) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](16)
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		f(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// LevelOrder keys.
func (u *BSTree[T]) LevelOrder() []T {
	ks := make([]T, 0)
	u.VisitLevelOrder(func(n *Node[T]) { ks = append(ks, n.key) })
	return ks
}

func inOrder[T cmp.Ordered](c *Node[T], f func(*Node[T])) {
	if c == nil {
		return
	}
	inOrder(c.l, f)
	f(c)
	inOrder(c.r, f)
}

// VisitInOrder calls f on every node in ascending order of keys. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) VisitInOrder(f func(*Node[T])) {
	inOrder(u.root, f)
}

// InOrder keys, which are sorted in ascending order. Recursive.
func (u *BSTree[T]) InOrder() []T {
	ks := make([]T, 0)
	inOrder(u.root, func(n *Node[T]) { ks = append(ks, n.key) })
	return ks
}

func preOrder[T cmp.Ordered](c *Node[T], f func(*Node[T])) {
	if c == nil {
		return
	}
	f(c)
	preOrder(c.l, f)
	preOrder(c.r, f)
}

// VisitPreOrder calls f on a node before its left then right subtree. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) VisitPreOrder(f func(*Node[T])) {
	preOrder(u.root, f)
}

// PreOrder keys. Recursive.
func (u *BSTree[T]) PreOrder() []T {
	ks := make([]T, 0)
	preOrder(u.root, func(n *Node[T]) { ks = append(ks, n.key) })
	return ks
}

func postOrder[T cmp.Ordered](c *Node[T], f func(*Node[T])) {
	if c == nil {
		return
	}
	postOrder(c.l, f)
	postOrder(c.r, f)
	f(c)
}

// VisitPostOrder calls f on a node after its left then right subtree. Recursive.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) VisitPostOrder(f func(*Node[T])) {
	postOrder(u.root, f)
}

// PostOrder keys. Recursive.
func (u *BSTree[T]) PostOrder() []T {
	ks := make([]T, 0)
	postOrder(u.root, func(n *Node[T]) { ks = append(ks, n.key) })
	return ks
}
