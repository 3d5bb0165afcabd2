package Trees

import (
	"cmp"
)

// BSTree is a binary search tree with no repeated values. It doesn't maintain
// balance by itself; IsBalanced checks the AVL condition and Rebalance rebuilds
// the minimal height shape from the sorted keys. Between those calls the height
// D of the tree can be anywhere between log2(n) and n-1.
// Heights and depths are computed from the nodes at every call, nothing is
// cached in the nodes.
// The zero value is an empty tree ready to use. A BSTree is not safe for
// concurrent use, see SyncTree.
type BSTree[T cmp.Ordered] struct {
	root *Node[T] //nil when empty
}

// New returns an empty BSTree.
func New[T cmp.Ordered]() *BSTree[T] {
	return new(BSTree[T])
}

// From returns a BSTree built from keys, see Build.
func From[T cmp.Ordered](keys []T) *BSTree[T] {
	u := new(BSTree[T])
	u.Build(keys)
	return u
}

// Build replaces the content of u with keys and returns the new root.
// keys are passed through Prepare, then the tree is built recursively by making
// the middle element of every sub slice the root of its subtree. The result has
// height floor(log2(n)) for n distinct keys. keys isn't modified.
// Time: O(n log n)
func (u *BSTree[T]) Build(keys []T) *Node[T] {
	u.root = build(Prepare(keys))
	return u.root
}

// Root of the tree, nil if empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root = nil
}

func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Size returns the number of keys by counting the nodes.
// Time: O(n)
func (u *BSTree[T]) Size() int {
	sz := 0
	u.VisitPreOrder(func(*Node[T]) { sz++ })
	return sz
}

// insert the value v to the subtree rooting at *curPtr recursively. curPtr is
// the link from the parent, so a new leaf can be attached to it. Returns false
// when v is already in the subtree.
func (u *BSTree[T]) insert(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &Node[T]{key: v}
		return true
	}
	if v < cur.key {
		return u.insert(&cur.l, v)
	} else if v == cur.key {
		return false
	}
	return u.insert(&cur.r, v)
}

// Insert [Tree.Insert]. Recursive.
// Keys that can't be ordered (NaN) are never inserted.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if isNaN(v) {
		return false
	}
	return u.insert(&u.root, v)
}

// remove v from the subtree rooting at *curPtr recursively. When the node
// holding v has 2 children, the key of its inorder successor is copied into it
// and the successor key is then removed from the right subtree, which ends in
// the 0 or 1 child case. Returns false if v isn't in the subtree.
func (u *BSTree[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if v < cur.key {
		return u.remove(&cur.l, v)
	} else if v > cur.key {
		return u.remove(&cur.r, v)
	} else if v != cur.key { //NaN
		return false
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.key = minNode(cur.r).key
		u.remove(&cur.r, cur.key)
	}
	return true
}

// Delete [Tree.Delete]. Recursive.
// Always uses the successor, never the predecessor, so long runs of deletions
// tend to leave the left side heavier.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	return u.remove(&u.root, v)
}

// Find the node holding v, nil if v isn't in the tree. Recursive.
// Time: O(D)
func (u *BSTree[T]) Find(v T) *Node[T] {
	return u.root.Find(v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.key {
			cur = cur.l
		} else if v == cur.key {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).key, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).key, true
}

// Predecessor returns the greatest element less than v. v doesn't need to be
// in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.key {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.Key(), p != nil
}

// Successor returns the smallest element greater than v. v doesn't need to be
// in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.key {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.Key(), p != nil
}
