package Trees

import (
	"cmp"
	"math"
)

// Infinity is the depth reported for a key that isn't reachable from the
// starting node. It is greater than any real depth.
const Infinity = math.MaxInt

// Node holds one key of a BSTree and owns its two subtrees.
// Nodes are only created by the tree, so the order of keys can't be broken
// from outside. All methods accept a nil receiver, which is the empty subtree.
type Node[T cmp.Ordered] struct {
	key  T
	l, r *Node[T]
}

// Key stored at n. Zero value if n is nil.
func (n *Node[T]) Key() T {
	if n == nil {
		return *new(T)
	}
	return n.key
}

// Left subtree of n.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right subtree of n.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// Find the node holding v in the subtree rooting at n. Recursive.
// Time: O(D)
func (n *Node[T]) Find(v T) *Node[T] {
	if n == nil {
		return nil
	} else if v == n.key {
		return n
	} else if v < n.key {
		return n.l.Find(v)
	}
	return n.r.Find(v)
}

// Height is the number of edges on the longest downward path from n to a leaf.
// A leaf has height 0 and nil has height -1. Recursive.
// Time: O(n)
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return max(n.l.Height(), n.r.Height()) + 1
}

// Depth is the number of edges from n down to the node holding v, or Infinity
// if v isn't found. Both subtrees are searched regardless of the keys, and the
// shallower hit wins. Recursive.
// Time: O(n)
func (n *Node[T]) Depth(v T) int {
	if n == nil {
		return Infinity
	} else if v == n.key {
		return 0
	}
	ld, rd := n.l.Depth(v), n.r.Depth(v)
	if ld == Infinity && rd == Infinity {
		return Infinity
	}
	return min(ld, rd) + 1
}

// minNode is the leftmost node of the subtree rooting at n. n mustn't be nil.
func minNode[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode is the rightmost node of the subtree rooting at n. n mustn't be nil.
func maxNode[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// checkBalance returns the height of the subtree rooting at n and whether every
// node in it has subtrees whose heights differ by at most 1. Once a subtree is
// found unbalanced the height is meaningless and no more heights are computed.
func checkBalance[T cmp.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, ok := checkBalance(n.l)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(n.r)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// build a height balanced subtree from s recursively. s[len(s)>>1] becomes the
// root, the elements before it the left subtree, the elements after it the right.
// s must be sorted in ascending order without repeated elements.
// Time: O(n)
func build[T cmp.Ordered](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}
