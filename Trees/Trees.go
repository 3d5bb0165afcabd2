// Package Trees implements a binary search tree that is balanced on demand.
package Trees

import "cmp"

// Tree represents a set of ordered keys stored in a binary search tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Height on a key
// that isn't in the tree returns (x int, false bool), and x should not be used.
// Nothing here rebalances the tree implicitly: repeated insertions and deletions
// can degrade it toward a linked list until Rebalance is called.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T cmp.Ordered] interface {
	//Build replaces the content of the tree with keys. keys may be unsorted
	//and may contain repeated elements.
	Build(keys []T) *Node[T]
	//Insert v to the Tree. Returning true if v was added, false if it was
	//already there.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if v was removed, false if it
	//wasn't there.
	Delete(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() int
	//Height of the node holding v.
	Height(v T) (int, bool)
	//Depth of the node holding v from the root, Infinity if v isn't there.
	Depth(v T) int
	//IsBalanced reports whether the heights of the two subtrees of every node
	//differ by at most 1.
	IsBalanced() bool
	//Rebalance rebuilds the tree into the minimal height shape for its keys.
	Rebalance()
	//LevelOrder keys, breadth first.
	LevelOrder() []T
	//InOrder keys, ascending.
	InOrder() []T
	//PreOrder keys.
	PreOrder() []T
	//PostOrder keys.
	PostOrder() []T
}

var (
	_ Tree[int]     = (*BSTree[int])(nil)
	_ Tree[float64] = (*SyncTree[float64])(nil)
)
