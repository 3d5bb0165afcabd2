package Trees

import (
	"cmp"
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// printSideways writes the subtree rooting at c turned 90 degrees counter
// clockwise: right subtree above, left subtree below. isLeft is true for the
// root and for left children.
func printSideways[T cmp.Ordered](w io.Writer, c *Node[T], prefix string, isLeft bool) error {
	if c.r != nil {
		next := prefix + "    "
		if isLeft {
			next = prefix + "│   "
		}
		if err := printSideways(w, c.r, next, false); err != nil {
			return err
		}
	}
	branch := "┌── "
	if isLeft {
		branch = "└── "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, branch, c.key); err != nil {
		return err
	}
	if c.l != nil {
		next := prefix + "│   "
		if isLeft {
			next = prefix + "    "
		}
		return printSideways(w, c.l, next, true)
	}
	return nil
}

// Print the shape of the tree to w, one key per line, with the root at the left
// margin and right subtrees above left ones. Writes nothing for an empty tree.
// Recursive.
func (u *BSTree[T]) Print(w io.Writer) error {
	if u.root == nil {
		return nil
	}
	return printSideways(w, u.root, "", true)
}

func addBranches[T cmp.Ordered](tp treeprint.Tree, c *Node[T]) {
	if c.l != nil {
		addBranches(tp.AddBranch(fmt.Sprintf("L: %v", c.l.key)), c.l)
	}
	if c.r != nil {
		addBranches(tp.AddBranch(fmt.Sprintf("R: %v", c.r.key)), c.r)
	}
}

// Treeprint renders the tree top down, children labelled by side.
// Returns an empty string for an empty tree. Recursive.
func (u *BSTree[T]) Treeprint() string {
	if u.root == nil {
		return ""
	}
	tp := treeprint.NewWithRoot(fmt.Sprint(u.root.key))
	addBranches(tp, u.root)
	return tp.String()
}
