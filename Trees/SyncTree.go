package Trees

import (
	"cmp"
	"io"
	"sync"
)

// SyncTree is a BSTree guarded by a single mutex held for the whole of every
// call. It adds no concurrency to the algorithms, only exclusion.
// The zero value is an empty tree ready to use.
type SyncTree[T cmp.Ordered] struct {
	mu sync.Mutex
	t  BSTree[T]
}

// NewSync returns an empty SyncTree.
func NewSync[T cmp.Ordered]() *SyncTree[T] {
	return new(SyncTree[T])
}

// Do calls f with the underlying tree while holding the lock, for work made of
// several calls that must not interleave with others. f must not keep any
// *Node after it returns.
func (u *SyncTree[T]) Do(f func(*BSTree[T])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(&u.t)
}

// Build [Tree.Build]. The returned root must not be used without holding the
// lock, see Do.
func (u *SyncTree[T]) Build(keys []T) *Node[T] {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Build(keys)
}

func (u *SyncTree[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *SyncTree[T]) Delete(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Delete(v)
}

func (u *SyncTree[T]) Has(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Has(v)
}

func (u *SyncTree[T]) Size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Size()
}

func (u *SyncTree[T]) Height(v T) (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Height(v)
}

func (u *SyncTree[T]) Depth(v T) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Depth(v)
}

func (u *SyncTree[T]) IsBalanced() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.IsBalanced()
}

func (u *SyncTree[T]) Rebalance() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.t.Rebalance()
}

func (u *SyncTree[T]) LevelOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.LevelOrder()
}

func (u *SyncTree[T]) InOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.InOrder()
}

func (u *SyncTree[T]) PreOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.PreOrder()
}

func (u *SyncTree[T]) PostOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.PostOrder()
}

func (u *SyncTree[T]) Print(w io.Writer) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Print(w)
}
