package Trees

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sWorkers = 8
	sPerW    = 2000
)

// TestSyncTree_Insert records every successful insertion in a haxmap. Each key
// must be reported inserted by exactly one worker, so the count of successes
// equals the number of distinct keys.
func TestSyncTree_Insert(t *testing.T) {
	tree := NewSync[int]()
	won := haxmap.New[int, int]()
	var wg sync.WaitGroup
	var inserted atomic.Int64
	for w := range sWorkers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range sPerW {
				k := (i * 7919) % sPerW //every worker inserts the same keys
				if tree.Insert(k) {
					inserted.Add(1)
					won.Set(k, w)
				}
			}
		}(w)
	}
	wg.Wait()
	require.EqualValues(t, sPerW, inserted.Load())
	require.EqualValues(t, sPerW, won.Len())
	assert.Equal(t, sPerW, tree.Size())
	won.ForEach(func(k, _ int) bool {
		assert.True(t, tree.Has(k))
		return true
	})
}

// TestSyncTree_Delete removes keys concurrently, with cornelk/hashmap holding
// the keys that should survive.
func TestSyncTree_Delete(t *testing.T) {
	tree := NewSync[int]()
	keys := rg.Perm(sWorkers * sPerW)
	tree.Build(keys)
	alive := hashmap.New[int, struct{}]()
	for _, k := range keys {
		alive.Set(k, struct{}{})
	}
	var wg sync.WaitGroup
	for w := range sWorkers {
		wg.Add(1)
		go func(part []int) {
			defer wg.Done()
			for i, k := range part {
				if i%2 == 0 {
					continue
				}
				if !tree.Delete(k) {
					t.Errorf("failed to delete key %d", k)
				}
				alive.Del(k)
				if i%500 == 1 {
					tree.Rebalance()
				}
			}
		}(keys[w*sPerW : (w+1)*sPerW])
	}
	wg.Wait()
	assert.Equal(t, alive.Len(), tree.Size())
	alive.Range(func(k int, _ struct{}) bool {
		if !tree.Has(k) {
			t.Errorf("key %d lost", k)
		}
		return true
	})
	tree.Rebalance()
	assert.True(t, tree.IsBalanced())
}

func TestSyncTree_Do(t *testing.T) {
	tree := NewSync[string]()
	tree.Build([]string{"b", "a", "c"})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree.Do(func(u *BSTree[string]) {
				//check then act without interleaving
				if m, _ := u.Maximum(); m != "" {
					u.Insert(m + "z")
				}
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, []string{"a", "b", "c", "cz", "czz", "czzz", "czzzz"}, tree.InOrder())
	assert.Equal(t, []string{"b", "a", "c", "cz", "czz", "czzz", "czzzz"}, tree.PreOrder())
	assert.False(t, tree.IsBalanced())
	h, ok := tree.Height("c")
	assert.True(t, ok)
	assert.Equal(t, 4, h)
}
