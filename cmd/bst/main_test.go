package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	err := newApp(&b).Run(append([]string{"bst"}, args...))
	return b.String(), err
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys("1, 7,4  23\t-8")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 4, 23, -8}, keys)

	keys, err = parseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = parseKeys("1,x,3")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		arg     string
		want    step
		wantErr error
	}{
		{"insert:48", step{"insert", 48, true}, nil},
		{"DELETE:-3", step{"delete", -3, true}, nil},
		{"inorder", step{op: "inorder"}, nil},
		{"balanced:1", step{op: "balanced"}, nil},
		{"height", step{}, ErrMissingKey},
		{"depth:seven", step{}, ErrInvalidKey},
		{"sort", step{}, ErrUnknownOp},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseStep(tt.arg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun(t *testing.T) {
	out, err := runApp(t, "--keys", "3,1,2,2", "run",
		"inorder", "insert:4", "insert:4", "height:1", "depth:4", "depth:9",
		"find:2", "find:9", "balanced", "size", "min", "max")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"inorder: [1 2 3]",
		"insert:4: true",
		"insert:4: false",
		"height:1: 0",
		"depth:4: 2",
		"depth:9: Infinity",
		"find:2: 2 (left 1, right 3)",
		"find:9: not found",
		"balanced: true",
		"size: 4",
		"min: 1",
		"max: 4",
	}, "\n")+"\n", out)
}

func TestRun_Rebalance(t *testing.T) {
	out, err := runApp(t, "--keys", "", "run",
		"insert:1", "insert:2", "insert:3", "balanced", "preorder", "rebalance", "balanced", "preorder", "delete:2", "levelorder", "postorder")
	require.NoError(t, err)
	assert.Contains(t, out, "balanced: false\npreorder: [1 2 3]\nrebalance: height 1\nbalanced: true\npreorder: [2 1 3]\n")
	assert.Contains(t, out, "delete:2: true\nlevelorder: [3 1]\npostorder: [1 3]\n")
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, "run", "frobnicate")
	assert.ErrorIs(t, err, ErrUnknownOp)
	_, err = runApp(t, "--keys", "1,a", "run", "inorder")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = runApp(t, "--log-level", "loud", "run", "inorder")
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := runApp(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "└── 8\n")
	assert.Contains(t, out, "insert:48: true\n")
	assert.Contains(t, out, "delete:4: true\n")
	assert.Contains(t, out, "find:67: 67 (left 23, right 6345)\n")
	assert.Contains(t, out, "find:14: not found\n")
	assert.Contains(t, out, "inorder: [1 3 5 7 8 9 15 17 23 48 67 324 6345]\n")
	assert.Contains(t, out, "rebalance: height 3\nbalanced: true\n")
}

func TestShow(t *testing.T) {
	out, err := runApp(t, "--keys", "1 2 3", "show")
	require.NoError(t, err)
	assert.Equal(t, "│   ┌── 3\n└── 2\n    └── 1\n", out)

	out, err = runApp(t, "--keys", "1 2 3", "show", "--style", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "L: 1")
	assert.Contains(t, out, "R: 3")

	_, err = runApp(t, "show", "--style", "diagonal")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := runApp(t, "stats")
	require.NoError(t, err)
	for _, s := range []string{"Size", "11", "Height", "Balanced", "true", "6345", "Root"} {
		assert.Contains(t, out, s)
	}
}

func TestBench(t *testing.T) {
	if testing.Short() {
		t.Skip("times real workloads")
	}
	out, err := runApp(t, "bench", "--n", "64", "--rounds", "1")
	require.NoError(t, err)
	for _, w := range workloads {
		assert.Contains(t, out, w.name)
	}
	_, err = runApp(t, "bench", "--n", "1")
	assert.Error(t, err)
}
