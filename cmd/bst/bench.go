package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// workload is timed once per round on a fresh set of n random keys.
type workload struct {
	name string
	// setup runs outside the timer and returns the tree the body works on.
	setup func(keys []int) *Trees.BSTree[int]
	body  func(t *Trees.BSTree[int], keys []int)
}

var workloads = []workload{
	{
		name:  "build",
		setup: func([]int) *Trees.BSTree[int] { return Trees.New[int]() },
		body:  func(t *Trees.BSTree[int], keys []int) { t.Build(keys) },
	},
	{
		name:  "insert",
		setup: func([]int) *Trees.BSTree[int] { return Trees.New[int]() },
		body: func(t *Trees.BSTree[int], keys []int) {
			for _, k := range keys {
				t.Insert(k)
			}
		},
	},
	{
		name:  "delete",
		setup: Trees.From[int],
		body: func(t *Trees.BSTree[int], keys []int) {
			for _, k := range keys {
				t.Delete(k)
			}
		},
	},
	{
		name: "rebalance",
		setup: func(keys []int) *Trees.BSTree[int] {
			t := Trees.New[int]()
			for _, k := range keys {
				t.Insert(k)
			}
			return t
		},
		body: func(t *Trees.BSTree[int], _ []int) { t.Rebalance() },
	},
	{
		name:  "depth",
		setup: Trees.From[int],
		body: func(t *Trees.BSTree[int], keys []int) {
			for _, k := range keys[:len(keys)>>4] {
				t.Depth(k)
			}
		},
	},
}

// measure runs w for rounds rounds and returns the mean and standard deviation
// of ns/op over the rounds.
func measure(w workload, n, rounds int, rg *rand.Rand) (mean, stddev float64) {
	cs := make([]float64, 0, rounds)
	for range rounds {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rg.Int()
		}
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				t := w.setup(keys)
				b.StartTimer()
				w.body(t, keys)
			}
		})
		cs = append(cs, float64(br.NsPerOp()))
		slog.Debug("round", "workload", w.name, "ns/op", br.NsPerOp(), "N", br.N)
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	mean = sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - mean
		sum += a * a
	}
	return mean, math.Sqrt(sum / float64(len(cs)))
}

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "time the tree operations over several rounds of random keys",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "keys per round",
			Value: 1 << 12,
		},
		&cli.IntFlag{
			Name:  "rounds",
			Usage: "rounds per workload",
			Value: 5,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed of the key generator",
		},
	},
	Action: func(c *cli.Context) error {
		n, rounds := c.Int("n"), c.Int("rounds")
		if n < 16 || rounds < 1 {
			return fmt.Errorf("need n >= 16 and rounds >= 1, got n=%d rounds=%d", n, rounds)
		}
		testing.Init()
		rg := rand.New(rand.NewSource(c.Int64("seed")))

		t := table.NewWriter()
		t.SetOutputMirror(c.App.Writer)
		t.SetStyle(table.StyleLight)
		t.SetTitle(fmt.Sprintf("%d keys, %d rounds", n, rounds))
		t.AppendHeader(table.Row{"Workload", "Mean ms/op", "Stddev ms/op"})
		for _, w := range workloads {
			slog.Info("measuring", "workload", w.name)
			mean, stddev := measure(w, n, rounds, rg)
			t.AppendRow(table.Row{w.name, fmt.Sprintf("%.3f", mean/1e6), fmt.Sprintf("%.3f", stddev/1e6)})
		}
		t.Render()
		return nil
	},
}
