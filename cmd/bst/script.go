package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

// step is one operation of a script, written as "op" or "op:key".
type step struct {
	op     string
	key    int
	hasKey bool
}

func (s step) String() string {
	if s.hasKey {
		return s.op + ":" + strconv.Itoa(s.key)
	}
	return s.op
}

// keyed tells which operations take a key. A key given to the others is ignored.
var keyed = map[string]bool{
	"insert": true,
	"delete": true,
	"find":   true,
	"height": true,
	"depth":  true,

	"balanced":   false,
	"rebalance":  false,
	"levelorder": false,
	"inorder":    false,
	"preorder":   false,
	"postorder":  false,
	"print":      false,
	"size":       false,
	"min":        false,
	"max":        false,
}

func parseStep(arg string) (step, error) {
	op, k, hasKey := strings.Cut(strings.ToLower(strings.TrimSpace(arg)), ":")
	needsKey, known := keyed[op]
	if !known {
		return step{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
	}
	if needsKey && !hasKey {
		return step{}, fmt.Errorf("%s: %w", op, ErrMissingKey)
	}
	s := step{op: op}
	if needsKey {
		key, err := strconv.Atoi(k)
		if err != nil {
			return step{}, fmt.Errorf("%s: %w %q", op, ErrInvalidKey, k)
		}
		s.key, s.hasKey = key, true
	}
	return s, nil
}

func parseScript(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, a := range args {
		s, err := parseStep(a)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func notFound(ok bool, v string) string {
	if !ok {
		return "not found"
	}
	return v
}

// apply runs s on tree and writes one line of result to w, or the whole tree for print.
func apply(w io.Writer, tree *Trees.BSTree[int], s step) error {
	var out string
	switch s.op {
	case "insert":
		out = strconv.FormatBool(tree.Insert(s.key))
	case "delete":
		out = strconv.FormatBool(tree.Delete(s.key))
	case "find":
		if n := tree.Find(s.key); n != nil {
			out = fmt.Sprintf("%d (left %s, right %s)", n.Key(), nodeKey(n.Left()), nodeKey(n.Right()))
		} else {
			out = "not found"
		}
	case "height":
		h, ok := tree.Height(s.key)
		out = notFound(ok, strconv.Itoa(h))
	case "depth":
		if d := tree.Depth(s.key); d == Trees.Infinity {
			out = "Infinity"
		} else {
			out = strconv.Itoa(d)
		}
	case "balanced":
		out = strconv.FormatBool(tree.IsBalanced())
	case "rebalance":
		tree.Rebalance()
		out = fmt.Sprintf("height %d", tree.MaxDepth())
	case "levelorder":
		out = fmt.Sprint(tree.LevelOrder())
	case "inorder":
		out = fmt.Sprint(tree.InOrder())
	case "preorder":
		out = fmt.Sprint(tree.PreOrder())
	case "postorder":
		out = fmt.Sprint(tree.PostOrder())
	case "size":
		out = strconv.Itoa(tree.Size())
	case "min":
		m, ok := tree.Minimum()
		out = notFound(ok, strconv.Itoa(m))
	case "max":
		m, ok := tree.Maximum()
		out = notFound(ok, strconv.Itoa(m))
	case "print":
		return tree.Print(w)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, s.op)
	}
	slog.Debug("step", "op", s.op, "key", s.key, "result", out)
	_, err := fmt.Fprintf(w, "%s: %s\n", s, out)
	return err
}

func nodeKey(n *Trees.Node[int]) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(n.Key())
}

func runScript(c *cli.Context, steps []step) error {
	tree, err := buildTree(c)
	if err != nil {
		return err
	}
	for _, s := range steps {
		if err := apply(c.App.Writer, tree, s); err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "build the tree then apply operations in order",
	ArgsUsage: "<op[:key]>...",
	Description: "operations: insert:K delete:K find:K height:K depth:K balanced rebalance\n" +
		"levelorder inorder preorder postorder print size min max",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		steps, err := parseScript(c.Args().Slice())
		if err != nil {
			return err
		}
		return runScript(c, steps)
	},
}

// demoScript exercises every operation on the sample keys.
var demoScript = []string{
	"print",
	"insert:48", "insert:15", "insert:17",
	"delete:4",
	"print",
	"find:67", "find:14",
	"levelorder", "inorder", "preorder", "postorder",
	"height:3", "depth:7",
	"balanced", "rebalance", "balanced",
	"print",
}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "run a session touching every operation",
	Action: func(c *cli.Context) error {
		steps, err := parseScript(demoScript)
		if err != nil {
			return err
		}
		return runScript(c, steps)
	},
}
