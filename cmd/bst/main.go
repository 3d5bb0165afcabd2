package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

const sampleKeys = "1,7,4,23,8,9,4,3,5,7,9,67,6345,324"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:    "bst",
		Usage:   "build, edit and inspect a binary search tree of integer keys",
		Version: versioninfo.Short(),
		Writer:  w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "keys",
				Aliases: []string{"k"},
				Usage:   "keys to build the tree from, separated by commas or spaces",
				Value:   sampleKeys,
				EnvVars: []string{"BST_KEYS"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "warn",
				EnvVars: []string{"BST_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: configLogger,
		Commands: []*cli.Command{
			cmdRun,
			cmdShow,
			cmdStats,
			cmdDemo,
			cmdBench,
		},
	}
}

func configLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("log level %q: %w", c.String("log-level"), err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// parseKeys splits s on commas and white space.
func parseKeys(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	keys := make([]int, 0, len(fields))
	for _, f := range fields {
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrInvalidKey, f)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// buildTree from the --keys flag.
func buildTree(c *cli.Context) (*Trees.BSTree[int], error) {
	keys, err := parseKeys(c.String("keys"))
	if err != nil {
		return nil, err
	}
	tree := Trees.From(keys)
	slog.Info("built tree", "keys", len(keys), "size", tree.Size(), "height", tree.MaxDepth())
	return tree, nil
}
