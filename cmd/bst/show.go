package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

var cmdShow = &cli.Command{
	Name:  "show",
	Usage: "render the shape of the tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "style",
			Usage: "sideways (right subtrees above) or tree (top down)",
			Value: "sideways",
		},
	},
	Action: func(c *cli.Context) error {
		tree, err := buildTree(c)
		if err != nil {
			return err
		}
		switch c.String("style") {
		case "sideways":
			return tree.Print(c.App.Writer)
		case "tree":
			_, err := fmt.Fprint(c.App.Writer, tree.Treeprint())
			return err
		default:
			return fmt.Errorf("unknown style %q", c.String("style"))
		}
	},
}

var cmdStats = &cli.Command{
	Name:  "stats",
	Usage: "print structural properties of the tree",
	Action: func(c *cli.Context) error {
		tree, err := buildTree(c)
		if err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(c.App.Writer)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Property", "Value"})
		t.AppendRow(table.Row{"Size", tree.Size()})
		t.AppendRow(table.Row{"Height", tree.MaxDepth()})
		t.AppendRow(table.Row{"Shallowest leaf", tree.MinDepth()})
		t.AppendRow(table.Row{"Balanced", tree.IsBalanced()})
		if m, ok := tree.Minimum(); ok {
			t.AppendRow(table.Row{"Minimum", m})
		}
		if m, ok := tree.Maximum(); ok {
			t.AppendRow(table.Row{"Maximum", m})
		}
		if r := tree.Root(); r != nil {
			t.AppendRow(table.Row{"Root", r.Key()})
		}
		t.Render()
		return nil
	},
}
