package main

import (
	"fmt"
	"io"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/logger"
	"github.com/spf13/cobra"
)

var showOrder string

func init() {
	cmd := newShowCmd()
	cmd.Flags().StringVar(&showOrder, "order", "in", "Traversal to print: pre, in, post or graph")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <tree.bin>",
		Short: "Print a tree saved in a binary file",
		Long: `The show command loads a binary tree file and prints one traversal
of it, or the sideways drawing with --order graph.

Example:
  bstctl show tree.bin
  bstctl show tree.bin --order graph
  bstctl show tree.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

type treeSummary struct {
	File      string    `json:"file"`
	Size      int       `json:"size"`
	Height    int       `json:"height"`
	Preorder  []bst.Key `json:"preorder"`
	Inorder   []bst.Key `json:"inorder"`
	Postorder []bst.Key `json:"postorder"`
}

func runShow(w io.Writer, args []string) error {
	path := args[0]

	tree, err := loadTree(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(w, treeSummary{
			File:      path,
			Size:      tree.Size(),
			Height:    tree.Height(),
			Preorder:  tree.Preorder(),
			Inorder:   tree.Inorder(),
			Postorder: tree.Postorder(),
		})
	}

	switch showOrder {
	case "pre":
		return tree.DisplayPreorder(w)
	case "in":
		return tree.DisplayInorder(w)
	case "post":
		return tree.DisplayPostorder(w)
	case "graph":
		return tree.DisplayGraphical(w)
	}
	return fmt.Errorf("unknown order %q, want pre, in, post or graph", showOrder)
}

func loadTree(path string) (bst.Tree, error) {
	logger.Debug("load binary", "path", path, "portable", portable)
	tree, err := codec().LoadBinaryFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree: %w", err)
	}
	logger.Info("load binary", "path", path, "size", tree.Size())
	return tree, nil
}
