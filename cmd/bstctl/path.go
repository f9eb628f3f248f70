package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/e11jah/bst"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPathCmd())
}

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <tree.bin> <key>",
		Short: "Print the path from the root to a key",
		Long: `The path command loads a binary tree file and prints the keys visited
on the way from the root down to the given key.

Example:
  bstctl path tree.bin 40
  bstctl path tree.bin 40 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runPath(w io.Writer, args []string) error {
	v, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid key %q: %w", args[1], err)
	}
	key := bst.Key(v)

	tree, err := loadTree(args[0])
	if err != nil {
		return err
	}

	path := tree.FindPath(key)
	if jsonOut {
		return printJSON(w, map[string]interface{}{
			"key":   key,
			"found": len(path) > 0,
			"path":  path,
		})
	}

	if len(path) == 0 {
		printInfo(w, "Key %d was not found.\n", key)
		return nil
	}
	printInfo(w, "Path to %d: %s\n", key, formatPath(path))
	return nil
}
