package main

import (
	"fmt"
	"io"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/logger"
	"github.com/spf13/cobra"
)

var convertFrom string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertFrom, "from", "text", "Format of the input file: text or bin")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a tree between the text and binary formats",
		Long: `The convert command reads a tree in one format and writes it in the other.

Text input is inserted key by key, so the binary output holds the tree those
inserts build. Binary input is written as sorted text, which drops the shape.

Example:
  bstctl convert numbers.txt tree.bin
  bstctl convert --from bin tree.bin numbers.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runConvert(w io.Writer, args []string) error {
	in, out := args[0], args[1]

	switch convertFrom {
	case "text":
		tree := bst.New()
		count, err := bst.LoadTextFile(tree, in)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", in, err)
		}
		logger.Debug("load text", "path", in, "read", count)
		if err := codec().SaveBinaryFile(tree, out); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		logger.Info("convert", "from", in, "to", out, "size", tree.Size())
		printInfo(w, "Converted %d numbers (%d distinct) from %s to %s\n", count, tree.Size(), in, out)
	case "bin":
		tree, err := loadTree(in)
		if err != nil {
			return err
		}
		if err := tree.SaveTextFile(out); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		logger.Info("convert", "from", in, "to", out, "size", tree.Size())
		printInfo(w, "Converted %d keys from %s to %s\n", tree.Size(), in, out)
	default:
		return fmt.Errorf("unknown input format %q, want text or bin", convertFrom)
	}
	return nil
}
