package bst

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// find the leftmost node under n
func findMin(n *node) *node {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

func findMax(n *node) *node {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// DisplayGraphical draws the tree rotated by 90 degrees: the right subtree
// above its parent, the left one below, each level indented further.
func (t *tree) DisplayGraphical(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if t.root == nil {
		bw.WriteString(emptyTreeBanner + "\n")
		return bw.Flush()
	}
	t.root.writeGraphical(bw, 0, graphicalIndent)
	return bw.Flush()
}

func (n *node) writeGraphical(w *bufio.Writer, space, count int) {
	if n == nil {
		return
	}
	space += count

	n.right.writeGraphical(w, space, count)

	w.WriteByte('\n')
	w.WriteString(strings.Repeat(" ", space-count))
	w.WriteString(strconv.FormatInt(int64(n.key), 10))
	w.WriteByte('\n')

	n.left.writeGraphical(w, space, count)
}

func (t *tree) DisplayPreorder(w io.Writer) error {
	return t.display(w, Preorder)
}

func (t *tree) DisplayInorder(w io.Writer) error {
	return t.display(w, Inorder)
}

func (t *tree) DisplayPostorder(w io.Writer) error {
	return t.display(w, Postorder)
}

func (t *tree) display(w io.Writer, order Order) error {
	bw := bufio.NewWriter(w)
	if t.root == nil {
		bw.WriteString(emptyTreeBanner)
	}
	t.Walk(order, func(key Key) bool {
		bw.WriteString(strconv.FormatInt(int64(key), 10))
		bw.WriteByte(' ')
		return true
	})
	bw.WriteByte('\n')
	return bw.Flush()
}
