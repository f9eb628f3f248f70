package bst

import (
	"errors"
	"fmt"
)

const (
	Preorder Order = iota
	Inorder
	Postorder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// indentation per depth level of DisplayGraphical
	graphicalIndent = 10

	emptyTreeBanner = "[tree is empty]"
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
	ErrOpen        = errors.New("cannot open file")
)

type (
	tree struct {
		size int
		root *node
	}

	// Key is the value stored in a tree node. It is 32 bits wide because
	// the binary format stores keys as 4-byte integers.
	Key int32

	// Order selects a depth-first traversal order.
	Order int

	node struct {
		key         Key
		left, right *node
	}

	// Callback is called for every visited key; returning false stops the walk.
	Callback func(key Key) bool

	traverseAction int

	iterator struct {
		// pending holds the nodes whose key has not been returned yet,
		// the top of the stack is the next key in order.
		pending []*node
	}
)

func (o Order) String() string {
	names := []string{"Preorder", "Inorder", "Postorder"}
	if o < 0 || int(o) >= len(names) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return names[o]
}

func newNode(key Key) *node {
	return &node{key: key}
}
