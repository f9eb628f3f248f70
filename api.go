package bst

import "io"

type Tree interface {
	Insert(key Key) bool
	Remove(key Key) bool
	Clear()
	Contains(key Key) bool
	FindPath(key Key) []Key
	Min() (Key, bool)
	Max() (Key, bool)
	Size() int
	Height() int

	Preorder() []Key
	Inorder() []Key
	Postorder() []Key
	Walk(order Order, callback Callback)
	Iterator() Iterator

	DisplayGraphical(w io.Writer) error
	DisplayPreorder(w io.Writer) error
	DisplayInorder(w io.Writer) error
	DisplayPostorder(w io.Writer) error
	SaveToText(w io.Writer) error
	SaveTextFile(path string) error

	// structural access for the codec
	rootNode() *node
	setRoot(root *node, size int)
}

// Iterator walks the keys of a tree in ascending order.
// The tree must not be modified while iterating.
type Iterator interface {
	HasNext() bool
	Next() (Key, error)
}

func New() Tree {
	return &tree{}
}
