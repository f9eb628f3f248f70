package bst

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

func (t *tree) Insert(key Key) bool {
	inserted := t.recursiveInsert(&t.root, key)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *tree) recursiveInsert(curNode **node, key Key) bool {
	curr := *curNode
	if curr == nil {
		*curNode = newNode(key)
		return true
	}

	switch {
	case key < curr.key:
		return t.recursiveInsert(&curr.left, key)
	case key > curr.key:
		return t.recursiveInsert(&curr.right, key)
	}
	// duplicates are ignored
	return false
}

func (t *tree) Remove(key Key) bool {
	removed := t.recursiveRemove(&t.root, key)
	if removed {
		t.size--
	}
	return removed
}

func (t *tree) recursiveRemove(curNode **node, key Key) bool {
	curr := *curNode
	if curr == nil {
		return false
	}

	switch {
	case key < curr.key:
		return t.recursiveRemove(&curr.left, key)
	case key > curr.key:
		return t.recursiveRemove(&curr.right, key)
	}

	switch {
	case curr.left == nil && curr.right == nil:
		*curNode = nil
	case curr.left == nil:
		*curNode = curr.right
		curr.right = nil
	case curr.right == nil:
		*curNode = curr.left
		curr.left = nil
	default:
		// two children: take over the successor's key and drop the
		// successor, which has no left child
		successor := findMin(curr.right)
		curr.key = successor.key
		return t.recursiveRemove(&curr.right, successor.key)
	}
	return true
}

// Clear detaches every node, children before their parent.
func (t *tree) Clear() {
	var last *node
	var stack []*node
	curr := t.root
	for curr != nil || len(stack) > 0 {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			curr = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		top.left, top.right = nil, nil
		last = top
	}

	t.root = nil
	t.size = 0
}

func (t *tree) Contains(key Key) bool {
	curr := t.root
	for curr != nil {
		switch {
		case key < curr.key:
			curr = curr.left
		case key > curr.key:
			curr = curr.right
		default:
			return true
		}
	}
	return false
}

func (t *tree) Min() (Key, bool) {
	if n := findMin(t.root); n != nil {
		return n.key, true
	}
	return 0, false
}

func (t *tree) Max() (Key, bool) {
	if n := findMax(t.root); n != nil {
		return n.key, true
	}
	return 0, false
}

// FindPath returns the keys from the root down to key, inclusive.
// The result is empty when key is not in the tree.
func (t *tree) FindPath(key Key) []Key {
	path := make([]Key, 0)
	t.recursiveFindPath(t.root, key, &path)
	return path
}

func (t *tree) recursiveFindPath(curr *node, key Key, path *[]Key) bool {
	if curr == nil {
		return false
	}

	*path = append(*path, curr.key)
	if curr.key == key {
		return true
	}

	next := curr.right
	if key < curr.key {
		next = curr.left
	}
	if t.recursiveFindPath(next, key, path) {
		return true
	}

	// backtrack
	*path = (*path)[:len(*path)-1]
	return false
}

func (t *tree) Preorder() []Key {
	return t.collect(Preorder)
}

func (t *tree) Inorder() []Key {
	return t.collect(Inorder)
}

func (t *tree) Postorder() []Key {
	return t.collect(Postorder)
}

func (t *tree) collect(order Order) []Key {
	keys := make([]Key, 0, t.Size())
	t.Walk(order, func(key Key) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *tree) Walk(order Order, callback Callback) {
	t.recursiveWalk(t.root, order, callback)
}

func (t *tree) recursiveWalk(curr *node, order Order, callback Callback) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	if order == Preorder && !callback(curr.key) {
		return traverseStop
	}
	if t.recursiveWalk(curr.left, order, callback) == traverseStop {
		return traverseStop
	}
	if order == Inorder && !callback(curr.key) {
		return traverseStop
	}
	if t.recursiveWalk(curr.right, order, callback) == traverseStop {
		return traverseStop
	}
	if order == Postorder && !callback(curr.key) {
		return traverseStop
	}
	return traverseContinue
}

func (t *tree) rootNode() *node {
	return t.root
}

func (t *tree) setRoot(root *node, size int) {
	t.root = root
	t.size = size
}

func (t *tree) Iterator() Iterator {
	it := &iterator{}
	it.pushLeft(t.root)
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && len(it.pending) > 0
}

func (it *iterator) Next() (Key, error) {
	if !it.HasNext() {
		return 0, ErrNoMoreNodes
	}
	cur := it.pending[len(it.pending)-1]
	it.pending = it.pending[:len(it.pending)-1]
	it.pushLeft(cur.right)
	return cur.key, nil
}

func (it *iterator) pushLeft(curr *node) {
	for ; curr != nil; curr = curr.left {
		it.pending = append(it.pending, curr)
	}
}
