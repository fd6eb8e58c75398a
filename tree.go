package kdtree

import (
	"iter"
	"slices"
)

func (t *tree[T, D]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[T, D]) Tombstones() int {
	if t == nil {
		return 0
	}
	return t.tombstones
}

func (t *tree[T, D]) IsReadOnly() bool {
	return false
}

func (t *tree[T, D]) Root() Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Dimensions returns a copy of the dimension vector of item.
func (t *tree[T, D]) Dimensions(item T) []D {
	return slices.Clone(t.dimensions(item))
}

func (t *tree[T, D]) Insert(item T) error {
	if isNil(item) {
		return ErrNilItem
	}
	dims := t.dimensions(item)
	if err := t.checkDims(dims); err != nil {
		return err
	}
	if err := t.insert(item, dims); err != nil {
		return err
	}
	if t.dims == 0 {
		t.dims = len(dims)
	}
	return nil
}

func (t *tree[T, D]) checkDims(dims []D) error {
	if len(dims) == 0 {
		return ErrNoDimensions
	}
	if t.dims != 0 && len(dims) != t.dims {
		return ErrDimensionMismatch
	}
	return nil
}

func (t *tree[T, D]) insert(item T, dims []D) error {
	curNode := &t.root
	for depth := 0; *curNode != nil; depth++ {
		curr := *curNode
		nodeDims := t.dimensions(curr.item)

		// a match on every axis is the same key, not just a tie on this one
		if t.equal(dims, nodeDims) {
			if curr.valid {
				return ErrDuplicateKey
			}
			curr.resurrect(item)
			t.size++
			t.tombstones--
			t.logger.Trace("resurrected tombstone", "depth", depth)
			return nil
		}

		curNode = curr.child(t.goesLeft(dims, nodeDims, depth))
	}

	replaceRef(curNode, newNode(item))
	t.size++
	return nil
}

func (t *tree[T, D]) Find(item T) Node[T] {
	if isNil(item) {
		return nil
	}
	return t.FindByDimensions(t.dimensions(item))
}

func (t *tree[T, D]) FindByDimensions(dims []D) Node[T] {
	if n := t.find(dims); n != nil {
		return n
	}
	return nil
}

func (t *tree[T, D]) Contains(item T) bool {
	return t.Find(item) != nil
}

// find returns the live node holding dims. The walk stops at the first node
// with an equal vector since at most one node, live or not, can hold it.
func (t *tree[T, D]) find(dims []D) *node[T] {
	if t.checkDims(dims) != nil {
		return nil
	}

	curr := t.root
	for depth := 0; curr != nil; depth++ {
		nodeDims := t.dimensions(curr.item)
		if t.equal(dims, nodeDims) {
			if curr.valid {
				return curr
			}
			return nil
		}
		curr = *curr.child(t.goesLeft(dims, nodeDims, depth))
	}
	return nil
}

func (t *tree[T, D]) Remove(item T) bool {
	if isNil(item) {
		return false
	}
	n := t.find(t.dimensions(item))
	if n == nil {
		return false
	}

	n.tombstone()
	t.size--
	t.tombstones++

	if t.needsRebuild() {
		t.rebuild()
	}
	return true
}

func (t *tree[T, D]) needsRebuild() bool {
	if t.size == 0 || t.tombstones == 0 {
		return false
	}
	return float64(t.tombstones)/float64(t.size) > t.rebuildRatio
}

// rebuild drops every tombstone by reinserting the live items in random
// order.
func (t *tree[T, D]) rebuild() {
	items := make([]T, 0, t.size)
	t.root.walk(func(item T) bool {
		items = append(items, item)
		return true
	})

	t.logger.Debug("rebuilding tree", "live", len(items), "tombstones", t.tombstones, "ratio", t.rebuildRatio)

	t.reset()
	t.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	for _, item := range items {
		if err := t.insert(item, t.dimensions(item)); err != nil {
			t.logger.Error("failed to reinsert item during rebuild", "item", item, "error", err)
		}
	}
}

func (t *tree[T, D]) reset() {
	t.root = nil
	t.size = 0
	t.tombstones = 0
}

func (t *tree[T, D]) Clear() {
	t.reset()
	if !t.fixedDims {
		t.dims = 0
	}
}

func (t *tree[T, D]) NearestNeighbor(item T, k int) ([]T, error) {
	return nil, ErrUnimplemented
}

// CopyTo copies live items in iteration order into dst starting at offset
// and returns how many were copied. Items that do not fit are dropped.
func (t *tree[T, D]) CopyTo(dst []T, offset int) int {
	if offset < 0 || offset > len(dst) {
		return 0
	}
	copied := 0
	t.root.walk(func(item T) bool {
		if offset+copied >= len(dst) {
			return false
		}
		dst[offset+copied] = item
		copied++
		return true
	})
	return copied
}

func (t *tree[T, D]) ForEach(callback Callback[T]) {
	if callback == nil {
		return
	}
	t.root.walk(callback)
}

func (t *tree[T, D]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.walk(yield)
	}
}

func (t *tree[T, D]) equal(a, b []D) bool {
	return slices.EqualFunc(a, b, func(x, y D) bool {
		return t.compare(x, y) == 0
	})
}

// goesLeft compares on the axis picked by depth; ties go left.
func (t *tree[T, D]) goesLeft(dims, nodeDims []D, depth int) bool {
	k := depth % len(dims)
	return t.compare(dims[k], nodeDims[k]) <= 0
}

func (t *tree[T, D]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	it.pushLeft(t.root)
	it.next()
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreItems
	}
	cur := it.nextNode
	it.next()
	return cur.item, nil
}

// next pops nodes until a live one is found, descending into the right
// subtree of each popped node.
func (it *iterator[T]) next() {
	it.nextNode = nil
	for len(it.stack) > 0 {
		curNode := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.pushLeft(curNode.right)
		if curNode.valid {
			it.nextNode = curNode
			return
		}
	}
}

func (it *iterator[T]) pushLeft(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
