package kdtree

import (
	"fmt"
	"reflect"
)

func (n *node[T]) Item() T {
	return n.item
}

func (n *node[T]) Valid() bool {
	return n.valid
}

func (n *node[T]) Left() Node[T] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *node[T]) String() string {
	const nullNode = "-"
	left, right := nullNode, nullNode
	if n.left != nil {
		left = fmt.Sprint(n.left.item)
	}
	if n.right != nil {
		right = fmt.Sprint(n.right.item)
	}
	return fmt.Sprintf("%v -> %s ; %s", n.item, left, right)
}

// tombstone marks the node removed without moving it
func (n *node[T]) tombstone() {
	n.valid = false
}

// resurrect reuses a tombstoned slot for an item with the same dimensions
func (n *node[T]) resurrect(item T) {
	n.item = item
	n.valid = true
}

// child returns the slot an item goes to after comparing on one axis
func (n *node[T]) child(left bool) **node[T] {
	if left {
		return &n.left
	}
	return &n.right
}

// walk visits live items in order: left subtree, node, right subtree
func (n *node[T]) walk(callback Callback[T]) traverseAction {
	if n == nil {
		return traverseContinue
	}
	if n.left.walk(callback) == traverseStop {
		return traverseStop
	}
	if n.valid && !callback(n.item) {
		return traverseStop
	}
	return n.right.walk(callback)
}

// isNil reports whether item is a nil interface or a nil value of a
// nillable kind.
func isNil(item any) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// modify oldNode ptr, ** means ref to pointer
func replaceRef[T any](oldNode **node[T], newNode *node[T]) {
	*oldNode = newNode
}
