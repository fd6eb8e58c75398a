package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeString(t *testing.T) {
	n := newNode(point{2, 2})
	assert.Equal(t, "{2 2} -> - ; -", n.String())

	n.left = newNode(point{1, 1})
	n.right = newNode(point{3, 3})
	assert.Equal(t, "{2 2} -> {1 1} ; {3 3}", n.String())
}

func TestNodeChildren(t *testing.T) {
	n := newNode(point{2, 2})
	assert.True(t, n.Valid())
	assert.Nil(t, n.Left())
	assert.Nil(t, n.Right())

	replaceRef(n.child(true), newNode(point{1, 1}))
	assert.NotNil(t, n.Left())
	assert.Equal(t, point{1, 1}, n.Left().Item())
	assert.Nil(t, n.Right())
}

func TestNodeTombstone(t *testing.T) {
	n := newNode(point{2, 2})
	n.tombstone()
	assert.False(t, n.Valid())

	n.resurrect(point{2, 2})
	assert.True(t, n.Valid())
}

func TestNodeWalk(t *testing.T) {
	root := newNode(point{2, 2})
	root.left = newNode(point{1, 1})
	root.right = newNode(point{3, 3})
	root.right.left = newNode(point{3, 0})
	root.tombstone()

	var items []point
	assert.Equal(t, traverseContinue, root.walk(func(p point) bool {
		items = append(items, p)
		return true
	}))
	assert.Equal(t, []point{{1, 1}, {3, 0}, {3, 3}}, items)

	items = nil
	assert.Equal(t, traverseStop, root.walk(func(p point) bool {
		items = append(items, p)
		return len(items) < 2
	}))
	assert.Equal(t, []point{{1, 1}, {3, 0}}, items)

	var empty *node[point]
	assert.Equal(t, traverseContinue, empty.walk(func(point) bool { return false }))
}

func TestIsNil(t *testing.T) {
	var p *place
	var m map[string]int
	var s []int
	var e error

	assert.True(t, isNil(nil))
	assert.True(t, isNil(p))
	assert.True(t, isNil(m))
	assert.True(t, isNil(s))
	assert.True(t, isNil(e))
	assert.False(t, isNil(point{}))
	assert.False(t, isNil(0))
	assert.False(t, isNil(&place{}))
	assert.False(t, isNil([]int{}))
}
