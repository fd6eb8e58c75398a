package kdtree

import (
	"cmp"
	"iter"
)

// Tree is a mutable k-d tree keyed by the dimension vector of each item.
// A Tree is not safe for concurrent use.
type Tree[T any, D any] interface {
	Insert(item T) error
	Find(item T) Node[T]
	FindByDimensions(dims []D) Node[T]
	Contains(item T) bool
	Remove(item T) bool
	Clear()

	Size() int
	Tombstones() int
	IsReadOnly() bool

	CopyTo(dst []T, offset int) int
	Iterator() Iterator[T]
	All() iter.Seq[T]
	ForEach(callback Callback[T])

	NearestNeighbor(item T, k int) ([]T, error)

	Root() Node[T]
	Dimensions(item T) []D
}

type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

type Node[T any] interface {
	Item() T
	Valid() bool
	Left() Node[T]
	Right() Node[T]
}

// DimensionFunc extracts the ordered dimension vector of an item. It must be
// pure and return vectors of the same length for every item stored in a tree.
type DimensionFunc[T any, D any] func(item T) []D

// CompareFunc returns 0 if a==b, <0 if a<b, >0 if a>b.
type CompareFunc[D any] func(a, b D) int

// New returns an empty tree over naturally ordered dimensions.
func New[T any, D cmp.Ordered](dimensions DimensionFunc[T, D], opts ...Option) Tree[T, D] {
	return NewFunc(dimensions, cmp.Compare[D], opts...)
}

// NewFunc returns an empty tree whose dimensions are ordered by compare.
func NewFunc[T any, D any](dimensions DimensionFunc[T, D], compare CompareFunc[D], opts ...Option) Tree[T, D] {
	return newTree(dimensions, compare, opts...)
}

// Build inserts every item into a new tree, stopping at the first error.
func Build[T any, D cmp.Ordered](items []T, dimensions DimensionFunc[T, D], opts ...Option) (Tree[T, D], error) {
	t := New(dimensions, opts...)
	for _, item := range items {
		if err := t.Insert(item); err != nil {
			return nil, err
		}
	}
	return t, nil
}
