package kdtree

import (
	"errors"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// DefaultRebuildRatio is the tombstone to live item ratio above which
	// Remove rebuilds the whole tree.
	DefaultRebuildRatio = 0.5
)

var (
	ErrNoMoreItems       = errors.New("There are no more items in the tree")
	ErrDuplicateKey      = errors.New("An element with the same key already exists in the tree")
	ErrNilItem           = errors.New("item is nil")
	ErrNoDimensions      = errors.New("item has no dimensions")
	ErrDimensionMismatch = errors.New("item dimension count does not match the tree")
	ErrUnimplemented     = errors.New("nearest neighbor search is not implemented")
)

type (
	tree[T any, D any] struct {
		root       *node[T]
		dimensions DimensionFunc[T, D]
		compare    CompareFunc[D]

		size       int
		tombstones int
		// dims is the dimensionality shared by every item, 0 until known
		dims      int
		fixedDims bool

		rebuildRatio float64
		rng          *rand.Rand
		logger       hclog.Logger
	}

	node[T any] struct {
		item T
		// false marks a tombstone: removed but still holding its position
		valid bool
		left  *node[T]
		right *node[T]
	}

	Callback[T any] func(item T) bool

	traverseAction int

	iterator[T any] struct {
		stack    []*node[T]
		nextNode *node[T]
	}
)

func newNode[T any](item T) *node[T] {
	return &node[T]{
		item:  item,
		valid: true,
	}
}

func newTree[T any, D any](dimensions DimensionFunc[T, D], compare CompareFunc[D], opts ...Option) *tree[T, D] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &tree[T, D]{
		dimensions:   dimensions,
		compare:      compare,
		dims:         cfg.dimensions,
		fixedDims:    cfg.dimensions > 0,
		rebuildRatio: cfg.rebuildRatio,
		rng:          cfg.rng,
		logger:       cfg.logger.Named("kdtree"),
	}
}
