// Package index implements a height-balanced ordered map with duplicate
// keys, used to accelerate single-field predicates in the query planner.
//
// The balance algorithm (insert, rotate, setHeight) is the classic AVL
// shape: single and double rotations chosen by comparing the heights of
// a node's grandchildren, generalized here from a fixed int key to any
// key type plus an explicit less-than comparator, since Go generics take
// the place of a comparator-callback parameter in languages without them.
package index

import "github.com/aledsdavies/flightql/internal/flight"

// node is one AVL node. Every key maps to a non-empty bag of flight
// references; a key is never deleted once a bag exists for it (the engine
// never mutates indexes after the build phase).
type node[K any] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
	bag    []*flight.Flight
}

// Tree is a generic height-balanced ordered index. Tree is built once
// during load and is read-only for the remainder of the process; no
// locking is required by construction (spec §5).
type Tree[K any] struct {
	root *node[K]
	less func(a, b K) bool
}

// New returns an empty tree ordered by less.
func New[K any](less func(a, b K) bool) *Tree[K] {
	return &Tree[K]{less: less}
}

func (t *Tree[K]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Insert adds f under key. An existing key's bag gains f at its front
// (prepend — see DESIGN.md on bag ordering); a new key creates and
// rebalances a node. Amortized O(log n).
func (t *Tree[K]) Insert(key K, f *flight.Flight) {
	t.root = t.insert(t.root, key, f)
}

func (t *Tree[K]) insert(n *node[K], key K, f *flight.Flight) *node[K] {
	if n == nil {
		return &node[K]{key: key, height: 0, bag: []*flight.Flight{f}}
	}

	switch {
	case t.equal(key, n.key):
		n.bag = prepend(n.bag, f)
		return n
	case t.less(key, n.key):
		n.left = t.insert(n.left, key, f)
	default:
		n.right = t.insert(n.right, key, f)
	}

	setHeight(n)

	return t.balance(n)
}

func prepend(bag []*flight.Flight, f *flight.Flight) []*flight.Flight {
	bag = append(bag, nil)
	copy(bag[1:], bag)
	bag[0] = f
	return bag
}

const allowedImbalance = 1

// balance restores |height(left) - height(right)| <= 1 at n via at most
// one single or double rotation, the four classic LL/RR/LR/RL cases.
func (t *Tree[K]) balance(n *node[K]) *node[K] {
	lh, rh := height(n.left), height(n.right)

	switch {
	case lh-rh > allowedImbalance:
		if height(n.left.left) >= height(n.left.right) {
			n = rotateRight(n)
		} else {
			n.left = rotateLeft(n.left)
			n = rotateRight(n)
		}
	case rh-lh > allowedImbalance:
		if height(n.right.right) >= height(n.right.left) {
			n = rotateLeft(n)
		} else {
			n.right = rotateRight(n.right)
			n = rotateLeft(n)
		}
	}

	return n
}

// rotateRight is the classic "rotate with left child" single rotation.
func rotateRight[K any](n *node[K]) *node[K] {
	l := n.left
	n.left = l.right
	l.right = n

	setHeight(n)
	setHeight(l)

	return l
}

// rotateLeft is the classic "rotate with right child" single rotation.
func rotateLeft[K any](n *node[K]) *node[K] {
	r := n.right
	n.right = r.left
	r.left = n

	setHeight(n)
	setHeight(r)

	return r
}

func setHeight[K any](n *node[K]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func height[K any](n *node[K]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RangeQuery returns every flight stored under a key k satisfying the
// given bounds. Either bound may be nil (unbounded on that side). Order
// follows ascending in-order key traversal; within one key's bag the
// order is that bag's insertion order, which callers must treat as
// unspecified.
func (t *Tree[K]) RangeQuery(low *K, lowInclusive bool, high *K, highInclusive bool) []*flight.Flight {
	var out []*flight.Flight
	t.rangeQuery(t.root, low, lowInclusive, high, highInclusive, &out)
	return out
}

func (t *Tree[K]) rangeQuery(n *node[K], low *K, lowInclusive bool, high *K, highInclusive bool, out *[]*flight.Flight) {
	if n == nil {
		return
	}

	if low == nil || t.less(*low, n.key) || (lowInclusive && t.equal(*low, n.key)) {
		t.rangeQuery(n.left, low, lowInclusive, high, highInclusive, out)
	}

	if t.inBounds(n.key, low, lowInclusive, high, highInclusive) {
		*out = append(*out, n.bag...)
	}

	if high == nil || t.less(n.key, *high) || (highInclusive && t.equal(n.key, *high)) {
		t.rangeQuery(n.right, low, lowInclusive, high, highInclusive, out)
	}
}

func (t *Tree[K]) inBounds(key K, low *K, lowInclusive bool, high *K, highInclusive bool) bool {
	if low != nil {
		if lowInclusive {
			if t.less(key, *low) {
				return false
			}
		} else if !t.less(*low, key) {
			return false
		}
	}

	if high != nil {
		if highInclusive {
			if t.less(*high, key) {
				return false
			}
		} else if !t.less(key, *high) {
			return false
		}
	}

	return true
}
