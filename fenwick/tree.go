// Package fenwick implements a binary indexed tree over any
// commutative aggregate.
//
// The tree is a plain slice the size of the input in which slot i
// stores the aggregate of a run of elements ending at i. Point updates
// and prefix aggregates both touch O(log n) slots, where a flat array
// would pay O(n) for one of the two.
//
// The aggregate is not limited to addition: any associative and
// commutative Op works for Add and PrefixAggregate. Operations that
// take a value back out of the tree (Get, Set, RangeAggregate) also
// need the operator's inverse, which min and max do not have. Trees
// over such operators are restored with Reset instead.
package fenwick

import (
	"github.com/pkg/errors"
)

// Tree represents a fixed-size list of values with support for
// efficient prefix aggregate computation. A Tree is not safe for
// concurrent use.
type Tree[V any] struct {
	// The tree slice stores range aggregates of an underlying array t.
	// Slot i holds t[i&(i+1)] ⊕ … ⊕ t[i], a range whose length is the
	// lowest set bit of i+1. To compute the prefix aggregate
	// t[0] ⊕ … ⊕ t[k], combine slot k, then slot (k&(k+1))-1, and so
	// on until the index drops below zero.
	//
	// For example, this is how the aggregate of the 13 first elements
	// is computed: k = 12 visits slot 12, slot 11 and slot 7; they
	// contain t[12], t[8] ⊕ … ⊕ t[11], and t[0] ⊕ … ⊕ t[7],
	// respectively.
	//
	tree []V
	op   Op[V]
}

// New creates a new tree holding the given elements, in O(n).
func New[V any](op Op[V], values ...V) *Tree[V] {
	t := &Tree[V]{
		tree: make([]V, len(values)),
		op:   op,
	}
	t.build(values)
	return t
}

// NewSize creates a tree of n identity elements.
func NewSize[V any](op Op[V], n int) *Tree[V] {
	if n < 0 {
		panic(errors.Wrapf(ErrSizeMismatch, "negative size %d", n))
	}
	t := make([]V, n)
	for i := range t {
		t[i] = op.Identity
	}
	return &Tree[V]{
		tree: t,
		op:   op,
	}
}

func (t *Tree[V]) build(values []V) {
	tree, op := t.tree, t.op
	n := len(tree)
	copy(tree, values)

	if op.Inverse == nil {
		for i := range tree {
			if j := i | (i + 1); j < n {
				tree[j] = op.Combine(tree[j], tree[i])
			}
		}
		return
	}

	// Running aggregate first, then strip from every slot the part
	// that belongs to its parent, walking down so parents are intact.
	for i := 1; i < n; i++ {
		tree[i] = op.Combine(tree[i-1], tree[i])
	}
	for i := n - 1; i > 0; i-- {
		if p := (i & (i + 1)) - 1; p >= 0 {
			tree[i] = op.Combine(tree[i], op.Inverse(tree[p]))
		}
	}
}

// Len returns the number of elements in the tree.
func (t *Tree[V]) Len() int {
	return len(t.tree)
}

// Op returns the operator the tree aggregates with.
func (t *Tree[V]) Op() Op[V] {
	return t.op
}

// Add combines delta into the element at index i.
func (t *Tree[V]) Add(i int, delta V) {
	t.checkIndex(i)
	for n := len(t.tree); i < n; i |= i + 1 {
		t.tree[i] = t.op.Combine(t.tree[i], delta)
	}
}

// PrefixAggregate returns the aggregate of the elements from index 0
// to index i, inclusive. It returns the identity when i is negative.
func (t *Tree[V]) PrefixAggregate(i int) V {
	if i >= len(t.tree) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "prefix %d of %d elements", i, len(t.tree)))
	}
	acc := t.op.Identity
	for ; i >= 0; i = (i & (i + 1)) - 1 {
		acc = t.op.Combine(acc, t.tree[i])
	}
	return acc
}

// Total returns the aggregate of every element.
func (t *Tree[V]) Total() V {
	return t.PrefixAggregate(len(t.tree) - 1)
}

// RangeAggregate returns the aggregate of the elements from index i to
// index j, inclusive. An empty range (i > j) yields the identity.
func (t *Tree[V]) RangeAggregate(i, j int) V {
	t.mustInvert("RangeAggregate")
	t.checkIndex(i)
	t.checkIndex(j)
	if i > j {
		return t.op.Identity
	}
	return t.op.Combine(t.PrefixAggregate(j), t.op.Inverse(t.PrefixAggregate(i-1)))
}

// Get returns the element at index i.
func (t *Tree[V]) Get(i int) V {
	t.mustInvert("Get")
	t.checkIndex(i)
	v := t.tree[i]
	// Slot i covers [i&(i+1), i]; take out everything below i.
	for j, k := i&(i+1), i; k > j; k &= k - 1 {
		v = t.op.Combine(v, t.op.Inverse(t.tree[k-1]))
	}
	return v
}

// Set sets the element at index i to v.
func (t *Tree[V]) Set(i int, v V) {
	t.Add(i, t.op.Combine(v, t.op.Inverse(t.Get(i))))
}

// Reset rebuilds the tree in place from values, which must have
// exactly Len elements. This is the only way to take a contribution
// back out of a tree whose operator has no inverse.
func (t *Tree[V]) Reset(values ...V) {
	if len(values) != len(t.tree) {
		panic(errors.Wrapf(ErrSizeMismatch, "reset with %d values, tree holds %d", len(values), len(t.tree)))
	}
	t.build(values)
}

// Clone returns an independent copy of the tree.
func (t *Tree[V]) Clone() *Tree[V] {
	return &Tree[V]{
		tree: append([]V(nil), t.tree...),
		op:   t.op,
	}
}

func (t *Tree[V]) checkIndex(i int) {
	if i < 0 || i >= len(t.tree) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d of %d elements", i, len(t.tree)))
	}
}

func (t *Tree[V]) mustInvert(method string) {
	if t.op.Inverse == nil {
		panic(errors.Wrapf(ErrNotInvertible, "%s", method))
	}
}
