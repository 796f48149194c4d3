package fenwick

import (
	"golang.org/x/exp/constraints"
)

// Op is the aggregation a Tree maintains. Combine must be associative
// and commutative, and Identity must be its neutral element.
//
// Inverse maps a value to the one that cancels it under Combine. It is
// nil for operators that cannot be undone, such as min and max.
type Op[V any] struct {
	Combine  func(a, b V) V
	Identity V
	Inverse  func(v V) V
}

// Invertible reports whether values can be taken back out of a tree
// aggregated with op.
func (op Op[V]) Invertible() bool {
	return op.Inverse != nil
}

// Number is the set of types Sum aggregates over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is addition, inverted by negation.
func Sum[V Number]() Op[V] {
	return Op[V]{
		Combine: func(a, b V) V { return a + b },
		Inverse: func(v V) V { return -v },
	}
}

// Xor is bitwise exclusive or; every value is its own inverse.
func Xor[V constraints.Integer]() Op[V] {
	return Op[V]{
		Combine: func(a, b V) V { return a ^ b },
		Inverse: func(v V) V { return v },
	}
}

// Max keeps the largest value seen. floor must not exceed any value
// stored in the tree.
func Max[V constraints.Ordered](floor V) Op[V] {
	return Op[V]{
		Combine:  func(a, b V) V { return max(a, b) },
		Identity: floor,
	}
}

// Min keeps the smallest value seen. ceil must not be below any value
// stored in the tree.
func Min[V constraints.Ordered](ceil V) Op[V] {
	return Op[V]{
		Combine:  func(a, b V) V { return min(a, b) },
		Identity: ceil,
	}
}
