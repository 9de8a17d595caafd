// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import "cmp"

// Scalar lifts any totally ordered scalar type to a Lattice under
// min/max: any totally ordered type is a lattice this way, with Join
// as max and Meet as min.
type Scalar[T cmp.Ordered] struct {
	Val T
}

// NewScalar wraps a value as a Scalar lattice element.
func NewScalar[T cmp.Ordered](v T) Scalar[T] {
	return Scalar[T]{Val: v}
}

func (s Scalar[T]) Join(other Scalar[T]) Scalar[T] {
	if s.Val >= other.Val {
		return s
	}
	return other
}

func (s Scalar[T]) Meet(other Scalar[T]) Scalar[T] {
	if s.Val <= other.Val {
		return s
	}
	return other
}

func (s Scalar[T]) PartialCmp(other Scalar[T]) Ordering {
	switch {
	case s.Val < other.Val:
		return Less
	case s.Val > other.Val:
		return Greater
	default:
		return Equal
	}
}

// BoolL lifts bool to a Lattice with false < true.
type BoolL bool

func (b BoolL) Join(other BoolL) BoolL { return b || other }
func (b BoolL) Meet(other BoolL) BoolL { return b && other }

func (b BoolL) PartialCmp(other BoolL) Ordering {
	switch {
	case b == other:
		return Equal
	case !bool(b) && bool(other):
		return Less
	default:
		return Greater
	}
}
