// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

// LatticeRange is an interval over a Lattice, acting as an inclusive
// interval under the lattice's partial order rather than a topological
// one: Top is the join-side summary, Bottom is the meet-side summary.
type LatticeRange[T Lattice[T]] struct {
	Top    T
	Bottom T
}

// NewLatticeRange builds a range from explicit endpoints, with no
// validation that bottom <= top; IsEmpty detects that after the fact.
func NewLatticeRange[T Lattice[T]](top, bottom T) LatticeRange[T] {
	return LatticeRange[T]{Top: top, Bottom: bottom}
}

// Singleton returns the degenerate range {x}.
func Singleton[T Lattice[T]](x T) LatticeRange[T] {
	return LatticeRange[T]{Top: x, Bottom: x}
}

// ExpandBy grows the range to the smallest one also containing x.
func (r LatticeRange[T]) ExpandBy(x T) LatticeRange[T] {
	return LatticeRange[T]{Top: r.Top.Join(x), Bottom: r.Bottom.Meet(x)}
}

// Unite returns the least range containing both r and other.
func (r LatticeRange[T]) Unite(other LatticeRange[T]) LatticeRange[T] {
	return LatticeRange[T]{Top: r.Top.Join(other.Top), Bottom: r.Bottom.Meet(other.Bottom)}
}

// Intersect returns the greatest range contained in both r and other.
// Unlike Unite, this may produce an empty range.
func (r LatticeRange[T]) Intersect(other LatticeRange[T]) LatticeRange[T] {
	return LatticeRange[T]{Top: r.Top.Meet(other.Top), Bottom: r.Bottom.Join(other.Bottom)}
}

// Contains reports whether bottom <= x <= top under the lattice's
// partial order.
func (r LatticeRange[T]) Contains(x T) bool {
	return leq(r.Bottom, x) && leq(x, r.Top)
}

// IsEmpty reports whether bottom does not lie at or below top, i.e.
// no element can satisfy Contains.
func (r LatticeRange[T]) IsEmpty() bool {
	return !leq(r.Bottom, r.Top)
}
