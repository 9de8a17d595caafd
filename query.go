// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import "fmt"

// Query is a lazy, composable predicate over the indices of an
// indexed sequence. QueryAt answers a point query; HiQuery answers a
// bulk query over block number i of the given layer, i.e. the
// FANOUT^layer elements starting at index i*FANOUT^layer: "is it still
// possible that some element in that block satisfies the predicate?"
//
// HiQuery may answer true conservatively, but it must never answer
// false when the block in fact contains a satisfying element (bulk
// soundness). Every Query in this package also satisfies
// HiQuery(0, i) == QueryAt(i).
type Query interface {
	Length() int

	// Fanout and Depth expose the underlying HiVec's pyramid shape.
	// FindNext (in findnext.go) needs both at runtime, since N and
	// FANOUT are construction-time fields here rather than compile-time
	// constants baked into the type.
	Fanout() int
	Depth() int

	QueryAt(i int) bool
	HiQuery(layer, i int) bool
}

// Negatable is a Query whose tree has a structural negation producing
// another well-formed Query. Only composites over negatable leaves are
// negatable in this package; EqualsQuery and RangeQuery are not.
type Negatable interface {
	Query
	Negate() Negatable
}

// EqualsQuery matches indices whose element equals a fixed item.
type EqualsQuery[T Lattice[T]] struct {
	item T
	hv   *HiVec[T]
}

func (q *EqualsQuery[T]) Length() int { return q.hv.Len() }
func (q *EqualsQuery[T]) Fanout() int { return q.hv.Fanout() }
func (q *EqualsQuery[T]) Depth() int  { return q.hv.Depth() }

func (q *EqualsQuery[T]) QueryAt(i int) bool {
	return equal(q.hv.mustGet(i), q.item)
}

// HiQuery at layer L>=1 asks whether the summary one layer below
// (covering this block) contains item: if it doesn't, no element of
// the block can equal item.
func (q *EqualsQuery[T]) HiQuery(layer, i int) bool {
	if layer == 0 {
		return q.QueryAt(i)
	}
	return q.hv.layers[layer-1][i].Contains(q.item)
}

func equal[T Lattice[T]](a, b T) bool {
	return a.PartialCmp(b) == Equal
}

// RangeQuery matches indices whose element lies within a fixed LatticeRange.
type RangeQuery[T Lattice[T]] struct {
	rng LatticeRange[T]
	hv  *HiVec[T]
}

func (q *RangeQuery[T]) Length() int { return q.hv.Len() }
func (q *RangeQuery[T]) Fanout() int { return q.hv.Fanout() }
func (q *RangeQuery[T]) Depth() int  { return q.hv.Depth() }

func (q *RangeQuery[T]) QueryAt(i int) bool {
	return q.rng.Contains(q.hv.mustGet(i))
}

// HiQuery at layer L>=1 asks whether the summary one layer below
// intersects the query range; a non-empty intersection is necessary
// (but not sufficient) for a match to exist in the block, which is
// exactly the conservative over-approximation a bulk query needs.
func (q *RangeQuery[T]) HiQuery(layer, i int) bool {
	if layer == 0 {
		return q.QueryAt(i)
	}
	return !q.hv.layers[layer-1][i].Intersect(q.rng).IsEmpty()
}

// andQuery is the plain (non-negatable) conjunction of two Queries.
type andQuery struct {
	q1, q2 Query
}

// orQuery is the plain (non-negatable) disjunction of two Queries.
type orQuery struct {
	q1, q2 Query
}

// And returns a Query matching indices where both p and q match. It
// panics if p and q have different lengths.
func And(p, q Query) Query {
	mustSameLength(p, q)
	if pn, ok := p.(Negatable); ok {
		if qn, ok := q.(Negatable); ok {
			return &negatableAnd{q1: pn, q2: qn}
		}
	}
	return &andQuery{q1: p, q2: q}
}

// Or returns a Query matching indices where either p or q matches. It
// panics if p and q have different lengths.
func Or(p, q Query) Query {
	mustSameLength(p, q)
	if pn, ok := p.(Negatable); ok {
		if qn, ok := q.(Negatable); ok {
			return &negatableOr{q1: pn, q2: qn}
		}
	}
	return &orQuery{q1: p, q2: q}
}

// mustSameLength panics unless p and q share a length, fanout and
// depth. N and FANOUT are runtime fields here rather than compile-time
// constants, so nothing else would catch two queries built over
// differently-shaped pyramids before they started producing nonsense
// results.
func mustSameLength(p, q Query) {
	if p.Length() != q.Length() {
		panic(fmt.Sprintf("hivec: combined queries have different lengths: %d != %d", p.Length(), q.Length()))
	}
	if p.Fanout() != q.Fanout() || p.Depth() != q.Depth() {
		panic(fmt.Sprintf("hivec: combined queries have different pyramid shapes: fanout %d/%d, depth %d/%d",
			p.Fanout(), q.Fanout(), p.Depth(), q.Depth()))
	}
}

func (a *andQuery) Length() int               { return a.q1.Length() }
func (a *andQuery) Fanout() int               { return a.q1.Fanout() }
func (a *andQuery) Depth() int                { return a.q1.Depth() }
func (a *andQuery) QueryAt(i int) bool        { return a.q1.QueryAt(i) && a.q2.QueryAt(i) }
func (a *andQuery) HiQuery(layer, i int) bool { return a.q1.HiQuery(layer, i) && a.q2.HiQuery(layer, i) }

func (o *orQuery) Length() int               { return o.q1.Length() }
func (o *orQuery) Fanout() int               { return o.q1.Fanout() }
func (o *orQuery) Depth() int                { return o.q1.Depth() }
func (o *orQuery) QueryAt(i int) bool        { return o.q1.QueryAt(i) || o.q2.QueryAt(i) }
func (o *orQuery) HiQuery(layer, i int) bool { return o.q1.HiQuery(layer, i) || o.q2.HiQuery(layer, i) }

// negatableAnd is a conjunction whose children are both Negatable; its
// Negate produces a negatableOr of the children's negations (De Morgan).
type negatableAnd struct {
	q1, q2 Negatable
}

func (a *negatableAnd) Length() int        { return a.q1.Length() }
func (a *negatableAnd) Fanout() int        { return a.q1.Fanout() }
func (a *negatableAnd) Depth() int         { return a.q1.Depth() }
func (a *negatableAnd) QueryAt(i int) bool { return a.q1.QueryAt(i) && a.q2.QueryAt(i) }
func (a *negatableAnd) HiQuery(layer, i int) bool {
	return a.q1.HiQuery(layer, i) && a.q2.HiQuery(layer, i)
}
func (a *negatableAnd) Negate() Negatable {
	return &negatableOr{q1: a.q1.Negate(), q2: a.q2.Negate()}
}

// negatableOr is the dual of negatableAnd.
type negatableOr struct {
	q1, q2 Negatable
}

func (o *negatableOr) Length() int        { return o.q1.Length() }
func (o *negatableOr) Fanout() int        { return o.q1.Fanout() }
func (o *negatableOr) Depth() int         { return o.q1.Depth() }
func (o *negatableOr) QueryAt(i int) bool { return o.q1.QueryAt(i) || o.q2.QueryAt(i) }
func (o *negatableOr) HiQuery(layer, i int) bool {
	return o.q1.HiQuery(layer, i) || o.q2.HiQuery(layer, i)
}
func (o *negatableOr) Negate() Negatable {
	return &negatableAnd{q1: o.q1.Negate(), q2: o.q2.Negate()}
}

// Not negates a Negatable query structurally (De Morgan push-down for
// composites; EqualsQuery and RangeQuery have no primitive negation of
// their own).
func Not(p Negatable) Negatable {
	return p.Negate()
}
