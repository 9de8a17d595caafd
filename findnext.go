// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import "iter"

// FindNext returns the smallest index j >= i with q.QueryAt(j) true,
// and true. If no such index exists, it returns (0, false).
//
// On a miss at i, the inner loop ascends pyramid layers while the next
// layer up is proven empty (HiQuery(l+1, ...) == false), accumulating
// the largest FANOUT-aligned block starting at i that provably
// contains no match, then jumps past the whole block in one step.
//
// HiQuery is a conservative over-approximation: true means "maybe
// a match in this block," false means "definitely not." Ascending
// while the next layer reports false is the standard zonemap pruning
// direction — a block only gets skipped once it's been proven empty.
// Ascending on true instead would be unsound as a skip signal (true is
// inconclusive, not a license to jump past unexamined elements) and
// would also be self-defeating in practice, since HiQuery(0, j) always
// equals QueryAt(j): at the point we reach this loop QueryAt(i) is
// already known false, so an ascend-on-true loop could never get past
// its own first check.
func FindNext(q Query, i int) (int, bool) {
	n, fanout := q.Depth(), q.Fanout()
	length := q.Length()

	for i < length {
		if q.QueryAt(i) {
			return i, true
		}
		step := 1
		l := 0
		j := i
		for l < n && j%fanout == 0 && !q.HiQuery(l+1, j/fanout) {
			l++
			j /= fanout
			step *= fanout
		}
		i += step
	}
	return 0, false
}

// Count returns the number of indices satisfying q, found by
// repeatedly calling FindNext from just past the previous match.
func Count(q Query) int {
	n := 0
	i := 0
	for {
		j, ok := FindNext(q, i)
		if !ok {
			return n
		}
		n++
		i = j + 1
	}
}

// Iterator yields the strictly increasing sequence of indices
// satisfying a Query. It is non-restartable: once FindNext returns no
// further match, every subsequent call also reports no match.
type Iterator struct {
	q    Query
	next int
	done bool
}

// NewIterator returns a fresh Iterator over q, starting from index 0.
func NewIterator(q Query) *Iterator {
	return &Iterator{q: q, next: 0}
}

// Next advances to and returns the next matching index, or (0, false)
// once exhausted.
func (it *Iterator) Next() (int, bool) {
	if it.done {
		return 0, false
	}
	j, ok := FindNext(it.q, it.next)
	if !ok {
		it.done = true
		return 0, false
	}
	it.next = j + 1
	return j, true
}

// All adapts q's matches to a Go 1.23 range-over-func iterator.
func All(q Query) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := NewIterator(q)
		for {
			j, ok := it.Next()
			if !ok {
				return
			}
			if !yield(j) {
				return
			}
		}
	}
}
