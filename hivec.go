// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package hivec provides accelerated predicate search over large
// in-memory sequences, built on a lattice-valued summary pyramid
// (HiVec) and a composable predicate tree (HiQuery, see query.go).
//
// A HiVec stores a fixed-length sequence of lattice elements plus N
// pyramid layers of LatticeRange summaries, each layer FANOUT times
// smaller than the one below. A HiQuery answers both a point query
// (QueryAt) and a bulk query (HiQuery) that consults those summaries
// to decide whether a whole FANOUT^layer block can be skipped.
package hivec

import (
	"fmt"

	"github.com/gaissmai/hivec/internal/fold"
	"github.com/pkg/errors"
)

// HiVec is a fixed-length sequence of lattice elements of type T,
// summarized by an N-layer pyramid of LatticeRange[T] with branching
// factor fanout. The sequence length is fixed after construction;
// only in-place value mutation (Mutate) is supported.
type HiVec[T Lattice[T]] struct {
	table  []T
	layers [][]LatticeRange[T]
	n      int
	fanout int
}

// New builds a HiVec over table, with n summary layers above it and
// the given branching factor. It returns an error, not a panic,
// because fanout/n are caller-supplied configuration rather than an
// internal invariant: a bad configuration is a normal, recoverable failure
// the way a bad CLI flag or config file value would be.
//
// n == 0 is accepted and means "no pyramid" — HiQuery.HiQuery degrades
// to pass-through and findnext becomes a linear scan.
func New[T Lattice[T]](table []T, n, fanout int) (*HiVec[T], error) {
	if fanout < 2 {
		return nil, errors.Errorf("hivec: fanout must be >= 2, got %d", fanout)
	}
	if n < 0 {
		return nil, errors.Errorf("hivec: n must be >= 0, got %d", n)
	}

	hv := &HiVec[T]{
		table:  table,
		layers: make([][]LatticeRange[T], n),
		n:      n,
		fanout: fanout,
	}

	if n == 0 {
		return hv, nil
	}

	hv.layers[0] = buildLayer0(table, fanout)
	for l := 1; l < n; l++ {
		hv.layers[l] = buildNextLayer(hv.layers[l-1], fanout)
	}
	return hv, nil
}

// buildLayer0 folds consecutive runs of up to fanout table entries
// with ExpandBy, starting from the singleton of the run's first
// element. A short final run (len(table) % fanout != 0) is folded
// over only its actual members.
func buildLayer0[T Lattice[T]](table []T, fanout int) []LatticeRange[T] {
	chunks := fold.Chunk(len(table), fanout)
	out := make([]LatticeRange[T], len(chunks))
	for i, c := range chunks {
		out[i] = foldElements(table[c[0]:c[1]])
	}
	return out
}

// buildNextLayer folds consecutive runs of up to fanout ranges from
// the layer below with Unite.
func buildNextLayer[T Lattice[T]](prev []LatticeRange[T], fanout int) []LatticeRange[T] {
	chunks := fold.Chunk(len(prev), fanout)
	out := make([]LatticeRange[T], len(chunks))
	for i, c := range chunks {
		out[i] = fold.Reduce(prev[c[0]:c[1]], LatticeRange[T].Unite)
	}
	return out
}

// foldElements folds a non-empty run of raw elements into a single
// range via ExpandBy, seeded from the singleton of the first element.
func foldElements[T Lattice[T]](elems []T) LatticeRange[T] {
	r := Singleton(elems[0])
	for _, e := range elems[1:] {
		r = r.ExpandBy(e)
	}
	return r
}

// Len returns the fixed sequence length.
func (hv *HiVec[T]) Len() int { return len(hv.table) }

// Fanout returns the pyramid's branching factor.
func (hv *HiVec[T]) Fanout() int { return hv.fanout }

// Depth returns the number of summary layers above the raw sequence.
func (hv *HiVec[T]) Depth() int { return hv.n }

// Get returns element i and true, or the zero value and false if i is
// out of range.
func (hv *HiVec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(hv.table) {
		var zero T
		return zero, false
	}
	return hv.table[i], true
}

// mustGet returns element i, panicking with a precondition-violation
// message if i is out of range. Unlike New's config validation, an
// out-of-bounds index here is always a caller bug, not recoverable
// configuration, so it panics rather than returning an error.
func (hv *HiVec[T]) mustGet(i int) T {
	v, ok := hv.Get(i)
	if !ok {
		panic(fmt.Sprintf("hivec: index %d out of range [0,%d)", i, len(hv.table)))
	}
	return v
}

// Mutate applies f to element i in place, then repairs the pyramid
// invariant over the minimal window spanning the affected summaries.
// It panics if i is out of range.
func (hv *HiVec[T]) Mutate(i int, f func(old T) T) {
	if i < 0 || i >= len(hv.table) {
		panic(fmt.Sprintf("hivec: mutate index %d out of range [0,%d)", i, len(hv.table)))
	}
	hv.table[i] = f(hv.table[i])
	hv.repairInvariant(i, i)
}

// repairInvariant restores the pyramid invariant over the table index
// range [lo, hi] (inclusive) and everything above it, after a mutation
// touched that range.
func (hv *HiVec[T]) repairInvariant(lo, hi int) {
	if hv.n == 0 {
		return
	}

	alignedLo, alignedHi := alignOutward(lo, hi, hv.fanout, len(hv.table)-1)
	blockLo, blockHi := alignedLo/hv.fanout, alignedHi/hv.fanout

	fresh := buildLayer0(hv.table[alignedLo:alignedHi+1], hv.fanout)
	copy(hv.layers[0][blockLo:blockHi+1], fresh)

	curLo, curHi := blockLo, blockHi
	for l := 1; l < hv.n; l++ {
		below := hv.layers[l-1]
		alignedLo, alignedHi = alignOutward(curLo, curHi, hv.fanout, len(below)-1)
		blockLo, blockHi = alignedLo/hv.fanout, alignedHi/hv.fanout

		fresh := buildNextLayer(below[alignedLo:alignedHi+1], hv.fanout)
		copy(hv.layers[l][blockLo:blockHi+1], fresh)

		curLo, curHi = blockLo, blockHi
	}
}

// alignOutward rounds [lo, hi] outward to a fanout-aligned block,
// clamped to [0, maxIdx] so a short final chunk (when the sequence
// length isn't a multiple of fanout) never extends past the end of
// the slice being repaired.
func alignOutward(lo, hi, fanout, maxIdx int) (int, int) {
	alignedLo := lo - lo%fanout
	alignedHi := hi - hi%fanout + fanout - 1
	if alignedHi > maxIdx {
		alignedHi = maxIdx
	}
	return alignedLo, alignedHi
}

// QueryEquals returns a Query matching indices whose element equals item.
func (hv *HiVec[T]) QueryEquals(item T) *EqualsQuery[T] {
	return &EqualsQuery[T]{item: item, hv: hv}
}

// QueryRange returns a Query matching indices whose element lies within r.
func (hv *HiVec[T]) QueryRange(r LatticeRange[T]) *RangeQuery[T] {
	return &RangeQuery[T]{rng: r, hv: hv}
}
