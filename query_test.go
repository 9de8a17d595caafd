// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// predQuery is a hand-built Negatable leaf, standing in for the
// primitive queries this package deliberately ships without negation
// (EqualsQuery, RangeQuery), so combinator negation can be exercised.
type predQuery struct {
	length, fanout, depth int
	pred                  func(i int) bool
}

func (p *predQuery) Length() int        { return p.length }
func (p *predQuery) Fanout() int        { return p.fanout }
func (p *predQuery) Depth() int         { return p.depth }
func (p *predQuery) QueryAt(i int) bool { return p.pred(i) }
func (p *predQuery) HiQuery(layer, i int) bool {
	if layer == 0 {
		return p.QueryAt(i)
	}
	return true // unconditionally conservative: always "maybe."
}
func (p *predQuery) Negate() Negatable {
	return &predQuery{length: p.length, fanout: p.fanout, depth: p.depth, pred: func(i int) bool { return !p.pred(i) }}
}

func TestAndOrTruthTables(t *testing.T) {
	t.Parallel()

	table := boolSeq(true, false, true, true)
	hv, err := New(table, 0, 2)
	require.NoError(t, err)

	qT := hv.QueryEquals(BoolL(true))
	qF := hv.QueryEquals(BoolL(false))

	and := And(qT, qF)
	or := Or(qT, qF)
	for i := 0; i < hv.Len(); i++ {
		assert.Equal(t, qT.QueryAt(i) && qF.QueryAt(i), and.QueryAt(i))
		assert.Equal(t, qT.QueryAt(i) || qF.QueryAt(i), or.QueryAt(i))
	}
	assert.True(t, or.QueryAt(0))
	assert.False(t, and.QueryAt(0))
}

func TestAndMismatchedLengthPanics(t *testing.T) {
	t.Parallel()

	a, err := New(boolSeq(true, false), 0, 2)
	require.NoError(t, err)
	b, err := New(boolSeq(true, false, true), 0, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { And(a.QueryEquals(BoolL(true)), b.QueryEquals(BoolL(true))) })
}

// De Morgan duality must hold for composites over negatable leaves:
// Not(And(p,q)).QueryAt(i) == Or(Not(p),Not(q)).QueryAt(i), and dually
// for Or.
func TestDeMorganDuality(t *testing.T) {
	t.Parallel()

	length := 6
	p := &predQuery{length: length, fanout: 2, depth: 0, pred: func(i int) bool { return i%2 == 0 }}
	q := &predQuery{length: length, fanout: 2, depth: 0, pred: func(i int) bool { return i%3 == 0 }}

	and := And(p, q).(Negatable)
	or := Or(p, q).(Negatable)

	notAnd := Not(and)
	orOfNots := Or(Not(p), Not(q))

	notOr := Not(or)
	andOfNots := And(Not(p), Not(q))

	for i := 0; i < length; i++ {
		assert.Equal(t, notAnd.QueryAt(i), orOfNots.QueryAt(i), "De Morgan for AND at %d", i)
		assert.Equal(t, notOr.QueryAt(i), andOfNots.QueryAt(i), "De Morgan for OR at %d", i)
	}
}

func TestNonNegatableCompositeHasNoNegate(t *testing.T) {
	t.Parallel()

	length := 4
	negatable := &predQuery{length: length, fanout: 2, depth: 0, pred: func(i int) bool { return true }}
	plain := &andQueryStub{length: length}

	_, ok := And(negatable, plain).(Negatable)
	assert.False(t, ok)
}

// andQueryStub is a minimal non-Negatable Query used only to prove And
// falls back to the plain andQuery when either side lacks Negate.
type andQueryStub struct{ length int }

func (s *andQueryStub) Length() int           { return s.length }
func (s *andQueryStub) Fanout() int           { return 2 }
func (s *andQueryStub) Depth() int            { return 0 }
func (s *andQueryStub) QueryAt(i int) bool    { return false }
func (s *andQueryStub) HiQuery(_, _ int) bool { return false }
