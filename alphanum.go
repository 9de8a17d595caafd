// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import "strings"

// AlphaNumSet is a FreeL64 specialized to a 64-symbol alphabet: the
// ten digits, the 26 uppercase and 26 lowercase Latin letters, one
// bucket for "any other ASCII" and one for "non-ASCII".
type AlphaNumSet struct {
	Val FreeL64
}

// NewAlphaNumSet unions the singleton set of each rune in s.
func NewAlphaNumSet(s string) AlphaNumSet {
	var bits uint64
	for _, ch := range s {
		bits |= uint64(1) << alphaNumOffset(ch)
	}
	return AlphaNumSet{Val: NewFreeL64(bits)}
}

// SingletonAlphaNumSet returns the set containing only ch.
func SingletonAlphaNumSet(ch rune) AlphaNumSet {
	return AlphaNumSet{Val: GeneratorL64(alphaNumOffset(ch))}
}

func alphaNumOffset(ch rune) uint {
	switch {
	case ch >= '0' && ch <= '9':
		return uint(ch - '0')
	case ch >= 'A' && ch <= 'Z':
		return uint(ch-'A') + 10
	case ch >= 'a' && ch <= 'z':
		return uint(ch-'a') + 36
	case ch < 128:
		return 62
	default:
		return 63
	}
}

func offsetToAlphaNum(n uint) rune {
	switch {
	case n <= 9:
		return rune(n) + '0'
	case n <= 35:
		return rune(n-10) + 'A'
	case n <= 61:
		return rune(n-36) + 'a'
	case n == 62:
		return ':'
	default:
		return '?'
	}
}

func (a AlphaNumSet) Join(other AlphaNumSet) AlphaNumSet {
	return AlphaNumSet{Val: a.Val.Join(other.Val)}
}

func (a AlphaNumSet) Meet(other AlphaNumSet) AlphaNumSet {
	return AlphaNumSet{Val: a.Val.Meet(other.Val)}
}

func (a AlphaNumSet) PartialCmp(other AlphaNumSet) Ordering {
	return a.Val.PartialCmp(other.Val)
}

// Complement flips every bit of the underlying FreeL64.
func (a AlphaNumSet) Complement() AlphaNumSet { return AlphaNumSet{Val: a.Val.Complement()} }

func (AlphaNumSet) Top() AlphaNumSet { return AlphaNumSet{Val: FreeL64{}.Top()} }
func (AlphaNumSet) Bot() AlphaNumSet { return AlphaNumSet{Val: FreeL64{}.Bot()} }

// String renders each set bit, in bit order, back to its representative
// character: bit 62 as ':', bit 63 as '?', and the canonical character
// for every other bit's range.
func (a AlphaNumSet) String() string {
	var b strings.Builder
	for i := uint(0); i <= 63; i++ {
		if a.Val.Val&(uint64(1)<<i) != 0 {
			b.WriteRune(offsetToAlphaNum(i))
		}
	}
	return b.String()
}
