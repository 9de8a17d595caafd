// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package hivec

import "github.com/gaissmai/hivec/internal/latbits"

// FreeL32 is the free power-set lattice over 32 atoms, encoded as the
// bits of a uint32. Join is bitwise OR, Meet is bitwise AND, and the
// partial order is bitwise subset.
type FreeL32 struct {
	Val uint32
}

// NewFreeL32 wraps a raw bitmask as a FreeL32 element.
func NewFreeL32(v uint32) FreeL32 { return FreeL32{Val: v} }

// GeneratorL32 returns the singleton set {i}, i.e. the bit-i atom.
func GeneratorL32(i uint) FreeL32 { return FreeL32{Val: latbits.Generator32(i)} }

func (f FreeL32) Join(other FreeL32) FreeL32 { return FreeL32{Val: latbits.Join32(f.Val, other.Val)} }
func (f FreeL32) Meet(other FreeL32) FreeL32 { return FreeL32{Val: latbits.Meet32(f.Val, other.Val)} }

func (f FreeL32) PartialCmp(other FreeL32) Ordering {
	return Ordering(latbits.PartialCmp32(f.Val, other.Val))
}

// Complement flips every bit.
func (f FreeL32) Complement() FreeL32 { return FreeL32{Val: latbits.Complement32(f.Val)} }

func (FreeL32) Top() FreeL32 { return FreeL32{Val: ^uint32(0)} }
func (FreeL32) Bot() FreeL32 { return FreeL32{Val: 0} }

// FreeL64 is the 64-atom sibling of FreeL32.
type FreeL64 struct {
	Val uint64
}

// NewFreeL64 wraps a raw bitmask as a FreeL64 element.
func NewFreeL64(v uint64) FreeL64 { return FreeL64{Val: v} }

// GeneratorL64 returns the singleton set {i}.
func GeneratorL64(i uint) FreeL64 { return FreeL64{Val: latbits.Generator64(i)} }

func (f FreeL64) Join(other FreeL64) FreeL64 { return FreeL64{Val: latbits.Join64(f.Val, other.Val)} }
func (f FreeL64) Meet(other FreeL64) FreeL64 { return FreeL64{Val: latbits.Meet64(f.Val, other.Val)} }

func (f FreeL64) PartialCmp(other FreeL64) Ordering {
	return Ordering(latbits.PartialCmp64(f.Val, other.Val))
}

// Complement flips every bit.
func (f FreeL64) Complement() FreeL64 { return FreeL64{Val: latbits.Complement64(f.Val)} }

func (FreeL64) Top() FreeL64 { return FreeL64{Val: ^uint64(0)} }
func (FreeL64) Bot() FreeL64 { return FreeL64{Val: 0} }
