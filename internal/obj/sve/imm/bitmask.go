// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imm

import (
	"fmt"
	"math/bits"
)

// Replicate repeats the low esize bits of v across 64 bits.
func Replicate(v uint64, esize uint) uint64 {
	checkElemSize(esize)
	return replicate(v, esize)
}

func replicate(v uint64, esize uint) uint64 {
	if esize == 64 {
		return v
	}
	v &= 1<<esize - 1
	for n := esize; n < 64; n <<= 1 {
		v |= v << n
	}
	return v
}

// IsBitmask reports whether the low esize bits of v form a logical
// immediate for an element of esize bits.
func IsBitmask(v uint64, esize uint) bool {
	_, ok := EncodeBitmask(v, esize)
	return ok
}

// EncodeBitmask returns the 13-bit N:immr:imms encoding of the low esize
// bits of v replicated across the element.
func EncodeBitmask(v uint64, esize uint) (uint32, bool) {
	return encodePattern(Replicate(v, esize))
}

// MustEncodeBitmask is like EncodeBitmask but panics on values that are not
// logical immediates.
func MustEncodeBitmask(v uint64, esize uint) uint32 {
	nrs, ok := EncodeBitmask(v, esize)
	if !ok {
		panic(fmt.Sprintf("imm: %#x is not a %d-bit logical immediate", v, esize))
	}
	return nrs
}

// DecodeBitmask expands a 13-bit N:immr:imms value into the 64-bit
// replicated pattern it stands for. It returns false if nrs is reserved.
func DecodeBitmask(nrs uint32) (uint64, bool) {
	if nrs >= 1<<13 {
		return 0, false
	}
	n := nrs >> 12
	immr := (nrs >> 6) & 0x3f
	imms := nrs & 0x3f

	// Element size is the position of the highest set bit of N:NOT(imms).
	l := bits.Len32(n<<6|(^imms&0x3f)) - 1
	if l < 1 {
		return 0, false
	}
	esize := uint32(1) << l
	levels := esize - 1
	s := imms & levels
	r := immr & levels
	if s == levels {
		return 0, false
	}
	welem := uint64(1)<<(s+1) - 1
	if r != 0 {
		welem = (welem>>r | welem<<(esize-r)) & (1<<esize - 1)
	}
	return replicate(welem, uint(esize)), true
}

// BitmaskElemSize returns the smallest element size that nrs can be
// printed at. Callers print the pattern truncated to the instruction's own
// element size instead when that is larger.
func BitmaskElemSize(nrs uint32) uint {
	n := nrs >> 12
	imms := nrs & 0x3f
	return 1 << (bits.Len32(n<<6|(^imms&0x3f)) - 1)
}

// period returns the smallest element size, from 2 to 64 bits, whose
// replication gives x.
func period(x uint64) uint {
	size := uint(64)
	for size > 2 && bits.RotateLeft64(x, int(size/2)) == x {
		size /= 2
	}
	return size
}

// encodePattern finds N:immr:imms for a 64-bit replicated pattern. A
// logical immediate is an element holding a run of ones rotated right by
// immr; imms holds the run length less one, with the element size marked
// by the leading ones above it.
func encodePattern(x uint64) (uint32, bool) {
	if x == 0 || x == ^uint64(0) {
		return 0, false
	}
	esize := period(x)
	mask := ^uint64(0) >> (64 - esize)
	elem := x & mask
	ones := uint(bits.OnesCount64(elem))
	run := uint64(1)<<ones - 1
	for r := uint(0); r < esize; r++ {
		if rotl(elem, r, esize) != run {
			continue
		}
		var n uint32
		if esize == 64 {
			n = 1
		}
		imms := uint32(ones-1) | uint32(^(esize<<1-1)&0x3f)
		return n<<12 | uint32(r)<<6 | imms, true
	}
	return 0, false
}

// rotl rotates the low esize bits of x left by r.
func rotl(x uint64, r, esize uint) uint64 {
	if r == 0 {
		return x
	}
	mask := ^uint64(0) >> (64 - esize)
	return (x<<r | x>>(esize-r)) & mask
}

func checkElemSize(esize uint) {
	switch esize {
	case 8, 16, 32, 64:
		return
	}
	panic(fmt.Sprintf("imm: invalid element size %d", esize))
}
