// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imm

import (
	"fmt"
	"math/bits"
)

// Shift amounts are encoded in a 7-bit tsz:imm3 field where the position of
// the highest set bit of tsz gives the element size:
//
//	tsz=0001 8-bit, 001x 16-bit, 01xx 32-bit, 1xxx 64-bit
//
// Right shifts store 2*esize-amount, left shifts store esize+amount.

// IsShiftRight reports whether a right shift by n is valid for esize.
func IsShiftRight(esize uint, n int64) bool {
	return n >= 1 && n <= int64(esize)
}

// IsShiftLeft reports whether a left shift by n is valid for esize.
func IsShiftLeft(esize uint, n int64) bool {
	return n >= 0 && n < int64(esize)
}

// EncodeShiftRight returns tsz:imm3 for a right shift by n in [1, esize].
func EncodeShiftRight(esize uint, n int64) int64 {
	checkElemSize(esize)
	if !IsShiftRight(esize, n) {
		panic(fmt.Sprintf("imm: right shift %d out of range [1, %d]", n, esize))
	}
	return 2*int64(esize) - n
}

// EncodeShiftLeft returns tsz:imm3 for a left shift by n in [0, esize-1].
func EncodeShiftLeft(esize uint, n int64) int64 {
	checkElemSize(esize)
	if !IsShiftLeft(esize, n) {
		panic(fmt.Sprintf("imm: left shift %d out of range [0, %d]", n, esize-1))
	}
	return int64(esize) + n
}

// ShiftElemSize returns the element size selected by a tsz:imm3 value, or
// 0 if the tsz part is zero.
func ShiftElemSize(enc int64) uint {
	tsz := uint(enc>>3) & 0xf
	if tsz == 0 {
		return 0
	}
	return 8 << (bits.Len(tsz) - 1)
}

// DecodeShiftRight is the inverse of EncodeShiftRight.
func DecodeShiftRight(enc int64) (esize uint, n int64) {
	esize = ShiftElemSize(enc)
	if esize == 0 {
		panic(fmt.Sprintf("imm: invalid shift encoding %#x", enc))
	}
	return esize, 2*int64(esize) - enc
}

// DecodeShiftLeft is the inverse of EncodeShiftLeft.
func DecodeShiftLeft(enc int64) (esize uint, n int64) {
	esize = ShiftElemSize(enc)
	if esize == 0 {
		panic(fmt.Sprintf("imm: invalid shift encoding %#x", enc))
	}
	return esize, enc - int64(esize)
}

// Broadcast indices are encoded in the 7-bit imm2:tsz field. The lowest
// set bit of tsz gives the element size and the bits above it the index:
//
//	tsz=xxxx1 8-bit, xxx10 16-bit, xx100 32-bit, x1000 64-bit, 10000 128-bit

// MaxBroadcastIndex returns the largest index allowed for esize.
func MaxBroadcastIndex(esize uint) int64 {
	return 512/int64(esize) - 1
}

// EncodeBroadcastIndex returns imm2:tsz for element index of esize bits.
func EncodeBroadcastIndex(esize uint, index int64) int64 {
	switch esize {
	case 8, 16, 32, 64, 128:
	default:
		panic(fmt.Sprintf("imm: invalid element size %d", esize))
	}
	if index < 0 || index > MaxBroadcastIndex(esize) {
		panic(fmt.Sprintf("imm: index %d out of range [0, %d]", index, MaxBroadcastIndex(esize)))
	}
	k := bits.TrailingZeros(esize / 8)
	return (index<<1 | 1) << k
}

// DecodeBroadcastIndex is the inverse of EncodeBroadcastIndex.
func DecodeBroadcastIndex(enc int64) (esize uint, index int64) {
	if enc <= 0 || enc >= 1<<7 || enc&0x1f == 0 {
		panic(fmt.Sprintf("imm: invalid index encoding %#x", enc))
	}
	k := bits.TrailingZeros64(uint64(enc))
	return 8 << k, enc >> (k + 1)
}
