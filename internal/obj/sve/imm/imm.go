// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imm implements the immediate encodings used by the scalable
// vector instructions: rotations, small float constants, logical bitmask
// immediates, element shift amounts, broadcast indices and the plain
// signed and unsigned ranges that appear in most instruction fields.
//
// Encoders panic when handed a value they cannot represent. Callers are
// expected to check legality first (IsBitmask, FitsSigned, ...), so a
// failure here is an internal error rather than a user diagnostic.
package imm

import "fmt"

// FitsSigned reports whether v is representable as a two's complement
// number of the given bit width.
func FitsSigned(v int64, bits uint) bool {
	lo := -(int64(1) << (bits - 1))
	hi := int64(1)<<(bits-1) - 1
	return v >= lo && v <= hi
}

// FitsUnsigned reports whether v is representable as an unsigned number of
// the given bit width.
func FitsUnsigned(v int64, bits uint) bool {
	return v >= 0 && v < int64(1)<<bits
}

// IsMultipleOf reports whether v is an exact multiple of n.
func IsMultipleOf(v, n int64) bool {
	return n != 0 && v%n == 0
}

// FitsScaled reports whether v is a multiple of scale whose quotient fits
// in a signed field of the given width.
func FitsScaled(v, scale int64, bits uint) bool {
	return IsMultipleOf(v, scale) && FitsSigned(v/scale, bits)
}

// EncodeRotation1 maps the single-bit rotations #90 and #270.
func EncodeRotation1(deg int64) int64 {
	switch deg {
	case 90:
		return 0
	case 270:
		return 1
	}
	panic(fmt.Sprintf("imm: invalid rotation %d, want 90 or 270", deg))
}

// DecodeRotation1 is the inverse of EncodeRotation1.
func DecodeRotation1(code int64) int64 {
	switch code {
	case 0:
		return 90
	case 1:
		return 270
	}
	panic(fmt.Sprintf("imm: invalid rotation code %d", code))
}

// IsRotation1 reports whether deg can be encoded with EncodeRotation1.
func IsRotation1(deg int64) bool {
	return deg == 90 || deg == 270
}

// EncodeRotation2 maps #0, #90, #180 and #270 to a two bit code.
func EncodeRotation2(deg int64) int64 {
	if !IsRotation2(deg) {
		panic(fmt.Sprintf("imm: invalid rotation %d, want 0, 90, 180 or 270", deg))
	}
	return deg / 90
}

// DecodeRotation2 is the inverse of EncodeRotation2.
func DecodeRotation2(code int64) int64 {
	if code < 0 || code > 3 {
		panic(fmt.Sprintf("imm: invalid rotation code %d", code))
	}
	return code * 90
}

// IsRotation2 reports whether deg can be encoded with EncodeRotation2.
func IsRotation2(deg int64) bool {
	return deg == 0 || deg == 90 || deg == 180 || deg == 270
}

// EncodeSimm5Pair packs two signed 5-bit values into one immediate. The
// first value occupies the low five bits.
func EncodeSimm5Pair(a, b int64) int64 {
	if !FitsSigned(a, 5) || !FitsSigned(b, 5) {
		panic(fmt.Sprintf("imm: pair (%d, %d) does not fit in signed 5-bit fields", a, b))
	}
	return a&0x1f | (b&0x1f)<<5
}

// DecodeSimm5Pair is the inverse of EncodeSimm5Pair.
func DecodeSimm5Pair(v int64) (a, b int64) {
	return signExtend(v&0x1f, 5), signExtend((v>>5)&0x1f, 5)
}

// EncodeImm8Shifted finds an 8-bit immediate and optional LSL #8 for v.
// When signed is set the 8-bit field is interpreted as -128..127.
func EncodeImm8Shifted(v int64, signed, allowShift bool) (imm8 int64, shifted, ok bool) {
	fits := func(x int64) bool {
		if signed {
			return FitsSigned(x, 8)
		}
		return FitsUnsigned(x, 8)
	}
	if fits(v) {
		return v, false, true
	}
	if allowShift && v%256 == 0 && fits(v/256) {
		return v / 256, true, true
	}
	return 0, false, false
}

func signExtend(v int64, bits uint) int64 {
	shift := 64 - bits
	return v << shift >> shift
}
