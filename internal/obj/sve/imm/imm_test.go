// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotation(t *testing.T) {
	for _, deg := range []int64{90, 270} {
		assert.Equal(t, deg, DecodeRotation1(EncodeRotation1(deg)))
	}
	for _, deg := range []int64{0, 90, 180, 270} {
		assert.Equal(t, deg, DecodeRotation2(EncodeRotation2(deg)))
	}
	assert.Equal(t, int64(1), EncodeRotation1(270))
	assert.Equal(t, int64(2), EncodeRotation2(180))

	assert.Panics(t, func() { EncodeRotation1(0) })
	assert.Panics(t, func() { EncodeRotation1(180) })
	assert.Panics(t, func() { EncodeRotation2(45) })
	assert.Panics(t, func() { DecodeRotation2(4) })
}

func TestFloatImm1(t *testing.T) {
	tests := []struct {
		fam  FloatFamily
		v    float64
		code int64
	}{
		{FloatAddSub, 0.5, 0},
		{FloatAddSub, 1.0, 1},
		{FloatMaxMin, 0.0, 0},
		{FloatMaxMin, 1.0, 1},
		{FloatMul, 0.5, 0},
		{FloatMul, 2.0, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.code, EncodeFloatImm1(test.fam, test.v))
		assert.Equal(t, test.v, DecodeFloatImm1(test.fam, test.code))
	}
	assert.False(t, IsFloatImm1(FloatMul, 1.0))
	assert.Panics(t, func() { EncodeFloatImm1(FloatAddSub, 2.0) })
}

func TestFloatImm8(t *testing.T) {
	tests := []struct {
		v    float64
		code uint8
	}{
		{2.0, 0x00},
		{1.0, 0x70},
		{0.5, 0x60},
		{-1.0, 0xf0},
		{0.125, 0x40},
		{31.0, 0x3f},
		{1.9375, 0x7f},
	}
	for _, test := range tests {
		code, ok := EncodeFloatImm8(test.v)
		require.True(t, ok, "%v", test.v)
		assert.Equal(t, test.code, code, "%v", test.v)
		assert.Equal(t, test.v, DecodeFloatImm8(code))
	}
	for _, v := range []float64{0, 0.1, 32, 100, -0.0625} {
		_, ok := EncodeFloatImm8(v)
		assert.False(t, ok, "%v", v)
	}
	for c := 0; c < 256; c++ {
		code, ok := EncodeFloatImm8(DecodeFloatImm8(uint8(c)))
		require.True(t, ok)
		assert.Equal(t, uint8(c), code)
	}
}

func TestBitmaskRoundTrip(t *testing.T) {
	for _, esize := range []uint{8, 16, 32, 64} {
		n := 0
		for nrs := uint32(0); nrs < 1<<13; nrs++ {
			v, ok := DecodeBitmask(nrs)
			if !ok {
				continue
			}
			// Only encodings whose element is no wider than esize
			// can be produced for an esize-bit element.
			if BitmaskElemSize(nrs) > esize {
				continue
			}
			n++
			require.True(t, IsBitmask(v, esize), "nrs %#x esize %d", nrs, esize)
			got, ok := EncodeBitmask(v, esize)
			require.True(t, ok)
			back, _ := DecodeBitmask(got)
			assert.Equal(t, v, back, "nrs %#x esize %d", nrs, esize)
		}
		assert.NotZero(t, n)
	}
}

func TestBitmaskEncode(t *testing.T) {
	tests := []struct {
		v     uint64
		esize uint
		nrs   uint32
	}{
		{0x1, 64, 0x1000},
		{0x00ff, 16, 0x0027},
		{0x0000ffff, 32, 0x000f},
		{0x5555555555555555, 64, 0x003c},
		{0xfffffffffffffffe, 64, 0x1ffe},
		{0x0f, 8, 0x0033},
	}
	for _, test := range tests {
		got, ok := EncodeBitmask(test.v, test.esize)
		require.True(t, ok, "%#x", test.v)
		assert.Equal(t, test.nrs, got, "%#x", test.v)
	}
	assert.False(t, IsBitmask(0xff, 8))
	assert.False(t, IsBitmask(0, 32))
	assert.False(t, IsBitmask(0xffffffff, 32))
	assert.False(t, IsBitmask(0x1234, 16))
	assert.Panics(t, func() { MustEncodeBitmask(0x1234, 16) })
	assert.Panics(t, func() { Replicate(1, 12) })
}

func TestBitmaskCanonical(t *testing.T) {
	patterns := map[uint64]bool{}
	for nrs := uint32(0); nrs < 1<<13; nrs++ {
		v, ok := DecodeBitmask(nrs)
		if !ok {
			continue
		}
		patterns[v] = true
		got, ok := encodePattern(v)
		require.True(t, ok, "nrs %#x", nrs)
		esize := BitmaskElemSize(got)
		assert.Less(t, uint((got>>6)&0x3f), esize, "rotation of %#x", v)
		back, _ := DecodeBitmask(got)
		assert.Equal(t, v, back, "nrs %#x", nrs)
	}
	assert.Len(t, patterns, 5334)

	tests := []struct {
		x    uint64
		size uint
	}{
		{0x5555555555555555, 2},
		{0x1111111111111111, 4},
		{0x0f0f0f0f0f0f0f0f, 8},
		{0x00ff00ff00ff00ff, 16},
		{0x0000ffff0000ffff, 32},
		{0x1, 64},
	}
	for _, test := range tests {
		assert.Equal(t, test.size, period(test.x), "%#x", test.x)
	}
}

func TestShift(t *testing.T) {
	for _, esize := range []uint{8, 16, 32, 64} {
		for n := int64(1); n <= int64(esize); n++ {
			enc := EncodeShiftRight(esize, n)
			require.True(t, enc < 128)
			gotSize, gotN := DecodeShiftRight(enc)
			assert.Equal(t, esize, gotSize)
			assert.Equal(t, n, gotN)
		}
		for n := int64(0); n < int64(esize); n++ {
			gotSize, gotN := DecodeShiftLeft(EncodeShiftLeft(esize, n))
			assert.Equal(t, esize, gotSize)
			assert.Equal(t, n, gotN)
		}
		assert.Panics(t, func() { EncodeShiftRight(esize, 0) })
		assert.Panics(t, func() { EncodeShiftRight(esize, int64(esize)+1) })
		assert.Panics(t, func() { EncodeShiftLeft(esize, int64(esize)) })
		assert.Panics(t, func() { EncodeShiftLeft(esize, -1) })
	}
	assert.Equal(t, int64(0b0001_111), EncodeShiftRight(8, 1))
	assert.Equal(t, int64(0b1000_000), EncodeShiftRight(64, 64))
	assert.Equal(t, int64(0b0100_000), EncodeShiftLeft(32, 0))
}

func TestBroadcastIndex(t *testing.T) {
	for _, esize := range []uint{8, 16, 32, 64, 128} {
		for i := int64(0); i <= MaxBroadcastIndex(esize); i++ {
			enc := EncodeBroadcastIndex(esize, i)
			require.True(t, enc > 0 && enc < 128)
			gotSize, gotIndex := DecodeBroadcastIndex(enc)
			assert.Equal(t, esize, gotSize)
			assert.Equal(t, i, gotIndex)
		}
		assert.Panics(t, func() { EncodeBroadcastIndex(esize, MaxBroadcastIndex(esize)+1) })
	}
	assert.Equal(t, int64(63), MaxBroadcastIndex(8))
	assert.Equal(t, int64(3), MaxBroadcastIndex(128))
	assert.Equal(t, int64(0b10_10000), EncodeBroadcastIndex(128, 2))
}

func TestSimm5Pair(t *testing.T) {
	for a := int64(-16); a < 16; a++ {
		for b := int64(-16); b < 16; b++ {
			gotA, gotB := DecodeSimm5Pair(EncodeSimm5Pair(a, b))
			require.Equal(t, a, gotA)
			require.Equal(t, b, gotB)
		}
	}
	assert.Panics(t, func() { EncodeSimm5Pair(16, 0) })
	assert.Panics(t, func() { EncodeSimm5Pair(0, -17) })
}

func TestImm8Shifted(t *testing.T) {
	tests := []struct {
		v          int64
		signed     bool
		imm8       int64
		shifted    bool
		ok         bool
		allowShift bool
	}{
		{v: 5, signed: true, imm8: 5, ok: true, allowShift: true},
		{v: -128, signed: true, imm8: -128, ok: true, allowShift: true},
		{v: 255, signed: false, imm8: 255, ok: true, allowShift: true},
		{v: 255, signed: true, allowShift: true},
		{v: 512, signed: true, imm8: 2, shifted: true, ok: true, allowShift: true},
		{v: -32768, signed: true, imm8: -128, shifted: true, ok: true, allowShift: true},
		{v: 512, signed: true, allowShift: false},
		{v: 513, signed: false, allowShift: true},
	}
	for _, test := range tests {
		imm8, shifted, ok := EncodeImm8Shifted(test.v, test.signed, test.allowShift)
		assert.Equal(t, test.ok, ok, "%d", test.v)
		if ok {
			assert.Equal(t, test.imm8, imm8, "%d", test.v)
			assert.Equal(t, test.shifted, shifted, "%d", test.v)
		}
	}
}

func TestRanges(t *testing.T) {
	assert.True(t, FitsSigned(-8, 4))
	assert.False(t, FitsSigned(8, 4))
	assert.True(t, FitsUnsigned(127, 7))
	assert.False(t, FitsUnsigned(-1, 7))
	assert.True(t, FitsScaled(-16, 2, 4))
	assert.False(t, FitsScaled(-15, 2, 4))
	assert.False(t, IsMultipleOf(3, 0))
}
