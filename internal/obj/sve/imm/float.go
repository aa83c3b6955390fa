// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imm

import (
	"fmt"
	"math"
)

// FloatFamily selects the pair of constants a single-bit floating-point
// immediate can hold. The pair depends on the instruction.
type FloatFamily uint8

const (
	FloatAddSub FloatFamily = iota // #0.5, #1.0
	FloatMaxMin                    // #0.0, #1.0
	FloatMul                       // #0.5, #2.0
)

var floatPairs = [...][2]float64{
	FloatAddSub: {0.5, 1.0},
	FloatMaxMin: {0.0, 1.0},
	FloatMul:    {0.5, 2.0},
}

// IsFloatImm1 reports whether v is one of the two constants of fam.
func IsFloatImm1(fam FloatFamily, v float64) bool {
	p := floatPairs[fam]
	return v == p[0] || v == p[1]
}

// EncodeFloatImm1 returns the single bit that selects v within fam.
func EncodeFloatImm1(fam FloatFamily, v float64) int64 {
	p := floatPairs[fam]
	switch v {
	case p[0]:
		return 0
	case p[1]:
		return 1
	}
	panic(fmt.Sprintf("imm: %v is not a valid immediate, want %v or %v", v, p[0], p[1]))
}

// DecodeFloatImm1 is the inverse of EncodeFloatImm1.
func DecodeFloatImm1(fam FloatFamily, code int64) float64 {
	if code != 0 && code != 1 {
		panic(fmt.Sprintf("imm: invalid float immediate code %d", code))
	}
	return floatPairs[fam][code]
}

// DecodeFloatImm8 expands the 8-bit a:b:cdefgh modified floating-point
// immediate: (-1)^a * (16+efgh)/16 * 2^e with e in [-3, 4].
func DecodeFloatImm8(imm8 uint8) float64 {
	sign := 1.0
	if imm8&0x80 != 0 {
		sign = -1
	}
	b := (imm8 >> 6) & 1
	cd := int(imm8>>4) & 3
	frac := float64(16+int(imm8&0xf)) / 16
	exp := cd + 1
	if b == 1 {
		exp = cd - 3
	}
	return sign * math.Ldexp(frac, exp)
}

// EncodeFloatImm8 finds the 8-bit encoding of v, if one exists.
func EncodeFloatImm8(v float64) (uint8, bool) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	for c := 0; c < 256; c++ {
		if DecodeFloatImm8(uint8(c)) == v {
			return uint8(c), true
		}
	}
	return 0, false
}
