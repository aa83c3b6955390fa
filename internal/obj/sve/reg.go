// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"
	"strconv"
)

// A Reg names a machine register. The class is kept alongside the number
// so that operand checks can tell a general register from a vector or a
// predicate without consulting the instruction.
//
//	 9 8 7 6 5     0
//	+---+-+-+-------+
//	|cls|0|w|  num  |
//	+---+-+-+-------+
//
// The w bit marks the 32-bit view of a general register. Instructions that
// accept either width take it from their register operands.
//
// Scalable vectors and SIMD&FP scalars share the vector class: z5, v5, d5
// and s5 are the same register viewed at different widths. The printer
// picks the view from the instruction format.
type Reg uint16

// A RegClass is the register file a Reg belongs to.
type RegClass uint8

const (
	ClassNone RegClass = iota
	ClassGeneral
	ClassVector
	ClassPredicate
)

const (
	classShift = 8
	numMask    = 1<<6 - 1
	regW       = 1 << 6
)

const RegNone Reg = 0

// General purpose registers. RZR and RSP both encode as 31; which one an
// operand slot accepts is decided by the instruction format.
const (
	R0 Reg = Reg(ClassGeneral)<<classShift | iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	R16
	R17
	R18
	R19
	R20
	R21
	R22
	R23
	R24
	R25
	R26
	R27
	R28
	R29
	R30
	RZR
	RSP
)

// 32-bit views of the general registers.
const (
	W0 Reg = R0 | regW + iota
	W1
	W2
	W3
	W4
	W5
	W6
	W7
	W8
	W9
	W10
	W11
	W12
	W13
	W14
	W15
	W16
	W17
	W18
	W19
	W20
	W21
	W22
	W23
	W24
	W25
	W26
	W27
	W28
	W29
	W30
	WZR
	WSP
)

// Scalable vector registers.
const (
	Z0 Reg = Reg(ClassVector)<<classShift | iota
	Z1
	Z2
	Z3
	Z4
	Z5
	Z6
	Z7
	Z8
	Z9
	Z10
	Z11
	Z12
	Z13
	Z14
	Z15
	Z16
	Z17
	Z18
	Z19
	Z20
	Z21
	Z22
	Z23
	Z24
	Z25
	Z26
	Z27
	Z28
	Z29
	Z30
	Z31
)

// SIMD&FP scalar views of the vector registers.
const (
	V0  = Z0
	V1  = Z1
	V2  = Z2
	V3  = Z3
	V4  = Z4
	V5  = Z5
	V6  = Z6
	V7  = Z7
	V8  = Z8
	V9  = Z9
	V10 = Z10
	V11 = Z11
	V12 = Z12
	V13 = Z13
	V14 = Z14
	V15 = Z15
	V16 = Z16
	V17 = Z17
	V18 = Z18
	V19 = Z19
	V20 = Z20
	V21 = Z21
	V22 = Z22
	V23 = Z23
	V24 = Z24
	V25 = Z25
	V26 = Z26
	V27 = Z27
	V28 = Z28
	V29 = Z29
	V30 = Z30
	V31 = Z31
)

// Predicate registers.
const (
	P0 Reg = Reg(ClassPredicate)<<classShift | iota
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	P10
	P11
	P12
	P13
	P14
	P15
)

// Predicate-as-counter registers. PN8-PN15 are P8-P15 used as counters.
const (
	PN8  = P8
	PN9  = P9
	PN10 = P10
	PN11 = P11
	PN12 = P12
	PN13 = P13
	PN14 = P14
	PN15 = P15
)

func (r Reg) Class() RegClass {
	return RegClass(r >> classShift)
}

// Num returns the register number. RSP reports 32 so it stays distinct
// from RZR; use enc for the field value.
func (r Reg) Num() int {
	return int(r & numMask)
}

// enc returns the value written to a register field.
func (r Reg) enc() uint32 {
	if n := r.Num(); n < 31 {
		return uint32(n)
	}
	return 31
}

// IsW reports whether r is the 32-bit view of a general register.
func (r Reg) IsW() bool { return r.IsGeneral() && r&regW != 0 }

// X returns the 64-bit view of a general register.
func (r Reg) X() Reg {
	if r.IsGeneral() {
		return r &^ regW
	}
	return r
}

// isZR and isSP ignore the register width.
func (r Reg) isZR() bool { return r.X() == RZR }
func (r Reg) isSP() bool { return r.X() == RSP }

func (r Reg) IsGeneral() bool   { return r.Class() == ClassGeneral }
func (r Reg) IsVector() bool    { return r.Class() == ClassVector }
func (r Reg) IsPredicate() bool { return r.Class() == ClassPredicate }

// Valid reports whether r names an existing register.
func (r Reg) Valid() bool {
	switch r.Class() {
	case ClassGeneral:
		return r.Num() <= 32
	case ClassVector:
		return r.Num() < 32 && r&regW == 0
	case ClassPredicate:
		return r.Num() < 16
	}
	return false
}

// String returns the register name in its default view: xN, zN or pN.
func (r Reg) String() string {
	switch r.Class() {
	case ClassGeneral:
		switch r {
		case RZR:
			return "xzr"
		case RSP:
			return "sp"
		case WZR:
			return "wzr"
		case WSP:
			return "wsp"
		}
		if r.IsW() {
			return "w" + strconv.Itoa(r.Num())
		}
		return "x" + strconv.Itoa(r.Num())
	case ClassVector:
		return "z" + strconv.Itoa(r.Num())
	case ClassPredicate:
		return "p" + strconv.Itoa(r.Num())
	case ClassNone:
		if r == RegNone {
			return "none"
		}
	}
	return fmt.Sprintf("reg(%#x)", uint16(r))
}

func (c RegClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassGeneral:
		return "general"
	case ClassVector:
		return "vector"
	case ClassPredicate:
		return "predicate"
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}
