// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import "strconv"

// An Opt qualifies an instruction: the element arrangement of its vector
// operands, the element sizes of a conversion, or the extend applied to
// vector offsets in a gather or scatter.
type Opt uint8

const (
	OptNone Opt = iota

	// Element arrangements.
	ArrB
	ArrH
	ArrS
	ArrD
	ArrQ

	// Conversions, named destination then source element.
	CvtHH
	CvtHS
	CvtHD
	CvtSH
	CvtSS
	CvtSD
	CvtDH
	CvtDS
	CvtDD

	// Offset extends for 32-bit vector offsets.
	ExtUXTW
	ExtSXTW

	numOpts
)

var optNames = [numOpts]string{
	OptNone: "none",
	ArrB:    "b",
	ArrH:    "h",
	ArrS:    "s",
	ArrD:    "d",
	ArrQ:    "q",
	CvtHH:   "h<-h",
	CvtHS:   "h<-s",
	CvtHD:   "h<-d",
	CvtSH:   "s<-h",
	CvtSS:   "s<-s",
	CvtSD:   "s<-d",
	CvtDH:   "d<-h",
	CvtDS:   "d<-s",
	CvtDD:   "d<-d",
	ExtUXTW: "uxtw",
	ExtSXTW: "sxtw",
}

func (o Opt) String() string {
	if o < numOpts {
		return optNames[o]
	}
	return "opt(" + strconv.Itoa(int(o)) + ")"
}

// IsArrangement reports whether o is an element arrangement.
func (o Opt) IsArrangement() bool {
	return o >= ArrB && o <= ArrQ
}

// IsConversion reports whether o names a conversion.
func (o Opt) IsConversion() bool {
	return o >= CvtHH && o <= CvtDD
}

// IsExtend reports whether o is a vector offset extend.
func (o Opt) IsExtend() bool {
	return o == ExtUXTW || o == ExtSXTW
}

// ElemBits returns the element width in bits of an arrangement, or 0.
func (o Opt) ElemBits() uint {
	if !o.IsArrangement() {
		return 0
	}
	return 8 << (o - ArrB)
}

// log2 returns the size field value of an arrangement: 0 for bytes up to
// 4 for quadwords.
func (o Opt) log2() uint32 {
	return uint32(o - ArrB)
}

// half returns the arrangement with elements half as wide.
func (o Opt) half() Opt {
	if o <= ArrB || !o.IsArrangement() {
		return OptNone
	}
	return o - 1
}

// quarter returns the arrangement with elements a quarter as wide.
func (o Opt) quarter() Opt {
	if o <= ArrH || !o.IsArrangement() {
		return OptNone
	}
	return o - 2
}

// convElems returns the destination and source arrangements of a
// conversion.
func (o Opt) convElems() (dst, src Opt) {
	if !o.IsConversion() {
		return OptNone, OptNone
	}
	i := o - CvtHH
	return ArrH + i/3, ArrH + i%3
}

// Conversion returns the conversion from src to dst elements.
func Conversion(dst, src Opt) Opt {
	if dst < ArrH || dst > ArrD || src < ArrH || src > ArrD {
		return OptNone
	}
	return CvtHH + (dst-ArrH)*3 + (src - ArrH)
}

// arrangement for a width in bits.
func arrOf(bits uint) Opt {
	switch bits {
	case 8:
		return ArrB
	case 16:
		return ArrH
	case 32:
		return ArrS
	case 64:
		return ArrD
	case 128:
		return ArrQ
	}
	return OptNone
}

// An optSet is a set of arrangements.
type optSet uint8

const (
	setB optSet = 1 << iota
	setH
	setS
	setD
	setQ

	setBH    = setB | setH
	setBHS   = setB | setH | setS
	setBHSD  = setB | setH | setS | setD
	setBHSDQ = setBHSD | setQ
	setHS    = setH | setS
	setHSD   = setH | setS | setD
	setSD    = setS | setD
)

func (s optSet) has(o Opt) bool {
	return o.IsArrangement() && s&(1<<(o-ArrB)) != 0
}

func (s optSet) String() string {
	str := ""
	for o := ArrB; o <= ArrQ; o++ {
		if s.has(o) {
			str += o.String()
		}
	}
	return str
}

// A Size gives the width of general register operands when an
// instruction accepts either.
type Size uint8

const (
	SizeNone Size = iota
	SizeW
	SizeX
)

func (s Size) String() string {
	switch s {
	case SizeW:
		return "w"
	case SizeX:
		return "x"
	}
	return "none"
}

// A ScalableOpt tells the builder which of several same-shaped formats the
// caller means when the registers alone are not enough.
type ScalableOpt uint8

const (
	SoptNone ScalableOpt = iota
	// SoptMerge selects /M on a zeroing-or-merging governing predicate.
	SoptMerge
	// SoptSimdScalar marks a vector register used as a SIMD&FP scalar.
	SoptSimdScalar
	// SoptWide selects the forms taking a .D second source.
	SoptWide
	// SoptImmFirst orders an immediate before a register operand.
	SoptImmFirst
	// SoptCounter selects predicate-as-counter forms.
	SoptCounter
	// SoptVL2 and SoptVL4 select counter forms with vlx2 or vlx4.
	SoptVL2
	SoptVL4
	// SoptVectorList2 and SoptVectorList4 select multi-vector forms.
	SoptVectorList2
	SoptVectorList4
	// SoptScaled scales the vector offsets of a gather or scatter by the
	// access size.
	SoptScaled
)

var soptNames = [...]string{
	SoptNone:        "none",
	SoptMerge:       "merge",
	SoptSimdScalar:  "simd-scalar",
	SoptWide:        "wide",
	SoptImmFirst:    "imm-first",
	SoptCounter:     "counter",
	SoptVL2:         "vlx2",
	SoptVL4:         "vlx4",
	SoptVectorList2: "list2",
	SoptVectorList4: "list4",
	SoptScaled:      "scaled",
}

func (s ScalableOpt) String() string {
	if int(s) < len(soptNames) {
		return soptNames[s]
	}
	return "sopt(" + strconv.Itoa(int(s)) + ")"
}

// shape folds options that set descriptor flags rather than pick a
// format.
func (s ScalableOpt) shape() ScalableOpt {
	switch s {
	case SoptMerge, SoptScaled:
		return SoptNone
	case SoptVL4:
		return SoptVL2
	}
	return s
}

// A Pattern is a predicate constraint used by PTRUE and the element count
// instructions.
type Pattern uint8

const (
	PatPOW2  Pattern = 0
	PatVL1   Pattern = 1
	PatVL2   Pattern = 2
	PatVL3   Pattern = 3
	PatVL4   Pattern = 4
	PatVL5   Pattern = 5
	PatVL6   Pattern = 6
	PatVL7   Pattern = 7
	PatVL8   Pattern = 8
	PatVL16  Pattern = 9
	PatVL32  Pattern = 10
	PatVL64  Pattern = 11
	PatVL128 Pattern = 12
	PatVL256 Pattern = 13
	PatMUL4  Pattern = 29
	PatMUL3  Pattern = 30
	PatALL   Pattern = 31
)

var patternNames = map[Pattern]string{
	PatPOW2:  "pow2",
	PatVL1:   "vl1",
	PatVL2:   "vl2",
	PatVL3:   "vl3",
	PatVL4:   "vl4",
	PatVL5:   "vl5",
	PatVL6:   "vl6",
	PatVL7:   "vl7",
	PatVL8:   "vl8",
	PatVL16:  "vl16",
	PatVL32:  "vl32",
	PatVL64:  "vl64",
	PatVL128: "vl128",
	PatVL256: "vl256",
	PatMUL4:  "mul4",
	PatMUL3:  "mul3",
	PatALL:   "all",
}

func (p Pattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return "#" + strconv.Itoa(int(p))
}

// A Prfop is the prefetch operation of a PRF* instruction.
type Prfop uint8

const (
	PLDL1KEEP Prfop = 0
	PLDL1STRM Prfop = 1
	PLDL2KEEP Prfop = 2
	PLDL2STRM Prfop = 3
	PLDL3KEEP Prfop = 4
	PLDL3STRM Prfop = 5
	PSTL1KEEP Prfop = 8
	PSTL1STRM Prfop = 9
	PSTL2KEEP Prfop = 10
	PSTL2STRM Prfop = 11
	PSTL3KEEP Prfop = 12
	PSTL3STRM Prfop = 13
)

var prfopNames = map[Prfop]string{
	PLDL1KEEP: "pldl1keep",
	PLDL1STRM: "pldl1strm",
	PLDL2KEEP: "pldl2keep",
	PLDL2STRM: "pldl2strm",
	PLDL3KEEP: "pldl3keep",
	PLDL3STRM: "pldl3strm",
	PSTL1KEEP: "pstl1keep",
	PSTL1STRM: "pstl1strm",
	PSTL2KEEP: "pstl2keep",
	PSTL2STRM: "pstl2strm",
	PSTL3KEEP: "pstl3keep",
	PSTL3STRM: "pstl3strm",
}

// String returns the operation name, or #n for the unallocated values.
func (p Prfop) String() string {
	if s, ok := prfopNames[p]; ok {
		return s
	}
	return "#" + strconv.Itoa(int(p))
}
