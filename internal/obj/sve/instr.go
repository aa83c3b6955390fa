// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"github.com/davecgh/go-spew/spew"
)

// An Instr is an instruction descriptor. The builder fills it in once and
// everything downstream (packer, printer, cost model, verifier) reads it
// without modification. Op holds the preferred alias, if any, so the
// descriptor prints the way a disassembler would show its encoding.
type Instr struct {
	Op   Op
	Fmt  Format
	Opt  Opt
	Size Size

	// Registers in operand order, with tied operands stored once.
	Reg [4]Reg

	// Imm holds the immediate operand in the form the format packs: a
	// rotation code rather than degrees, N:immr:imms rather than the
	// literal bitmask, and so on.
	Imm int64

	// Shifted is set on imm8 forms carrying LSL #8, and on gathers and
	// scatters whose vector offsets are scaled by the element size.
	Shifted bool

	// Merge selects /M on a zeroing-or-merging governing predicate.
	Merge bool

	// VL4 selects vlx4 on predicate-as-counter forms; vlx2 otherwise.
	VL4 bool

	Pattern Pattern
	Prfop   Prfop

	kind descKind
}

// A descKind records which allocation variant holds a descriptor.
type descKind uint8

const (
	kindSmall    descKind = iota // no immediate
	kindSmallCns                 // immediate fits in smallCnsBits
	kindCns                      // full-width immediate
)

// smallCnsBits is the signed immediate width held by kindSmallCns.
const smallCnsBits = 16

func (k descKind) String() string {
	switch k {
	case kindSmall:
		return "small"
	case kindSmallCns:
		return "small-cns"
	case kindCns:
		return "cns"
	}
	return "unknown"
}

// String returns the disassembly of in.
func (in *Instr) String() string {
	return Disasm(in)
}

// Dump returns a field by field rendering of the descriptor for traces and
// test failures.
func (in *Instr) Dump() string {
	return dumper.Sdump(in)
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}
