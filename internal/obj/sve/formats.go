// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"
	"strings"

	"github.com/dotnet/runtime-sub004/internal/obj/sve/imm"
)

// A Format is a concrete operand shape. The name spells the operands in
// assembly order: Zd/Zn/Zm are vectors, Pg a governing predicate with its
// qualifier (M merging, Z zeroing, ZM either), T the element arrangement,
// and trailing words name immediates or addressing modes.
type Format uint16

const (
	F_none Format = iota

	// Vector arithmetic.
	F_ZdnT_PgM_ZdnT_ZmT
	F_ZdnT_PgM_ZdnT_ZmD
	F_ZdT_ZnT_ZmT
	F_ZdT_ListZnT_ZmT
	F_ZdT_ZnT_ZmD
	F_ZdQ_ZnQ_ZmQ
	F_ZdD_ZnD_ZmD
	F_ZdnD_ZdnD_ZmD_ZkD
	F_ZdaT_ZnT_ZmT
	F_ZdaT_PgM_ZnT_ZmT
	F_ZdnT_PgM_ZmT_ZaT

	// Unary, conversion and move prefix.
	F_ZdT_PgM_ZnT
	F_ZdT_PgM_ZnT_Cvt
	F_ZdH_PgM_ZnS
	F_ZdT_PgZM_ZnT
	F_Zd_Zn
	F_ZdT_ZnT
	F_ZdT_ZnTh

	// Select and permute.
	F_ZdT_Pg_ZnT_ZmT
	F_ZdT_PgM_ZnT_Sel
	F_ZdD_ZnD
	F_ZdnT_Pg_ZdnT_ZmT
	F_ZdT_Pg_ZnT

	// Dot products and matrix multiplies.
	F_ZdaT_ZnTq_ZmTq
	F_ZdaT_ZnTq_ZmTqIdx
	F_ZdaS_ZnB_ZmB
	F_ZdaS_ZnH_ZmH
	F_ZdaS_ZnH_ZmHIdx2
	F_ZdaS_ZnH_ZmHIdx3
	F_ZdaT_ZnT_ZmTIdx
	F_ZdaT_ZnT_ZmTIdx_Rot

	// Complex arithmetic.
	F_ZdnT_PgM_ZdnT_ZmT_Rot1
	F_ZdaT_PgM_ZnT_ZmT_Rot2
	F_ZdnT_ZdnT_ZmT_Rot1
	F_ZdaT_ZnT_ZmT_Rot2

	// Immediates.
	F_ZdnT_ZdnT_Imm8Sh
	F_ZdnT_ZdnT_Simm8
	F_ZdnT_ZdnT_Uimm8
	F_ZdnT_ZdnT_Bitmask
	F_ZdT_Bitmask
	F_ZdT_Simm8Sh
	F_ZdT_Fimm8
	F_ZdT_PgZM_Simm8Sh
	F_ZdT_PgM_Fimm8
	F_ZdnT_PgM_ZdnT_ShiftR
	F_ZdnT_PgM_ZdnT_ShiftL
	F_ZdT_ZnT_ShiftR
	F_ZdT_ZnT_ShiftL
	F_ZdnT_PgM_ZdnT_Fimm1
	F_ZdnT_ZdnT_ZmT_Imm3
	F_ZdnB_ZdnB_ZmB_Imm8

	// Scalar sources and index generation.
	F_ZdT_PgM_Rn
	F_ZdT_PgM_Vn
	F_ZdT_Rn
	F_ZdT_ZnTIdx
	F_ZdT_Vn
	F_ZdnT_Rm
	F_ZdnT_Vm
	F_ZdT_Simm5_Simm5
	F_ZdT_Simm5_Rm
	F_ZdT_Rn_Simm5
	F_ZdT_Rn_Rm

	// Predicate logical operations and their aliases.
	F_PdB_PgZ_PnB_PmB
	F_PdB_Pg_PnB_PmB
	F_PdB_PnB
	F_PdB_PgZ_PnB_Dup
	F_PdB_PgM_PnB_Sel
	F_PdB_PgZ_PnB_Not

	// Other predicate operations.
	F_PdB_PgZM_PnB
	F_PdB_PgZ_PnB
	F_PdmB_PgZ_PnB_PdmB
	F_PdT_Pattern
	F_PdB
	F_PdB_PgZ
	F_PnB
	F_NoOps
	F_Pg_PnB
	F_PdnB_Pg_PdnB
	F_PdnT_Pg_PdnT
	F_Xd_Pg_PnT
	F_Xdn_PmT
	F_ZdnT_PmT
	F_PdT_Rn_Rm
	F_Rn_Rm
	F_PdT_PnT_PmT
	F_PdT_PnT
	F_PdH_PnB

	// Compares.
	F_PdT_PgZ_ZnT_ZmT
	F_PdT_PgZ_ZnT_ZmD
	F_PdT_PgZ_ZnT_Simm5
	F_PdT_PgZ_ZnT_Uimm7
	F_PdT_PgZ_ZnT_Zero

	// Predicate-as-counter.
	F_PNdT
	F_PNdT_Rn_Rm_VL
	F_Xd_PNnT_VL

	// Reductions and element extraction.
	F_Dd_Pg_ZnT
	F_Vd_Pg_ZnT
	F_Vdn_Pg_Vdn_ZmT
	F_Rd_Pg_ZnT
	F_Rdn_Pg_Rdn_ZmT

	// Element counts and vector length arithmetic.
	F_Xd_Pattern_Mul
	F_ZdnT_Pattern_Mul
	F_Xd_XnSP_Simm6
	F_Xd_Simm6

	// Contiguous loads and stores.
	F_ZtT_PgZ_XnSP_Simm4MulVL
	F_ZtT_PgZ_XnSP_Xm
	F_ZtT_Pg_XnSP_Simm4MulVL
	F_ZtT_Pg_XnSP_Xm

	// Gathers and scatters.
	F_ZtS_PgZ_XnSP_ZmS_Ext
	F_ZtS_PgZ_XnSP_ZmS_ExtScaled
	F_ZtD_PgZ_XnSP_ZmD
	F_ZtD_PgZ_XnSP_ZmD_Lsl
	F_ZtS_PgZ_ZnS_Imm5
	F_ZtD_PgZ_ZnD_Imm5
	F_ZtS_Pg_XnSP_ZmS_Ext
	F_ZtS_Pg_XnSP_ZmS_ExtScaled
	F_ZtD_Pg_XnSP_ZmD
	F_ZtD_Pg_XnSP_ZmD_Lsl
	F_ZtS_Pg_ZnS_Imm5
	F_ZtD_Pg_ZnD_Imm5

	// Structure loads and stores.
	F_Zt2T_PgZ_XnSP_Simm4MulVL
	F_Zt3T_PgZ_XnSP_Simm4MulVL
	F_Zt4T_PgZ_XnSP_Simm4MulVL
	F_Zt2T_PgZ_XnSP_Xm
	F_Zt4T_PgZ_XnSP_Xm
	F_Zt2T_Pg_XnSP_Simm4MulVL
	F_Zt3T_Pg_XnSP_Simm4MulVL
	F_Zt4T_Pg_XnSP_Simm4MulVL
	F_Zt2T_Pg_XnSP_Xm
	F_Zt4T_Pg_XnSP_Xm

	// Multi-vector loads and stores governed by a counter.
	F_Zt2_PNgZ_XnSP_Simm4MulVL
	F_Zt4_PNgZ_XnSP_Simm4MulVL
	F_Zt2_PNgZ_XnSP_Xm
	F_Zt4_PNgZ_XnSP_Xm
	F_Zt2_PNg_XnSP_Simm4MulVL
	F_Zt4_PNg_XnSP_Simm4MulVL
	F_Zt2_PNg_XnSP_Xm
	F_Zt4_PNg_XnSP_Xm

	// Fill, spill and prefetch.
	F_Zt_XnSP_Simm9MulVL
	F_Pt_XnSP_Simm9MulVL
	F_Prfop_Pg_XnSP_Simm6MulVL
	F_Prfop_Pg_XnSP_Xm

	numFormats
)

// An entry is the builder method a format is reached through. It fixes
// how many registers the caller passes and what kind of immediate follows.
type entry uint8

const (
	viaIns entry = iota
	viaR
	viaRI
	viaRF
	viaRII
	viaRR
	viaRRI
	viaRRF
	viaRRR
	viaRRRI
	viaRRRII
	viaRRRR
	viaRRRRI
	viaRPatI
	viaPrfRRI
	viaPrfRRR
)

var entryNames = [...]string{
	viaIns:    "Ins",
	viaR:      "InsR",
	viaRI:     "InsRI",
	viaRF:     "InsRF",
	viaRII:    "InsRII",
	viaRR:     "InsRR",
	viaRRI:    "InsRRI",
	viaRRF:    "InsRRF",
	viaRRR:    "InsRRR",
	viaRRRI:   "InsRRRI",
	viaRRRII:  "InsRRRII",
	viaRRRR:   "InsRRRR",
	viaRRRRI:  "InsRRRRI",
	viaRPatI:  "InsRPatternI",
	viaPrfRRI: "InsPrefetchRRI",
	viaPrfRRR: "InsPrefetchRRR",
}

func (e entry) String() string {
	if int(e) < len(entryNames) {
		return entryNames[e]
	}
	return fmt.Sprintf("entry(%d)", uint8(e))
}

// An immKind says how the builder turns the caller's immediate into the
// form stored in the descriptor.
type immKind uint8

const (
	immNone    immKind = iota
	immRaw             // stored as given
	immImm8U           // unsigned imm8 with optional LSL #8
	immImm8S           // signed imm8 with optional LSL #8
	immBitmask         // logical immediate, stored as N:immr:imms
	immShiftR          // right shift amount, stored as tsz:imm3
	immShiftL          // left shift amount, stored as tsz:imm3
	immBcast           // element index, stored as imm2:tsz
	immRot1            // #90 or #270, stored as a 1-bit code
	immRot2            // #0 to #270, stored as a 2-bit code
	immIdxRot          // index and rotation, stored as index<<2 | code
	immFimm1           // one of two float constants
	immFimm8           // 8-bit modified float
	immPair            // two signed 5-bit values
)

// formatInfo is the dispatch record for one format. The packer, printer
// and validator all walk the same field list, so they cannot disagree
// about where an operand lives.
type formatInfo struct {
	via    entry
	sopt   ScalableOpt
	feat   Feature
	fields []field
	accept func(in *Instr) bool

	// Derived from fields by init.
	defined bool
	class   [4]RegClass
	nregs   int
	typed   bool
	allow   optSet
	sized   bool
	imm     immKind
}

func def(via entry, fields ...field) formatInfo {
	return formatInfo{via: via, fields: fields, defined: true}
}

// opt restricts the format to callers passing the scalable option s.
func (fi formatInfo) opt(s ScalableOpt) formatInfo {
	fi.sopt = s
	return fi
}

// when adds a predicate on the draft descriptor, for formats that share
// an entry point and register classes.
func (fi formatInfo) when(fn func(in *Instr) bool) formatInfo {
	fi.accept = fn
	return fi
}

// needs gates the format behind an extension in addition to the opcode's.
func (fi formatInfo) needs(f Feature) formatInfo {
	fi.feat = f
	return fi
}

func merging(in *Instr) bool    { return in.Merge }
func notMerging(in *Instr) bool { return !in.Merge }

// fitsSimm8Sh lets MOV fall through to its bitmask form when the value
// has no imm8 encoding.
func fitsSimm8Sh(in *Instr) bool {
	_, _, ok := imm.EncodeImm8Shifted(in.Imm, true, in.Opt != ArrB)
	return ok
}

func extended(scaled bool) func(*Instr) bool {
	return func(in *Instr) bool { return in.Opt.IsExtend() && in.Shifted == scaled }
}

func doubleword(scaled bool) func(*Instr) bool {
	return func(in *Instr) bool { return in.Opt == OptNone && in.Shifted == scaled }
}

// Index layouts for the indexed multiply forms.
var (
	fmlaIdx = map[Opt]idxLayout{
		ArrH: {fixed: 0, regLo: 16, regBit: 3, spans: []span{{22, 1}, {19, 2}}},
		ArrS: {fixed: 0x800000, regLo: 16, regBit: 3, spans: []span{{19, 2}}},
		ArrD: {fixed: 0xc00000, regLo: 16, regBit: 4, spans: []span{{20, 1}}},
	}
	dotIdx = map[Opt]idxLayout{
		ArrS: {fixed: 0, regLo: 16, regBit: 3, spans: []span{{19, 2}}},
		ArrD: {fixed: 1 << 22, regLo: 16, regBit: 4, spans: []span{{20, 1}}},
	}
	cmlaIdx = map[Opt]idxLayout{
		ArrH: {fixed: 0, regLo: 16, regBit: 3, spans: []span{{19, 2}}},
		ArrS: {fixed: 1 << 22, regLo: 16, regBit: 4, spans: []span{{20, 1}}},
	}
	bfIdx2 = map[Opt]idxLayout{
		OptNone: {regLo: 16, regBit: 3, spans: []span{{19, 2}}},
	}
	bfIdx3 = map[Opt]idxLayout{
		OptNone: {regLo: 16, regBit: 3, spans: []span{{19, 2}, {11, 1}}},
	}
)

var (
	imm4MulVL = []span{{16, 4}}
	imm6MulVL = []span{{16, 6}}
	imm9MulVL = []span{{16, 6}, {10, 3}}
)

var formatTab = [numFormats]formatInfo{
	F_ZdnT_PgM_ZdnT_ZmT: def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, zr(2, 5, elT)),
	F_ZdnT_PgM_ZdnT_ZmD: def(viaRRR, sz(setBHS), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, zr(2, 5, elD)).opt(SoptWide),
	F_ZdT_ZnT_ZmT:       def(viaRRR, sz(setBHSD), zr(0, 0, elT), zr(1, 5, elT), zr(2, 16, elT)),
	F_ZdT_ListZnT_ZmT:   def(viaRRR, sz(setBHSD), zr(0, 0, elT), zlist{n: 1, lo: 5, count: 1, e: elT}, zr(2, 16, elT)),
	F_ZdT_ZnT_ZmD:       def(viaRRR, sz(setBHS), zr(0, 0, elT), zr(1, 5, elT), zr(2, 16, elD)).opt(SoptWide),
	F_ZdQ_ZnQ_ZmQ:       def(viaRRR, typ(setQ), zr(0, 0, elQ), zr(1, 5, elQ), zr(2, 16, elQ)).needs(FeatF64MM),
	F_ZdD_ZnD_ZmD:       def(viaRRR, typ(setD), zr(0, 0, elD), zr(1, 5, elD), zr(2, 16, elD)),
	F_ZdnD_ZdnD_ZmD_ZkD: def(viaRRR, typ(setD), zr(0, 0, elD), tie{zr(0, 0, elD)}, zr(1, 16, elD), zr(2, 5, elD)),
	F_ZdaT_ZnT_ZmT:      def(viaRRR, sz(setBHSD), zr(0, 0, elT), zr(1, 5, elT), zr(2, 16, elT)),
	F_ZdaT_PgM_ZnT_ZmT:  def(viaRRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), zr(2, 5, elT), zr(3, 16, elT)),
	F_ZdnT_PgM_ZmT_ZaT:  def(viaRRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), zr(2, 16, elT), zr(3, 5, elT)),

	F_ZdT_PgM_ZnT:     def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), zr(2, 5, elT)),
	F_ZdT_PgM_ZnT_Cvt: def(viaRRR, conv{}, zr(0, 0, elDst), pr(1, 10, 3, pqMerge), zr(2, 5, elSrc)),
	F_ZdH_PgM_ZnS:     def(viaRRR, zr(0, 0, elH), pr(1, 10, 3, pqMerge), zr(2, 5, elS)),
	F_ZdT_PgZM_ZnT:    def(viaRRR, sz(setBHSD), zr(0, 0, elT), pmz(1, 10, 3, 16), zr(2, 5, elT)),
	F_Zd_Zn:           def(viaRR, zr(0, 0, elNone), zr(1, 5, elNone)),
	F_ZdT_ZnT:         def(viaRR, sz(setBHSD), zr(0, 0, elT), zr(1, 5, elT)),
	F_ZdT_ZnTh:        def(viaRR, sz(setHSD), zr(0, 0, elT), zr(1, 5, elTh)),

	F_ZdT_Pg_ZnT_ZmT:   def(viaRRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 4, pqNone), zr(2, 5, elT), zr(3, 16, elT)),
	F_ZdT_PgM_ZnT_Sel:  def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 4, pqMerge), zr(2, 5, elT), also{0, 16, 5}),
	F_ZdD_ZnD:          def(viaRR, typ(setD), zr(0, 0, elD), zr(1, 5, elD), also{1, 16, 5}),
	F_ZdnT_Pg_ZdnT_ZmT: def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqNone), tie{zr(0, 0, elT)}, zr(2, 5, elT)),
	F_ZdT_Pg_ZnT:       def(viaRRR, sz(setSD), zr(0, 0, elT), pr(1, 10, 3, pqNone), zr(2, 5, elT)),

	F_ZdaT_ZnTq_ZmTq:      def(viaRRR, szAt(22, 1, 2, setSD), zr(0, 0, elT), zr(1, 5, elTq), zr(2, 16, elTq)),
	F_ZdaT_ZnTq_ZmTqIdx:   def(viaRRRI, typ(setSD), zr(0, 0, elT), zr(1, 5, elTq), zidx{n: 2, e: elTq, layouts: dotIdx}),
	F_ZdaS_ZnB_ZmB:        def(viaRRR, zr(0, 0, elS), zr(1, 5, elB), zr(2, 16, elB)),
	F_ZdaS_ZnH_ZmH:        def(viaRRR, zr(0, 0, elS), zr(1, 5, elH), zr(2, 16, elH)),
	F_ZdaS_ZnH_ZmHIdx2:    def(viaRRRI, zr(0, 0, elS), zr(1, 5, elH), zidx{n: 2, e: elH, layouts: bfIdx2}),
	F_ZdaS_ZnH_ZmHIdx3:    def(viaRRRI, zr(0, 0, elS), zr(1, 5, elH), zidx{n: 2, e: elH, layouts: bfIdx3}),
	F_ZdaT_ZnT_ZmTIdx:     def(viaRRRI, typ(setHSD), zr(0, 0, elT), zr(1, 5, elT), zidx{n: 2, e: elT, layouts: fmlaIdx}),
	F_ZdaT_ZnT_ZmTIdx_Rot: def(viaRRRII, typ(setHS), zr(0, 0, elT), zr(1, 5, elT), zidx{n: 2, e: elT, layouts: cmlaIdx, ishift: 2}, rot{lo: 10, two: true, sub: true}),

	F_ZdnT_PgM_ZdnT_ZmT_Rot1: def(viaRRRI, sz(setHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, zr(2, 5, elT), rot{lo: 16}),
	F_ZdaT_PgM_ZnT_ZmT_Rot2:  def(viaRRRRI, sz(setHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), zr(2, 5, elT), zr(3, 16, elT), rot{lo: 13, two: true}),
	F_ZdnT_ZdnT_ZmT_Rot1:     def(viaRRI, sz(setBHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, zr(1, 5, elT), rot{lo: 10}),
	F_ZdaT_ZnT_ZmT_Rot2:      def(viaRRRI, sz(setBHSD), zr(0, 0, elT), zr(1, 5, elT), zr(2, 16, elT), rot{lo: 10, two: true}),

	F_ZdnT_ZdnT_Imm8Sh:     def(viaRI, sz(setBHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, imm8sh{}),
	F_ZdnT_ZdnT_Simm8:      def(viaRI, sz(setBHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, si(5, 8)),
	F_ZdnT_ZdnT_Uimm8:      def(viaRI, sz(setBHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, ui(5, 8)),
	F_ZdnT_ZdnT_Bitmask:    def(viaRI, typ(setBHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, bitmask{5}),
	F_ZdT_Bitmask:          def(viaRI, typ(setBHSD), zr(0, 0, elT), bitmask{5}),
	F_ZdT_Simm8Sh:          def(viaRI, sz(setBHSD), zr(0, 0, elT), imm8sh{signed: true}).when(fitsSimm8Sh),
	F_ZdT_Fimm8:            def(viaRF, sz(setHSD), zr(0, 0, elT), fimm8{5}),
	F_ZdT_PgZM_Simm8Sh:     def(viaRRI, sz(setBHSD), zr(0, 0, elT), pmz(1, 16, 4, 14), imm8sh{signed: true}),
	F_ZdT_PgM_Fimm8:        def(viaRRF, sz(setHSD), zr(0, 0, elT), pr(1, 16, 4, pqMerge), fimm8{5}),
	F_ZdnT_PgM_ZdnT_ShiftR: def(viaRRI, typ(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, shift{tszlLo: 8, imm3Lo: 5}),
	F_ZdnT_PgM_ZdnT_ShiftL: def(viaRRI, typ(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, shift{left: true, tszlLo: 8, imm3Lo: 5}),
	F_ZdT_ZnT_ShiftR:       def(viaRRI, typ(setBHSD), zr(0, 0, elT), zr(1, 5, elT), shift{tszlLo: 19, imm3Lo: 16}),
	F_ZdT_ZnT_ShiftL:       def(viaRRI, typ(setBHSD), zr(0, 0, elT), zr(1, 5, elT), shift{left: true, tszlLo: 19, imm3Lo: 16}),
	F_ZdnT_PgM_ZdnT_Fimm1:  def(viaRRF, sz(setHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), tie{zr(0, 0, elT)}, fimm1{5}),
	F_ZdnT_ZdnT_ZmT_Imm3:   def(viaRRI, sz(setHSD), zr(0, 0, elT), tie{zr(0, 0, elT)}, zr(1, 5, elT), ui(16, 3)),
	F_ZdnB_ZdnB_ZmB_Imm8:   def(viaRRI, zr(0, 0, elB), tie{zr(0, 0, elB)}, zr(1, 5, elB), usplit{[]span{{16, 5}, {10, 3}}}),

	F_ZdT_PgM_Rn:      def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), relsp(2, 5)),
	F_ZdT_PgM_Vn:      def(viaRRR, sz(setBHSD), zr(0, 0, elT), pr(1, 10, 3, pqMerge), vr(2, 5, elT)).opt(SoptSimdScalar),
	F_ZdT_Rn:          def(viaRR, sz(setBHSD), zr(0, 0, elT), relsp(1, 5)),
	F_ZdT_ZnTIdx:      def(viaRRI, typ(setBHSDQ), zr(0, 0, elT), bcast{n: 1}),
	F_ZdT_Vn:          def(viaRRI, typ(setBHSDQ), zr(0, 0, elT), bcast{n: 1, scalar: true}).opt(SoptSimdScalar),
	F_ZdnT_Rm:         def(viaRR, sz(setBHSD), zr(0, 0, elT), rel(1, 5)),
	F_ZdnT_Vm:         def(viaRR, sz(setBHSD), zr(0, 0, elT), vr(1, 5, elT)).opt(SoptSimdScalar),
	F_ZdT_Simm5_Simm5: def(viaRII, sz(setBHSD), zr(0, 0, elT), simm5pair{}),
	F_ZdT_Simm5_Rm:    def(viaRRI, sz(setBHSD), zr(0, 0, elT), si(5, 5), rel(1, 16)).opt(SoptImmFirst),
	F_ZdT_Rn_Simm5:    def(viaRRI, sz(setBHSD), zr(0, 0, elT), rel(1, 5), si(16, 5)),
	F_ZdT_Rn_Rm:       def(viaRRR, sz(setBHSD), zr(0, 0, elT), rel(1, 5), rel(2, 16)),

	F_PdB_PgZ_PnB_PmB: def(viaRRRR, pe(0, 0, elB), pr(1, 10, 4, pqZero), pe(2, 5, elB), pe(3, 16, elB)),
	F_PdB_Pg_PnB_PmB:  def(viaRRRR, pe(0, 0, elB), pr(1, 10, 4, pqNone), pe(2, 5, elB), pe(3, 16, elB)),
	F_PdB_PnB:         def(viaRR, pe(0, 0, elB), pe(1, 5, elB), also{1, 10, 4}, also{1, 16, 4}),
	F_PdB_PgZ_PnB_Dup: def(viaRRR, pe(0, 0, elB), pr(1, 10, 4, pqZero), pe(2, 5, elB), also{2, 16, 4}).when(notMerging),
	F_PdB_PgM_PnB_Sel: def(viaRRR, pe(0, 0, elB), pr(1, 10, 4, pqMerge), pe(2, 5, elB), also{0, 16, 4}).when(merging),
	F_PdB_PgZ_PnB_Not: def(viaRRR, pe(0, 0, elB), pr(1, 10, 4, pqZero), pe(2, 5, elB), also{1, 16, 4}),

	F_PdB_PgZM_PnB:      def(viaRRR, pe(0, 0, elB), pmz(1, 10, 4, 4), pe(2, 5, elB)),
	F_PdB_PgZ_PnB:       def(viaRRR, pe(0, 0, elB), pr(1, 10, 4, pqZero), pe(2, 5, elB)),
	F_PdmB_PgZ_PnB_PdmB: def(viaRRR, pe(0, 0, elB), pr(1, 10, 4, pqZero), pe(2, 5, elB), tie{pe(0, 0, elB)}),
	F_PdT_Pattern:       def(viaRPatI, sz(setBHSD), pe(0, 0, elT), patMul{patLo: 5, mulLo: -1}),
	F_PdB:               def(viaR, pe(0, 0, elB)),
	F_PdB_PgZ:           def(viaRR, pe(0, 0, elB), pr(1, 5, 4, pqZero)),
	F_PnB:               def(viaR, pe(0, 5, elB)),
	F_NoOps:             def(viaIns),
	F_Pg_PnB:            def(viaRR, pr(0, 10, 4, pqNone), pe(1, 5, elB)),
	F_PdnB_Pg_PdnB:      def(viaRR, pe(0, 0, elB), pr(1, 5, 4, pqNone), tie{pe(0, 0, elB)}),
	F_PdnT_Pg_PdnT:      def(viaRR, sz(setBHSD), pe(0, 0, elT), pr(1, 5, 4, pqNone), tie{pe(0, 0, elT)}),
	F_Xd_Pg_PnT:         def(viaRRR, sz(setBHSD), xr(0, 0), pr(1, 10, 4, pqNone), pe(2, 5, elT)),
	F_Xdn_PmT:           def(viaRR, sz(setBHSD), xr(0, 0), pe(1, 5, elT)),
	F_ZdnT_PmT:          def(viaRR, sz(setHSD), zr(0, 0, elT), pe(1, 5, elT)),
	F_PdT_Rn_Rm:         def(viaRRR, sz(setBHSD), pe(0, 0, elT), rsz(1, 5), rsz(2, 16), sf{12}),
	F_Rn_Rm:             def(viaRR, rsz(0, 5), rsz(1, 16), sf{22}),
	F_PdT_PnT_PmT:       def(viaRRR, sz(setBHSD), pe(0, 0, elT), pe(1, 5, elT), pe(2, 16, elT)),
	F_PdT_PnT:           def(viaRR, sz(setBHSD), pe(0, 0, elT), pe(1, 5, elT)),
	F_PdH_PnB:           def(viaRR, pe(0, 0, elH), pe(1, 5, elB)),

	F_PdT_PgZ_ZnT_ZmT:   def(viaRRRR, sz(setBHSD), pe(0, 0, elT), pr(1, 10, 3, pqZero), zr(2, 5, elT), zr(3, 16, elT)),
	F_PdT_PgZ_ZnT_ZmD:   def(viaRRRR, sz(setBHS), pe(0, 0, elT), pr(1, 10, 3, pqZero), zr(2, 5, elT), zr(3, 16, elD)).opt(SoptWide),
	F_PdT_PgZ_ZnT_Simm5: def(viaRRRI, sz(setBHSD), pe(0, 0, elT), pr(1, 10, 3, pqZero), zr(2, 5, elT), si(16, 5)),
	F_PdT_PgZ_ZnT_Uimm7: def(viaRRRI, sz(setBHSD), pe(0, 0, elT), pr(1, 10, 3, pqZero), zr(2, 5, elT), ui(14, 7)),
	F_PdT_PgZ_ZnT_Zero:  def(viaRRRI, sz(setHSD), pe(0, 0, elT), pr(1, 10, 3, pqZero), zr(2, 5, elT), zero{fp: true}),

	F_PNdT:          def(viaR, sz(setBHSD), pn(0, 0, pqElem, elT)).opt(SoptCounter).needs(FeatSVE2p1),
	F_PNdT_Rn_Rm_VL: def(viaRRR, sz(setBHSD), pn(0, 0, pqElem, elT), xr(1, 5), xr(2, 16), vlx{13}).opt(SoptVL2).needs(FeatSVE2p1),
	F_Xd_PNnT_VL:    def(viaRR, sz(setBHSD), xr(0, 0), pn(1, 5, pqElem, elT), vlx{10}).opt(SoptVL2).needs(FeatSVE2p1),

	F_Dd_Pg_ZnT:      def(viaRRR, sz(setBHSD), vr(0, 0, elD), pr(1, 10, 3, pqNone), zr(2, 5, elT)).opt(SoptSimdScalar),
	F_Vd_Pg_ZnT:      def(viaRRR, sz(setBHSD), vr(0, 0, elT), pr(1, 10, 3, pqNone), zr(2, 5, elT)).opt(SoptSimdScalar),
	F_Vdn_Pg_Vdn_ZmT: def(viaRRR, sz(setBHSD), vr(0, 0, elT), pr(1, 10, 3, pqNone), tie{vr(0, 0, elT)}, zr(2, 5, elT)).opt(SoptSimdScalar),
	F_Rd_Pg_ZnT:      def(viaRRR, sz(setBHSD), rel(0, 0), pr(1, 10, 3, pqNone), zr(2, 5, elT)),
	F_Rdn_Pg_Rdn_ZmT: def(viaRRR, sz(setBHSD), rel(0, 0), pr(1, 10, 3, pqNone), tie{rel(0, 0)}, zr(2, 5, elT)),

	F_Xd_Pattern_Mul:   def(viaRPatI, xr(0, 0), patMul{patLo: 5, mulLo: 16}),
	F_ZdnT_Pattern_Mul: def(viaRPatI, typ(setHSD), zr(0, 0, elT), patMul{patLo: 5, mulLo: 16}),
	F_Xd_XnSP_Simm6:    def(viaRRI, xsp(0, 0), xsp(1, 16), si(5, 6)),
	F_Xd_Simm6:         def(viaRI, xr(0, 0), si(5, 6)),

	F_ZtT_PgZ_XnSP_Simm4MulVL: def(viaRRRI, szAt(21, 2, 0, setBHSD), zlist{n: 0, count: 1, e: elT}, pr(1, 10, 3, pqZero), mem{2, imm4MulVL, 1}),
	F_ZtT_PgZ_XnSP_Xm:         def(viaRRRR, szAt(21, 2, 0, setBHSD), zlist{n: 0, count: 1, e: elT}, pr(1, 10, 3, pqZero), memRR{2, 3}),
	F_ZtT_Pg_XnSP_Simm4MulVL:  def(viaRRRI, szAt(21, 2, 0, setBHSD), zlist{n: 0, count: 1, e: elT}, pr(1, 10, 3, pqNone), mem{2, imm4MulVL, 1}),
	F_ZtT_Pg_XnSP_Xm:          def(viaRRRR, szAt(21, 2, 0, setBHSD), zlist{n: 0, count: 1, e: elT}, pr(1, 10, 3, pqNone), memRR{2, 3}),

	F_ZtS_PgZ_XnSP_ZmS_Ext:       def(viaRRRR, zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqZero), memRZ{2, 3, elS, false, 22}).when(extended(false)),
	F_ZtS_PgZ_XnSP_ZmS_ExtScaled: def(viaRRRR, zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqZero), memRZ{2, 3, elS, true, 22}).when(extended(true)),
	F_ZtD_PgZ_XnSP_ZmD:           def(viaRRRR, zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqZero), memRZ{2, 3, elD, false, -1}).when(doubleword(false)),
	F_ZtD_PgZ_XnSP_ZmD_Lsl:       def(viaRRRR, zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqZero), memRZ{2, 3, elD, true, -1}).when(doubleword(true)),
	F_ZtS_PgZ_ZnS_Imm5:           def(viaRRRI, typ(setS), zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqZero), memZI{2, elS}),
	F_ZtD_PgZ_ZnD_Imm5:           def(viaRRRI, typ(setD), zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqZero), memZI{2, elD}),
	F_ZtS_Pg_XnSP_ZmS_Ext:        def(viaRRRR, zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqNone), memRZ{2, 3, elS, false, 14}).when(extended(false)),
	F_ZtS_Pg_XnSP_ZmS_ExtScaled:  def(viaRRRR, zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqNone), memRZ{2, 3, elS, true, 14}).when(extended(true)),
	F_ZtD_Pg_XnSP_ZmD:            def(viaRRRR, zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqNone), memRZ{2, 3, elD, false, -1}).when(doubleword(false)),
	F_ZtD_Pg_XnSP_ZmD_Lsl:        def(viaRRRR, zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqNone), memRZ{2, 3, elD, true, -1}).when(doubleword(true)),
	F_ZtS_Pg_ZnS_Imm5:            def(viaRRRI, typ(setS), zlist{n: 0, count: 1, e: elS}, pr(1, 10, 3, pqNone), memZI{2, elS}),
	F_ZtD_Pg_ZnD_Imm5:            def(viaRRRI, typ(setD), zlist{n: 0, count: 1, e: elD}, pr(1, 10, 3, pqNone), memZI{2, elD}),

	F_Zt2T_PgZ_XnSP_Simm4MulVL: def(viaRRRI, zlist{n: 0, count: 2, e: elMsz}, pr(1, 10, 3, pqZero), mem{2, imm4MulVL, 2}),
	F_Zt3T_PgZ_XnSP_Simm4MulVL: def(viaRRRI, zlist{n: 0, count: 3, e: elMsz}, pr(1, 10, 3, pqZero), mem{2, imm4MulVL, 3}),
	F_Zt4T_PgZ_XnSP_Simm4MulVL: def(viaRRRI, zlist{n: 0, count: 4, e: elMsz}, pr(1, 10, 3, pqZero), mem{2, imm4MulVL, 4}),
	F_Zt2T_PgZ_XnSP_Xm:         def(viaRRRR, zlist{n: 0, count: 2, e: elMsz}, pr(1, 10, 3, pqZero), memRR{2, 3}),
	F_Zt4T_PgZ_XnSP_Xm:         def(viaRRRR, zlist{n: 0, count: 4, e: elMsz}, pr(1, 10, 3, pqZero), memRR{2, 3}),
	F_Zt2T_Pg_XnSP_Simm4MulVL:  def(viaRRRI, zlist{n: 0, count: 2, e: elMsz}, pr(1, 10, 3, pqNone), mem{2, imm4MulVL, 2}),
	F_Zt3T_Pg_XnSP_Simm4MulVL:  def(viaRRRI, zlist{n: 0, count: 3, e: elMsz}, pr(1, 10, 3, pqNone), mem{2, imm4MulVL, 3}),
	F_Zt4T_Pg_XnSP_Simm4MulVL:  def(viaRRRI, zlist{n: 0, count: 4, e: elMsz}, pr(1, 10, 3, pqNone), mem{2, imm4MulVL, 4}),
	F_Zt2T_Pg_XnSP_Xm:          def(viaRRRR, zlist{n: 0, count: 2, e: elMsz}, pr(1, 10, 3, pqNone), memRR{2, 3}),
	F_Zt4T_Pg_XnSP_Xm:          def(viaRRRR, zlist{n: 0, count: 4, e: elMsz}, pr(1, 10, 3, pqNone), memRR{2, 3}),

	F_Zt2_PNgZ_XnSP_Simm4MulVL: def(viaRRRI, zlist{n: 0, lo: 1, count: 2, e: elMsz, div: true}, pn(1, 10, pqZero, elNone), mem{2, imm4MulVL, 2}).opt(SoptVectorList2).needs(FeatSVE2p1),
	F_Zt4_PNgZ_XnSP_Simm4MulVL: def(viaRRRI, zlist{n: 0, lo: 2, count: 4, e: elMsz, div: true}, pn(1, 10, pqZero, elNone), mem{2, imm4MulVL, 4}).opt(SoptVectorList4).needs(FeatSVE2p1),
	F_Zt2_PNgZ_XnSP_Xm:         def(viaRRRR, zlist{n: 0, lo: 1, count: 2, e: elMsz, div: true}, pn(1, 10, pqZero, elNone), memRR{2, 3}).opt(SoptVectorList2).needs(FeatSVE2p1),
	F_Zt4_PNgZ_XnSP_Xm:         def(viaRRRR, zlist{n: 0, lo: 2, count: 4, e: elMsz, div: true}, pn(1, 10, pqZero, elNone), memRR{2, 3}).opt(SoptVectorList4).needs(FeatSVE2p1),
	F_Zt2_PNg_XnSP_Simm4MulVL:  def(viaRRRI, zlist{n: 0, lo: 1, count: 2, e: elMsz, div: true}, pn(1, 10, pqNone, elNone), mem{2, imm4MulVL, 2}).opt(SoptVectorList2).needs(FeatSVE2p1),
	F_Zt4_PNg_XnSP_Simm4MulVL:  def(viaRRRI, zlist{n: 0, lo: 2, count: 4, e: elMsz, div: true}, pn(1, 10, pqNone, elNone), mem{2, imm4MulVL, 4}).opt(SoptVectorList4).needs(FeatSVE2p1),
	F_Zt2_PNg_XnSP_Xm:          def(viaRRRR, zlist{n: 0, lo: 1, count: 2, e: elMsz, div: true}, pn(1, 10, pqNone, elNone), memRR{2, 3}).opt(SoptVectorList2).needs(FeatSVE2p1),
	F_Zt4_PNg_XnSP_Xm:          def(viaRRRR, zlist{n: 0, lo: 2, count: 4, e: elMsz, div: true}, pn(1, 10, pqNone, elNone), memRR{2, 3}).opt(SoptVectorList4).needs(FeatSVE2p1),

	F_Zt_XnSP_Simm9MulVL:       def(viaRRI, zr(0, 0, elNone), mem{1, imm9MulVL, 1}),
	F_Pt_XnSP_Simm9MulVL:       def(viaRRI, pr(0, 0, 4, pqNone), mem{1, imm9MulVL, 1}),
	F_Prfop_Pg_XnSP_Simm6MulVL: def(viaPrfRRI, prf{}, pr(0, 10, 3, pqNone), mem{1, imm6MulVL, 1}),
	F_Prfop_Pg_XnSP_Xm:         def(viaPrfRRR, prf{}, pr(0, 10, 3, pqNone), memRR{1, 2}),
}

var formatNames = [numFormats]string{
	F_none:                       "F_none",
	F_ZdnT_PgM_ZdnT_ZmT:          "F_ZdnT_PgM_ZdnT_ZmT",
	F_ZdnT_PgM_ZdnT_ZmD:          "F_ZdnT_PgM_ZdnT_ZmD",
	F_ZdT_ZnT_ZmT:                "F_ZdT_ZnT_ZmT",
	F_ZdT_ListZnT_ZmT:            "F_ZdT_ListZnT_ZmT",
	F_ZdT_ZnT_ZmD:                "F_ZdT_ZnT_ZmD",
	F_ZdQ_ZnQ_ZmQ:                "F_ZdQ_ZnQ_ZmQ",
	F_ZdD_ZnD_ZmD:                "F_ZdD_ZnD_ZmD",
	F_ZdnD_ZdnD_ZmD_ZkD:          "F_ZdnD_ZdnD_ZmD_ZkD",
	F_ZdaT_ZnT_ZmT:               "F_ZdaT_ZnT_ZmT",
	F_ZdaT_PgM_ZnT_ZmT:           "F_ZdaT_PgM_ZnT_ZmT",
	F_ZdnT_PgM_ZmT_ZaT:           "F_ZdnT_PgM_ZmT_ZaT",
	F_ZdT_PgM_ZnT:                "F_ZdT_PgM_ZnT",
	F_ZdT_PgM_ZnT_Cvt:            "F_ZdT_PgM_ZnT_Cvt",
	F_ZdH_PgM_ZnS:                "F_ZdH_PgM_ZnS",
	F_ZdT_PgZM_ZnT:               "F_ZdT_PgZM_ZnT",
	F_Zd_Zn:                      "F_Zd_Zn",
	F_ZdT_ZnT:                    "F_ZdT_ZnT",
	F_ZdT_ZnTh:                   "F_ZdT_ZnTh",
	F_ZdT_Pg_ZnT_ZmT:             "F_ZdT_Pg_ZnT_ZmT",
	F_ZdT_PgM_ZnT_Sel:            "F_ZdT_PgM_ZnT_Sel",
	F_ZdD_ZnD:                    "F_ZdD_ZnD",
	F_ZdnT_Pg_ZdnT_ZmT:           "F_ZdnT_Pg_ZdnT_ZmT",
	F_ZdT_Pg_ZnT:                 "F_ZdT_Pg_ZnT",
	F_ZdaT_ZnTq_ZmTq:             "F_ZdaT_ZnTq_ZmTq",
	F_ZdaT_ZnTq_ZmTqIdx:          "F_ZdaT_ZnTq_ZmTqIdx",
	F_ZdaS_ZnB_ZmB:               "F_ZdaS_ZnB_ZmB",
	F_ZdaS_ZnH_ZmH:               "F_ZdaS_ZnH_ZmH",
	F_ZdaS_ZnH_ZmHIdx2:           "F_ZdaS_ZnH_ZmHIdx2",
	F_ZdaS_ZnH_ZmHIdx3:           "F_ZdaS_ZnH_ZmHIdx3",
	F_ZdaT_ZnT_ZmTIdx:            "F_ZdaT_ZnT_ZmTIdx",
	F_ZdaT_ZnT_ZmTIdx_Rot:        "F_ZdaT_ZnT_ZmTIdx_Rot",
	F_ZdnT_PgM_ZdnT_ZmT_Rot1:     "F_ZdnT_PgM_ZdnT_ZmT_Rot1",
	F_ZdaT_PgM_ZnT_ZmT_Rot2:      "F_ZdaT_PgM_ZnT_ZmT_Rot2",
	F_ZdnT_ZdnT_ZmT_Rot1:         "F_ZdnT_ZdnT_ZmT_Rot1",
	F_ZdaT_ZnT_ZmT_Rot2:          "F_ZdaT_ZnT_ZmT_Rot2",
	F_ZdnT_ZdnT_Imm8Sh:           "F_ZdnT_ZdnT_Imm8Sh",
	F_ZdnT_ZdnT_Simm8:            "F_ZdnT_ZdnT_Simm8",
	F_ZdnT_ZdnT_Uimm8:            "F_ZdnT_ZdnT_Uimm8",
	F_ZdnT_ZdnT_Bitmask:          "F_ZdnT_ZdnT_Bitmask",
	F_ZdT_Bitmask:                "F_ZdT_Bitmask",
	F_ZdT_Simm8Sh:                "F_ZdT_Simm8Sh",
	F_ZdT_Fimm8:                  "F_ZdT_Fimm8",
	F_ZdT_PgZM_Simm8Sh:           "F_ZdT_PgZM_Simm8Sh",
	F_ZdT_PgM_Fimm8:              "F_ZdT_PgM_Fimm8",
	F_ZdnT_PgM_ZdnT_ShiftR:       "F_ZdnT_PgM_ZdnT_ShiftR",
	F_ZdnT_PgM_ZdnT_ShiftL:       "F_ZdnT_PgM_ZdnT_ShiftL",
	F_ZdT_ZnT_ShiftR:             "F_ZdT_ZnT_ShiftR",
	F_ZdT_ZnT_ShiftL:             "F_ZdT_ZnT_ShiftL",
	F_ZdnT_PgM_ZdnT_Fimm1:        "F_ZdnT_PgM_ZdnT_Fimm1",
	F_ZdnT_ZdnT_ZmT_Imm3:         "F_ZdnT_ZdnT_ZmT_Imm3",
	F_ZdnB_ZdnB_ZmB_Imm8:         "F_ZdnB_ZdnB_ZmB_Imm8",
	F_ZdT_PgM_Rn:                 "F_ZdT_PgM_Rn",
	F_ZdT_PgM_Vn:                 "F_ZdT_PgM_Vn",
	F_ZdT_Rn:                     "F_ZdT_Rn",
	F_ZdT_ZnTIdx:                 "F_ZdT_ZnTIdx",
	F_ZdT_Vn:                     "F_ZdT_Vn",
	F_ZdnT_Rm:                    "F_ZdnT_Rm",
	F_ZdnT_Vm:                    "F_ZdnT_Vm",
	F_ZdT_Simm5_Simm5:            "F_ZdT_Simm5_Simm5",
	F_ZdT_Simm5_Rm:               "F_ZdT_Simm5_Rm",
	F_ZdT_Rn_Simm5:               "F_ZdT_Rn_Simm5",
	F_ZdT_Rn_Rm:                  "F_ZdT_Rn_Rm",
	F_PdB_PgZ_PnB_PmB:            "F_PdB_PgZ_PnB_PmB",
	F_PdB_Pg_PnB_PmB:             "F_PdB_Pg_PnB_PmB",
	F_PdB_PnB:                    "F_PdB_PnB",
	F_PdB_PgZ_PnB_Dup:            "F_PdB_PgZ_PnB_Dup",
	F_PdB_PgM_PnB_Sel:            "F_PdB_PgM_PnB_Sel",
	F_PdB_PgZ_PnB_Not:            "F_PdB_PgZ_PnB_Not",
	F_PdB_PgZM_PnB:               "F_PdB_PgZM_PnB",
	F_PdB_PgZ_PnB:                "F_PdB_PgZ_PnB",
	F_PdmB_PgZ_PnB_PdmB:          "F_PdmB_PgZ_PnB_PdmB",
	F_PdT_Pattern:                "F_PdT_Pattern",
	F_PdB:                        "F_PdB",
	F_PdB_PgZ:                    "F_PdB_PgZ",
	F_PnB:                        "F_PnB",
	F_NoOps:                      "F_NoOps",
	F_Pg_PnB:                     "F_Pg_PnB",
	F_PdnB_Pg_PdnB:               "F_PdnB_Pg_PdnB",
	F_PdnT_Pg_PdnT:               "F_PdnT_Pg_PdnT",
	F_Xd_Pg_PnT:                  "F_Xd_Pg_PnT",
	F_Xdn_PmT:                    "F_Xdn_PmT",
	F_ZdnT_PmT:                   "F_ZdnT_PmT",
	F_PdT_Rn_Rm:                  "F_PdT_Rn_Rm",
	F_Rn_Rm:                      "F_Rn_Rm",
	F_PdT_PnT_PmT:                "F_PdT_PnT_PmT",
	F_PdT_PnT:                    "F_PdT_PnT",
	F_PdH_PnB:                    "F_PdH_PnB",
	F_PdT_PgZ_ZnT_ZmT:            "F_PdT_PgZ_ZnT_ZmT",
	F_PdT_PgZ_ZnT_ZmD:            "F_PdT_PgZ_ZnT_ZmD",
	F_PdT_PgZ_ZnT_Simm5:          "F_PdT_PgZ_ZnT_Simm5",
	F_PdT_PgZ_ZnT_Uimm7:          "F_PdT_PgZ_ZnT_Uimm7",
	F_PdT_PgZ_ZnT_Zero:           "F_PdT_PgZ_ZnT_Zero",
	F_PNdT:                       "F_PNdT",
	F_PNdT_Rn_Rm_VL:              "F_PNdT_Rn_Rm_VL",
	F_Xd_PNnT_VL:                 "F_Xd_PNnT_VL",
	F_Dd_Pg_ZnT:                  "F_Dd_Pg_ZnT",
	F_Vd_Pg_ZnT:                  "F_Vd_Pg_ZnT",
	F_Vdn_Pg_Vdn_ZmT:             "F_Vdn_Pg_Vdn_ZmT",
	F_Rd_Pg_ZnT:                  "F_Rd_Pg_ZnT",
	F_Rdn_Pg_Rdn_ZmT:             "F_Rdn_Pg_Rdn_ZmT",
	F_Xd_Pattern_Mul:             "F_Xd_Pattern_Mul",
	F_ZdnT_Pattern_Mul:           "F_ZdnT_Pattern_Mul",
	F_Xd_XnSP_Simm6:              "F_Xd_XnSP_Simm6",
	F_Xd_Simm6:                   "F_Xd_Simm6",
	F_ZtT_PgZ_XnSP_Simm4MulVL:    "F_ZtT_PgZ_XnSP_Simm4MulVL",
	F_ZtT_PgZ_XnSP_Xm:            "F_ZtT_PgZ_XnSP_Xm",
	F_ZtT_Pg_XnSP_Simm4MulVL:     "F_ZtT_Pg_XnSP_Simm4MulVL",
	F_ZtT_Pg_XnSP_Xm:             "F_ZtT_Pg_XnSP_Xm",
	F_ZtS_PgZ_XnSP_ZmS_Ext:       "F_ZtS_PgZ_XnSP_ZmS_Ext",
	F_ZtS_PgZ_XnSP_ZmS_ExtScaled: "F_ZtS_PgZ_XnSP_ZmS_ExtScaled",
	F_ZtD_PgZ_XnSP_ZmD:           "F_ZtD_PgZ_XnSP_ZmD",
	F_ZtD_PgZ_XnSP_ZmD_Lsl:       "F_ZtD_PgZ_XnSP_ZmD_Lsl",
	F_ZtS_PgZ_ZnS_Imm5:           "F_ZtS_PgZ_ZnS_Imm5",
	F_ZtD_PgZ_ZnD_Imm5:           "F_ZtD_PgZ_ZnD_Imm5",
	F_ZtS_Pg_XnSP_ZmS_Ext:        "F_ZtS_Pg_XnSP_ZmS_Ext",
	F_ZtS_Pg_XnSP_ZmS_ExtScaled:  "F_ZtS_Pg_XnSP_ZmS_ExtScaled",
	F_ZtD_Pg_XnSP_ZmD:            "F_ZtD_Pg_XnSP_ZmD",
	F_ZtD_Pg_XnSP_ZmD_Lsl:        "F_ZtD_Pg_XnSP_ZmD_Lsl",
	F_ZtS_Pg_ZnS_Imm5:            "F_ZtS_Pg_ZnS_Imm5",
	F_ZtD_Pg_ZnD_Imm5:            "F_ZtD_Pg_ZnD_Imm5",
	F_Zt2T_PgZ_XnSP_Simm4MulVL:   "F_Zt2T_PgZ_XnSP_Simm4MulVL",
	F_Zt3T_PgZ_XnSP_Simm4MulVL:   "F_Zt3T_PgZ_XnSP_Simm4MulVL",
	F_Zt4T_PgZ_XnSP_Simm4MulVL:   "F_Zt4T_PgZ_XnSP_Simm4MulVL",
	F_Zt2T_PgZ_XnSP_Xm:           "F_Zt2T_PgZ_XnSP_Xm",
	F_Zt4T_PgZ_XnSP_Xm:           "F_Zt4T_PgZ_XnSP_Xm",
	F_Zt2T_Pg_XnSP_Simm4MulVL:    "F_Zt2T_Pg_XnSP_Simm4MulVL",
	F_Zt3T_Pg_XnSP_Simm4MulVL:    "F_Zt3T_Pg_XnSP_Simm4MulVL",
	F_Zt4T_Pg_XnSP_Simm4MulVL:    "F_Zt4T_Pg_XnSP_Simm4MulVL",
	F_Zt2T_Pg_XnSP_Xm:            "F_Zt2T_Pg_XnSP_Xm",
	F_Zt4T_Pg_XnSP_Xm:            "F_Zt4T_Pg_XnSP_Xm",
	F_Zt2_PNgZ_XnSP_Simm4MulVL:   "F_Zt2_PNgZ_XnSP_Simm4MulVL",
	F_Zt4_PNgZ_XnSP_Simm4MulVL:   "F_Zt4_PNgZ_XnSP_Simm4MulVL",
	F_Zt2_PNgZ_XnSP_Xm:           "F_Zt2_PNgZ_XnSP_Xm",
	F_Zt4_PNgZ_XnSP_Xm:           "F_Zt4_PNgZ_XnSP_Xm",
	F_Zt2_PNg_XnSP_Simm4MulVL:    "F_Zt2_PNg_XnSP_Simm4MulVL",
	F_Zt4_PNg_XnSP_Simm4MulVL:    "F_Zt4_PNg_XnSP_Simm4MulVL",
	F_Zt2_PNg_XnSP_Xm:            "F_Zt2_PNg_XnSP_Xm",
	F_Zt4_PNg_XnSP_Xm:            "F_Zt4_PNg_XnSP_Xm",
	F_Zt_XnSP_Simm9MulVL:         "F_Zt_XnSP_Simm9MulVL",
	F_Pt_XnSP_Simm9MulVL:         "F_Pt_XnSP_Simm9MulVL",
	F_Prfop_Pg_XnSP_Simm6MulVL:   "F_Prfop_Pg_XnSP_Simm6MulVL",
	F_Prfop_Pg_XnSP_Xm:           "F_Prfop_Pg_XnSP_Xm",
}

func init() {
	for f := F_none + 1; f < numFormats; f++ {
		fi := &formatTab[f]
		if !fi.defined || formatNames[f] == "" {
			panic(fmt.Sprintf("sve: format %d has no handler", f))
		}
		fi.derive(f)
	}
}

// derive fills in what the builder needs to know about a format from its
// field list.
func (fi *formatInfo) derive(f Format) {
	for _, fl := range fi.fields {
		if t, ok := fl.(tie); ok {
			fl = t.f
			if _, ok := fl.(slotted); ok {
				continue
			}
		}
		if s, ok := fl.(slotted); ok {
			s.slots(func(n int, c RegClass) {
				if fi.class[n] != ClassNone && fi.class[n] != c {
					panic(fmt.Sprintf("sve: %v: operand %d is both %v and %v", f, n+1, fi.class[n], c))
				}
				fi.class[n] = c
				if n+1 > fi.nregs {
					fi.nregs = n + 1
				}
			})
		}
		switch fl := fl.(type) {
		case sizeF:
			fi.typed = true
			fi.allow |= fl.allow
		case sf:
			fi.sized = true
		case greg:
			if fl.w == gwSize {
				fi.sized = true
			}
		case imm8sh:
			fi.imm = immImm8U
			if fl.signed {
				fi.imm = immImm8S
			}
		case bitmask:
			fi.imm = immBitmask
		case shift:
			fi.imm = immShiftR
			if fl.left {
				fi.imm = immShiftL
			}
		case bcast:
			fi.imm = immBcast
		case rot:
			switch {
			case fl.sub:
				fi.imm = immIdxRot
			case fl.two:
				fi.imm = immRot2
			default:
				fi.imm = immRot1
			}
		case fimm1:
			fi.imm = immFimm1
		case fimm8:
			fi.imm = immFimm8
		case simm5pair:
			fi.imm = immPair
		case uimm, simm, usplit, mem, memZI, zero, zidx:
			if fi.imm == immNone {
				fi.imm = immRaw
			}
		case patMul:
			if fl.mulLo >= 0 {
				fi.imm = immRaw
			}
		}
	}
}

func (f Format) info() *formatInfo {
	if f == F_none || f >= numFormats {
		return nil
	}
	return &formatTab[f]
}

func (f Format) String() string {
	if f < numFormats && formatNames[f] != "" {
		return formatNames[f]
	}
	return fmt.Sprintf("F_%d", uint16(f))
}

// pack ORs together every field of the format.
func (fi *formatInfo) pack(in *Instr) uint32 {
	var w uint32
	for _, fl := range fi.fields {
		w |= fl.pack(in)
	}
	return w
}

// check reports the first operand that does not fit the format.
func (fi *formatInfo) check(in *Instr) error {
	for n := 0; n < len(in.Reg); n++ {
		if n >= fi.nregs && in.Reg[n] != RegNone {
			return badf(in, "unexpected operand %d: %v", n+1, in.Reg[n])
		}
	}
	for _, fl := range fi.fields {
		if err := fl.check(in); err != nil {
			return err
		}
	}
	return nil
}

// operands renders the operand list.
func (fi *formatInfo) operands(in *Instr) string {
	var parts []string
	for _, fl := range fi.fields {
		if s := fl.text(in); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
