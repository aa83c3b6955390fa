// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"math"

	"github.com/dotnet/runtime-sub004/internal/obj/sve/imm"
)

// The builder entry points. Each takes the opcode, the arrangement and the
// operands in assembly order, picks the first format of the opcode's
// canonical grouping that fits, encodes the immediate, and appends one
// descriptor. Tied operands are passed once. A call that fits no format,
// or whose immediate cannot be encoded, panics with an *AssertionError:
// instruction selection is expected to only ask for encodable
// instructions. Use Catch to turn the panic into an error.

// Ins emits an instruction with no operands.
func (e *Emitter) Ins(op Op) {
	e.emit(call{op: op, via: viaIns})
}

// InsR emits an instruction with a single register operand.
func (e *Emitter) InsR(op Op, opt Opt, r1 Reg, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaR, opt: opt, regs: [4]Reg{r1}, sopt: sopt})
}

// InsRI emits an instruction with a register and an integer immediate.
func (e *Emitter) InsRI(op Op, opt Opt, r1 Reg, imm int64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRI, opt: opt, regs: [4]Reg{r1}, imm: imm, sopt: sopt})
}

// InsRF emits an instruction with a register and a floating-point
// immediate.
func (e *Emitter) InsRF(op Op, opt Opt, r1 Reg, f float64) {
	e.emit(call{op: op, via: viaRF, opt: opt, regs: [4]Reg{r1}, fimm: f})
}

// InsRII emits an instruction with a register and two immediates.
func (e *Emitter) InsRII(op Op, opt Opt, r1 Reg, i1, i2 int64) {
	e.emit(call{op: op, via: viaRII, opt: opt, regs: [4]Reg{r1}, imm: i1, imm2: i2})
}

// InsRR emits an instruction with two register operands.
func (e *Emitter) InsRR(op Op, opt Opt, r1, r2 Reg, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRR, opt: opt, regs: [4]Reg{r1, r2}, sopt: sopt})
}

// InsRRI emits an instruction with two registers and an immediate.
func (e *Emitter) InsRRI(op Op, opt Opt, r1, r2 Reg, imm int64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRI, opt: opt, regs: [4]Reg{r1, r2}, imm: imm, sopt: sopt})
}

// InsRRF emits an instruction with two registers and a floating-point
// immediate.
func (e *Emitter) InsRRF(op Op, opt Opt, r1, r2 Reg, f float64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRF, opt: opt, regs: [4]Reg{r1, r2}, fimm: f, sopt: sopt})
}

// InsRRR emits an instruction with three register operands.
func (e *Emitter) InsRRR(op Op, opt Opt, r1, r2, r3 Reg, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRR, opt: opt, regs: [4]Reg{r1, r2, r3}, sopt: sopt})
}

// InsRRRI emits an instruction with three registers and an immediate.
func (e *Emitter) InsRRRI(op Op, opt Opt, r1, r2, r3 Reg, imm int64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRRI, opt: opt, regs: [4]Reg{r1, r2, r3}, imm: imm, sopt: sopt})
}

// InsRRRII emits an instruction with three registers and two immediates,
// an element index followed by a rotation.
func (e *Emitter) InsRRRII(op Op, opt Opt, r1, r2, r3 Reg, i1, i2 int64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRRII, opt: opt, regs: [4]Reg{r1, r2, r3}, imm: i1, imm2: i2, sopt: sopt})
}

// InsRRRR emits an instruction with four register operands.
func (e *Emitter) InsRRRR(op Op, opt Opt, r1, r2, r3, r4 Reg, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRRR, opt: opt, regs: [4]Reg{r1, r2, r3, r4}, sopt: sopt})
}

// InsRRRRI emits an instruction with four registers and an immediate.
func (e *Emitter) InsRRRRI(op Op, opt Opt, r1, r2, r3, r4 Reg, imm int64, sopt ScalableOpt) {
	e.emit(call{op: op, via: viaRRRRI, opt: opt, regs: [4]Reg{r1, r2, r3, r4}, imm: imm, sopt: sopt})
}

// InsRPattern emits an instruction with a register and a predicate
// pattern.
func (e *Emitter) InsRPattern(op Op, opt Opt, r1 Reg, pat Pattern) {
	e.InsRPatternI(op, opt, r1, pat, 1)
}

// InsRPatternI emits an instruction with a register, a predicate pattern
// and a multiplier in [1, 16].
func (e *Emitter) InsRPatternI(op Op, opt Opt, r1 Reg, pat Pattern, mul int64) {
	e.emit(call{op: op, via: viaRPatI, opt: opt, regs: [4]Reg{r1}, pat: pat, imm: mul})
}

// InsPrefetchRRI emits a prefetch with a governing predicate, a base
// register and an offset in multiples of the vector length.
func (e *Emitter) InsPrefetchRRI(op Op, prfop Prfop, pg, rn Reg, imm int64) {
	e.emit(call{op: op, via: viaPrfRRI, regs: [4]Reg{pg, rn}, imm: imm, prfop: prfop})
}

// InsPrefetchRRR emits a prefetch with a governing predicate, a base
// register and a register offset.
func (e *Emitter) InsPrefetchRRR(op Op, prfop Prfop, pg, rn, rm Reg) {
	e.emit(call{op: op, via: viaPrfRRR, regs: [4]Reg{pg, rn, rm}, prfop: prfop})
}

// A call is one builder invocation as the caller made it.
type call struct {
	op    Op
	opt   Opt
	via   entry
	sopt  ScalableOpt
	regs  [4]Reg
	imm   int64
	imm2  int64
	fimm  float64
	pat   Pattern
	prfop Prfop
}

// normalize rewrites calls that are shorthand for another entry point.
func (c *call) normalize() {
	if c.op <= AXXX || c.op >= numOps {
		return
	}
	posZero := c.fimm == 0 && !math.Signbit(c.fimm)
	switch {
	// [Xn] is [Xn, #0, mul vl].
	case optab[c.op].mem && c.via == viaRRR:
		c.via, c.imm = viaRRRI, 0
	case optab[c.op].mem && c.via == viaRR:
		c.via, c.imm = viaRRI, 0

	case (c.op == APTRUE || c.op == APTRUES) && c.via == viaR && c.sopt != SoptCounter:
		c.via, c.pat, c.imm = viaRPatI, PatALL, 1

	// #0.0 has no 8-bit float encoding; it is the integer zero.
	case (c.op == AZFDUP || c.op == AZFMOV) && c.via == viaRF && posZero:
		c.op, c.via, c.imm = AZDUP, viaRI, 0
	case (c.op == AZFCPY || c.op == AZFMOV) && c.via == viaRRF && posZero:
		c.op, c.via, c.imm, c.sopt = AZCPY, viaRRI, 0, SoptMerge
	}
}

func (e *Emitter) emit(c call) {
	c.normalize()
	s := shape{via: c.via, regs: c.regs, sopt: c.sopt}
	draft := Instr{
		Op:      c.op,
		Opt:     c.opt,
		Reg:     c.regs,
		Imm:     c.imm,
		Merge:   c.sopt == SoptMerge,
		VL4:     c.sopt == SoptVL4,
		Shifted: c.sopt == SoptScaled,
		Pattern: c.pat,
		Prfop:   c.prfop,
	}
	f, err := selectFormat(c.op, &s, &draft, e.feats)
	if err != nil {
		fatal(err)
	}
	e.debugf("sve: %v %v selects %v", c.op, c.via, f)

	in := draft
	in.Fmt = f
	fi := f.info()
	if err := encodeImm(&in, fi, &c); err != nil {
		fatal(err)
	}
	if fi.sized {
		in.Size = sizeOf(&in)
	}
	in = preferredAlias(in)

	p := e.place(in, fi.imm)
	if err := Verify(p); err != nil {
		fatal(err)
	}
	e.app.Append(p)
	e.pending = append(e.pending, p)
	e.trace(p)
}

// encodeImm converts the caller's immediate into the form the format
// packs.
func encodeImm(in *Instr, fi *formatInfo, c *call) error {
	esize := in.Opt.ElemBits()
	switch fi.imm {
	case immNone:
		if c.via == viaRPatI && c.imm != 1 {
			return badf(in, "no multiplier allowed, have %d", c.imm)
		}
		in.Imm = 0

	case immRaw:
		in.Imm = c.imm

	case immImm8U, immImm8S:
		v, shifted, ok := imm.EncodeImm8Shifted(c.imm, fi.imm == immImm8S, in.Opt != ArrB)
		if !ok {
			return badf(in, "immediate %d has no 8-bit encoding for %v elements", c.imm, in.Opt)
		}
		in.Imm, in.Shifted = v, shifted

	case immBitmask:
		v := uint64(c.imm)
		if complemented(in.Op) {
			v = ^v
		}
		if esize < 64 {
			v &= 1<<esize - 1
		}
		nrs, ok := imm.EncodeBitmask(v, esize)
		if !ok {
			return badf(in, "%#x is not a logical immediate for %v elements", v, in.Opt)
		}
		in.Imm = int64(nrs)

	case immShiftR:
		if !imm.IsShiftRight(esize, c.imm) {
			return badf(in, "shift %d out of range [1, %d]", c.imm, esize)
		}
		in.Imm = imm.EncodeShiftRight(esize, c.imm)

	case immShiftL:
		if !imm.IsShiftLeft(esize, c.imm) {
			return badf(in, "shift %d out of range [0, %d]", c.imm, esize-1)
		}
		in.Imm = imm.EncodeShiftLeft(esize, c.imm)

	case immBcast:
		if c.imm < 0 || c.imm > imm.MaxBroadcastIndex(esize) {
			return badf(in, "index %d out of range [0, %d]", c.imm, imm.MaxBroadcastIndex(esize))
		}
		in.Imm = imm.EncodeBroadcastIndex(esize, c.imm)

	case immRot1:
		if !imm.IsRotation1(c.imm) {
			return badf(in, "rotation #%d, want #90 or #270", c.imm)
		}
		in.Imm = imm.EncodeRotation1(c.imm)

	case immRot2:
		if !imm.IsRotation2(c.imm) {
			return badf(in, "rotation #%d, want #0, #90, #180 or #270", c.imm)
		}
		in.Imm = imm.EncodeRotation2(c.imm)

	case immIdxRot:
		if c.imm < 0 {
			return badf(in, "index %d out of range", c.imm)
		}
		if !imm.IsRotation2(c.imm2) {
			return badf(in, "rotation #%d, want #0, #90, #180 or #270", c.imm2)
		}
		in.Imm = c.imm<<2 | imm.EncodeRotation2(c.imm2)

	case immFimm1:
		fam := optab[in.Op].ffam
		if !imm.IsFloatImm1(fam, c.fimm) {
			return badf(in, "float immediate %v not allowed", c.fimm)
		}
		in.Imm = imm.EncodeFloatImm1(fam, c.fimm)

	case immFimm8:
		code, ok := imm.EncodeFloatImm8(c.fimm)
		if !ok {
			return badf(in, "float immediate %v has no 8-bit encoding", c.fimm)
		}
		in.Imm = int64(code)

	case immPair:
		if !imm.FitsSigned(c.imm, 5) || !imm.FitsSigned(c.imm2, 5) {
			return badf(in, "immediates (%d, %d) out of range [-16, 15]", c.imm, c.imm2)
		}
		in.Imm = imm.EncodeSimm5Pair(c.imm, c.imm2)
	}
	return nil
}

// sizeOf takes the register width from the first general register
// operand.
func sizeOf(in *Instr) Size {
	for _, r := range in.Reg {
		if r.IsGeneral() {
			if r.IsW() {
				return SizeW
			}
			return SizeX
		}
	}
	return SizeNone
}

// place allocates the descriptor variant that fits the immediate and
// copies in into it.
func (e *Emitter) place(in Instr, k immKind) *Instr {
	var p *Instr
	switch {
	case k == immNone:
		in.kind = kindSmall
		p = e.alloc.NewSmall()
	// A shifted imm8 holds the 8-bit payload and the LSL #8 flag, not the
	// value it expands to.
	case in.Shifted:
		if !imm.FitsSigned(in.Imm, 8) && !imm.FitsUnsigned(in.Imm, 8) {
			fatal(badf(&in, "shifted immediate payload %d out of range", in.Imm))
		}
		in.kind = kindSmallCns
		p = e.alloc.NewSmallCns(in.Imm)
	case imm.FitsSigned(in.Imm, smallCnsBits):
		in.kind = kindSmallCns
		p = e.alloc.NewSmallCns(in.Imm)
	default:
		in.kind = kindCns
		p = e.alloc.NewCns(in.Imm)
	}
	*p = in
	return p
}
