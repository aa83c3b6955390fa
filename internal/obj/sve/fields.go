// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotnet/runtime-sub004/internal/obj/sve/imm"
)

// A field is one operand of a format. It knows which bits of the
// instruction word it occupies, which values are legal there, and how the
// operand is written in assembly. Formats are lists of fields in assembly
// operand order.
type field interface {
	check(in *Instr) error
	pack(in *Instr) uint32
	text(in *Instr) string
}

// slotted is implemented by register fields, so a format can derive the
// register classes its builder entry point must be given.
type slotted interface {
	slots(add func(n int, c RegClass))
}

func checkBitRange(hibit int, lobit int, max int) {
	if hibit < lobit {
		panic("need hibit >= lobit")
	}
	if lobit < 0 {
		panic("need lobit >= 0")
	}
	if hibit >= max {
		panic(fmt.Sprintf("need hibit < %d", max))
	}
}

// pu places val in bits hibit:lobit. Operands are checked before they are
// packed, so a value that does not fit is an internal error.
func pu(val uint32, hibit int, lobit int) uint32 {
	checkBitRange(hibit, lobit, 32)
	width := hibit - lobit + 1
	if width < 32 && val >= 1<<width {
		panic(fmt.Sprintf("sve: value %#x too large for %d bit field", val, width))
	}
	return val << lobit
}

// A span is a run of bits holding part of a split immediate.
type span struct {
	lo, width int
}

func spanBits(spans []span) int {
	n := 0
	for _, s := range spans {
		n += s.width
	}
	return n
}

// splitBits distributes v over spans, most significant span first.
func splitBits(v uint32, spans []span) uint32 {
	var out uint32
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		out |= pu(v&(1<<s.width-1), s.lo+s.width-1, s.lo)
		v >>= s.width
	}
	return out
}

// An elem says how a register operand's element size is found.
type elem uint8

const (
	elNone elem = iota // no suffix
	elT                // the instruction arrangement
	elTh               // half the arrangement
	elTq               // a quarter of the arrangement
	elDst              // destination element of a conversion
	elSrc              // source element of a conversion
	elMsz              // the opcode's memory access size
	elB
	elH
	elS
	elD
	elQ
)

func (e elem) resolve(in *Instr) Opt {
	switch e {
	case elT:
		if in.Opt.IsArrangement() {
			return in.Opt
		}
	case elTh:
		return in.Opt.half()
	case elTq:
		return in.Opt.quarter()
	case elDst:
		d, _ := in.Opt.convElems()
		return d
	case elSrc:
		_, s := in.Opt.convElems()
		return s
	case elMsz:
		return ArrB + Opt(optab[in.Op].msz)
	case elB, elH, elS, elD, elQ:
		return ArrB + Opt(e-elB)
	}
	return OptNone
}

func (e elem) suffix(in *Instr) string {
	if e == elNone {
		return ""
	}
	return "." + e.resolve(in).String()
}

func checkElem(in *Instr, e elem, n int) error {
	if e != elNone && !e.resolve(in).IsArrangement() {
		return badf(in, "operand %d: no element size for %v", n+1, in.Opt)
	}
	return nil
}

// zreg is a scalable vector register in a bits-wide field at lo.
type zreg struct {
	n, lo, bits int
	e           elem
}

func zr(n, lo int, e elem) zreg { return zreg{n: n, lo: lo, bits: 5, e: e} }

// zlow is a vector register restricted to a narrow field, as used by the
// indexed forms.
func zlow(n, lo, bits int, e elem) zreg { return zreg{n: n, lo: lo, bits: bits, e: e} }

func (f zreg) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f zreg) check(in *Instr) error {
	r := in.Reg[f.n]
	if !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.n+1, r)
	}
	if r.Num() >= 1<<f.bits {
		return badf(in, "operand %d: z%d out of range z0-z%d", f.n+1, r.Num(), 1<<f.bits-1)
	}
	return checkElem(in, f.e, f.n)
}

func (f zreg) pack(in *Instr) uint32 {
	return pu(in.Reg[f.n].enc(), f.lo+f.bits-1, f.lo)
}

func (f zreg) text(in *Instr) string {
	return "z" + strconv.Itoa(in.Reg[f.n].Num()) + f.e.suffix(in)
}

// vreg is a SIMD&FP scalar register: b0, h0, s0, d0 or q0.
type vreg struct {
	n, lo int
	e     elem
}

func vr(n, lo int, e elem) vreg { return vreg{n: n, lo: lo, e: e} }

func (f vreg) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f vreg) check(in *Instr) error {
	if r := in.Reg[f.n]; !r.IsVector() {
		return badf(in, "operand %d: want SIMD&FP register, have %v", f.n+1, r)
	}
	return checkElem(in, f.e, f.n)
}

func (f vreg) pack(in *Instr) uint32 {
	return pu(in.Reg[f.n].enc(), f.lo+4, f.lo)
}

func (f vreg) text(in *Instr) string {
	return f.e.resolve(in).String() + strconv.Itoa(in.Reg[f.n].Num())
}

// gwidth picks the w or x view of a general register.
type gwidth uint8

const (
	gwX    gwidth = iota
	gwW           // always 32-bit
	gwSize        // from the descriptor size
	gwElem        // x for doubleword elements, w otherwise
)

// greg is a general register. sp selects the Xn|SP reading of register 31;
// nozr rejects register 31 entirely. Operands of gwElem width may be given
// in either view; the element size decides how they print.
type greg struct {
	n, lo int
	w     gwidth
	sp    bool
	nozr  bool
}

func xr(n, lo int) greg    { return greg{n: n, lo: lo, w: gwX} }
func xsp(n, lo int) greg   { return greg{n: n, lo: lo, w: gwX, sp: true} }
func rsz(n, lo int) greg   { return greg{n: n, lo: lo, w: gwSize} }
func rel(n, lo int) greg   { return greg{n: n, lo: lo, w: gwElem} }
func relsp(n, lo int) greg { return greg{n: n, lo: lo, w: gwElem, sp: true} }

func (f greg) slots(add func(int, RegClass)) { add(f.n, ClassGeneral) }

func (f greg) wide(in *Instr) bool {
	switch f.w {
	case gwW:
		return false
	case gwSize:
		return in.Size == SizeX
	case gwElem:
		return in.Opt == ArrD
	}
	return true
}

func (f greg) check(in *Instr) error {
	r := in.Reg[f.n]
	if !r.IsGeneral() || !r.Valid() {
		return badf(in, "operand %d: want general register, have %v", f.n+1, r)
	}
	switch {
	case r.isSP() && !f.sp:
		return badf(in, "operand %d: sp not allowed", f.n+1)
	case r.isZR() && (f.sp || f.nozr):
		return badf(in, "operand %d: zero register not allowed", f.n+1)
	}
	switch f.w {
	case gwX:
		if r.IsW() {
			return badf(in, "operand %d: want 64-bit register, have %v", f.n+1, r)
		}
	case gwW:
		if !r.IsW() {
			return badf(in, "operand %d: want 32-bit register, have %v", f.n+1, r)
		}
	case gwSize:
		if r.IsW() != (in.Size == SizeW) || in.Size == SizeNone {
			return badf(in, "operand %d: %v does not match register size %v", f.n+1, r, in.Size)
		}
	}
	return nil
}

func (f greg) pack(in *Instr) uint32 {
	return pu(in.Reg[f.n].enc(), f.lo+4, f.lo)
}

func (f greg) text(in *Instr) string {
	r := in.Reg[f.n]
	wide := f.wide(in)
	switch {
	case r.isSP() && wide:
		return "sp"
	case r.isSP():
		return "wsp"
	case r.isZR() && wide:
		return "xzr"
	case r.isZR():
		return "wzr"
	case wide:
		return "x" + strconv.Itoa(r.Num())
	}
	return "w" + strconv.Itoa(r.Num())
}

// pqual is the qualifier printed after a predicate register.
type pqual uint8

const (
	pqNone  pqual = iota // p0
	pqMerge              // p0/m
	pqZero               // p0/z
	pqMZ                 // p0/z or p0/m, from the descriptor
	pqElem               // p0.s
)

// preg is a predicate register in a bits-wide field at lo. Three-bit
// fields hold p0-p7, or pn8-pn15 when counter is set.
type preg struct {
	n, lo, bits int
	q           pqual
	e           elem
	mbit        int
	counter     bool
}

func pr(n, lo, bits int, q pqual) preg { return preg{n: n, lo: lo, bits: bits, q: q} }

func pe(n, lo int, e elem) preg { return preg{n: n, lo: lo, bits: 4, q: pqElem, e: e} }

func pmz(n, lo, bits, mbit int) preg {
	return preg{n: n, lo: lo, bits: bits, q: pqMZ, mbit: mbit}
}

func pn(n, lo int, q pqual, e elem) preg {
	return preg{n: n, lo: lo, bits: 3, q: q, e: e, counter: true}
}

func (f preg) slots(add func(int, RegClass)) { add(f.n, ClassPredicate) }

func (f preg) check(in *Instr) error {
	r := in.Reg[f.n]
	if !r.IsPredicate() || !r.Valid() {
		return badf(in, "operand %d: want predicate register, have %v", f.n+1, r)
	}
	switch {
	case f.counter && r.Num() < 8:
		return badf(in, "operand %d: counter predicate must be pn8-pn15, have p%d", f.n+1, r.Num())
	case !f.counter && f.bits == 3 && r.Num() >= 8:
		return badf(in, "operand %d: governing predicate must be p0-p7, have p%d", f.n+1, r.Num())
	}
	if f.q == pqElem {
		return checkElem(in, f.e, f.n)
	}
	return nil
}

func (f preg) pack(in *Instr) uint32 {
	v := in.Reg[f.n].enc()
	if f.counter {
		v -= 8
	}
	w := pu(v, f.lo+f.bits-1, f.lo)
	if f.q == pqMZ && in.Merge {
		w |= 1 << f.mbit
	}
	return w
}

func (f preg) text(in *Instr) string {
	s := "p"
	if f.counter {
		s = "pn"
	}
	s += strconv.Itoa(in.Reg[f.n].Num())
	switch f.q {
	case pqMerge:
		s += "/m"
	case pqZero:
		s += "/z"
	case pqMZ:
		if in.Merge {
			s += "/m"
		} else {
			s += "/z"
		}
	case pqElem:
		s += f.e.suffix(in)
	}
	return s
}

// also repeats register n in a second field without printing it. Alias
// formats use it to fill the operand fields the alias leaves implicit.
type also struct {
	n, lo, bits int
}

func (f also) check(in *Instr) error { return nil }
func (f also) text(in *Instr) string { return "" }

func (f also) pack(in *Instr) uint32 {
	return pu(in.Reg[f.n].enc(), f.lo+f.bits-1, f.lo)
}

// tie prints a destructive operand a second time. The register is packed
// by the field it repeats.
type tie struct {
	f field
}

func (t tie) check(in *Instr) error { return nil }
func (t tie) pack(in *Instr) uint32 { return 0 }
func (t tie) text(in *Instr) string { return t.f.text(in) }

// sizeF packs the arrangement into a width-bit size field at lo, after
// subtracting bias. A zero width field only restricts the arrangement.
type sizeF struct {
	lo, width int
	bias      uint32
	allow     optSet
}

func sz(allow optSet) sizeF                               { return sizeF{lo: 22, width: 2, allow: allow} }
func szAt(lo, width int, bias uint32, allow optSet) sizeF { return sizeF{lo, width, bias, allow} }
func typ(allow optSet) sizeF                              { return sizeF{allow: allow} }

func (f sizeF) check(in *Instr) error {
	if !f.allow.has(in.Opt) {
		return badf(in, "arrangement %v not in {%v}", in.Opt, f.allow)
	}
	return nil
}

func (f sizeF) pack(in *Instr) uint32 {
	if f.width == 0 {
		return 0
	}
	return pu(in.Opt.log2()-f.bias, f.lo+f.width-1, f.lo)
}

func (f sizeF) text(in *Instr) string { return "" }

// sf selects 64-bit general registers with a single bit.
type sf struct {
	bit int
}

func (f sf) check(in *Instr) error {
	if in.Size != SizeW && in.Size != SizeX {
		return badf(in, "missing register size")
	}
	return nil
}

func (f sf) pack(in *Instr) uint32 {
	if in.Size == SizeX {
		return 1 << f.bit
	}
	return 0
}

func (f sf) text(in *Instr) string { return "" }

// conv packs the element sizes of a conversion.
type conv struct{}

func (conv) check(in *Instr) error {
	if _, ok := convBits(in.Op, in.Opt); !ok {
		return badf(in, "unsupported conversion %v", in.Opt)
	}
	return nil
}

func (conv) pack(in *Instr) uint32 {
	b, _ := convBits(in.Op, in.Opt)
	return b
}

func (conv) text(in *Instr) string { return "" }

// uimm is an unsigned immediate, optionally scaled.
type uimm struct {
	lo, bits int
	scale    int64
}

func ui(lo, bits int) uimm { return uimm{lo: lo, bits: bits, scale: 1} }

func (f uimm) check(in *Instr) error {
	if !imm.IsMultipleOf(in.Imm, f.scale) || !imm.FitsUnsigned(in.Imm/f.scale, uint(f.bits)) {
		return badf(in, "immediate %d out of range", in.Imm)
	}
	return nil
}

func (f uimm) pack(in *Instr) uint32 {
	return pu(uint32(in.Imm/f.scale), f.lo+f.bits-1, f.lo)
}

func (f uimm) text(in *Instr) string { return "#" + strconv.FormatInt(in.Imm, 10) }

// simm is a two's complement immediate.
type simm struct {
	lo, bits int
}

func si(lo, bits int) simm { return simm{lo: lo, bits: bits} }

func (f simm) check(in *Instr) error {
	if !imm.FitsSigned(in.Imm, uint(f.bits)) {
		return badf(in, "immediate %d out of range", in.Imm)
	}
	return nil
}

func (f simm) pack(in *Instr) uint32 {
	return pu(uint32(in.Imm)&(1<<f.bits-1), f.lo+f.bits-1, f.lo)
}

func (f simm) text(in *Instr) string { return "#" + strconv.FormatInt(in.Imm, 10) }

// usplit is an unsigned immediate split over several fields.
type usplit struct {
	spans []span
}

func (f usplit) check(in *Instr) error {
	if !imm.FitsUnsigned(in.Imm, uint(spanBits(f.spans))) {
		return badf(in, "immediate %d out of range", in.Imm)
	}
	return nil
}

func (f usplit) pack(in *Instr) uint32 { return splitBits(uint32(in.Imm), f.spans) }
func (f usplit) text(in *Instr) string { return "#" + strconv.FormatInt(in.Imm, 10) }

// imm8sh is an 8-bit immediate at 12:5 with an optional LSL #8 at bit 13.
type imm8sh struct {
	signed bool
}

func (f imm8sh) check(in *Instr) error {
	ok := imm.FitsUnsigned(in.Imm, 8)
	if f.signed {
		ok = imm.FitsSigned(in.Imm, 8)
	}
	if !ok {
		return badf(in, "immediate %d out of range", in.Imm)
	}
	if in.Shifted && in.Opt == ArrB {
		return badf(in, "lsl #8 not allowed on byte elements")
	}
	return nil
}

func (f imm8sh) pack(in *Instr) uint32 {
	w := pu(uint32(in.Imm)&0xff, 12, 5)
	if in.Shifted {
		w |= 1 << 13
	}
	return w
}

func (f imm8sh) text(in *Instr) string {
	s := "#" + strconv.FormatInt(in.Imm, 10)
	if in.Shifted {
		s += ", lsl #8"
	}
	return s
}

// bitmask is a logical immediate held as N:immr:imms.
type bitmask struct {
	lo int
}

func (f bitmask) check(in *Instr) error {
	nrs := uint32(in.Imm)
	if in.Imm < 0 || in.Imm >= 1<<13 {
		return badf(in, "bitmask encoding %#x out of range", in.Imm)
	}
	if _, ok := imm.DecodeBitmask(nrs); !ok {
		return badf(in, "reserved bitmask encoding %#x", nrs)
	}
	if imm.BitmaskElemSize(nrs) > in.Opt.ElemBits() {
		return badf(in, "bitmask encoding %#x wider than %v elements", nrs, in.Opt)
	}
	return nil
}

func (f bitmask) pack(in *Instr) uint32 {
	return pu(uint32(in.Imm), f.lo+12, f.lo)
}

func (f bitmask) text(in *Instr) string {
	v, _ := imm.DecodeBitmask(uint32(in.Imm))
	if n := in.Opt.ElemBits(); n < 64 {
		v &= 1<<n - 1
	}
	return "#0x" + strconv.FormatUint(v, 16)
}

// fimm1 is a single-bit floating-point constant.
type fimm1 struct {
	bit int
}

func (f fimm1) check(in *Instr) error {
	if in.Imm != 0 && in.Imm != 1 {
		return badf(in, "float immediate code %d out of range", in.Imm)
	}
	return nil
}

func (f fimm1) pack(in *Instr) uint32 { return uint32(in.Imm) << f.bit }

func (f fimm1) text(in *Instr) string {
	return "#" + formatFloat(imm.DecodeFloatImm1(optab[in.Op].ffam, in.Imm))
}

// fimm8 is the 8-bit modified floating-point immediate.
type fimm8 struct {
	lo int
}

func (f fimm8) check(in *Instr) error {
	if !imm.FitsUnsigned(in.Imm, 8) {
		return badf(in, "float immediate code %d out of range", in.Imm)
	}
	return nil
}

func (f fimm8) pack(in *Instr) uint32 { return pu(uint32(in.Imm), f.lo+7, f.lo) }

func (f fimm8) text(in *Instr) string {
	return "#" + formatFloat(imm.DecodeFloatImm8(uint8(in.Imm)))
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// zero is a literal #0 or #0.0 operand with no field.
type zero struct {
	fp bool
}

func (f zero) check(in *Instr) error {
	if in.Imm != 0 {
		return badf(in, "immediate must be zero, have %d", in.Imm)
	}
	return nil
}

func (f zero) pack(in *Instr) uint32 { return 0 }

func (f zero) text(in *Instr) string {
	if f.fp {
		return "#0.0"
	}
	return "#0"
}

// rot is a complex rotation code: one bit for #90/#270, two bits for
// #0/#90/#180/#270. Instructions that also carry an index keep the
// rotation in the low two bits of the immediate.
type rot struct {
	lo  int
	two bool
	sub bool
}

func (f rot) code(in *Instr) int64 {
	if f.sub {
		return in.Imm & 3
	}
	return in.Imm
}

func (f rot) check(in *Instr) error {
	max := int64(1)
	if f.two {
		max = 3
	}
	if c := f.code(in); c < 0 || c > max {
		return badf(in, "rotation code %d out of range", c)
	}
	return nil
}

func (f rot) pack(in *Instr) uint32 { return uint32(f.code(in)) << f.lo }

func (f rot) text(in *Instr) string {
	if f.two {
		return "#" + strconv.FormatInt(imm.DecodeRotation2(f.code(in)), 10)
	}
	return "#" + strconv.FormatInt(imm.DecodeRotation1(f.code(in)), 10)
}

// shift is an element shift amount held as tsz:imm3, with tszh at 23:22
// and the low tsz bits and imm3 at the given positions.
type shift struct {
	left           bool
	tszlLo, imm3Lo int
}

func (f shift) decode(enc int64) (uint, int64) {
	if f.left {
		return imm.DecodeShiftLeft(enc)
	}
	return imm.DecodeShiftRight(enc)
}

func (f shift) check(in *Instr) error {
	if in.Imm <= 0 || in.Imm >= 1<<7 || imm.ShiftElemSize(in.Imm) == 0 {
		return badf(in, "shift encoding %#x out of range", in.Imm)
	}
	if esize, _ := f.decode(in.Imm); esize != in.Opt.ElemBits() {
		return badf(in, "shift encoded for %d-bit elements, have %v", esize, in.Opt)
	}
	return nil
}

func (f shift) pack(in *Instr) uint32 {
	enc := uint32(in.Imm)
	tsz := enc >> 3
	return pu(tsz>>2, 23, 22) | pu(tsz&3, f.tszlLo+1, f.tszlLo) | pu(enc&7, f.imm3Lo+2, f.imm3Lo)
}

func (f shift) text(in *Instr) string {
	_, n := f.decode(in.Imm)
	return "#" + strconv.FormatInt(n, 10)
}

// bcast is the indexed source of DUP: Zn at 9:5, imm2 at 23:22 and tsz at
// 20:16, with the element size carried by tsz. The scalar form is element
// zero, written as the SIMD&FP register it overlaps.
type bcast struct {
	n      int
	scalar bool
}

func (f bcast) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f bcast) check(in *Instr) error {
	if r := in.Reg[f.n]; !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.n+1, r)
	}
	if in.Imm <= 0 || in.Imm >= 1<<7 || in.Imm&0x1f == 0 {
		return badf(in, "index encoding %#x out of range", in.Imm)
	}
	esize, index := imm.DecodeBroadcastIndex(in.Imm)
	if esize != in.Opt.ElemBits() {
		return badf(in, "index encoded for %d-bit elements, have %v", esize, in.Opt)
	}
	if f.scalar && index != 0 {
		return badf(in, "scalar source needs index 0, have %d", index)
	}
	return nil
}

func (f bcast) pack(in *Instr) uint32 {
	enc := uint32(in.Imm)
	return pu(in.Reg[f.n].enc(), 9, 5) | pu(enc>>5, 23, 22) | pu(enc&0x1f, 20, 16)
}

func (f bcast) text(in *Instr) string {
	if f.scalar {
		return in.Opt.String() + strconv.Itoa(in.Reg[f.n].Num())
	}
	_, index := imm.DecodeBroadcastIndex(in.Imm)
	return fmt.Sprintf("z%d.%v[%d]", in.Reg[f.n].Num(), in.Opt, index)
}

// idxLayout places an indexed vector register for one arrangement.
type idxLayout struct {
	fixed  uint32
	regLo  int
	regBit int
	spans  []span
}

// zidx is a vector register with an element index, as used by the indexed
// multiply and dot product forms. The register field narrows as the index
// widens, so the layout is chosen by arrangement.
type zidx struct {
	n       int
	e       elem
	layouts map[Opt]idxLayout
	ishift  uint
}

func (f zidx) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f zidx) index(in *Instr) int64 { return in.Imm >> f.ishift }

// layout picks the layout for the arrangement. Formats with a fixed
// element size key their single layout by OptNone.
func (f zidx) layout(in *Instr) (idxLayout, bool) {
	if l, ok := f.layouts[OptNone]; ok {
		return l, true
	}
	l, ok := f.layouts[in.Opt]
	return l, ok
}

func (f zidx) check(in *Instr) error {
	l, ok := f.layout(in)
	if !ok {
		return badf(in, "no indexed form for %v", in.Opt)
	}
	r := in.Reg[f.n]
	if !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.n+1, r)
	}
	if r.Num() >= 1<<l.regBit {
		return badf(in, "operand %d: z%d out of range z0-z%d", f.n+1, r.Num(), 1<<l.regBit-1)
	}
	if i := f.index(in); !imm.FitsUnsigned(i, uint(spanBits(l.spans))) {
		return badf(in, "index %d out of range", i)
	}
	return checkElem(in, f.e, f.n)
}

func (f zidx) pack(in *Instr) uint32 {
	l, _ := f.layout(in)
	return l.fixed | pu(in.Reg[f.n].enc(), l.regLo+l.regBit-1, l.regLo) | splitBits(uint32(f.index(in)), l.spans)
}

func (f zidx) text(in *Instr) string {
	return fmt.Sprintf("z%d%s[%d]", in.Reg[f.n].Num(), f.e.suffix(in), f.index(in))
}

// simm5pair holds the two signed 5-bit immediates of INDEX.
type simm5pair struct{}

func (simm5pair) check(in *Instr) error {
	if !imm.FitsUnsigned(in.Imm, 10) {
		return badf(in, "immediate pair encoding %#x out of range", in.Imm)
	}
	return nil
}

func (simm5pair) pack(in *Instr) uint32 {
	enc := uint32(in.Imm)
	return pu(enc&0x1f, 9, 5) | pu(enc>>5, 20, 16)
}

func (simm5pair) text(in *Instr) string {
	a, b := imm.DecodeSimm5Pair(in.Imm)
	return fmt.Sprintf("#%d, #%d", a, b)
}

// patMul is a predicate pattern at patLo with an optional multiplier
// (held as mul-1) in a 4-bit field at mulLo. mulLo < 0 means no
// multiplier.
type patMul struct {
	patLo, mulLo int
}

func (f patMul) check(in *Instr) error {
	if in.Pattern >= 32 {
		return badf(in, "pattern %d out of range", in.Pattern)
	}
	if f.mulLo >= 0 && (in.Imm < 1 || in.Imm > 16) {
		return badf(in, "multiplier %d out of range [1, 16]", in.Imm)
	}
	return nil
}

func (f patMul) pack(in *Instr) uint32 {
	w := pu(uint32(in.Pattern), f.patLo+4, f.patLo)
	if f.mulLo >= 0 {
		w |= pu(uint32(in.Imm-1), f.mulLo+3, f.mulLo)
	}
	return w
}

func (f patMul) text(in *Instr) string {
	mul := int64(1)
	if f.mulLo >= 0 {
		mul = in.Imm
	}
	switch {
	case in.Pattern == PatALL && mul == 1:
		return ""
	case mul == 1:
		return in.Pattern.String()
	}
	return in.Pattern.String() + ", mul #" + strconv.FormatInt(mul, 10)
}

// prf is the prefetch operation at 3:0.
type prf struct{}

func (prf) check(in *Instr) error {
	if in.Prfop >= 16 {
		return badf(in, "prefetch operation %d out of range", in.Prfop)
	}
	return nil
}

func (prf) pack(in *Instr) uint32 { return pu(uint32(in.Prfop), 3, 0) }
func (prf) text(in *Instr) string { return in.Prfop.String() }

// vlx is the vector group size of a predicate-as-counter form.
type vlx struct {
	bit int
}

func (f vlx) check(in *Instr) error { return nil }

func (f vlx) pack(in *Instr) uint32 {
	if in.VL4 {
		return 1 << f.bit
	}
	return 0
}

func (f vlx) text(in *Instr) string {
	if in.VL4 {
		return "vlx4"
	}
	return "vlx2"
}

// zlist is a list of count consecutive vector registers starting at
// operand n. With div set the field holds the first register divided by
// count, which must then be a multiple of it.
type zlist struct {
	n, lo, count int
	e            elem
	div          bool
}

func (f zlist) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f zlist) check(in *Instr) error {
	r := in.Reg[f.n]
	if !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.n+1, r)
	}
	if f.div && r.Num()%f.count != 0 {
		return badf(in, "operand %d: list must start at a multiple of %d, have z%d", f.n+1, f.count, r.Num())
	}
	return checkElem(in, f.e, f.n)
}

func (f zlist) pack(in *Instr) uint32 {
	num := in.Reg[f.n].enc()
	if f.div {
		return pu(num/uint32(f.count), 4, f.lo)
	}
	return pu(num, f.lo+4, f.lo)
}

func (f zlist) text(in *Instr) string {
	first := in.Reg[f.n].Num()
	sfx := f.e.suffix(in)
	if f.count > 2 && first+f.count <= 32 {
		return fmt.Sprintf("{z%d%s - z%d%s}", first, sfx, first+f.count-1, sfx)
	}
	regs := make([]string, f.count)
	for i := range regs {
		regs[i] = "z" + strconv.Itoa((first+i)%32) + sfx
	}
	return "{" + strings.Join(regs, ", ") + "}"
}

// mem is a base register at 9:5 with an optional signed offset scaled by
// the vector length, split over spans. The offset as written must be a
// multiple of scale.
type mem struct {
	n     int
	spans []span
	scale int64
}

func (f mem) slots(add func(int, RegClass)) { add(f.n, ClassGeneral) }

func (f mem) base() greg { return xsp(f.n, 5) }

func (f mem) check(in *Instr) error {
	if err := f.base().check(in); err != nil {
		return err
	}
	if !imm.FitsScaled(in.Imm, f.scale, uint(spanBits(f.spans))) {
		return badf(in, "offset %d out of range", in.Imm)
	}
	return nil
}

func (f mem) pack(in *Instr) uint32 {
	bits := spanBits(f.spans)
	off := uint32(in.Imm/f.scale) & (1<<bits - 1)
	return f.base().pack(in) | splitBits(off, f.spans)
}

func (f mem) text(in *Instr) string {
	if in.Imm == 0 {
		return "[" + f.base().text(in) + "]"
	}
	return fmt.Sprintf("[%s, #%d, mul vl]", f.base().text(in), in.Imm)
}

// memRR is a base register plus a register offset at 20:16, shifted by the
// opcode's access size.
type memRR struct {
	n, m int
}

func (f memRR) base() greg  { return xsp(f.n, 5) }
func (f memRR) index() greg { return greg{n: f.m, lo: 16, nozr: true} }

func (f memRR) slots(add func(int, RegClass)) {
	add(f.n, ClassGeneral)
	add(f.m, ClassGeneral)
}

func (f memRR) check(in *Instr) error {
	if err := f.base().check(in); err != nil {
		return err
	}
	return f.index().check(in)
}

func (f memRR) pack(in *Instr) uint32 {
	return f.base().pack(in) | f.index().pack(in)
}

func (f memRR) text(in *Instr) string {
	s := "[" + f.base().text(in) + ", " + f.index().text(in)
	if m := optab[in.Op].msz; m > 0 {
		s += ", lsl #" + strconv.Itoa(int(m))
	}
	return s + "]"
}

// memRZ is a base register plus a vector of offsets at 20:16. Offsets in
// 32-bit elements are extended, with the sign choice at xsBit; 64-bit
// offsets are used as is. Either may be scaled by the access size.
type memRZ struct {
	n, m   int
	e      elem
	scaled bool
	xsBit  int
}

func (f memRZ) base() greg { return xsp(f.n, 5) }

func (f memRZ) slots(add func(int, RegClass)) {
	add(f.n, ClassGeneral)
	add(f.m, ClassVector)
}

func (f memRZ) check(in *Instr) error {
	if err := f.base().check(in); err != nil {
		return err
	}
	if r := in.Reg[f.m]; !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.m+1, r)
	}
	if f.xsBit >= 0 && !in.Opt.IsExtend() {
		return badf(in, "32-bit offsets need uxtw or sxtw, have %v", in.Opt)
	}
	if f.xsBit < 0 && in.Opt != OptNone {
		return badf(in, "64-bit offsets take no extend, have %v", in.Opt)
	}
	if in.Shifted != f.scaled {
		return badf(in, "offset scaling does not match format")
	}
	return nil
}

func (f memRZ) pack(in *Instr) uint32 {
	w := f.base().pack(in) | pu(in.Reg[f.m].enc(), 20, 16)
	if f.xsBit >= 0 && in.Opt == ExtSXTW {
		w |= 1 << f.xsBit
	}
	return w
}

func (f memRZ) text(in *Instr) string {
	s := fmt.Sprintf("[%s, z%d%s", f.base().text(in), in.Reg[f.m].Num(), f.e.suffix(in))
	amount := ""
	if f.scaled {
		amount = " #" + strconv.Itoa(int(optab[in.Op].msz))
	}
	switch {
	case f.xsBit >= 0:
		s += ", " + in.Opt.String() + amount
	case f.scaled:
		s += ", lsl" + amount
	}
	return s + "]"
}

// memZI is a vector of addresses plus an unsigned offset that must be a
// multiple of the access size.
type memZI struct {
	n int
	e elem
}

func (f memZI) slots(add func(int, RegClass)) { add(f.n, ClassVector) }

func (f memZI) check(in *Instr) error {
	if r := in.Reg[f.n]; !r.IsVector() {
		return badf(in, "operand %d: want z register, have %v", f.n+1, r)
	}
	scale := int64(1) << optab[in.Op].msz
	if !imm.IsMultipleOf(in.Imm, scale) || !imm.FitsUnsigned(in.Imm/scale, 5) {
		return badf(in, "offset %d out of range", in.Imm)
	}
	return nil
}

func (f memZI) pack(in *Instr) uint32 {
	scale := int64(1) << optab[in.Op].msz
	return pu(in.Reg[f.n].enc(), 9, 5) | pu(uint32(in.Imm/scale), 20, 16)
}

func (f memZI) text(in *Instr) string {
	s := fmt.Sprintf("[z%d%s", in.Reg[f.n].Num(), f.e.suffix(in))
	if in.Imm != 0 {
		s += ", #" + strconv.FormatInt(in.Imm, 10)
	}
	return s + "]"
}
