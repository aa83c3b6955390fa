// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one emits a single instruction into a fresh group and returns its
// descriptor.
func one(t *testing.T, fn func(e *Emitter), opts ...Option) *Instr {
	t.Helper()
	g := NewGroup()
	e := NewGroupEmitter(g, opts...)
	require.NoError(t, Catch(func() { fn(e) }))
	require.Equal(t, 1, g.Len())
	return g.Instrs()[0]
}

// buildErr returns the assertion raised while emitting fn.
func buildErr(fn func(e *Emitter), opts ...Option) error {
	g := NewGroup()
	e := NewGroupEmitter(g, opts...)
	return Catch(func() { fn(e) })
}

func TestPreferredAlias(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *Emitter)
		op   Op
		fmt  Format
		asm  string
	}{
		{
			"bic immediate",
			func(e *Emitter) { e.InsRI(AZBIC, ArrS, Z0, 0xff, SoptNone) },
			AZAND, F_ZdnT_ZdnT_Bitmask, "and z0.s, z0.s, #0xffffff00",
		},
		{
			"bic register",
			func(e *Emitter) { e.InsRRR(AZBIC, ArrD, Z0, Z1, Z2, SoptNone) },
			AZBIC, F_ZdD_ZnD_ZmD, "bic z0.d, z1.d, z2.d",
		},
		{
			"orr distinct sources",
			func(e *Emitter) { e.InsRRR(AZORR, ArrD, Z0, Z1, Z2, SoptNone) },
			AZORR, F_ZdD_ZnD_ZmD, "orr z0.d, z1.d, z2.d",
		},
		{
			"orr same source",
			func(e *Emitter) { e.InsRRR(AZORR, ArrD, Z3, Z4, Z4, SoptNone) },
			AZMOV, F_ZdD_ZnD, "mov z3.d, z4.d",
		},
		{
			"dup immediate",
			func(e *Emitter) { e.InsRI(AZDUP, ArrB, Z7, -1, SoptNone) },
			AZMOV, F_ZdT_Simm8Sh, "mov z7.b, #-1",
		},
		{
			"sel distinct",
			func(e *Emitter) { e.InsRRRR(AZSEL, ArrH, Z0, P1, Z2, Z3, SoptNone) },
			AZSEL, F_ZdT_Pg_ZnT_ZmT, "sel z0.h, p1, z2.h, z3.h",
		},
		{
			"cmplt immediate",
			func(e *Emitter) { e.InsRRRI(AZCMPLT, ArrS, P0, P1, Z2, 3, SoptNone) },
			AZCMPLT, F_PdT_PgZ_ZnT_Simm5, "cmplt p0.s, p1/z, z2.s, #3",
		},
		{
			"cmpls register",
			func(e *Emitter) { e.InsRRRR(AZCMPLS, ArrB, P2, P3, Z4, Z5, SoptNone) },
			AZCMPHS, F_PdT_PgZ_ZnT_ZmT, "cmphs p2.b, p3/z, z5.b, z4.b",
		},
		{
			"ands same source",
			func(e *Emitter) { e.InsRRRR(APANDS, OptNone, P0, P1, P2, P2, SoptNone) },
			APMOVS, F_PdB_PgZ_PnB_Dup, "movs p0.b, p1/z, p2.b",
		},
		{
			"eors against governing predicate",
			func(e *Emitter) { e.InsRRRR(APEORS, OptNone, P0, P1, P2, P1, SoptNone) },
			APNOTS, F_PdB_PgZ_PnB_Not, "nots p0.b, p1/z, p2.b",
		},
		{
			"orr predicates all equal",
			func(e *Emitter) { e.InsRRRR(APORR, OptNone, P0, P2, P2, P2, SoptNone) },
			APMOV, F_PdB_PnB, "mov p0.b, p2.b",
		},
		{
			"orr predicates governed by another",
			func(e *Emitter) { e.InsRRRR(APORR, OptNone, P0, P1, P2, P2, SoptNone) },
			APORR, F_PdB_PgZ_PnB_PmB, "orr p0.b, p1/z, p2.b, p2.b",
		},
		{
			"and predicates distinct",
			func(e *Emitter) { e.InsRRRR(APAND, OptNone, P0, P1, P2, P3, SoptNone) },
			APAND, F_PdB_PgZ_PnB_PmB, "and p0.b, p1/z, p2.b, p3.b",
		},
		{
			"eor predicates distinct",
			func(e *Emitter) { e.InsRRRR(APEOR, OptNone, P0, P1, P2, P3, SoptNone) },
			APEOR, F_PdB_PgZ_PnB_PmB, "eor p0.b, p1/z, p2.b, p3.b",
		},
		{
			"sel predicates distinct",
			func(e *Emitter) { e.InsRRRR(APSEL, OptNone, P0, P1, P2, P3, SoptNone) },
			APSEL, F_PdB_Pg_PnB_PmB, "sel p0.b, p1, p2.b, p3.b",
		},
		{
			"sel predicates into destination",
			func(e *Emitter) { e.InsRRRR(APSEL, OptNone, P0, P1, P2, P0, SoptNone) },
			APMOV, F_PdB_PgM_PnB_Sel, "mov p0.b, p1/m, p2.b",
		},
		{
			"sel into destination",
			func(e *Emitter) { e.InsRRRR(AZSEL, ArrH, Z0, P1, Z2, Z0, SoptNone) },
			AZMOV, F_ZdT_PgM_ZnT_Sel, "mov z0.h, p1/m, z2.h",
		},
		{
			"dup element zero",
			func(e *Emitter) { e.InsRRI(AZDUP, ArrS, Z0, Z1, 0, SoptNone) },
			AZMOV, F_ZdT_Vn, "mov z0.s, s1",
		},
		{
			"dup element one",
			func(e *Emitter) { e.InsRRI(AZDUP, ArrS, Z0, Z1, 1, SoptNone) },
			AZMOV, F_ZdT_ZnTIdx, "mov z0.s, z1.s[1]",
		},
		{
			"mov element zero",
			func(e *Emitter) { e.InsRRI(AZMOV, ArrD, Z2, Z3, 0, SoptNone) },
			AZMOV, F_ZdT_Vn, "mov z2.d, d3",
		},
		{
			"mov scalar source",
			func(e *Emitter) { e.InsRRI(AZMOV, ArrQ, Z2, V3, 0, SoptSimdScalar) },
			AZMOV, F_ZdT_Vn, "mov z2.q, q3",
		},
		{
			"dupm without dup encoding",
			func(e *Emitter) { e.InsRI(AZDUPM, ArrS, Z0, 0xff, SoptNone) },
			AZMOV, F_ZdT_Bitmask, "mov z0.s, #0xff",
		},
		{
			"dupm with dup encoding",
			func(e *Emitter) { e.InsRI(AZDUPM, ArrS, Z0, 0x7f, SoptNone) },
			AZDUPM, F_ZdT_Bitmask, "dupm z0.s, #0x7f",
		},
		{
			"dupm shifted dup encoding",
			func(e *Emitter) { e.InsRI(AZDUPM, ArrH, Z0, 0x7f00, SoptNone) },
			AZDUPM, F_ZdT_Bitmask, "dupm z0.h, #0x7f00",
		},
		{
			"insr general register",
			func(e *Emitter) { e.InsRR(AZINSR, ArrS, Z0, W1, SoptNone) },
			AZINSR, F_ZdnT_Rm, "insr z0.s, w1",
		},
		{
			"insr doubleword",
			func(e *Emitter) { e.InsRR(AZINSR, ArrD, Z0, R1, SoptNone) },
			AZINSR, F_ZdnT_Rm, "insr z0.d, x1",
		},
		{
			"insr scalar register",
			func(e *Emitter) { e.InsRR(AZINSR, ArrH, Z0, V1, SoptSimdScalar) },
			AZINSR, F_ZdnT_Vm, "insr z0.h, h1",
		},
		{
			"tbl single table",
			func(e *Emitter) { e.InsRRR(AZTBL, ArrB, Z0, Z1, Z2, SoptNone) },
			AZTBL, F_ZdT_ListZnT_ZmT, "tbl z0.b, {z1.b}, z2.b",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := one(t, test.emit)
			assert.Equal(t, test.op, in.Op)
			assert.Equal(t, test.fmt, in.Fmt)
			assert.Equal(t, test.asm, Disasm(in))
			assert.NoError(t, Verify(in))
		})
	}
}

func TestSwappedCompareOperands(t *testing.T) {
	in := one(t, func(e *Emitter) { e.InsRRRR(AZCMPLT, ArrS, P0, P1, Z2, Z3, SoptNone) })
	assert.Equal(t, AZCMPGT, in.Op)
	assert.Equal(t, [4]Reg{P0, P1, Z3, Z2}, in.Reg)
}

func TestMovImmediateForms(t *testing.T) {
	in := one(t, func(e *Emitter) { e.InsRI(AZMOV, ArrS, Z0, 0x7f00, SoptNone) })
	assert.Equal(t, F_ZdT_Simm8Sh, in.Fmt)
	assert.True(t, in.Shifted)
	assert.Equal(t, int64(0x7f), in.Imm)

	// No imm8 encoding: the bitmask form takes it.
	in = one(t, func(e *Emitter) { e.InsRI(AZMOV, ArrS, Z0, 0xff, SoptNone) })
	assert.Equal(t, F_ZdT_Bitmask, in.Fmt)
	assert.Equal(t, "mov z0.s, #0xff", Disasm(in))

	// DUP has no bitmask form to fall back on.
	err := buildErr(func(e *Emitter) { e.InsRI(AZDUP, ArrS, Z0, 257, SoptNone) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no InsRI format")
}

func TestZeroFloatImmediate(t *testing.T) {
	in := one(t, func(e *Emitter) { e.InsRF(AZFDUP, ArrD, Z1, 0) })
	assert.Equal(t, AZMOV, in.Op)
	assert.Equal(t, F_ZdT_Simm8Sh, in.Fmt)
	assert.Equal(t, "mov z1.d, #0", Disasm(in))

	in = one(t, func(e *Emitter) { e.InsRRF(AZFCPY, ArrH, Z1, P2, 0, SoptNone) })
	assert.Equal(t, AZMOV, in.Op)
	assert.True(t, in.Merge)
	assert.Equal(t, "mov z1.h, p2/m, #0", Disasm(in))
}

func TestMemoryShorthand(t *testing.T) {
	base := one(t, func(e *Emitter) { e.InsRRR(AZLD1D, ArrD, Z0, P1, R2, SoptNone) })
	full := one(t, func(e *Emitter) { e.InsRRRI(AZLD1D, ArrD, Z0, P1, R2, 0, SoptNone) })
	assert.Equal(t, Pack(full), Pack(base))
	assert.Equal(t, "ld1d {z0.d}, p1/z, [x2]", Disasm(base))
}

func TestGatherScaling(t *testing.T) {
	unscaled := one(t, func(e *Emitter) { e.InsRRRR(AZLD1H, ExtSXTW, Z0, P1, R2, Z3, SoptNone) })
	scaled := one(t, func(e *Emitter) { e.InsRRRR(AZLD1H, ExtSXTW, Z0, P1, R2, Z3, SoptScaled) })
	assert.Equal(t, F_ZtS_PgZ_XnSP_ZmS_Ext, unscaled.Fmt)
	assert.Equal(t, F_ZtS_PgZ_XnSP_ZmS_ExtScaled, scaled.Fmt)
	assert.Equal(t, "ld1h {z0.s}, p1/z, [x2, z3.s, sxtw]", Disasm(unscaled))
	assert.Equal(t, "ld1h {z0.s}, p1/z, [x2, z3.s, sxtw #1]", Disasm(scaled))

	// Byte gathers have nothing to scale.
	err := buildErr(func(e *Emitter) { e.InsRRRR(AZLD1B, ExtSXTW, Z0, P1, R2, Z3, SoptScaled) })
	assert.Error(t, err)
}

func TestRegisterWidth(t *testing.T) {
	in := one(t, func(e *Emitter) { e.InsRRR(AWHILELT, ArrS, P0, W1, W2, SoptNone) })
	assert.Equal(t, SizeW, in.Size)
	in = one(t, func(e *Emitter) { e.InsRRR(AWHILELT, ArrS, P0, R1, R2, SoptNone) })
	assert.Equal(t, SizeX, in.Size)
	in = one(t, func(e *Emitter) { e.InsRRR(AZADD, ArrS, Z0, Z1, Z2, SoptNone) })
	assert.Equal(t, SizeNone, in.Size)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *Emitter)
	}{
		{"imm8 shift on bytes", func(e *Emitter) { e.InsRI(AZADD, ArrB, Z0, 256, SoptNone) }},
		{"unsigned imm8 negative", func(e *Emitter) { e.InsRI(AZUMAX, ArrB, Z0, -1, SoptNone) }},
		{"zero bitmask", func(e *Emitter) { e.InsRI(AZAND, ArrS, Z0, 0, SoptNone) }},
		{"all-ones bitmask", func(e *Emitter) { e.InsRI(AZORR, ArrD, Z0, -1, SoptNone) }},
		{"right shift of zero", func(e *Emitter) { e.InsRRI(AZASR, ArrS, Z0, P0, 0, SoptNone) }},
		{"left shift too wide", func(e *Emitter) { e.InsRRI(AZLSL, ArrH, Z0, P0, 16, SoptNone) }},
		{"broadcast index", func(e *Emitter) { e.InsRRI(AZDUP, ArrS, Z0, Z1, 16, SoptNone) }},
		{"one-bit rotation", func(e *Emitter) { e.InsRRRI(AZFCADD, ArrS, Z0, P0, Z1, 180, SoptNone) }},
		{"two-bit rotation", func(e *Emitter) { e.InsRRRRI(AZFCMLA, ArrS, Z0, P0, Z1, Z2, 45, SoptNone) }},
		{"float constant", func(e *Emitter) { e.InsRRF(AZFADD, ArrS, Z0, P0, 2.0, SoptNone) }},
		{"modified float", func(e *Emitter) { e.InsRF(AZFMOV, ArrS, Z0, 0.1) }},
		{"index pair", func(e *Emitter) { e.InsRII(AZINDEX, ArrS, Z0, 16, 0) }},
		{"pattern multiplier", func(e *Emitter) { e.InsRPatternI(APTRUE, ArrS, P0, PatVL8, 2) }},
		{"element restriction", func(e *Emitter) { e.InsRRR(AZSDIV, ArrB, Z0, P0, Z1, SoptNone) }},
		{"register class", func(e *Emitter) { e.InsRRR(AZADD, ArrS, Z0, Z1, P2, SoptNone) }},
		{"governing predicate", func(e *Emitter) { e.InsRRR(AZABS, ArrS, Z0, P8, Z1, SoptNone) }},
		{"memory offset", func(e *Emitter) { e.InsRRRI(AZLD1W, ArrS, Z0, P1, R2, 8, SoptNone) }},
		{"spill offset", func(e *Emitter) { e.InsRRI(AZSTR, OptNone, Z0, R1, 256, SoptNone) }},
		{"unknown opcode", func(e *Emitter) { e.InsRRR(AXXX, ArrS, Z0, Z1, Z2, SoptNone) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := buildErr(test.emit)
			require.Error(t, err)
			ae, ok := AsAssertion(err)
			require.True(t, ok, "%v", err)
			assert.NotEmpty(t, ae.Msg)
			assert.NotErrorIs(t, err, ErrNotImplemented)
		})
	}
}

func TestFeatureGating(t *testing.T) {
	noSVE2 := WithFeatures(DefaultFeatures.Without(FeatSVE2))
	err := buildErr(func(e *Emitter) { e.InsRRR(AZSABA, ArrS, Z0, Z1, Z2, SoptNone) }, noSVE2)
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Contains(t, err.Error(), "requires sve2")

	noF64MM := WithFeatures(DefaultFeatures.Without(FeatF64MM))
	err = buildErr(func(e *Emitter) { e.InsRRR(AZZIP1, ArrQ, Z0, Z1, Z2, SoptNone) }, noF64MM)
	assert.ErrorIs(t, err, ErrNotImplemented)
	// Other forms of the same opcode are unaffected.
	assert.NoError(t, buildErr(func(e *Emitter) { e.InsRRR(AZZIP1, ArrD, Z0, Z1, Z2, SoptNone) }, noF64MM))

	ptrue := func(e *Emitter) { e.InsR(APTRUE, ArrS, PN8, SoptCounter) }
	err = buildErr(ptrue)
	assert.ErrorIs(t, err, ErrNotImplemented)
	ae, ok := AsAssertion(err)
	require.True(t, ok)
	assert.Equal(t, F_PNdT, ae.Fmt)

	in := one(t, ptrue, WithFeatures(AllFeatures))
	assert.Equal(t, "ptrue pn8.s", Disasm(in))
	assert.Equal(t, uint32(0x25a07810), Pack(in))
}

func TestCounterPredicates(t *testing.T) {
	all := WithFeatures(DefaultFeatures.With(FeatSVE2p1))
	vl2 := one(t, func(e *Emitter) { e.InsRR(APCNTP, ArrS, R0, PN8, SoptVL2) }, all)
	vl4 := one(t, func(e *Emitter) { e.InsRR(APCNTP, ArrS, R0, PN8, SoptVL4) }, all)
	assert.Equal(t, "cntp x0, pn8.s, vlx2", Disasm(vl2))
	assert.Equal(t, "cntp x0, pn8.s, vlx4", Disasm(vl4))
	assert.Equal(t, uint32(0x25a08200), Pack(vl2))
	assert.Equal(t, Pack(vl2)|1<<10, Pack(vl4))

	// Only pn8-pn15 can act as counters.
	err := buildErr(func(e *Emitter) { e.InsRR(APCNTP, ArrS, R0, P3, SoptVL2) }, all)
	assert.Error(t, err)
}

func TestDescriptorKinds(t *testing.T) {
	g := NewGroup()
	e := NewGroupEmitter(g)
	require.NoError(t, Catch(func() {
		e.InsRRR(AZADD, ArrS, Z0, Z1, Z2, SoptNone)
		e.InsRI(AZADD, ArrH, Z1, 255, SoptNone)
		e.InsRRI(AADDVL, OptNone, RSP, RSP, -2, SoptNone)
		e.InsRR(AZMOVPRFX, OptNone, Z0, Z1, SoptNone)
		e.InsRI(AZSUB, ArrD, Z3, 256, SoptNone)
		e.InsRRRR(AZLD1D, OptNone, Z0, P1, R2, Z3, SoptScaled)
	}))
	small, smallCns, cns := g.Allocs()
	assert.Equal(t, 3, small)
	assert.Equal(t, 3, smallCns)
	assert.Equal(t, 0, cns)

	kinds := []descKind{kindSmall, kindSmallCns, kindSmallCns, kindSmall, kindSmallCns, kindSmall}
	for i, in := range g.Instrs() {
		assert.Equal(t, kinds[i], in.kind, Disasm(in))
	}

	// The shifted form keeps its payload and flag.
	sub := g.Instrs()[4]
	assert.True(t, sub.Shifted)
	assert.Equal(t, int64(1), sub.Imm)
	assert.Equal(t, "sub z3.d, z3.d, #1, lsl #8", Disasm(sub))

	// Scaled gathers set the same flag with no immediate at all.
	gather := g.Instrs()[5]
	assert.True(t, gather.Shifted)
	assert.Zero(t, gather.Imm)
}

func TestCatch(t *testing.T) {
	assert.NoError(t, Catch(func() {}))
	assert.PanicsWithValue(t, "boom", func() {
		_ = Catch(func() { panic("boom") })
	})

	_, ok := AsAssertion("not an error")
	assert.False(t, ok)
	_, ok = AsAssertion(assertf(AZADD, F_ZdT_ZnT_ZmT, "x"))
	assert.True(t, ok)
}
