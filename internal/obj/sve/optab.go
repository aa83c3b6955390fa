// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"

	"github.com/dotnet/runtime-sub004/internal/obj/sve/imm"
)

// An Op is an instruction mnemonic. Vector forms are prefixed AZ,
// predicate forms AP, and instructions whose result is a general register
// or whose operands are only general registers A.
type Op uint16

const (
	AXXX Op = iota

	// Integer arithmetic.
	AZADD
	AZSUB
	AZSUBR
	AZMUL
	AZSMAX
	AZSMIN
	AZUMAX
	AZUMIN
	AZSDIV
	AZUDIV
	AZSDIVR
	AZUDIVR
	AZSABD
	AZUABD
	AZSMULH
	AZUMULH
	AZSQADD
	AZUQADD
	AZSQSUB
	AZUQSUB
	AZMLA
	AZMLS
	AZMAD
	AZMSB
	AZSABA
	AZUABA

	// Bitwise logical and shifts.
	AZAND
	AZORR
	AZEOR
	AZBIC
	AZORN
	AZEON
	AZEOR3
	AZBCAX
	AZBSL
	AZNBSL
	AZASR
	AZLSR
	AZLSL
	AZASRD
	AZASRR
	AZLSRR
	AZLSLR
	AZBDEP
	AZBEXT
	AZBGRP

	// Unary.
	AZABS
	AZNEG
	AZCLS
	AZCLZ
	AZCNT
	AZCNOT
	AZNOT
	AZRBIT
	AZREVB
	AZREVH
	AZREVW
	AZSXTB
	AZUXTB
	AZSXTH
	AZUXTH
	AZSXTW
	AZUXTW
	AZMOVPRFX

	// Floating-point arithmetic.
	AZFADD
	AZFSUB
	AZFMUL
	AZFSUBR
	AZFMAX
	AZFMIN
	AZFMAXNM
	AZFMINNM
	AZFDIV
	AZFDIVR
	AZFMULX
	AZFSCALE
	AZFABD
	AZFMLA
	AZFMLS
	AZFNMLA
	AZFNMLS
	AZFMAD
	AZFMSB
	AZFNMAD
	AZFNMSB
	AZFABS
	AZFNEG
	AZFSQRT
	AZFRINTN
	AZFRINTP
	AZFRINTM
	AZFRINTZ
	AZFRINTA
	AZFRINTX
	AZFRINTI
	AZFRECPX
	AZFRECPE
	AZFRSQRTE
	AZFRECPS
	AZFRSQRTS
	AZFTSMUL
	AZFTSSEL
	AZFEXPA
	AZFTMAD
	AZFCADD
	AZFCMLA
	AZCADD
	AZCMLA

	// Conversions.
	AZSCVTF
	AZUCVTF
	AZFCVTZS
	AZFCVTZU
	AZFCVT
	AZBFCVT
	AZBFCVTNT

	// Dot products and matrix multiplies.
	AZSDOT
	AZUDOT
	AZUSDOT
	AZSMMLA
	AZUMMLA
	AZUSMMLA
	AZFMMLA
	AZBFDOT
	AZBFMLALB
	AZBFMLALT
	AZBFMMLA

	// Permutes and element moves.
	AZTBL
	AZZIP1
	AZZIP2
	AZUZP1
	AZUZP2
	AZTRN1
	AZTRN2
	AZREV
	AZSUNPKLO
	AZSUNPKHI
	AZUUNPKLO
	AZUUNPKHI
	AZSEL
	AZSPLICE
	AZCOMPACT
	AZCLASTA
	AZCLASTB
	AZLASTA
	AZLASTB
	AZEXT
	AZINSR
	AZINDEX
	AZDUP
	AZDUPM
	AZCPY
	AZFDUP
	AZFCPY
	AZMOV
	AZFMOV

	// Integer and floating-point compares.
	AZCMPEQ
	AZCMPNE
	AZCMPGE
	AZCMPGT
	AZCMPHI
	AZCMPHS
	AZCMPLE
	AZCMPLT
	AZCMPLO
	AZCMPLS
	AZFCMEQ
	AZFCMNE
	AZFCMGE
	AZFCMGT
	AZFCMLE
	AZFCMLT
	AZFCMUO
	AZFACGE
	AZFACGT
	AZFACLE
	AZFACLT

	// Reductions.
	AZSADDV
	AZUADDV
	AZANDV
	AZORV
	AZEORV
	AZSMAXV
	AZUMAXV
	AZSMINV
	AZUMINV
	AZFADDV
	AZFMAXV
	AZFMINV
	AZFMAXNMV
	AZFMINNMV
	AZFADDA

	// Predicate logical operations.
	APAND
	APANDS
	APBIC
	APBICS
	APEOR
	APEORS
	APNAND
	APNANDS
	APNOR
	APNORS
	APORN
	APORNS
	APORR
	APORRS
	APSEL
	APMOV
	APMOVS
	APNOT
	APNOTS
	ABRKA
	ABRKB
	ABRKAS
	ABRKBS
	ABRKN
	ABRKNS
	ABRKPA
	ABRKPB
	ABRKPAS
	ABRKPBS

	// Predicate initialisation, tests and counts.
	APTRUE
	APTRUES
	APFALSE
	APRDFFR
	APRDFFRS
	APWRFFR
	ASETFFR
	APTEST
	APFIRST
	APNEXT
	APUNPKLO
	APUNPKHI
	APCNTP
	AZINCP
	AZDECP
	AWHILELT
	AWHILELE
	AWHILELO
	AWHILELS
	AWHILEGE
	AWHILEGT
	AWHILEHS
	AWHILEHI
	ACTERMEQ
	ACTERMNE

	// Element counts and vector length arithmetic.
	ACNTB
	ACNTH
	ACNTW
	ACNTD
	AINCB
	ADECB
	AINCH
	ADECH
	AINCW
	ADECW
	AINCD
	ADECD
	AADDVL
	AADDPL
	ARDVL

	// Loads and stores.
	AZLD1B
	AZLD1H
	AZLD1W
	AZLD1D
	AZST1B
	AZST1H
	AZST1W
	AZST1D
	AZLD2B
	AZLD2H
	AZLD2W
	AZLD2D
	AZLD3B
	AZLD3H
	AZLD3W
	AZLD3D
	AZLD4B
	AZLD4H
	AZLD4W
	AZLD4D
	AZST2B
	AZST2H
	AZST2W
	AZST2D
	AZST3B
	AZST3H
	AZST3W
	AZST3D
	AZST4B
	AZST4H
	AZST4W
	AZST4D
	AZLDR
	AZSTR
	APRFB
	APRFH
	APRFW
	APRFD

	numOps
)

// badCode marks a format with no encoding for an opcode.
const badCode uint32 = 0xffffffff

// opInfo is one row of the opcode table. bits[i] is the base pattern of
// group[i]; the format packs its operands on top of it.
type opInfo struct {
	name  string
	feat  Feature
	group []Format
	bits  []uint32

	// elems restricts the arrangements of typed formats; zero allows
	// whatever the format allows.
	elems optSet

	// msz is log2 of the memory access size of loads, stores and
	// prefetches.
	msz uint8

	ffam imm.FloatFamily
	mem  bool
}

func row(name string, group []Format, bits ...uint32) opInfo {
	return opInfo{name: name, group: group, bits: bits}
}

func (o opInfo) on(s optSet) opInfo {
	o.elems = s
	return o
}

func (o opInfo) needs(f Feature) opInfo {
	o.feat = f
	return o
}

func (o opInfo) fp(fam imm.FloatFamily) opInfo {
	o.ffam = fam
	return o
}

// access marks a load, store or prefetch of 1<<msz byte elements.
func (o opInfo) access(msz uint8) opInfo {
	o.msz = msz
	o.mem = true
	return o
}

// Canonical groups. Opcodes sharing a group share a column layout.
var (
	gPred      = []Format{F_ZdnT_PgM_ZdnT_ZmT}
	gAdd       = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdT_ZnT_ZmT, F_ZdnT_ZdnT_Imm8Sh}
	gSubr      = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_ZdnT_Imm8Sh}
	gSImm      = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_ZdnT_Simm8}
	gUImm      = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_ZdnT_Uimm8}
	gSat       = []Format{F_ZdT_ZnT_ZmT, F_ZdnT_ZdnT_Imm8Sh}
	gUnpred    = []Format{F_ZdT_ZnT_ZmT}
	gTbl       = []Format{F_ZdT_ListZnT_ZmT}
	gLogic     = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdD_ZnD_ZmD, F_ZdnT_ZdnT_Bitmask}
	gLogicImm  = []Format{F_ZdnT_ZdnT_Bitmask}
	gTernary   = []Format{F_ZdnD_ZdnD_ZmD_ZkD}
	gShiftR    = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_PgM_ZdnT_ZmD, F_ZdT_ZnT_ZmD, F_ZdnT_PgM_ZdnT_ShiftR, F_ZdT_ZnT_ShiftR}
	gShiftL    = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_PgM_ZdnT_ZmD, F_ZdT_ZnT_ZmD, F_ZdnT_PgM_ZdnT_ShiftL, F_ZdT_ZnT_ShiftL}
	gShiftImm  = []Format{F_ZdnT_PgM_ZdnT_ShiftR}
	gMla       = []Format{F_ZdaT_PgM_ZnT_ZmT}
	gMad       = []Format{F_ZdnT_PgM_ZmT_ZaT}
	gAccum     = []Format{F_ZdaT_ZnT_ZmT}
	gUnary     = []Format{F_ZdT_PgM_ZnT}
	gUnaryU    = []Format{F_ZdT_ZnT}
	gMovprfx   = []Format{F_ZdT_PgZM_ZnT, F_Zd_Zn}
	gFArith    = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdT_ZnT_ZmT, F_ZdnT_PgM_ZdnT_Fimm1}
	gFMul      = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdT_ZnT_ZmT, F_ZdnT_PgM_ZdnT_Fimm1, F_ZdaT_ZnT_ZmTIdx}
	gFImm      = []Format{F_ZdnT_PgM_ZdnT_ZmT, F_ZdnT_PgM_ZdnT_Fimm1}
	gFMla      = []Format{F_ZdaT_PgM_ZnT_ZmT, F_ZdaT_ZnT_ZmTIdx}
	gFTmad     = []Format{F_ZdnT_ZdnT_ZmT_Imm3}
	gFCadd     = []Format{F_ZdnT_PgM_ZdnT_ZmT_Rot1}
	gFCmla     = []Format{F_ZdaT_PgM_ZnT_ZmT_Rot2, F_ZdaT_ZnT_ZmTIdx_Rot}
	gCadd      = []Format{F_ZdnT_ZdnT_ZmT_Rot1}
	gCmla      = []Format{F_ZdaT_ZnT_ZmT_Rot2}
	gCvt       = []Format{F_ZdT_PgM_ZnT_Cvt}
	gBfcvt     = []Format{F_ZdH_PgM_ZnS}
	gDot       = []Format{F_ZdaT_ZnTq_ZmTq, F_ZdaT_ZnTq_ZmTqIdx}
	gI8mm      = []Format{F_ZdaS_ZnB_ZmB}
	gBfdot     = []Format{F_ZdaS_ZnH_ZmH, F_ZdaS_ZnH_ZmHIdx2}
	gBfmlal    = []Format{F_ZdaS_ZnH_ZmH, F_ZdaS_ZnH_ZmHIdx3}
	gBfmmla    = []Format{F_ZdaS_ZnH_ZmH}
	gPerm      = []Format{F_ZdT_ZnT_ZmT, F_PdT_PnT_PmT, F_ZdQ_ZnQ_ZmQ}
	gRev       = []Format{F_ZdT_ZnT, F_PdT_PnT}
	gUnpk      = []Format{F_ZdT_ZnTh}
	gPUnpk     = []Format{F_PdH_PnB}
	gSel       = []Format{F_ZdT_Pg_ZnT_ZmT}
	gSplice    = []Format{F_ZdnT_Pg_ZdnT_ZmT}
	gCompact   = []Format{F_ZdT_Pg_ZnT}
	gClast     = []Format{F_ZdnT_Pg_ZdnT_ZmT, F_Vdn_Pg_Vdn_ZmT, F_Rdn_Pg_Rdn_ZmT}
	gLast      = []Format{F_Rd_Pg_ZnT, F_Vd_Pg_ZnT}
	gExt       = []Format{F_ZdnB_ZdnB_ZmB_Imm8}
	gInsr      = []Format{F_ZdnT_Rm, F_ZdnT_Vm}
	gIndex     = []Format{F_ZdT_Simm5_Simm5, F_ZdT_Simm5_Rm, F_ZdT_Rn_Simm5, F_ZdT_Rn_Rm}
	gDup       = []Format{F_ZdT_Simm8Sh, F_ZdT_Rn, F_ZdT_ZnTIdx}
	gDupm      = []Format{F_ZdT_Bitmask}
	gCpy       = []Format{F_ZdT_PgZM_Simm8Sh, F_ZdT_PgM_Rn, F_ZdT_PgM_Vn}
	gFdup      = []Format{F_ZdT_Fimm8}
	gFcpy      = []Format{F_ZdT_PgM_Fimm8}
	gMov       = []Format{F_ZdT_Simm8Sh, F_ZdT_Rn, F_ZdT_ZnTIdx, F_ZdT_Bitmask, F_ZdT_PgZM_Simm8Sh, F_ZdT_PgM_Rn, F_ZdT_PgM_Vn, F_ZdD_ZnD, F_ZdT_PgM_ZnT_Sel, F_ZdT_Vn}
	gFmov      = []Format{F_ZdT_Fimm8, F_ZdT_PgM_Fimm8}
	gCmp       = []Format{F_PdT_PgZ_ZnT_ZmT, F_PdT_PgZ_ZnT_ZmD, F_PdT_PgZ_ZnT_Simm5}
	gCmpU      = []Format{F_PdT_PgZ_ZnT_ZmT, F_PdT_PgZ_ZnT_ZmD, F_PdT_PgZ_ZnT_Uimm7}
	gCmpRev    = []Format{F_PdT_PgZ_ZnT_Simm5, F_PdT_PgZ_ZnT_ZmD, F_PdT_PgZ_ZnT_ZmT}
	gCmpRevU   = []Format{F_PdT_PgZ_ZnT_Uimm7, F_PdT_PgZ_ZnT_ZmD, F_PdT_PgZ_ZnT_ZmT}
	gFCmp      = []Format{F_PdT_PgZ_ZnT_ZmT, F_PdT_PgZ_ZnT_Zero}
	gFCmpRev   = []Format{F_PdT_PgZ_ZnT_Zero, F_PdT_PgZ_ZnT_ZmT}
	gFCmpReg   = []Format{F_PdT_PgZ_ZnT_ZmT}
	gAddv      = []Format{F_Dd_Pg_ZnT}
	gReduce    = []Format{F_Vd_Pg_ZnT}
	gFadda     = []Format{F_Vdn_Pg_Vdn_ZmT}
	gPLogic    = []Format{F_PdB_PgZ_PnB_PmB}
	gPSel      = []Format{F_PdB_Pg_PnB_PmB}
	gPMov      = []Format{F_PdB_PnB, F_PdB_PgZ_PnB_Dup, F_PdB_PgM_PnB_Sel}
	gPMovs     = []Format{F_PdB_PnB, F_PdB_PgZ_PnB_Dup}
	gPNot      = []Format{F_PdB_PgZ_PnB_Not}
	gBrk       = []Format{F_PdB_PgZM_PnB}
	gBrks      = []Format{F_PdB_PgZ_PnB}
	gBrkn      = []Format{F_PdmB_PgZ_PnB_PdmB}
	gPtrue     = []Format{F_PdT_Pattern, F_PNdT}
	gPtrues    = []Format{F_PdT_Pattern}
	gPfalse    = []Format{F_PdB}
	gRdffr     = []Format{F_PdB_PgZ, F_PdB}
	gRdffrs    = []Format{F_PdB_PgZ}
	gWrffr     = []Format{F_PnB}
	gNoOps     = []Format{F_NoOps}
	gPtest     = []Format{F_Pg_PnB}
	gPfirst    = []Format{F_PdnB_Pg_PdnB}
	gPnext     = []Format{F_PdnT_Pg_PdnT}
	gCntp      = []Format{F_Xd_Pg_PnT, F_Xd_PNnT_VL}
	gIncp      = []Format{F_Xdn_PmT, F_ZdnT_PmT}
	gWhile     = []Format{F_PdT_Rn_Rm, F_PNdT_Rn_Rm_VL}
	gCterm     = []Format{F_Rn_Rm}
	gCnt       = []Format{F_Xd_Pattern_Mul}
	gIncVec    = []Format{F_Xd_Pattern_Mul, F_ZdnT_Pattern_Mul}
	gAddvl     = []Format{F_Xd_XnSP_Simm6}
	gRdvl      = []Format{F_Xd_Simm6}
	gLd1B      = []Format{F_ZtT_PgZ_XnSP_Simm4MulVL, F_ZtT_PgZ_XnSP_Xm, F_Zt2_PNgZ_XnSP_Simm4MulVL, F_Zt4_PNgZ_XnSP_Simm4MulVL, F_Zt2_PNgZ_XnSP_Xm, F_Zt4_PNgZ_XnSP_Xm, F_ZtS_PgZ_XnSP_ZmS_Ext, F_ZtD_PgZ_XnSP_ZmD, F_ZtS_PgZ_ZnS_Imm5, F_ZtD_PgZ_ZnD_Imm5}
	gLd1HW     = []Format{F_ZtT_PgZ_XnSP_Simm4MulVL, F_ZtT_PgZ_XnSP_Xm, F_Zt2_PNgZ_XnSP_Simm4MulVL, F_Zt4_PNgZ_XnSP_Simm4MulVL, F_Zt2_PNgZ_XnSP_Xm, F_Zt4_PNgZ_XnSP_Xm, F_ZtS_PgZ_XnSP_ZmS_Ext, F_ZtS_PgZ_XnSP_ZmS_ExtScaled, F_ZtD_PgZ_XnSP_ZmD, F_ZtD_PgZ_XnSP_ZmD_Lsl, F_ZtS_PgZ_ZnS_Imm5, F_ZtD_PgZ_ZnD_Imm5}
	gLd1D      = []Format{F_ZtT_PgZ_XnSP_Simm4MulVL, F_ZtT_PgZ_XnSP_Xm, F_Zt2_PNgZ_XnSP_Simm4MulVL, F_Zt4_PNgZ_XnSP_Simm4MulVL, F_Zt2_PNgZ_XnSP_Xm, F_Zt4_PNgZ_XnSP_Xm, F_ZtD_PgZ_XnSP_ZmD, F_ZtD_PgZ_XnSP_ZmD_Lsl, F_ZtD_PgZ_ZnD_Imm5}
	gSt1B      = []Format{F_ZtT_Pg_XnSP_Simm4MulVL, F_ZtT_Pg_XnSP_Xm, F_Zt2_PNg_XnSP_Simm4MulVL, F_Zt4_PNg_XnSP_Simm4MulVL, F_Zt2_PNg_XnSP_Xm, F_Zt4_PNg_XnSP_Xm, F_ZtS_Pg_XnSP_ZmS_Ext, F_ZtD_Pg_XnSP_ZmD, F_ZtS_Pg_ZnS_Imm5, F_ZtD_Pg_ZnD_Imm5}
	gSt1HW     = []Format{F_ZtT_Pg_XnSP_Simm4MulVL, F_ZtT_Pg_XnSP_Xm, F_Zt2_PNg_XnSP_Simm4MulVL, F_Zt4_PNg_XnSP_Simm4MulVL, F_Zt2_PNg_XnSP_Xm, F_Zt4_PNg_XnSP_Xm, F_ZtS_Pg_XnSP_ZmS_Ext, F_ZtS_Pg_XnSP_ZmS_ExtScaled, F_ZtD_Pg_XnSP_ZmD, F_ZtD_Pg_XnSP_ZmD_Lsl, F_ZtS_Pg_ZnS_Imm5, F_ZtD_Pg_ZnD_Imm5}
	gSt1D      = []Format{F_ZtT_Pg_XnSP_Simm4MulVL, F_ZtT_Pg_XnSP_Xm, F_Zt2_PNg_XnSP_Simm4MulVL, F_Zt4_PNg_XnSP_Simm4MulVL, F_Zt2_PNg_XnSP_Xm, F_Zt4_PNg_XnSP_Xm, F_ZtD_Pg_XnSP_ZmD, F_ZtD_Pg_XnSP_ZmD_Lsl, F_ZtD_Pg_ZnD_Imm5}
	gLd2       = []Format{F_Zt2T_PgZ_XnSP_Simm4MulVL, F_Zt2T_PgZ_XnSP_Xm}
	gLd3       = []Format{F_Zt3T_PgZ_XnSP_Simm4MulVL}
	gLd4       = []Format{F_Zt4T_PgZ_XnSP_Simm4MulVL, F_Zt4T_PgZ_XnSP_Xm}
	gSt2       = []Format{F_Zt2T_Pg_XnSP_Simm4MulVL, F_Zt2T_Pg_XnSP_Xm}
	gSt3       = []Format{F_Zt3T_Pg_XnSP_Simm4MulVL}
	gSt4       = []Format{F_Zt4T_Pg_XnSP_Simm4MulVL, F_Zt4T_Pg_XnSP_Xm}
	gFill      = []Format{F_Zt_XnSP_Simm9MulVL, F_Pt_XnSP_Simm9MulVL}
	gPrefetch  = []Format{F_Prfop_Pg_XnSP_Simm6MulVL, F_Prfop_Pg_XnSP_Xm}
	gBitPerm   = []Format{F_ZdT_ZnT_ZmT}
	gFUnpredHD = []Format{F_ZdT_ZnT_ZmT}
)

// The floating-point arithmetic families, by immediate constant pair.
const (
	addSub = imm.FloatAddSub
	maxMin = imm.FloatMaxMin
	mulFam = imm.FloatMul
)

var optab = [numOps]opInfo{
	AZADD:   row("add", gAdd, 0x04000000, 0x04200000, 0x2520c000),
	AZSUB:   row("sub", gAdd, 0x04010000, 0x04200400, 0x2521c000),
	AZSUBR:  row("subr", gSubr, 0x04030000, 0x2523c000),
	AZMUL:   row("mul", gSImm, 0x04100000, 0x2530c000),
	AZSMAX:  row("smax", gSImm, 0x04080000, 0x2528c000),
	AZSMIN:  row("smin", gSImm, 0x040a0000, 0x252ac000),
	AZUMAX:  row("umax", gUImm, 0x04090000, 0x2529c000),
	AZUMIN:  row("umin", gUImm, 0x040b0000, 0x252bc000),
	AZSDIV:  row("sdiv", gPred, 0x04140000).on(setSD),
	AZUDIV:  row("udiv", gPred, 0x04150000).on(setSD),
	AZSDIVR: row("sdivr", gPred, 0x04160000).on(setSD),
	AZUDIVR: row("udivr", gPred, 0x04170000).on(setSD),
	AZSABD:  row("sabd", gPred, 0x040c0000),
	AZUABD:  row("uabd", gPred, 0x040d0000),
	AZSMULH: row("smulh", gPred, 0x04120000),
	AZUMULH: row("umulh", gPred, 0x04130000),
	AZSQADD: row("sqadd", gSat, 0x04201000, 0x2524c000),
	AZUQADD: row("uqadd", gSat, 0x04201400, 0x2525c000),
	AZSQSUB: row("sqsub", gSat, 0x04201800, 0x2526c000),
	AZUQSUB: row("uqsub", gSat, 0x04201c00, 0x2527c000),
	AZMLA:   row("mla", gMla, 0x04004000),
	AZMLS:   row("mls", gMla, 0x04006000),
	AZMAD:   row("mad", gMad, 0x0400c000),
	AZMSB:   row("msb", gMad, 0x0400e000),
	AZSABA:  row("saba", gAccum, 0x4500f800).needs(FeatSVE2),
	AZUABA:  row("uaba", gAccum, 0x4500fc00).needs(FeatSVE2),

	AZAND:  row("and", gLogic, 0x041a0000, 0x04203000, 0x05800000),
	AZORR:  row("orr", gLogic, 0x04180000, 0x04603000, 0x05000000),
	AZEOR:  row("eor", gLogic, 0x04190000, 0x04a03000, 0x05400000),
	AZBIC:  row("bic", gLogic, 0x041b0000, 0x04e03000, 0x05800000),
	AZORN:  row("orn", gLogicImm, 0x05000000),
	AZEON:  row("eon", gLogicImm, 0x05400000),
	AZEOR3: row("eor3", gTernary, 0x04203800).needs(FeatSVE2),
	AZBCAX: row("bcax", gTernary, 0x04603800).needs(FeatSVE2),
	AZBSL:  row("bsl", gTernary, 0x04203c00).needs(FeatSVE2),
	AZNBSL: row("nbsl", gTernary, 0x04e03c00).needs(FeatSVE2),
	AZASR:  row("asr", gShiftR, 0x04108000, 0x04188000, 0x04208000, 0x04008000, 0x04209000),
	AZLSR:  row("lsr", gShiftR, 0x04118000, 0x04198000, 0x04208400, 0x04018000, 0x04209400),
	AZLSL:  row("lsl", gShiftL, 0x04138000, 0x041b8000, 0x04208c00, 0x04038000, 0x04209c00),
	AZASRD: row("asrd", gShiftImm, 0x04048000),
	AZASRR: row("asrr", gPred, 0x04148000),
	AZLSRR: row("lsrr", gPred, 0x04158000),
	AZLSLR: row("lslr", gPred, 0x04178000),
	AZBDEP: row("bdep", gBitPerm, 0x4500b400).needs(FeatBitPerm),
	AZBEXT: row("bext", gBitPerm, 0x4500b000).needs(FeatBitPerm),
	AZBGRP: row("bgrp", gBitPerm, 0x4500b800).needs(FeatBitPerm),

	AZABS:     row("abs", gUnary, 0x0416a000),
	AZNEG:     row("neg", gUnary, 0x0417a000),
	AZCLS:     row("cls", gUnary, 0x0418a000),
	AZCLZ:     row("clz", gUnary, 0x0419a000),
	AZCNT:     row("cnt", gUnary, 0x041aa000),
	AZCNOT:    row("cnot", gUnary, 0x041ba000),
	AZNOT:     row("not", gUnary, 0x041ea000),
	AZRBIT:    row("rbit", gUnary, 0x05278000),
	AZREVB:    row("revb", gUnary, 0x05248000).on(setHSD),
	AZREVH:    row("revh", gUnary, 0x05258000).on(setSD),
	AZREVW:    row("revw", gUnary, 0x05268000).on(setD),
	AZSXTB:    row("sxtb", gUnary, 0x0410a000).on(setHSD),
	AZUXTB:    row("uxtb", gUnary, 0x0411a000).on(setHSD),
	AZSXTH:    row("sxth", gUnary, 0x0412a000).on(setSD),
	AZUXTH:    row("uxth", gUnary, 0x0413a000).on(setSD),
	AZSXTW:    row("sxtw", gUnary, 0x0414a000).on(setD),
	AZUXTW:    row("uxtw", gUnary, 0x0415a000).on(setD),
	AZMOVPRFX: row("movprfx", gMovprfx, 0x04102000, 0x0420bc00),

	AZFADD:    row("fadd", gFArith, 0x65008000, 0x65000000, 0x65188000).on(setHSD).fp(addSub),
	AZFSUB:    row("fsub", gFArith, 0x65018000, 0x65000400, 0x65198000).on(setHSD).fp(addSub),
	AZFMUL:    row("fmul", gFMul, 0x65028000, 0x65000800, 0x651a8000, 0x64202000).on(setHSD).fp(mulFam),
	AZFSUBR:   row("fsubr", gFImm, 0x65038000, 0x651b8000).on(setHSD).fp(addSub),
	AZFMAX:    row("fmax", gFImm, 0x65068000, 0x651e8000).on(setHSD).fp(maxMin),
	AZFMIN:    row("fmin", gFImm, 0x65078000, 0x651f8000).on(setHSD).fp(maxMin),
	AZFMAXNM:  row("fmaxnm", gFImm, 0x65048000, 0x651c8000).on(setHSD).fp(maxMin),
	AZFMINNM:  row("fminnm", gFImm, 0x65058000, 0x651d8000).on(setHSD).fp(maxMin),
	AZFDIV:    row("fdiv", gPred, 0x650d8000).on(setHSD),
	AZFDIVR:   row("fdivr", gPred, 0x650c8000).on(setHSD),
	AZFMULX:   row("fmulx", gPred, 0x650a8000).on(setHSD),
	AZFSCALE:  row("fscale", gPred, 0x65098000).on(setHSD),
	AZFABD:    row("fabd", gPred, 0x65088000).on(setHSD),
	AZFMLA:    row("fmla", gFMla, 0x65200000, 0x64200000).on(setHSD),
	AZFMLS:    row("fmls", gFMla, 0x65202000, 0x64200400).on(setHSD),
	AZFNMLA:   row("fnmla", gMla, 0x65204000).on(setHSD),
	AZFNMLS:   row("fnmls", gMla, 0x65206000).on(setHSD),
	AZFMAD:    row("fmad", gMad, 0x65208000).on(setHSD),
	AZFMSB:    row("fmsb", gMad, 0x6520a000).on(setHSD),
	AZFNMAD:   row("fnmad", gMad, 0x6520c000).on(setHSD),
	AZFNMSB:   row("fnmsb", gMad, 0x6520e000).on(setHSD),
	AZFABS:    row("fabs", gUnary, 0x041ca000).on(setHSD),
	AZFNEG:    row("fneg", gUnary, 0x041da000).on(setHSD),
	AZFSQRT:   row("fsqrt", gUnary, 0x650da000).on(setHSD),
	AZFRINTN:  row("frintn", gUnary, 0x6500a000).on(setHSD),
	AZFRINTP:  row("frintp", gUnary, 0x6501a000).on(setHSD),
	AZFRINTM:  row("frintm", gUnary, 0x6502a000).on(setHSD),
	AZFRINTZ:  row("frintz", gUnary, 0x6503a000).on(setHSD),
	AZFRINTA:  row("frinta", gUnary, 0x6504a000).on(setHSD),
	AZFRINTX:  row("frintx", gUnary, 0x6506a000).on(setHSD),
	AZFRINTI:  row("frinti", gUnary, 0x6507a000).on(setHSD),
	AZFRECPX:  row("frecpx", gUnary, 0x650ca000).on(setHSD),
	AZFRECPE:  row("frecpe", gUnaryU, 0x650e3000).on(setHSD),
	AZFRSQRTE: row("frsqrte", gUnaryU, 0x650f3000).on(setHSD),
	AZFRECPS:  row("frecps", gFUnpredHD, 0x65001800).on(setHSD),
	AZFRSQRTS: row("frsqrts", gFUnpredHD, 0x65001c00).on(setHSD),
	AZFTSMUL:  row("ftsmul", gFUnpredHD, 0x65000c00).on(setHSD),
	AZFTSSEL:  row("ftssel", gFUnpredHD, 0x0420b000).on(setHSD),
	AZFEXPA:   row("fexpa", gUnaryU, 0x0420b800).on(setHSD),
	AZFTMAD:   row("ftmad", gFTmad, 0x65108000),
	AZFCADD:   row("fcadd", gFCadd, 0x64008000),
	AZFCMLA:   row("fcmla", gFCmla, 0x64000000, 0x64a01000),
	AZCADD:    row("cadd", gCadd, 0x4500d800).needs(FeatSVE2),
	AZCMLA:    row("cmla", gCmla, 0x44002000).needs(FeatSVE2),

	AZSCVTF:   row("scvtf", gCvt, 0x6510a000),
	AZUCVTF:   row("ucvtf", gCvt, 0x6511a000),
	AZFCVTZS:  row("fcvtzs", gCvt, 0x6518a000),
	AZFCVTZU:  row("fcvtzu", gCvt, 0x6519a000),
	AZFCVT:    row("fcvt", gCvt, 0x6508a000),
	AZBFCVT:   row("bfcvt", gBfcvt, 0x658aa000).needs(FeatBF16),
	AZBFCVTNT: row("bfcvtnt", gBfcvt, 0x648aa000).needs(FeatBF16),

	AZSDOT:    row("sdot", gDot, 0x44800000, 0x44a00000),
	AZUDOT:    row("udot", gDot, 0x44800400, 0x44a00400),
	AZUSDOT:   row("usdot", gI8mm, 0x44807800).needs(FeatI8MM),
	AZSMMLA:   row("smmla", gI8mm, 0x45009800).needs(FeatI8MM),
	AZUMMLA:   row("ummla", gI8mm, 0x45c09800).needs(FeatI8MM),
	AZUSMMLA:  row("usmmla", gI8mm, 0x45809800).needs(FeatI8MM),
	AZFMMLA:   row("fmmla", gAccum, 0x6420e400).on(setSD).needs(FeatF32MM),
	AZBFDOT:   row("bfdot", gBfdot, 0x64608000, 0x64604000).needs(FeatBF16),
	AZBFMLALB: row("bfmlalb", gBfmlal, 0x64e08000, 0x64e04000).needs(FeatBF16),
	AZBFMLALT: row("bfmlalt", gBfmlal, 0x64e08400, 0x64e04400).needs(FeatBF16),
	AZBFMMLA:  row("bfmmla", gBfmmla, 0x6460e400).needs(FeatBF16),

	AZTBL:     row("tbl", gTbl, 0x05203000),
	AZZIP1:    row("zip1", gPerm, 0x05206000, 0x05204000, 0x05a00000),
	AZZIP2:    row("zip2", gPerm, 0x05206400, 0x05204400, 0x05a00400),
	AZUZP1:    row("uzp1", gPerm, 0x05206800, 0x05204800, 0x05a00800),
	AZUZP2:    row("uzp2", gPerm, 0x05206c00, 0x05204c00, 0x05a00c00),
	AZTRN1:    row("trn1", gPerm, 0x05207000, 0x05205000, 0x05a01800),
	AZTRN2:    row("trn2", gPerm, 0x05207400, 0x05205400, 0x05a01c00),
	AZREV:     row("rev", gRev, 0x05383800, 0x05344000),
	AZSUNPKLO: row("sunpklo", gUnpk, 0x05303800),
	AZSUNPKHI: row("sunpkhi", gUnpk, 0x05313800),
	AZUUNPKLO: row("uunpklo", gUnpk, 0x05323800),
	AZUUNPKHI: row("uunpkhi", gUnpk, 0x05333800),
	AZSEL:     row("sel", gSel, 0x0520c000),
	AZSPLICE:  row("splice", gSplice, 0x052c8000),
	AZCOMPACT: row("compact", gCompact, 0x05a18000),
	AZCLASTA:  row("clasta", gClast, 0x05288000, 0x052a8000, 0x0530a000),
	AZCLASTB:  row("clastb", gClast, 0x05298000, 0x052b8000, 0x0531a000),
	AZLASTA:   row("lasta", gLast, 0x0520a000, 0x05228000),
	AZLASTB:   row("lastb", gLast, 0x0521a000, 0x05238000),
	AZEXT:     row("ext", gExt, 0x05200000),
	AZINSR:    row("insr", gInsr, 0x05243800, 0x05343800),
	AZINDEX:   row("index", gIndex, 0x04204000, 0x04204800, 0x04204400, 0x04204c00),
	AZDUP:     row("dup", gDup, 0x2538c000, 0x05203800, 0x05202000),
	AZDUPM:    row("dupm", gDupm, 0x05c00000),
	AZCPY:     row("cpy", gCpy, 0x05100000, 0x0528a000, 0x05208000),
	AZFDUP:    row("fdup", gFdup, 0x2539c000).on(setHSD),
	AZFCPY:    row("fcpy", gFcpy, 0x0510c000).on(setHSD),
	AZMOV:     row("mov", gMov, 0x2538c000, 0x05203800, 0x05202000, 0x05c00000, 0x05100000, 0x0528a000, 0x05208000, 0x04603000, 0x0520c000, 0x05202000),
	AZFMOV:    row("fmov", gFmov, 0x2539c000, 0x0510c000).on(setHSD),

	AZCMPEQ: row("cmpeq", gCmp, 0x2400a000, 0x24002000, 0x25008000),
	AZCMPNE: row("cmpne", gCmp, 0x2400a010, 0x24002010, 0x25008010),
	AZCMPGE: row("cmpge", gCmp, 0x24008000, 0x24004000, 0x25000000),
	AZCMPGT: row("cmpgt", gCmp, 0x24008010, 0x24004010, 0x25000010),
	AZCMPHI: row("cmphi", gCmpU, 0x24000010, 0x2400c010, 0x24200010),
	AZCMPHS: row("cmphs", gCmpU, 0x24000000, 0x2400c000, 0x24200000),
	AZCMPLE: row("cmple", gCmpRev, 0x25002010, 0x24006010, 0x24008000),
	AZCMPLT: row("cmplt", gCmpRev, 0x25002000, 0x24006000, 0x24008010),
	AZCMPLO: row("cmplo", gCmpRevU, 0x24202000, 0x2400e000, 0x24000010),
	AZCMPLS: row("cmpls", gCmpRevU, 0x24202010, 0x2400e010, 0x24000000),
	AZFCMEQ: row("fcmeq", gFCmp, 0x65006000, 0x65122000).on(setHSD),
	AZFCMNE: row("fcmne", gFCmp, 0x65006010, 0x65132000).on(setHSD),
	AZFCMGE: row("fcmge", gFCmp, 0x65004000, 0x65102000).on(setHSD),
	AZFCMGT: row("fcmgt", gFCmp, 0x65004010, 0x65102010).on(setHSD),
	AZFCMLE: row("fcmle", gFCmpRev, 0x65112010, 0x65004000).on(setHSD),
	AZFCMLT: row("fcmlt", gFCmpRev, 0x65112000, 0x65004010).on(setHSD),
	AZFCMUO: row("fcmuo", gFCmpReg, 0x6500c000).on(setHSD),
	AZFACGE: row("facge", gFCmpReg, 0x6500c010).on(setHSD),
	AZFACGT: row("facgt", gFCmpReg, 0x6500e010).on(setHSD),
	AZFACLE: row("facle", gFCmpReg, 0x6500c010).on(setHSD),
	AZFACLT: row("faclt", gFCmpReg, 0x6500e010).on(setHSD),

	AZSADDV:   row("saddv", gAddv, 0x04002000).on(setBHS),
	AZUADDV:   row("uaddv", gAddv, 0x04012000),
	AZANDV:    row("andv", gReduce, 0x041a2000),
	AZORV:     row("orv", gReduce, 0x04182000),
	AZEORV:    row("eorv", gReduce, 0x04192000),
	AZSMAXV:   row("smaxv", gReduce, 0x04082000),
	AZUMAXV:   row("umaxv", gReduce, 0x04092000),
	AZSMINV:   row("sminv", gReduce, 0x040a2000),
	AZUMINV:   row("uminv", gReduce, 0x040b2000),
	AZFADDV:   row("faddv", gReduce, 0x65002000).on(setHSD),
	AZFMAXV:   row("fmaxv", gReduce, 0x65062000).on(setHSD),
	AZFMINV:   row("fminv", gReduce, 0x65072000).on(setHSD),
	AZFMAXNMV: row("fmaxnmv", gReduce, 0x65042000).on(setHSD),
	AZFMINNMV: row("fminnmv", gReduce, 0x65052000).on(setHSD),
	AZFADDA:   row("fadda", gFadda, 0x65182000).on(setHSD),

	APAND:   row("and", gPLogic, 0x25004000),
	APANDS:  row("ands", gPLogic, 0x25404000),
	APBIC:   row("bic", gPLogic, 0x25004010),
	APBICS:  row("bics", gPLogic, 0x25404010),
	APEOR:   row("eor", gPLogic, 0x25004200),
	APEORS:  row("eors", gPLogic, 0x25404200),
	APNAND:  row("nand", gPLogic, 0x25804210),
	APNANDS: row("nands", gPLogic, 0x25c04210),
	APNOR:   row("nor", gPLogic, 0x25804200),
	APNORS:  row("nors", gPLogic, 0x25c04200),
	APORN:   row("orn", gPLogic, 0x25804010),
	APORNS:  row("orns", gPLogic, 0x25c04010),
	APORR:   row("orr", gPLogic, 0x25804000),
	APORRS:  row("orrs", gPLogic, 0x25c04000),
	APSEL:   row("sel", gPSel, 0x25004210),
	APMOV:   row("mov", gPMov, 0x25804000, 0x25004000, 0x25004210),
	APMOVS:  row("movs", gPMovs, 0x25c04000, 0x25404000),
	APNOT:   row("not", gPNot, 0x25004200),
	APNOTS:  row("nots", gPNot, 0x25404200),
	ABRKA:   row("brka", gBrk, 0x25104000),
	ABRKB:   row("brkb", gBrk, 0x25904000),
	ABRKAS:  row("brkas", gBrks, 0x25504000),
	ABRKBS:  row("brkbs", gBrks, 0x25d04000),
	ABRKN:   row("brkn", gBrkn, 0x25184000),
	ABRKNS:  row("brkns", gBrkn, 0x25584000),
	ABRKPA:  row("brkpa", gPLogic, 0x2500c000),
	ABRKPB:  row("brkpb", gPLogic, 0x2500c010),
	ABRKPAS: row("brkpas", gPLogic, 0x2540c000),
	ABRKPBS: row("brkpbs", gPLogic, 0x2540c010),

	APTRUE:    row("ptrue", gPtrue, 0x2518e000, 0x25207810),
	APTRUES:   row("ptrues", gPtrues, 0x2519e000),
	APFALSE:   row("pfalse", gPfalse, 0x2518e400),
	APRDFFR:   row("rdffr", gRdffr, 0x2518f000, 0x2519f000),
	APRDFFRS:  row("rdffrs", gRdffrs, 0x2558f000),
	APWRFFR:   row("wrffr", gWrffr, 0x25289000),
	ASETFFR:   row("setffr", gNoOps, 0x252c9000),
	APTEST:    row("ptest", gPtest, 0x2550c000),
	APFIRST:   row("pfirst", gPfirst, 0x2558c000),
	APNEXT:    row("pnext", gPnext, 0x2519c400),
	APUNPKLO:  row("punpklo", gPUnpk, 0x05304000),
	APUNPKHI:  row("punpkhi", gPUnpk, 0x05314000),
	APCNTP:    row("cntp", gCntp, 0x25208000, 0x25208200),
	AZINCP:    row("incp", gIncp, 0x252c8800, 0x252c8000),
	AZDECP:    row("decp", gIncp, 0x252d8800, 0x252d8000),
	AWHILELT:  row("whilelt", gWhile, 0x25200400, 0x25204410),
	AWHILELE:  row("whilele", gWhile, 0x25200410, 0x25204418),
	AWHILELO:  row("whilelo", gWhile, 0x25200c00, 0x25204c10),
	AWHILELS:  row("whilels", gWhile, 0x25200c10, 0x25204c18),
	AWHILEGE:  row("whilege", gWhile, 0x25200000, 0x25204010).needs(FeatSVE2),
	AWHILEGT:  row("whilegt", gWhile, 0x25200010, 0x25204018).needs(FeatSVE2),
	AWHILEHS:  row("whilehs", gWhile, 0x25200800, 0x25204810).needs(FeatSVE2),
	AWHILEHI:  row("whilehi", gWhile, 0x25200810, 0x25204818).needs(FeatSVE2),
	ACTERMEQ:  row("ctermeq", gCterm, 0x25a02000),
	ACTERMNE:  row("ctermne", gCterm, 0x25a02010),
	ACNTB:     row("cntb", gCnt, 0x0420e000),
	ACNTH:     row("cnth", gCnt, 0x0460e000),
	ACNTW:     row("cntw", gCnt, 0x04a0e000),
	ACNTD:     row("cntd", gCnt, 0x04e0e000),
	AINCB:     row("incb", gCnt, 0x0430e000),
	ADECB:     row("decb", gCnt, 0x0430e400),
	AINCH:     row("inch", gIncVec, 0x0470e000, 0x0470c000).on(setH),
	ADECH:     row("dech", gIncVec, 0x0470e400, 0x0470c400).on(setH),
	AINCW:     row("incw", gIncVec, 0x04b0e000, 0x04b0c000).on(setS),
	ADECW:     row("decw", gIncVec, 0x04b0e400, 0x04b0c400).on(setS),
	AINCD:     row("incd", gIncVec, 0x04f0e000, 0x04f0c000).on(setD),
	ADECD:     row("decd", gIncVec, 0x04f0e400, 0x04f0c400).on(setD),
	AADDVL:    row("addvl", gAddvl, 0x04205000),
	AADDPL:    row("addpl", gAddvl, 0x04605000),
	ARDVL:     row("rdvl", gRdvl, 0x04bf5000),

	AZLD1B: row("ld1b", gLd1B, 0xa400a000, 0xa4004000, 0xa0400000, 0xa0408000, 0xa0000000, 0xa0008000, 0x84004000, 0xc440c000, 0x8420c000, 0xc420c000).access(0),
	AZLD1H: row("ld1h", gLd1HW, 0xa480a000, 0xa4804000, 0xa0402000, 0xa040a000, 0xa0002000, 0xa000a000, 0x84804000, 0x84a04000, 0xc4c0c000, 0xc4e0c000, 0x84a0c000, 0xc4a0c000).on(setHSD).access(1),
	AZLD1W: row("ld1w", gLd1HW, 0xa500a000, 0xa5004000, 0xa0404000, 0xa040c000, 0xa0004000, 0xa000c000, 0x85004000, 0x85204000, 0xc540c000, 0xc560c000, 0x8520c000, 0xc520c000).on(setSD).access(2),
	AZLD1D: row("ld1d", gLd1D, 0xa580a000, 0xa5804000, 0xa0406000, 0xa040e000, 0xa0006000, 0xa000e000, 0xc5c0c000, 0xc5e0c000, 0xc5a0c000).on(setD).access(3),
	AZST1B: row("st1b", gSt1B, 0xe400e000, 0xe4004000, 0xa0600000, 0xa0608000, 0xa0200000, 0xa0208000, 0xe4408000, 0xe400a000, 0xe460a000, 0xe440a000).access(0),
	AZST1H: row("st1h", gSt1HW, 0xe480e000, 0xe4804000, 0xa0602000, 0xa060a000, 0xa0202000, 0xa020a000, 0xe4c08000, 0xe4e08000, 0xe480a000, 0xe4a0a000, 0xe4e0a000, 0xe4c0a000).on(setHSD).access(1),
	AZST1W: row("st1w", gSt1HW, 0xe500e000, 0xe5004000, 0xa0604000, 0xa060c000, 0xa0204000, 0xa020c000, 0xe5408000, 0xe5608000, 0xe500a000, 0xe520a000, 0xe560a000, 0xe540a000).on(setSD).access(2),
	AZST1D: row("st1d", gSt1D, 0xe580e000, 0xe5804000, 0xa0606000, 0xa060e000, 0xa0206000, 0xa020e000, 0xe580a000, 0xe5a0a000, 0xe5c0a000).on(setD).access(3),
	AZLD2B: row("ld2b", gLd2, 0xa420e000, 0xa420c000).access(0),
	AZLD2H: row("ld2h", gLd2, 0xa4a0e000, 0xa4a0c000).access(1),
	AZLD2W: row("ld2w", gLd2, 0xa520e000, 0xa520c000).access(2),
	AZLD2D: row("ld2d", gLd2, 0xa5a0e000, 0xa5a0c000).access(3),
	AZLD3B: row("ld3b", gLd3, 0xa440e000).access(0),
	AZLD3H: row("ld3h", gLd3, 0xa4c0e000).access(1),
	AZLD3W: row("ld3w", gLd3, 0xa540e000).access(2),
	AZLD3D: row("ld3d", gLd3, 0xa5c0e000).access(3),
	AZLD4B: row("ld4b", gLd4, 0xa460e000, 0xa460c000).access(0),
	AZLD4H: row("ld4h", gLd4, 0xa4e0e000, 0xa4e0c000).access(1),
	AZLD4W: row("ld4w", gLd4, 0xa560e000, 0xa560c000).access(2),
	AZLD4D: row("ld4d", gLd4, 0xa5e0e000, 0xa5e0c000).access(3),
	AZST2B: row("st2b", gSt2, 0xe430e000, 0xe4206000).access(0),
	AZST2H: row("st2h", gSt2, 0xe4b0e000, 0xe4a06000).access(1),
	AZST2W: row("st2w", gSt2, 0xe530e000, 0xe5206000).access(2),
	AZST2D: row("st2d", gSt2, 0xe5b0e000, 0xe5a06000).access(3),
	AZST3B: row("st3b", gSt3, 0xe450e000).access(0),
	AZST3H: row("st3h", gSt3, 0xe4d0e000).access(1),
	AZST3W: row("st3w", gSt3, 0xe550e000).access(2),
	AZST3D: row("st3d", gSt3, 0xe5d0e000).access(3),
	AZST4B: row("st4b", gSt4, 0xe470e000, 0xe4606000).access(0),
	AZST4H: row("st4h", gSt4, 0xe4f0e000, 0xe4e06000).access(1),
	AZST4W: row("st4w", gSt4, 0xe570e000, 0xe5606000).access(2),
	AZST4D: row("st4d", gSt4, 0xe5f0e000, 0xe5e06000).access(3),
	AZLDR:  row("ldr", gFill, 0x85804000, 0x85800000).access(0),
	AZSTR:  row("str", gFill, 0xe5804000, 0xe5800000).access(0),
	APRFB:  row("prfb", gPrefetch, 0x85c00000, 0x8400c000).access(0),
	APRFH:  row("prfh", gPrefetch, 0x85c02000, 0x8480c000).access(1),
	APRFW:  row("prfw", gPrefetch, 0x85c04000, 0x8500c000).access(2),
	APRFD:  row("prfd", gPrefetch, 0x85c06000, 0x8580c000).access(3),
}

func init() {
	for op := AXXX + 1; op < numOps; op++ {
		o := &optab[op]
		if o.name == "" {
			panic(fmt.Sprintf("sve: opcode %d has no table row", op))
		}
		if len(o.group) != len(o.bits) {
			panic(fmt.Sprintf("sve: %s: %d formats but %d encodings", o.name, len(o.group), len(o.bits)))
		}
	}
}

func (op Op) String() string {
	if op > AXXX && op < numOps {
		return optab[op].name
	}
	return fmt.Sprintf("op(%d)", uint16(op))
}

// Group returns the canonical grouping of op.
func (op Op) Group() []Format {
	if op <= AXXX || op >= numOps {
		return nil
	}
	return optab[op].group
}

// Feature returns the extension op belongs to.
func (op Op) Feature() Feature {
	if op <= AXXX || op >= numOps {
		return FeatSVE
	}
	return optab[op].feat
}

// Conversion encodings, keyed by the floating-point element then the
// integer element.
var intFpBits = map[[2]Opt]uint32{
	{ArrH, ArrH}: 0x420000,
	{ArrH, ArrS}: 0x440000,
	{ArrH, ArrD}: 0x460000,
	{ArrS, ArrS}: 0x840000,
	{ArrD, ArrS}: 0xc00000,
	{ArrS, ArrD}: 0xc40000,
	{ArrD, ArrD}: 0xc60000,
}

// FCVT encodings, keyed by destination then source element.
var fcvtBits = map[[2]Opt]uint32{
	{ArrH, ArrS}: 0x800000,
	{ArrS, ArrH}: 0x810000,
	{ArrH, ArrD}: 0xc00000,
	{ArrD, ArrH}: 0xc10000,
	{ArrS, ArrD}: 0xc20000,
	{ArrD, ArrS}: 0xc30000,
}

// convBits returns the opc and size fields of a conversion.
func convBits(op Op, o Opt) (uint32, bool) {
	dst, src := o.convElems()
	if dst == OptNone {
		return 0, false
	}
	var b uint32
	var ok bool
	switch op {
	case AZSCVTF, AZUCVTF:
		b, ok = intFpBits[[2]Opt{dst, src}]
	case AZFCVTZS, AZFCVTZU:
		b, ok = intFpBits[[2]Opt{src, dst}]
	case AZFCVT:
		b, ok = fcvtBits[[2]Opt{dst, src}]
	}
	return b, ok
}
