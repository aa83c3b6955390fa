// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

// Perf is a scheduling estimate for one instruction.
type Perf struct {
	// Latency is the number of cycles from issue until the result is
	// available to a dependent instruction.
	Latency float64

	// Throughput is the reciprocal throughput: cycles per instruction
	// when independent instructions of the same kind issue back to back.
	Throughput float64

	// Approx marks a placeholder for instructions with no measured
	// figures.
	Approx bool
}

// Figures follow the published software optimization guides for
// 256-bit SVE cores. Only relative order matters to the scheduler.
var (
	perfALU     = Perf{Latency: 2, Throughput: 0.5}
	perfLogic   = Perf{Latency: 2, Throughput: 0.5}
	perfShift   = Perf{Latency: 2, Throughput: 0.5}
	perfMul     = Perf{Latency: 4, Throughput: 0.5}
	perfDot     = Perf{Latency: 3, Throughput: 0.5}
	perfMatMul  = Perf{Latency: 3, Throughput: 1}
	perfFAdd    = Perf{Latency: 2, Throughput: 0.5}
	perfFMul    = Perf{Latency: 3, Throughput: 0.5}
	perfFMla    = Perf{Latency: 4, Throughput: 0.5}
	perfFCmla   = Perf{Latency: 5, Throughput: 1}
	perfFCvt    = Perf{Latency: 3, Throughput: 1}
	perfFRound  = Perf{Latency: 3, Throughput: 1}
	perfFEst    = Perf{Latency: 4, Throughput: 1}
	perfPermute = Perf{Latency: 2, Throughput: 0.5}
	perfMove    = Perf{Latency: 2, Throughput: 0.5}
	perfFromGPR = Perf{Latency: 3, Throughput: 1}
	perfToGPR   = Perf{Latency: 5, Throughput: 1}
	perfCompare = Perf{Latency: 2, Throughput: 0.5}
	perfReduce  = Perf{Latency: 4, Throughput: 1}
	perfFReduce = Perf{Latency: 8, Throughput: 2}
	perfPred    = Perf{Latency: 1, Throughput: 0.5}
	perfPredS   = Perf{Latency: 2, Throughput: 1}
	perfFFR     = Perf{Latency: 2, Throughput: 1}
	perfWhile   = Perf{Latency: 3, Throughput: 1}
	perfCount   = Perf{Latency: 2, Throughput: 0.5}
	perfCountP  = Perf{Latency: 4, Throughput: 1}
	perfLoad    = Perf{Latency: 6, Throughput: 0.5}
	perfLoadN   = Perf{Latency: 8, Throughput: 1}
	perfGather  = Perf{Latency: 9, Throughput: 2}
	perfGatherD = Perf{Latency: 9, Throughput: 1}
	perfStore   = Perf{Latency: 2, Throughput: 1}
	perfStoreN  = Perf{Latency: 4, Throughput: 2}
	perfScatter = Perf{Latency: 4, Throughput: 4}
	perfPrefch  = Perf{Latency: 1, Throughput: 0.5}
	perfFill    = Perf{Latency: 6, Throughput: 1}
	perfSpill   = Perf{Latency: 2, Throughput: 1}

	perfDefault = Perf{Latency: 2, Throughput: 1, Approx: true}
)

// opPerf holds the opcodes whose cost does not depend on the format or
// element size.
var opPerf = map[Op]Perf{}

func costs(p Perf, ops ...Op) {
	for _, op := range ops {
		opPerf[op] = p
	}
}

func init() {
	costs(perfALU, AZADD, AZSUB, AZSUBR, AZSMAX, AZSMIN, AZUMAX, AZUMIN,
		AZSABD, AZUABD, AZSQADD, AZUQADD, AZSQSUB, AZUQSUB, AZABS, AZNEG,
		AZCLS, AZCLZ, AZCNT, AZCNOT, AZSXTB, AZUXTB, AZSXTH, AZUXTH, AZSXTW,
		AZUXTW, AZINDEX)
	costs(perfLogic, AZAND, AZORR, AZEOR, AZBIC, AZORN, AZEON, AZEOR3,
		AZBCAX, AZBSL, AZNBSL, AZNOT)
	costs(perfShift, AZASR, AZLSR, AZLSL, AZASRR, AZLSRR, AZLSLR, AZRBIT)
	costs(Perf{Latency: 4, Throughput: 1}, AZASRD, AZSABA, AZUABA)
	costs(Perf{Latency: 6, Throughput: 2}, AZBDEP, AZBEXT, AZBGRP)
	costs(perfMul, AZMUL, AZSMULH, AZUMULH, AZMLA, AZMLS, AZMAD, AZMSB)
	costs(perfDot, AZSDOT, AZUDOT, AZUSDOT, AZBFDOT)
	costs(perfMatMul, AZSMMLA, AZUMMLA, AZUSMMLA, AZBFMMLA)
	costs(Perf{Latency: 5, Throughput: 1}, AZBFMLALB, AZBFMLALT)
	costs(perfFAdd, AZFADD, AZFSUB, AZFSUBR, AZFABD, AZFMAX, AZFMIN,
		AZFMAXNM, AZFMINNM, AZFABS, AZFNEG, AZFCADD, AZCADD, AZFTSSEL,
		AZFEXPA)
	costs(perfFMul, AZFMUL, AZFMULX, AZFSCALE, AZFTSMUL)
	costs(perfFMla, AZFMLA, AZFMLS, AZFNMLA, AZFNMLS, AZFMAD, AZFMSB,
		AZFNMAD, AZFNMSB, AZFTMAD, AZFRECPS, AZFRSQRTS)
	costs(perfFCmla, AZFCMLA, AZCMLA)
	costs(perfFCvt, AZSCVTF, AZUCVTF, AZFCVTZS, AZFCVTZU, AZFCVT, AZBFCVT,
		AZBFCVTNT)
	costs(perfFRound, AZFRINTN, AZFRINTP, AZFRINTM, AZFRINTZ, AZFRINTA,
		AZFRINTX, AZFRINTI, AZFRECPX)
	costs(perfFEst, AZFRECPE, AZFRSQRTE)
	costs(perfPermute, AZTBL, AZZIP1, AZZIP2, AZUZP1, AZUZP2, AZTRN1,
		AZTRN2, AZREV, AZREVB, AZREVH, AZREVW, AZSUNPKLO, AZSUNPKHI,
		AZUUNPKLO, AZUUNPKHI, AZSPLICE, AZEXT, AZSEL)
	costs(Perf{Latency: 3, Throughput: 1}, AZCOMPACT)
	costs(perfMove, AZMOVPRFX, AZDUPM, AZFDUP, AZFCPY, AZFMOV)
	costs(perfCompare, AZCMPEQ, AZCMPNE, AZCMPGE, AZCMPGT, AZCMPHI,
		AZCMPHS, AZCMPLE, AZCMPLT, AZCMPLO, AZCMPLS, AZFCMEQ, AZFCMNE,
		AZFCMGE, AZFCMGT, AZFCMLE, AZFCMLT, AZFCMUO, AZFACGE, AZFACGT,
		AZFACLE, AZFACLT)
	costs(perfReduce, AZSADDV, AZUADDV, AZANDV, AZORV, AZEORV, AZSMAXV,
		AZUMAXV, AZSMINV, AZUMINV)
	costs(perfFReduce, AZFADDV, AZFMAXV, AZFMINV, AZFMAXNMV, AZFMINNMV)
	costs(perfPred, APAND, APBIC, APEOR, APNAND, APNOR, APORN, APORR,
		APSEL, APMOV, APNOT, APTRUE, APFALSE, APUNPKLO, APUNPKHI, ABRKA,
		ABRKB, ABRKN, ABRKPA, ABRKPB)
	costs(perfPredS, APANDS, APBICS, APEORS, APNANDS, APNORS, APORNS,
		APORRS, APMOVS, APNOTS, APTRUES, ABRKAS, ABRKBS, ABRKNS, ABRKPAS,
		ABRKPBS, APTEST, APFIRST, APNEXT)
	costs(perfFFR, APRDFFR, APRDFFRS, APWRFFR, ASETFFR)
	costs(perfWhile, AWHILELT, AWHILELE, AWHILELO, AWHILELS, AWHILEGE,
		AWHILEGT, AWHILEHS, AWHILEHI)
	costs(Perf{Latency: 1, Throughput: 1}, ACTERMEQ, ACTERMNE)
	costs(perfCount, ACNTB, ACNTH, ACNTW, ACNTD, AINCB, ADECB, AINCH,
		ADECH, AINCW, ADECW, AINCD, ADECD, AADDVL, AADDPL, ARDVL)
	costs(perfCountP, APCNTP, AZINCP, AZDECP)
	costs(perfPrefch, APRFB, APRFH, APRFW, APRFD)
}

// Cost returns the scheduling estimate for in. Opcodes whose cost
// depends on the element size or the addressing form are resolved first;
// everything else comes from the opcode table, and anything unlisted gets
// an estimate marked Approx.
func Cost(in *Instr) Perf {
	if p, ok := sizedCost(in); ok {
		return p
	}
	if p, ok := memCost(in); ok {
		return p
	}
	if p, ok := moveCost(in); ok {
		return p
	}
	if p, ok := opPerf[in.Op]; ok {
		return p
	}
	return perfDefault
}

// sizedCost covers the iterative units, whose cost grows with the
// element width.
func sizedCost(in *Instr) (Perf, bool) {
	switch in.Op {
	case AZSDIV, AZUDIV, AZSDIVR, AZUDIVR:
		if in.Opt == ArrD {
			return Perf{Latency: 20, Throughput: 20}, true
		}
		return Perf{Latency: 12, Throughput: 12}, true
	case AZFDIV, AZFDIVR:
		switch in.Opt {
		case ArrH:
			return Perf{Latency: 13, Throughput: 10}, true
		case ArrS:
			return Perf{Latency: 10, Throughput: 5}, true
		}
		return Perf{Latency: 15, Throughput: 13}, true
	case AZFSQRT:
		switch in.Opt {
		case ArrH:
			return Perf{Latency: 13, Throughput: 12}, true
		case ArrS:
			return Perf{Latency: 10, Throughput: 9}, true
		}
		return Perf{Latency: 16, Throughput: 15}, true
	case AZFADDA:
		// Strictly ordered, one element at a time.
		switch in.Opt {
		case ArrH:
			return Perf{Latency: 19, Throughput: 18}, true
		case ArrS:
			return Perf{Latency: 11, Throughput: 10}, true
		}
		return Perf{Latency: 8, Throughput: 3}, true
	case AZFMMLA:
		if in.Opt == ArrD {
			return Perf{Latency: 5, Throughput: 2}, true
		}
		return Perf{Latency: 5, Throughput: 1}, true
	}
	return Perf{}, false
}

// memCost classifies loads and stores by addressing form.
func memCost(in *Instr) (Perf, bool) {
	if in.Op <= AXXX || in.Op >= numOps || !optab[in.Op].mem {
		return Perf{}, false
	}
	switch in.Fmt {
	case F_ZtS_PgZ_XnSP_ZmS_Ext, F_ZtS_PgZ_XnSP_ZmS_ExtScaled, F_ZtS_PgZ_ZnS_Imm5:
		return perfGather, true
	case F_ZtD_PgZ_XnSP_ZmD, F_ZtD_PgZ_XnSP_ZmD_Lsl, F_ZtD_PgZ_ZnD_Imm5:
		return perfGatherD, true
	case F_ZtS_Pg_XnSP_ZmS_Ext, F_ZtS_Pg_XnSP_ZmS_ExtScaled, F_ZtS_Pg_ZnS_Imm5,
		F_ZtD_Pg_XnSP_ZmD, F_ZtD_Pg_XnSP_ZmD_Lsl, F_ZtD_Pg_ZnD_Imm5:
		return perfScatter, true
	case F_Zt_XnSP_Simm9MulVL, F_Pt_XnSP_Simm9MulVL:
		if in.Op == AZSTR {
			return perfSpill, true
		}
		return perfFill, true
	case F_Prfop_Pg_XnSP_Simm6MulVL, F_Prfop_Pg_XnSP_Xm:
		return perfPrefch, true
	}
	n := regCount(in.Fmt)
	switch {
	case isStore(in.Op) && n > 1:
		return Perf{Latency: perfStoreN.Latency, Throughput: perfStoreN.Throughput * float64(n) / 2}, true
	case isStore(in.Op):
		return perfStore, true
	case n > 1:
		return Perf{Latency: perfLoadN.Latency, Throughput: perfLoadN.Throughput * float64(n) / 2}, true
	}
	return perfLoad, true
}

// moveCost separates the MOV forms, which cost what the encoding they
// stand for costs.
func moveCost(in *Instr) (Perf, bool) {
	switch in.Fmt {
	case F_ZdT_Rn, F_ZdT_PgM_Rn, F_ZdnT_Rm, F_ZdT_Rn_Simm5, F_ZdT_Simm5_Rm, F_ZdT_Rn_Rm:
		return perfFromGPR, true
	case F_Rd_Pg_ZnT, F_Rdn_Pg_Rdn_ZmT:
		return perfToGPR, true
	case F_ZdT_ZnTIdx, F_ZdT_Vn, F_ZdT_PgM_Vn, F_ZdnT_Vm, F_Vd_Pg_ZnT, F_Vdn_Pg_Vdn_ZmT:
		return perfPermute, true
	}
	switch in.Op {
	case AZDUP, AZCPY, AZMOV, AZINSR, AZCLASTA, AZCLASTB, AZLASTA, AZLASTB:
		return perfMove, true
	}
	return Perf{}, false
}

func isStore(op Op) bool {
	switch op {
	case AZST1B, AZST1H, AZST1W, AZST1D,
		AZST2B, AZST2H, AZST2W, AZST2D,
		AZST3B, AZST3H, AZST3W, AZST3D,
		AZST4B, AZST4H, AZST4W, AZST4D,
		AZSTR:
		return true
	}
	return false
}

// regCount returns the length of the register list a memory format
// transfers.
func regCount(f Format) int {
	fi := f.info()
	if fi == nil {
		return 0
	}
	for _, fl := range fi.fields {
		if l, ok := fl.(zlist); ok {
			return l.count
		}
	}
	return 1
}
