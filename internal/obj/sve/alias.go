// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import "github.com/dotnet/runtime-sub004/internal/obj/sve/imm"

// preferredAlias rewrites a descriptor to the mnemonic a disassembler
// prefers for its encoding. It runs once, after the format and immediate
// are settled, and the result is what gets stored: every later lookup is
// keyed by the alias, whose table row carries the same encodings.
func preferredAlias(in Instr) Instr {
	switch in.Op {
	// DUPM keeps its name when DUP could have written the same value.
	case AZDUPM:
		if !dupEncodable(&in) {
			in.Op = AZMOV
		}

	case AZDUP, AZCPY, AZMOV:
		in.Op = AZMOV
		// Element zero is the scalar register the vector overlaps.
		if in.Fmt == F_ZdT_ZnTIdx {
			if _, index := imm.DecodeBroadcastIndex(in.Imm); index == 0 {
				in.Fmt = F_ZdT_Vn
			}
		}

	case AZFDUP, AZFCPY:
		in.Op = AZFMOV

	case AZORR:
		if in.Fmt == F_ZdD_ZnD_ZmD && in.Reg[1] == in.Reg[2] {
			in.Op, in.Fmt = AZMOV, F_ZdD_ZnD
			in.Reg[2] = RegNone
		}

	case AZSEL:
		if in.Reg[3] == in.Reg[0] {
			in.Op, in.Fmt = AZMOV, F_ZdT_PgM_ZnT_Sel
			in.Reg[3] = RegNone
			in.Merge = true
		}

	case APORR, APORRS:
		if in.Reg[1] == in.Reg[2] && in.Reg[2] == in.Reg[3] {
			in.Op = pick(in.Op == APORRS, APMOVS, APMOV)
			in.Fmt = F_PdB_PnB
			in.Reg = [4]Reg{in.Reg[0], in.Reg[2]}
		}

	case APAND, APANDS:
		if in.Reg[2] == in.Reg[3] {
			in.Op = pick(in.Op == APANDS, APMOVS, APMOV)
			in.Fmt = F_PdB_PgZ_PnB_Dup
			in.Reg[3] = RegNone
		}

	case APEOR, APEORS:
		if in.Reg[3] == in.Reg[1] {
			in.Op = pick(in.Op == APEORS, APNOTS, APNOT)
			in.Fmt = F_PdB_PgZ_PnB_Not
			in.Reg[3] = RegNone
		}

	case APSEL:
		if in.Reg[3] == in.Reg[0] {
			in.Op, in.Fmt = APMOV, F_PdB_PgM_PnB_Sel
			in.Reg[3] = RegNone
			in.Merge = true
		}

	// The complement was taken when the immediate was encoded.
	case AZBIC:
		if in.Fmt == F_ZdnT_ZdnT_Bitmask {
			in.Op = AZAND
		}
	case AZORN:
		in.Op = AZORR
	case AZEON:
		in.Op = AZEOR

	case AZCMPLE, AZCMPLT, AZCMPLO, AZCMPLS, AZFCMLE, AZFCMLT, AZFACLE, AZFACLT:
		if in.Fmt == F_PdT_PgZ_ZnT_ZmT {
			in.Op = swappedCompare[in.Op]
			in.Reg[2], in.Reg[3] = in.Reg[3], in.Reg[2]
		}
	}
	return in
}

// swappedCompare maps the compares that exist only as aliases in their
// register form to the compare with the operands exchanged.
var swappedCompare = map[Op]Op{
	AZCMPLE: AZCMPGE,
	AZCMPLT: AZCMPGT,
	AZCMPLO: AZCMPHI,
	AZCMPLS: AZCMPHS,
	AZFCMLE: AZFCMGE,
	AZFCMLT: AZFCMGT,
	AZFACLE: AZFACGE,
	AZFACLT: AZFACGT,
}

// dupEncodable reports whether the logical immediate of in, read as a
// signed element, has an 8-bit DUP encoding.
func dupEncodable(in *Instr) bool {
	v, ok := imm.DecodeBitmask(uint32(in.Imm))
	if !ok {
		return false
	}
	esize := in.Opt.ElemBits()
	x := int64(v<<(64-esize)) >> (64 - esize)
	_, _, ok = imm.EncodeImm8Shifted(x, true, esize > 8)
	return ok
}

func pick(c bool, a, b Op) Op {
	if c {
		return a
	}
	return b
}

// complemented reports whether op takes the inverse of its logical
// immediate.
func complemented(op Op) bool {
	switch op {
	case AZBIC, AZORN, AZEON:
		return true
	}
	return false
}
