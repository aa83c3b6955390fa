// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"github.com/dotnet/runtime-sub004/internal/obj/sve/imm"
)

// Pack returns the 32-bit encoding of in: the opcode's base pattern for
// the format with every operand field ORed on top. in must have passed
// Verify; Pack panics on a descriptor it cannot encode.
func Pack(in *Instr) uint32 {
	base, err := baseBits(in.Op, in.Fmt)
	if err != nil {
		fatal(err)
	}
	return base | in.Fmt.info().pack(in)
}

// Verify checks that in is a descriptor the builder could have produced:
// the opcode has an encoding in the format, every operand fits its field,
// and the allocation variant matches the immediate.
func Verify(in *Instr) error {
	if in.Op <= AXXX || in.Op >= numOps {
		return badf(in, "unknown opcode")
	}
	if in.Fmt.info() == nil {
		return badf(in, "unknown format")
	}
	if _, err := baseBits(in.Op, in.Fmt); err != nil {
		return err
	}
	if err := in.Fmt.info().check(in); err != nil {
		return err
	}
	switch in.kind {
	case kindSmall:
		if in.Imm != 0 {
			return badf(in, "small descriptor carries immediate %d", in.Imm)
		}
	case kindSmallCns:
		if !imm.FitsSigned(in.Imm, smallCnsBits) {
			return badf(in, "immediate %d does not fit a small descriptor", in.Imm)
		}
	case kindCns:
	default:
		return badf(in, "unknown descriptor kind %d", in.kind)
	}
	return nil
}
