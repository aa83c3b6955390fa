// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

// Disasm renders in the way a disassembler prints its encoding: the
// mnemonic of the preferred alias, a space, and the operands separated by
// ", ". Operand text comes from the same field list the packer uses.
func Disasm(in *Instr) string {
	fi := in.Fmt.info()
	if fi == nil {
		return in.Op.String()
	}
	ops := fi.operands(in)
	if ops == "" {
		return in.Op.String()
	}
	return in.Op.String() + " " + ops
}
