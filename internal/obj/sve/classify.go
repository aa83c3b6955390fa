// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

// classify returns the column of f in the canonical grouping of op.
func classify(op Op, f Format) (int, error) {
	if op <= AXXX || op >= numOps {
		return -1, assertf(op, f, "unknown opcode")
	}
	for i, g := range optab[op].group {
		if g == f {
			return i, nil
		}
	}
	return -1, assertf(op, f, "format not in canonical grouping")
}

// baseBits returns the fixed bits of op encoded in format f.
func baseBits(op Op, f Format) (uint32, error) {
	i, err := classify(op, f)
	if err != nil {
		return badCode, err
	}
	b := optab[op].bits[i]
	if b == badCode {
		return badCode, assertf(op, f, "no encoding")
	}
	return b, nil
}

// A shape is what a builder entry point was handed, before any format is
// chosen.
type shape struct {
	via  entry
	regs [4]Reg
	sopt ScalableOpt
}

func (s *shape) matches(fi *formatInfo) bool {
	if fi.via != s.via || fi.sopt != s.sopt.shape() {
		return false
	}
	for n, r := range s.regs {
		if r.Class() != fi.class[n] {
			return false
		}
	}
	return true
}

// accepts reports whether the draft descriptor fits fi for an opcode
// restricted to elems.
func (fi *formatInfo) accepts(draft *Instr, elems optSet) bool {
	if fi.accept != nil && !fi.accept(draft) {
		return false
	}
	if fi.typed {
		if !fi.allow.has(draft.Opt) {
			return false
		}
		if elems != 0 && !elems.has(draft.Opt) {
			return false
		}
	}
	return true
}

// selectFormat picks the first format in the canonical grouping of op that
// fits the shape, the same way an assembler tries encodings in table
// order. Formats of extensions missing from feats are skipped; if only
// such formats fit, the error wraps ErrNotImplemented.
func selectFormat(op Op, s *shape, draft *Instr, feats FeatureSet) (Format, error) {
	if op <= AXXX || op >= numOps {
		return F_none, assertf(op, F_none, "unknown opcode")
	}
	o := &optab[op]
	if !feats.Has(o.feat) {
		return F_none, notImplemented(op, F_none, o.feat)
	}
	gated, gatedBy := F_none, FeatSVE
	for _, f := range o.group {
		fi := &formatTab[f]
		if !s.matches(fi) || !fi.accepts(draft, o.elems) {
			continue
		}
		if fi.feat != FeatSVE && !feats.Has(fi.feat) {
			if gated == F_none {
				gated, gatedBy = f, fi.feat
			}
			continue
		}
		return f, nil
	}
	if gated != F_none {
		return F_none, notImplemented(op, gated, gatedBy)
	}
	return F_none, assertf(op, F_none, "no %s format for %v operands%s", s.via, s.classes(), s.describe(draft))
}

func (s *shape) classes() []RegClass {
	var cs []RegClass
	for _, r := range s.regs {
		if r == RegNone {
			break
		}
		cs = append(cs, r.Class())
	}
	return cs
}

func (s *shape) describe(draft *Instr) string {
	d := ""
	if draft.Opt != OptNone {
		d += " with " + draft.Opt.String()
	}
	if s.sopt != SoptNone {
		d += " (" + s.sopt.String() + ")"
	}
	return d
}
