// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/dotnet/runtime-sub004/internal/obj"
)

// slabSize is the number of descriptors a Group allocates at once.
const slabSize = 64

// A Group is an in-memory instruction group. It allocates descriptors
// from slabs and keeps them in append order.
type Group struct {
	slab   []Instr
	instrs []*Instr

	// Allocations per descriptor kind.
	allocs [3]int
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{}
}

func (g *Group) next(k descKind) *Instr {
	if len(g.slab) == 0 {
		g.slab = make([]Instr, slabSize)
	}
	p := &g.slab[0]
	g.slab = g.slab[1:]
	g.allocs[k]++
	return p
}

// NewSmall allocates a descriptor with no immediate.
func (g *Group) NewSmall() *Instr { return g.next(kindSmall) }

// NewSmallCns allocates a descriptor whose immediate fits in 16 bits.
func (g *Group) NewSmallCns(imm int64) *Instr { return g.next(kindSmallCns) }

// NewCns allocates a descriptor with a full-width immediate.
func (g *Group) NewCns(imm int64) *Instr { return g.next(kindCns) }

// Append adds in to the end of the group.
func (g *Group) Append(in *Instr) {
	g.instrs = append(g.instrs, in)
}

// Instrs returns the descriptors in append order. The slice aliases the
// group.
func (g *Group) Instrs() []*Instr { return g.instrs }

func (g *Group) Len() int { return len(g.instrs) }

// Allocs reports how many descriptors of each variant were allocated.
func (g *Group) Allocs() (small, smallCns, cns int) {
	return g.allocs[kindSmall], g.allocs[kindSmallCns], g.allocs[kindCns]
}

// Verify runs the sanity checker over every descriptor in the group and
// returns the first failure.
func (g *Group) Verify() error {
	for i, in := range g.instrs {
		if err := Verify(in); err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
	}
	return nil
}

// Emit packs every descriptor in order and writes the words to w. A
// descriptor that cannot be packed stops the emission.
func (g *Group) Emit(w obj.WordWriter) error {
	for i, in := range g.instrs {
		var word uint32
		if err := Catch(func() { word = Pack(in) }); err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
		w.EmitWord(word)
	}
	return nil
}

// Listing returns one line per descriptor: the encoding in hex and its
// disassembly. Like Emit, it stops at a descriptor that cannot be packed.
func (g *Group) Listing() (string, error) {
	var b strings.Builder
	for i, in := range g.instrs {
		var word uint32
		if err := Catch(func() { word = Pack(in) }); err != nil {
			return "", errors.Wrapf(err, "instruction %d", i)
		}
		fmt.Fprintf(&b, "%08x  %s\n", word, Disasm(in))
	}
	return b.String(), nil
}
