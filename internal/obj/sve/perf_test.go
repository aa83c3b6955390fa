// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *Emitter)
		want Perf
	}{
		{"add", func(e *Emitter) { e.InsRRR(AZADD, ArrS, Z0, Z1, Z2, SoptNone) }, Perf{Latency: 2, Throughput: 0.5}},
		{"sdiv s", func(e *Emitter) { e.InsRRR(AZSDIV, ArrS, Z0, P0, Z1, SoptNone) }, Perf{Latency: 12, Throughput: 12}},
		{"sdiv d", func(e *Emitter) { e.InsRRR(AZSDIV, ArrD, Z0, P0, Z1, SoptNone) }, Perf{Latency: 20, Throughput: 20}},
		{"contiguous load", func(e *Emitter) { e.InsRRR(AZLD1W, ArrS, Z0, P1, R2, SoptNone) }, Perf{Latency: 6, Throughput: 0.5}},
		{"two-register load", func(e *Emitter) { e.InsRRR(AZLD2B, OptNone, Z0, P1, R2, SoptNone) }, Perf{Latency: 8, Throughput: 1}},
		{"four-register load", func(e *Emitter) { e.InsRRRR(AZLD4D, OptNone, Z0, P1, R2, R3, SoptNone) }, Perf{Latency: 8, Throughput: 2}},
		{"contiguous store", func(e *Emitter) { e.InsRRR(AZST1B, ArrB, Z0, P1, R2, SoptNone) }, Perf{Latency: 2, Throughput: 1}},
		{"three-register store", func(e *Emitter) { e.InsRRR(AZST3B, OptNone, Z0, P1, R2, SoptNone) }, Perf{Latency: 4, Throughput: 3}},
		{"word gather", func(e *Emitter) { e.InsRRRR(AZLD1W, ExtUXTW, Z0, P1, R2, Z3, SoptNone) }, Perf{Latency: 9, Throughput: 2}},
		{"doubleword gather", func(e *Emitter) { e.InsRRRR(AZLD1D, OptNone, Z0, P1, R2, Z3, SoptNone) }, Perf{Latency: 9, Throughput: 1}},
		{"scatter", func(e *Emitter) { e.InsRRRR(AZST1W, ExtSXTW, Z0, P1, R2, Z3, SoptScaled) }, Perf{Latency: 4, Throughput: 4}},
		{"spill", func(e *Emitter) { e.InsRRI(AZSTR, OptNone, Z3, R4, 5, SoptNone) }, Perf{Latency: 2, Throughput: 1}},
		{"fill", func(e *Emitter) { e.InsRR(AZLDR, OptNone, P3, R4, SoptNone) }, Perf{Latency: 6, Throughput: 1}},
		{"prefetch", func(e *Emitter) { e.InsPrefetchRRI(APRFB, PLDL1KEEP, P1, R2, 0) }, Perf{Latency: 1, Throughput: 0.5}},
		{"broadcast general register", func(e *Emitter) { e.InsRR(AZDUP, ArrS, Z0, W1, SoptNone) }, Perf{Latency: 3, Throughput: 1}},
		{"extract to general register", func(e *Emitter) { e.InsRRR(AZLASTA, ArrB, W1, P2, Z3, SoptNone) }, Perf{Latency: 5, Throughput: 1}},
		{"broadcast lane", func(e *Emitter) { e.InsRRI(AZDUP, ArrS, Z0, Z1, 1, SoptNone) }, Perf{Latency: 2, Throughput: 0.5}},
		{"move immediate", func(e *Emitter) { e.InsRI(AZDUP, ArrS, Z0, 1, SoptNone) }, Perf{Latency: 2, Throughput: 0.5}},
		{"element count", func(e *Emitter) { e.InsRPattern(AINCW, OptNone, R0, PatALL) }, Perf{Latency: 2, Throughput: 0.5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := one(t, test.emit)
			assert.Equal(t, test.want, Cost(in), Disasm(in))
		})
	}
}

func TestCostBySize(t *testing.T) {
	tests := []struct {
		op   Op
		opt  Opt
		want Perf
	}{
		{AZUDIV, ArrS, Perf{Latency: 12, Throughput: 12}},
		{AZFDIV, ArrH, Perf{Latency: 13, Throughput: 10}},
		{AZFDIV, ArrS, Perf{Latency: 10, Throughput: 5}},
		{AZFDIV, ArrD, Perf{Latency: 15, Throughput: 13}},
		{AZFSQRT, ArrH, Perf{Latency: 13, Throughput: 12}},
		{AZFSQRT, ArrD, Perf{Latency: 16, Throughput: 15}},
		{AZFADDA, ArrH, Perf{Latency: 19, Throughput: 18}},
		{AZFADDA, ArrS, Perf{Latency: 11, Throughput: 10}},
		{AZFADDA, ArrD, Perf{Latency: 8, Throughput: 3}},
		{AZFMMLA, ArrS, Perf{Latency: 5, Throughput: 1}},
		{AZFMMLA, ArrD, Perf{Latency: 5, Throughput: 2}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Cost(&Instr{Op: test.op, Opt: test.opt}), "%v %v", test.op, test.opt)
	}
}

func TestCostCoverage(t *testing.T) {
	assert.True(t, Cost(&Instr{}).Approx)
	for op := AXXX + 1; op < numOps; op++ {
		p := Cost(&Instr{Op: op})
		assert.False(t, p.Approx, "%v has no cost", op)
		assert.Positive(t, p.Latency, op.String())
	}
}
