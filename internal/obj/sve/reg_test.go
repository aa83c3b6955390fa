// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegString(t *testing.T) {
	tests := []struct {
		r    Reg
		want string
	}{
		{R0, "x0"},
		{R0 + 30, "x30"},
		{RZR, "xzr"},
		{RSP, "sp"},
		{W0 + 7, "w7"},
		{WZR, "wzr"},
		{WSP, "wsp"},
		{Z0 + 31, "z31"},
		{V1, "z1"},
		{P0 + 15, "p15"},
		{PN8, "p8"},
		{RegNone, "none"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.r.String())
	}
}

func TestRegViews(t *testing.T) {
	assert.Equal(t, Z1, V1)
	assert.Equal(t, P8, PN8)

	assert.True(t, W3.IsW())
	assert.False(t, R3.IsW())
	assert.Equal(t, R3, W3.X())
	assert.Equal(t, RSP, WSP.X())
	assert.Equal(t, Z3, Z3.X())
	assert.Equal(t, 3, W3.Num())

	assert.True(t, WZR.isZR())
	assert.True(t, WSP.isSP())
	assert.False(t, RZR.isSP())

	// SP and ZR share field value 31 but stay distinct registers.
	assert.Equal(t, uint32(31), RSP.enc())
	assert.Equal(t, uint32(31), RZR.enc())
	assert.NotEqual(t, RSP.Num(), RZR.Num())
	assert.Equal(t, uint32(30), (R0 + 30).enc())
}

func TestRegClasses(t *testing.T) {
	assert.Equal(t, ClassGeneral, R0.Class())
	assert.Equal(t, ClassGeneral, W0.Class())
	assert.Equal(t, ClassVector, Z0.Class())
	assert.Equal(t, ClassPredicate, P0.Class())
	assert.Equal(t, ClassNone, RegNone.Class())

	assert.True(t, R1.IsGeneral())
	assert.True(t, Z1.IsVector())
	assert.True(t, P1.IsPredicate())
	assert.False(t, P1.IsVector())

	assert.Equal(t, "predicate", ClassPredicate.String())
}

func TestRegValid(t *testing.T) {
	for _, r := range []Reg{R0, RZR, RSP, W5, WSP, Z0, Z31, P0, P15} {
		assert.True(t, r.Valid(), r.String())
	}
	for _, r := range []Reg{RegNone, Z31 + 1, P15 + 1, RSP + 1} {
		assert.False(t, r.Valid(), "%#x", uint16(r))
	}
}
