// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotnet/runtime-sub004/internal/obj/sve"
)

func env(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	c, err := LoadFrom(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)

	fs, err := c.FeatureSet()
	require.NoError(t, err)
	assert.Equal(t, sve.DefaultFeatures, fs)
}

func TestLoad(t *testing.T) {
	c, err := LoadFrom(env(map[string]string{
		"SVE_DEBUG":    "true",
		"SVE_DUMP":     "1",
		"SVE_VERIFY":   "true",
		"SVE_FEATURES": "default,sve2p1,-bf16",
	}))
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.True(t, c.Dump)
	assert.True(t, c.Verify)

	fs, err := c.FeatureSet()
	require.NoError(t, err)
	assert.True(t, fs.Has(sve.FeatSVE2p1))
	assert.False(t, fs.Has(sve.FeatBF16))
	assert.True(t, fs.Has(sve.FeatSVE2))
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadFrom(env(map[string]string{"SVE_DEBUG": "maybe"}))
	assert.Error(t, err)

	_, err = LoadFrom(env(map[string]string{"SVE_FEATURES": "sve,avx512"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avx512")
}

func TestOptions(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	c := Config{Debug: true, Features: "sve"}
	g := sve.NewGroup()
	e := sve.NewGroupEmitter(g, c.Options(log)...)
	assert.Equal(t, sve.NewFeatureSet(sve.FeatSVE), e.Features())

	e.InsRRR(sve.AZADD, sve.ArrS, sve.Z0, sve.Z1, sve.Z2, sve.SoptNone)
	require.Equal(t, 1, g.Len())
	require.NotEmpty(t, hook.AllEntries())
	last := hook.LastEntry()
	assert.Equal(t, "add", last.Data["op"])
	assert.Equal(t, "add z0.s, z1.s, z2.s", last.Data["asm"])

	// SVE2 opcodes are refused without the extension.
	err := sve.Catch(func() {
		e.InsRRR(sve.AZSABA, sve.ArrS, sve.Z0, sve.Z1, sve.Z2, sve.SoptNone)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sve.ErrNotImplemented)
}

func TestOptionsBadFeatures(t *testing.T) {
	log, hook := test.NewNullLogger()
	c := Config{Features: "bogus"}
	e := sve.NewGroupEmitter(sve.NewGroup(), c.Options(log)...)
	assert.Equal(t, sve.DefaultFeatures, e.Features())
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
