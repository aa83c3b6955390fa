// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the emitter settings from the environment.
package config

import (
	"os"

	"github.com/mstoykov/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dotnet/runtime-sub004/internal/obj/sve"
)

// Config holds the emitter settings.
type Config struct {
	// Debug traces every appended instruction.
	Debug bool `envconfig:"SVE_DEBUG"`
	// Dump adds a descriptor dump to each trace.
	Dump bool `envconfig:"SVE_DUMP"`
	// Verify reruns the sanity checker when instructions are flushed.
	Verify bool `envconfig:"SVE_VERIFY"`
	// Features is a feature list as accepted by sve.ParseFeatures. Empty
	// means the default set.
	Features string `envconfig:"SVE_FEATURES"`
}

// A LookupFunc returns the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the configuration through lookup.
func LoadFrom(lookup LookupFunc) (Config, error) {
	var c Config
	if err := envconfig.Process("", &c, lookup); err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	if _, err := c.FeatureSet(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FeatureSet parses the feature list.
func (c Config) FeatureSet() (sve.FeatureSet, error) {
	if c.Features == "" {
		return sve.DefaultFeatures, nil
	}
	fs, err := sve.ParseFeatures(c.Features)
	if err != nil {
		return 0, errors.Wrap(err, "SVE_FEATURES")
	}
	return fs, nil
}

// Options returns the emitter options for c, logging through log, or the
// standard logger if log is nil.
func (c Config) Options(log logrus.FieldLogger) []sve.Option {
	if log == nil {
		log = logrus.StandardLogger()
	}
	fs, err := c.FeatureSet()
	if err != nil {
		log.WithError(err).Warn("sve: ignoring feature list")
		fs = sve.DefaultFeatures
	}
	return []sve.Option{
		sve.WithFeatures(fs),
		sve.WithLogger(log),
		sve.WithDebug(c.Debug),
		sve.WithDump(c.Dump),
		sve.WithVerify(c.Verify),
	}
}
