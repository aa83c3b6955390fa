// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// A Feature is an architecture extension an instruction belongs to.
type Feature uint8

const (
	FeatSVE Feature = iota
	FeatSVE2
	FeatSVE2p1
	FeatBF16
	FeatI8MM
	FeatF32MM
	FeatF64MM
	FeatBitPerm

	numFeatures
)

var featureNames = [numFeatures]string{
	FeatSVE:     "sve",
	FeatSVE2:    "sve2",
	FeatSVE2p1:  "sve2p1",
	FeatBF16:    "bf16",
	FeatI8MM:    "i8mm",
	FeatF32MM:   "f32mm",
	FeatF64MM:   "f64mm",
	FeatBitPerm: "bitperm",
}

func (f Feature) String() string {
	if f < numFeatures {
		return featureNames[f]
	}
	return fmt.Sprintf("feature(%d)", uint8(f))
}

// A FeatureSet is the set of extensions the emitter may encode.
type FeatureSet uint16

const (
	// AllFeatures enables every extension in the opcode table.
	AllFeatures FeatureSet = 1<<numFeatures - 1

	// DefaultFeatures covers the base extension, SVE2 and the matrix and
	// bfloat additions. Predicate-as-counter and multi-vector forms are
	// staged behind FeatSVE2p1 and must be enabled explicitly.
	DefaultFeatures = AllFeatures &^ (1 << FeatSVE2p1)
)

// NewFeatureSet returns the set holding exactly fs.
func NewFeatureSet(fs ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range fs {
		s |= 1 << f
	}
	return s
}

// Has reports whether f is in s.
func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

// With returns s plus fs. s is not modified.
func (s FeatureSet) With(fs ...Feature) FeatureSet {
	return s | NewFeatureSet(fs...)
}

// Without returns s minus fs.
func (s FeatureSet) Without(fs ...Feature) FeatureSet {
	return s &^ NewFeatureSet(fs...)
}

func (s FeatureSet) String() string {
	var names []string
	for f := Feature(0); f < numFeatures; f++ {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ",")
}

// HostFeatures reports the extensions the running CPU implements, as far
// as the operating system exposes them.
func HostFeatures() FeatureSet {
	var s FeatureSet
	if cpu.ARM64.HasSVE {
		s = s.With(FeatSVE)
	}
	if cpu.ARM64.HasSVE2 {
		s = s.With(FeatSVE2)
	}
	return s
}

// ParseFeatures parses a comma separated feature list. Besides feature
// names it accepts "all", "default", "host" and "none", and a leading '-'
// removes a feature from what precedes it:
//
//	default,sve2p1
//	all,-f64mm
func ParseFeatures(list string) (FeatureSet, error) {
	var s FeatureSet
	for _, tok := range strings.Split(list, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		remove := strings.HasPrefix(tok, "-")
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "+")

		var set FeatureSet
		switch tok {
		case "all":
			set = AllFeatures
		case "default":
			set = DefaultFeatures
		case "host":
			set = HostFeatures()
		case "none":
			if !remove {
				s = 0
			}
			continue
		default:
			f, ok := lookupFeature(tok)
			if !ok {
				return 0, fmt.Errorf("unknown feature %q", tok)
			}
			set = NewFeatureSet(f)
		}
		if remove {
			s &^= set
		} else {
			s |= set
		}
	}
	return s, nil
}

func lookupFeature(name string) (Feature, bool) {
	for f, n := range featureNames {
		if n == name {
			return Feature(f), true
		}
	}
	return 0, false
}
