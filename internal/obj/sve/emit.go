// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dotnet/runtime-sub004/internal/obj"
)

// An Allocator hands out descriptors. The variant depends on the size of
// the immediate the descriptor will carry.
type Allocator interface {
	NewSmall() *Instr
	NewSmallCns(imm int64) *Instr
	NewCns(imm int64) *Instr
}

// An Appender receives each finished descriptor exactly once.
type Appender interface {
	Append(in *Instr)
}

// An Emitter builds descriptors for one instruction stream. It is not
// safe for concurrent use.
type Emitter struct {
	alloc Allocator
	app   Appender
	feats FeatureSet
	log   logrus.FieldLogger

	debug  bool
	dump   bool
	verify bool

	// Descriptors appended since the last Flush.
	pending []*Instr
}

// An Option configures an Emitter.
type Option func(*Emitter)

// WithFeatures sets the extensions the emitter may encode.
func WithFeatures(fs FeatureSet) Option {
	return func(e *Emitter) { e.feats = fs }
}

// WithLogger sets the logger used for traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Emitter) { e.log = l }
}

// WithDebug traces every appended descriptor at debug level.
func WithDebug(on bool) Option {
	return func(e *Emitter) { e.debug = on }
}

// WithDump adds a field by field dump of the descriptor to each trace.
func WithDump(on bool) Option {
	return func(e *Emitter) { e.dump = on }
}

// WithVerify runs the sanity checker over every descriptor again as it
// is flushed.
func WithVerify(on bool) Option {
	return func(e *Emitter) { e.verify = on }
}

// NewEmitter returns an emitter that allocates from a and appends to app.
func NewEmitter(a Allocator, app Appender, opts ...Option) *Emitter {
	e := &Emitter{
		alloc: a,
		app:   app,
		feats: DefaultFeatures,
		log:   discardLogger(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// NewGroupEmitter returns an emitter that appends to g.
func NewGroupEmitter(g *Group, opts ...Option) *Emitter {
	return NewEmitter(g, g, opts...)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Features returns the extensions the emitter encodes.
func (e *Emitter) Features() FeatureSet { return e.feats }

// Pending returns the descriptors appended since the last Flush.
func (e *Emitter) Pending() []*Instr { return e.pending }

func (e *Emitter) debugf(format string, args ...interface{}) {
	if e.debug {
		e.log.Debugf(format, args...)
	}
}

// trace records an appended descriptor.
func (e *Emitter) trace(in *Instr) {
	if !e.debug {
		return
	}
	fields := logrus.Fields{
		"op":   in.Op.String(),
		"fmt":  in.Fmt.String(),
		"kind": in.kind.String(),
		"asm":  Disasm(in),
	}
	if e.dump {
		fields["desc"] = in.Dump()
	}
	e.log.WithFields(fields).Debug("sve: append")
}

// Flush packs every pending descriptor, in order, and writes the words to
// w. With verification enabled a descriptor that fails the sanity checker
// stops the flush; the descriptors before it have been written.
func (e *Emitter) Flush(w obj.WordWriter) error {
	for i, in := range e.pending {
		if e.verify {
			if err := Verify(in); err != nil {
				e.pending = e.pending[i:]
				return errors.Wrapf(err, "instruction %d", i)
			}
		}
		word := Pack(in)
		w.EmitWord(word)
		if e.debug {
			e.log.WithFields(logrus.Fields{
				"word": word,
				"asm":  Disasm(in),
			}).Debugf("sve: emit %08x", word)
		}
	}
	e.pending = e.pending[:0]
	return nil
}
