// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sve

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotImplemented is the cause of assertions raised for opcodes whose
// extension is not enabled on the emitter.
var ErrNotImplemented = errors.New("not implemented")

// An AssertionError reports a broken internal invariant: a descriptor the
// instruction selector should never have produced. The builder panics
// with it; Verify returns it.
type AssertionError struct {
	Op  Op
	Fmt Format
	Msg string
	Err error
}

func (e *AssertionError) Error() string {
	s := "sve: " + e.Op.String()
	if e.Fmt != F_none {
		s += " " + e.Fmt.String()
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}

// assertf builds an assertion error carrying the caller's stack.
func assertf(op Op, f Format, format string, args ...interface{}) error {
	return errors.WithStack(&AssertionError{Op: op, Fmt: f, Msg: fmt.Sprintf(format, args...)})
}

// badf builds an assertion error for the descriptor in.
func badf(in *Instr, format string, args ...interface{}) error {
	return assertf(in.Op, in.Fmt, format, args...)
}

func notImplemented(op Op, f Format, feat Feature) error {
	return errors.WithStack(&AssertionError{
		Op:  op,
		Fmt: f,
		Msg: "requires " + feat.String(),
		Err: ErrNotImplemented,
	})
}

// fatal raises err as a panic. It is the single exit for invariant
// violations on the build path.
func fatal(err error) {
	panic(err)
}

// AsAssertion extracts the AssertionError from err or from a recovered
// panic value.
func AsAssertion(v interface{}) (*AssertionError, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var ae *AssertionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Catch runs fn and returns the assertion it raised, if any. Other panics
// propagate.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := AsAssertion(r); !ok {
				panic(r)
			}
			err = r.(error)
		}
	}()
	fn()
	return nil
}
