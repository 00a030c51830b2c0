// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

import "github.com/cpmech/gosl/chk"

// Kind classifies the way an fespace operation can fail.
type Kind int

const (
	// LookupFailure: no descriptor matches a (name, grade) pair.
	LookupFailure Kind = iota
	// SubelementMatchFailure: a LINE/AREA instruction did not resolve to a unique subelement.
	SubelementMatchFailure
	// MissingConnectivity: the mesh cannot supply a required connectivity table.
	MissingConnectivity
	// AllocationFailure: the output sparse matrix could not be sized.
	AllocationFailure
	// FieldResolutionFailure: a resolved DOF triple has no matching row in the field.
	FieldResolutionFailure
	// ArgumentError: caller supplied arguments of the wrong shape.
	ArgumentError
	// Unreachable: an illegal opcode was found in a static element definition.
	Unreachable
	// UnsupportedGradient: the space's Gfn callback is nil.
	UnsupportedGradient
)

// String names a Kind the way the taxonomy documents it.
func (k Kind) String() string {
	switch k {
	case LookupFailure:
		return "LookupFailure"
	case SubelementMatchFailure:
		return "SubelementMatchFailure"
	case MissingConnectivity:
		return "MissingConnectivity"
	case AllocationFailure:
		return "AllocationFailure"
	case FieldResolutionFailure:
		return "FieldResolutionFailure"
	case ArgumentError:
		return "ArgumentError"
	case Unreachable:
		return "Unreachable"
	case UnsupportedGradient:
		return "UnsupportedGradient"
	}
	return "Unknown"
}

// Error wraps a formatted message with its taxonomy Kind so callers can
// recover it with errors.As without depending on message text.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// newErr builds a taxonomy Error using chk.Err for the message, matching
// the rest of the codebase's error-construction style.
func newErr(k Kind, format string, a ...interface{}) error {
	return &Error{Kind: k, err: chk.Err(format, a...)}
}
