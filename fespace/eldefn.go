// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

// Instr is one step of an element definition: a typed instruction
// rather than an integer opcode, so the interpreter is a type switch
// instead of an opcode-fetch loop and an unreachable default can only
// be hit by a hand-built Instr slice that emits something outside the
// four known steps.
type Instr interface {
	isInstr()
}

// Line identifies a grade-1 subelement (an edge) by the local vertex
// indices of its two endpoints and stores it under SID for later
// Quantity references.
type Line struct {
	SID    int
	VA, VB int
}

// Area identifies a grade-2 subelement (a face) by the local vertex
// indices of its three corners and stores it under SID.
//
// Orientation mismatches between an element-local vertex order and the
// mesh-global order of the matched face are not reconciled here: face
// matching is order-independent, so (a,b,c) and (a,c,b) identify the
// same subelement.
type Area struct {
	SID        int
	VA, VB, VC int
}

// Quantity emits the next degree-of-freedom field index. If Grade==0
// the id is the raw mesh vertex id vids[SID]; otherwise it is the
// subelement previously identified under SID by a Line or Area
// instruction.
type Quantity struct {
	Grade, SID, Indx int
}

// End terminates an element definition.
type End struct{}

func (Line) isInstr()     {}
func (Area) isInstr()     {}
func (Quantity) isInstr() {}
func (End) isInstr()      {}
