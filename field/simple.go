// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SimpleField is an in-memory reference Field: it assigns a
// contiguous block of rows to every (grade, id) pair it is told about,
// in the order Register is called, and hands out row = base + indx.
type SimpleField struct {
	nelements int
	slots     map[[2]int]int // (grade,id) -> base row
}

// NewSimpleField creates an empty field.
func NewSimpleField() *SimpleField {
	io.Pfcyan("field: created empty field storage\n")
	return &SimpleField{slots: make(map[[2]int]int)}
}

// Register reserves width contiguous rows for (grade, id) and returns
// the base row they start at.
func (f *SimpleField) Register(grade, id, width int) int {
	key := [2]int{grade, id}
	if base, ok := f.slots[key]; ok {
		return base
	}
	base := f.nelements
	f.slots[key] = base
	f.nelements += width
	return base
}

// NElements implements field.Field.
func (f *SimpleField) NElements() int { return f.nelements }

// GetIndex implements field.Field.
func (f *SimpleField) GetIndex(grade, id, indx int) (int, error) {
	base, ok := f.slots[[2]int{grade, id}]
	if !ok {
		return 0, chk.Err("field: no storage registered for (grade=%d, id=%d)", grade, id)
	}
	return base + indx, nil
}
