// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field declares the abstract storage contract the fespace
// core consumes. The concrete Field (tensor/scalar buffers per grade,
// persistence) is external to this module; this package only names the
// operation the layout builder needs and ships one in-memory reference
// implementation for tests.
package field

// Field is the abstract collaborator the fespace core queries to turn
// a DOF triple into a flat storage row.
type Field interface {
	// NElements is the row count of the field's storage buffer; it
	// becomes the Rows of a layout CCS matrix.
	NElements() int

	// GetIndex maps a (grade, subelement id, index-within-subelement)
	// triple to a flat storage row.
	GetIndex(grade, id, indx int) (int, error)
}
