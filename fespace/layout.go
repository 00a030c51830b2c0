// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

import (
	"github.com/cpmech/gofem-fespace/field"
	"github.com/cpmech/gofem-fespace/mesh"
)

// CCS is a compressed-column-storage layout matrix: column e lists the
// global field indices of the local DOF slots of top-grade element e,
// in the exact order the element definition emits them (not sorted).
type CCS struct {
	Rows, Cols, Nnz int
	Cptr            []int // length Cols+1
	Rix             []int // length Nnz
}

func newCCS(rows, cols, nnz int) *CCS {
	return &CCS{
		Rows: rows,
		Cols: cols,
		Nnz:  nnz,
		Cptr: make([]int, cols+1),
		Rix:  make([]int, nnz),
	}
}

// Layout builds the CCS matrix mapping every top-grade element of msh
// (grade == space.Grade) to its local DOFs' rows in fld. On any
// failure no partial matrix is returned.
func Layout(fld field.Field, msh mesh.Mesh, space *FESpace) (*CCS, error) {
	conn, err := msh.Connectivity(space.Grade, 0)
	if err != nil {
		return nil, newErr(MissingConnectivity, "fespace: mesh has no grade-%d element connectivity: %v", space.Grade, err)
	}

	nel := msh.NElements(space.Grade)
	L := newCCS(fld.NElements(), nel, nel*space.NNodes)

	findx := make([]FieldIndex, space.NNodes)
	for e := 0; e < nel; e++ {
		L.Cptr[e] = e * space.NNodes

		_, vids, err := msh.GetConnectivity(conn, e)
		if err != nil {
			return nil, newErr(MissingConnectivity, "fespace: cannot get vertices of element %d: %v", e, err)
		}

		if err := DofToFieldIndex(msh, space, vids, findx); err != nil {
			return nil, err
		}

		for i := 0; i < space.NNodes; i++ {
			row, err := fld.GetIndex(findx[i].G, findx[i].ID, findx[i].Indx)
			if err != nil {
				return nil, newErr(FieldResolutionFailure, "fespace: cannot resolve field index (g=%d,id=%d,indx=%d): %v", findx[i].G, findx[i].ID, findx[i].Indx, err)
			}
			L.Rix[e*space.NNodes+i] = row
		}
	}
	L.Cptr[nel] = nel * space.NNodes

	return L, nil
}
