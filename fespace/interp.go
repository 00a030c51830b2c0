// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

import "github.com/cpmech/gofem-fespace/mesh"

// FieldIndex is the (grade, subelement id, index-within-subelement)
// triple used to query a Field's storage for one local DOF slot.
type FieldIndex struct {
	G, ID, Indx int
}

// DofToFieldIndex walks space's element definition for one top-grade
// mesh element (given by its mesh vertex ids vids, in local order) and fills findx,
// which must already be sized to space.NNodes. Quantities are written
// in the exact textual order of the Eldefn instruction stream.
func DofToFieldIndex(msh mesh.Mesh, space *FESpace, vids []int, findx []FieldIndex) error {
	if len(findx) < space.NNodes {
		return newErr(ArgumentError, "fespace: findx buffer has %d slots, need %d", len(findx), space.NNodes)
	}

	subel := make([]int, space.NSubEl)
	var lineConn, areaConn mesh.Connectivity
	k := 0

walk:
	for _, ins := range space.Eldefn {
		switch instr := ins.(type) {

		case Line:
			if lineConn == nil {
				c, err := msh.Connectivity(1, 0)
				if err != nil {
					return newErr(MissingConnectivity, "fespace: mesh has no grade-1 vertex connectivity: %v", err)
				}
				lineConn = c
			}
			targets := []int{vids[instr.VA], vids[instr.VB]}
			nmatch, id, err := msh.MatchElements(lineConn, 2, targets, 1)
			if err != nil {
				return newErr(SubelementMatchFailure, "fespace: LINE(%d) vertices (%d,%d): %v", instr.SID, targets[0], targets[1], err)
			}
			if nmatch != 1 {
				return newErr(SubelementMatchFailure, "fespace: LINE(%d) vertices (%d,%d) matched %d edges, want 1", instr.SID, targets[0], targets[1], nmatch)
			}
			subel[instr.SID] = id

		case Area:
			if areaConn == nil {
				c, err := msh.Connectivity(2, 0)
				if err != nil {
					return newErr(MissingConnectivity, "fespace: mesh has no grade-2 face connectivity: %v", err)
				}
				areaConn = c
			}
			targets := []int{vids[instr.VA], vids[instr.VB], vids[instr.VC]}
			nmatch, id, err := msh.MatchElements(areaConn, 3, targets, 1)
			if err != nil {
				return newErr(SubelementMatchFailure, "fespace: AREA(%d) vertices (%d,%d,%d): %v", instr.SID, targets[0], targets[1], targets[2], err)
			}
			if nmatch != 1 {
				return newErr(SubelementMatchFailure, "fespace: AREA(%d) vertices (%d,%d,%d) matched %d faces, want 1", instr.SID, targets[0], targets[1], targets[2], nmatch)
			}
			subel[instr.SID] = id

		case Quantity:
			if k >= len(findx) {
				return newErr(ArgumentError, "fespace: element definition emits more than %d quantities", len(findx))
			}
			id := instr.SID
			if instr.Grade == 0 {
				id = vids[instr.SID]
			} else {
				id = subel[instr.SID]
			}
			findx[k] = FieldIndex{G: instr.Grade, ID: id, Indx: instr.Indx}
			k++

		case End:
			// terminal; instructions after End are not run
			break walk

		default:
			return newErr(Unreachable, "fespace: illegal element-definition instruction %T", ins)
		}
	}

	if k != space.NNodes {
		return newErr(Unreachable, "fespace: element definition for %q emitted %d quantities, want %d", space.Name, k, space.NNodes)
	}
	return nil
}
