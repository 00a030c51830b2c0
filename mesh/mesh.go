// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh declares the abstract connectivity contract the fespace
// core consumes. The concrete Mesh storage (partitioning, file I/O,
// parallel assembly) lives elsewhere in a full gofem-style system; this
// package only names the operations fespace needs and ships one
// in-memory reference implementation for tests.
package mesh

// Connectivity is an opaque handle to an incidence pattern between two
// grades, as returned by Mesh.Connectivity. Beyond reporting its two
// grades it carries no behaviour: callers pass it back into
// GetConnectivity/MatchElements.
type Connectivity interface {
	FromGrade() int
	ToGrade() int
}

// Mesh is the abstract collaborator the fespace core reads from. It
// never mutates the mesh and never needs more than these four
// operations.
type Mesh interface {
	// Connectivity returns the incidence pattern mapping each element of
	// fromGrade to the set of elements of toGrade touching it (e.g.
	// Connectivity(1, 0) is the edge->vertex table).
	Connectivity(fromGrade, toGrade int) (Connectivity, error)

	// NElements returns the number of mesh elements of the given grade.
	NElements(grade int) int

	// GetConnectivity returns the vertex ids attached to conn's element elemID.
	GetConnectivity(conn Connectivity, elemID int) (nv int, vids []int, err error)

	// MatchElements finds the unique element in conn whose vertex set
	// equals targets[:nv] (order-independent), returning how many
	// candidates matched and, when nmatch==wantCount, the matched id.
	MatchElements(conn Connectivity, nv int, targets []int, wantCount int) (nmatch int, matchedID int, err error)
}
