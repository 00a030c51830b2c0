// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

import (
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// InterpFunc computes interpolation weights wts[0:nnodes] from
// barycentric coordinates lambda[0:grade+1].
type InterpFunc func(lambda, wts []float64)

// GradFunc computes dwts/dlambda into grad, flattened column-major:
// grad[j*nnodes+i] == d wts[i] / d lambda[j], for j in [0,grade+1), i
// in [0,nnodes).
type GradFunc func(lambda, grad []float64)

// FESpace is an immutable continuous-Galerkin element descriptor.
type FESpace struct {
	Name   string    // short identifier, e.g. "CG1"
	Grade  int       // top grade this space is defined on
	Shape  []int     // DOFs per sub-grade, length Grade+1
	Degree int       // highest polynomial degree represented
	NNodes int       // number of local DOFs
	NSubEl int       // number of subelement identifications made by Eldefn
	Nodes  []float64 // flattened reference-coordinate node positions
	Ifn    InterpFunc
	Gfn    GradFunc // may be nil; see UnsupportedGradient
	Eldefn []Instr  // terminated by End{}
	Lower  []*FESpace
}

// String renders a short diagnostic description.
func (s *FESpace) String() string {
	return utl.Sf("<FESpace name=%q grade=%d degree=%d nnodes=%d>", s.Name, s.Grade, s.Degree, s.NNodes)
}

// NodesMatrix reshapes Nodes into a [nnodes][grade] matrix. For Grade==1
// the natural-coordinate axis is implicit and the returned matrix has a
// single column.
func (s *FESpace) NodesMatrix() [][]float64 {
	ncols := s.Grade
	if ncols < 1 {
		ncols = 1
	}
	m := la.MatAlloc(s.NNodes, ncols)
	for i := 0; i < s.NNodes; i++ {
		for j := 0; j < ncols; j++ {
			m[i][j] = s.Nodes[i*ncols+j]
		}
	}
	return m
}

// allSpaces lists every statically defined element, lowest grade first.
// Cross-references in Lower fields are ordinary Go package-level
// variable initialization (the compiler resolves the dependency order),
// so no forward-declaration dance is needed across cg_line.go,
// cg_tri.go and cg_tet.go.
var allSpaces = []*FESpace{
	CG1Line1D, CG2Line1D, CG3Line1D,
	CG1Tri2D, CG2Tri2D,
	CG1Tet3D, CG2Tet3D,
}

var (
	registryOnce sync.Once
	registry     []*FESpace
)

// Initialize populates the process-wide registry. It is idempotent and
// safe to call any number of times; the registry is read-only once
// built.
func Initialize() {
	registryOnce.Do(func() {
		registry = append([]*FESpace(nil), allSpaces...)
		io.Pfcyan("fespace: registered %d finite element spaces\n", len(registry))
	})
}

// Find returns the unique descriptor whose name and grade both match.
func Find(name string, grade int) (*FESpace, error) {
	Initialize()
	for _, s := range registry {
		if s.Name == name && s.Grade == grade {
			return s, nil
		}
	}
	return nil, newErr(LookupFailure, "fespace: function space %q on grade %d not found", name, grade)
}

// FindLinear returns the degree-1 descriptor defined on grade.
func FindLinear(grade int) (*FESpace, error) {
	Initialize()
	for _, s := range registry {
		if s.Grade == grade && s.Degree == 1 {
			return s, nil
		}
	}
	return nil, newErr(LookupFailure, "fespace: no linear function space found on grade %d", grade)
}

// Lower searches space's companion list for a descriptor defined on
// target grade.
func Lower(space *FESpace, target int) (*FESpace, error) {
	for _, l := range space.Lower {
		if l.Grade == target {
			return l, nil
		}
	}
	return nil, newErr(LookupFailure, "fespace: %q has no companion space on grade %d", space.Name, target)
}
