// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

// CG1Line1D: one degree of freedom per vertex.
//
//	0 --- 1
var CG1Line1D = &FESpace{
	Name:   "CG1",
	Grade:  1,
	Shape:  []int{1, 0},
	Degree: 1,
	NNodes: 2,
	NSubEl: 0,
	Nodes:  []float64{0.0, 1.0},
	Ifn:    cg1Line1DInterp,
	Gfn:    cg1Line1DGrad,
	Eldefn: []Instr{
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		End{},
	},
}

func cg1Line1DInterp(lambda, wts []float64) {
	wts[0] = lambda[0]
	wts[1] = lambda[1]
}

func cg1Line1DGrad(lambda, grad []float64) {
	g := []float64{
		1, 0,
		0, 1,
	}
	copy(grad, g)
}

// CG2Line1D: one degree of freedom per vertex, one at the midpoint.
//
//	0 - 2 - 1
var CG2Line1D = &FESpace{
	Name:   "CG2",
	Grade:  1,
	Shape:  []int{1, 1},
	Degree: 2,
	NNodes: 3,
	NSubEl: 1,
	Nodes:  []float64{0.0, 1.0, 0.5},
	Ifn:    cg2Line1DInterp,
	Gfn:    cg2Line1DGrad,
	Eldefn: []Instr{
		Line{SID: 0, VA: 0, VB: 1},
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 1, SID: 0, Indx: 0},
		End{},
	},
}

func cg2Line1DInterp(lambda, wts []float64) {
	dl := lambda[0] - lambda[1]
	wts[0] = lambda[0] * dl
	wts[1] = -lambda[1] * dl
	wts[2] = 4 * lambda[0] * lambda[1]
}

func cg2Line1DGrad(lambda, grad []float64) {
	// Gij = d wts[i] / d lambda[j], column-major.
	g := []float64{
		2*lambda[0] - lambda[1], -lambda[1], 4 * lambda[1],
		-lambda[0], 2*lambda[1] - lambda[0], 4 * lambda[0],
	}
	copy(grad, g)
}

// CG3Line1D: one degree of freedom per vertex, two interior nodes.
//
//	0 - 2 - 3 - 1
//
// This space has no gradient function; the original definition this
// table is derived from never supplied one. Gradient() returns an
// *Error of Kind UnsupportedGradient rather than guessing a formula.
var CG3Line1D = &FESpace{
	Name:   "CG3",
	Grade:  1,
	Shape:  []int{1, 2},
	Degree: 3,
	NNodes: 4,
	NSubEl: 1,
	Nodes:  []float64{0.0, 1.0, 1.0 / 3.0, 2.0 / 3.0},
	Ifn:    cg3Line1DInterp,
	Gfn:    nil,
	Eldefn: []Instr{
		Line{SID: 0, VA: 0, VB: 1},
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 1, SID: 0, Indx: 0},
		Quantity{Grade: 1, SID: 0, Indx: 1},
		End{},
	},
}

func cg3Line1DInterp(lambda, wts []float64) {
	a := (9.0 / 2.0) * lambda[0] * lambda[1]
	wts[0] = lambda[0] * (1 - a)
	wts[1] = lambda[1] * (1 - a)
	wts[2] = a * (2*lambda[0] - lambda[1])
	wts[3] = a * (2*lambda[1] - lambda[0])
}
