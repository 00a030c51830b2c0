// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

// CG1Tri2D: one degree of freedom per vertex.
//
//	2
//	|\
//	0-1
var CG1Tri2D = &FESpace{
	Name:   "CG1",
	Grade:  2,
	Shape:  []int{1, 0, 0},
	Degree: 1,
	NNodes: 3,
	NSubEl: 0,
	Nodes: []float64{
		0.0, 0.0,
		1.0, 0.0,
		0.0, 1.0,
	},
	Ifn: cg1Tri2DInterp,
	Gfn: cg1Tri2DGrad,
	Eldefn: []Instr{
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 0, SID: 2, Indx: 0},
		End{},
	},
	Lower: []*FESpace{CG1Line1D},
}

func cg1Tri2DInterp(lambda, wts []float64) {
	wts[0] = lambda[0]
	wts[1] = lambda[1]
	wts[2] = lambda[2]
}

func cg1Tri2DGrad(lambda, grad []float64) {
	g := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	copy(grad, g)
}

// CG2Tri2D: one degree of freedom per vertex, one at each edge midpoint.
//
//	2
//	|\
//	5 4
//	|  \
//	0-3-1
var CG2Tri2D = &FESpace{
	Name:   "CG2",
	Grade:  2,
	Shape:  []int{1, 1, 0},
	Degree: 2,
	NNodes: 6,
	NSubEl: 3,
	Nodes: []float64{
		0.0, 0.0,
		1.0, 0.0,
		0.0, 1.0,
		0.5, 0.0,
		0.5, 0.5,
		0.0, 0.5,
	},
	Ifn: cg2Tri2DInterp,
	Gfn: cg2Tri2DGrad,
	Eldefn: []Instr{
		Line{SID: 0, VA: 0, VB: 1},
		Line{SID: 1, VA: 1, VB: 2},
		Line{SID: 2, VA: 2, VB: 0},
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 0, SID: 2, Indx: 0},
		Quantity{Grade: 1, SID: 0, Indx: 0},
		Quantity{Grade: 1, SID: 1, Indx: 0},
		Quantity{Grade: 1, SID: 2, Indx: 0},
		End{},
	},
	Lower: []*FESpace{CG2Line1D},
}

func cg2Tri2DInterp(lambda, wts []float64) {
	wts[0] = lambda[0] * (2*lambda[0] - 1)
	wts[1] = lambda[1] * (2*lambda[1] - 1)
	wts[2] = lambda[2] * (2*lambda[2] - 1)
	wts[3] = 4 * lambda[0] * lambda[1]
	wts[4] = 4 * lambda[1] * lambda[2]
	wts[5] = 4 * lambda[2] * lambda[0]
}

func cg2Tri2DGrad(lambda, grad []float64) {
	// Gij = d wts[i] / d lambda[j], column-major.
	g := []float64{
		4*lambda[0] - 1, 0, 0, 4 * lambda[1], 0, 4 * lambda[2],
		0, 4*lambda[1] - 1, 0, 4 * lambda[0], 4 * lambda[2], 0,
		0, 0, 4*lambda[2] - 1, 0, 4 * lambda[1], 4 * lambda[0],
	}
	copy(grad, g)
}
