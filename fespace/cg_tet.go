// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

// CG1Tet3D: one degree of freedom per vertex.
var CG1Tet3D = &FESpace{
	Name:   "CG1",
	Grade:  3,
	Shape:  []int{1, 0, 0, 0},
	Degree: 1,
	NNodes: 4,
	NSubEl: 0,
	Nodes: []float64{
		0.0, 0.0, 0.0,
		1.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
	},
	Ifn: cg1Tet3DInterp,
	Gfn: cg1Tet3DGrad,
	Eldefn: []Instr{
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 0, SID: 2, Indx: 0},
		Quantity{Grade: 0, SID: 3, Indx: 0},
		End{},
	},
	Lower: []*FESpace{CG1Tri2D, CG1Line1D},
}

func cg1Tet3DInterp(lambda, wts []float64) {
	wts[0] = lambda[0]
	wts[1] = lambda[1]
	wts[2] = lambda[2]
	wts[3] = lambda[3]
}

func cg1Tet3DGrad(lambda, grad []float64) {
	g := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	copy(grad, g)
}

// CG2Tet3D: one degree of freedom per vertex, one at each edge midpoint.
// Edges are identified in order (0,1),(1,2),(2,0),(0,3),(1,3),(2,3).
var CG2Tet3D = &FESpace{
	Name:   "CG2",
	Grade:  3,
	Shape:  []int{1, 1, 0, 0},
	Degree: 2,
	NNodes: 10,
	NSubEl: 6,
	Nodes: []float64{
		0.0, 0.0, 0.0,
		1.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
		0.5, 0.0, 0.0,
		0.5, 0.5, 0.0,
		0.0, 0.5, 0.0,
		0.0, 0.0, 0.5,
		0.5, 0.0, 0.5,
		0.0, 0.5, 0.5,
	},
	Ifn: cg2Tet3DInterp,
	Gfn: cg2Tet3DGrad,
	Eldefn: []Instr{
		Line{SID: 0, VA: 0, VB: 1},
		Line{SID: 1, VA: 1, VB: 2},
		Line{SID: 2, VA: 2, VB: 0},
		Line{SID: 3, VA: 0, VB: 3},
		Line{SID: 4, VA: 1, VB: 3},
		Line{SID: 5, VA: 2, VB: 3},
		Quantity{Grade: 0, SID: 0, Indx: 0},
		Quantity{Grade: 0, SID: 1, Indx: 0},
		Quantity{Grade: 0, SID: 2, Indx: 0},
		Quantity{Grade: 0, SID: 3, Indx: 0},
		Quantity{Grade: 1, SID: 0, Indx: 0},
		Quantity{Grade: 1, SID: 1, Indx: 0},
		Quantity{Grade: 1, SID: 2, Indx: 0},
		Quantity{Grade: 1, SID: 3, Indx: 0},
		Quantity{Grade: 1, SID: 4, Indx: 0},
		Quantity{Grade: 1, SID: 5, Indx: 0},
		End{},
	},
	Lower: []*FESpace{CG2Tri2D, CG2Line1D},
}

func cg2Tet3DInterp(lambda, wts []float64) {
	wts[0] = lambda[0] * (2*lambda[0] - 1)
	wts[1] = lambda[1] * (2*lambda[1] - 1)
	wts[2] = lambda[2] * (2*lambda[2] - 1)
	wts[3] = lambda[3] * (2*lambda[3] - 1)
	wts[4] = 4 * lambda[0] * lambda[1]
	wts[5] = 4 * lambda[1] * lambda[2]
	wts[6] = 4 * lambda[2] * lambda[0]
	wts[7] = 4 * lambda[0] * lambda[3]
	wts[8] = 4 * lambda[1] * lambda[3]
	wts[9] = 4 * lambda[2] * lambda[3]
}

// cg2Tet3DGrad is derived analytically by differentiating wts, column
// by column, rather than from a transcribed table: a hand-transcribed
// version of this table disagreed with wts once checked column by
// column, so it is not reproduced here.
func cg2Tet3DGrad(lambda, grad []float64) {
	l0, l1, l2, l3 := lambda[0], lambda[1], lambda[2], lambda[3]
	const n = 10
	// column 0: d/dlambda0
	col := grad[0*n : 1*n]
	col[0], col[1], col[2], col[3] = 4*l0-1, 0, 0, 0
	col[4], col[5], col[6], col[7], col[8], col[9] = 4*l1, 0, 4*l2, 4*l3, 0, 0
	// column 1: d/dlambda1
	col = grad[1*n : 2*n]
	col[0], col[1], col[2], col[3] = 0, 4*l1-1, 0, 0
	col[4], col[5], col[6], col[7], col[8], col[9] = 4*l0, 4*l2, 0, 0, 4*l3, 0
	// column 2: d/dlambda2
	col = grad[2*n : 3*n]
	col[0], col[1], col[2], col[3] = 0, 0, 4*l2-1, 0
	col[4], col[5], col[6], col[7], col[8], col[9] = 0, 4*l1, 4*l0, 0, 0, 4*l3
	// column 3: d/dlambda3
	col = grad[3*n : 4*n]
	col[0], col[1], col[2], col[3] = 0, 0, 0, 4*l3-1
	col[4], col[5], col[6], col[7], col[8], col[9] = 0, 0, 0, 4*l0, 4*l1, 4*l2
}
