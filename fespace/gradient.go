// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

// Interpolate dispatches to space's interpolation callback. wts must be
// sized to space.NNodes. Lambda is assumed to already lie on the
// standard simplex; it is not validated here.
func Interpolate(space *FESpace, lambda, wts []float64) {
	space.Ifn(lambda, wts)
}

// Gradient computes the gradient of space's basis functions with
// respect to reference coordinates (not barycentric coordinates) into
// G, sized [nnodes][grade]. One of the grade+1 barycentric coordinates
// is dependent (they sum to 1), so the reference-coordinate Jacobian is
// column 0 of the raw barycentric gradient subtracted from the rest.
func Gradient(space *FESpace, lambda []float64, G [][]float64) error {
	if space.Gfn == nil {
		return newErr(UnsupportedGradient, "fespace: %q has no gradient function", space.Name)
	}

	nbary := space.Grade + 1
	gdata := make([]float64, space.NNodes*nbary)
	space.Gfn(lambda, gdata)

	col0 := gdata[0:space.NNodes]
	for j := 0; j < space.Grade; j++ {
		colj := gdata[(j+1)*space.NNodes : (j+2)*space.NNodes]
		for i := 0; i < space.NNodes; i++ {
			G[i][j] = colj[i] - col0[i]
		}
	}
	return nil
}
