// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fespace implements continuous-Galerkin finite element spaces:
// static element descriptors (CG1/CG2/CG3), the interpreter that maps
// local degrees of freedom to global field indices, and the layout
// builder that assembles the CCS matrix consumers need to address a
// Field from a Mesh.
package fespace
