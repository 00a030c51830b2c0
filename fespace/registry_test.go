// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fespace

import "testing"

func Test_Find(tst *testing.T) {
	s, err := Find("CG2", 2)
	if err != nil {
		tst.Errorf("Find(CG2,2) failed: %v\n", err)
		return
	}
	if s != CG2Tri2D {
		tst.Errorf("Find(CG2,2) returned wrong descriptor: %v\n", s)
	}
}

// Test_FindLookupFailure checks that requesting ("CG4", 2), a name
// with no registered descriptor, returns LookupFailure.
func Test_FindLookupFailure(tst *testing.T) {
	_, err := Find("CG4", 2)
	if err == nil {
		tst.Errorf("expected LookupFailure, got nil\n")
		return
	}
	fe, ok := err.(*Error)
	if !ok || fe.Kind != LookupFailure {
		tst.Errorf("expected LookupFailure, got %v\n", err)
	}
}

func Test_FindLinear(tst *testing.T) {
	for grade := 1; grade <= 3; grade++ {
		s, err := FindLinear(grade)
		if err != nil {
			tst.Errorf("FindLinear(%d) failed: %v\n", grade, err)
			continue
		}
		if s.Grade != grade || s.Degree != 1 {
			tst.Errorf("FindLinear(%d) = %v, want grade=%d degree=1\n", grade, s, grade)
		}
	}
}

func Test_Lower(tst *testing.T) {
	l, err := Lower(CG2Tet3D, 2)
	if err != nil {
		tst.Errorf("Lower(CG2Tet3D,2) failed: %v\n", err)
		return
	}
	if l != CG2Tri2D {
		tst.Errorf("Lower(CG2Tet3D,2) = %v, want CG2Tri2D\n", l)
	}

	l, err = Lower(CG2Tet3D, 1)
	if err != nil {
		tst.Errorf("Lower(CG2Tet3D,1) failed: %v\n", err)
		return
	}
	if l != CG2Line1D {
		tst.Errorf("Lower(CG2Tet3D,1) = %v, want CG2Line1D\n", l)
	}

	_, err = Lower(CG1Line1D, 2)
	if err == nil {
		tst.Errorf("expected LookupFailure for CG1Line1D->grade2, got nil\n")
	}
}
