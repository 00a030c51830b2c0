// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "testing"

func Test_SimpleMeshLineConnectivity(tst *testing.T) {
	m := NewSimpleMesh(1, 3, [][]int{{0, 1}, {1, 2}})

	if m.NElements(1) != 2 {
		tst.Errorf("NElements(1)=%d, want 2\n", m.NElements(1))
	}
	if m.NElements(0) != 3 {
		tst.Errorf("NElements(0)=%d, want 3\n", m.NElements(0))
	}

	conn, err := m.Connectivity(1, 0)
	if err != nil {
		tst.Fatalf("Connectivity(1,0) failed: %v\n", err)
	}
	nv, vids, err := m.GetConnectivity(conn, 1)
	if err != nil {
		tst.Fatalf("GetConnectivity failed: %v\n", err)
	}
	if nv != 2 || vids[0] != 1 || vids[1] != 2 {
		tst.Errorf("GetConnectivity(1)=%v, want [1 2]\n", vids)
	}

	nmatch, id, err := m.MatchElements(conn, 2, []int{2, 1}, 1)
	if err != nil {
		tst.Fatalf("MatchElements failed: %v\n", err)
	}
	if nmatch != 1 || id != 1 {
		tst.Errorf("MatchElements reversed-order lookup = (%d,%d), want (1,1)\n", nmatch, id)
	}

	nmatch, _, err = m.MatchElements(conn, 2, []int{0, 2}, 1)
	if err != nil {
		tst.Fatalf("MatchElements failed: %v\n", err)
	}
	if nmatch != 0 {
		tst.Errorf("MatchElements for a non-existent edge returned nmatch=%d, want 0\n", nmatch)
	}
}

func Test_SimpleMeshTriangleDerivesEdges(tst *testing.T) {
	// two triangles sharing edge (1,2)
	m := NewSimpleMesh(2, 4, [][]int{{0, 1, 2}, {1, 3, 2}})

	if m.NElements(2) != 2 {
		tst.Errorf("NElements(2)=%d, want 2\n", m.NElements(2))
	}
	// distinct edges: (0,1) (1,2) (2,0) (1,3) (3,2); (1,2) is shared and
	// must only be counted once.
	if m.NElements(1) != 5 {
		tst.Errorf("NElements(1)=%d, want 5\n", m.NElements(1))
	}

	edgeConn, err := m.Connectivity(1, 0)
	if err != nil {
		tst.Fatalf("Connectivity(1,0) failed: %v\n", err)
	}
	nmatch, _, err := m.MatchElements(edgeConn, 2, []int{1, 2}, 1)
	if err != nil {
		tst.Fatalf("MatchElements failed: %v\n", err)
	}
	if nmatch != 1 {
		tst.Errorf("shared edge (1,2) matched %d times, want 1\n", nmatch)
	}
}

func Test_SimpleMeshTetrahedronDerivesFaces(tst *testing.T) {
	m := NewSimpleMesh(3, 4, [][]int{{0, 1, 2, 3}})

	if m.NElements(2) != 4 {
		tst.Errorf("NElements(2)=%d, want 4\n", m.NElements(2))
	}
	if m.NElements(1) != 6 {
		tst.Errorf("NElements(1)=%d, want 6\n", m.NElements(1))
	}

	faceConn, err := m.Connectivity(2, 0)
	if err != nil {
		tst.Fatalf("Connectivity(2,0) failed: %v\n", err)
	}
	nmatch, _, err := m.MatchElements(faceConn, 3, []int{2, 0, 1}, 1)
	if err != nil {
		tst.Fatalf("MatchElements failed: %v\n", err)
	}
	if nmatch != 1 {
		tst.Errorf("face (0,1,2) matched %d times (order-independent), want 1\n", nmatch)
	}
}

func Test_SimpleMeshNoFaceConnectivityOnLineMesh(tst *testing.T) {
	m := NewSimpleMesh(1, 2, [][]int{{0, 1}})
	_, err := m.Connectivity(2, 0)
	if err == nil {
		tst.Errorf("expected an error requesting grade-2 connectivity on a line mesh, got nil\n")
	}
}
