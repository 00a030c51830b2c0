// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// localEdges lists the canonical (va,vb) local-vertex pairs identified
// as grade-1 subelements for each supported top grade, matching the
// edge order the CG element definitions reference.
var localEdges = map[int][][2]int{
	2: {{0, 1}, {1, 2}, {2, 0}},
	3: {{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}},
}

// localFaces lists the canonical (va,vb,vc) local-vertex triples
// identified as grade-2 subelements of a tetrahedron.
var localFaces = [][3]int{
	{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3},
}

// conn is the concrete Connectivity: a list of elements (each a
// vertex-id tuple) plus an index for order-independent vertex-set
// lookup, backing both GetConnectivity and MatchElements.
type conn struct {
	from, to int
	elems    [][]int
	index    map[string]int
}

func (c *conn) FromGrade() int { return c.from }
func (c *conn) ToGrade() int   { return c.to }

func vkey(vids []int) string {
	s := append([]int(nil), vids...)
	sort.Ints(s)
	return fmt.Sprint(s)
}

func newConn(from, to int, elems [][]int) *conn {
	c := &conn{from: from, to: to, elems: elems, index: make(map[string]int, len(elems))}
	for id, vids := range elems {
		c.index[vkey(vids)] = id
	}
	return c
}

// SimpleMesh is an in-memory reference Mesh: a flat list of top-grade
// elements, each given by its vertex ids. Edge (and, for tetrahedral
// meshes, face) connectivity is derived and deduplicated at
// construction time.
type SimpleMesh struct {
	topGrade int
	nverts   int
	cells    [][]int

	cellConn *conn
	edgeConn *conn
	faceConn *conn
}

// NewSimpleMesh builds a mesh of nverts vertices whose top-grade
// elements are cells, each a slice of local-to-global vertex ids.
// topGrade must be 1 (lines), 2 (triangles) or 3 (tetrahedra).
func NewSimpleMesh(topGrade, nverts int, cells [][]int) *SimpleMesh {
	m := &SimpleMesh{topGrade: topGrade, nverts: nverts, cells: cells}
	m.cellConn = newConn(topGrade, 0, cells)

	if topGrade == 1 {
		m.edgeConn = m.cellConn
	} else {
		m.edgeConn = newConn(1, 0, deriveSubelements(cells, localEdges[topGrade]))
	}
	if topGrade == 3 {
		m.faceConn = newConn(2, 0, deriveFaces(cells))
	}
	io.Pfcyan("mesh: built simple mesh with %d vertices and %d grade-%d elements\n", nverts, len(cells), topGrade)
	return m
}

func deriveSubelements(cells [][]int, pattern [][2]int) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, verts := range cells {
		for _, p := range pattern {
			pair := []int{verts[p[0]], verts[p[1]]}
			k := vkey(pair)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, pair)
		}
	}
	return out
}

func deriveFaces(cells [][]int) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for _, verts := range cells {
		for _, p := range localFaces {
			tri := []int{verts[p[0]], verts[p[1]], verts[p[2]]}
			k := vkey(tri)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, tri)
		}
	}
	return out
}

// Connectivity implements mesh.Mesh.
func (m *SimpleMesh) Connectivity(fromGrade, toGrade int) (Connectivity, error) {
	if toGrade != 0 {
		return nil, chk.Err("mesh: only connectivity to grade 0 is supported, got toGrade=%d", toGrade)
	}
	switch fromGrade {
	case m.topGrade:
		return m.cellConn, nil
	case 1:
		if m.edgeConn == nil {
			return nil, chk.Err("mesh: no grade-1 connectivity available")
		}
		return m.edgeConn, nil
	case 2:
		if m.faceConn == nil {
			return nil, chk.Err("mesh: no grade-2 connectivity available")
		}
		return m.faceConn, nil
	}
	return nil, chk.Err("mesh: no connectivity from grade %d to grade %d", fromGrade, toGrade)
}

// NElements implements mesh.Mesh.
func (m *SimpleMesh) NElements(grade int) int {
	switch grade {
	case 0:
		return m.nverts
	case m.topGrade:
		return len(m.cells)
	case 1:
		if m.edgeConn != nil {
			return len(m.edgeConn.elems)
		}
	case 2:
		if m.faceConn != nil {
			return len(m.faceConn.elems)
		}
	}
	return 0
}

// GetConnectivity implements mesh.Mesh.
func (m *SimpleMesh) GetConnectivity(c Connectivity, elemID int) (nv int, vids []int, err error) {
	cc, ok := c.(*conn)
	if !ok {
		return 0, nil, chk.Err("mesh: connectivity handle of unexpected type %T", c)
	}
	if elemID < 0 || elemID >= len(cc.elems) {
		return 0, nil, chk.Err("mesh: element id %d out of range [0,%d)", elemID, len(cc.elems))
	}
	vids = append([]int(nil), cc.elems[elemID]...)
	return len(vids), vids, nil
}

// MatchElements implements mesh.Mesh.
func (m *SimpleMesh) MatchElements(c Connectivity, nv int, targets []int, wantCount int) (nmatch int, matchedID int, err error) {
	cc, ok := c.(*conn)
	if !ok {
		return 0, 0, chk.Err("mesh: connectivity handle of unexpected type %T", c)
	}
	id, found := cc.index[vkey(targets[:nv])]
	if !found {
		return 0, 0, nil
	}
	return 1, id, nil
}
