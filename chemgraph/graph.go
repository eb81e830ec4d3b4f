/*
 * graph.go, part of molarch.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * molarch is developed at Universidad de Tarapaca (UTA)
 *
 */

// Package chemgraph exposes a molarch hierarchy as a gonum graph, so the
// algorithms in gonum.org/v1/gonum/graph can run over it.
package chemgraph

import (
	chem "github.com/rmera/molarch"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// Node is a hierarchy node with a graph ID, which is its pre-order position
// in the subtree the Hierarchy was built from.
type Node struct {
	chem.Node
	id int64
}

func (N *Node) ID() int64 {
	return N.id
}

// Edge goes from a parent to one of its children.
type Edge struct {
	F, T *Node
}

func (E Edge) From() graph.Node {
	return E.F
}

func (E Edge) To() graph.Node {
	return E.T
}

// ReversedEdge returns the child-to-parent edge. Note that the Hierarchy never contains those.
func (E Edge) ReversedEdge() graph.Edge {
	return Edge{F: E.T, T: E.F}
}

// Hierarchy implements gonum's graph.Directed over a snapshot of a subtree.
// Changes to the subtree after the Hierarchy is built are not seen.
type Hierarchy struct {
	nodes []*Node
	index map[chem.Node]int64
}

// New returns a Hierarchy for the subtree under n.
func New(n chem.Node) *Hierarchy {
	H := &Hierarchy{index: make(map[chem.Node]int64)}
	w := chem.Walk(n)
	for w.Next() {
		id := int64(len(H.nodes))
		H.nodes = append(H.nodes, &Node{Node: w.Node(), id: id})
		H.index[w.Node()] = id
	}
	return H
}

// ID returns the graph ID of n, and false if n is not in the Hierarchy.
func (H *Hierarchy) ID(n chem.Node) (int64, bool) {
	id, ok := H.index[n]
	return id, ok
}

// Node returns the node with the given ID, or nil if there is none.
func (H *Hierarchy) Node(id int64) graph.Node {
	if n := H.node(id); n != nil {
		return n
	}
	return nil
}

func (H *Hierarchy) node(id int64) *Node {
	if id < 0 || id >= int64(len(H.nodes)) {
		return nil
	}
	return H.nodes[id]
}

func (H *Hierarchy) Nodes() graph.Nodes {
	if len(H.nodes) == 0 {
		return graph.Empty
	}
	ret := make([]graph.Node, len(H.nodes))
	for i, v := range H.nodes {
		ret[i] = v
	}
	return iterator.NewOrderedNodes(ret)
}

// From returns the children of the node with the given ID, in order.
func (H *Hierarchy) From(id int64) graph.Nodes {
	n := H.node(id)
	if n == nil {
		return graph.Empty
	}
	ch := n.Children()
	if len(ch) == 0 {
		return graph.Empty
	}
	ret := make([]graph.Node, 0, len(ch))
	for _, c := range ch {
		if cid, ok := H.index[c]; ok {
			ret = append(ret, H.nodes[cid])
		}
	}
	return iterator.NewOrderedNodes(ret)
}

// To returns the parent of the node with the given ID, if it is in the Hierarchy.
func (H *Hierarchy) To(id int64) graph.Nodes {
	if p := H.parent(id); p != nil {
		return iterator.NewOrderedNodes([]graph.Node{p})
	}
	return graph.Empty
}

func (H *Hierarchy) parent(id int64) *Node {
	n := H.node(id)
	if n == nil || n.Parent() == nil {
		return nil
	}
	if pid, ok := H.index[n.Parent()]; ok {
		return H.nodes[pid]
	}
	return nil
}

func (H *Hierarchy) HasEdgeFromTo(uid, vid int64) bool {
	p := H.parent(vid)
	return p != nil && p.id == uid
}

func (H *Hierarchy) HasEdgeBetween(xid, yid int64) bool {
	return H.HasEdgeFromTo(xid, yid) || H.HasEdgeFromTo(yid, xid)
}

// Edge returns the edge from u to v, or nil if v is not a child of u.
func (H *Hierarchy) Edge(uid, vid int64) graph.Edge {
	if !H.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return Edge{F: H.nodes[uid], T: H.nodes[vid]}
}
