/*
 * interfaces.go, part of molarch.
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

package chem

import v3 "github.com/rmera/molarch/v3"

// Node is the basic element of the hierarchy. The two shapes are Composite,
// which owns an ordered sequence of children, and Leaf, which owns none.
// Node can only be satisfied by types embedding one of the two shapes.
type Node interface {
	//Kind returns the level of the hierarchy this node represents.
	Kind() Kind

	//Parent returns the node owning this one, or nil.
	Parent() Node

	//Children returns a read-only copy of the owned sequence.
	//Never nil for a Composite, always empty for a Leaf.
	Children() []Node

	linkage() *link
	composite() *Composite
}

// Accepter is implemented by composite nodes that restrict the kinds of
// children they can own.
type Accepter interface {
	Accepts(k Kind) bool
}

//The capabilities. A node type declares which ones it has by embedding
//the corresponding *Attr struct. The set is fixed for a given type,
//only the values change.

// Named nodes carry a name (atom name, residue name, entry ID).
type Named interface {
	Name() string
	SetName(string)
}

// Ordered nodes carry a sequence number (atom serial, residue number, model serial).
type Ordered interface {
	Ordinal() int
	SetOrdinal(int)
}

// Positioned nodes carry a 3D coordinate, and optionally a row in the
// Frames store of their Root, which holds one coordinate per frame.
type Positioned interface {
	Coord() v3.Vec
	SetCoord(v3.Vec)
	Row() int
	SetRow(int)
}

// ChainIdentified nodes carry a one-character chain identifier.
type ChainIdentified interface {
	ChainID() byte
	SetChainID(byte)
}

// InsertionCoded nodes carry a residue insertion code.
type InsertionCoded interface {
	ICode() byte
	SetICode(byte)
}

type Occupant interface {
	Occupancy() float64
	SetOccupancy(float64)
}

type ThermalFactored interface {
	BFactor() float64
	SetBFactor(float64)
}

type ElementBearer interface {
	Element() string
	SetElement(string)
}

type Charged interface {
	FormalCharge() int
	SetFormalCharge(int)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}
