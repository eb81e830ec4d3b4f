/*
 * chem.go, part of molarch.
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

/*****Root***/

// Root is the top of a hierarchy. It owns Models and the Frames store
// shared by all the atoms under it. Its name is the entry ID.
type Root struct {
	Composite
	NameAttr
	frames *Frames
}

// NewRoot returns an empty Root with the given entry ID.
func NewRoot(name string) *Root {
	R := new(Root)
	R.SetName(name)
	R.frames = NewFrames()
	return R
}

func (R *Root) Kind() Kind             { return KindRoot }
func (R *Root) Accepts(k Kind) bool    { return k == KindModel }
func (R *Root) Add(child Node)         { Add(R, child) }
func (R *Root) Remove(child Node) Node { return Remove(R, child) }

// Frames returns the coordinate store of the hierarchy.
func (R *Root) Frames() *Frames {
	return R.frames
}

// Models returns the Models in the Root.
func (R *Root) Models() []*Model {
	ret := make([]*Model, 0, len(R.children))
	for _, v := range R.children {
		if m, ok := v.(*Model); ok {
			ret = append(ret, m)
		}
	}
	return ret
}

// Clear detaches every Model from the Root and empties its Frames.
// Nodes in the detached subtrees keep their own linkage.
func (R *Root) Clear() {
	for len(R.children) > 0 {
		Remove(R, R.children[len(R.children)-1])
	}
	R.frames = NewFrames()
}

// Snapshot appends to the Frames a new frame with the current coordinates
// of every Positioned node under R, and returns the index of the new frame.
// A node without a row, or whose row is held by a node earlier in the
// traversal, gets a new row past every row in use, so the rows of the
// older frames keep their meaning. Rows held by no node are zero.
func (R *Root) Snapshot() int {
	pos := CollectType[Positioned](R)
	next := 0
	for i := 0; i < R.frames.Len(); i++ {
		next = max(next, R.frames.Rows(i))
	}
	for _, p := range pos {
		next = max(next, p.Row()+1)
	}
	held := make(map[int]bool, len(pos))
	for _, p := range pos {
		if r := p.Row(); r < 0 || held[r] {
			p.SetRow(next)
			next++
		}
		held[p.Row()] = true
	}
	f := R.frames.AddFrame(1, 1, next)
	for i := 0; i < next; i++ {
		R.frames.AddCoord(v3.Vec{}, f) //can't fail, the frame was sized for these.
	}
	for _, p := range pos {
		R.frames.SetCoord(p.Row(), f, p.Coord())
	}
	return f
}

/*****Model***/

// Model is one structure (topology) in a Root. Its ordinal is the model serial.
type Model struct {
	Composite
	OrdinalAttr
}

func NewModel(serial int) *Model {
	M := new(Model)
	M.SetOrdinal(serial)
	return M
}

func (M *Model) Kind() Kind { return KindModel }

// Accepts molecules or, for atom-only models, atoms.
func (M *Model) Accepts(k Kind) bool    { return k == KindMolecule || k == KindAtom }
func (M *Model) Add(child Node)         { Add(M, child) }
func (M *Model) Remove(child Node) Node { return Remove(M, child) }

/*****Molecule***/

// Molecule is a chain: a run of residues, or of atoms, sharing one chain ID.
type Molecule struct {
	Composite
	ChainAttr
	NameAttr
}

func NewMolecule(chain byte) *Molecule {
	M := new(Molecule)
	M.SetChainID(chain)
	return M
}

func (M *Molecule) Kind() Kind { return KindMolecule }

// Accepts submolecules or, for atom-only molecules, atoms.
func (M *Molecule) Accepts(k Kind) bool { return k == KindSubmolecule || k == KindAtom }

func (M *Molecule) Add(child Node) { Add(M, child) }
func (M *Molecule) Remove(child Node) Node { return Remove(M, child) }

/*****Submolecule***/

// Submolecule is a residue: a named, sequence-numbered group of atoms.
type Submolecule struct {
	Composite
	NameAttr
	OrdinalAttr
	ICodeAttr
}

// NewSubmolecule returns a residue with the given name and sequence number.
// A zero number is assigned when the residue is added to its parent (see Add).
func NewSubmolecule(name string, seq int, icode byte) *Submolecule {
	S := new(Submolecule)
	S.SetName(name)
	S.SetOrdinal(seq)
	S.SetICode(icode)
	return S
}

func (S *Submolecule) Kind() Kind             { return KindSubmolecule }
func (S *Submolecule) Accepts(k Kind) bool    { return k == KindAtom }
func (S *Submolecule) Add(child Node)         { Add(S, child) }
func (S *Submolecule) Remove(child Node) Node { return Remove(S, child) }

//lastOrdinal returns the ordinal of the last Submolecule in seq, or 0.
func lastOrdinal(seq []Node) int {
	for i := len(seq) - 1; i >= 0; i-- {
		if s, ok := seq[i].(*Submolecule); ok {
			return s.Ordinal()
		}
	}
	return 0
}

// OneLetter returns the one-letter code of the residue, or 0 if it is not an amino acid.
func (S *Submolecule) OneLetter() byte {
	return three2OneLetter[S.Name()]
}

// Atoms returns the atoms of the residue.
func (S *Submolecule) Atoms() []*Atom {
	ret := make([]*Atom, 0, len(S.children))
	for _, v := range S.children {
		if a, ok := v.(*Atom); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

/*****Atom***/

// Atom is always a Leaf.
type Atom struct {
	Leaf
	NameAttr
	OrdinalAttr
	PositionAttr
	OccupancyAttr
	BFactorAttr
	ElementAttr
	ChargeAttr
}

// NewAtom returns an atom with the given name, serial and coordinates.
// The atom has no row in any Frames, and full occupancy.
func NewAtom(name string, serial int, coord v3.Vec) *Atom {
	A := new(Atom)
	A.SetName(name)
	A.SetOrdinal(serial)
	A.SetCoord(coord)
	A.SetRow(-1)
	A.SetOccupancy(1.0)
	return A
}

func (A *Atom) Kind() Kind { return KindAtom }

// Copy returns a detached copy of the atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilNode)
	}
	N := *A
	N.parent = nil
	return &N
}
