/*
 * node_test.go, part of molarch.
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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	v3 "github.com/rmera/molarch/v3"
)

//testTree builds a Root with one Model, a chain A with two residues of two
//atoms each, and a chain B with a lone atom.
func testTree() *Root {
	R := NewRoot("1TST")
	M := NewModel(1)
	R.Add(M)
	A := NewMolecule('A')
	M.Add(A)
	serial := 1
	for _, name := range []string{"GLY", "ALA"} {
		S := NewSubmolecule(name, 0, ' ')
		A.Add(S)
		for _, an := range []string{"N", "CA"} {
			S.Add(NewAtom(an, serial, v3.Vec{float64(serial), 0, 0}))
			serial++
		}
	}
	B := NewMolecule('B')
	M.Add(B)
	B.Add(NewAtom("ZN", serial, v3.Vec{0, 0, float64(serial)}))
	return R
}

func names(nodes []Node) []string {
	ret := make([]string, 0, len(nodes))
	for _, v := range nodes {
		if n, ok := v.(Named); ok {
			ret = append(ret, v.Kind().String()+":"+n.Name())
		} else {
			ret = append(ret, v.Kind().String())
		}
	}
	return ret
}

func mustPanic(Te *testing.T, want PanicMsg, f func()) {
	Te.Helper()
	defer func() {
		if r := recover(); r != want {
			Te.Errorf("expected panic %q, got %v", want, r)
		}
	}()
	f()
}

func TestAddRemoveRoundTrip(Te *testing.T) {
	R := testTree()
	M := R.Models()[0]
	before := M.Children()
	mol := NewMolecule('C')
	M.Add(mol)
	if mol.Parent() != M {
		Te.Errorf("parent not set after Add")
	}
	if M.Len() != len(before)+1 {
		Te.Errorf("expected %d children, got %d", len(before)+1, M.Len())
	}
	got := M.Remove(mol)
	if got != mol {
		Te.Errorf("Remove returned a different node")
	}
	if mol.Parent() != nil {
		Te.Errorf("parent not cleared after Remove")
	}
	if diff := cmp.Diff(names(before), names(M.Children())); diff != "" {
		Te.Errorf("children changed after Add/Remove (-want +got):\n%s", diff)
	}
	for i, v := range M.Children() {
		if v != before[i] {
			Te.Errorf("child %d is not the same node", i)
		}
	}
}

func TestChildrenIsACopy(Te *testing.T) {
	R := testTree()
	M := R.Models()[0]
	ch := M.Children()
	ch[0] = nil
	if M.Children()[0] == nil {
		Te.Errorf("Children exposes the owned sequence")
	}
	a := NewAtom("O", 1, v3.Vec{})
	if a.Children() == nil || len(a.Children()) != 0 {
		Te.Errorf("a leaf should have an empty, non-nil, children sequence")
	}
	if len(NewModel(2).Children()) != 0 {
		Te.Errorf("a new composite should have no children")
	}
}

func TestStructuralPanics(Te *testing.T) {
	R := testTree()
	M := R.Models()[0]
	A := M.Children()[0].(*Molecule)
	S := A.Children()[0].(*Submolecule)
	at := S.Atoms()[0]
	mustPanic(Te, ErrAlreadyOwned, func() { M.Add(A) })
	mustPanic(Te, ErrAlreadyOwned, func() { NewSubmolecule("GLY", 1, ' ').Add(at) })
	mustPanic(Te, ErrNotChild, func() { M.Remove(S) })
	mustPanic(Te, ErrRootOwned, func() { Add(NewModel(1), NewRoot("X")) })
	mustPanic(Te, ErrWrongKind, func() { R.Add(NewMolecule('Z')) })
	mustPanic(Te, ErrWrongKind, func() { S.Add(NewSubmolecule("ALA", 3, ' ')) })
	mustPanic(Te, ErrLeafChildren, func() { Add(at, NewAtom("H", 9, v3.Vec{})) })
	mustPanic(Te, ErrNilNode, func() { M.Add(nil) })
	g1, g2 := new(group), new(group)
	Add(g1, g2)
	mustPanic(Te, ErrCycle, func() { Add(g2, g1) })
	mustPanic(Te, ErrCycle, func() { Add(g1, g1) })
}

//group is a node that takes children of any kind.
type group struct {
	Composite
}

func (G *group) Kind() Kind { return KindMolecule }

func TestSubmoleculeOrdinals(Te *testing.T) {
	mol := NewMolecule('A')
	mol.Add(NewSubmolecule("GLY", 0, ' '))
	mol.Add(NewSubmolecule("ALA", 0, ' '))
	mol.Add(NewSubmolecule("SER", 10, ' '))
	mol.Add(NewSubmolecule("THR", 0, ' '))
	mol.Add(NewAtom("ZN", 1, v3.Vec{}))
	mol.Add(NewSubmolecule("HOH", 0, ' '))
	got := make([]int, 0)
	for _, v := range mol.Children() {
		if s, ok := v.(*Submolecule); ok {
			got = append(got, s.Ordinal())
		}
	}
	if diff := cmp.Diff([]int{1, 2, 10, 11, 12}, got); diff != "" {
		Te.Errorf("wrong ordinals (-want +got):\n%s", diff)
	}
	//the package-level Add numbers residues the same way as the method.
	M := NewMolecule('B')
	M.Add(NewSubmolecule("ALA", 0, ' '))
	gly := NewSubmolecule("GLY", 0, ' ')
	Add(M, gly)
	ser := NewSubmolecule("SER", 7, ' ')
	Add(M, ser)
	thr := NewSubmolecule("THR", 0, ' ')
	Add(M, thr)
	if gly.Ordinal() != 2 || ser.Ordinal() != 7 || thr.Ordinal() != 8 {
		Te.Errorf("expected ordinals 2, 7 and 8, got %d, %d and %d", gly.Ordinal(), ser.Ordinal(), thr.Ordinal())
	}
	//a removed and re-added residue keeps its number.
	Remove(M, gly)
	Add(M, gly)
	if gly.Ordinal() != 2 {
		Te.Errorf("a re-added residue should keep ordinal 2, got %d", gly.Ordinal())
	}
}

func TestNavigation(Te *testing.T) {
	R := testTree()
	at := CollectType[*Atom](R)[1]
	if RootOf(at) != R {
		Te.Errorf("RootOf didn't find the root")
	}
	if mol, ok := Ancestor(at, KindMolecule).(*Molecule); !ok || mol.ChainID() != 'A' {
		Te.Errorf("Ancestor didn't find chain A")
	}
	if Ancestor(R, KindModel) != nil {
		Te.Errorf("the root has no ancestors")
	}
	S := at.Parent().(*Submolecule)
	Detach(S)
	if RootOf(at) != nil {
		Te.Errorf("a detached subtree should have no root")
	}
	if S.OneLetter() != 'G' {
		Te.Errorf("expected G, got %c", S.OneLetter())
	}
	R.Clear()
	if R.Len() != 0 || R.Frames().Len() != 0 {
		Te.Errorf("Clear left %d models and %d frames", R.Len(), R.Frames().Len())
	}
}

func TestAtomCopy(Te *testing.T) {
	R := testTree()
	at := CollectType[*Atom](R)[0]
	at.SetBFactor(12.5)
	c := at.Copy()
	if c.Parent() != nil {
		Te.Errorf("the copy should be detached")
	}
	if c.Name() != at.Name() || c.Ordinal() != at.Ordinal() || c.BFactor() != 12.5 || c.Occupancy() != 1 {
		Te.Errorf("copy differs from the original: %v %v", c, at)
	}
	c.SetName("XX")
	if at.Name() == "XX" {
		Te.Errorf("the copy shares data with the original")
	}
	var none *Atom
	mustPanic(Te, ErrNilNode, func() { none.Copy() })
}
