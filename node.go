/*
 * node.go, part of molarch.
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

import "slices"

/**Note: Add and Remove panic instead of returning errors. A bad linkage request
 * means that the program building the tree is wrong, not that some input is,
 * so it should crash.**/

// Kind is the level of the hierarchy a node represents.
type Kind int

const (
	KindRoot Kind = iota
	KindModel
	KindMolecule
	KindSubmolecule
	KindAtom
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindModel:
		return "model"
	case KindMolecule:
		return "molecule"
	case KindSubmolecule:
		return "submolecule"
	case KindAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// link is the non-owning back-reference every node has.
type link struct {
	parent Node
}

func (l *link) Parent() Node   { return l.parent }
func (l *link) linkage() *link { return l }

// Composite is the shape of nodes that own an ordered sequence of children.
type Composite struct {
	link
	children []Node
}

// Children returns a copy of the owned sequence, in insertion order.
func (C *Composite) Children() []Node {
	ret := make([]Node, len(C.children))
	copy(ret, C.children)
	return ret
}

// Len returns the number of children.
func (C *Composite) Len() int { return len(C.children) }

func (C *Composite) composite() *Composite { return C }

// Leaf is the shape of nodes that never own children.
type Leaf struct {
	link
}

func (L *Leaf) Children() []Node      { return []Node{} }
func (L *Leaf) composite() *Composite { return nil }

// kids returns the actual child slice, for iteration within the package.
func kids(n Node) []Node {
	c := n.composite()
	if c == nil {
		return nil
	}
	return c.children
}

// Add transfers the ownership of child to parent, appending it to the
// parent's children, and sets the child's back-reference. It panics if
// child is already owned (Remove it first), if parent is a Leaf, or if
// parent is an Accepter that does not take children of child's Kind.
// A Submolecule with ordinal 0 gets the ordinal of the last Submolecule
// among its new siblings plus one (1 if there is none).
func Add(parent, child Node) {
	switch {
	case parent == nil || child == nil:
		panic(ErrNilNode)
	case child.Kind() == KindRoot:
		panic(ErrRootOwned)
	case child.Parent() != nil:
		panic(ErrAlreadyOwned)
	}
	c := parent.composite()
	if c == nil {
		panic(ErrLeafChildren)
	}
	if acc, ok := parent.(Accepter); ok && !acc.Accepts(child.Kind()) {
		panic(ErrWrongKind)
	}
	//child has no parent, so it can only be in a cycle if it is parent itself
	//or one of parent's ancestors.
	for p := parent; p != nil; p = p.Parent() {
		if p == child {
			panic(ErrCycle)
		}
	}
	if sub, ok := child.(*Submolecule); ok && sub.Ordinal() == 0 {
		sub.SetOrdinal(lastOrdinal(c.children) + 1)
	}
	c.children = append(c.children, child)
	child.linkage().parent = parent
}

// Remove detaches child from parent and returns it, now unowned.
// It panics if child's recorded parent is not parent.
func Remove(parent, child Node) Node {
	if parent == nil || child == nil {
		panic(ErrNilNode)
	}
	if child.Parent() != parent {
		panic(ErrNotChild)
	}
	c := parent.composite()
	i := slices.Index(c.children, child)
	if i < 0 {
		panic(ErrNotChild) //can't happen unless the linkage was corrupted.
	}
	c.children = slices.Delete(c.children, i, i+1)
	child.linkage().parent = nil
	return child
}

// Detach removes n from its parent, if it has one, and returns it.
func Detach(n Node) Node {
	if p := n.Parent(); p != nil {
		return Remove(p, n)
	}
	return n
}

// RootOf returns the Root at the top of n's hierarchy, or nil if the
// topmost ancestor of n is not a Root.
func RootOf(n Node) *Root {
	for ; n != nil; n = n.Parent() {
		if r, ok := n.(*Root); ok {
			return r
		}
	}
	return nil
}

// Ancestor returns the closest ancestor of n (n excluded) of the given kind, or nil.
func Ancestor(n Node, k Kind) Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == k {
			return p
		}
	}
	return nil
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilNode         = PanicMsg("molarch: nil node in linkage operation")
	ErrRootOwned       = PanicMsg("molarch: a Root can't be owned by another node")
	ErrAlreadyOwned    = PanicMsg("molarch: node already owned, remove it from its parent first")
	ErrLeafChildren    = PanicMsg("molarch: a Leaf can't own children")
	ErrWrongKind       = PanicMsg("molarch: parent doesn't accept children of this kind")
	ErrCycle           = PanicMsg("molarch: node would become its own ancestor")
	ErrNotChild        = PanicMsg("molarch: node is not a child of the given parent")
	ErrIndexOutOfRange = PanicMsg("molarch: index out of range")
	ErrFrameCount      = PanicMsg("molarch: a frame block needs at least one frame")
)
