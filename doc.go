/*
 * doc.go, part of molarch.
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

/*Package chem is the main package of the molarch library. It provides the
hierarchy of a macromolecular structure (Root, Model, Molecule, Submolecule
and Atom), walkers to traverse it, and a store of coordinate frames so one
topology can carry a whole trajectory.

	**Building blocks**

    Every node is either a Composite, which owns an ordered sequence of children,
	or a Leaf, which owns none. A child keeps a reference to its parent, but never
	owns it. Add and Remove are the only ways to change ownership. They panic
	on a wrong request (i.e. adding a node that already has a parent) since
	that means the program building the tree is wrong.

    The data of each node comes from small embeddable structs (NameAttr,
	OrdinalAttr, PositionAttr...), each implementing a capability interface
	(Named, Ordered, Positioned...). Code that only needs, say, the name of
	a node asserts for Named, and does not care about the concrete type.

    Walk, WalkType and WalkFilter return pre-order iterators over a subtree.
	They keep an explicit stack, so the depth of the tree doesn't matter.

    A Root owns a Frames store. The row of an atom in each frame is given by
	its Row method. Frames are append-only, and a frame that doesn't match
	the topology should be removed with RemoveLastFrame.

The pdb subpackage reads and writes hierarchies in the PDB format, and the
chemgraph subpackage exposes them as gonum graphs.

molarch is licensed under the LGPL v2.1 or later.
*/
package chem
