/*
 * digest.go, part of molarch.
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
	"fmt"
	"io"

	"lukechampine.com/blake3"
)

// Digest returns a BLAKE3 hash, in hex, of the topology of the subtree
// under n. Each node contributes its depth and kind and the values of
// its Named, Ordered, ChainIdentified, InsertionCoded, ElementBearer and
// Charged capabilities, in pre-order. Coordinates, occupancies and thermal
// factors are left out, so all the frames of a trajectory, or a structure
// before and after a minimization, digest to the same value.
func Digest(n Node) string {
	hasher := blake3.New(32, nil)
	w := Walk(n)
	for w.Next() {
		writeTopology(hasher, w.Node(), w.Depth())
	}
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func writeTopology(h io.Writer, n Node, depth int) {
	fmt.Fprintf(h, "%d %s", depth, n.Kind())
	if v, ok := n.(Named); ok {
		fmt.Fprintf(h, " n=%q", v.Name())
	}
	if v, ok := n.(Ordered); ok {
		fmt.Fprintf(h, " o=%d", v.Ordinal())
	}
	if v, ok := n.(ChainIdentified); ok {
		fmt.Fprintf(h, " c=%d", v.ChainID())
	}
	if v, ok := n.(InsertionCoded); ok {
		fmt.Fprintf(h, " i=%d", v.ICode())
	}
	if v, ok := n.(ElementBearer); ok {
		fmt.Fprintf(h, " e=%q", v.Element())
	}
	if v, ok := n.(Charged); ok {
		fmt.Fprintf(h, " q=%d", v.FormalCharge())
	}
	h.Write([]byte("\n"))
}
