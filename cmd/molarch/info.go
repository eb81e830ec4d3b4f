/*
 * info.go, part of molarch.
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

package main

import (
	"fmt"
	"io"

	chem "github.com/rmera/molarch"
	"github.com/rmera/molarch/chemgraph"
	"github.com/rmera/molarch/pdb"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"
)

func runInfo(cmd *cobra.Command, args []string) error {
	inputs, err := expand(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	set := s.Residues
	if set == nil {
		set = pdb.DefaultResidues()
	}
	for _, in := range inputs {
		R, err := readLogged(in, s)
		if err != nil {
			return err
		}
		summary(cmd.OutOrStdout(), in, R, set)
		if w := len(s.Warnings()); w > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "warnings:  %d\n", w)
		}
	}
	return nil
}

func summary(out io.Writer, name string, R *chem.Root, set *pdb.ResidueSet) {
	count := make(map[chem.Kind]int)
	w := chem.Walk(R)
	for w.Next() {
		count[w.Node().Kind()]++
	}
	standard := 0
	for _, r := range chem.CollectType[*chem.Submolecule](R) {
		if set.Standard(r.Name()) {
			standard++
		}
	}
	mass, unknown := chem.Mass(R)
	fmt.Fprintf(out, "file:      %s\n", name)
	if R.Name() != "" {
		fmt.Fprintf(out, "id:        %s\n", R.Name())
	}
	fmt.Fprintf(out, "models:    %d\n", count[chem.KindModel])
	fmt.Fprintf(out, "molecules: %d\n", count[chem.KindMolecule])
	fmt.Fprintf(out, "residues:  %d (%d standard, %d hetero)\n", count[chem.KindSubmolecule], standard, count[chem.KindSubmolecule]-standard)
	fmt.Fprintf(out, "atoms:     %d\n", count[chem.KindAtom])
	fmt.Fprintf(out, "depth:     %d\n", depth(R))
	fmt.Fprintf(out, "frames:    %d\n", R.Frames().Len())
	if unknown > 0 {
		fmt.Fprintf(out, "mass:      %.3f (%d atoms of unknown element left out)\n", mass, unknown)
	} else {
		fmt.Fprintf(out, "mass:      %.3f\n", mass)
	}
	fmt.Fprintf(out, "digest:    %s\n", chem.Digest(R))
}

// depth returns the number of levels under R, counting R's children as 1.
func depth(R *chem.Root) int {
	g := chemgraph.New(R)
	id, _ := g.ID(R)
	deepest := 0
	var bf traverse.BreadthFirst
	bf.Walk(g, g.Node(id), func(n graph.Node, d int) bool {
		if d > deepest {
			deepest = d
		}
		return false
	})
	return deepest
}
