/*
 * profile_test.go, part of molarch.
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

package chemplot

import (
	"path/filepath"
	"testing"

	chem "github.com/rmera/molarch"
	v3 "github.com/rmera/molarch/v3"
)

func TestBFactorProfile(Te *testing.T) {
	M := chem.NewModel(1)
	for _, c := range []byte{'A', 'B'} {
		mol := chem.NewMolecule(c)
		M.Add(mol)
		for i, name := range []string{"GLY", "ALA", "HOH"} {
			S := chem.NewSubmolecule(name, 0, ' ')
			mol.Add(S)
			for j := 0; j < 2; j++ {
				a := chem.NewAtom("C", 1, v3.Vec{})
				a.SetBFactor(float64(10*(i+1) + j))
				S.Add(a)
			}
		}
	}
	//an atom-only molecule gives no series.
	ions := chem.NewMolecule('C')
	M.Add(ions)
	ions.Add(chem.NewAtom("ZN", 1, v3.Vec{}))
	series := BFactorProfile(M, []string{"HOH"})
	if len(series) != 2 {
		Te.Fatalf("expected 2 series, got %d", len(series))
	}
	for _, s := range series {
		if len(s.XYs) != 2 {
			Te.Fatalf("chain %c: expected 2 points, got %d", s.Chain, len(s.XYs))
		}
		if s.XYs[0].X != 1 || s.XYs[0].Y != 10.5 || s.XYs[1].X != 2 || s.XYs[1].Y != 20.5 {
			Te.Errorf("chain %c: wrong points %v", s.Chain, s.XYs)
		}
	}
	if err := ProfilePlot(series, "test", filepath.Join(Te.TempDir(), "profile.png")); err != nil {
		Te.Error(err)
	}
	if err := ProfilePlot(nil, "empty", filepath.Join(Te.TempDir(), "empty.png")); err == nil {
		Te.Errorf("plotting nothing should fail")
	}
}
