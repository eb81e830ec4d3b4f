/*
 * profile.go, part of molarch.
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

// Package chemplot draws per-residue profiles of molarch hierarchies with gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/rmera/molarch"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is the profile of one chain: residue sequence numbers as X and the
// mean thermal factor of the residue atoms as Y.
type Series struct {
	Chain byte
	XYs   plotter.XYs
}

// BFactorProfile returns one Series per Molecule under n that contains residues.
// Residues whose name is in skip (i.e. "HOH") and residues without atoms are left out.
func BFactorProfile(n chem.Node, skip []string) []Series {
	ret := make([]Series, 0)
	mols := chem.WalkType[*chem.Molecule](n)
	for mols.Next() {
		m := mols.Node()
		s := Series{Chain: m.ChainID(), XYs: make(plotter.XYs, 0, m.Len())}
		for _, c := range m.Children() {
			res, ok := c.(*chem.Submolecule)
			if !ok || isInString(skip, res.Name()) {
				continue
			}
			atoms := res.Atoms()
			if len(atoms) == 0 {
				continue
			}
			var sum float64
			for _, a := range atoms {
				sum += a.BFactor()
			}
			s.XYs = append(s.XYs, plotter.XY{X: float64(res.Ordinal()), Y: sum / float64(len(atoms))})
		}
		if len(s.XYs) > 0 {
			ret = append(ret, s)
		}
	}
	return ret
}

// ProfilePlot draws the series as lines, one color per chain, and saves the plot
// to filename. The format is taken from the extension of filename (png, svg, pdf...).
func ProfilePlot(series []Series, title, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("ProfilePlot: no data to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "B-factor"
	p.Add(plotter.NewGrid())
	for key, s := range series {
		l, err := plotter.NewLine(s.XYs)
		if err != nil {
			return fmt.Errorf("ProfilePlot: chain %c: %w", chainLabel(s.Chain), err)
		}
		r, g, b := colors(key, len(series))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("chain %c", chainLabel(s.Chain)), l)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("ProfilePlot: %w", err)
	}
	return nil
}

func chainLabel(c byte) byte {
	if c == 0 || c == ' ' {
		return '_'
	}
	return c
}
