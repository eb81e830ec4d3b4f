/*
 * main_test.go, part of molarch.
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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/molarch"
	"github.com/rmera/molarch/pdb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//setup puts the flags back to their defaults.
func setup() {
	logger = zap.NewNop()
	verbose, renumber = false, false
	first, last, stride = 0, 0, 0
	output, plotFile, residues, title = "", "", "", ""
	skip = []string{"HOH"}
}

//writeFixture writes a 2-model file with 4 atoms in 3 residues.
func writeFixture(Te *testing.T, name string) {
	atoms := []struct {
		record, name, res string
		seq               int
		element           string
	}{
		{"ATOM", "N", "ALA", 1, "N"},
		{"ATOM", "CA", "ALA", 1, "C"},
		{"ATOM", "N", "GLY", 2, "N"},
		{"HETATM", "O", "HOH", 101, "O"},
	}
	var b strings.Builder
	b.WriteString("HEADER    TEST                                    01-JAN-00   1ABC\n")
	for m := 1; m <= 2; m++ {
		fmt.Fprintf(&b, "MODEL     %4d\n", m)
		for i, a := range atoms {
			fmt.Fprintf(&b, "%-6s%5d  %-3s %3s A%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s\n",
				a.record, i+1, a.name, a.res, a.seq, float64(i), float64(m), 0.0, 1.0, float64(10*(i+1)), a.element)
		}
		b.WriteString("ENDMDL\n")
	}
	b.WriteString("END\n")
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
		Te.Fatal(err)
	}
}

func TestConvert(Te *testing.T) {
	setup()
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.pdb")
	writeFixture(Te, in)
	output = filepath.Join(dir, "out.pdb.gz")
	first = 2
	if err := runConvert(&cobra.Command{}, []string{in}); err != nil {
		Te.Fatal(err)
	}
	R, err := pdb.ReadFile(output, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Frames().Len() != 1 || R.Frames().Coord(0, 0)[1] != 2 {
		Te.Errorf("expected only the second model, got %d frames", R.Frames().Len())
	}
	if R.Name() != "1ABC" || len(chem.CollectType[*chem.Atom](R)) != 4 {
		Te.Errorf("the hierarchy changed: %s with %d atoms", R.Name(), len(chem.CollectType[*chem.Atom](R)))
	}
}

func TestConvertStdout(Te *testing.T) {
	setup()
	in := filepath.Join(Te.TempDir(), "in.pdb")
	writeFixture(Te, in)
	renumber = true
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runConvert(cmd, []string{in}); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "HEADER") || strings.Count(out, "MODEL ") != 2 || !strings.HasSuffix(out, "END\n") {
		Te.Errorf("unexpected output:\n%s", out)
	}
}

func TestConvertGlob(Te *testing.T) {
	setup()
	dir := Te.TempDir()
	writeFixture(Te, filepath.Join(dir, "in", "a.pdb"))
	writeFixture(Te, filepath.Join(dir, "in", "deep", "er", "b.pdb"))
	writeFixture(Te, filepath.Join(dir, "in", "c.cif"))
	output = filepath.Join(dir, "out")
	if err := runConvert(&cobra.Command{}, []string{filepath.Join(dir, "in", "**", "*.pdb")}); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"a.pdb", "b.pdb"} {
		if _, err := os.Stat(filepath.Join(output, name)); err != nil {
			Te.Errorf("%s was not written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(output, "c.cif")); err == nil {
		Te.Errorf("c.cif doesn't match the pattern")
	}
	output = ""
	if err := runConvert(&cobra.Command{}, []string{filepath.Join(dir, "in", "**", "*.pdb")}); err == nil {
		Te.Errorf("several inputs and no output directory should fail")
	}
	if err := runConvert(&cobra.Command{}, []string{filepath.Join(dir, "*.xyz")}); err == nil {
		Te.Errorf("a pattern that matches nothing should fail")
	}
}

func TestInfo(Te *testing.T) {
	setup()
	in := filepath.Join(Te.TempDir(), "in.pdb")
	writeFixture(Te, in)
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runInfo(cmd, []string{in}); err != nil {
		Te.Fatal(err)
	}
	R, err := pdb.ReadFile(in, nil)
	if err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"id:        1ABC\n",
		"models:    1\n",
		"residues:  3 (2 standard, 1 hetero)\n",
		"atoms:     4\n",
		"depth:     4\n",
		"frames:    2\n",
		"mass:      56.030\n",
		"digest:    " + chem.Digest(R) + "\n",
	} {
		if !strings.Contains(out, want) {
			Te.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestInfoResidues(Te *testing.T) {
	setup()
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.pdb")
	writeFixture(Te, in)
	residues = filepath.Join(dir, "residues.yaml")
	if err := os.WriteFile(residues, []byte("amino_acids: [ALA]\nnucleic_acids: []\nextra: [HOH]\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runInfo(cmd, []string{in}); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "residues:  3 (2 standard, 1 hetero)\n") {
		Te.Errorf("GLY should be hetero, HOH standard:\n%s", buf.String())
	}
	residues = filepath.Join(dir, "missing.yaml")
	if err := runInfo(cmd, []string{in}); err == nil {
		Te.Errorf("a missing residue file should fail")
	}
}

func TestProfile(Te *testing.T) {
	setup()
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.pdb")
	writeFixture(Te, in)
	plotFile = filepath.Join(dir, "profile.png")
	if err := runProfile(&cobra.Command{}, []string{in}); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(plotFile); err != nil || st.Size() == 0 {
		Te.Errorf("no plot written: %v", err)
	}
}
