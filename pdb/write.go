/*
 * write.go, part of molarch.
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

package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/molarch"
	v3 "github.com/rmera/molarch/v3"
)

//atomLine is the format of ATOM and HETATM records.
const atomLine = "%-6s%5s %-4s%1c%3s %1c%4s%1c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%2s\n"

//printer holds the state of one Write.
type printer struct {
	s    *Session
	out  *bufio.Writer
	res  *ResidueSet
	prev *printed //the last atom written in the current block, or nil
}

//printed is what is needed from an atom to close its chain with a TER record.
type printed struct {
	serial   int
	resName  string
	chain    byte
	resSeq   string
	icode    byte
	mol      chem.Node //the molecule of the atom, or nil
	standard bool
}

// Write writes the subtree under n as PDB records, for the frames selected
// in s, taken from the Frames of the Root over n (if n has no Root, or the
// Root has no frames, the coordinates in the atoms are used). If more than
// one frame is selected, each is written in a MODEL block. A Root with a
// name gets a HEADER record, and a Root or Model ends with an END record.
// Each chain of standard residues is closed by a TER record. Nodes without
// ordinals are numbered with counters that start again in each block. The
// only errors returned are those of w.
//
// The frames take precedence over the coordinates stored in the atoms.
// After Read, frame 0 holds the coordinates of the file, so moving an atom
// with SetCoord does not change what is written: edit the frame with
// Frames.SetCoord, or take a new frame with Root.Snapshot and select it.
func Write(w io.Writer, n chem.Node, s *Session) error {
	return errDecorate(write(w, n, s, ""), "Write")
}

// WriteFile writes a PDB file, compressed if the name ends in .gz or .zst (see CreateFile).
func WriteFile(name string, n chem.Node, s *Session) error {
	f, err := CreateFile(name)
	if err != nil {
		return errDecorate(err, "WriteFile")
	}
	err = write(f, n, s, name)
	if err2 := f.Close(); err == nil && err2 != nil {
		err = Error{message: UnableToWrite, filename: name, critical: true, err: err2}
	}
	return errDecorate(err, "WriteFile")
}

func write(w io.Writer, n chem.Node, s *Session, filename string) error {
	s = s.begin()
	defer s.end()
	P := &printer{s: s, out: bufio.NewWriter(w), res: s.residueSet()}
	nframes := 0
	if R := chem.RootOf(n); R != nil {
		nframes = R.Frames().Len()
	}
	frames := s.frames(nframes)
	root, isRoot := n.(*chem.Root)
	if isRoot && root.Name() != "" {
		fmt.Fprintf(P.out, "HEADER    %-40s%-9s   %-4s\n", "", "", fit(root.Name(), 4))
	}
	switch {
	case len(frames) > 1:
		fmt.Fprintf(P.out, "NUMMDL    %-4d\n", len(frames))
		for i, f := range frames {
			fmt.Fprintf(P.out, "MODEL     %4d\n", i+1)
			P.block(n, f)
			fmt.Fprintf(P.out, "ENDMDL\n")
		}
	case isRoot && len(root.Models()) > 1:
		for i, m := range root.Models() {
			serial := m.Ordinal()
			if serial <= 0 || s.Renumber {
				serial = i + 1
			}
			fmt.Fprintf(P.out, "MODEL     %4d\n", serial)
			P.block(m, frames[0])
			fmt.Fprintf(P.out, "ENDMDL\n")
		}
	default:
		P.block(n, frames[0])
	}
	if k := n.Kind(); k == chem.KindRoot || k == chem.KindModel {
		fmt.Fprintf(P.out, "END\n")
	}
	if err := P.out.Flush(); err != nil {
		return Error{message: UnableToWrite, filename: filename, critical: true, err: err}
	}
	return nil
}

//block writes the atoms under n with the coordinates of the given frame.
func (P *printer) block(n chem.Node, frame int) {
	P.s.reset()
	P.prev = nil
	var lastRes chem.Node
	resSerial := 0
	w := chem.WalkKind(n, chem.KindAtom)
	for w.Next() {
		a := w.Node()
		cur := printed{chain: ' '}
		if mol := chem.Ancestor(a, chem.KindMolecule); mol != nil {
			cur.mol = mol
			if c, ok := mol.(chem.ChainIdentified); ok && c.ChainID() != 0 {
				cur.chain = c.ChainID()
			}
		}
		if res := a.Parent(); res != nil && res.Kind() == chem.KindSubmolecule {
			if res != lastRes {
				resSerial = P.serial(res, P.s.nextResidue)
				lastRes = res
			}
			if nm, ok := res.(chem.Named); ok {
				cur.resName = fit(nm.Name(), 3)
			}
			if ic, ok := res.(chem.InsertionCoded); ok && ic.ICode() != 0 {
				cur.icode = ic.ICode()
			}
			cur.resSeq = FormatSerial(resSerial, residueWidth)
			cur.standard = P.res.Standard(cur.resName)
		}
		if cur.icode == 0 {
			cur.icode = ' '
		}
		//a chain of standard residues ends when the molecule changes, or
		//when a non-standard residue comes.
		if P.prev != nil && P.prev.standard && (!cur.standard || P.prev.mol != cur.mol) {
			P.ter()
		}
		cur.serial = P.serial(a, P.s.nextAtom)
		P.atom(a, &cur, frame)
		P.prev = &cur
	}
	if P.prev != nil && P.prev.standard {
		P.ter()
	}
}

//serial returns the ordinal of n, or the next number from the given
//counter if n has no ordinal, or the session renumbers.
func (P *printer) serial(n chem.Node, next func() int) int {
	if o, ok := n.(chem.Ordered); ok && !P.s.Renumber {
		return o.Ordinal()
	}
	return next()
}

func (P *printer) atom(a chem.Node, cur *printed, frame int) {
	record := "HETATM"
	if cur.standard {
		record = "ATOM"
	}
	var coord v3.Vec
	if p, ok := a.(chem.Positioned); ok {
		coord = chem.CoordAt(a, p, frame)
	}
	occ := 1.0
	if o, ok := a.(chem.Occupant); ok {
		occ = o.Occupancy()
	}
	var bfac float64
	if b, ok := a.(chem.ThermalFactored); ok {
		bfac = b.BFactor()
	}
	element := ""
	if e, ok := a.(chem.ElementBearer); ok {
		element = fit(e.Element(), 2)
	}
	name := ""
	if nm, ok := a.(chem.Named); ok {
		name = fit(nm.Name(), 4)
	}
	//columns 13-14 hold the element right-justified, so only names of
	//one-letter elements start in column 14.
	if len(name) < 4 && !(len(element) == 2 && strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(element))) {
		name = " " + name
	}
	charge := "  "
	if q, ok := a.(chem.Charged); ok {
		charge = FormatCharge(q.FormalCharge())
	}
	fmt.Fprintf(P.out, atomLine, record, FormatSerial(cur.serial, atomWidth), name, ' ',
		cur.resName, cur.chain, cur.resSeq, cur.icode,
		coord[0], coord[1], coord[2], occ, bfac, element, charge)
}

//ter closes the chain of the previous atom. The TER record takes
//the serial after the atom's.
func (P *printer) ter() {
	p := P.prev
	serial := p.serial + 1
	if serial > P.s.atoms {
		//so the counter doesn't give the same number to the next atom.
		P.s.atoms = serial
	}
	fmt.Fprintf(P.out, "TER   %5s      %3s %1c%4s%1c\n", FormatSerial(serial, atomWidth), p.resName, p.chain, p.resSeq, p.icode)
	P.prev = nil
}
