/*
 * read.go, part of molarch.
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
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/molarch"
	v3 "github.com/rmera/molarch/v3"
)

//atomRecord is what an ATOM or HETATM line holds.
type atomRecord struct {
	serial  int
	name    string
	resName string
	chain   byte
	resSeq  int
	noSeq   bool //blank residue sequence field
	icode   byte
	coord   v3.Vec
	occ     float64
	bfactor float64
	element string
	charge  int
}

type adder interface {
	Add(chem.Node)
}

type resKey struct {
	name  string
	seq   int
	icode byte
}

//scanner holds the state of one Read. The first model (or the whole file,
//if it has no MODEL records) builds the topology and frame 0. Each later
//MODEL block is one more frame.
type scanner struct {
	s        *Session
	filename string
	root     *chem.Root
	model    *chem.Model
	mol      *chem.Molecule
	res      *chem.Submolecule
	lastRes  resKey
	natoms   int  //atoms in the topology
	topology bool //the topology is complete
	frame    int  //the frame being read after the topology, or -1
	full     bool //the current frame overflowed
	serial   int  //previous atom serial
	resSeq   int  //previous residue sequence number
	line     int
}

// Read builds a hierarchy from the PDB records in r. Format errors (a line
// too short, a field that can't be parsed) and consistency errors (a model
// whose atoms don't match the first one) are warnings: the offending line
// or frame is skipped and the scan goes on. The warnings are available from
// s. The only errors returned are those of r. The scan stops at an END
// record or at the end of r.
func Read(r io.Reader, s *Session) (*chem.Root, error) {
	root, err := read(r, s, "")
	return root, errDecorate(err, "Read")
}

// ReadFile reads a PDB file, which may be gzip- or zstd-compressed (see OpenFile).
func ReadFile(name string, s *Session) (*chem.Root, error) {
	f, err := OpenFile(name)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer f.Close()
	root, err := read(f, s, name)
	return root, errDecorate(err, "ReadFile")
}

func read(r io.Reader, s *Session, filename string) (*chem.Root, error) {
	s = s.begin()
	defer s.end()
	sc := &scanner{s: s, filename: filename, root: chem.NewRoot(""), frame: -1}
	buf := bufio.NewReader(r)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return sc.root, Error{message: UnableToRead, filename: filename, line: sc.line + 1, critical: true, err: err}
		}
		if len(line) > 0 {
			sc.line++
			if !sc.record(strings.TrimRight(line, "\r\n")) {
				break
			}
		}
		if err == io.EOF {
			break
		}
	}
	sc.finish()
	return sc.root, nil
}

func (sc *scanner) warn(msg string, cause error) {
	sc.s.warn(Error{message: msg, filename: sc.filename, line: sc.line, err: cause})
}

//record processes one line, and returns false if the scan should stop.
func (sc *scanner) record(line string) bool {
	hp := strings.HasPrefix
	switch {
	case hp(line, "ATOM  ") || hp(line, "HETATM"):
		sc.atom(line)
	case hp(line, "ANISOU"), hp(line, "SIGUIJ"), hp(line, "SIGATM"):
		//skipped
	case hp(line, "ENDMDL"):
		sc.endModel()
	case hp(line, "MODEL"):
		sc.startModel(line)
	case hp(line, "NUMMDL"):
		n, err := strconv.Atoi(strings.TrimSpace(field(line, 10, 14)))
		if err != nil || n < 0 {
			sc.warn(BadNumber, err)
			break
		}
		sc.root.Frames().Reserve(n)
	case hp(line, "HEADER"):
		sc.root.SetName(strings.TrimSpace(field(line, 62, 66)))
	case strings.TrimSpace(line) == "END":
		return false
	}
	//TER and everything else don't change the hierarchy.
	return true
}

func (sc *scanner) startModel(line string) {
	sc.serial = 0
	sc.resSeq = 0
	serial, err := strconv.Atoi(strings.TrimSpace(field(line, 6, 14)))
	if err != nil {
		sc.warn(BadNumber, err)
		serial = len(sc.root.Models()) + sc.root.Frames().Len()
	}
	if sc.model != nil && !sc.topology {
		//MODEL without ENDMDL before it.
		sc.endModel()
	}
	if !sc.topology {
		sc.model = chem.NewModel(serial)
		sc.root.Add(sc.model)
		return
	}
	if sc.frame >= 0 {
		sc.endModel()
	}
	sc.frame = sc.root.Frames().AddFrame(1, 1, sc.natoms)
	sc.full = false
}

func (sc *scanner) endModel() {
	if !sc.topology {
		if sc.model == nil {
			return
		}
		sc.closeTopology()
		return
	}
	if sc.frame < 0 {
		return
	}
	F := sc.root.Frames()
	if err := F.Close(sc.frame, sc.natoms); err != nil || sc.full {
		sc.warn(FrameMismatch, err)
		F.RemoveLastFrame()
	}
	sc.frame = -1
}

func (sc *scanner) closeTopology() {
	sc.topology = true
	sc.natoms = 0
	if sc.root.Frames().Len() > 0 {
		sc.natoms = sc.root.Frames().Rows(0)
	}
	sc.mol, sc.res = nil, nil
}

//finish closes whatever block the file left open.
func (sc *scanner) finish() {
	if sc.topology && sc.frame >= 0 {
		sc.endModel()
	}
}

func (sc *scanner) atom(line string) {
	rec, err := sc.parseAtom(line)
	if err != nil {
		sc.warn(err.message, err.err)
		return
	}
	F := sc.root.Frames()
	if sc.topology {
		if sc.frame < 0 {
			sc.warn(OutsideModel, nil)
			return
		}
		if _, err := F.AddCoord(rec.coord, sc.frame); err != nil {
			if !sc.full {
				sc.warn(FrameFull, err)
			}
			sc.full = true
		}
		return
	}
	if sc.model == nil {
		sc.model = chem.NewModel(1)
		sc.root.Add(sc.model)
	}
	if F.Len() == 0 {
		F.AddFrame(1, 1, 0)
	}
	at := chem.NewAtom(rec.name, rec.serial, rec.coord)
	at.SetOccupancy(rec.occ)
	at.SetBFactor(rec.bfactor)
	at.SetElement(rec.element)
	at.SetFormalCharge(rec.charge)
	row, _ := F.AddCoord(rec.coord, 0) //frame 0 has no row limit.
	at.SetRow(row)
	sc.parent(rec).Add(at)
}

//parent returns the node that owns the atom of rec, creating the
//molecule and residue when they change.
func (sc *scanner) parent(rec *atomRecord) adder {
	if rec.resName == "" && rec.chain == ' ' {
		sc.mol, sc.res = nil, nil
		return sc.model
	}
	if sc.mol == nil || rec.chain != sc.mol.ChainID() {
		sc.mol = chem.NewMolecule(rec.chain)
		sc.model.Add(sc.mol)
		sc.res = nil
	}
	if rec.resName == "" {
		sc.res = nil
		return sc.mol
	}
	key := resKey{name: rec.resName, seq: rec.resSeq, icode: rec.icode}
	if sc.res == nil || key != sc.lastRes {
		sc.res = chem.NewSubmolecule(rec.resName, 0, rec.icode)
		sc.mol.Add(sc.res)
		if !rec.noSeq {
			sc.res.SetOrdinal(rec.resSeq)
		}
		sc.lastRes = key
	}
	return sc.res
}

func (sc *scanner) parseAtom(line string) (*atomRecord, *Error) {
	if len(line) < 54 {
		return nil, &Error{message: ShortLine}
	}
	bad := func(err error) (*atomRecord, *Error) {
		return nil, &Error{message: BadNumber, err: err}
	}
	var err error
	rec := &atomRecord{occ: 1.0}
	rec.serial, err = ParseSerial(line[6:11], sc.serial, atomWidth)
	if err != nil {
		return bad(err)
	}
	rec.name = strings.TrimSpace(line[12:16])
	rec.resName = strings.TrimSpace(line[17:20])
	rec.chain = line[21]
	rec.icode = line[26]
	if rec.resName != "" {
		if strings.TrimSpace(line[22:26]) == "" {
			rec.noSeq = true
		} else {
			prev := sc.resSeq
			if sc.mol != nil && rec.chain != sc.mol.ChainID() {
				prev = 0 //the numbering starts again in each chain.
			}
			rec.resSeq, err = ParseSerial(line[22:26], prev, residueWidth)
			if err != nil {
				return bad(err)
			}
		}
	}
	for i := range rec.coord {
		rec.coord[i], err = strconv.ParseFloat(strings.TrimSpace(line[30+8*i:38+8*i]), 64)
		if err != nil {
			return bad(err)
		}
	}
	if f := strings.TrimSpace(field(line, 54, 60)); f != "" {
		if rec.occ, err = strconv.ParseFloat(f, 64); err != nil {
			return bad(err)
		}
	}
	if f := strings.TrimSpace(field(line, 60, 66)); f != "" {
		if rec.bfactor, err = strconv.ParseFloat(f, 64); err != nil {
			return bad(err)
		}
	}
	rec.element = strings.ToUpper(strings.TrimSpace(field(line, 76, 78)))
	if rec.element == "" {
		rec.element = chem.GuessElement(rec.name)
	}
	if rec.charge, err = ParseCharge(field(line, 78, 80)); err != nil {
		return bad(err)
	}
	//only now that the line is known to be good.
	sc.serial = rec.serial
	if rec.resName != "" && !rec.noSeq {
		sc.resSeq = rec.resSeq
	}
	return rec, nil
}
