/*
 * session.go, part of molarch.
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
	"go.uber.org/zap"
)

// Session carries the configuration of Read and Write calls, and the state
// of one call: the counters used to number nodes that have no ordinals, and
// the warnings collected. The state is reset at the start of each call, so
// a Session can be reused, but not by concurrent calls. A nil *Session is
// valid everywhere and means the defaults.
type Session struct {
	//Frame selection for Write, 1-based and inclusive. Zero values mean
	//from the first frame, to the last one, every frame.
	First, Last, Stride int

	//Renumber makes Write number atoms and residues with the session
	//counters even when they have ordinals.
	Renumber bool

	//Residues is the set of residue names written as ATOM records, and
	//closed with TER. If nil, DefaultResidues is used.
	Residues *ResidueSet

	//Logger gets one Warn entry per warning. If nil, nothing is logged.
	Logger *zap.Logger

	atoms    int //last atom number given by the counter
	residues int //last residue number given by the counter
	warnings []error
}

// Warnings returns the recoverable errors found by the last call that
// used the session.
func (s *Session) Warnings() []error {
	if s == nil {
		return nil
	}
	ret := make([]error, len(s.warnings))
	copy(ret, s.warnings)
	return ret
}

//begin prepares the session for a new call, and returns it, or a new
//Session with the defaults if s is nil.
func (s *Session) begin() *Session {
	if s == nil {
		s = new(Session)
	}
	s.atoms = 0
	s.residues = 0
	s.warnings = nil
	return s
}

//end clears the counters, so nothing leaks to the next call.
//The warnings are kept for Warnings.
func (s *Session) end() {
	s.atoms = 0
	s.residues = 0
}

//reset restarts the counters, at the start of each model or frame block.
func (s *Session) reset() {
	s.atoms = 0
	s.residues = 0
}

func (s *Session) nextAtom() int {
	s.atoms++
	return s.atoms
}

func (s *Session) nextResidue() int {
	s.residues++
	return s.residues
}

func (s *Session) warn(err Error) {
	s.warnings = append(s.warnings, err)
	if s.Logger != nil {
		s.Logger.Warn(err.message, zap.Int("line", err.line), zap.String("file", err.filename), zap.Error(err))
	}
}

func (s *Session) residueSet() *ResidueSet {
	if s.Residues == nil {
		return DefaultResidues()
	}
	return s.Residues
}

// frames returns the 0-based indexes of the frames selected out of n.
// A selection that makes no sense (i.e. Stride < 0, or First > Last)
// selects all the frames. If n is 0, the result is a single -1, which
// stands for the coordinates stored in the atoms.
func (s *Session) frames(n int) []int {
	if n <= 0 {
		return []int{-1}
	}
	first, last, stride := s.First, s.Last, s.Stride
	if first == 0 {
		first = 1
	}
	if last == 0 || last > n {
		last = n
	}
	if stride == 0 {
		stride = 1
	}
	if first < 0 || last < 0 || stride < 0 || first > last {
		first, last, stride = 1, n, 1
	}
	ret := make([]int, 0, (last-first)/stride+1)
	for i := first; i <= last; i += stride {
		ret = append(ret, i-1)
	}
	return ret
}
