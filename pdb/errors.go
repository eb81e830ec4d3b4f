/*
 * errors.go, part of molarch.
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
	"errors"
	"fmt"

	chem "github.com/rmera/molarch"
)

//errDecorate is a helper function that decorates the error with the
//caller's name before returning it, if the error is an Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}

// Error is the general structure for errors of this package. It fullfills chem.Error.
// Warnings, the recovered format and consistency errors of a Read, are
// non-critical Errors with the number of the offending line.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //0 if the error is not about a given line.
	deco     []string
	critical bool
	err      error //the cause, if any.
}

var _ chem.Error = Error{}

func (err Error) Error() string {
	msg := err.message
	if err.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err.err)
	}
	switch {
	case err.filename != "" && err.line > 0:
		return fmt.Sprintf("pdb file %s line %d: %s", err.filename, err.line, msg)
	case err.filename != "":
		return fmt.Sprintf("pdb file %s: %s", err.filename, msg)
	case err.line > 0:
		return fmt.Sprintf("pdb line %d: %s", err.line, msg)
	}
	return "pdb: " + msg
}

//Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error is associated, or an empty string.
func (err Error) FileName() string { return err.filename }

//Line returns the line where the error was found, or 0.
func (err Error) Line() int { return err.line }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }

const (
	ShortLine         = "Line too short for the record"
	BadNumber         = "Unable to parse a numeric field"
	FrameMismatch     = "Frame doesn't match the topology, discarded"
	FrameFull         = "Frame has more atoms than the topology"
	OutsideModel      = "Atom record outside of a MODEL block, ignored"
	UnableToOpen      = "Unable to open file"
	UnableToWrite     = "Unable to write"
	UnableToRead      = "Unable to read"
	BadResidueSet     = "Invalid residue set"
	UnknownCompressed = "Unable to open compressed stream"
)
