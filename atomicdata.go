/*
 * atomicdata.go, part of molarch.
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

import "strings"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//One letter codes for the amino acid residues.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"PYL": 'O',
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"HID": 'H',
	"HIE": 'H',
	"HIP": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
	"UNK": 'X',
}

// GuessElement tries to guess a chemical element symbol from an atom name, in
// the all-caps style of the element columns (i.e. "CL", not "Cl"). It is mostly
// based on AMBER names, and only deals with some common bio-elements. It
// returns an empty string if it can't guess.
func GuessElement(name string) string {
	name = strings.TrimSpace(name)
	//names like 1HB2 start with a digit.
	name = strings.TrimLeft(name, "0123456789")
	if name == "" {
		return ""
	}
	switch name {
	case "CU", "CO", "CL", "NA", "SE", "ZN", "FE", "MG", "MN", "CA", "BR":
		//CA is a calcium ion only when alone, an alpha carbon is named CA too.
		//There is no way to tell them apart from the name, so take the carbon.
		if name == "CA" {
			return "C"
		}
		return name
	}
	if len(name) == 4 { //I thiiink only Hs can have 4-char names in amber.
		return "H"
	}
	switch name[0] {
	case 'H', 'C', 'N', 'O', 'P', 'S', 'F', 'I', 'K':
		return name[:1]
	}
	return ""
}

// Mass returns the sum of the masses of the atoms in the subtree under n, and
// the number of atoms whose element is unknown, which don't contribute to it.
func Mass(n Node) (float64, int) {
	var mass float64
	unknown := 0
	w := WalkType[ElementBearer](n)
	for w.Next() {
		if m, ok := symbolMass[normalSymbol(w.Node().Element())]; ok {
			mass += m
		} else {
			unknown++
		}
	}
	return mass, unknown
}

// normalSymbol turns "CL" and "cl" into "Cl".
func normalSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
