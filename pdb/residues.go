/*
 * residues.go, part of molarch.
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
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed residues.yaml
var defaultResidues []byte

// ResidueSet is a set of standard residue names.
type ResidueSet struct {
	names map[string]ResidueClass
}

// ResidueClass tells where a residue name came from in the configuration.
type ResidueClass int

const (
	NotStandard ResidueClass = iota
	AminoAcid
	NucleicAcid
	Extra
)

//residueConfig is the yaml layout of a residue set.
type residueConfig struct {
	AminoAcids   []string `yaml:"amino_acids"`
	NucleicAcids []string `yaml:"nucleic_acids"`
	Extra        []string `yaml:"extra"`
}

var (
	defaultOnce sync.Once
	defaultSet  *ResidueSet
)

// DefaultResidues returns the standard residues of the PDB format.
// The returned set is shared, and must not be modified.
func DefaultResidues() *ResidueSet {
	defaultOnce.Do(func() {
		var err error
		defaultSet, err = LoadResidueSet(bytes.NewReader(defaultResidues))
		if err != nil {
			panic("pdb: invalid embedded residue set: " + err.Error())
		}
	})
	return defaultSet
}

// LoadResidueSet reads a residue set in yaml, with the keys amino_acids,
// nucleic_acids and extra, each a list of names. Names must be 1 to 3
// uppercase letters or digits, and can't be repeated.
func LoadResidueSet(r io.Reader) (*ResidueSet, error) {
	var conf residueConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil {
		return nil, Error{message: BadResidueSet, deco: []string{"LoadResidueSet"}, critical: true, err: err}
	}
	R := &ResidueSet{names: make(map[string]ResidueClass)}
	groups := []struct {
		class ResidueClass
		names []string
	}{
		{AminoAcid, conf.AminoAcids},
		{NucleicAcid, conf.NucleicAcids},
		{Extra, conf.Extra},
	}
	for _, g := range groups {
		for _, name := range g.names {
			if err := R.add(name, g.class); err != nil {
				return nil, Error{message: BadResidueSet, deco: []string{"LoadResidueSet"}, critical: true, err: err}
			}
		}
	}
	if len(R.names) == 0 {
		return nil, Error{message: BadResidueSet, deco: []string{"LoadResidueSet"}, critical: true, err: fmt.Errorf("no residue names")}
	}
	return R, nil
}

// LoadResidueFile reads a residue set from a yaml file.
func LoadResidueFile(name string) (*ResidueSet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: name, deco: []string{"LoadResidueFile"}, critical: true, err: err}
	}
	defer f.Close()
	R, err := LoadResidueSet(f)
	if e, ok := err.(Error); ok {
		e.filename = name
		e.deco = e.Decorate("LoadResidueFile")
		return nil, e
	}
	return R, err
}

func (R *ResidueSet) add(name string, class ResidueClass) error {
	if len(name) < 1 || len(name) > 3 {
		return fmt.Errorf("residue name %q should have 1 to 3 characters", name)
	}
	for _, c := range []byte(name) {
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return fmt.Errorf("residue name %q should only have uppercase letters and digits", name)
		}
	}
	if _, ok := R.names[name]; ok {
		return fmt.Errorf("residue name %q is repeated", name)
	}
	R.names[name] = class
	return nil
}

// Standard returns true if name is in the set.
func (R *ResidueSet) Standard(name string) bool {
	_, ok := R.names[name]
	return ok
}

// Class returns the class of name, or NotStandard if name is not in the set.
func (R *ResidueSet) Class(name string) ResidueClass {
	return R.names[name]
}

func (R *ResidueSet) Len() int {
	return len(R.names)
}

// Names returns the names in the set, sorted.
func (R *ResidueSet) Names() []string {
	ret := make([]string, 0, len(R.names))
	for k := range R.names {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
