/*
 * convert.go, part of molarch.
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
	"os"
	"path/filepath"

	chem "github.com/rmera/molarch"
	"github.com/rmera/molarch/pdb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runConvert(cmd *cobra.Command, args []string) error {
	inputs, err := expand(args)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	if len(inputs) > 1 {
		if output == "" {
			return fmt.Errorf("%d inputs need an output directory (-o)", len(inputs))
		}
		if err := os.MkdirAll(output, 0o755); err != nil {
			return err
		}
	}
	for _, in := range inputs {
		R, err := readLogged(in, s)
		if err != nil {
			return err
		}
		switch {
		case len(inputs) > 1:
			err = pdb.WriteFile(filepath.Join(output, filepath.Base(in)), R, s)
		case output == "":
			err = pdb.Write(cmd.OutOrStdout(), R, s)
		default:
			err = pdb.WriteFile(output, R, s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// readLogged reads a file and logs a summary of it.
func readLogged(name string, s *pdb.Session) (*chem.Root, error) {
	R, err := pdb.ReadFile(name, s)
	if err != nil {
		return nil, err
	}
	logger.Debug("read",
		zap.String("file", name),
		zap.Int("atoms", len(chem.CollectType[*chem.Atom](R))),
		zap.Int("frames", R.Frames().Len()),
		zap.Int("warnings", len(s.Warnings())))
	return R, nil
}
