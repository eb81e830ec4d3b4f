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

package main

import (
	"github.com/rmera/molarch/chemplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runProfile(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	R, err := readLogged(args[0], s)
	if err != nil {
		return err
	}
	t := title
	if t == "" {
		t = args[0]
	}
	series := chemplot.BFactorProfile(R, skip)
	if err := chemplot.ProfilePlot(series, t, plotFile); err != nil {
		return err
	}
	logger.Debug("profile", zap.String("file", plotFile), zap.Int("chains", len(series)))
	return nil
}
