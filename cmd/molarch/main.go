/*
 * main.go, part of molarch.
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

// Command molarch reads, converts and summarizes PDB files.
package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rmera/molarch/pdb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose  bool
	residues string

	// Frame selection
	first, last, stride int
	renumber            bool

	output   string
	plotFile string
	skip     []string
	title    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "molarch",
	Short: "Read, convert and summarize PDB files",
	Long: `molarch reads PDB files, optionally gzip- or zstd-compressed, into a
Root/Model/Molecule/Submolecule/Atom hierarchy, and writes them back.

Recoverable problems in the input (short lines, bad numbers, models that
don't match the first one) are logged as warnings, and the offending
line or model is skipped.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [input]...",
	Short: "Read PDB files and write them again",
	Long: `Reads each input and writes it with the given frame selection and
numbering. Inputs can be glob patterns, with ** matching any number of
directories. The output is compressed if its name ends in .gz or .zst.

With one input, -o is the output file (standard output if not given).
With several, -o is a directory, where each output takes the name of
its input.

Example:
  molarch convert 'traj/**/*.pdb.gz' -o frames/ --first 10 --stride 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var infoCmd = &cobra.Command{
	Use:   "info [input]...",
	Short: "Summarize the hierarchy of PDB files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

var profileCmd = &cobra.Command{
	Use:   "profile [input]",
	Short: "Plot the mean B-factor of each residue",
	Long: `Plots the mean thermal factor of the atoms of each residue, one line
per chain. The image format is taken from the extension of -o.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&residues, "residues", "", "yaml file with the standard residue names")

	convertCmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or directory for several inputs")
	convertCmd.Flags().IntVar(&first, "first", 0, "First frame to write, 1-based (default the first)")
	convertCmd.Flags().IntVar(&last, "last", 0, "Last frame to write, 1-based (default the last)")
	convertCmd.Flags().IntVar(&stride, "stride", 0, "Write every stride-th frame (default 1)")
	convertCmd.Flags().BoolVar(&renumber, "renumber", false, "Number atoms and residues from 1 in each model")

	profileCmd.Flags().StringVarP(&plotFile, "output", "o", "profile.png", "Output image")
	profileCmd.Flags().StringSliceVar(&skip, "skip", []string{"HOH", "WAT"}, "Residues left out of the profile")
	profileCmd.Flags().StringVar(&title, "title", "", "Plot title (default the input name)")

	rootCmd.AddCommand(convertCmd, infoCmd, profileCmd)
}

// newSession builds the codec configuration from the flags.
func newSession() (*pdb.Session, error) {
	s := &pdb.Session{First: first, Last: last, Stride: stride, Renumber: renumber, Logger: logger}
	if residues != "" {
		set, err := pdb.LoadResidueFile(residues)
		if err != nil {
			return nil, err
		}
		s.Residues = set
	}
	return s, nil
}

// expand returns the files matched by each pattern, in order.
// A pattern that matches nothing is an error.
func expand(patterns []string) ([]string, error) {
	ret := make([]string, 0, len(patterns))
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", p)
		}
		ret = append(ret, matches...)
	}
	return ret, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
