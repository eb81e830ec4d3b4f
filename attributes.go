/*
 * attributes.go, part of molarch.
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

import v3 "github.com/rmera/molarch/v3"

//The attribute structs are meant to be embedded in node types.

// NameAttr implements Named.
type NameAttr struct {
	name string
}

func (A *NameAttr) Name() string     { return A.name }
func (A *NameAttr) SetName(s string) { A.name = s }

// OrdinalAttr implements Ordered.
type OrdinalAttr struct {
	ordinal int
}

func (A *OrdinalAttr) Ordinal() int     { return A.ordinal }
func (A *OrdinalAttr) SetOrdinal(i int) { A.ordinal = i }

// PositionAttr implements Positioned. The zero value has row 0, so
// constructors that embed it should set the row to -1 (no row).
type PositionAttr struct {
	coord v3.Vec
	row   int
}

func (A *PositionAttr) Coord() v3.Vec     { return A.coord }
func (A *PositionAttr) SetCoord(c v3.Vec) { A.coord = c }

// Row returns the row of the node in its Root's Frames, or -1.
func (A *PositionAttr) Row() int     { return A.row }
func (A *PositionAttr) SetRow(i int) { A.row = i }

// ChainAttr implements ChainIdentified.
type ChainAttr struct {
	chain byte
}

func (A *ChainAttr) ChainID() byte     { return A.chain }
func (A *ChainAttr) SetChainID(c byte) { A.chain = c }

// ICodeAttr implements InsertionCoded.
type ICodeAttr struct {
	icode byte
}

func (A *ICodeAttr) ICode() byte     { return A.icode }
func (A *ICodeAttr) SetICode(c byte) { A.icode = c }

// OccupancyAttr implements Occupant.
type OccupancyAttr struct {
	occupancy float64
}

func (A *OccupancyAttr) Occupancy() float64     { return A.occupancy }
func (A *OccupancyAttr) SetOccupancy(f float64) { A.occupancy = f }

// BFactorAttr implements ThermalFactored.
type BFactorAttr struct {
	bfactor float64
}

func (A *BFactorAttr) BFactor() float64     { return A.bfactor }
func (A *BFactorAttr) SetBFactor(f float64) { A.bfactor = f }

// ElementAttr implements ElementBearer.
type ElementAttr struct {
	element string
}

func (A *ElementAttr) Element() string     { return A.element }
func (A *ElementAttr) SetElement(s string) { A.element = s }

// ChargeAttr implements Charged.
type ChargeAttr struct {
	charge int
}

func (A *ChargeAttr) FormalCharge() int     { return A.charge }
func (A *ChargeAttr) SetFormalCharge(i int) { A.charge = i }
