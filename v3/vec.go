/*
 * vec.go, part of molarch.
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

package v3

import "gonum.org/v1/gonum/floats"

// Vec is a single point in 3D space.
type Vec [3]float64

// At returns the ith component of V.
func (V Vec) At(i int) float64 {
	return V[i]
}

// Set sets the ith component of V to f.
func (V *Vec) Set(i int, f float64) {
	V[i] = f
}

// Dist returns the euclidean distance between V and W.
func (V Vec) Dist(W Vec) float64 {
	return floats.Distance(V[:], W[:], 2)
}

// EqualApprox reports whether every component of V is within tol of the
// corresponding component of W.
func (V Vec) EqualApprox(W Vec, tol float64) bool {
	return floats.EqualApprox(V[:], W[:], tol)
}
