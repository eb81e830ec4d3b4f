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

package chem

import (
	"fmt"
	"strings"
)

// CError is the error type of the package. It satisfies Error.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (in %s)", err.msg, strings.Join(err.deco, " < "))
}

// Decorate adds new information to the error and returns all of it.
func (err CError) Decorate(deco string) []string {
	//the receiver is a value, but the backing array of deco may be shared
	//with the caller, so callers should use the returned slice.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error should stop the operation that got it.
func (err CError) Critical() bool { return err.critical }
