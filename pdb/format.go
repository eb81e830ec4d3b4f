/*
 * format.go, part of molarch.
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
	"fmt"
	"strconv"
	"strings"
)

//Widths of the serial fields.
const (
	atomWidth    = 5
	residueWidth = 4
)

// FormatSerial formats n to fit in width columns: in decimal if it fits,
// else in uppercase hexadecimal if that fits, else as width asterisks.
func FormatSerial(n, width int) string {
	if n < 0 {
		s := strconv.Itoa(n)
		if len(s) <= width {
			return s
		}
		return strings.Repeat("*", width)
	}
	if s := strconv.Itoa(n); len(s) <= width {
		return s
	}
	if s := strconv.FormatInt(int64(n), 16); len(s) <= width {
		return strings.ToUpper(s)
	}
	return strings.Repeat("*", width)
}

// ParseSerial reads a serial field of the given width, where prev is the
// previous serial read from the same field (0 if none). Past the largest
// decimal that fits, fields are hexadecimal, which is told apart from
// decimal by the value: a hexadecimal field that only has digits reads, as
// decimal, lower than the previous value. A field of asterisks is prev+1.
func ParseSerial(field string, prev, width int) (int, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, fmt.Errorf("empty serial field")
	}
	if strings.Trim(s, "*") == "" {
		return prev + 1, nil
	}
	maxdec := 1
	for i := 0; i < width; i++ {
		maxdec *= 10
	}
	maxdec--
	d, err := strconv.Atoi(s)
	if err == nil && (prev < maxdec || d > prev) {
		return d, nil
	}
	h, herr := strconv.ParseInt(s, 16, 64)
	if herr != nil {
		if err != nil {
			return 0, err
		}
		return d, nil
	}
	return int(h), nil
}

// FormatCharge returns the charge field for q: digit first, then sign ("2+", "1-").
// Zero, and charges that don't fit, give a blank field.
func FormatCharge(q int) string {
	switch {
	case q > 0 && q < 10:
		return strconv.Itoa(q) + "+"
	case q < 0 && q > -10:
		return strconv.Itoa(-q) + "-"
	}
	return "  "
}

// ParseCharge reads a charge field. It takes both "2+" and "+2", and a
// lone sign as a unit charge. A blank field is 0.
func ParseCharge(field string) (int, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, nil
	}
	sign := 1
	switch {
	case strings.HasSuffix(s, "-"):
		sign = -1
		s = strings.TrimSuffix(s, "-")
	case strings.HasSuffix(s, "+"):
		s = strings.TrimSuffix(s, "+")
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = strings.TrimPrefix(s, "-")
	case strings.HasPrefix(s, "+"):
		s = strings.TrimPrefix(s, "+")
	default:
		return 0, fmt.Errorf("charge %q has no sign", field)
	}
	if s == "" {
		return sign, nil
	}
	q, err := strconv.Atoi(s)
	if err != nil || q < 0 {
		return 0, fmt.Errorf("bad charge %q", field)
	}
	return sign * q, nil
}

//field returns the columns from-to (0-based, to excluded) of line, or
//the part of them that the line has.
func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

//fit truncates s to n bytes.
func fit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
