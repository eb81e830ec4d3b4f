/*
 * format_test.go, part of molarch.
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

import "testing"

func TestFormatSerial(Te *testing.T) {
	cases := []struct {
		n, width int
		want     string
	}{
		{1, atomWidth, "1"},
		{99999, atomWidth, "99999"},
		{100000, atomWidth, "186A0"},
		{0xFFFFF, atomWidth, "FFFFF"},
		{0x100000, atomWidth, "*****"},
		{-5, atomWidth, "-5"},
		{9999, residueWidth, "9999"},
		{10000, residueWidth, "2710"},
		{0x10000, residueWidth, "****"},
		{-999, residueWidth, "-999"},
		{-1000, residueWidth, "****"},
	}
	for _, c := range cases {
		if got := FormatSerial(c.n, c.width); got != c.want {
			Te.Errorf("FormatSerial(%d, %d): expected %q, got %q", c.n, c.width, c.want, got)
		}
	}
}

func TestParseSerial(Te *testing.T) {
	cases := []struct {
		field       string
		prev, width int
		want        int
	}{
		{"    1", 0, atomWidth, 1},
		{"99999", 99998, atomWidth, 99999},
		{"186A0", 99999, atomWidth, 100000},
		{"186A1", 100000, atomWidth, 100001},
		{"19000", 0x18FFF, atomWidth, 0x19000}, //only digits, but hexadecimal.
		{"*****", 41, atomWidth, 42},
		{"   1", 9999, residueWidth, 1},
		{"2710", 9999, residueWidth, 10000},
		{"  -3", 0, residueWidth, -3},
		{"12345", 500, atomWidth, 12345},
	}
	for _, c := range cases {
		got, err := ParseSerial(c.field, c.prev, c.width)
		if err != nil || got != c.want {
			Te.Errorf("ParseSerial(%q, %d, %d): expected %d, got %d (error %v)", c.field, c.prev, c.width, c.want, got, err)
		}
	}
	for _, bad := range []string{"", "     ", "12X4", "1.5"} {
		if _, err := ParseSerial(bad, 0, atomWidth); err == nil {
			Te.Errorf("ParseSerial(%q) should fail", bad)
		}
	}
}

func TestSerialRoundTrip(Te *testing.T) {
	prev := 0
	for _, n := range []int{1, 2, 99998, 99999, 100000, 100001, 0x19000, 0xFFFFF} {
		got, err := ParseSerial(FormatSerial(n, atomWidth), prev, atomWidth)
		if err != nil || got != n {
			Te.Errorf("serial %d read back as %d (error %v)", n, got, err)
		}
		prev = n
	}
}

func TestCharge(Te *testing.T) {
	for q, want := range map[int]string{0: "  ", 2: "2+", -1: "1-", 9: "9+", 12: "  ", -10: "  "} {
		if got := FormatCharge(q); got != want {
			Te.Errorf("FormatCharge(%d): expected %q, got %q", q, want, got)
		}
	}
	for field, want := range map[string]int{"2+": 2, "+2": 2, "1-": -1, "-1": -1, "  ": 0, "": 0, "+": 1, " 3-": -3} {
		got, err := ParseCharge(field)
		if err != nil || got != want {
			Te.Errorf("ParseCharge(%q): expected %d, got %d (error %v)", field, want, got, err)
		}
	}
	for _, bad := range []string{"2", "x-", "+-"} {
		if _, err := ParseCharge(bad); err == nil {
			Te.Errorf("ParseCharge(%q) should fail", bad)
		}
	}
}
