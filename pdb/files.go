/*
 * files.go, part of molarch.
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
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//stack is a ReadCloser or WriteCloser over a file, closing the
//decompressor or compressor, and then the file.
type stack struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (s *stack) Close() error {
	var err error
	for _, c := range s.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenFile opens a file for reading. Files ending in .gz or .zst, or
// starting with the gzip or zstd magic numbers, are decompressed.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: name, deco: []string{"OpenFile"}, critical: true, err: err}
	}
	buf := bufio.NewReader(f)
	ext := strings.ToLower(filepath.Ext(name))
	magic, _ := buf.Peek(4) //a short file just has no magic number.
	switch {
	case ext == ".gz" || bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{message: UnknownCompressed, filename: name, deco: []string{"OpenFile"}, critical: true, err: err}
		}
		return &stack{Reader: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ext == ".zst" || bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{message: UnknownCompressed, filename: name, deco: []string{"OpenFile"}, critical: true, err: err}
		}
		//*zstd.Decoder's Close returns nothing.
		closeZstd := func() error { zr.Close(); return nil }
		return &stack{Reader: zr, closers: []func() error{closeZstd, f.Close}}, nil
	}
	return &stack{Reader: buf, closers: []func() error{f.Close}}, nil
}

// CreateFile creates a file for writing, gzip-compressed if the name ends
// in .gz, zstd-compressed if it ends in .zst.
func CreateFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: name, deco: []string{"CreateFile"}, critical: true, err: err}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz := gzip.NewWriter(f)
		return &stack{Writer: gz, closers: []func() error{gz.Close, f.Close}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, Error{message: UnknownCompressed, filename: name, deco: []string{"CreateFile"}, critical: true, err: err}
		}
		return &stack{Writer: zw, closers: []func() error{zw.Close, f.Close}}, nil
	}
	return &stack{Writer: f, closers: []func() error{f.Close}}, nil
}
