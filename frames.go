/*
 * frames.go, part of molarch.
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

	v3 "github.com/rmera/molarch/v3"
)

// block is a column-oriented chunk of storage shared by the frames added
// together in one AddFrame call. Row i of the jth frame of the block is
// data[i*skip+j].
type block struct {
	data []v3.Vec
	skip int
}

type frame struct {
	blk    *block
	offset int
	rows   int
	cap    int //0 means no limit
}

func (f *frame) slot(row int) int {
	return row*f.blk.skip + f.offset
}

// Frames is an append-only table of coordinates indexed by (row, frame),
// where the row of an atom is given by its Row method. It is decoupled from
// the hierarchy, so many frames (a trajectory) share one topology.
type Frames struct {
	frames []*frame
}

func NewFrames() *Frames {
	return new(Frames)
}

// Reserve pre-sizes the store for n frames.
func (F *Frames) Reserve(n int) {
	if n > cap(F.frames) {
		f := make([]*frame, len(F.frames), n)
		copy(f, F.frames)
		F.frames = f
	}
}

// AddFrame appends count frames, with at most maxrows rows each (0 means no limit).
// The rows of the new frames are interleaved with a stride of skip rows, which is
// raised to count if smaller. It returns the index of the first new frame.
func (F *Frames) AddFrame(count, skip, maxrows int) int {
	if count < 1 {
		panic(ErrFrameCount)
	}
	if skip < count {
		skip = count
	}
	b := &block{skip: skip}
	if maxrows > 0 {
		b.data = make([]v3.Vec, 0, maxrows*skip)
	}
	first := len(F.frames)
	for j := 0; j < count; j++ {
		F.frames = append(F.frames, &frame{blk: b, offset: j, cap: maxrows})
	}
	return first
}

// AddCoord appends the coordinates xyz as a new row of the given frame,
// and returns the index of the row. It returns an error if the frame is full.
func (F *Frames) AddCoord(xyz v3.Vec, frame int) (int, error) {
	f := F.get(frame)
	if f.cap > 0 && f.rows >= f.cap {
		return -1, CError{msg: fmt.Sprintf("frame %d is full (%d rows)", frame, f.cap), deco: []string{"AddCoord"}, critical: true}
	}
	s := f.slot(f.rows)
	if s >= len(f.blk.data) {
		//grow to a whole stride, so the other frames in the block find their slots too.
		f.blk.data = append(f.blk.data, make([]v3.Vec, (f.rows+1)*f.blk.skip-len(f.blk.data))...)
	}
	f.blk.data[s] = xyz
	f.rows++
	return f.rows - 1, nil
}

// RemoveLastFrame discards the most recently added frame. It does nothing
// if the store is empty.
func (F *Frames) RemoveLastFrame() {
	if len(F.frames) == 0 {
		return
	}
	F.frames[len(F.frames)-1] = nil
	F.frames = F.frames[:len(F.frames)-1]
}

// Len returns the number of frames.
func (F *Frames) Len() int {
	return len(F.frames)
}

// Rows returns the number of rows in the given frame.
func (F *Frames) Rows(frame int) int {
	return F.get(frame).rows
}

// Coord returns the coordinates in the given row and frame.
// It panics if either is out of range.
func (F *Frames) Coord(row, frame int) v3.Vec {
	f := F.get(frame)
	if row < 0 || row >= f.rows {
		panic(ErrIndexOutOfRange)
	}
	return f.blk.data[f.slot(row)]
}

// SetCoord replaces the coordinates in an existing row and frame.
func (F *Frames) SetCoord(row, frame int, xyz v3.Vec) {
	f := F.get(frame)
	if row < 0 || row >= f.rows {
		panic(ErrIndexOutOfRange)
	}
	f.blk.data[f.slot(row)] = xyz
}

// Matrix returns a copy of the given frame as a v3.Matrix, or nil
// if the frame is empty.
func (F *Frames) Matrix(frame int) *v3.Matrix {
	f := F.get(frame)
	if f.rows == 0 {
		return nil
	}
	M := v3.Zeros(f.rows)
	for i := 0; i < f.rows; i++ {
		M.SetVec(i, f.blk.data[f.slot(i)])
	}
	return M
}

// Close checks that the given frame has exactly natoms rows. A frame that
// fails the check should be discarded by the caller.
func (F *Frames) Close(frame, natoms int) error {
	if r := F.Rows(frame); r != natoms {
		return CError{msg: fmt.Sprintf("frame %d has %d coordinates, the topology has %d atoms", frame, r, natoms), deco: []string{"Close"}}
	}
	return nil
}

func (F *Frames) get(frame int) *frame {
	if frame < 0 || frame >= len(F.frames) {
		panic(ErrIndexOutOfRange)
	}
	return F.frames[frame]
}

// CoordAt returns the coordinates of p in the given frame of the Root
// over n, where p is usually n itself. If there is no such frame, or p has
// no row in it, the coordinates stored in p are returned. A frame row takes
// precedence over the coordinates stored in p, even if p was edited later.
func CoordAt(n Node, p Positioned, frame int) v3.Vec {
	R := RootOf(n)
	if R == nil || frame < 0 || frame >= R.frames.Len() {
		return p.Coord()
	}
	if row := p.Row(); row >= 0 && row < R.frames.Rows(frame) {
		return R.frames.Coord(row, frame)
	}
	return p.Coord()
}
