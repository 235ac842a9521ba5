// Copyright (c) 2026 srj0077
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
// ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ref provides the canonical SKINNY-128-128 block transform over
// the 4x4 row-major state matrix, with one function per sub-transform.
// It favors legibility over speed and serves as the reference the other
// backends are checked against.
package ref

import (
	"github.com/srj0077/skinny4felics/internal/api"
)

var Factory api.Factory = &refFactory{}

type refFactory struct{}

func (f *refFactory) Name() string {
	return "ref"
}

func (f *refFactory) New(roundKeys []byte) api.Instance {
	var inner refInstance
	for i := range inner.rks {
		copy(inner.rks[i][:], roundKeys[i*api.RoundKeySize:])
	}
	return &inner
}

type refInstance struct {
	rks [api.Rounds][api.RoundKeySize]byte
}

func (inst *refInstance) Reset() {
	for i := range inst.rks {
		api.Bzero(inst.rks[i][:])
	}
}

func (inst *refInstance) BlockEncrypt(dst, src []byte) {
	var s state
	decode(&s, src)

	for i := 0; i < api.Rounds; i++ {
		subCells(&s)
		addRoundKey(&s, &inst.rks[i])
		shiftRows(&s)
		mixColumns(&s)
	}

	encode(dst, &s)
}

// state is the cipher state as a 4-row x 4-column byte matrix.
type state [4][4]byte

// decode fills s from the row-major serialization of b: byte 4*r+c is
// cell (r,c).
func decode(s *state, b []byte) {
	_ = b[:api.BlockSize]

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = b[4*r+c]
		}
	}
}

// encode serializes s back to row-major bytes.
func encode(b []byte, s *state) {
	_ = b[:api.BlockSize]

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			b[4*r+c] = s[r][c]
		}
	}
}

// subCells runs every cell through the substitution table. Cells are
// independent, no cell reads another.
func subCells(s *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = api.SBox[s[r][c]]
		}
	}
}

// addRoundKey XORs the 8 subkey bytes into rows 0 and 1, matching the
// row-major byte order, then XORs the fixed constant into cell (2,0).
// The bottom half of the state receives no key material.
func addRoundKey(s *state, rk *[api.RoundKeySize]byte) {
	api.XORBytes(s[0][:], s[0][:], rk[0:4], 4)
	api.XORBytes(s[1][:], s[1][:], rk[4:8], 4)
	s[2][0] ^= api.RoundConstant
}

// shiftRows rotates row r right by r cells: the byte at column c moves
// to column (c+r) mod 4. Row 0 does not move.
func shiftRows(s *state) {
	for r := 1; r < 4; r++ {
		var t [4]byte
		for c := 0; c < 4; c++ {
			t[(c+r)&3] = s[r][c]
		}
		s[r] = t
	}
}

// mixColumns folds each column with the binary diffusion matrix. Each
// line uses the value produced by the line above it, and the closing row
// reassignment is part of the transform.
func mixColumns(s *state) {
	for c := 0; c < 4; c++ {
		p0, p1, p2, p3 := s[0][c], s[1][c], s[2][c], s[3][c]
		p1 ^= p2
		p2 ^= p0
		p3 ^= p2
		s[0][c], s[1][c], s[2][c], s[3][c] = p3, p0, p1, p2
	}
}
