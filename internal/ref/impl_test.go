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

package ref

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srj0077/skinny4felics/internal/api"
)

func TestStateCodec(t *testing.T) {
	require := require.New(t)

	b := make([]byte, api.BlockSize)
	for i := range b {
		b[i] = byte(0xa0 + i)
	}

	var s state
	decode(&s, b)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(b[4*r+c], s[r][c], "cell (%d,%d)", r, c)
		}
	}

	out := make([]byte, api.BlockSize)
	encode(out, &s)
	require.Equal(b, out, "encode(decode(b))")
}

func TestSubCells(t *testing.T) {
	require := require.New(t)

	var s state
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = byte(16*r + c)
		}
	}

	subCells(&s)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(api.SBox[16*r+c], s[r][c], "cell (%d,%d)", r, c)
		}
	}
}

func TestAddRoundKey(t *testing.T) {
	require := require.New(t)

	// An all-zero subkey may only touch cell (2,0).
	var s, want state
	addRoundKey(&s, &[api.RoundKeySize]byte{})
	want[2][0] = api.RoundConstant
	require.Equal(want, s, "zero subkey")

	// Subkey bytes land in rows 0 and 1 in row-major order; the bottom
	// half stays key-free.
	s = state{}
	rk := [api.RoundKeySize]byte{1, 2, 3, 4, 5, 6, 7, 8}
	addRoundKey(&s, &rk)
	want = state{}
	want[0] = [4]byte{1, 2, 3, 4}
	want[1] = [4]byte{5, 6, 7, 8}
	want[2][0] = api.RoundConstant
	require.Equal(want, s, "patterned subkey")
}

func TestShiftRows(t *testing.T) {
	require := require.New(t)

	var s state
	for r := 0; r < 4; r++ {
		s[r] = [4]byte{0x01, 0x02, 0x03, 0x04}
	}

	shiftRows(&s)
	require.Equal([4]byte{0x01, 0x02, 0x03, 0x04}, s[0], "row 0 is fixed")
	require.Equal([4]byte{0x04, 0x01, 0x02, 0x03}, s[1], "row 1, right by 1")
	require.Equal([4]byte{0x03, 0x04, 0x01, 0x02}, s[2], "row 2, right by 2")
	require.Equal([4]byte{0x02, 0x03, 0x04, 0x01}, s[3], "row 3, right by 3")
}

func TestMixColumns(t *testing.T) {
	require := require.New(t)

	var s state
	for c := 0; c < 4; c++ {
		s[0][c], s[1][c], s[2][c], s[3][c] = 1, 2, 3, 4
	}

	mixColumns(&s)
	for c := 0; c < 4; c++ {
		col := [4]byte{s[0][c], s[1][c], s[2][c], s[3][c]}
		require.Equal([4]byte{0x06, 0x01, 0x01, 0x02}, col, "column %d", c)
	}
}

func TestRoundCount(t *testing.T) {
	require := require.New(t)

	// With an all-zero round key stream (only the fixed constant left in
	// play), 40 rounds of the driver must land exactly here.
	src := []byte{
		0x7b, 0x40, 0x05, 0xca, 0x8f, 0x54, 0x19, 0xde,
		0xa3, 0x68, 0x2d, 0xf2, 0xb7, 0x7c, 0x41, 0x06,
	}
	want40 := []byte{
		0xfd, 0x77, 0x64, 0x1d, 0x8d, 0xf2, 0xd2, 0xf3,
		0xe9, 0xa4, 0xb1, 0x3a, 0x14, 0x6e, 0xb0, 0xc3,
	}

	inst := Factory.New(make([]byte, api.RoundKeysSize))
	got := make([]byte, api.BlockSize)
	inst.BlockEncrypt(got, src)
	require.Equal(want40, got, "40 rounds")

	// Composing the individual steps must agree at 40 rounds and
	// diverge one round either side.
	runRounds := func(n int) []byte {
		var s state
		decode(&s, src)
		var zero [api.RoundKeySize]byte
		for i := 0; i < n; i++ {
			subCells(&s)
			addRoundKey(&s, &zero)
			shiftRows(&s)
			mixColumns(&s)
		}
		out := make([]byte, api.BlockSize)
		encode(out, &s)
		return out
	}

	require.Equal(want40, runRounds(40), "composed steps, 40 rounds")
	require.NotEqual(want40, runRounds(39), "39 rounds")
	require.NotEqual(want40, runRounds(41), "41 rounds")
}

func TestReset(t *testing.T) {
	require := require.New(t)

	roundKeys := make([]byte, api.RoundKeysSize)
	for i := range roundKeys {
		roundKeys[i] = byte(i)
	}

	inst := Factory.New(roundKeys).(*refInstance)
	inst.Reset()
	for i := range inst.rks {
		require.Equal([api.RoundKeySize]byte{}, inst.rks[i], "subkey %d", i)
	}
}
