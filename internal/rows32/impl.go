// Package rows32 provides a SKINNY-128-128 block transform that keeps
// each state row in a little-endian uint32. The row rotations collapse
// into word rotates and the column diffusion into three word XORs, the
// same layout the hand-scheduled 32-bit implementations of this cipher
// use.
package rows32

import (
	"encoding/binary"
	"math/bits"

	"github.com/srj0077/skinny4felics/internal/api"
)

var Factory api.Factory = &rows32Factory{}

type rows32Factory struct{}

func (f *rows32Factory) Name() string {
	return "rows32"
}

func (f *rows32Factory) New(roundKeys []byte) api.Instance {
	var inner rows32Instance
	for i := range inner.rks {
		inner.rks[i][0] = binary.LittleEndian.Uint32(roundKeys[i*api.RoundKeySize:])
		inner.rks[i][1] = binary.LittleEndian.Uint32(roundKeys[i*api.RoundKeySize+4:])
	}
	return &inner
}

// rows32Instance holds each round's subkey as the two row words it will
// be XORed against.
type rows32Instance struct {
	rks [api.Rounds][2]uint32
}

func (inst *rows32Instance) Reset() {
	for i := range inst.rks {
		inst.rks[i][0] = 0
		inst.rks[i][1] = 0
	}
}

// subWord runs every byte of a row word through the substitution table.
func subWord(x uint32) uint32 {
	return uint32(api.SBox[x&0xff]) |
		uint32(api.SBox[(x>>8)&0xff])<<8 |
		uint32(api.SBox[(x>>16)&0xff])<<16 |
		uint32(api.SBox[x>>24])<<24
}

func (inst *rows32Instance) BlockEncrypt(dst, src []byte) {
	_, _ = src[:api.BlockSize], dst[:api.BlockSize]

	r0 := binary.LittleEndian.Uint32(src[0:])
	r1 := binary.LittleEndian.Uint32(src[4:])
	r2 := binary.LittleEndian.Uint32(src[8:])
	r3 := binary.LittleEndian.Uint32(src[12:])

	for i := 0; i < api.Rounds; i++ {
		r0 = subWord(r0)
		r1 = subWord(r1)
		r2 = subWord(r2)
		r3 = subWord(r3)

		r0 ^= inst.rks[i][0]
		r1 ^= inst.rks[i][1]
		r2 ^= api.RoundConstant

		// Rotating a row right by k cells is a left rotate of its
		// little-endian word by 8*k bits.
		r1 = bits.RotateLeft32(r1, 8)
		r2 = bits.RotateLeft32(r2, 16)
		r3 = bits.RotateLeft32(r3, 24)

		r1 ^= r2
		r2 ^= r0
		r3 ^= r2
		r0, r1, r2, r3 = r3, r0, r1, r2
	}

	binary.LittleEndian.PutUint32(dst[0:], r0)
	binary.LittleEndian.PutUint32(dst[4:], r1)
	binary.LittleEndian.PutUint32(dst[8:], r2)
	binary.LittleEndian.PutUint32(dst[12:], r3)
}
