// Package api provides the internal API shared by the SKINNY-128-128
// backend implementations.
package api

const (
	// BlockSize is the block size in bytes.
	BlockSize = 16

	// Rounds is the number of rounds, and the number of subkeys the
	// expanded round key stream must carry.
	Rounds = 40

	// RoundKeySize is the size of one round's subkey in bytes.
	RoundKeySize = 8

	// RoundKeysSize is the size of the full expanded round key stream
	// in bytes.
	RoundKeysSize = Rounds * RoundKeySize

	// RoundConstant is the fixed constant XORed into cell (2,0) of the
	// state every round. The round-dependent constants are pre-folded
	// into the round key stream by the external key schedule.
	RoundConstant = 0x02
)

// Instance is a block transform instance bound to one expanded round key
// stream.
type Instance interface {
	// BlockEncrypt applies the 40-round transform to the first
	// BlockSize bytes of src and writes the result to dst. Both
	// slices must be at least BlockSize bytes and may alias.
	BlockEncrypt(dst, src []byte)

	// Reset attempts to clear the retained key material from memory.
	Reset()
}

// Factory constructs Instances for a given backend.
type Factory interface {
	// Name returns the name of the backend.
	Name() string

	// New constructs an Instance from an expanded round key stream of
	// at least RoundKeysSize bytes, 8 bytes per round in round order.
	// The stream is copied, not referenced.
	New(roundKeys []byte) Instance
}

// XORBytes sets dst[i] = a[i] ^ b[i] for i in 0 .. n-1.
func XORBytes(dst, a, b []byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// Bzero clears b.
func Bzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
