// Package skinny implements the SKINNY-128-128 single-block encryption
// transform over a caller-supplied, pre-expanded round key stream.
//
// See: https://eprint.iacr.org/2016/660.pdf
//
// Round key expansion, decryption, and modes of operation are external
// collaborators and are not provided here. The round-dependent constants
// are assumed to be pre-folded into the supplied stream by the key
// schedule; only the fixed per-round constant is applied in-core.
package skinny

import (
	"errors"

	"github.com/srj0077/skinny4felics/internal/api"
	"github.com/srj0077/skinny4felics/internal/rows32"
)

const (
	// BlockSize is the SKINNY-128-128 block size in bytes.
	BlockSize = api.BlockSize

	// Rounds is the number of rounds, and the number of subkeys the
	// round key stream must carry.
	Rounds = api.Rounds

	// RoundKeySize is the size of one round's subkey in bytes.
	RoundKeySize = api.RoundKeySize

	// RoundKeysSize is the size of the full expanded round key stream
	// in bytes (Rounds subkeys of RoundKeySize bytes, in round order).
	RoundKeysSize = api.RoundKeysSize
)

var (
	// ErrInvalidKeyLength is the error returned when the supplied
	// round key stream carries fewer than Rounds subkeys.
	ErrInvalidKeyLength = errors.New("skinny: invalid round key stream length")

	errInvalidBlock = errors.New("skinny: invalid block size")

	factory api.Factory = rows32.Factory
)

// Cipher is an instance of the block transform bound to one expanded
// round key stream. It is safe for concurrent use.
type Cipher struct {
	inner api.Instance
}

// Encrypt applies the 40-round transform to the first BlockSize bytes of
// src and writes the result to dst. Both slices must be at least
// BlockSize bytes long and may overlap; anything shorter panics.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(dst) < BlockSize || len(src) < BlockSize {
		panic(errInvalidBlock)
	}

	c.inner.BlockEncrypt(dst, src)
}

// Reset clears the cipher instance such that no key material remains in
// memory.
func (c *Cipher) Reset() {
	c.inner.Reset()
}

// New creates a Cipher from an expanded round key stream of at least
// RoundKeysSize bytes. The first Rounds subkeys are copied out; the
// caller's buffer is not referenced after New returns. Streams shorter
// than RoundKeysSize fail with ErrInvalidKeyLength, any excess is
// ignored.
//
// The stream is trusted as-is: a malformed expansion produces a
// different permutation, not a runtime error.
func New(roundKeys []byte) (*Cipher, error) {
	if len(roundKeys) < RoundKeysSize {
		return nil, ErrInvalidKeyLength
	}

	return &Cipher{inner: factory.New(roundKeys)}, nil
}

// EncryptBlock is a one-shot form of New followed by Encrypt, for
// callers that do not reuse the round key stream across blocks.
func EncryptBlock(dst, src, roundKeys []byte) error {
	c, err := New(roundKeys)
	if err != nil {
		return err
	}

	c.Encrypt(dst, src)
	return nil
}
