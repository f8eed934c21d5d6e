// Package keystream produces reproducible pseudo-random bytes from a 64-bit seed. It exists so that
// tests and statz can hash large "random" inputs that are identical from run to run.
package keystream

import (
	"encoding/binary"
	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const rounds, bufSize = 8, 512

// Reader is an endless io.Reader of ChaCha8 keystream. It is not safe for concurrent use.
type Reader struct {
	stream *chacha.Cipher
	zeroes [bufSize]byte
}

// New returns a Reader whose output is fully determined by seed.
func New(seed uint64) *Reader {
	var key [chacha.KeySize]byte
	var nonce [chacha.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	/* A 32-byte key and 8-byte nonce are always valid, so the error is impossible. */
	stream, err := chacha.NewCipher(nonce[:], key[:], rounds)
	if err != nil {
		panic(err)
	}
	return &Reader{stream: stream}
}

// Read fills p entirely and never fails.
func (r *Reader) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > bufSize {
		r.stream.XORKeyStream(p[:bufSize], r.zeroes[:])
		p = p[bufSize:]
	}
	r.stream.XORKeyStream(p, r.zeroes[:len(p)])
	return n, nil
}

// Bytes returns the first n bytes of the keystream for seed.
func Bytes(seed uint64, n int) []byte {
	b := make([]byte, n)
	_, _ = New(seed).Read(b)
	return b
}
