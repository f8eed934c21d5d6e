package bytemix

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Digest is the 32-byte output of Sum. Being an array, it is always a copy.
type Digest [Size]byte

/* Permits the rendering of the digest in more than one way. */

func (d Digest) Hex() string    { return hex.EncodeToString(d[:]) }
func (d Digest) String() string { return d.Hex() }
func (d Digest) Base64() string { return base64.StdEncoding.EncodeToString(d[:]) }

// Bytes returns a freshly allocated copy of d.
func (d Digest) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, d[:])
	return b
}

// Distance returns the number of bits in which d and o differ, from 0 to 256.
func (d Digest) Distance(o Digest) (n int) {
	for i := range d {
		n += bits.OnesCount8(d[i] ^ o[i])
	}
	return
}

// ParseHex decodes a digest previously rendered by Hex.
func ParseHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("bytemix: ParseHex: %w", err)
	}
	if len(b) != Size {
		return d, fmt.Errorf("bytemix: ParseHex: digest of %d bytes invalid, must be %d", len(b), Size)
	}
	copy(d[:], b)
	return d, nil
}
