package bytemix

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The following collection of functions backend both variants of bytemix. Each call to Sum owns a
// fresh state from initialization through the last finalization round; nothing here is shared.

const (
	// Size is the length of every digest, and of the working state, in bytes.
	Size = 32
	// Rounds is the number of finalization passes over the whole state.
	Rounds = 4

	farStride    = 17
	seedA, seedB = 0x6a09e667f3bcc908, 0xbb67ae8584caa73b
	/* seedA and seedB are the first 64 fractional bits of the square roots of 2 and 3, borrowed from
	SHA-512's initial hash values only for their random-looking Hamming weights; nothing about SHA-2
	is implied. Mixing happens in uint64 and only the low byte is stored: because every bit kept
	depends solely on lower-order bits of the operands, wrapping at 2^64 yields the same bytes as
	unbounded arithmetic would.

	The far index of finalization is i*17 mod 32: for odd i that is the byte half the state away, for
	even i it is i itself, so only odd indices gain a non-local dependency per round. */

	initEvery, initHit, initMiss = 3, 0x36, 0x5c

	/* The legacy variant's seeds are the first 32 digits of pi and e. They only ever meet bytes, so
	they are reduced at compile time. */
	legacyPi, legacyE = 31415926535897932384626433832795, 27182818284590452353602874713527
	piLo, eLo         = byte(legacyPi % 256), byte(legacyE % 256)
)

type state [Size]byte

/* salt[i] is the low byte of seedA/(i+1), the constant added to the far byte at index i. */
var salt = func() (t [Size]byte) {
	for i := range t {
		t[i] = byte(seedA / uint64(i+1))
	}
	return
}()

func newState() (s state) {
	for i := range s {
		if i%initEvery == 0 {
			s[i] = initHit
		} else {
			s[i] = initMiss
		}
	}
	return
}

// mix runs the primary mix and secondary diffusion once per byte of msg, in order.
func (s *state) mix(msg []byte) {
	n := uint64(len(msg))
	for p, v := range msg {
		pos, t := uint64(p), p%Size
		m := uint64(s[t])*seedA + uint64(v) + pos
		m ^= n<<(pos%7) | seedB
		s[t] = byte(m) /* Overwrite. */

		s[(p+int(v))%Size] ^= byte(m >> (pos % 4)) /* Accumulate. */
	}
}

// finalize replaces the state Rounds times; every index of a round reads from the same snapshot.
func (s *state) finalize() {
	for r := 0; r < Rounds; r++ {
		snap := *s
		for i := range s {
			far := snap[i*farStride%Size] + salt[i]
			s[i] = snap[i] ^ snap[(i+Size-1)%Size] ^ snap[(i+1)%Size] ^ far
		}
	}
}

func newLegacyState() (s state) {
	for i := range s {
		s[i] = byte(i)*piLo + eLo
	}
	return
}

func (s *state) mixLegacy(msg []byte) {
	n := byte(len(msg))
	for p, v := range msg {
		t := p % Size
		s[t] = s[t]*piLo + v + byte(p)
		s[(p+int(v))%Size] ^= s[t] + n
	}
}

func (s *state) finalizeLegacy() {
	for r := 0; r < Rounds; r++ {
		snap := *s
		for i := range s {
			s[i] = snap[i] + snap[(i+Size-1)%Size] + snap[(i+1)%Size]
		}
	}
}
