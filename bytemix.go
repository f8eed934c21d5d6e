package bytemix

import (
	"errors"
	"fmt"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the exported entry points of bytemix: a deterministic, NON-cryptographic
// 256-bit byte-mixing function intended for demonstrating and testing digest properties.

// Mode selects which of the two mixing variants computes a digest.
type Mode uint8

const (
	// Canonical is the default variant: alternating-pattern initialization, seeded primary mixing
	// with length-aware secondary diffusion, and stride-17 finalization rounds.
	Canonical Mode = iota
	// Legacy is the earlier, simpler variant seeded by the digits of pi and e. It is kept only so
	// that digests produced by it remain reproducible.
	Legacy
)

var (
	// ErrInvalidInputType is returned by SumValue when its argument is anything other than []byte.
	ErrInvalidInputType = errors.New("bytemix: input must be a byte sequence")
	// ErrUnknownMode is returned when a Mode outside of Canonical and Legacy is requested.
	ErrUnknownMode = errors.New("bytemix: unknown mode")
)

func (m Mode) String() string {
	switch m {
	case Canonical:
		return "canonical"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode returns the Mode named by s, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "canonical":
		return Canonical, nil
	case "legacy":
		return Legacy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Sum returns the canonical digest of msg. msg is never modified.
func Sum(msg []byte) Digest {
	s := newState()
	s.mix(msg)
	s.finalize()
	return Digest(s)
}

// SumMode returns the digest of msg as computed by the given variant.
func SumMode(mode Mode, msg []byte) (Digest, error) {
	switch mode {
	case Canonical:
		return Sum(msg), nil
	case Legacy:
		s := newLegacyState()
		s.mixLegacy(msg)
		s.finalizeLegacy()
		return Digest(s), nil
	}
	return Digest{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
}

// SumValue is the dynamically-typed entry point: v must be a []byte (a typed nil slice is treated as
// empty). Any other argument fails with ErrInvalidInputType before any state is allocated.
func SumValue(v interface{}) (Digest, error) { return SumValueMode(Canonical, v) }

// SumValueMode is SumValue for an explicit variant.
func SumValueMode(mode Mode, v interface{}) (Digest, error) {
	msg, ok := v.([]byte)
	if !ok {
		return Digest{}, fmt.Errorf("%w, got %T", ErrInvalidInputType, v)
	}
	return SumMode(mode, msg)
}
