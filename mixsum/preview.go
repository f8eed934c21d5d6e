package main

import (
	"strings"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// preview renders msg for display: each maximal ill-formed UTF-8 subsequence becomes one U+FFFD,
// text longer than limit runes is cut to limit-3 runes plus "...", and an empty message is shown as
// a pair of single quotes.
func preview(msg []byte, limit int) string {
	if len(msg) == 0 {
		return "''"
	}
	var b strings.Builder
	runes := 0
	for len(msg) > 0 {
		r, size := utf8.DecodeRune(msg)
		if r == utf8.RuneError && size == 1 {
			size = invalidRun(msg)
		}
		msg = msg[size:]
		b.WriteRune(r)
		runes++
	}
	if runes <= limit || limit < 3 {
		return b.String()
	}
	s, cut := b.String(), 0
	for i := range s {
		if cut == limit-3 {
			return s[:i] + "..."
		}
		cut++
	}
	return s
}

// invalidRun returns the length of the ill-formed prefix of b that DecodeRune rejected: a lead byte
// plus however many of its continuation bytes were in range before the sequence broke off.
func invalidRun(b []byte) int {
	need, lo, hi := 0, byte(0x80), byte(0xbf)
	switch c := b[0]; {
	case c >= 0xc2 && c <= 0xdf:
		need = 1
	case c == 0xe0:
		need, lo = 2, 0xa0
	case c == 0xed:
		need, hi = 2, 0x9f
	case c >= 0xe1 && c <= 0xef:
		need = 2
	case c == 0xf0:
		need, lo = 3, 0x90
	case c == 0xf4:
		need, hi = 3, 0x8f
	case c >= 0xf1 && c <= 0xf3:
		need = 3
	}
	n := 1
	for ; n <= need && n < len(b) && b[n] >= lo && b[n] <= hi; n++ {
		lo, hi = 0x80, 0xbf
	}
	return n
}
