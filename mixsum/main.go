package main

import (
	. "fmt"
	"github.com/goccy/go-json"
	"github.com/p7r0x7/bytemix"
	"github.com/p7r0x7/bytemix/internal/keystream"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n, previewRunes = "\n", 50
const success, failure, invalid = 0, 1, 2

var warnings = 0

// record is the shape of each line printed under --json.
type record struct {
	Target string `json:"target"`
	Mode   string `json:"mode"`
	Digest string `json:"digest"`
	Bytes  int    `json:"bytes"`
	Nanos  int64  `json:"nanos,omitempty"`
}

func main() {
	configure()
	os.Exit(program())
}

// help prints a usage menu. To consistently correctly render this menu in most terminal windows, its
// content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "mixsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "A deterministic, non-cryptographic 256-bit byte mixer.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h] [--demo]"+n,
		spaces, "[-bjLt] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bjLt] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for bytemix: It handles various flags and an unlimited
// number of arguments, hashing files, STDIN, or strings as required by the command-line operator.
func program() int {
	if pHelp {
		help()
		return success
	}
	if pDemo {
		demo(os.Stdout)
		return success
	}
	if NArg() == 0 {
		help()
		return invalid
	}

	mode := bytemix.Canonical
	if pLegacy {
		mode = bytemix.Legacy
	}
	enc := json.NewEncoder(os.Stdout)

	for _, target := range Args() {
		start := time.Now()
		msg, err := read(target)
		if err != nil {
			warn(err)
			continue
		}
		digest, err := bytemix.SumMode(mode, msg)
		if err != nil {
			warn(err)
			continue
		}
		delta := time.Since(start)

		if pJSON {
			r := record{Target: target, Mode: mode.String(), Digest: render(digest), Bytes: len(msg)}
			if pTime {
				r.Nanos = delta.Nanoseconds()
			}
			if err = enc.Encode(r); err != nil {
				warn(err)
			}
			continue
		}

		timing := ""
		if pTime {
			if delta.Microseconds() > 99 {
				delta = delta.Truncate(10 * time.Microsecond)
			}
			timing = " (" + delta.String() + ")"
		}
		switch {
		case pQuiet:
			Println(render(digest))
		case pString:
			Print(yell, render(digest), zero, `  "`, target, `"`, timing, n)
		case pNoCodes:
			Print(render(digest), `  `, filepath.Clean(target), timing, n)
		default:
			Print(yell, render(digest), zero, `  `, und, vainpath.Simplify(target), zero, timing, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// read returns the whole message named by target; bytemix has no incremental API.
func read(target string) ([]byte, error) {
	switch {
	case pString:
		return []byte(target), nil
	case target == "-" || target == os.Stdin.Name():
		msg, err := io.ReadAll(os.Stdin)
		go os.Stdin.Close() /* STDIN should not be reused. */
		return msg, err
	default:
		return os.ReadFile(target)
	}
}

func render(d bytemix.Digest) string {
	if pBase64 {
		return d.Base64()
	}
	return d.Hex()
}

// demo prints the digests of a fixed table of samples. The last sample is deliberately not a byte
// sequence, showing how the type error surfaces to a caller that chooses to display it.
func demo(w io.Writer) {
	samples := []interface{}{
		[]byte(""),
		[]byte("hello world"),
		[]byte("password123"),
		[]byte(strings.Repeat("a", 100)),
		[]byte("\x00\x01\x02\x03"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		[]byte(strings.Repeat("Long string ", 20)),
		[]byte("Special \x00\xff bytes"),
		keystream.Bytes(1024, 1024),
		"This will cause error",
	}
	rule := strings.Repeat("─", 60)
	Fprint(w, yell, "=== bytemix Digest Demonstration ===", zero, n)
	for _, v := range samples {
		if msg, ok := v.([]byte); ok {
			Fprint(w, "Input:  ", preview(msg, previewRunes), n)
		} else {
			Fprint(w, "Input:  ", Sprintf("%v (%T)", v, v), n)
		}
		digest, err := bytemix.SumValue(v)
		if err != nil {
			Fprint(w, purp, "Error:  ", err, zero, n, rule, n)
			continue
		}
		Fprint(w, "Digest: ", yell, digest.Hex(), zero, n,
			"Length: ", len(digest), " bytes", n, rule, n)
	}
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	warnings++
}
