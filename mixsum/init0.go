package main

import (
	. "github.com/spf13/pflag"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pNoCodesDefault = false
var pHelp, pBase64, pDemo, pJSON, pLegacy, pNoCodes, pQuiet, pStrict, pString, pTime bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true", "-j", "--json", "--json=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVar(&pDemo, "demo", false,
		purp+"print digests of a fixed table of sample inputs"+zero)

	BoolVarP(&pJSON, "json", "j", false,
		purp+"print one JSON object per target"+zero+" (enables --no-codes)")

	BoolVarP(&pLegacy, "legacy", "L", false,
		purp+"use the legacy pi/e-seeded mixing variant"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause mixsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
}

// configure parses the command line; it is kept out of init so that test binaries, whose own flags
// pflag would reject, can still load this package.
func configure() {
	Parse()
	if noCodes, _ := CommandLine.GetBool("no-codes"); noCodes {
		pNoCodes = true
	}
	if pNoCodes = pNoCodes || pQuiet || pJSON; pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}
}
