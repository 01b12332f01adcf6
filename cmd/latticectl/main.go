// SPDX-License-Identifier: MIT
// Command latticectl builds finite lattices from the unitcell library and
// prints a summary or a YAML document.
//
//	latticectl cells
//	latticectl show honeycomb
//	latticectl build periodic --cell honeycomb --extent 4,4 --boundary periodic,open
//	latticectl build distance --cell kagome --max 3 --output yaml
//	latticectl build sphere --cell triangular --radius 2.5 --prune
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "latticectl:", err)
		os.Exit(1)
	}
}
