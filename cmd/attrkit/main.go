// Package main provides the attrkit CLI.
//
// attrkit inspects typed-attribute declarations:
//   - describe: lists the properties and operations of the demo Order class
//   - signature: describes a call signature given as KIND:NAME arguments
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
