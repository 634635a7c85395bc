// Command robotkit inspects a structure model through the in-memory reference
// host: enumerations and their aliases, selections, labels and payload schemas.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
