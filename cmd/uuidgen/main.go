// Command uuidgen generates, parses and hashes version 4 UUIDs, and runs
// collision checks in memory or against a MySQL registry.
package main

import (
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, os.Getenv)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
