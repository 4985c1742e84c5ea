// Package main is the entry point for the note CLI.
package main

import (
	"os"

	"github.com/aidanlsb/notebook/internal/cli"
)

func main() {
	if err := cli.ExecuteNote(); err != nil {
		os.Exit(1)
	}
}
