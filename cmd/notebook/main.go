// Package main is the entry point for the notebook CLI.
package main

import (
	"os"

	"github.com/aidanlsb/notebook/internal/cli"
)

func main() {
	if err := cli.ExecuteNotebook(); err != nil {
		os.Exit(1)
	}
}
