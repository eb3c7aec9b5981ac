// Package main is the entry point for the kmm2journal CLI.
package main

import (
	"os"

	"github.com/ledgerkit/kmm2journal/cmd/kmm2journal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
