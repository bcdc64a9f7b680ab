// Package main is the entry point for the pulsectl CLI
package main

import (
	"os"

	"brandpulse/cmd/pulsectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
