// Command bkclock is an analogue, digital and word clock.
package main

import (
	"os"

	"github.com/go-drift/bkclock/cmd/bkclock/cmd"
)

func main() {
	// Execute has already logged the failure.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
