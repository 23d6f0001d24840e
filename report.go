//go:build !dialog
// +build !dialog

package main

import (
	"fmt"
	"os"
)

// reportError tells the user why the demo could not run.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "An error has occurred: %v\n", err)
}
