//go:build dialog
// +build dialog

package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
)

// reportError shows a native message box, and mirrors it to stderr for
// terminals.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "An error has occurred: %v\n", err)
	dialog.Message("%s", err.Error()).Title("An error has occurred!").Error()
}
