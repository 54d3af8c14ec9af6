// Command mapcheck reports mapping functions that leave fields of their
// target unassigned.
//
// Usage:
//
//	mapcheck check [--format text|json|yaml] [--tests] [patterns...]
//	mapcheck list [patterns...]
//	mapcheck config
//	mapcheck version
//
// Patterns default to ./... . Configuration is read from --config, or from
// .mapcheck.yaml in the working directory when present.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if !errors.Is(err, errFindings) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	return 1
}
