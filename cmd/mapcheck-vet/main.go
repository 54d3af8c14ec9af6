// Command mapcheck-vet runs the mapcheck analyzer as a standalone
// go/analysis driver, or as a vet tool:
//
//	go vet -vettool=$(which mapcheck-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"mapcheck/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
