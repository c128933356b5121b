// Command tuplecheck runs the tuple checks as a standalone or vet tool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/codewandler/clstr-msg/internal/tuplecheck"
)

func main() { singlechecker.Main(tuplecheck.Analyzer) }
