package main

import (
	"github.com/mneverov/guardedptr/guardcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(guardcheck.Analyzer)
}
