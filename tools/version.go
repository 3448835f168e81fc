package tools

import (
	"fmt"
	"os"

	"github.com/named-data/extremum/core"
)

func RunVersion(args []string) {
	fmt.Fprintln(os.Stderr, "extremum: lowest and highest values across integer types")
	fmt.Fprintln(os.Stderr, "Version "+core.Version+" (Built "+core.BuildTime+")")
	fmt.Fprintln(os.Stderr, "Released under the terms of the MIT License")
}
