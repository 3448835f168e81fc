package main

import (
	"os"

	"github.com/named-data/extremum/cmd"
	"github.com/named-data/extremum/core"
	"github.com/named-data/extremum/tools"
)

// Version of extremum.
var Version string

// BuildTime contains the timestamp of when the version of extremum was built.
var BuildTime string

func main() {
	core.Version = Version
	core.BuildTime = BuildTime

	// create a command tree
	tree := cmd.CmdTree{
		Name: "extremum",
		Help: "Lowest and highest values across integer types",
		Sub: []*cmd.CmdTree{{
			Name: "demo",
			Help: "Increment the highest of three integers in place",
			Fun:  tools.RunDemo,
		}, {
			// selection separator
		}, {
			Name: "lowest",
			Help: "Print the lowest of typed integers",
			Fun:  tools.RunLowest,
		}, {
			Name: "highest",
			Help: "Print the highest of typed integers",
			Fun:  tools.RunHighest,
		}, {
			Name: "compare",
			Help: "Print the pairwise order of typed integers",
			Fun:  tools.RunCompare,
		}, {
			// info separator
		}, {
			Name: "version",
			Help: "Print version and exit",
			Fun:  tools.RunVersion,
		}},
	}

	// Parse the command line arguments
	args := os.Args
	args[0] = tree.Name
	tree.Execute(args)
}
