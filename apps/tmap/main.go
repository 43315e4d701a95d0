//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/markkurossi/tmap/aig"
	"github.com/markkurossi/tmap/lut"
	"github.com/markkurossi/tmap/utils"
)

func main() {
	fVerbose := flag.Bool("v", false, "Verbose output")
	fDot := flag.String("dot", "", "Write the mapped cover as Graphviz dot")
	flag.Usage = usage
	flag.Parse()

	params := utils.NewParams()
	params.Verbose = *fVerbose
	defer params.Close()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Printf("No input files\n")
		usage()
		os.Exit(1)
	}

	goal := lut.MinimizeArea

	var err error
	if len(args) > 1 {
		params.K, err = strconv.Atoi(args[1])
		if err != nil {
			errorf("invalid value for parameter k: '%s'", args[1])
		}
	}
	if len(args) > 2 {
		params.C, err = strconv.Atoi(args[2])
		if err != nil {
			errorf("invalid value for parameter c: '%s'", args[2])
		}
	}
	if len(args) > 3 && len(args[3]) > 0 && args[3][0] == 'd' {
		goal = lut.MinimizeDelay
	}
	if len(*fDot) > 0 {
		params.DotOut, err = os.Create(*fDot)
		if err != nil {
			errorf("failed to create dot output: %s", err)
		}
	}

	if err := run(args[0], goal, params); err != nil {
		errorf("%s", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: tmap [options] <input.aig|input.aag> [K=6] [C=0] [a|d]\n")
	flag.PrintDefaults()
}

// errorf reports a fatal error and exits.
func errorf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "An error has ocurred.\n  what(): %s\n",
		fmt.Sprintf(format, a...))
	os.Exit(1)
}

func run(input string, goal lut.Goal, params *utils.Params) error {
	a, err := aig.ParseFile(input)
	if err != nil {
		return err
	}
	if params.Verbose {
		a.Print(os.Stdout)
	}

	engine, err := lut.NewCutEngine(a, goal, params.K, params.C)
	if err != nil {
		return err
	}
	mapper := lut.NewTechMapper(engine)
	if err := mapper.Run(); err != nil {
		return err
	}

	mapper.PrintResults(os.Stdout)
	if err := mapper.PrintImplementation(os.Stdout); err != nil {
		return err
	}
	engine.PrintState(os.Stdout)
	if err := engine.PrintImplementation(os.Stdout); err != nil {
		return err
	}

	if params.DotOut != nil {
		if err := mapper.Dot(params.DotOut); err != nil {
			return err
		}
	}
	return nil
}
