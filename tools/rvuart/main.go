package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/rvuart/tools/run"
	"github.com/clktmr/rvuart/tools/uartsim"
)

const usageString = `rvuart is a tool for developing with the rvuart serial driver.

Usage:

	%s <command> [arguments]

The commands are:

	uartsim  run the line echo program against a simulated UART
	run      run an image in an emulator and report test results
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "uartsim":
		uartsim.Main(flag.Args())
	case "run":
		run.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
