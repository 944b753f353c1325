// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/computer/emulator"
	"github.com/ezrec/computer/io"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] init|load|run|step [FILE]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var input string
	var output string
	var color string
	var limit int
	var until string
	var verbose bool

	flag.StringVar(&input, "i", "-", "Computer source input")
	flag.StringVar(&output, "o", "-", "Computer output")
	flag.StringVar(&color, "color", "auto", "Highlight the program counter: auto, always, or never")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to run, 0 for no limit")
	flag.StringVar(&until, "u", "", "Starlark expression that stops a run when true")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(2)
	}

	command := flag.Arg(0)
	switch command {
	case "init", "load", "run", "step":
	default:
		log.Fatalf("%v: Unknown command: %v", os.Args[0], command)
	}

	if flag.NArg() == 2 {
		input = flag.Arg(1)
	}

	mode, err := io.ParseColorMode(color)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	tape := &io.Tape{Color: mode, Verbose: verbose}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		tape.Output = ouf
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Limit = limit
	emu.Until = until

	if command != "init" {
		if input == "-" {
			tape.Input = os.Stdin
		} else {
			inf, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
			tape.Input = inf
		}

		emu.Computer, err = tape.Load()
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	switch command {
	case "init", "load":
		// Print as loaded.
	case "run":
		err = emu.Run()
	case "step":
		_, err = emu.Tick()
	}
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	err = tape.Store(emu.Computer)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
