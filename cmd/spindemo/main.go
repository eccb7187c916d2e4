// Package main implements the spindemo CLI.
//
// spindemo exercises the spin.Mutex and the ordering experiments from the command line:
//
//	spindemo counter     # 100 workers x 1000 locked increments, checks the total
//	spindemo ordering    # sequentially consistent two-flag experiment, checks every outcome
//	spindemo relaxed     # copy-through experiment, prints outcomes without checking them
//
// counter is the default when no command is given. Any failed check exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("spindemo: ")

	command := "counter"
	args := os.Args[1:]
	if len(args) > 0 && !isCounterFlag(args[0]) {
		command, args = args[0], args[1:]
	}

	var err error
	switch command {
	case "counter":
		err = counterCommand(args)
	case "ordering":
		err = orderingCommand(args)
	case "relaxed":
		err = relaxedCommand(args)
	case "version", "--version", "-v":
		fmt.Printf("spindemo version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatal(err)
	}
}

// isCounterFlag reports whether arg is a flag meant for the default counter command.
func isCounterFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "-v", "--version":
		return false
	}
	return strings.HasPrefix(arg, "-")
}

func printUsage() {
	fmt.Print(`spindemo - spinlock mutex and memory ordering demos

USAGE:
    spindemo <command> [flags]

COMMANDS:
    counter    Increment a shared spin.Mutex from many workers and check the total (default)
    ordering   Repeat the sequentially consistent two-flag experiment and check every outcome
    relaxed    Repeat the copy-through experiment and print what it produced (never checked)
    version    Show version information
    help       Show this help message

EXAMPLES:
    spindemo counter -workers 100 -iterations 1000 -strategy backoff
    spindemo ordering -runs 10000
`)
}
