// Copyright (C) 2024 Alexander Watts. All Rights Reserved.

// Program jtools is a command-line front end for the jtools JSON core.
//
// Usage:
//
//	jtools scan <file|->             print the token sequence
//	jtools parse <file|->            validate; silent on success
//	jtools format [flags] <file|->   pretty-print
//	jtools minify [flags] <file|->   compact
//
// A file argument of "-" reads from stdin. Errors from the core already
// embed a caret-annotated source preview; this program only prints them
// and chooses the exit code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AlexanderWatts/jtools"
	"github.com/AlexanderWatts/jtools/ast"
	"github.com/AlexanderWatts/jtools/format"
	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}
	switch cmd := args[0]; cmd {
	case "scan":
		return cmdScan(args[1:])
	case "parse":
		return cmdParse(args[1:])
	case "format":
		return cmdFormat(args[1:])
	case "minify":
		return cmdMinify(args[1:])
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "jtools: unknown command %q\n\n", cmd)
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: jtools <command> [flags] <file|->

commands:
  scan     print the token sequence for the input
  parse    check that the input is a single valid JSON value
  format   pretty-print the input (flags: -indent, -w)
  minify   render the input compactly (flags: -w)

Pass "-" as the file to read from stdin.
`)
}

func cmdScan(args []string) int {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	path, source, ok := readSource(fs)
	if !ok {
		return 2
	}
	setVerbose(*verbose)

	start := time.Now()
	tokens, err := jtools.NewScanner(source).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.Debug().Str("input", path).Int("tokens", len(tokens)).
		Dur("elapsed", time.Since(start)).Msg("scan complete")

	for _, tok := range tokens {
		fmt.Println(tok)
	}
	return 0
}

func cmdParse(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	path, source, ok := readSource(fs)
	if !ok {
		return 2
	}
	setVerbose(*verbose)

	if _, err := parsePipeline(path, source); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func cmdFormat(args []string) int {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	indent := fs.Int("indent", 4, "spaces per nesting level (0..8)")
	write := fs.Bool("w", false, "write the result back to the input file")
	verbose := fs.Bool("v", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	f, err := format.NewFormatter(*indent)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	path, source, ok := readSource(fs)
	if !ok {
		return 2
	}
	setVerbose(*verbose)

	root, err := parsePipeline(path, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return emit(path, f.Format(root)+"\n", *write)
}

func cmdMinify(args []string) int {
	fs := flag.NewFlagSet("minify", flag.ContinueOnError)
	write := fs.Bool("w", false, "write the result back to the input file")
	verbose := fs.Bool("v", false, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	path, source, ok := readSource(fs)
	if !ok {
		return 2
	}
	setVerbose(*verbose)

	root, err := parsePipeline(path, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return emit(path, format.Minify(root)+"\n", *write)
}

// parsePipeline runs scan then parse over source.
func parsePipeline(path, source string) (ast.Node, error) {
	start := time.Now()
	tokens, err := jtools.NewScanner(source).Scan()
	if err != nil {
		return nil, err
	}
	root, err := ast.Parse(source, tokens)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("input", path).Int("tokens", len(tokens)).
		Dur("elapsed", time.Since(start)).Msg("parse complete")
	return root, nil
}

// readSource resolves the one positional argument of a subcommand to its
// contents. "-" reads stdin.
func readSource(fs *flag.FlagSet) (path, source string, ok bool) {
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "jtools: expected exactly one input file (or - for stdin)")
		return "", "", false
	}
	path = fs.Arg(0)
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jtools: reading stdin: %v\n", err)
			return "", "", false
		}
		return path, string(data), true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jtools: %v\n", err)
		return "", "", false
	}
	return path, string(data), true
}

// emit prints the result, or writes it back to the input file with -w.
func emit(path, text string, write bool) int {
	if !write || path == "-" {
		fmt.Print(text)
		return 0
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "jtools: %v\n", err)
		return 1
	}
	log.Debug().Str("output", path).Int("bytes", len(text)).Msg("wrote file")
	return 0
}

func setVerbose(on bool) {
	if on {
		log = log.Level(zerolog.DebugLevel)
	}
}
