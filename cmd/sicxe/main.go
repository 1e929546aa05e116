// Package main provides the entry point for the SIC/XE instruction decoder.
//
// Usage:
//
//	sicxe                      # prompt for one instruction
//	sicxe 032600 0x4B101036    # decode each argument
//	sicxe -pc 0x1000 -base 0x2000 -lang en 6B2FF8
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/sarchlab/sicxe/config"
	"github.com/sarchlab/sicxe/insts"
	"github.com/sarchlab/sicxe/report"
	"github.com/sarchlab/sicxe/translate"
)

func main() {
	// Piped input is echoed after the prompt so the output reads like a
	// terminal session.
	echo := !term.IsTerminal(int(os.Stdin.Fd()))

	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, echo))
}

// run parses args, decodes the requested instructions and returns the
// process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, echo bool) int {
	fs := flag.NewFlagSet("sicxe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to decode configuration JSON file")
	pc := fs.String("pc", "", "Program counter, decimal or 0x hex (default 0x3000)")
	base := fs.String("base", "", "Base register, decimal or 0x hex (default 0x0000)")
	showHex := fs.Bool("x", false, "Print the normalized hex input")
	lang := fs.String("lang", "", "Output language: ko, en or auto (default ko)")
	verbose := fs.Bool("v", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sicxe [options] [hex ...]\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.DefaultDecodeConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading decode config: %v\n", err)
			return 1
		}
	}

	if *pc != "" {
		v, err := config.ParseAddress(*pc)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing -pc: %v\n", err)
			return 2
		}
		cfg.ProgramCounter = v
	}
	if *base != "" {
		v, err := config.ParseAddress(*base)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing -base: %v\n", err)
			return 2
		}
		cfg.BaseRegister = v
	}
	if *showHex {
		cfg.ShowHex = true
	}
	if *lang != "" {
		cfg.Language = *lang
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid decode config: %v\n", err)
		return 1
	}

	tag, err := translate.Resolve(cfg.Language)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing language %q: %v\n", cfg.Language, err)
		return 2
	}
	tag = translate.SetLanguage(tag)

	if *verbose {
		fmt.Fprintf(stderr, "PC: 0x%04X\n", cfg.ProgramCounter)
		fmt.Fprintf(stderr, "Base: 0x%04X\n", cfg.BaseRegister)
		fmt.Fprintf(stderr, "Language: %v\n", tag)
	}

	decoder := insts.NewDecoder()

	if fs.NArg() > 0 {
		return runBatch(decoder, cfg, fs.Args(), stdout)
	}

	return runPrompt(decoder, cfg, stdin, stdout, echo)
}

// runPrompt reads a single line from stdin and decodes it.
func runPrompt(decoder *insts.Decoder, cfg *config.DecodeConfig, stdin io.Reader, stdout io.Writer, echo bool) int {
	fmt.Fprint(stdout, translate.From("Hex input : "))

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintln(stdout)
		report.WriteError(stdout, err)
		return 1
	}

	line = strings.TrimRight(line, "\r\n")
	if echo {
		fmt.Fprintln(stdout, line)
	}

	return decodeOne(decoder, cfg, line, cfg.ShowHex, stdout)
}

// runBatch decodes each argument in turn, separating reports with a blank
// line. All arguments are attempted even after a failure.
func runBatch(decoder *insts.Decoder, cfg *config.DecodeConfig, hexes []string, stdout io.Writer) int {
	exitCode := 0

	for i, hex := range hexes {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if code := decodeOne(decoder, cfg, hex, true, stdout); code != 0 {
			exitCode = code
		}
	}

	return exitCode
}

func decodeOne(decoder *insts.Decoder, cfg *config.DecodeConfig, hex string, showHex bool, stdout io.Writer) int {
	inst, err := decoder.Decode(hex, cfg.ProgramCounter, cfg.BaseRegister)
	if err != nil {
		report.WriteError(stdout, err)
		return 1
	}

	if err := report.Write(stdout, inst, report.Options{ShowHex: showHex}); err != nil {
		return 1
	}

	return 0
}
