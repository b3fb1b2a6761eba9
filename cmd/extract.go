package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/oelu/fg-rule-name-extractor/internal/brand"
	"github.com/oelu/fg-rule-name-extractor/internal/fortigate"
	"github.com/oelu/fg-rule-name-extractor/internal/i18n"
	"github.com/oelu/fg-rule-name-extractor/internal/logging"
	"github.com/oelu/fg-rule-name-extractor/internal/render"
)

// Printer is the global message printer for the CLI
var Printer = i18n.NewCLIPrinter()

// RunExtract parses a FortiGate config export and writes the rule listing.
func RunExtract(args []string) error {
	var outputFile string
	var format string

	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	fs.StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	fs.StringVar(&outputFile, "o", "", "Output file path (short)")
	fs.StringVar(&format, "format", "detailed", "Output format (detailed, simple, csv, json, yaml)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: %s extract [--format <fmt>] [-o <file>] <config-file>", brand.BinaryName)
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	result, err := fortigate.ParseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logging.Warn(w, "file", fs.Arg(0))
	}

	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := render.Render(file, result.Rules, f); err != nil {
			file.Close()
			return fmt.Errorf("failed to render output: %w", err)
		}
		// A failed close means the output is incomplete.
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		Printer.Printf("Output written to: %s\n", outputFile)
	} else if err := render.Render(os.Stdout, result.Rules, f); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	// Zero rules is a valid outcome, reported on stderr so it never
	// pollutes machine-readable output.
	if len(result.Rules) == 0 {
		Printer.Fprintf(os.Stderr, "0 rules found\n")
	}

	return nil
}
