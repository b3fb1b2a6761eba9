package main

import (
	"os"

	"github.com/oelu/fg-rule-name-extractor/cmd"
	"github.com/oelu/fg-rule-name-extractor/internal/brand"
	"github.com/oelu/fg-rule-name-extractor/internal/i18n"
)

var printer = i18n.NewCLIPrinter()

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "extract":
		if err := cmd.RunExtract(os.Args[2:]); err != nil {
			printer.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "check":
		configFile := ""
		if len(os.Args) > 2 {
			configFile = os.Args[2]
		}
		if err := cmd.RunCheck(configFile); err != nil {
			printer.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "diff":
		if err := cmd.RunDiff(os.Args[2:]); err != nil {
			printer.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "version":
		printer.Printf("%s %s\n", brand.Name, brand.Version)

	case "help", "-h", "--help":
		printUsage()

	default:
		printer.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	printer.Printf(`%s - %s

Usage:
  %s <command> [options]

Commands:
  extract   Extract firewall rule names from a config export
            Options: --format (detailed, simple, csv, json, yaml), --output (-o) <file>
  check     Parse a config export and report what was recognized
  diff      Compare the rule lists of two config exports
  version   Print the version
  help      Show this help

Examples:
  %s extract fw01-backup.conf
  %s extract --format csv -o rules.csv fw01-backup.conf
  %s check fw01-backup.conf
  %s diff fw01-before.conf fw01-after.conf
`,
		brand.Name, brand.Description,
		brand.LowerName,
		brand.LowerName, brand.LowerName, brand.LowerName, brand.LowerName)
}
