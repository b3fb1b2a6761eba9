package cmd

import (
	"fmt"

	"github.com/oelu/fg-rule-name-extractor/internal/brand"
	"github.com/oelu/fg-rule-name-extractor/internal/fortigate"
)

// RunCheck parses a config export and reports what was recognized.
func RunCheck(configFile string) error {
	if configFile == "" {
		return fmt.Errorf("usage: %s check <config-file>", brand.BinaryName)
	}

	result, err := fortigate.ParseFile(configFile)
	if err != nil {
		return err
	}

	named := 0
	for _, r := range result.Rules {
		if r.Name != "" {
			named++
		}
	}

	Printer.Printf("Policy blocks: %d\n", result.PolicyBlocks)
	Printer.Printf("Rules: %d\n", len(result.Rules))
	Printer.Printf("Named: %d\n", named)
	Printer.Printf("Unnamed: %d\n", len(result.Rules)-named)

	if len(result.Warnings) > 0 {
		Printer.Println("\nWarnings:")
		for _, w := range result.Warnings {
			Printer.Printf("- %s\n", w)
		}
	}

	return nil
}
