package cmd

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oelu/fg-rule-name-extractor/internal/brand"
	"github.com/oelu/fg-rule-name-extractor/internal/fortigate"
)

// RunDiff compares the rule lists of two config exports.
func RunDiff(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s diff <config-a> <config-b>", brand.BinaryName)
	}

	resA, err := fortigate.ParseFile(args[0])
	if err != nil {
		return err
	}
	resB, err := fortigate.ParseFile(args[1])
	if err != nil {
		return err
	}

	linesA := ruleLines(resA.Rules)
	linesB := ruleLines(resB.Rules)

	diff := difflib.UnifiedDiff{
		A:        linesA,
		B:        linesB,
		FromFile: args[0],
		ToFile:   args[1],
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}

	if text == "" {
		Printer.Println("No changes detected.")
		return nil
	}

	Printer.Printf("%s", text)
	return fmt.Errorf("rule sets differ")
}

// ruleLines renders rules one per line for diffing.
func ruleLines(rules []fortigate.Rule) []string {
	lines := make([]string, 0, len(rules))
	for _, r := range rules {
		lines = append(lines, fmt.Sprintf("%d\t%s\n", r.ID, r.Name))
	}
	return lines
}
