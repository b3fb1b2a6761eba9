// Package render writes extracted firewall rules in the supported output
// formats.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/oelu/fg-rule-name-extractor/internal/fortigate"
)

// Format selects an output rendering.
type Format int

const (
	FormatDetailed Format = iota
	FormatSimple
	FormatCSV
	FormatJSON
	FormatYAML
)

var formatNames = map[Format]string{
	FormatDetailed: "detailed",
	FormatSimple:   "simple",
	FormatCSV:      "csv",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return FormatDetailed, fmt.Errorf("unsupported format %q (expected detailed, simple, csv, json or yaml)", s)
}

// Render writes the rules to w in the given format. Zero rules is a normal
// input and renders an empty listing, not an error.
func Render(w io.Writer, rules []fortigate.Rule, f Format) error {
	switch f {
	case FormatDetailed:
		return renderDetailed(w, rules)
	case FormatSimple:
		return renderSimple(w, rules)
	case FormatCSV:
		return renderCSV(w, rules)
	case FormatJSON:
		return renderJSON(w, rules)
	case FormatYAML:
		return renderYAML(w, rules)
	default:
		return fmt.Errorf("unsupported format %d", f)
	}
}

func renderDetailed(w io.Writer, rules []fortigate.Rule) error {
	if _, err := fmt.Fprintf(w, "Found %d firewall rule(s):\n\n", len(rules)); err != nil {
		return err
	}
	for _, r := range rules {
		if _, err := fmt.Fprintf(w, "  ID: %6d  |  Name: %s\n", r.ID, r.Name); err != nil {
			return err
		}
	}
	return nil
}

func renderSimple(w io.Writer, rules []fortigate.Rule) error {
	for _, r := range rules {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

func renderCSV(w io.Writer, rules []fortigate.Rule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name"}); err != nil {
		return err
	}
	for _, r := range rules {
		if err := cw.Write([]string{strconv.Itoa(r.ID), r.Name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, rules []fortigate.Rule) error {
	if rules == nil {
		rules = []fortigate.Rule{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rules)
}

func renderYAML(w io.Writer, rules []fortigate.Rule) error {
	out, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
