// Package fortigate extracts firewall policy rules from FortiGate
// configuration exports.
//
// A FortiGate export is a sequence of named config blocks:
//
//	config firewall policy
//	    edit 1
//	        set name "Allow-LAN-to-Internet"
//	        ...
//	    next
//	end
//
// Only "config firewall policy" blocks are descended into; every other
// block type is skipped wholesale, so edit/next/end lines inside unrelated
// blocks never produce rules.
package fortigate

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Rule is one firewall policy entry extracted from a config export.
type Rule struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Result holds the rules extracted from one configuration document.
// Rules appear in document order; duplicate IDs are kept as-is.
type Result struct {
	Rules        []Rule
	PolicyBlocks int      // recognized "config firewall policy" blocks
	Warnings     []string // non-fatal parse notes (e.g. malformed rule ids)
}

// parseState tracks where in the block structure the parser is.
type parseState int

const (
	stateTopLevel  parseState = iota
	stateSkipBlock            // inside an unrecognized config block
	statePolicy               // inside a policy block, between rules
	stateRule                 // inside an edit ... next rule body
)

var setNameRe = regexp.MustCompile(`(?i)^set\s+name\s+(.+)$`)

// ParseFile reads a FortiGate configuration export and extracts its
// firewall policy rules. The only error it returns is a failure to read
// the file; parsing itself never fails.
func ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config export: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse extracts firewall policy rules from configuration text. It is a
// total function: any input, including empty text, yields a Result.
func Parse(content string) *Result {
	// Accept LF, CRLF and bare CR exports.
	content = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(content)

	res := &Result{Rules: []Rule{}}

	state := stateTopLevel
	skipDepth := 0
	resume := stateTopLevel // state to restore when a skipped block closes
	var current *Rule       // pending rule; nil while skipping a malformed edit

	flush := func() {
		if current != nil {
			res.Rules = append(res.Rules, *current)
			current = nil
		}
	}

	// The whole document is already in memory; splitting keeps lines of any
	// length intact (a scanner would cap them and drop the rest of the input).
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		keyword := strings.ToLower(fields[0])

		switch state {
		case stateTopLevel:
			if keyword != "config" {
				continue
			}
			if isPolicyHeader(fields) {
				state = statePolicy
				res.PolicyBlocks++
			} else {
				state = stateSkipBlock
				skipDepth = 1
				resume = stateTopLevel
			}

		case stateSkipBlock:
			switch keyword {
			case "config":
				skipDepth++
			case "end":
				skipDepth--
				if skipDepth == 0 {
					state = resume
				}
			}

		case statePolicy:
			switch keyword {
			case "edit":
				current = nil
				if len(fields) >= 2 {
					// Identifiers are positive integers; anything else is
					// malformed and skips the rule.
					if id, err := strconv.Atoi(fields[1]); err == nil && id > 0 {
						current = &Rule{ID: id}
					}
				}
				if current == nil {
					res.Warnings = append(res.Warnings,
						fmt.Sprintf("skipping rule with malformed identifier: %q", line))
				}
				state = stateRule
			case "end":
				state = stateTopLevel
			case "config":
				// Sub-blocks inside a policy block carry no rules.
				state = stateSkipBlock
				skipDepth = 1
				resume = statePolicy
			}

		case stateRule:
			switch keyword {
			case "next":
				flush()
				state = statePolicy
			case "end":
				// Missing next; the end closes both the rule and the block.
				flush()
				state = stateTopLevel
			case "set":
				if current != nil {
					if m := setNameRe.FindStringSubmatch(line); m != nil {
						current.Name = unquote(strings.TrimSpace(m[1]))
					}
				}
			case "config":
				state = stateSkipBlock
				skipDepth = 1
				resume = stateRule
			}
		}
	}

	// Unterminated trailing rule: keep whatever was accumulated.
	flush()

	return res
}

// isPolicyHeader reports whether the fields form a "config firewall policy"
// section header.
func isPolicyHeader(fields []string) bool {
	return len(fields) == 3 &&
		strings.EqualFold(fields[0], "config") &&
		strings.EqualFold(fields[1], "firewall") &&
		strings.EqualFold(fields[2], "policy")
}

// unquote strips one pair of enclosing single or double quotes, leaving the
// inner content untouched. An unterminated quote keeps the remainder as-is.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; q == '"' || q == '\'' {
		if s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
		return s[1:]
	}
	return s
}
