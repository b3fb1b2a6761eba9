package fortigate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSingleRule(t *testing.T) {
	input := `config firewall policy
    edit 1
        set name "Allow-LAN-to-Internet"
        set srcintf "internal"
        set dstintf "wan1"
        set action accept
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(res.Rules))
	}
	if res.Rules[0].ID != 1 {
		t.Errorf("Expected ID 1, got %d", res.Rules[0].ID)
	}
	if res.Rules[0].Name != "Allow-LAN-to-Internet" {
		t.Errorf("Name mismatch: %q", res.Rules[0].Name)
	}
	if res.PolicyBlocks != 1 {
		t.Errorf("Expected 1 policy block, got %d", res.PolicyBlocks)
	}
}

func TestParseMissingName(t *testing.T) {
	input := `config firewall policy
    edit 10
        set name "Named"
    next
    edit 20
        set action accept
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(res.Rules))
	}
	if res.Rules[1].ID != 20 {
		t.Errorf("Expected ID 20, got %d", res.Rules[1].ID)
	}
	if res.Rules[1].Name != "" {
		t.Errorf("Expected empty name, got %q", res.Rules[1].Name)
	}
}

func TestParseQuotedNames(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{`set name "Allow 'DMZ' -> web, v2"`, `Allow 'DMZ' -> web, v2`},
		{`set name 'single quoted'`, `single quoted`},
		{`set name "trailing space "`, `trailing space `},
		{`set name unquoted-token`, `unquoted-token`},
		{`SET NAME "case insensitive"`, `case insensitive`},
	}

	for _, tt := range tests {
		input := "config firewall policy\nedit 1\n" + tt.line + "\nnext\nend\n"
		res := Parse(input)
		if len(res.Rules) != 1 {
			t.Fatalf("%s: expected 1 rule, got %d", tt.line, len(res.Rules))
		}
		if res.Rules[0].Name != tt.want {
			t.Errorf("%s: got %q, want %q", tt.line, res.Rules[0].Name, tt.want)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n   \n", "some random text\nno blocks here\n"} {
		res := Parse(input)
		if len(res.Rules) != 0 {
			t.Errorf("Expected 0 rules for %q, got %d", input, len(res.Rules))
		}
	}
}

func TestParseDecoyBlocks(t *testing.T) {
	// Address and VIP blocks contain edit/next/end lines that must not
	// produce rules or unbalance the policy block that follows.
	input := `config firewall address
    edit "lan-subnet"
        set subnet 192.168.1.0 255.255.255.0
    next
end
config vpn ipsec phase1-interface
    edit "tunnel1"
        config nested sub-table
            edit 99
                set name "not a firewall rule"
            next
        end
    next
end
config firewall policy
    edit 5
        set name "Real-Rule"
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d: %+v", len(res.Rules), res.Rules)
	}
	if res.Rules[0].ID != 5 || res.Rules[0].Name != "Real-Rule" {
		t.Errorf("Unexpected rule: %+v", res.Rules[0])
	}
	if res.PolicyBlocks != 1 {
		t.Errorf("Expected 1 policy block, got %d", res.PolicyBlocks)
	}
}

func TestParseMalformedID(t *testing.T) {
	input := `config firewall policy
    edit banana
        set name "skipped"
    next
    edit 2
        set name "kept"
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(res.Rules))
	}
	if res.Rules[0].ID != 2 || res.Rules[0].Name != "kept" {
		t.Errorf("Unexpected rule: %+v", res.Rules[0])
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %d: %v", len(res.Warnings), res.Warnings)
	}
}

func TestParseNonPositiveIDs(t *testing.T) {
	input := `config firewall policy
    edit 0
        set name "zero"
    next
    edit -5
        set name "negative"
    next
    edit 3
        set name "kept"
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d: %+v", len(res.Rules), res.Rules)
	}
	if res.Rules[0].ID != 3 || res.Rules[0].Name != "kept" {
		t.Errorf("Unexpected rule: %+v", res.Rules[0])
	}
	if len(res.Warnings) != 2 {
		t.Errorf("Expected 2 warnings, got %d: %v", len(res.Warnings), res.Warnings)
	}
}

func TestParseOverlongAttributeLine(t *testing.T) {
	// A multi-megabyte attribute line must not swallow the rest of the
	// document.
	input := `config firewall policy
    edit 1
        set name "big-comment"
        set comment "` + strings.Repeat("x", 2*1024*1024) + `"
    next
    edit 2
        set name "after"
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d: %+v", len(res.Rules), res.Rules)
	}
	if res.Rules[0].Name != "big-comment" {
		t.Errorf("Name mismatch: %q", res.Rules[0].Name)
	}
	if res.Rules[1].ID != 2 || res.Rules[1].Name != "after" {
		t.Errorf("Unexpected rule: %+v", res.Rules[1])
	}
}

func TestParseUnterminated(t *testing.T) {
	// No next, no end: the trailing rule is finalized at EOF.
	input := `config firewall policy
    edit 7
        set name "dangling"
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(res.Rules))
	}
	if res.Rules[0].ID != 7 || res.Rules[0].Name != "dangling" {
		t.Errorf("Unexpected rule: %+v", res.Rules[0])
	}
}

func TestParseMissingNext(t *testing.T) {
	// end closes both the open rule and the policy block.
	input := `config firewall policy
    edit 3
        set name "no-next"
end
config firewall address
    edit "x"
    next
end
`
	res := Parse(input)

	if len(res.Rules) != 1 {
		t.Fatalf("Expected 1 rule, got %d", len(res.Rules))
	}
	if res.Rules[0].Name != "no-next" {
		t.Errorf("Name mismatch: %q", res.Rules[0].Name)
	}
}

func TestParseLineEndings(t *testing.T) {
	unix := "config firewall policy\nedit 1\nset name \"a\"\nnext\nend\n"
	for _, sep := range []string{"\r\n", "\r"} {
		input := strings.ReplaceAll(unix, "\n", sep)
		res := Parse(input)
		if len(res.Rules) != 1 || res.Rules[0].Name != "a" {
			t.Errorf("separator %q: got %+v", sep, res.Rules)
		}
	}
}

func TestParseMultiplePolicyBlocks(t *testing.T) {
	input := `config firewall policy
    edit 1
        set name "first"
    next
end
config system interface
    edit "port1"
    next
end
config firewall policy
    edit 1
        set name "duplicate id kept"
    next
    edit 2
    next
end
`
	res := Parse(input)

	if res.PolicyBlocks != 2 {
		t.Errorf("Expected 2 policy blocks, got %d", res.PolicyBlocks)
	}
	if len(res.Rules) != 3 {
		t.Fatalf("Expected 3 rules, got %d", len(res.Rules))
	}
	// Duplicate ids are kept in appearance order, no deduplication.
	if res.Rules[0].ID != 1 || res.Rules[1].ID != 1 || res.Rules[2].ID != 2 {
		t.Errorf("Unexpected order: %+v", res.Rules)
	}
	if res.Rules[1].Name != "duplicate id kept" {
		t.Errorf("Name mismatch: %q", res.Rules[1].Name)
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fw.conf")

	content := `config firewall policy
    edit 1
        set name "from-file"
    next
end
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	res, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(res.Rules) != 1 || res.Rules[0].Name != "from-file" {
		t.Errorf("Unexpected result: %+v", res.Rules)
	}

	if _, err := ParseFile(filepath.Join(tmpDir, "missing.conf")); err == nil {
		t.Error("Expected error for missing file")
	}
}
