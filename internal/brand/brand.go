// Package brand provides centralized identity constants for the tool.
// The identity is loaded from brand.json at compile time via go:embed so
// other tooling (packaging scripts, docs) can read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds the tool identity.
type Brand struct {
	Name        string `json:"name"`
	LowerName   string `json:"lowerName"`
	Description string `json:"description"`
	Repository  string `json:"repository"`
	BinaryName  string `json:"binaryName"`
	Version     string `json:"version"`
	License     string `json:"license"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	Name = b.Name
	LowerName = b.LowerName
	Description = b.Description
	Repository = b.Repository
	BinaryName = b.BinaryName
	Version = b.Version
	License = b.License
}

// Exported variables for convenience.
var (
	Name        string
	LowerName   string
	Description string
	Repository  string
	BinaryName  string
	Version     string
	License     string
)

// Get returns the full brand identity.
func Get() Brand {
	return b
}
