package cliutil

import "fmt"

// ValidModes are the two query modes the query tool accepts.
var ValidModes = map[string]bool{
	"interactive": true,
	"automatic":   true,
}

// ResolveMode validates mode against ValidModes, mirroring get_mode in
// the reference query tool.
func ResolveMode(mode string) error {
	if !ValidModes[mode] {
		return fmt.Errorf("Error: Invalid arguments.")
	}
	return nil
}
