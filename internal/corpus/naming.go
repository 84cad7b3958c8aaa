package corpus

import (
	"path/filepath"
	"strings"
)

// DeriveBaseName reproduces the reference pipeline's "<id>-<size>"
// naming convention (e.g. "21207464-small") from a corpus root directory
// such as ".../comp3009j-corpus-small", yielding "comp3009j-small". Root
// directories that don't follow the "<id>-corpus-<size>" shape fall back
// to their own base name.
func DeriveBaseName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	parts := strings.SplitN(base, "-corpus-", 2)
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return parts[0] + "-" + parts[1]
	}
	return base
}
