package selection

import (
	"path/filepath"
	"strings"
)

// Excluded reports whether a path is protected from deletion. A path is
// excluded if it contains any exclusion as a literal substring, or if its
// basename exactly equals one. Exclusions are deliberately not glob
// patterns; the coarser check is the conservative one for a protection
// list. The first matching exclusion wins.
func Excluded(path string, exclusions []string) bool {
	base := filepath.Base(path)
	for _, ex := range exclusions {
		if ex == "" {
			continue
		}
		if strings.Contains(path, ex) || base == ex {
			return true
		}
	}
	return false
}
