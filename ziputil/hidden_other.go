//go:build !windows

package ziputil

import (
	"path/filepath"
	"strings"
)

// isHidden reports whether the entry at path is hidden. Outside Windows a
// name starting with a dot is hidden.
func isHidden(path string) (bool, error) {
	name := filepath.Base(path)
	return len(name) > 1 && strings.HasPrefix(name, ".") && name != "..", nil
}
