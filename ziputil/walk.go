package ziputil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// visitFunc is called for every non-hidden entry of a tree. name is the
// slash-separated entry name, rooted at the tree's base name.
type visitFunc func(path, name string, info fs.FileInfo) error

// walkTree visits path and, for directories, its children depth first in
// name order. Hidden entries are skipped together with their descendants.
func walkTree(path, name string, visit visitFunc) error {
	hidden, err := isHidden(path)
	if err != nil {
		return err
	}
	if hidden {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := visit(path, name, info); err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}
	// os.ReadDir returns children sorted by name
	children, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, child := range children {
		err := walkTree(filepath.Join(path, child.Name()), name+"/"+child.Name(), visit)
		if err != nil {
			return err
		}
	}
	return nil
}

// treeName returns the entry name of a tree root: the base name of its
// absolute path, so "." and "dir/" name the directory itself.
func treeName(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

// pathSet holds absolute paths a tree walk leaves out, such as an archive
// being written into the tree it packs.
type pathSet map[string]struct{}

func newPathSet(paths ...string) (pathSet, error) {
	set := make(pathSet, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		set[abs] = struct{}{}
	}
	return set, nil
}

func (s pathSet) has(path string) bool {
	if len(s) == 0 {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := s[abs]
	return ok
}
