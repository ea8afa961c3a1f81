package ziputil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func skipHiddenOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("dot-prefixed names are not hidden on windows")
	}
}

// buildTree lays out a small tree under dir/tree and returns its path:
//
//	tree/a.txt
//	tree/empty/
//	tree/sub/b.txt
//	tree/sub/deep/c.txt
//	tree/.hidden
//	tree/.git/config
//	tree/sub/.secret
func buildTree(t *testing.T, dir string) string {
	t.Helper()
	root := filepath.Join(dir, "tree")
	writeTestFile(t, filepath.Join(root, "a.txt"), []byte("alpha"))
	writeTestFile(t, filepath.Join(root, "sub", "b.txt"), pattern(3*DefaultBufferSize))
	writeTestFile(t, filepath.Join(root, "sub", "deep", "c.txt"), pattern(DefaultBufferSize+1))
	writeTestFile(t, filepath.Join(root, ".hidden"), []byte("hidden"))
	writeTestFile(t, filepath.Join(root, ".git", "config"), []byte("[core]"))
	writeTestFile(t, filepath.Join(root, "sub", ".secret"), []byte("secret"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	return root
}

func archiveNames(t *testing.T, archive string) []string {
	t.Helper()
	entries, err := List(archive)
	require.NoError(t, err)
	return Names(entries)
}
