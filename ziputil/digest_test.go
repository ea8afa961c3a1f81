package ziputil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	h1, err := GetHash(bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	h2, err := GetHash(bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	h3, err := GetHash(bytes.NewReader([]byte("hello!")))
	require.NoError(t, err)

	assert.Len(t, h1, 64, "blake3 digests are 32 bytes hex encoded")
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
}

func TestDigestTree_MatchesArchive(t *testing.T) {
	skipHiddenOnWindows(t)
	dir := t.TempDir()
	root := buildTree(t, dir)
	archive := filepath.Join(dir, "tree.zip")
	require.NoError(t, ZipDirectory(root, archive))

	tree, err := DigestTree(root)
	require.NoError(t, err)
	packed, err := DigestArchive(archive)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"tree/a.txt", "tree/sub/b.txt", "tree/sub/deep/c.txt"}, keys(tree))
	assert.Empty(t, tree.Diff(packed))
}

func TestDigestTree_ExcludesArchiveInsideTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	writeTestFile(t, filepath.Join(root, "a.txt"), []byte("a"))
	archive := filepath.Join(root, "tree.zip")
	require.NoError(t, ZipDirectory(root, archive))

	packed, err := DigestArchive(archive)
	require.NoError(t, err)

	all, err := DigestTree(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"missing: tree/tree.zip"}, all.Diff(packed))

	tree, err := DigestTree(root, archive)
	require.NoError(t, err)
	assert.Equal(t, []string{"tree/a.txt"}, keys(tree))
	assert.Empty(t, tree.Diff(packed))
}

func TestDigestTree_DetectsChanges(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	writeTestFile(t, filepath.Join(root, "keep.txt"), []byte("keep"))
	writeTestFile(t, filepath.Join(root, "edit.txt"), []byte("before"))
	writeTestFile(t, filepath.Join(root, "drop.txt"), []byte("drop"))
	archive := filepath.Join(dir, "tree.zip")
	require.NoError(t, ZipDirectory(root, archive))

	require.NoError(t, os.WriteFile(filepath.Join(root, "edit.txt"), []byte("after"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(root, "drop.txt")))
	writeTestFile(t, filepath.Join(root, "new.txt"), []byte("new"))

	tree, err := DigestTree(root)
	require.NoError(t, err)
	packed, err := DigestArchive(archive)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"extra: tree/drop.txt",
		"mismatch: tree/edit.txt",
		"missing: tree/new.txt",
	}, tree.Diff(packed))
}

func TestDigest_Failures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeTestFile(t, file, []byte("plain"))

	_, err := DigestTree(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, err = DigestTree(file)
	assert.ErrorIs(t, err, ErrExpectedDirectory)

	_, err = DigestArchive(filepath.Join(dir, "missing.zip"))
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, err = DigestArchive(file)
	assert.ErrorIs(t, err, ErrIO)
}

func keys(d Digests) []string {
	out := make([]string, 0, len(d))
	for k := range d {
		out = append(out, k)
	}
	return out
}
