package ziputil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipFile_SingleEntry(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input", "report.json")
	writeTestFile(t, src, []byte(`{"id":1}`))
	archive := filepath.Join(dir, "out.zip")

	require.NoError(t, ZipFile(src, archive))

	entries, err := List(archive)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name)
	assert.False(t, entries[0].Dir)
	assert.Equal(t, zip.Deflate, entries[0].Method)
	assert.Equal(t, uint64(8), entries[0].UncompressedSize)
}

func TestZipFile_OverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	writeTestFile(t, first, []byte("1"))
	writeTestFile(t, second, []byte("2"))
	archive := filepath.Join(dir, "out.zip")

	require.NoError(t, ZipFile(first, archive))
	require.NoError(t, ZipFile(second, archive))

	assert.Equal(t, []string{"second.txt"}, archiveNames(t, archive))
}

func TestZipFile_Failures(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.txt")
	writeTestFile(t, existing, []byte("x"))

	tests := []struct {
		name     string
		source   string
		archive  string
		sentinel error
	}{
		{
			name:     "missing source",
			source:   filepath.Join(dir, "nonexistent", "path"),
			archive:  filepath.Join(dir, "missing.zip"),
			sentinel: ErrSourceNotFound,
		},
		{
			name:     "source is a directory",
			source:   dir,
			archive:  filepath.Join(dir, "dir.zip"),
			sentinel: ErrSourceNotFound,
		},
		{
			name:     "empty source path",
			source:   "",
			archive:  filepath.Join(dir, "empty.zip"),
			sentinel: ErrUnexpectedNull,
		},
		{
			name:     "destination not creatable",
			source:   existing,
			archive:  filepath.Join(dir, "no", "such", "dir", "out.zip"),
			sentinel: ErrSourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ZipFile(tt.source, tt.archive)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestZipFile_MissingSourceLeavesNoEntry(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "out.zip")

	err := ZipFile("/nonexistent/path", archive)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Empty(t, archiveNames(t, archive))
}

func TestZipMultipleFile_AllEntries(t *testing.T) {
	dir := t.TempDir()
	var sources []string
	for _, name := range []string{"one.txt", "two.bin", "three.json"} {
		path := filepath.Join(dir, "src", name)
		writeTestFile(t, path, []byte("content of "+name))
		sources = append(sources, path)
	}
	archive := filepath.Join(dir, "multi.zip")

	require.NoError(t, ZipMultipleFile(sources, archive))
	assert.Equal(t, []string{"one.txt", "two.bin", "three.json"}, archiveNames(t, archive))
}

func TestZipMultipleFile_ReopenPerFile(t *testing.T) {
	dir := t.TempDir()
	var sources []string
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		path := filepath.Join(dir, name)
		writeTestFile(t, path, []byte(name))
		sources = append(sources, path)
	}
	archive := filepath.Join(dir, "multi.zip")

	a := &Archiver{ReopenPerFile: true}
	require.NoError(t, a.ZipMultipleFile(sources, archive))
	assert.Equal(t, []string{"c.txt"}, archiveNames(t, archive))
}

func TestZipMultipleFile_EmptySources(t *testing.T) {
	for _, reopen := range []bool{false, true} {
		archive := filepath.Join(t.TempDir(), "empty.zip")
		a := &Archiver{ReopenPerFile: reopen}
		require.NoError(t, a.ZipMultipleFile(nil, archive), "reopen=%v", reopen)
		assert.Empty(t, archiveNames(t, archive), "reopen=%v", reopen)
	}
}

func TestZipMultipleFile_FailureKeepsEarlierEntries(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeTestFile(t, good, []byte("good"))
	archive := filepath.Join(dir, "multi.zip")

	err := ZipMultipleFile([]string{good, filepath.Join(dir, "gone.txt"), good}, archive)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Equal(t, []string{"good.txt"}, archiveNames(t, archive))

	err = ZipMultipleFile([]string{good, ""}, archive)
	assert.ErrorIs(t, err, ErrUnexpectedNull)
}

func TestZipDirectory_Entries(t *testing.T) {
	skipHiddenOnWindows(t)
	dir := t.TempDir()
	root := buildTree(t, dir)
	archive := filepath.Join(dir, "tree.zip")

	require.NoError(t, ZipDirectory(root, archive))

	assert.Equal(t, []string{
		"tree/",
		"tree/a.txt",
		"tree/empty/",
		"tree/sub/",
		"tree/sub/b.txt",
		"tree/sub/deep/",
		"tree/sub/deep/c.txt",
	}, archiveNames(t, archive))
}

func TestZipDirectory_OmitDirectoryEntries(t *testing.T) {
	skipHiddenOnWindows(t)
	dir := t.TempDir()
	root := buildTree(t, dir)
	archive := filepath.Join(dir, "tree.zip")

	a := &Archiver{OmitDirectoryEntries: true}
	require.NoError(t, a.ZipDirectory(root, archive))

	assert.Equal(t, []string{
		"tree/a.txt",
		"tree/sub/b.txt",
		"tree/sub/deep/c.txt",
	}, archiveNames(t, archive))
}

func TestZipDirectory_HiddenEntriesExcluded(t *testing.T) {
	skipHiddenOnWindows(t)
	dir := t.TempDir()
	root := buildTree(t, dir)
	archive := filepath.Join(dir, "tree.zip")

	require.NoError(t, ZipDirectory(root, archive))

	for _, name := range archiveNames(t, archive) {
		assert.NotContains(t, name, ".hidden")
		assert.NotContains(t, name, ".git")
		assert.NotContains(t, name, ".secret")
	}
}

func TestZipDirectory_HiddenRootWritesNothing(t *testing.T) {
	skipHiddenOnWindows(t)
	dir := t.TempDir()
	root := filepath.Join(dir, ".cache")
	writeTestFile(t, filepath.Join(root, "data.txt"), []byte("data"))
	archive := filepath.Join(dir, "cache.zip")

	require.NoError(t, ZipDirectory(root, archive))
	assert.Empty(t, archiveNames(t, archive))
}

func TestZipDirectory_DestinationInsideTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	writeTestFile(t, filepath.Join(root, "a.txt"), []byte("a"))
	archive := filepath.Join(root, "self.zip")

	require.NoError(t, ZipDirectory(root, archive))
	assert.Equal(t, []string{"tree/", "tree/a.txt"}, archiveNames(t, archive))
}

func TestZipDirectory_Failures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeTestFile(t, file, []byte("plain"))

	err := ZipDirectory(filepath.Join(dir, "missing"), filepath.Join(dir, "a.zip"))
	assert.ErrorIs(t, err, ErrSourceNotFound)

	err = ZipDirectory(file, filepath.Join(dir, "b.zip"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, ErrExpectedDirectory)
	_, statErr := os.Stat(filepath.Join(dir, "b.zip"))
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "no archive should be created for a file source")
}

func TestArchiver_Levels(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.txt")
	data := pattern(20 * DefaultBufferSize)
	writeTestFile(t, src, data)

	for _, level := range []int{flate.BestSpeed, flate.BestCompression, flate.HuffmanOnly} {
		a := &Archiver{Level: level, BufferSize: 100}
		archive := filepath.Join(dir, "level.zip")
		require.NoError(t, a.ZipFile(src, archive), "level %d", level)

		prefix := filepath.Join(dir, "out") + string(filepath.Separator)
		require.NoError(t, os.MkdirAll(prefix, 0o755))
		require.NoError(t, a.UnZipFile(archive, prefix), "level %d", level)

		got, err := os.ReadFile(filepath.Join(prefix, "data.txt"))
		require.NoError(t, err)
		assert.Equal(t, data, got, "level %d", level)
	}
}
