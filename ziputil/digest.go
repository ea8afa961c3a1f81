package ziputil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/zeebo/blake3"
)

const opDigestTree = "digest tree"

// Digests maps entry names to the BLAKE3 hash of their content.
type Digests map[string]string

// GetHash calculates the BLAKE3 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func GetHash(r io.Reader) (string, error) {
	h := blake3.New()
	if _, err := Copy(h, r, 0); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// DigestTree hashes every file ZipDirectory would store for root, keyed by
// the entry name it would receive. Files at any of the exclude paths are
// left out, the way ZipDirectory leaves out its own destination archive.
func DigestTree(root string, exclude ...string) (Digests, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, newError(KindNotFound, opDigestTree, root, err)
	}
	if !info.IsDir() {
		return nil, newError(KindIO, opDigestTree, root, ErrExpectedDirectory)
	}
	rootName, err := treeName(root)
	if err != nil {
		return nil, newError(KindIO, opDigestTree, root, err)
	}
	skip, err := newPathSet(exclude...)
	if err != nil {
		return nil, newError(KindIO, opDigestTree, root, err)
	}

	digests := Digests{}
	err = walkTree(root, rootName, func(path, name string, info fs.FileInfo) error {
		if info.IsDir() || skip.has(path) {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return newError(KindNotFound, opDigestTree, path, err)
		}
		defer f.Close()
		sum, err := GetHash(f)
		if err != nil {
			return newError(KindIO, opDigestTree, path, err)
		}
		digests[name] = sum
		return nil
	})
	if err != nil {
		return nil, asError(KindIO, opDigestTree, root, err)
	}
	return digests, nil
}

// DigestArchive hashes the decompressed content of every file entry of
// archivePath. Directory markers are ignored.
func DigestArchive(archivePath string) (Digests, error) {
	source, err := openSource(opDigest, archivePath)
	if err != nil {
		return nil, err
	}
	defer source.close()

	digests := Digests{}
	for _, entry := range source.zr.File {
		if err := checkEntry(opDigest, archivePath, entry); err != nil {
			return nil, err
		}
		if entry.FileInfo().IsDir() {
			continue
		}
		sum, err := digestEntry(entry.Open)
		if err != nil {
			return nil, newError(KindIO, opDigest, entry.Name, err)
		}
		digests[entry.Name] = sum
	}
	return digests, nil
}

func digestEntry(open func() (io.ReadCloser, error)) (string, error) {
	rc, err := open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return GetHash(rc)
}

// Diff compares d against other and describes every name that is missing
// from other, extra in other, or whose content differs. The result is
// sorted and empty when both sets match.
func (d Digests) Diff(other Digests) []string {
	var diffs []string
	for name, sum := range d {
		got, ok := other[name]
		switch {
		case !ok:
			diffs = append(diffs, "missing: "+name)
		case got != sum:
			diffs = append(diffs, "mismatch: "+name)
		}
	}
	for name := range other {
		if _, ok := d[name]; !ok {
			diffs = append(diffs, "extra: "+name)
		}
	}
	sort.Strings(diffs)
	return diffs
}
