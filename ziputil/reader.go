package ziputil

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

const (
	opUnZipFile      = "unzip file"
	opUnZipDirectory = "unzip directory"
	opList           = "list archive"
	opDigest         = "digest archive"
)

// archiveSource is an open archive being read.
type archiveSource struct {
	path string
	file *os.File
	zr   *zip.Reader
}

// openSource opens path for reading as a zip archive.
func openSource(op, path string) (*archiveSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newError(KindNotFound, op, path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, newError(KindIO, op, path, err)
	}
	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		file.Close()
		return nil, newError(KindIO, op, path, err)
	}
	return &archiveSource{path: path, file: file, zr: zr}, nil
}

func (s *archiveSource) close() error {
	return s.file.Close()
}

// checkEntry rejects entries that are nil, unnamed, absolute, or that climb
// out of the extraction root.
func checkEntry(op, archive string, entry *zip.File) error {
	if entry == nil {
		return newError(KindNull, op, archive, ErrNilEntry)
	}
	if entry.Name == "" {
		return newError(KindNull, op, archive, ErrEmptyEntryName)
	}
	name := strings.ReplaceAll(entry.Name, `\`, "/")
	clean := path.Clean(name)
	if path.IsAbs(clean) || filepath.IsAbs(entry.Name) || filepath.VolumeName(entry.Name) != "" ||
		clean == ".." || strings.HasPrefix(clean, "../") {
		return newError(KindIO, op, entry.Name, ErrIllegalEntryPath)
	}
	return nil
}

// extractEntry streams the content of entry into a new file at target.
func (a *Archiver) extractEntry(op string, entry *zip.File, target string) error {
	rc, err := entry.Open()
	if err != nil {
		return newError(KindIO, op, entry.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return newError(KindNotFound, op, target, err)
	}
	n, err := Copy(out, rc, a.bufferSize())
	if err != nil {
		out.Close()
		return newError(KindIO, op, target, err)
	}
	if err := out.Close(); err != nil {
		return newError(KindIO, op, target, err)
	}
	a.log().WithFields(logrus.Fields{
		"entry": entry.Name,
		"path":  target,
		"bytes": n,
	}).Debug("extracted entry")
	return nil
}

// UnZipFile extracts every entry of archivePath to destinationPrefix
// followed directly by the entry name; no separator is inserted and no
// directories are created. It suits archives made by ZipFile and
// ZipMultipleFile.
func (a *Archiver) UnZipFile(archivePath, destinationPrefix string) error {
	source, err := openSource(opUnZipFile, archivePath)
	if err != nil {
		return err
	}
	defer source.close()

	for _, entry := range source.zr.File {
		if err := checkEntry(opUnZipFile, archivePath, entry); err != nil {
			return err
		}
		if err := a.extractEntry(opUnZipFile, entry, destinationPrefix+entry.Name); err != nil {
			return err
		}
	}
	return nil
}

// UnZipDirectory extracts archivePath below destinationRoot, creating the
// root and any directories the entries need. Extracting twice into the same
// root overwrites files and succeeds.
func (a *Archiver) UnZipDirectory(archivePath, destinationRoot string) error {
	if err := os.MkdirAll(destinationRoot, 0o755); err != nil {
		return newError(KindNotFound, opUnZipDirectory, destinationRoot, err)
	}
	source, err := openSource(opUnZipDirectory, archivePath)
	if err != nil {
		return err
	}
	defer source.close()

	for _, entry := range source.zr.File {
		if err := checkEntry(opUnZipDirectory, archivePath, entry); err != nil {
			return err
		}
		target := filepath.Join(destinationRoot, filepath.FromSlash(entry.Name))
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return newError(KindNotFound, opUnZipDirectory, target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return newError(KindNotFound, opUnZipDirectory, filepath.Dir(target), err)
		}
		if err := a.extractEntry(opUnZipDirectory, entry, target); err != nil {
			return err
		}
	}
	return nil
}
