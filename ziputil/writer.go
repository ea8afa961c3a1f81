package ziputil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/sirupsen/logrus"
)

const (
	opZipFile      = "zip file"
	opZipMultiple  = "zip multiple files"
	opZipDirectory = "zip directory"
)

// archiveSink is an open destination archive.
type archiveSink struct {
	path string
	file *os.File
	zw   *zip.Writer
}

// createSink truncates or creates path and starts a zip stream on it.
func (a *Archiver) createSink(op, path string) (*archiveSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, newError(KindNotFound, op, path, err)
	}
	zw := zip.NewWriter(file)
	level := a.level()
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &archiveSink{path: path, file: file, zw: zw}, nil
}

// close finishes the central directory and closes the file. The first
// failure wins; both steps always run.
func (s *archiveSink) close() error {
	err := s.zw.Close()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// closeSink closes s and reports the failure through errp unless an earlier
// error is already set.
func closeSink(s *archiveSink, op string, errp *error) {
	if cerr := s.close(); cerr != nil && *errp == nil {
		*errp = newError(KindIO, op, s.path, cerr)
	}
}

// writeFile adds the file at path to the sink under name.
func (a *Archiver) writeFile(s *archiveSink, op, path, name string) error {
	if path == "" {
		return newError(KindNull, op, path, ErrEmptySourcePath)
	}
	f, err := os.Open(path)
	if err != nil {
		return newError(KindNotFound, op, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return newError(KindIO, op, path, err)
	}
	if info.IsDir() {
		return newError(KindNotFound, op, path, ErrExpectedFile)
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return newError(KindIO, op, path, err)
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := s.zw.CreateHeader(header)
	if err != nil {
		return newError(KindIO, op, path, err)
	}
	n, err := Copy(w, f, a.bufferSize())
	if err != nil {
		return newError(KindIO, op, path, err)
	}
	a.log().WithFields(logrus.Fields{
		"archive": s.path,
		"entry":   name,
		"bytes":   n,
	}).Debug("wrote entry")
	return nil
}

// writeDir adds a directory marker for name.
func (a *Archiver) writeDir(s *archiveSink, op, path, name string, info fs.FileInfo) error {
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return newError(KindIO, op, path, err)
	}
	header.Name = name + "/"
	header.Method = zip.Store
	if _, err := s.zw.CreateHeader(header); err != nil {
		return newError(KindIO, op, path, err)
	}
	a.log().WithFields(logrus.Fields{
		"archive": s.path,
		"entry":   header.Name,
	}).Debug("wrote directory entry")
	return nil
}

// ZipFile writes sourcePath into a new archive at destinationArchivePath as
// a single entry named after the file's base name. An existing archive is
// overwritten.
func (a *Archiver) ZipFile(sourcePath, destinationArchivePath string) (err error) {
	sink, err := a.createSink(opZipFile, destinationArchivePath)
	if err != nil {
		return err
	}
	defer closeSink(sink, opZipFile, &err)
	return a.writeFile(sink, opZipFile, sourcePath, filepath.Base(sourcePath))
}

// ZipMultipleFile writes one entry per source, each named after the
// source's base name. A failure on any file aborts the operation and leaves
// whatever was already written in place. An empty source list yields an
// empty archive in both modes.
func (a *Archiver) ZipMultipleFile(sourcePaths []string, destinationArchivePath string) (err error) {
	if a.ReopenPerFile && len(sourcePaths) > 0 {
		for _, source := range sourcePaths {
			if err := a.zipOne(opZipMultiple, source, destinationArchivePath); err != nil {
				return err
			}
		}
		return nil
	}

	sink, err := a.createSink(opZipMultiple, destinationArchivePath)
	if err != nil {
		return err
	}
	defer closeSink(sink, opZipMultiple, &err)
	for _, source := range sourcePaths {
		if err := a.writeFile(sink, opZipMultiple, source, filepath.Base(source)); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archiver) zipOne(op, source, destination string) (err error) {
	sink, err := a.createSink(op, destination)
	if err != nil {
		return err
	}
	defer closeSink(sink, op, &err)
	return a.writeFile(sink, op, source, filepath.Base(source))
}

// ZipDirectory writes the tree rooted at sourceDirectoryPath into a new
// archive. Entry names start with the directory's own base name. Hidden
// files and directories are left out, as is the destination archive itself
// when it lives inside the tree.
func (a *Archiver) ZipDirectory(sourceDirectoryPath, destinationArchivePath string) (err error) {
	info, err := os.Stat(sourceDirectoryPath)
	if err != nil {
		return newError(KindNotFound, opZipDirectory, sourceDirectoryPath, err)
	}
	if !info.IsDir() {
		return newError(KindIO, opZipDirectory, sourceDirectoryPath, ErrExpectedDirectory)
	}
	rootName, err := treeName(sourceDirectoryPath)
	if err != nil {
		return newError(KindIO, opZipDirectory, sourceDirectoryPath, err)
	}
	skip, err := newPathSet(destinationArchivePath)
	if err != nil {
		return newError(KindIO, opZipDirectory, destinationArchivePath, err)
	}

	sink, err := a.createSink(opZipDirectory, destinationArchivePath)
	if err != nil {
		return err
	}
	defer closeSink(sink, opZipDirectory, &err)

	err = walkTree(sourceDirectoryPath, rootName, func(path, name string, info fs.FileInfo) error {
		if info.IsDir() {
			if a.OmitDirectoryEntries {
				return nil
			}
			return a.writeDir(sink, opZipDirectory, path, name, info)
		}
		if skip.has(path) {
			return nil
		}
		return a.writeFile(sink, opZipDirectory, path, name)
	})
	return asError(KindIO, opZipDirectory, sourceDirectoryPath, err)
}
