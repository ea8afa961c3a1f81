package ziputil

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
)

// Archiver packs and unpacks zip archives. It holds options only, so one
// value can be shared freely; the zero value is ready to use.
type Archiver struct {
	// BufferSize is the copy buffer size. Zero selects DefaultBufferSize.
	BufferSize int

	// Level is the deflate level passed to the compressor. Zero selects
	// flate.DefaultCompression; use flate.BestSpeed..flate.BestCompression
	// or flate.HuffmanOnly otherwise.
	Level int

	// ReopenPerFile makes ZipMultipleFile re-create the destination for
	// every source, leaving only the last file in the archive.
	ReopenPerFile bool

	// OmitDirectoryEntries stops ZipDirectory from writing "name/" markers
	// for directories, so only files are stored.
	OmitDirectoryEntries bool

	// Logger receives per-entry debug logs. Nil discards them.
	Logger logrus.FieldLogger
}

var (
	defaultArchiver = &Archiver{}
	discardLogger   = newDiscardLogger()
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func (a *Archiver) bufferSize() int {
	if a.BufferSize <= 0 {
		return DefaultBufferSize
	}
	return a.BufferSize
}

func (a *Archiver) level() int {
	if a.Level == 0 {
		return flate.DefaultCompression
	}
	return a.Level
}

func (a *Archiver) log() logrus.FieldLogger {
	if a.Logger == nil {
		return discardLogger
	}
	return a.Logger
}

// ZipFile writes sourcePath into a new archive at destinationArchivePath
// using the default Archiver.
func ZipFile(sourcePath, destinationArchivePath string) error {
	return defaultArchiver.ZipFile(sourcePath, destinationArchivePath)
}

// ZipMultipleFile writes every source into one archive using the default
// Archiver.
func ZipMultipleFile(sourcePaths []string, destinationArchivePath string) error {
	return defaultArchiver.ZipMultipleFile(sourcePaths, destinationArchivePath)
}

// ZipDirectory writes the tree rooted at sourceDirectoryPath into one
// archive using the default Archiver.
func ZipDirectory(sourceDirectoryPath, destinationArchivePath string) error {
	return defaultArchiver.ZipDirectory(sourceDirectoryPath, destinationArchivePath)
}

// UnZipFile extracts archivePath under destinationPrefix without creating
// directories, using the default Archiver.
func UnZipFile(archivePath, destinationPrefix string) error {
	return defaultArchiver.UnZipFile(archivePath, destinationPrefix)
}

// UnZipDirectory extracts archivePath below destinationRoot, recreating
// directories, using the default Archiver.
func UnZipDirectory(archivePath, destinationRoot string) error {
	return defaultArchiver.UnZipDirectory(archivePath, destinationRoot)
}
