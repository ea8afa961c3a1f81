package ziputil

import (
	"time"
)

type (
	// Entry describes one item of an archive.
	Entry struct {
		CompressedSize   uint64    `json:"compressed_size"`
		Dir              bool      `json:"dir"`
		Method           uint16    `json:"method"`
		Modified         time.Time `json:"modified"`
		Name             string    `json:"name"`
		UncompressedSize uint64    `json:"uncompressed_size"`
	}
	// Summary aggregates a list of entries.
	Summary struct {
		CompressedSize   uint64 `json:"compressed_size"`
		DirCount         int    `json:"dir_count"`
		EntryCount       int    `json:"entry_count"`
		FileCount        int    `json:"file_count"`
		UncompressedSize uint64 `json:"uncompressed_size"`
	}
)

// List returns the entries of archivePath in archive order.
func List(archivePath string) ([]Entry, error) {
	source, err := openSource(opList, archivePath)
	if err != nil {
		return nil, err
	}
	defer source.close()

	entries := make([]Entry, 0, len(source.zr.File))
	for _, f := range source.zr.File {
		if f == nil {
			return nil, newError(KindNull, opList, archivePath, ErrNilEntry)
		}
		entries = append(entries, Entry{
			CompressedSize:   f.CompressedSize64,
			Dir:              f.FileInfo().IsDir(),
			Method:           f.Method,
			Modified:         f.Modified,
			Name:             f.Name,
			UncompressedSize: f.UncompressedSize64,
		})
	}
	return entries, nil
}

// Summarize counts entries and totals their sizes.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		s.EntryCount++
		if e.Dir {
			s.DirCount++
			continue
		}
		s.FileCount++
		s.CompressedSize += e.CompressedSize
		s.UncompressedSize += e.UncompressedSize
	}
	return s
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
