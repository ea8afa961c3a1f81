// Package ziputil packs files and directory trees into zip archives and
// unpacks them again.
//
// Archives are standard zip files with deflate-compressed entries, so any
// zip tool can read what this package writes and the readers accept archives
// made elsewhere.
//
// Writing:
//   - ZipFile stores one file under its base name
//   - ZipMultipleFile stores several files, each under its base name
//   - ZipDirectory stores a tree, naming entries by their slash-separated
//     path below (and including) the tree's root directory; hidden entries
//     are skipped and directories get "name/" marker entries
//
// Reading:
//   - UnZipFile writes each entry to prefix+name without creating directories
//   - UnZipDirectory recreates the tree below a destination root
//   - List and DigestArchive inspect an archive without extracting it
//
// Every operation returns nil on success or an *Error whose Kind is one of
// KindNotFound, KindIO or KindNull. A failed operation may leave a partial
// archive or partial extraction behind; callers should delete it and retry.
//
// The package-level functions use a default Archiver. Construct an Archiver
// to change the buffer size, deflate level, logger or the multi-file and
// directory-marker behaviour. Nothing is shared between calls, but two calls
// writing the same destination at once will race.
package ziputil
