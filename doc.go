// Package main provides the zipkit command-line interface.
//
// zipkit packs single files, sets of files and whole directory trees into
// deflate-compressed zip archives, and extracts them back onto disk either
// flat or with their directory structure recreated. Hidden files are left
// out of directory archives.
//
// The main binary supports multiple subcommands:
//   - zip: Create an archive from files or a directory
//   - unzip: Extract an archive
//   - list: Show the entries of an archive
//   - verify: Compare a directory with an archive made from it
//   - seed: Generate a random directory tree for testing
//   - version: Print version information
package main
