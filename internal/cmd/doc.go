// Package cmd provides the command-line interface implementation for zipkit.
//
// Each subcommand lives in its own file with a constructor returning a
// *cobra.Command. NewRootCmd wires them together, loads the configuration
// (see internal/config) before any subcommand runs and hands every
// subcommand the resulting ziputil.Archiver and logger.
//
// Commands:
//   - zip: pack a file, several files or a directory tree
//   - unzip: extract an archive, recreating directories or flat
//   - list: show archive entries and a size summary
//   - verify: compare a directory with an archive by content digest
//   - seed: generate random trees for testing
//   - version: print build information
package cmd
