package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dendrascience/zipkit/internal/config"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewZipCmd creates and returns the zip subcommand for the zipkit CLI.
// It packs a single file, several files or one directory tree.
func NewZipCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "zip SOURCE...",
		Short: "Create an archive from files or a directory",
		Long: `Create a zip archive from one file, several files or a directory tree.

A single directory SOURCE is packed recursively: entries are named by their
path below and including the directory, hidden files and directories are
skipped, and each directory gets a marker entry unless
--omit-dir-entries is set.

A single file is stored under its base name. Several files are stored
side by side under their base names.

The archive is written to --output, or to SOURCE.zip next to the current
directory when packing a single source. An existing archive is overwritten.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archive := output
			if archive == "" {
				if len(args) > 1 {
					return fmt.Errorf("--output is required when packing %d files", len(args))
				}
				archive = defaultArchiveName(args[0])
			}
			return runZip(cmd, a, args, archive)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the archive to create")
	cmd.Flags().Bool("reopen-per-file", false, "Recreate the archive for every file, keeping only the last one")
	cmd.Flags().Bool("omit-dir-entries", false, "Do not store directory marker entries")
	a.v.BindPFlag(config.KeyReopenPerFile, cmd.Flags().Lookup("reopen-per-file"))
	a.v.BindPFlag(config.KeyOmitDirectoryEntries, cmd.Flags().Lookup("omit-dir-entries"))

	return cmd
}

// defaultArchiveName names the archive after the source's base name.
func defaultArchiveName(source string) string {
	abs, err := filepath.Abs(source)
	if err != nil {
		abs = source
	}
	return filepath.Base(abs) + ".zip"
}

func runZip(cmd *cobra.Command, a *app, sources []string, output string) error {
	log := a.log.WithField("archive", output)

	var err error
	switch {
	case len(sources) > 1:
		log.WithField("files", len(sources)).Info("packing files")
		err = a.archiver.ZipMultipleFile(sources, output)
	default:
		info, statErr := os.Stat(sources[0])
		if statErr == nil && info.IsDir() {
			log.WithField("directory", sources[0]).Info("packing directory")
			err = a.archiver.ZipDirectory(sources[0], output)
		} else {
			log.WithField("file", sources[0]).Info("packing file")
			err = a.archiver.ZipFile(sources[0], output)
		}
	}
	if err != nil {
		log.WithError(err).Error("packing failed, the archive may be incomplete")
		return err
	}

	log.WithFields(logrus.Fields{"sources": len(sources)}).Debug("archive complete")
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "created %s\n", output)
	return nil
}
