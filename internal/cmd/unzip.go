package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewUnzipCmd creates and returns the unzip subcommand for the zipkit CLI.
func NewUnzipCmd(a *app) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "unzip ARCHIVE DEST",
		Short: "Extract an archive",
		Long: `Extract a zip archive.

By default DEST is a directory that is created if needed; every entry is
written below it and intermediate directories are recreated.

With --flat, DEST is a prefix: each entry is written to DEST followed
directly by its name and no directories are created. When DEST is an
existing directory a path separator is added for you. Flat extraction is
meant for archives created from individual files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnzip(cmd, a, args[0], args[1], flat)
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "Write entries to DEST+name without creating directories")

	return cmd
}

func runUnzip(cmd *cobra.Command, a *app, archive, dest string, flat bool) error {
	log := a.log.WithField("archive", archive)

	var err error
	if flat {
		prefix := flatPrefix(dest)
		log.WithField("prefix", prefix).Info("extracting flat")
		err = a.archiver.UnZipFile(archive, prefix)
	} else {
		log.WithField("destination", dest).Info("extracting")
		err = a.archiver.UnZipDirectory(archive, dest)
	}
	if err != nil {
		log.WithError(err).Error("extraction failed, the destination may hold partial output")
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "extracted %s to %s\n", archive, dest)
	return nil
}

// flatPrefix appends a separator to dest when it names an existing directory.
func flatPrefix(dest string) string {
	if strings.HasSuffix(dest, string(filepath.Separator)) || strings.HasSuffix(dest, "/") {
		return dest
	}
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return dest + string(filepath.Separator)
	}
	return dest
}
