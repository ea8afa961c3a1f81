package cmd

import (
	"errors"
	"fmt"

	"github.com/dendrascience/zipkit/ziputil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ErrArchiveMismatch = errors.New("archive does not match source")

// NewVerifyCmd creates and returns the verify subcommand for the zipkit CLI.
// It checks that an archive holds exactly the files of a directory.
func NewVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify SOURCE_DIR ARCHIVE",
		Short: "Compare a directory with an archive made from it",
		Long: `Verify that ARCHIVE holds exactly the files "zipkit zip SOURCE_DIR" would
store, with identical content.

Every non-hidden file below SOURCE_DIR and every file entry in ARCHIVE is
hashed with BLAKE3. Missing, extra and changed files are reported and the
command fails when there is any difference. Directory entries are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, a, args[0], args[1])
		},
	}
}

func runVerify(cmd *cobra.Command, a *app, source, archive string) error {
	want, err := ziputil.DigestTree(source, archive)
	if err != nil {
		return err
	}
	got, err := ziputil.DigestArchive(archive)
	if err != nil {
		return err
	}

	diffs := want.Diff(got)
	a.log.WithField("archive", archive).WithField("files", len(want)).Debug("compared digests")
	if len(diffs) > 0 {
		red := color.New(color.FgRed)
		for _, d := range diffs {
			red.Fprintf(cmd.OutOrStdout(), "  - %s\n", d)
		}
		return fmt.Errorf("%w: %d differences", ErrArchiveMismatch, len(diffs))
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s matches %s (%d files)\n", archive, source, len(want))
	return nil
}
