package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dendrascience/zipkit/ziputil"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// listing is the JSON document printed by "zipkit list --json".
type listing struct {
	Archive string          `json:"archive"`
	Entries []ziputil.Entry `json:"entries"`
	Summary ziputil.Summary `json:"summary"`
}

// NewListCmd creates and returns the list subcommand for the zipkit CLI.
func NewListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list ARCHIVE",
		Short: "Show the entries of an archive",
		Long: `Show the entries of a zip archive in archive order, with their sizes,
followed by a summary. Use --json for machine-readable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := ziputil.List(args[0])
			if err != nil {
				return err
			}
			a.log.WithField("archive", args[0]).WithField("entries", len(entries)).Debug("listed archive")

			l := listing{Archive: args[0], Entries: entries, Summary: ziputil.Summarize(entries)}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}
			return printListing(cmd, l)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the listing as JSON")

	return cmd
}

func printListing(cmd *cobra.Command, l listing) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tPACKED\tMODIFIED\tNAME")
	for _, e := range l.Entries {
		if e.Dir {
			fmt.Fprintf(tw, "-\t-\t%s\t%s\n", e.Modified.Format("2006-01-02 15:04"), e.Name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			humanize.IBytes(e.UncompressedSize),
			humanize.IBytes(e.CompressedSize),
			e.Modified.Format("2006-01-02 15:04"),
			e.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := l.Summary
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d entries (%d files, %d directories), %s packed into %s\n",
		s.EntryCount, s.FileCount, s.DirCount,
		humanize.IBytes(s.UncompressedSize), humanize.IBytes(s.CompressedSize))
	return nil
}
