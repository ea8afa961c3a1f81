package cmd

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// seedStats describes a generated tree.
type seedStats struct {
	Files  int
	Hidden int
	Dirs   int
}

// NewSeedCmd creates and returns the seed subcommand for the zipkit CLI.
// It generates a directory tree of random files to pack and verify.
func NewSeedCmd(a *app) *cobra.Command {
	var (
		outputPath  string
		fileCount   int
		buckets     int
		hiddenEvery int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a random directory tree for testing",
		Long: `Generate a directory tree of random files for exercising zip and unzip.

Files are spread over bucket-NNN/NN directories chosen from a hash of each
file's UUID. Each file holds its UUID repeated a random number of times, so
sizes vary across copy-buffer boundaries. Every --hidden-every'th file is
given a dot-prefixed name, which directory archives leave out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := seedTree(outputPath, fileCount, buckets, hiddenEvery)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"output": outputPath,
				"files":  stats.Files,
				"hidden": stats.Hidden,
				"dirs":   stats.Dirs,
			}).Info("seeded tree")
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
				"created %d files (%d hidden) in %d directories under %s\n",
				stats.Files, stats.Hidden, stats.Dirs, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&buckets, "buckets", "b", 8, "Number of top-level bucket directories")
	cmd.Flags().IntVar(&hiddenEvery, "hidden-every", 10, "Make every Nth file hidden (0 for none)")

	cmd.MarkFlagRequired("output")

	return cmd
}

func seedTree(outputPath string, fileCount, buckets, hiddenEvery int) (seedStats, error) {
	var stats seedStats
	if fileCount < 0 {
		return stats, fmt.Errorf("file count must not be negative, got %d", fileCount)
	}
	if buckets <= 0 {
		return stats, fmt.Errorf("bucket count must be positive, got %d", buckets)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	dirs := make(map[string]struct{})
	for i := 1; i <= fileCount; i++ {
		id := uuid.New()
		bucket := uint64(colorhash.HashString(id.String())) % uint64(buckets)
		dirPath := filepath.Join(outputPath, fmt.Sprintf("bucket-%03d", bucket), fmt.Sprintf("%02d", id[0]%4))
		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			return stats, fmt.Errorf("failed to create directory %s: %w", dirPath, err)
		}
		dirs[dirPath] = struct{}{}

		name := id.String() + ".json"
		if hiddenEvery > 0 && i%hiddenEvery == 0 {
			name = "." + name
			stats.Hidden++
		}

		repeat, err := rand.Int(rand.Reader, big.NewInt(64))
		if err != nil {
			return stats, err
		}
		content := strings.Repeat(id.String()+"\n", int(repeat.Int64())+1)
		if err := os.WriteFile(filepath.Join(dirPath, name), []byte(content), 0o644); err != nil {
			return stats, fmt.Errorf("failed to write file %s: %w", name, err)
		}
		stats.Files++
	}
	stats.Dirs = len(dirs)
	return stats, nil
}
