package cmd

import (
	"github.com/dendrascience/zipkit/internal/config"
	"github.com/dendrascience/zipkit/internal/logger"
	"github.com/dendrascience/zipkit/version"
	"github.com/dendrascience/zipkit/ziputil"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by the subcommands of one root command. It is
// filled in by the root's PersistentPreRunE before any subcommand runs.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	log      *logrus.Logger
	archiver *ziputil.Archiver
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel)
	a.archiver = cfg.Archiver(a.log)
	a.log.WithFields(logrus.Fields{
		"buffer_size": cfg.BufferSize,
		"zip_level":   cfg.Level,
		"config":      a.v.ConfigFileUsed(),
	}).Debug("configuration loaded")
	return nil
}

// NewRootCmd creates and returns the root cobra command for the zipkit CLI.
// It sets up all subcommands, command groups, and the shared configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "zipkit",
		Short: "zipkit - pack files and directory trees into zip archives and back",
		Long: `zipkit packs a file, a set of files or a whole directory tree into one
deflate-compressed zip archive, and extracts archives back onto disk.

Use subcommands to perform different operations:
  - zip: Create an archive from files or a directory
  - unzip: Extract an archive, recreating directories or flat
  - list: Show the entries of an archive
  - verify: Compare a directory with an archive made from it
  - seed: Generate a random directory tree for testing`,
		Version:      version.Get().String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default zipkit.yaml in ., $HOME/.zipkit or /etc/zipkit)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Int("buffer-size", ziputil.DefaultBufferSize, "Copy buffer size in bytes")
	flags.Int("level", flate.DefaultCompression, "Deflate level: -2 huffman only, -1 default, 1 fastest to 9 best (0 is rejected)")
	a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	a.v.BindPFlag(config.KeyBufferSize, flags.Lookup("buffer-size"))
	a.v.BindPFlag(config.KeyLevel, flags.Lookup("level"))

	groupArchive := "archive"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchive,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	zipCmd := NewZipCmd(a)
	unzipCmd := NewUnzipCmd(a)
	listCmd := NewListCmd(a)
	verifyCmd := NewVerifyCmd(a)
	seedCmd := NewSeedCmd(a)
	versionCmd := NewVersionCmd()

	zipCmd.GroupID = groupArchive
	unzipCmd.GroupID = groupArchive
	listCmd.GroupID = groupArchive
	verifyCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(zipCmd)
	rootCmd.AddCommand(unzipCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
