// Package config loads zipkit settings from defaults, an optional YAML
// file, ZIPKIT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dendrascience/zipkit/ziputil"
	"github.com/klauspost/compress/flate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	KeyBufferSize           = "zip.buffer_size"
	KeyLevel                = "zip.level"
	KeyReopenPerFile        = "zip.reopen_per_file"
	KeyOmitDirectoryEntries = "zip.omit_directory_entries"
	KeyLogLevel             = "log.level"

	EnvPrefix = "ZIPKIT"
	fileName  = "zipkit"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	BufferSize           int
	Level                int
	ReopenPerFile        bool
	OmitDirectoryEntries bool
	LogLevel             string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyBufferSize, ziputil.DefaultBufferSize)
	v.SetDefault(KeyLevel, flate.DefaultCompression)
	v.SetDefault(KeyReopenPerFile, false)
	v.SetDefault(KeyOmitDirectoryEntries, false)
	v.SetDefault(KeyLogLevel, "info")

	// ZIPKIT_ZIP_LEVEL -> zip.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v, or searches ".", "$HOME/.zipkit" and
// "/etc/zipkit" for zipkit.yaml when file is empty. A missing searched file
// is not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		for _, path := range []string{".", "$HOME/.zipkit", "/etc/zipkit"} {
			v.AddConfigPath(os.ExpandEnv(path))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		BufferSize:           v.GetInt(KeyBufferSize),
		Level:                v.GetInt(KeyLevel),
		ReopenPerFile:        v.GetBool(KeyReopenPerFile),
		OmitDirectoryEntries: v.GetBool(KeyOmitDirectoryEntries),
		LogLevel:             v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the archiver cannot accept. Level 0 is refused
// because the archiver treats a zero level as unset.
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, KeyBufferSize, c.BufferSize)
	}
	if c.Level < flate.HuffmanOnly || c.Level > flate.BestCompression {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrInvalidConfig, KeyLevel, flate.HuffmanOnly, flate.BestCompression, c.Level)
	}
	if c.Level == flate.NoCompression {
		return fmt.Errorf("%w: %s 0 (no compression) is not supported, use %d for the default",
			ErrInvalidConfig, KeyLevel, flate.DefaultCompression)
	}
	return nil
}

// Archiver builds the archiver described by c.
func (c *Config) Archiver(log logrus.FieldLogger) *ziputil.Archiver {
	return &ziputil.Archiver{
		BufferSize:           c.BufferSize,
		Level:                c.Level,
		ReopenPerFile:        c.ReopenPerFile,
		OmitDirectoryEntries: c.OmitDirectoryEntries,
		Logger:               log,
	}
}
