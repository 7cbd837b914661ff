// Package config loads handoff settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/handoff/config.toml unless a path is
// given explicitly. A missing file is not an error: [Load] returns the
// defaults. Values set in the file override the defaults field by field, and
// command-line flags override the file.
//
//	[page]
//	width = 1440
//	height = 1024
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//	write_timeout = "10s"
//	max_body_bytes = 8388608
//
//	[output]
//	format = "table"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPageWidth is the page width used when a document carries none.
	DefaultPageWidth = 1440.0

	// DefaultPageHeight is the page height used when a document carries none.
	DefaultPageHeight = 1024.0

	// DefaultAddr is the address the HTTP API listens on.
	DefaultAddr = ":8080"

	// DefaultReadTimeout bounds reading a full request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultMaxBodyBytes caps request bodies at 8 MiB.
	DefaultMaxBodyBytes = 8 << 20

	// DefaultFormat is the CLI output format.
	DefaultFormat = FormatTable
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatJSON:  true,
	FormatYAML:  true,
}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: table, json, yaml)", format)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options is the decoded configuration file.
type Options struct {
	Page   geom.Page     `toml:"page"`
	Server ServerOptions `toml:"server"`
	Output OutputOptions `toml:"output"`
}

// ServerOptions configures the HTTP API.
type ServerOptions struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
}

// OutputOptions configures CLI rendering.
type OutputOptions struct {
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills every zero field with its default. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Page.Width == 0 {
		o.Page.Width = DefaultPageWidth
	}
	if o.Page.Height == 0 {
		o.Page.Height = DefaultPageHeight
	}
	if o.Server.Addr == "" {
		o.Server.Addr = DefaultAddr
	}
	if o.Server.ReadTimeout == 0 {
		o.Server.ReadTimeout = DefaultReadTimeout
	}
	if o.Server.WriteTimeout == 0 {
		o.Server.WriteTimeout = DefaultWriteTimeout
	}
	if o.Server.MaxBodyBytes == 0 {
		o.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.Output.Format == "" {
		o.Output.Format = DefaultFormat
	}
}

// Validate checks that the options are usable. Call SetDefaults first.
func (o Options) Validate() error {
	if err := o.Page.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid [page] section")
	}
	if o.Server.ReadTimeout < 0 || o.Server.WriteTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	if o.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server max_body_bytes must not be negative")
	}
	if err := ValidateFormat(o.Output.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid [output] section")
	}
	return nil
}

// =============================================================================
// Loading
// =============================================================================

// Dir returns the directory holding handoff's config file, using
// XDG_CONFIG_HOME or falling back to ~/.config.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "handoff"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file at path, or the default path when path is
// empty. A missing default file yields the defaults; a missing explicit path
// is an error.
func Load(path string) (Options, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML bytes, applies defaults and validates the result.
func Parse(data []byte) (Options, error) {
	var o Options
	md, err := toml.Decode(string(data), &o)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q", undecoded[0].String())
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
