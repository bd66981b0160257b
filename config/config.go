// Package config provides standardized runtime configuration for the
// logging stack: a TOML settings file with environment variable overrides.
package config

import (
	"io/fs"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	koanffs "github.com/knadh/koanf/providers/fs"

	"github.com/quinnturner/tslog/codeframe"
	"github.com/quinnturner/tslog/mask"
	"github.com/quinnturner/tslog/stacktrace"
)

const (
	defaultEnvPrefix     = "TSLOG_"
	defaultConfSeparator = "."
	defaultSettingsPath  = "tslog.toml"

	// environment variables use a double underscore where the config key
	// has a dot, eg TSLOG_CODE_FRAMES__CONTEXT_LINES
	envNestingSeparator = "__"
)

// Settings configures the logger.
type Settings struct {
	// Level is the minimum level name understood by slog ("debug", "info",
	// "warn", "error").
	Level string `koanf:"level"`
	// ServiceName identifies the logging service in every log line.
	ServiceName string `koanf:"service_name"`
	// MaskKeys are the case-insensitive key names whose values are
	// replaced by MaskPlaceholder in structured payloads.
	MaskKeys        []string `koanf:"mask_keys"`
	MaskPlaceholder string   `koanf:"mask_placeholder"`
	// FilterInternalFrames drops Go runtime and testing frames from
	// captured stacks.
	FilterInternalFrames bool              `koanf:"filter_internal_frames"`
	CodeFrames           CodeFrameSettings `koanf:"code_frames"`
}

// CodeFrameSettings controls source window enrichment of logged errors.
type CodeFrameSettings struct {
	Enabled      bool `koanf:"enabled"`
	ContextLines int  `koanf:"context_lines"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Level:                "info",
		ServiceName:          "unknown",
		MaskPlaceholder:      mask.DefaultPlaceholder,
		FilterInternalFrames: true,
		CodeFrames: CodeFrameSettings{
			Enabled:      false,
			ContextLines: codeframe.DefaultContextLines,
		},
	}
}

type options struct {
	envPrefix string
	filepath  string
}

// Option is an option func for Load.
type Option func(options *options)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(options *options) {
		options.envPrefix = prefix
	}
}

// WithFilePath sets the path to the TOML file inside the file system.
func WithFilePath(path string) Option {
	return func(options *options) {
		options.filepath = path
	}
}

// Load parses settings from the given file system and environment variable
// overrides. A nil file system loads from environment variables only.
// Keys absent from both sources keep their defaults.
func Load(f fs.FS, opts ...Option) (Settings, error) {
	options := options{
		envPrefix: defaultEnvPrefix,
		filepath:  defaultSettingsPath,
	}
	for _, opt := range opts {
		opt(&options)
	}

	k := koanf.New(defaultConfSeparator)

	if f != nil {
		if err := k.Load(koanffs.Provider(f, options.filepath), toml.Parser()); err != nil {
			return Settings{}, stacktrace.Wrap(err)
		}
	}

	if err := k.Load(
		env.Provider(options.envPrefix, defaultConfSeparator, envToConfig(options)),
		nil,
	); err != nil {
		return Settings{}, stacktrace.Wrap(err)
	}

	settings := DefaultSettings()
	if err := k.Unmarshal("", &settings); err != nil {
		return Settings{}, stacktrace.Wrap(err)
	}
	return settings, nil
}

// envToConfig is a factory to generate anonymous functions for transforming
// config keys. For example, env var `TSLOG_CODE_FRAMES__CONTEXT_LINES` is
// converted to `code_frames.context_lines`.
func envToConfig(options options) func(s string) string {
	return func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(
				strings.TrimPrefix(s, options.envPrefix),
			),
			envNestingSeparator,
			defaultConfSeparator,
		)
	}
}
