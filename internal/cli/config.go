package cli

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pindex-dev/pindex/pkg/errors"
	"github.com/pindex-dev/pindex/pkg/registry"
	"github.com/pindex-dev/pindex/pkg/registry/pypi"
)

// Valid values for --format.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// config holds the optional file-based settings. All fields have sensible
// defaults; an absent config file leaves the zero value in place.
type config struct {
	Registry registrySettings `toml:"registry"`
	Output   outputSettings   `toml:"output"`
}

// registrySettings overrides parts of the registry configuration.
type registrySettings struct {
	Host                string `toml:"host"`
	MetadataURLTemplate string `toml:"metadata_url_template"`
	HumanURLTemplate    string `toml:"human_url_template"`
	TimeoutSeconds      int    `toml:"timeout_seconds"`
}

// outputSettings selects the default output format for commands that
// support --format.
type outputSettings struct {
	Format string `toml:"format"`
}

// defaultConfigPath returns the platform config file location,
// e.g. ~/.config/pindex/config.toml on Linux.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pindex", "config.toml")
}

// loadConfig reads the config file at path. When path is empty the default
// location is tried and a missing or unreadable file simply yields the zero
// config. An explicitly passed path must exist and decode.
func loadConfig(path string) (config, error) {
	var cfg config

	optional := path == ""
	if optional {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode config %s", path)
	}
	return cfg, nil
}

// registryConfig merges the file settings over the PyPI defaults.
// Empty fields keep the default; a positive timeout replaces the
// default HTTP client.
func (c config) registryConfig() registry.Config {
	cfg := pypi.DefaultConfig()
	if c.Registry.Host != "" {
		cfg.Host = c.Registry.Host
	}
	if c.Registry.MetadataURLTemplate != "" {
		cfg.MetadataURLTemplate = c.Registry.MetadataURLTemplate
	}
	if c.Registry.HumanURLTemplate != "" {
		cfg.HumanURLTemplate = c.Registry.HumanURLTemplate
	}
	if c.Registry.TimeoutSeconds > 0 {
		cfg.HTTPClient = &http.Client{Timeout: time.Duration(c.Registry.TimeoutSeconds) * time.Second}
	}
	return cfg
}

// outputFormat picks the effective output format: the flag when set,
// otherwise the config file value, otherwise text.
func (c config) outputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = c.Output.Format
	}
	switch format {
	case "":
		return formatText, nil
	case formatText, formatYAML, formatJSON:
		return format, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown output format %q (valid: text, yaml, json)", format)
	}
}

// withConfig returns a new context with the loaded configuration attached.
func withConfig(ctx context.Context, cfg config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the configuration from ctx.
// If none is attached, it returns the zero config, which resolves to the
// PyPI defaults.
func configFromContext(ctx context.Context) config {
	if cfg, ok := ctx.Value(configKey).(config); ok {
		return cfg
	}
	return config{}
}
