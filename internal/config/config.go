package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tomlshield/tomlshield/internal/scan"
)

// Config represents the tomlshield configuration.
type Config struct {
	Marker          string `toml:"marker"`
	CheckValues     bool   `toml:"check_values"`
	IncludeComments bool   `toml:"include_comments"`
	RemoveComments  bool   `toml:"remove_comments"`
	Format          string `toml:"format"`
	BackupSuffix    string `toml:"backup_suffix"`
	FailOnFindings  bool   `toml:"fail_on_findings"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Marker:         scan.DefaultMarker,
		CheckValues:    true,
		Format:         "text",
		BackupSuffix:   ".bak",
		FailOnFindings: true,
	}
}

// Options converts the config into scanner options.
func (c Config) Options() scan.Options {
	return scan.Options{
		Marker:          c.Marker,
		CheckValues:     c.CheckValues,
		IncludeComments: c.IncludeComments,
		RemoveComments:  c.RemoveComments,
	}
}

// ConfigDir returns the platform-appropriate config directory for tomlshield.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tomlshield"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "tomlshield"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "tomlshield"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "tomlshield"), nil
	default:
		return filepath.Join(home, ".config", "tomlshield"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFile loads config from the config file. The metadata reports which
// keys the file actually set, so the merge can tell false from unset for
// bool fields. Returns zero values and nil error if the file doesn't exist.
func LoadFile() (Config, toml.MetaData, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, toml.MetaData{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, toml.MetaData{}, nil
		}
		return Config{}, toml.MetaData{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, toml.MetaData{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, md, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, md, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg, md)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config, md toml.MetaData) {
	if md.IsDefined("marker") {
		dst.Marker = src.Marker
	}
	if md.IsDefined("check_values") {
		dst.CheckValues = src.CheckValues
	}
	if md.IsDefined("include_comments") {
		dst.IncludeComments = src.IncludeComments
	}
	if md.IsDefined("remove_comments") {
		dst.RemoveComments = src.RemoveComments
	}
	if md.IsDefined("format") {
		dst.Format = src.Format
	}
	if md.IsDefined("backup_suffix") {
		dst.BackupSuffix = src.BackupSuffix
	}
	if md.IsDefined("fail_on_findings") {
		dst.FailOnFindings = src.FailOnFindings
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("TOMLSHIELD_MARKER"); v != "" {
		cfg.Marker = v
	}
	if v := os.Getenv("TOMLSHIELD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("TOMLSHIELD_CHECK_VALUES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CheckValues = b
		}
	}
	if v := os.Getenv("TOMLSHIELD_FAIL_ON_FINDINGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.FailOnFindings = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["marker"]; ok && v != "" {
		cfg.Marker = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	for _, key := range []string{"checkValues", "includeComments", "removeComments", "failOnFindings"} {
		v, ok := overrides[key]
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			continue
		}
		switch key {
		case "checkValues":
			cfg.CheckValues = b
		case "includeComments":
			cfg.IncludeComments = b
		case "removeComments":
			cfg.RemoveComments = b
		case "failOnFindings":
			cfg.FailOnFindings = b
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "marker":
		cfg.Marker = value
	case "format":
		cfg.Format = value
	case "backup_suffix":
		cfg.BackupSuffix = value
	case "check_values", "include_comments", "remove_comments", "fail_on_findings":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		switch key {
		case "check_values":
			cfg.CheckValues = b
		case "include_comments":
			cfg.IncludeComments = b
		case "remove_comments":
			cfg.RemoveComments = b
		case "fail_on_findings":
			cfg.FailOnFindings = b
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
