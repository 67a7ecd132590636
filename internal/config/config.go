package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Source describes where the text comes from and how its body is delimited.
type Source struct {
	URL                   string `toml:"url"`
	BodyStart             string `toml:"body_start"`
	BodyEnd               string `toml:"body_end"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	UserAgent             string `toml:"user_agent"`
}

// Cleaning contains the knobs of the text cleaning pipeline.
type Cleaning struct {
	// HeaderMarker flags book-heading lines by substring match. Trailing
	// whitespace is significant ("BOOK " must not match "BOOKS").
	HeaderMarker   string   `toml:"header_marker"`
	TranslatorTags []string `toml:"translator_tags"`
	Modernize      bool     `toml:"modernize"`
}

// Stopwords contains configuration for the stopword list and its cache.
type Stopwords struct {
	Enabled                bool   `toml:"enabled"`
	Path                   string `toml:"path"`
	DownloadURL            string `toml:"download_url"`
	CacheDir               string `toml:"cache_dir"`
	DownloadTimeoutSeconds int    `toml:"download_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Path   string `toml:"path"`
}

// Config encapsulates all configuration values for rhapsode.
//
// Configuration sections by subsystem:
//   - Source: download URL, body markers, HTTP behavior
//   - Cleaning: header marker, translator tags, modernization toggle
//   - Stopwords: word list selection, on-demand download, cache location
//   - Logging: log format, level, and optional file output
type Config struct {
	Source    Source    `toml:"source"`
	Cleaning  Cleaning  `toml:"cleaning"`
	Stopwords Stopwords `toml:"stopwords"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/rhapsode/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("rhapsode.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// RequestTimeout returns the HTTP timeout for the source download.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Source.RequestTimeoutSeconds) * time.Second
}

// StopwordsDownloadTimeout returns the HTTP timeout for stopword list downloads.
func (c *Config) StopwordsDownloadTimeout() time.Duration {
	return time.Duration(c.Stopwords.DownloadTimeoutSeconds) * time.Second
}

// EnsureDirectories creates the directories rhapsode writes into.
func (c *Config) EnsureDirectories() error {
	if dir := strings.TrimSpace(c.Stopwords.CacheDir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if path := strings.TrimSpace(c.Logging.Path); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log directory for %q: %w", path, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStopwordsCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "rhapsode")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/rhapsode"
	}
	return filepath.Join(home, ".cache", "rhapsode")
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
