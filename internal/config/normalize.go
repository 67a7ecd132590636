package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeCleaning()
	if err := c.normalizeStopwords(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeSource() error {
	c.Source.URL = strings.TrimSpace(c.Source.URL)
	if c.Source.URL == "" {
		if value, ok := os.LookupEnv("RHAPSODE_SOURCE_URL"); ok {
			c.Source.URL = strings.TrimSpace(value)
		}
	}
	if c.Source.URL == "" {
		c.Source.URL = defaultSourceURL
	}
	// Body markers are matched verbatim; interior and trailing whitespace stay.
	if c.Source.BodyStart == "" {
		c.Source.BodyStart = defaultBodyStart
	}
	if c.Source.BodyEnd == "" {
		c.Source.BodyEnd = defaultBodyEnd
	}
	c.Source.UserAgent = strings.TrimSpace(c.Source.UserAgent)
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = defaultUserAgent
	}
	if c.Source.RequestTimeoutSeconds == 0 {
		c.Source.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeCleaning() {
	if c.Cleaning.HeaderMarker == "" {
		c.Cleaning.HeaderMarker = defaultHeaderMarker
	}
	tags := make([]string, 0, len(c.Cleaning.TranslatorTags))
	for _, tag := range c.Cleaning.TranslatorTags {
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	c.Cleaning.TranslatorTags = tags
}

func (c *Config) normalizeStopwords() error {
	var err error
	if c.Stopwords.Path != "" {
		if c.Stopwords.Path, err = expandPath(c.Stopwords.Path); err != nil {
			return fmt.Errorf("stopwords.path: %w", err)
		}
	}
	c.Stopwords.DownloadURL = strings.TrimSpace(c.Stopwords.DownloadURL)
	if strings.TrimSpace(c.Stopwords.CacheDir) == "" {
		c.Stopwords.CacheDir = defaultStopwordsCacheDir()
	}
	if c.Stopwords.CacheDir, err = expandPath(c.Stopwords.CacheDir); err != nil {
		return fmt.Errorf("stopwords.cache_dir: %w", err)
	}
	if c.Stopwords.DownloadTimeoutSeconds == 0 {
		c.Stopwords.DownloadTimeoutSeconds = defaultDownloadTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Path != "" {
		var err error
		if c.Logging.Path, err = expandPath(c.Logging.Path); err != nil {
			return fmt.Errorf("logging.path: %w", err)
		}
	}
	return nil
}
