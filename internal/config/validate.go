package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateCleaning(); err != nil {
		return err
	}
	if err := c.validateStopwords(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	if err := validateHTTPURL("source.url", c.Source.URL); err != nil {
		return err
	}
	if c.Source.BodyStart == "" {
		return errors.New("source.body_start must be set")
	}
	if c.Source.BodyEnd == "" {
		return errors.New("source.body_end must be set")
	}
	if c.Source.BodyStart == c.Source.BodyEnd {
		return errors.New("source.body_start and source.body_end must differ")
	}
	return ensurePositiveMap(map[string]int{
		"source.request_timeout_seconds": c.Source.RequestTimeoutSeconds,
	})
}

func (c *Config) validateCleaning() error {
	if c.Cleaning.HeaderMarker == "" {
		return errors.New("cleaning.header_marker must be set")
	}
	return nil
}

func (c *Config) validateStopwords() error {
	if c.Stopwords.DownloadURL != "" {
		if err := validateHTTPURL("stopwords.download_url", c.Stopwords.DownloadURL); err != nil {
			return err
		}
	}
	return ensurePositiveMap(map[string]int{
		"stopwords.download_timeout_seconds": c.Stopwords.DownloadTimeoutSeconds,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func validateHTTPURL(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must be set", field)
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", field, value)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, value)
		}
	}
	return nil
}
