package stopwords

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"rhapsode/internal/logging"
)

const (
	cacheFileName          = "english_stopwords.txt"
	defaultDownloadTimeout = 5 * time.Minute
)

// Catalog resolves the active stopword list. Resolution order: an explicit
// file path, then a cached copy of the configured remote list (downloaded on
// first use), then the embedded default.
type Catalog struct {
	path        string
	cacheDir    string
	downloadURL string
	client      *http.Client
	logger      *slog.Logger
}

// NewCatalog creates a catalog. path may be empty (use cache or embedded);
// downloadURL may be empty (never download).
func NewCatalog(path, cacheDir, downloadURL string, timeout time.Duration, logger *slog.Logger) *Catalog {
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}
	return &Catalog{
		path:        strings.TrimSpace(path),
		cacheDir:    strings.TrimSpace(cacheDir),
		downloadURL: strings.TrimSpace(downloadURL),
		client:      &http.Client{Timeout: timeout},
		logger:      logging.NewComponentLogger(logger, "stopwords"),
	}
}

// CachePath returns where downloaded lists are stored.
func (c *Catalog) CachePath() string {
	return filepath.Join(c.cacheDir, cacheFileName)
}

// Resolve returns the active stopword set together with its origin: the
// explicit path, the cache path, or "embedded".
func (c *Catalog) Resolve(ctx context.Context) (Set, string, error) {
	if c == nil {
		return Default(), "embedded", nil
	}

	if c.path != "" {
		set, err := FromFile(c.path)
		if err != nil {
			return nil, "", err
		}
		return set, c.path, nil
	}

	if c.downloadURL == "" {
		return Default(), "embedded", nil
	}

	cache := c.CachePath()
	if _, err := os.Stat(cache); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("stat stopword cache: %w", err)
		}
		c.logger.Debug("stopword list missing; downloading",
			logging.String("url", c.downloadURL),
			logging.String("path", cache))
		if err := c.download(ctx); err != nil {
			c.logger.Warn("stopword download failed; using embedded list",
				logging.Error(err),
				logging.String(logging.FieldEventType, "stopwords_download_failed"),
				logging.String(logging.FieldErrorHint, "check network access or stopwords.download_url"))
			return Default(), "embedded", nil
		}
	}

	set, err := FromFile(cache)
	if err != nil {
		return nil, "", err
	}
	return set, cache, nil
}

// Refresh forces a download of the remote list into the cache and returns
// the cache path.
func (c *Catalog) Refresh(ctx context.Context) (string, error) {
	if c == nil || c.downloadURL == "" {
		return "", errors.New("stopwords.download_url is not configured")
	}
	if err := c.download(ctx); err != nil {
		return "", err
	}
	return c.CachePath(), nil
}

func (c *Catalog) download(ctx context.Context) error {
	cache := c.CachePath()
	if err := os.MkdirAll(filepath.Dir(cache), 0o755); err != nil {
		return fmt.Errorf("create stopword cache directory: %w", err)
	}

	// Concurrent runs race on the cache file; the flock serializes them.
	lock := flock.New(cache + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire stopword cache lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.downloadURL, nil)
	if err != nil {
		return fmt.Errorf("build stopword request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("download stopword list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download stopword list: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("download stopword list: %w", err)
	}

	parsed, err := Load(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if len(parsed) == 0 {
		return errors.New("downloaded stopword list is empty")
	}

	tempPath := cache + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("write stopword temp file: %w", err)
	}
	if err := os.Rename(tempPath, cache); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replace stopword file: %w", err)
	}

	c.logger.Debug("stopword list refreshed",
		logging.String("path", cache),
		logging.Int("bytes", len(data)),
		logging.Int("words", len(parsed)))
	return nil
}
