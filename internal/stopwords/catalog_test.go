package stopwords_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"rhapsode/internal/stopwords"
)

func TestResolveExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(listPath, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	catalog := stopwords.NewCatalog(listPath, dir, "https://example.org/list.txt", time.Second, nil)
	set, origin, err := catalog.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if origin != listPath {
		t.Fatalf("expected explicit path origin, got %q", origin)
	}
	if !set.Contains("alpha") || set.Contains("the") {
		t.Fatalf("expected custom list, got %v", set.Words())
	}
}

func TestResolveExplicitPathMissingIsError(t *testing.T) {
	dir := t.TempDir()
	catalog := stopwords.NewCatalog(filepath.Join(dir, "absent.txt"), dir, "", time.Second, nil)
	if _, _, err := catalog.Resolve(context.Background()); err == nil {
		t.Fatal("expected error for missing explicit list")
	}
}

func TestResolveFallsBackToEmbedded(t *testing.T) {
	catalog := stopwords.NewCatalog("", t.TempDir(), "", time.Second, nil)
	set, origin, err := catalog.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if origin != "embedded" {
		t.Fatalf("expected embedded origin, got %q", origin)
	}
	if !set.Contains("the") {
		t.Fatal("expected embedded english list")
	}
}

func TestResolveDownloadsOnceIntoCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if _, err := w.Write([]byte("foo\nbar\n")); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	cacheDir := t.TempDir()
	catalog := stopwords.NewCatalog("", cacheDir, server.URL, time.Second, nil)

	set, origin, err := catalog.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if origin != catalog.CachePath() {
		t.Fatalf("expected cache origin, got %q", origin)
	}
	if !set.Contains("foo") || !set.Contains("bar") {
		t.Fatalf("expected downloaded words, got %v", set.Words())
	}
	if _, err := os.Stat(catalog.CachePath()); err != nil {
		t.Fatalf("expected cache file on disk: %v", err)
	}

	if _, _, err := catalog.Resolve(context.Background()); err != nil {
		t.Fatalf("second Resolve returned error: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single download, got %d", hits.Load())
	}
}

func TestResolveDownloadFailureFallsBackToEmbedded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	catalog := stopwords.NewCatalog("", t.TempDir(), server.URL, time.Second, nil)
	set, origin, err := catalog.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if origin != "embedded" {
		t.Fatalf("expected embedded fallback, got %q", origin)
	}
	if !set.Contains("the") {
		t.Fatal("expected embedded english list")
	}
}

func TestResolveRejectsEmptyDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("# nothing but comments\n")); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	catalog := stopwords.NewCatalog("", t.TempDir(), server.URL, time.Second, nil)
	_, origin, err := catalog.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if origin != "embedded" {
		t.Fatalf("expected embedded fallback for empty download, got %q", origin)
	}
}

func TestRefreshRequiresDownloadURL(t *testing.T) {
	catalog := stopwords.NewCatalog("", t.TempDir(), "", time.Second, nil)
	if _, err := catalog.Refresh(context.Background()); err == nil {
		t.Fatal("expected error without download url")
	}
}

func TestRefreshOverwritesCache(t *testing.T) {
	payload := atomic.Value{}
	payload.Store("first\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(payload.Load().(string))); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	catalog := stopwords.NewCatalog("", t.TempDir(), server.URL, time.Second, nil)
	if _, err := catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("first Refresh returned error: %v", err)
	}

	payload.Store("second\n")
	path, err := catalog.Refresh(context.Background())
	if err != nil {
		t.Fatalf("second Refresh returned error: %v", err)
	}

	set, err := stopwords.FromFile(path)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if !set.Contains("second") || set.Contains("first") {
		t.Fatalf("expected refreshed contents, got %v", set.Words())
	}
}
