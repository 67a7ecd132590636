package gutenberg_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rhapsode/internal/gutenberg"
)

func TestFetchTextReturnsPlainTextVerbatim(t *testing.T) {
	const payload = "Achilles sing, O Goddess!\r\nPeleus' son;\r\n"

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(payload)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	client := gutenberg.New(gutenberg.WithUserAgent("rhapsode/test"), gutenberg.WithTimeout(5*time.Second))
	text, err := client.FetchText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if text != payload {
		t.Fatalf("expected verbatim payload, got %q", text)
	}
	if gotAgent != "rhapsode/test" {
		t.Fatalf("expected custom user agent, got %q", gotAgent)
	}
}

func TestFetchTextRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := gutenberg.New()
	_, err := client.FetchText(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestFetchTextValidatesURL(t *testing.T) {
	client := gutenberg.New()

	if _, err := client.FetchText(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := client.FetchText(context.Background(), "ftp://example.org/poem.txt"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestFetchTextReducesHTMLPayloads(t *testing.T) {
	const page = `<html><head><script>var x = 1;</script><style>p{}</style></head>` +
		`<body><h1>THE ILIAD</h1><p>Achilles sing, O Goddess!</p></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(page)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)

	client := gutenberg.New()
	text, err := client.FetchText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchText returned error: %v", err)
	}
	if !strings.Contains(text, "THE ILIAD") || !strings.Contains(text, "Achilles sing, O Goddess!") {
		t.Fatalf("expected visible text, got %q", text)
	}
	if strings.Contains(text, "var x") {
		t.Fatalf("expected script content to be removed, got %q", text)
	}
}

func TestFetchTextHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := gutenberg.New()
	if _, err := client.FetchText(ctx, server.URL); err == nil {
		t.Fatal("expected error after context deadline")
	}
}
