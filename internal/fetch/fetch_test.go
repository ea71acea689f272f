package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHTTP_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/versions.json":
			w.Write([]byte(`[{"version":"v1","label":"Version 1"}]`))
		case "/data/broken.json":
			w.Write([]byte(`{not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTP(srv.URL, 5*time.Second)

	var versions []struct {
		Version string `json:"version"`
		Label   string `json:"label"`
	}
	if err := f.JSON(context.Background(), "data/versions.json", &versions); err != nil {
		t.Fatal(err)
	}
	if len(versions) != 1 || versions[0].Version != "v1" {
		t.Errorf("unexpected payload: %+v", versions)
	}
}

func TestHTTP_JSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := NewHTTP(srv.URL, 5*time.Second)

	var v any
	err := f.JSON(context.Background(), "data/missing.json", &v)
	if err == nil {
		t.Fatal("expected error for 404")
	}

	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", fetchErr.Status, http.StatusNotFound)
	}
	if fetchErr.Path != "data/missing.json" {
		t.Errorf("Path = %q, want %q", fetchErr.Path, "data/missing.json")
	}
}

func TestHTTP_JSON_ParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	f := NewHTTP(srv.URL, 5*time.Second)

	var v any
	err := f.JSON(context.Background(), "data/broken.json", &v)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if fetchErr.Status != 0 {
		t.Errorf("Status = %d, want 0 for parse failure", fetchErr.Status)
	}
}

func TestHTTP_JSON_NetworkFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewHTTP(url, time.Second)

	var v any
	err := f.JSON(context.Background(), "data/versions.json", &v)
	if err == nil {
		t.Fatal("expected error for connection failure")
	}
	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
}

func TestDir_JSON(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "versions.json"), []byte(`[{"version":"v1"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewDir(root)

	var versions []struct {
		Version string `json:"version"`
	}
	if err := f.JSON(context.Background(), "data/versions.json", &versions); err != nil {
		t.Fatal(err)
	}
	if len(versions) != 1 || versions[0].Version != "v1" {
		t.Errorf("unexpected payload: %+v", versions)
	}
}

func TestDir_JSON_Missing(t *testing.T) {
	f := NewDir(t.TempDir())

	var v any
	err := f.JSON(context.Background(), "data/nope.json", &v)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
}
