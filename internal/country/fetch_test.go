package country

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(refCSV))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "countries.csv")
	fetcher := NewFetcher(WithURL(srv.URL))

	n, err := fetcher.Fetch(context.Background(), dest)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Fetch() = %d countries, want 4", n)
	}

	table, err := LoadTable(dest)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if !table.Has("MEX") {
		t.Error("fetched table missing MEX")
	}
}

func TestFetcher_FetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "countries.csv")
	fetcher := NewFetcher(WithURL(srv.URL))

	if _, err := fetcher.Fetch(context.Background(), dest); err == nil {
		t.Fatal("Fetch() error = nil, want status error")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("Fetch() wrote a file despite the server error")
	}
}

func TestFetcher_FetchMalformedTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not,a,reference\ntable,at,all\n"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "countries.csv")
	fetcher := NewFetcher(WithURL(srv.URL))

	if _, err := fetcher.Fetch(context.Background(), dest); err == nil {
		t.Fatal("Fetch() error = nil, want validation error")
	}
	// A bad download must not clobber the destination.
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("Fetch() wrote a file despite failing validation")
	}
}

func TestNewFetcher_EnvOverride(t *testing.T) {
	t.Setenv("COMENTION_COUNTRIES_URL", "http://example.invalid/countries.csv")

	f := NewFetcher()
	if f.url != "http://example.invalid/countries.csv" {
		t.Errorf("url = %q, want env override", f.url)
	}
}
