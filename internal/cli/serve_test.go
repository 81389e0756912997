package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/distrograph/distrograph/pkg/distro"
)

func TestRouterHealthz(t *testing.T) {
	srv := httptest.NewServer(newRouter(testRecords(), t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRouterDistros(t *testing.T) {
	srv := httptest.NewServer(newRouter(testRecords(), t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/distros")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var records []distro.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Name != "ubuntu" {
		t.Errorf("records[1].Name = %q, want ubuntu", records[1].Name)
	}
}

func TestRouterDistroByName(t *testing.T) {
	srv := httptest.NewServer(newRouter(testRecords(), t.TempDir()))
	defer srv.Close()

	// Lookup is case-insensitive.
	resp, err := http.Get(srv.URL + "/api/distros/Debian")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rec distro.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.HumanName != "Debian" {
		t.Errorf("HumanName = %q, want Debian", rec.HumanName)
	}

	resp2, err := http.Get(srv.URL + "/api/distros/nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("missing distro status = %d, want 404", resp2.StatusCode)
	}
}

func TestRouterTree(t *testing.T) {
	srv := httptest.NewServer(newRouter(testRecords(), t.TempDir()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/tree")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	want := "● Debian\n  ● Ubuntu\n"
	if string(body) != want {
		t.Errorf("tree body = %q, want %q", body, want)
	}
}

func TestRouterExports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "report.txt"), []byte("summary"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(newRouter(testRecords(), dir))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/exports/report.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
