package distrowatch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/distrograph/distrograph/pkg/cache"
)

func testServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search.php", func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		fmt.Fprint(w, `<html><body>
<b>1. <a href="debian">Debian</a></b>
<b>2. <a href="ubuntu">Ubuntu</a></b>
</body></html>`)
	})
	mux.HandleFunc("/debian", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div><ul>
<li><b>Status:</b> Active</li>
<li><b>Based on:</b> Independent</li>
</ul></div>
<table><tr><td class="Date">1993-09-15</td></tr></table>
</body></html>`)
	})
	mux.HandleFunc("/ubuntu", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div><ul>
<li><b>Status:</b> Active</li>
<li><b>Based on:</b> Debian</li>
</ul></div>
<table><tr><td class="Date">2004-10-20</td></tr></table>
</body></html>`)
	})
	return httptest.NewServer(mux)
}

func TestClient_FetchList(t *testing.T) {
	server := testServer(t, nil)
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache(), 0)
	records, err := c.FetchList(context.Background(), Options{})
	if err != nil {
		t.Fatalf("FetchList() failed: %v", err)
	}

	// godfather roots + two fetched distributions
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Name != "android" {
		t.Errorf("records[0] = %s, want godfather android first", records[0].Name)
	}

	debian := records[1]
	if debian.Name != "debian" || debian.BasedOn != "Independent" {
		t.Errorf("debian record = %+v", debian)
	}
	if debian.FirstRelease() != "1993-09-15" {
		t.Errorf("debian first release = %q", debian.FirstRelease())
	}

	ubuntu := records[2]
	if ubuntu.BasedOn != "Debian" || ubuntu.Link != server.URL+"/ubuntu" {
		t.Errorf("ubuntu record = %+v", ubuntu)
	}
}

func TestClient_FetchList_UsesCache(t *testing.T) {
	var hits atomic.Int64
	server := testServer(t, &hits)
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() failed: %v", err)
	}
	c := NewClient(server.URL, backend, time.Hour)

	ctx := context.Background()
	if _, err := c.FetchList(ctx, Options{}); err != nil {
		t.Fatalf("first FetchList() failed: %v", err)
	}
	if _, err := c.FetchList(ctx, Options{}); err != nil {
		t.Fatalf("second FetchList() failed: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("search page fetched %d times, want 1 (second should hit cache)", got)
	}

	if _, err := c.FetchList(ctx, Options{Refresh: true}); err != nil {
		t.Fatalf("refresh FetchList() failed: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("search page fetched %d times, want 2 after refresh", got)
	}
}

func TestClient_FetchList_DetailFailureDegrades(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><b>1. <a href="ghost">Ghost</a></b></body></html>`)
	})
	mux.HandleFunc("/ghost", http.NotFound)
	server := httptest.NewServer(mux)
	defer server.Close()

	var warned bool
	c := NewClient(server.URL, cache.NewNullCache(), 0)
	records, err := c.FetchList(context.Background(), Options{
		Logger: func(string, ...any) { warned = true },
	})
	if err != nil {
		t.Fatalf("FetchList() failed: %v", err)
	}

	var ghost bool
	for _, r := range records {
		if r.Name == "ghost" {
			ghost = true
			if r.HumanName != "Ghost" || r.Link == "" {
				t.Errorf("degraded record = %+v", r)
			}
		}
	}
	if !ghost {
		t.Error("failed detail page should still yield a minimal record")
	}
	if !warned {
		t.Error("detail failure should log a warning")
	}
}

func TestClient_FetchList_SearchNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache(), 0)
	_, err := c.FetchList(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for missing search page")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckStatus(t *testing.T) {
	if err := checkStatus(http.StatusOK); err != nil {
		t.Errorf("200 should be nil, got %v", err)
	}
	if err := checkStatus(http.StatusNotFound); !errors.Is(err, ErrNotFound) {
		t.Errorf("404 should be ErrNotFound, got %v", err)
	}
	err := checkStatus(http.StatusBadGateway)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("502 should wrap ErrNetwork, got %v", err)
	}
	if !cache.IsRetryable(err) {
		t.Error("5xx should be retryable")
	}
	if cache.IsRetryable(checkStatus(http.StatusForbidden)) {
		t.Error("403 should not be retryable")
	}
}
