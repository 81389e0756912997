package distrowatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/distrograph/distrograph/pkg/cache"
	"github.com/distrograph/distrograph/pkg/distro"
)

const (
	// DefaultBaseURL is the production DistroWatch endpoint.
	DefaultBaseURL = "https://distrowatch.com"

	// DefaultSearch is the all-inclusive search query. The search form at
	// /search.php generates these parameters; narrow them to constrain the
	// fetched set (e.g. status=Active).
	DefaultSearch = "ostype=All&category=All&origin=All&basedon=All&notbasedon=None" +
		"&desktop=All&architecture=All&package=All&rolling=All&isosize=All" +
		"&netinstall=All&status=All"

	httpTimeout    = 10 * time.Second
	defaultWorkers = 8
)

var (
	// ErrNotFound is returned when a page doesn't exist on the site.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// godfathers are roots missing from the DistroWatch dataset that other
// fetched records reference as parents.
var godfathers = []distro.Record{
	{
		Name:    "android",
		BasedOn: distro.Independent,
		Dates:   []string{"2008-10-23"},
		Status:  distro.StatusActive,
	},
}

// Options configures a list fetch.
type Options struct {
	// Search is the query string appended to /search.php. Empty means
	// DefaultSearch.
	Search string

	// Refresh bypasses the response cache.
	Refresh bool

	// Workers is the number of concurrent detail-page fetches.
	// Zero means defaultWorkers.
	Workers int

	// Logger receives per-distribution warnings. Nil discards them.
	Logger func(format string, args ...any)
}

func (o Options) withDefaults() Options {
	if o.Search == "" {
		o.Search = DefaultSearch
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	if o.Logger == nil {
		o.Logger = func(string, ...any) {}
	}
	return o
}

// Client fetches distribution metadata with response caching and retries.
// All methods are safe for concurrent use.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	baseURL string
}

// NewClient creates a Client against baseURL (DefaultBaseURL if empty).
// Responses are cached in backend with the given TTL; pass
// [cache.NewNullCache] to disable caching.
func NewClient(baseURL string, backend cache.Cache, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   backend,
		ttl:     ttl,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchList retrieves the distribution records matching the search options.
//
// The search page determines the set and its order; detail pages fill in
// status, parent, release dates and the page image. Record order matches
// the search page order, with the godfather roots prepended. A detail page
// failure downgrades that record to name-and-link only.
func (c *Client) FetchList(ctx context.Context, opts Options) ([]distro.Record, error) {
	opts = opts.withDefaults()

	searchURL := fmt.Sprintf("%s/search.php?%s", c.baseURL, opts.Search)
	html, err := c.getText(ctx, searchURL, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch search page: %w", err)
	}

	entries, err := parseSearch(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	records := make([]distro.Record, 0, len(godfathers)+len(entries))
	records = append(records, godfathers...)
	records = append(records, c.fetchDetails(ctx, entries, opts)...)
	return records, nil
}

// fetchDetails fetches all detail pages with a bounded worker pool,
// preserving entry order in the result.
func (c *Client) fetchDetails(ctx context.Context, entries []listEntry, opts Options) []distro.Record {
	records := make([]distro.Record, len(entries))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = c.fetchDetail(ctx, entries[i], opts)
			}
		}()
	}

	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}

// fetchDetail fetches one distribution's detail page and parses its
// attributes. Failures degrade to a minimal record.
func (c *Client) fetchDetail(ctx context.Context, entry listEntry, opts Options) distro.Record {
	rec := distro.Record{
		Name:      entry.Name,
		HumanName: entry.Title,
		Link:      fmt.Sprintf("%s/%s", c.baseURL, entry.Name),
	}

	html, err := c.getText(ctx, rec.Link, opts.Refresh)
	if err != nil {
		opts.Logger("detail page for %s failed: %v", entry.Name, err)
		return rec
	}
	if err := parseDetail(strings.NewReader(html), c.baseURL, &rec); err != nil {
		opts.Logger("parsing detail page for %s failed: %v", entry.Name, err)
	}
	return rec
}

// getText performs a cached HTTP GET and returns the response body.
func (c *Client) getText(ctx context.Context, url string, refresh bool) (string, error) {
	key := "distrowatch:" + url
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			return string(data), nil
		}
	}

	var body string
	err := cache.RetryWithBackoff(ctx, func() error {
		var fetchErr error
		body, fetchErr = c.doRequest(ctx, url)
		return fetchErr
	})
	if err != nil {
		return "", err
	}

	_ = c.cache.Set(ctx, key, []byte(body), c.ttl)
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	return string(data), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
