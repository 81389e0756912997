// Package distrowatch fetches distribution metadata from DistroWatch, or
// any site exposing the same HTML structure.
//
// Fetching is a two-stage crawl: the search page yields the list of
// distributions matching the search options, then each distribution's
// detail page is fetched for its attribute list (status, parent, release
// dates). Detail pages are fetched by a small worker pool, and responses
// are cached through a [cache.Cache] backend so repeated runs do not
// hammer the site.
//
// Failures degrade per distribution: a broken detail page produces a
// minimal record and a warning instead of failing the whole run.
package distrowatch
