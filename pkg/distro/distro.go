// Package distro defines the distribution record model shared by the
// fetcher, the archive combiner, and the exporters.
//
// Records are immutable once produced: a collection is fetched (or loaded
// from cache) once per run and handed to the exporters as-is. JSON field
// names match the on-disk cache format so cached collections survive
// upgrades.
package distro

import "strings"

// Independent is the sentinel parent value for distributions that are not
// derived from another distribution.
const Independent = "independent"

// Status is the lifecycle status reported for a distribution.
type Status string

// Known status values. The data source is uncontrolled third-party content,
// so any other string may appear; consumers should treat unknown values as
// not active.
const (
	StatusActive       Status = "Active"
	StatusInactive     Status = "Inactive"
	StatusDormant      Status = "Dormant"
	StatusDiscontinued Status = "Discontinued"
)

// NameChange records a historical rename of a distribution, as carried in
// the GLDT archive.
type NameChange struct {
	Name string `json:"Name"`
	Date string `json:"Date,omitempty"`
	URL  string `json:"URL,omitempty"`
}

// Record holds the metadata of one distribution.
//
// Name is the unique identifier (lowercase, as used in URLs); HumanName is
// the display form. BasedOn is the declared parent, a comma-separated list
// of parents, or [Independent]. Dates are release dates in YYYY-MM-DD form,
// first entry first. Color, EndDate, Description, NameChanges and Source
// are only populated for records enriched from the GLDT archive.
type Record struct {
	Name        string       `json:"Name"`
	HumanName   string       `json:"Human Name,omitempty"`
	Status      Status       `json:"Status,omitempty"`
	BasedOn     string       `json:"Based on,omitempty"`
	Dates       []string     `json:"Dates,omitempty"`
	Link        string       `json:"Link,omitempty"`
	Image       string       `json:"Image,omitempty"`
	Color       string       `json:"Color,omitempty"`
	EndDate     string       `json:"End Date,omitempty"`
	Description string       `json:"Description,omitempty"`
	NameChanges []NameChange `json:"Name Changes,omitempty"`
	Source      string       `json:"Source,omitempty"`
}

// DisplayName returns the human-readable name, falling back to Name.
func (r Record) DisplayName() string {
	if r.HumanName != "" {
		return r.HumanName
	}
	return r.Name
}

// IsActive reports whether the distribution is actively maintained.
func (r Record) IsActive() bool {
	return r.Status == StatusActive
}

// IsIndependent reports whether the distribution declares no parent.
func (r Record) IsIndependent() bool {
	based := strings.TrimSpace(r.BasedOn)
	return based == "" || strings.EqualFold(based, Independent)
}

// Parent returns the normalized primary parent name. Distributions listing
// several parents keep only the first; independent distributions return "".
func (r Record) Parent() string {
	if r.IsIndependent() {
		return ""
	}
	parent := r.BasedOn
	if i := strings.IndexByte(parent, ','); i >= 0 {
		parent = parent[:i]
	}
	return NormalizeName(parent)
}

// FirstRelease returns the first release date, or "" if unknown.
func (r Record) FirstRelease() string {
	if len(r.Dates) == 0 {
		return ""
	}
	return r.Dates[0]
}

// NormalizeName converts a distribution name to its canonical lookup form:
// trimmed and lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
