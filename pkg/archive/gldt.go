// Package archive loads the GLDT (GNU/Linux Distribution Timeline) CSV
// and merges it with fetched DistroWatch records. The archive carries
// historical distributions, node colors, and more precise dates than the
// site reports, so archive data takes precedence when both sources know a
// distribution.
package archive

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/distrograph/distrograph/pkg/distro"
)

// Source labels stamped on records to record their provenance.
const (
	SourceArchive  = "gldt"
	SourceCombined = "distrowatch+gldt"
)

// Combiner holds parsed archive entries keyed by normalized name.
type Combiner struct {
	entries map[string]distro.Record
	order   []string // insertion order, for deterministic output
}

// Load reads and parses the GLDT CSV at path.
func Load(path string) (*Combiner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads GLDT CSV data from r.
//
// The format is line-oriented: node rows start with "N" and carry
// name, color, parent, start date, end date, icon, description, then
// optional (new name, date, url) triples for renames. Comment lines
// (// or #) and non-node rows are skipped.
func Parse(r io.Reader) (*Combiner, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	c := &Combiner{entries: make(map[string]distro.Record)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read gldt row: %w", err)
		}
		if len(row) < 2 || row[0] == "" {
			continue
		}
		if strings.HasPrefix(row[0], "//") || strings.HasPrefix(row[0], "#") {
			continue
		}
		if row[0] != "N" || len(row) < 7 {
			continue
		}
		rec := parseNode(row)
		key := distro.NormalizeName(rec.Name)
		if _, seen := c.entries[key]; !seen {
			c.order = append(c.order, key)
		}
		c.entries[key] = rec
	}
	return c, nil
}

// Len returns the number of archive entries.
func (c *Combiner) Len() int { return len(c.entries) }

// Lookup returns the archive entry for a normalized name.
func (c *Combiner) Lookup(name string) (distro.Record, bool) {
	rec, ok := c.entries[distro.NormalizeName(name)]
	return rec, ok
}

// parseNode converts one "N" row into a record.
func parseNode(row []string) distro.Record {
	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := distro.Record{
		Name:        distro.NormalizeName(field(1)),
		HumanName:   field(1), // keep original case for display
		Color:       field(2),
		Image:       field(6),
		Source:      SourceArchive,
		NameChanges: parseNameChanges(row),
	}

	if parent := distro.NormalizeName(field(3)); parent != "" {
		rec.BasedOn = parent
	} else {
		rec.BasedOn = distro.Independent
	}

	start := parseDate(field(4))
	end := parseDate(field(5))
	if start != "" {
		rec.Dates = append(rec.Dates, start)
	}
	if end != "" && end != start {
		rec.Dates = append(rec.Dates, end)
	}
	rec.EndDate = end

	if end == "" {
		rec.Status = distro.StatusActive
	} else {
		rec.Status = distro.StatusInactive
	}

	if desc := field(7); strings.HasPrefix(desc, "http") {
		rec.Link = desc
	} else {
		rec.Description = desc
	}

	return rec
}

// parseNameChanges reads the (name, date, url) triples from columns 8+.
// An incomplete triple terminates the list.
func parseNameChanges(row []string) []distro.NameChange {
	var changes []distro.NameChange
	for i := 8; i+1 < len(row); i += 3 {
		name := strings.TrimSpace(row[i])
		date := parseDate(strings.TrimSpace(row[i+1]))
		if name == "" || date == "" {
			break
		}
		change := distro.NameChange{Name: name, Date: date}
		if i+2 < len(row) {
			change.URL = strings.TrimSpace(row[i+2])
		}
		changes = append(changes, change)
	}
	return changes
}

// parseDate converts the GLDT date format (YYYY.MM.DD) to YYYY-MM-DD.
// Missing month or day components default to 01. Returns "" for empty or
// unparseable input.
func parseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.Contains(raw, ".") {
		return ""
	}
	parts := strings.Split(raw, ".")
	year := parts[0]
	if year == "" {
		return ""
	}
	month, day := "01", "01"
	if len(parts) > 1 && parts[1] != "" {
		month = pad2(parts[1])
	}
	if len(parts) > 2 && parts[2] != "" {
		day = pad2(parts[2])
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
