package archive

import (
	"github.com/distrograph/distrograph/pkg/distro"
)

// Combine merges archive entries into the fetched records.
//
// Fetched records are the base: entries known to the archive are enhanced
// in place (archive wins for color, end date, dates, and the parent
// relationship), and archive-only distributions are appended after the
// fetched set in archive order. The input slice is not modified.
func (c *Combiner) Combine(records []distro.Record) []distro.Record {
	fetched := make(map[string]bool, len(records))
	out := make([]distro.Record, 0, len(records)+len(c.order))

	for _, rec := range records {
		key := distro.NormalizeName(rec.Name)
		fetched[key] = true
		if entry, ok := c.entries[key]; ok {
			out = append(out, merge(rec, entry))
		} else {
			out = append(out, rec)
		}
	}

	for _, key := range c.order {
		if !fetched[key] {
			out = append(out, c.entries[key])
		}
	}

	return out
}

// merge combines a fetched record with its archive entry. Archive data
// takes precedence for dates, relationships, and timeline metadata; the
// fetched record keeps its status, image and description.
func merge(scraped, arch distro.Record) distro.Record {
	merged := scraped

	if arch.Color != "" {
		merged.Color = arch.Color
	}
	if arch.EndDate != "" {
		merged.EndDate = arch.EndDate
	}

	// Archive dates are usually more precise.
	if len(arch.Dates) > 0 {
		merged.Dates = arch.Dates
	}

	if arch.BasedOn != "" && arch.BasedOn != distro.Independent {
		merged.BasedOn = arch.BasedOn
	}

	if len(arch.NameChanges) > 0 {
		merged.NameChanges = arch.NameChanges
	}
	if arch.Description != "" {
		merged.Description = arch.Description
	}

	// Prefer the archive URL when it looks more complete.
	if arch.Link != "" && len(arch.Link) > len(scraped.Link) {
		merged.Link = arch.Link
	}

	merged.Source = SourceCombined
	return merged
}
