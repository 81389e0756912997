package archive

import (
	"fmt"
	"strconv"
	"strings"
)

// Stats summarizes the loaded archive data.
type Stats struct {
	Total           int
	Active          int
	Inactive        int
	ByDecade        map[string]int
	WithColor       int
	WithNameChanges int
}

// Stats computes summary statistics over the archive entries.
func (c *Combiner) Stats() Stats {
	s := Stats{ByDecade: make(map[string]int)}
	for _, rec := range c.entries {
		s.Total++
		if rec.IsActive() {
			s.Active++
		} else {
			s.Inactive++
		}
		if rec.Color != "" {
			s.WithColor++
		}
		if len(rec.NameChanges) > 0 {
			s.WithNameChanges++
		}
		if decade, ok := Decade(rec.FirstRelease()); ok {
			s.ByDecade[decade]++
		}
	}
	return s
}

// Decade returns the decade bucket ("1990s") for a YYYY-MM-DD date.
func Decade(date string) (string, bool) {
	year, _, _ := strings.Cut(date, "-")
	n, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%ds", n/10*10), true
}
