package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/distrograph/distrograph/pkg/archive"
	"github.com/distrograph/distrograph/pkg/distro"
)

const bannerWidth = 50

// topBases is how many base distributions the summary report lists.
const topBases = 10

func banner(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", bannerWidth))
	return err
}

// WriteTextList writes the plain-text distribution list to w: one bulleted
// block per record with its key attributes.
func WriteTextList(w io.Writer, records []distro.Record) error {
	if err := banner(w, "Linux Distribution List"); err != nil {
		return err
	}
	fmt.Fprintln(w)

	for _, rec := range records {
		fmt.Fprintf(w, "• %s\n", rec.DisplayName())
		fmt.Fprintf(w, "  Name: %s\n", rec.Name)
		fmt.Fprintf(w, "  Status: %s\n", orUnknown(string(rec.Status)))
		fmt.Fprintf(w, "  Based on: %s\n", orUnknown(rec.BasedOn))
		if first := rec.FirstRelease(); first != "" {
			fmt.Fprintf(w, "  First release: %s\n", first)
		}
		if rec.Link != "" {
			fmt.Fprintf(w, "  Link: %s\n", rec.Link)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteSummary writes the summary statistics report to w: totals, the most
// common base distributions, and first releases per decade. The run ID and
// generation time are stamped into the footer.
func WriteSummary(w io.Writer, records []distro.Record, runID string, generatedAt time.Time) error {
	total := len(records)
	active := 0
	baseCounts := make(map[string]int)
	decadeCounts := make(map[string]int)

	for _, rec := range records {
		if rec.IsActive() {
			active++
		}
		baseCounts[baseLabel(rec)]++
		if decade, ok := archive.Decade(rec.FirstRelease()); ok {
			decadeCounts[decade]++
		}
	}

	if err := banner(w, "Distribution Summary Report"); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Distributions: %d\n", total)
	fmt.Fprintf(w, "Active Distributions: %d\n", active)
	fmt.Fprintf(w, "Inactive Distributions: %d\n\n", total-active)

	fmt.Fprintln(w, "Top Base Distributions:")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, base := range topKeys(baseCounts, topBases) {
		fmt.Fprintf(w, "%s: %d\n", base, baseCounts[base])
	}

	fmt.Fprintln(w, "\nDistributions by Decade:")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, decade := range sortedKeys(decadeCounts) {
		fmt.Fprintf(w, "%s: %d\n", decade, decadeCounts[decade])
	}

	fmt.Fprintf(w, "\nReport generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Run ID: %s\n", runID)
	return nil
}

// baseLabel normalizes a record's parent for counting: the independence
// sentinel becomes "Independent", multi-parent lists keep the first entry.
func baseLabel(rec distro.Record) string {
	if rec.IsIndependent() {
		return "Independent"
	}
	base := rec.BasedOn
	if i := strings.IndexByte(base, ','); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSpace(base)
}

// topKeys returns up to n keys ordered by descending count, name as
// tiebreaker for deterministic output.
func topKeys(counts map[string]int, n int) []string {
	keys := sortedKeys(counts)
	sort.SliceStable(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
