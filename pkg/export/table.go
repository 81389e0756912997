package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/distrograph/distrograph/pkg/distro"
)

// WriteCSV writes records as a CSV table to w.
//
// The header is the sorted union of columns populated in at least one
// record, so sparse archive fields (Color, End Date, ...) only appear when
// present. List values are joined with ", ".
func WriteCSV(w io.Writer, records []distro.Record) error {
	rows := make([]map[string]string, len(records))
	populated := make(map[string]bool)
	for i, rec := range records {
		rows[i] = columns(rec)
		for key, value := range rows[i] {
			if value != "" {
				populated[key] = true
			}
		}
	}

	header := make([]string, 0, len(populated))
	for key := range populated {
		header = append(header, key)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for _, cols := range rows {
		for i, key := range header {
			row[i] = cols[key]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// columns flattens a record into CSV cell values keyed by header name.
func columns(rec distro.Record) map[string]string {
	changes := make([]string, len(rec.NameChanges))
	for i, change := range rec.NameChanges {
		changes[i] = fmt.Sprintf("%s (%s)", change.Name, change.Date)
	}

	return map[string]string{
		"Name":         rec.Name,
		"Human Name":   rec.HumanName,
		"Status":       string(rec.Status),
		"Based on":     rec.BasedOn,
		"Dates":        strings.Join(rec.Dates, ", "),
		"Link":         rec.Link,
		"Image":        rec.Image,
		"Color":        rec.Color,
		"End Date":     rec.EndDate,
		"Description":  rec.Description,
		"Name Changes": strings.Join(changes, ", "),
		"Source":       rec.Source,
	}
}
