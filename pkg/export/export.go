// Package export writes a fetched record collection to the offline output
// formats: detailed JSON, CSV table, plain-text list, summary report, and
// the family tree.
//
// All writers are pure serializations of the same record slice; an
// [Exporter] bundles them with timestamped file naming so one run produces
// a consistent set of artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/errors"
)

// Export formats accepted by [Exporter.Export].
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatText    = "txt"
	FormatSummary = "summary"
	FormatTree    = "tree"
)

// AllFormats lists every supported format in output order.
var AllFormats = []string{FormatJSON, FormatCSV, FormatText, FormatSummary, FormatTree}

// fileSuffix maps a format to its output file suffix.
var fileSuffix = map[string]string{
	FormatJSON:    "detailed.json",
	FormatCSV:     "table.csv",
	FormatText:    "list.txt",
	FormatSummary: "summary.txt",
	FormatTree:    "tree.txt",
}

// Result maps each exported format to the file it produced.
type Result struct {
	RunID string
	Files map[string]string
}

// Exporter writes record collections to an output directory.
type Exporter struct {
	Dir string

	now func() time.Time
}

// New creates an Exporter targeting dir. The directory is created if it
// doesn't exist.
func New(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Exporter{Dir: dir, now: time.Now}, nil
}

// Export writes records in the requested formats (all formats if empty).
// Output files are named "{prefix}_{timestamp}_{suffix}" so successive runs
// never overwrite each other. Each run gets a fresh run ID, stamped into
// the summary report.
func (e *Exporter) Export(records []distro.Record, prefix string, formats []string) (*Result, error) {
	if len(formats) == 0 {
		formats = AllFormats
	}
	if prefix == "" {
		prefix = "distros"
	}

	now := e.now()
	base := fmt.Sprintf("%s_%s", prefix, now.Format("20060102_150405"))
	result := &Result{
		RunID: uuid.NewString(),
		Files: make(map[string]string, len(formats)),
	}

	for _, format := range formats {
		suffix, ok := fileSuffix[format]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"unknown export format: %s (supported: json, csv, txt, summary, tree)", format)
		}
		path := filepath.Join(e.Dir, fmt.Sprintf("%s_%s", base, suffix))
		if err := e.exportOne(records, format, path, result.RunID, now); err != nil {
			return nil, fmt.Errorf("export %s: %w", format, err)
		}
		result.Files[format] = path
	}

	return result, nil
}

func (e *Exporter) exportOne(records []distro.Record, format, path, runID string, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case FormatJSON:
		return distro.WriteRecords(records, f)
	case FormatCSV:
		return WriteCSV(f, records)
	case FormatText:
		return WriteTextList(f, records)
	case FormatSummary:
		return WriteSummary(f, records, runID, now)
	case FormatTree:
		return WriteFamilyTree(f, records)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown export format: %s", format)
}
