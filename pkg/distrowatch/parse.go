package distrowatch

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/distrograph/distrograph/pkg/distro"
)

// numberedRE matches the "1." prefix of search result entries. The search
// page wraps each hit in a <b> tag starting with its result number.
var numberedRE = regexp.MustCompile(`^[0-9]+\.`)

// listEntry is one hit on the search page.
type listEntry struct {
	Name  string // URL slug, used as the unique record name
	Title string // display title from the link text
}

// parseSearch extracts the distribution list from the search page HTML.
//
// Entries without an href fall back to the first word of the link text,
// lowercased, which is how the site names detail pages for the handful of
// entries with empty anchors.
func parseSearch(r io.Reader) ([]listEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var entries []listEntry
	doc.Find("b").Each(func(_ int, b *goquery.Selection) {
		if !numberedRE.MatchString(strings.TrimSpace(b.Text())) {
			return
		}
		a := b.Find("a").First()
		if a.Length() == 0 {
			return
		}
		title := strings.TrimSpace(a.Text())
		name := a.AttrOr("href", "")
		if name == "" {
			name = distro.NormalizeName(strings.SplitN(title, " ", 2)[0])
		}
		if name == "" {
			return
		}
		entries = append(entries, listEntry{Name: name, Title: title})
	})
	return entries, nil
}

// parseDetail fills rec from a distribution detail page.
//
// The page carries an attribute list as <ul><li><b>Key:</b> value</li>...;
// list items without a <b> tag are navigation noise and skipped. Release
// dates live in td.Date cells, and the page image is the last <img> in the
// attribute list's parent.
func parseDetail(r io.Reader, baseURL string, rec *distro.Record) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return err
	}

	anchor := doc.Find("ul").First()
	if anchor.Length() == 0 {
		return fmt.Errorf("no attribute list found")
	}

	anchor.Find("li").Each(func(_ int, li *goquery.Selection) {
		b := li.Find("b").First()
		if b.Length() == 0 {
			// no name, probably not an attribute
			return
		}
		key := strings.TrimSuffix(strings.TrimSpace(b.Text()), ":")
		value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(li.Text()), strings.TrimSpace(b.Text())))
		value = strings.ReplaceAll(value, "\n", " ")

		switch key {
		case "Status":
			rec.Status = distro.Status(value)
		case "Based on":
			rec.BasedOn = value
		}
	})

	doc.Find("td.Date").Each(func(_ int, td *goquery.Selection) {
		rec.Dates = append(rec.Dates, sanitizeDate(td.Text()))
	})

	if img := anchor.Parent().Find("img").Last(); img.Length() > 0 {
		if src, ok := img.Attr("src"); ok {
			rec.Image = fmt.Sprintf("%s/%s", baseURL, strings.TrimPrefix(src, "/"))
		}
	}

	return nil
}

// sanitizeDate normalizes a release date cell. The site uses "XX" for
// unknown month or day components, and sometimes omits them entirely.
func sanitizeDate(raw string) string {
	date := strings.TrimSpace(raw)
	if !strings.Contains(date, "-") {
		date += "-XX-XX"
	}
	return strings.ReplaceAll(date, "XX", "01")
}
