package archive

import (
	"strings"
	"testing"

	"github.com/distrograph/distrograph/pkg/distro"
)

const sampleGLDT = `// GLDT sample
# another comment
N,Debian,#d70751,,1993.09.15,,debian.png,https://www.debian.org
N,Ubuntu,#dd4814,Debian,2004.10.20,,ubuntu.png,https://ubuntu.com
N,Corel,#cccccc,Debian,1999.11,2001.08,corel.png,Corel Linux was a short-lived desktop distro
N,Mandrake,#2b5e91,Red Hat,1998.07.23,2011.09,mandrake.png,,Mandriva,2005.04.07,https://mandriva.com
C,ignored,row
`

func parseSample(t *testing.T) *Combiner {
	t.Helper()
	c, err := Parse(strings.NewReader(sampleGLDT))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return c
}

func TestParse_NodeRows(t *testing.T) {
	c := parseSample(t)
	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}

	debian, ok := c.Lookup("debian")
	if !ok {
		t.Fatal("debian not found")
	}
	if debian.HumanName != "Debian" {
		t.Errorf("HumanName = %q, want original case preserved", debian.HumanName)
	}
	if debian.BasedOn != distro.Independent {
		t.Errorf("BasedOn = %q, want independent for empty parent", debian.BasedOn)
	}
	if debian.Status != distro.StatusActive {
		t.Errorf("Status = %q, want Active without end date", debian.Status)
	}
	if debian.FirstRelease() != "1993-09-15" {
		t.Errorf("FirstRelease() = %q", debian.FirstRelease())
	}
	if debian.Link != "https://www.debian.org" {
		t.Errorf("Link = %q", debian.Link)
	}
}

func TestParse_EndedDistribution(t *testing.T) {
	c := parseSample(t)
	corel, _ := c.Lookup("corel")

	if corel.Status != distro.StatusInactive {
		t.Errorf("Status = %q, want Inactive with end date", corel.Status)
	}
	if corel.EndDate != "2001-08-01" {
		t.Errorf("EndDate = %q", corel.EndDate)
	}
	// Partial date gets day defaulted, end date appended to dates.
	if len(corel.Dates) != 2 || corel.Dates[0] != "1999-11-01" {
		t.Errorf("Dates = %v", corel.Dates)
	}
	if corel.Description == "" || corel.Link != "" {
		t.Errorf("non-URL description should land in Description, got link=%q desc=%q", corel.Link, corel.Description)
	}
}

func TestParse_NameChanges(t *testing.T) {
	c := parseSample(t)
	mandrake, _ := c.Lookup("mandrake")

	if len(mandrake.NameChanges) != 1 {
		t.Fatalf("NameChanges = %v, want 1 entry", mandrake.NameChanges)
	}
	change := mandrake.NameChanges[0]
	if change.Name != "Mandriva" || change.Date != "2005-04-07" || change.URL != "https://mandriva.com" {
		t.Errorf("NameChange = %+v", change)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1993.09.15", "1993-09-15"},
		{"1999.11", "1999-11-01"},
		{"1998.7.3", "1998-07-03"},
		{"", ""},
		{"notadate", ""},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in); got != tt.want {
			t.Errorf("parseDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStats(t *testing.T) {
	s := parseSample(t).Stats()
	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Active != 2 || s.Inactive != 2 {
		t.Errorf("Active/Inactive = %d/%d, want 2/2", s.Active, s.Inactive)
	}
	if s.ByDecade["1990s"] != 3 {
		t.Errorf("ByDecade[1990s] = %d, want 3", s.ByDecade["1990s"])
	}
	if s.WithColor != 4 {
		t.Errorf("WithColor = %d, want 4", s.WithColor)
	}
	if s.WithNameChanges != 1 {
		t.Errorf("WithNameChanges = %d, want 1", s.WithNameChanges)
	}
}
