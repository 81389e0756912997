package render

import (
	"strings"
	"testing"

	"github.com/distrograph/distrograph/pkg/distro"
)

func testRecords() []distro.Record {
	return []distro.Record{
		{Name: "debian", HumanName: "Debian", Status: distro.StatusActive, BasedOn: distro.Independent, Color: "#d70751"},
		{Name: "ubuntu", HumanName: "Ubuntu", Status: distro.StatusActive, BasedOn: "debian", Dates: []string{"2004-10-20"}},
		{Name: "corel", Status: distro.StatusDiscontinued, BasedOn: "debian"},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testRecords(), Options{})

	if !strings.HasPrefix(dot, "digraph distributions {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, want := range []string{
		`"debian" [label="Debian", fillcolor="#d70751", fontcolor=white];`,
		`"ubuntu" [label="Ubuntu"];`,
		`"debian" -> "ubuntu";`,
		`"debian" -> "corel";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOT_InactiveDashed(t *testing.T) {
	dot := ToDOT(testRecords(), Options{})
	if !strings.Contains(dot, `"corel" [label="corel", style="rounded,filled,dashed"];`) {
		t.Errorf("inactive node should be dashed:\n%s", dot)
	}
}

func TestToDOT_DetailedLabels(t *testing.T) {
	dot := ToDOT(testRecords(), Options{Detailed: true})
	if !strings.Contains(dot, `label="Ubuntu\nActive\n2004-10-20"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOT_DanglingParentIsRoot(t *testing.T) {
	records := []distro.Record{
		{Name: "orphan", Status: distro.StatusActive, BasedOn: "missing"},
	}
	dot := ToDOT(records, Options{})
	if !strings.Contains(dot, `"orphan"`) {
		t.Errorf("orphan node missing:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("no edges expected for dangling parent:\n%s", dot)
	}
}
